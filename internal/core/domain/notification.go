package domain

import "time"

// NotificationStatus tracks delivery progress of a notification task.
type NotificationStatus string

const (
	NotificationPending NotificationStatus = "PENDING"
	NotificationSent    NotificationStatus = "SENT"
	NotificationFailed  NotificationStatus = "FAILED"
)

// NotificationKind identifies the outbound message template.
type NotificationKind string

const (
	NotifyRequestApproved NotificationKind = "REQUEST_APPROVED"
	NotifyRequestRejected NotificationKind = "REQUEST_REJECTED"
)

// NotificationTask is a durable record of an outbound notification. It is
// enqueued inside the approval transaction and consumed by an external
// delivery worker that transitions it to SENT or FAILED.
type NotificationTask struct {
	TaskID    string             `json:"taskID"`    // Primary Key (UUID)
	RequestID string             `json:"requestID"` // FK -> storage_requests.request_id
	Kind      NotificationKind   `json:"kind"`
	Recipient string             `json:"recipient"` // Contact email derived from the company
	Payload   string             `json:"payload"`   // JSON body for the delivery worker
	Status    NotificationStatus `json:"status"`
	Attempts  int                `json:"attempts"`
	CreatedAt time.Time          `json:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt"`
}
