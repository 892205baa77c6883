package models

import "time"

// NotificationTask mirrors the notification_tasks table.
type NotificationTask struct {
	TaskID    string    `json:"taskID"`
	RequestID string    `json:"requestID"`
	Kind      string    `json:"kind"`
	Recipient string    `json:"recipient"`
	Payload   string    `json:"payload"`
	Status    string    `json:"status"`
	Attempts  int       `json:"attempts"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
