package domain

// Admin is a staff principal authorized to operate the dashboard. Membership
// is managed externally; the approval engine checks the active flag
// synchronously inside every state-changing operation.
type Admin struct {
	AdminID      string `json:"adminID"` // Primary Key (UUID)
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"` // bcrypt; empty for OAuth-only admins
	IsActive     bool   `json:"isActive"`
	AuditFields
}
