package models

// Admin mirrors the admins table.
type Admin struct {
	AdminID      string `json:"adminID"`
	Email        string `json:"email"`
	Name         string `json:"name"`
	PasswordHash string `json:"-"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}
