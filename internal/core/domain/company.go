package domain

// Company represents a customer company storing pipe in the yard.
// Identity is immutable once created.
type Company struct {
	CompanyID string `json:"companyID"` // Primary Key (UUID)
	Name      string `json:"name"`
	Domain    string `json:"domain"` // Email domain used for contact matching
	AuditFields
}
