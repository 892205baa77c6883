package models

// Company mirrors the companies table.
type Company struct {
	CompanyID string `json:"companyID"`
	Name      string `json:"name"`
	Domain    string `json:"domain"`
	AuditFields
}
