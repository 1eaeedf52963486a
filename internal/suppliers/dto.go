package suppliers

// CreateSupplierRequest is the create payload. All five business fields are
// mandatory and the contact number must be exactly ten characters.
type CreateSupplierRequest struct {
	Name          string `json:"name" validate:"required"`
	CompanyName   string `json:"company_name" validate:"required"`
	ProductName   string `json:"product_name" validate:"required"`
	ContactNumber string `json:"contact_number" validate:"required,len=10"`
	Email         string `json:"email" validate:"required"`
}

// UpdateSupplierRequest replaces all five business fields of an existing
// record. Only the contact number rule is enforced on update.
type UpdateSupplierRequest struct {
	Name          string `json:"name"`
	CompanyName   string `json:"company_name"`
	ProductName   string `json:"product_name"`
	ContactNumber string `json:"contact_number" validate:"len=10"`
	Email         string `json:"email"`
}

// ListFilters carries the sort parameters for the list endpoint.
type ListFilters struct {
	SortField string
	SortOrder string
}

// ReportRequest selects the records included in a generated report.
type ReportRequest struct {
	UserIDs []string `json:"userIds"`
}
