package suppliers

import (
	"time"

	"github.com/google/uuid"
)

// Supplier represents a supplier contact record.
type Supplier struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	CompanyName   string    `json:"company_name"`
	ProductName   string    `json:"product_name"`
	ContactNumber string    `json:"contact_number"`
	Email         string    `json:"email"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
