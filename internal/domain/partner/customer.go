package partner

import (
	"strings"

	"github.com/dealerops/backend/internal/domain/shared"
)

// Customer is a vehicle buyer. Customers are not trading partners:
// they owe the dealership, not the other way round, so they carry no
// payable account.
type Customer struct {
	shared.BaseEntity
	Name       string `gorm:"type:varchar(200);not null" json:"name"`
	Phone      string `gorm:"type:varchar(50)" json:"phone"`
	Email      string `gorm:"type:varchar(200)" json:"email"`
	NationalID string `gorm:"type:varchar(50)" json:"national_id"`
	TaxPIN     string `gorm:"type:varchar(50)" json:"tax_pin"`
	Address    string `gorm:"type:text" json:"address"`
}

// TableName returns the table name for GORM
func (Customer) TableName() string {
	return "customers"
}

// NewCustomer creates a customer with the minimum viable identity
func NewCustomer(name, phone string) (*Customer, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Customer name is required")
	}
	return &Customer{
		BaseEntity: shared.NewBaseEntity(),
		Name:       strings.TrimSpace(name),
		Phone:      phone,
	}, nil
}
