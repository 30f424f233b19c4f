package partner

import (
	"time"

	"github.com/dealerops/backend/internal/domain/partner"
	"github.com/google/uuid"
)

// ProvisionPartnerRequest represents a request to create a trading
// partner together with its payable sub-account.
type ProvisionPartnerRequest struct {
	Kind          string `json:"kind" binding:"required,oneof=supplier clearing_agent tracking_company insurer broker"`
	Name          string `json:"name" binding:"required,min=1,max=200"`
	ContactPerson string `json:"contact_person" binding:"max=100"`
	Phone         string `json:"phone" binding:"max=50"`
	WhatsApp      string `json:"whatsapp" binding:"max=50"`
	Email         string `json:"email" binding:"omitempty,email,max=200"`
	Address       string `json:"address" binding:"max=500"`
	TaxPIN        string `json:"tax_pin" binding:"max=50"`
}

// AddSalespersonRequest represents a request to add a contact to a partner
type AddSalespersonRequest struct {
	Name      string `json:"name" binding:"required,min=1,max=100"`
	SubPrefix string `json:"sub_prefix" binding:"max=10"`
}

// SalespersonResponse represents one partner contact
type SalespersonResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SubPrefix string `json:"sub_prefix"`
}

// PartnerResponse represents a trading partner in API responses
type PartnerResponse struct {
	ID            string                `json:"id"`
	Kind          string                `json:"kind"`
	Name          string                `json:"name"`
	APAccountCode string                `json:"ap_account_code"`
	ContactPerson string                `json:"contact_person,omitempty"`
	Phone         string                `json:"phone,omitempty"`
	WhatsApp      string                `json:"whatsapp,omitempty"`
	Email         string                `json:"email,omitempty"`
	Address       string                `json:"address,omitempty"`
	TaxPIN        string                `json:"tax_pin,omitempty"`
	Salespersons  []SalespersonResponse `json:"salespersons"`
	CreatedAt     time.Time             `json:"created_at"`
}

// ToPartnerResponse converts a partner to its response DTO
func ToPartnerResponse(p *partner.TradingPartner) PartnerResponse {
	salespersons := make([]SalespersonResponse, len(p.Salespersons))
	for i, sp := range p.Salespersons {
		salespersons[i] = SalespersonResponse{ID: sp.ID, Name: sp.Name, SubPrefix: sp.SubPrefix}
	}
	return PartnerResponse{
		ID:            p.ID,
		Kind:          string(p.Kind),
		Name:          p.Name,
		APAccountCode: p.APAccountCode,
		ContactPerson: p.ContactPerson,
		Phone:         p.Phone,
		WhatsApp:      p.WhatsApp,
		Email:         p.Email,
		Address:       p.Address,
		TaxPIN:        p.TaxPIN,
		Salespersons:  salespersons,
		CreatedAt:     p.CreatedAt,
	}
}

// ToPartnerResponses converts a slice of partners
func ToPartnerResponses(partners []partner.TradingPartner) []PartnerResponse {
	responses := make([]PartnerResponse, len(partners))
	for i := range partners {
		responses[i] = ToPartnerResponse(&partners[i])
	}
	return responses
}

// CreateCustomerRequest represents a request to create a customer
type CreateCustomerRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=200"`
	Phone      string `json:"phone" binding:"max=50"`
	Email      string `json:"email" binding:"omitempty,email,max=200"`
	NationalID string `json:"national_id" binding:"max=50"`
	TaxPIN     string `json:"tax_pin" binding:"max=50"`
	Address    string `json:"address" binding:"max=500"`
}

// CustomerResponse represents a customer in API responses
type CustomerResponse struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone,omitempty"`
	Email      string    `json:"email,omitempty"`
	NationalID string    `json:"national_id,omitempty"`
	TaxPIN     string    `json:"tax_pin,omitempty"`
	Address    string    `json:"address,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

// ToCustomerResponse converts a customer to its response DTO
func ToCustomerResponse(c *partner.Customer) CustomerResponse {
	return CustomerResponse{
		ID:         c.ID,
		Name:       c.Name,
		Phone:      c.Phone,
		Email:      c.Email,
		NationalID: c.NationalID,
		TaxPIN:     c.TaxPIN,
		Address:    c.Address,
		CreatedAt:  c.CreatedAt,
	}
}

// ToCustomerResponses converts a slice of customers
func ToCustomerResponses(customers []partner.Customer) []CustomerResponse {
	responses := make([]CustomerResponse, len(customers))
	for i := range customers {
		responses[i] = ToCustomerResponse(&customers[i])
	}
	return responses
}
