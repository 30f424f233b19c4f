package trade

import (
	"time"

	"github.com/dealerops/backend/internal/domain/trade"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CurrencyValueRequest is the wire shape of a monetary amount
type CurrencyValueRequest struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency" binding:"omitempty,oneof=KES JPY USD EUR PKR"`
	Rate     string `json:"rate"`
}

// AttachedProductRequest bundles an insurance policy or tracking
// device into a deal.
type AttachedProductRequest struct {
	CompanyID     string               `json:"company_id" binding:"required"`
	SalespersonID string               `json:"salesperson_id"`
	Reference     string               `json:"reference" binding:"max=100"`
	Premium       CurrencyValueRequest `json:"premium"`
	SalePrice     CurrencyValueRequest `json:"sale_price"`
}

// NewCustomerRequest creates the buyer inline during finalization
type NewCustomerRequest struct {
	Name       string `json:"name" binding:"required,min=1,max=200"`
	Phone      string `json:"phone" binding:"max=50"`
	NationalID string `json:"national_id" binding:"max=50"`
}

// InstallmentRequest is one line of a hire-purchase schedule
type InstallmentRequest struct {
	Number    int       `json:"number" binding:"required,min=1"`
	DueDate   time.Time `json:"due_date" binding:"required"`
	AmountDue string    `json:"amount_due" binding:"required"`
}

// FinalizeSaleRequest represents a request to close a vehicle deal.
// Exactly one of CustomerID or NewCustomer identifies the buyer.
type FinalizeSaleRequest struct {
	VehicleID   uuid.UUID           `json:"vehicle_id" binding:"required"`
	CustomerID  *uuid.UUID          `json:"customer_id"`
	NewCustomer *NewCustomerRequest `json:"new_customer"`

	SaleDate  time.Time            `json:"sale_date"`
	SalePrice CurrencyValueRequest `json:"sale_price"`
	Method    string               `json:"method" binding:"required,oneof=Cash 'Hire Purchase'"`

	BrokerID  string                `json:"broker_id"`
	BrokerFee *CurrencyValueRequest `json:"broker_fee"`

	Insurance *AttachedProductRequest `json:"insurance"`
	Tracker   *AttachedProductRequest `json:"tracker"`

	DownPayment       *CurrencyValueRequest `json:"down_payment"`
	DownPaymentMethod string                `json:"down_payment_method" binding:"omitempty,oneof=Cash 'Bank Transfer' Cheque M-Pesa"`

	Installments []InstallmentRequest `json:"installments"`
}

// QuoteRequest previews the settlement for a deal before it is closed
type QuoteRequest struct {
	VehicleID uuid.UUID            `json:"vehicle_id" binding:"required"`
	SalePrice CurrencyValueRequest `json:"sale_price"`
	BrokerID  string                `json:"broker_id"`
	BrokerFee *CurrencyValueRequest `json:"broker_fee"`
	Insurance *AttachedProductRequest `json:"insurance"`
	Tracker   *AttachedProductRequest `json:"tracker"`
}

// AddPaymentRequest records a received payment against a sale
type AddPaymentRequest struct {
	Date   time.Time            `json:"date"`
	Amount CurrencyValueRequest `json:"amount"`
	Method string               `json:"method" binding:"required,oneof=Cash 'Bank Transfer' Cheque M-Pesa"`
	Notes  string               `json:"notes" binding:"max=500"`
}

// SettlementResponse is the computed financial outcome of a deal
type SettlementResponse struct {
	TotalInvoice    decimal.Decimal `json:"total_invoice"`
	VehicleCost     decimal.Decimal `json:"vehicle_cost"`
	InsuranceProfit decimal.Decimal `json:"insurance_profit"`
	TrackerProfit   decimal.Decimal `json:"tracker_profit"`
	NetProfit       decimal.Decimal `json:"net_profit"`
}

// ToSettlementResponse converts a settlement to its response DTO
func ToSettlementResponse(s trade.Settlement) SettlementResponse {
	return SettlementResponse{
		TotalInvoice:    s.TotalInvoice,
		VehicleCost:     s.VehicleCost,
		InsuranceProfit: s.InsuranceProfit,
		TrackerProfit:   s.TrackerProfit,
		NetProfit:       s.NetProfit,
	}
}

// PaymentResponse is one received payment
type PaymentResponse struct {
	ID     uuid.UUID       `json:"id"`
	Date   time.Time       `json:"date"`
	Amount decimal.Decimal `json:"amount"`
	Method string          `json:"method"`
	Notes  string          `json:"notes,omitempty"`
}

// SaleResponse represents a sale in API responses
type SaleResponse struct {
	ID           uuid.UUID          `json:"id"`
	VehicleID    uuid.UUID          `json:"vehicle_id"`
	CustomerID   uuid.UUID          `json:"customer_id"`
	CustomerName string             `json:"customer_name"`
	SaleDate     time.Time          `json:"sale_date"`
	Method       string             `json:"method"`
	BrokerID     string             `json:"broker_id,omitempty"`
	TotalInvoice decimal.Decimal    `json:"total_invoice"`
	Balance      decimal.Decimal    `json:"balance"`
	Payments     []PaymentResponse  `json:"payments"`
	Installments trade.InstallmentPlan `json:"installments,omitempty"`
	CreatedAt    time.Time          `json:"created_at"`
}

// ToSaleResponse converts a sale to its response DTO
func ToSaleResponse(s *trade.Sale) SaleResponse {
	payments := make([]PaymentResponse, len(s.Payments))
	for i, p := range s.Payments {
		payments[i] = PaymentResponse{
			ID:     p.ID,
			Date:   p.Date,
			Amount: p.Amount.BaseAmount(),
			Method: string(p.Method),
			Notes:  p.Notes,
		}
	}
	return SaleResponse{
		ID:           s.ID,
		VehicleID:    s.VehicleID,
		CustomerID:   s.CustomerID,
		CustomerName: s.CustomerName,
		SaleDate:     s.SaleDate,
		Method:       string(s.Method),
		BrokerID:     s.BrokerID,
		TotalInvoice: s.TotalInvoice,
		Balance:      s.Balance,
		Payments:     payments,
		Installments: s.Installments,
		CreatedAt:    s.CreatedAt,
	}
}

// ToSaleResponses converts a slice of sales
func ToSaleResponses(sales []trade.Sale) []SaleResponse {
	responses := make([]SaleResponse, len(sales))
	for i := range sales {
		responses[i] = ToSaleResponse(&sales[i])
	}
	return responses
}
