package trade

import (
	"github.com/dealerops/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Aggregate type constant for Sale
const AggregateTypeSale = "Sale"

// Event type constants for Sale
const (
	EventTypeSaleFinalized   = "SaleFinalized"
	EventTypePaymentReceived = "SalePaymentReceived"
)

// SaleFinalizedEvent is published when a deal closes
type SaleFinalizedEvent struct {
	shared.BaseDomainEvent
	VehicleID    uuid.UUID       `json:"vehicle_id"`
	CustomerName string          `json:"customer_name"`
	TotalInvoice decimal.Decimal `json:"total_invoice"`
}

// NewSaleFinalizedEvent creates a new SaleFinalizedEvent
func NewSaleFinalizedEvent(s *Sale) *SaleFinalizedEvent {
	return &SaleFinalizedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeSaleFinalized, AggregateTypeSale, s.ID.String()),
		VehicleID:       s.VehicleID,
		CustomerName:    s.CustomerName,
		TotalInvoice:    s.TotalInvoice,
	}
}
