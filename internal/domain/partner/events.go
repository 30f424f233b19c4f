package partner

import (
	"github.com/dealerops/backend/internal/domain/shared"
)

// Aggregate type constant for TradingPartner
const AggregateTypeTradingPartner = "TradingPartner"

// Event type constants for TradingPartner
const (
	EventTypePartnerProvisioned = "TradingPartnerProvisioned"
)

// PartnerProvisionedEvent is published when a partner and its payable
// sub-account are created
type PartnerProvisionedEvent struct {
	shared.BaseDomainEvent
	PartnerID     string `json:"partner_id"`
	Kind          Kind   `json:"kind"`
	Name          string `json:"name"`
	APAccountCode string `json:"ap_account_code"`
}

// NewPartnerProvisionedEvent creates a new PartnerProvisionedEvent
func NewPartnerProvisionedEvent(p *TradingPartner) *PartnerProvisionedEvent {
	return &PartnerProvisionedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypePartnerProvisioned, AggregateTypeTradingPartner, p.ID),
		PartnerID:       p.ID,
		Kind:            p.Kind,
		Name:            p.Name,
		APAccountCode:   p.APAccountCode,
	}
}
