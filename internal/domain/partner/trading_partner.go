package partner

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dealerops/backend/internal/domain/shared"
)

// Kind distinguishes the trading-partner flavours the dealership owes
// money to. Each kind has its own payables root account in the chart.
type Kind string

const (
	KindSupplier        Kind = "supplier"
	KindClearingAgent   Kind = "clearing_agent"
	KindTrackingCompany Kind = "tracking_company"
	KindInsurer         Kind = "insurer"
	KindBroker          Kind = "broker"
)

// Kinds lists every partner kind
var Kinds = []Kind{KindSupplier, KindClearingAgent, KindTrackingCompany, KindInsurer, KindBroker}

// IsValid reports whether k is a known partner kind
func (k Kind) IsValid() bool {
	switch k {
	case KindSupplier, KindClearingAgent, KindTrackingCompany, KindInsurer, KindBroker:
		return true
	}
	return false
}

// Salesperson is a contact sub-record under a partner. SubPrefix feeds
// stock-number generation on vehicle intake.
type Salesperson struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SubPrefix string `json:"sub_prefix"`
}

// SalespersonList persists as a single JSON column
type SalespersonList []Salesperson

// Value implements driver.Valuer
func (l SalespersonList) Value() (driver.Value, error) {
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (l *SalespersonList) Scan(value any) error {
	if value == nil {
		*l = nil
		return nil
	}
	switch raw := value.(type) {
	case string:
		return json.Unmarshal([]byte(raw), l)
	case []byte:
		return json.Unmarshal(raw, l)
	}
	return fmt.Errorf("cannot scan %T into SalespersonList", value)
}

// TradingPartner is a party the dealership buys services or vehicles
// from: supplier, clearing agent, tracking company, insurer or broker.
// Its id is derived from the kind and the normalized name, which makes
// ids human-traceable but also means two names of the same kind that
// normalize identically cannot coexist; the same name under another
// kind is a different partner. APAccountCode always resolves to
// exactly one ledger account named "A/P - <partner name>" under the
// kind's payables root; a partner without that account must never be
// observable.
type TradingPartner struct {
	shared.BaseAggregateRoot
	ID            string          `gorm:"type:varchar(100);primaryKey" json:"id"`
	Kind          Kind            `gorm:"type:varchar(20);not null;index" json:"kind"`
	Name          string          `gorm:"type:varchar(200);not null" json:"name"`
	APAccountCode string          `gorm:"type:varchar(50);not null" json:"ap_account_code"`
	ContactPerson string          `gorm:"type:varchar(100)" json:"contact_person"`
	Phone         string          `gorm:"type:varchar(50)" json:"phone"`
	WhatsApp      string          `gorm:"type:varchar(50)" json:"whatsapp"`
	Email         string          `gorm:"type:varchar(200)" json:"email"`
	Address       string          `gorm:"type:text" json:"address"`
	TaxPIN        string          `gorm:"type:varchar(50)" json:"tax_pin"`
	Salespersons  SalespersonList `gorm:"type:text" json:"salespersons"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// TableName returns the table name for GORM
func (TradingPartner) TableName() string {
	return "trading_partners"
}

// ContactInfo bundles the optional contact fields captured at provisioning
type ContactInfo struct {
	ContactPerson string
	Phone         string
	WhatsApp      string
	Email         string
	Address       string
	TaxPIN        string
}

// NewTradingPartner creates a partner with its deterministic id and the
// seeded default salesperson. The A/P account code must already be
// allocated by the caller (the provisioner owns that sequence).
func NewTradingPartner(kind Kind, name, apAccountCode string, contact ContactInfo) (*TradingPartner, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Partner name is required")
	}
	if !kind.IsValid() {
		return nil, shared.NewDomainError("INVALID_KIND", "Invalid partner kind")
	}
	if apAccountCode == "" {
		return nil, shared.NewDomainError("INVALID_ACCOUNT_CODE", "Payable account code is required")
	}

	id := NormalizeID(kind, name)
	now := time.Now()
	p := &TradingPartner{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		ID:                id,
		Kind:              kind,
		Name:              strings.TrimSpace(name),
		APAccountCode:     apAccountCode,
		ContactPerson:     contact.ContactPerson,
		Phone:             contact.Phone,
		WhatsApp:          contact.WhatsApp,
		Email:             contact.Email,
		Address:           contact.Address,
		TaxPIN:            contact.TaxPIN,
		Salespersons:      SalespersonList{defaultSalesperson(id, contact.ContactPerson, name)},
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	p.AddDomainEvent(NewPartnerProvisionedEvent(p))

	return p, nil
}

// defaultSalesperson seeds the single contact sub-record every new
// partner starts with. SubPrefix is the first four characters of the
// contact name, or of the partner name when no contact was given.
func defaultSalesperson(partnerID, contactPerson, partnerName string) Salesperson {
	name := contactPerson
	if name == "" {
		name = "Default Contact"
	}
	prefixSource := contactPerson
	if prefixSource == "" {
		prefixSource = partnerName
	}
	suffix := strings.ToLower(strings.Join(strings.Fields(contactPerson), ""))
	if suffix == "" {
		suffix = "default"
	}
	return Salesperson{
		ID:        partnerID + "_" + suffix,
		Name:      name,
		SubPrefix: firstRunes(prefixSource, 4),
	}
}

// AddSalesperson appends a contact sub-record
func (p *TradingPartner) AddSalesperson(name, subPrefix string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_NAME", "Salesperson name is required")
	}
	if subPrefix == "" {
		subPrefix = firstRunes(name, 4)
	}
	p.Salespersons = append(p.Salespersons, Salesperson{
		ID:        p.ID + "_" + strings.ToLower(strings.Join(strings.Fields(name), "")),
		Name:      strings.TrimSpace(name),
		SubPrefix: subPrefix,
	})
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
	return nil
}

// SetContact updates the partner's contact information
func (p *TradingPartner) SetContact(contact ContactInfo) {
	p.ContactPerson = contact.ContactPerson
	p.Phone = contact.Phone
	p.WhatsApp = contact.WhatsApp
	p.Email = contact.Email
	p.Address = contact.Address
	p.TaxPIN = contact.TaxPIN
	p.UpdatedAt = time.Now()
	p.IncrementVersion()
}

// NormalizeID derives the deterministic partner id: the kind, a dash,
// and the name lowercased with all whitespace removed. The kind prefix
// keeps same-name partners of different kinds from colliding on the
// primary key.
func NormalizeID(kind Kind, name string) string {
	return string(kind) + "-" + strings.ToLower(strings.Join(strings.Fields(name), ""))
}

// NormalizeName is the comparison key for the uniqueness check:
// trimmed and lowercased, interior whitespace preserved.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

func firstRunes(s string, n int) string {
	r := []rune(strings.TrimSpace(s))
	if len(r) <= n {
		return string(r)
	}
	return string(r[:n])
}
