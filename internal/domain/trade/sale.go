package trade

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/dealerops/backend/internal/domain/shared"
	"github.com/dealerops/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleMethod is how the deal is structured
type SaleMethod string

const (
	SaleMethodCash         SaleMethod = "Cash"
	SaleMethodHirePurchase SaleMethod = "Hire Purchase"
)

// PaymentMethod is how an individual payment arrived
type PaymentMethod string

const (
	PaymentCash         PaymentMethod = "Cash"
	PaymentBankTransfer PaymentMethod = "Bank Transfer"
	PaymentCheque       PaymentMethod = "Cheque"
	PaymentMPesa        PaymentMethod = "M-Pesa"
)

// InstallmentStatus tracks a hire-purchase installment
type InstallmentStatus string

const (
	InstallmentPending       InstallmentStatus = "Pending"
	InstallmentPaid          InstallmentStatus = "Paid"
	InstallmentPartiallyPaid InstallmentStatus = "Partially Paid"
	InstallmentOverdue       InstallmentStatus = "Overdue"
)

// Payment is one received payment against a sale
type Payment struct {
	ID     uuid.UUID                 `gorm:"type:uuid;primaryKey" json:"id"`
	SaleID uuid.UUID                 `gorm:"type:uuid;not null;index" json:"sale_id"`
	Date   time.Time                 `json:"date"`
	Amount valueobject.CurrencyValue `gorm:"type:text" json:"amount"`
	Method PaymentMethod             `gorm:"type:varchar(20)" json:"method"`
	Notes  string                    `gorm:"type:text" json:"notes"`
}

// TableName returns the table name for GORM
func (Payment) TableName() string {
	return "sale_payments"
}

// Installment is one scheduled hire-purchase payment
type Installment struct {
	Number    int               `json:"number"`
	DueDate   time.Time         `json:"due_date"`
	AmountDue decimal.Decimal   `json:"amount_due"`
	Status    InstallmentStatus `json:"status"`
}

// InstallmentPlan persists as a single JSON column
type InstallmentPlan []Installment

// Value implements driver.Valuer
func (p InstallmentPlan) Value() (driver.Value, error) {
	b, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements sql.Scanner
func (p *InstallmentPlan) Scan(value any) error {
	if value == nil {
		*p = nil
		return nil
	}
	switch raw := value.(type) {
	case string:
		return json.Unmarshal([]byte(raw), p)
	case []byte:
		return json.Unmarshal(raw, p)
	}
	return fmt.Errorf("cannot scan %T into InstallmentPlan", value)
}

// AttachedProductSale is an ancillary item (insurance policy or
// tracking device) bundled into the deal: a cost from the provider, a
// price to the customer and the derived KES margin. The profit is
// always recomputed from the two values, never stored independently.
type AttachedProductSale struct {
	CompanyID     string                    `gorm:"type:varchar(100)" json:"company_id"`
	SalespersonID string                    `gorm:"type:varchar(100)" json:"salesperson_id"`
	Reference     string                    `gorm:"type:varchar(100)" json:"reference"`
	Premium       valueobject.CurrencyValue `gorm:"type:text" json:"premium"`
	SalePrice     valueobject.CurrencyValue `gorm:"type:text" json:"sale_price"`
	Profit        decimal.Decimal           `gorm:"type:decimal(18,2)" json:"profit"`
}

// NewAttachedProductSale derives the margin from premium and price
func NewAttachedProductSale(companyID, salespersonID, reference string, premium, salePrice valueobject.CurrencyValue) AttachedProductSale {
	return AttachedProductSale{
		CompanyID:     companyID,
		SalespersonID: salespersonID,
		Reference:     reference,
		Premium:       premium,
		SalePrice:     salePrice,
		Profit:        salePrice.BaseAmount().Sub(premium.BaseAmount()),
	}
}

// Sale is the financial record of one finalized vehicle deal. It is
// created exactly once when the sale closes; afterwards only the
// payment list grows, and the balance is re-derived whenever it does.
type Sale struct {
	shared.BaseEntity
	shared.BaseAggregateRoot

	VehicleID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex" json:"vehicle_id"`
	CustomerID   uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`
	CustomerName string    `gorm:"type:varchar(200);not null" json:"customer_name"`
	SaleDate     time.Time `json:"sale_date"`

	SalePrice valueobject.CurrencyValue `gorm:"type:text" json:"sale_price"`
	Method    SaleMethod                `gorm:"type:varchar(20);not null" json:"method"`

	BrokerID  string                    `gorm:"type:varchar(100)" json:"broker_id"`
	BrokerFee valueobject.CurrencyValue `gorm:"type:text" json:"broker_fee"`

	Insurance *AttachedProductSale `gorm:"embedded;embeddedPrefix:insurance_" json:"insurance,omitempty"`
	Tracker   *AttachedProductSale `gorm:"embedded;embeddedPrefix:tracker_" json:"tracker,omitempty"`

	TotalInvoice decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"total_invoice"`
	Balance      decimal.Decimal `gorm:"type:decimal(18,2);not null" json:"balance"`

	Payments     []Payment       `gorm:"foreignKey:SaleID" json:"payments"`
	Installments InstallmentPlan `gorm:"type:text" json:"installments,omitempty"`
}

// TableName returns the table name for GORM
func (Sale) TableName() string {
	return "sales"
}

// NewSale creates the sale record at finalization time. The invoice
// total comes from the settlement calculation; the opening balance is
// the invoice minus whatever down payment was taken.
func NewSale(vehicleID, customerID uuid.UUID, customerName string, saleDate time.Time,
	salePrice valueobject.CurrencyValue, method SaleMethod, totalInvoice decimal.Decimal) (*Sale, error) {

	if vehicleID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_SALE", "A vehicle is required")
	}
	if customerID == uuid.Nil || strings.TrimSpace(customerName) == "" {
		return nil, shared.NewDomainError("INVALID_SALE", "A customer is required")
	}
	if !salePrice.BaseAmount().IsPositive() {
		return nil, shared.NewDomainError("INVALID_SALE", "Sale price must be greater than zero")
	}

	s := &Sale{
		BaseEntity:        shared.NewBaseEntity(),
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		VehicleID:         vehicleID,
		CustomerID:        customerID,
		CustomerName:      strings.TrimSpace(customerName),
		SaleDate:          saleDate,
		SalePrice:         salePrice,
		Method:            method,
		TotalInvoice:      totalInvoice,
		Balance:           totalInvoice,
	}
	s.AddDomainEvent(NewSaleFinalizedEvent(s))
	return s, nil
}

// AssignBroker records the broker and the fee the deal owes them
func (s *Sale) AssignBroker(brokerID string, fee valueobject.CurrencyValue) {
	s.BrokerID = brokerID
	s.BrokerFee = fee
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// AttachInsurance bundles an insurance policy into the deal
func (s *Sale) AttachInsurance(p AttachedProductSale) {
	s.Insurance = &p
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// AttachTracker bundles a tracking device into the deal
func (s *Sale) AttachTracker(p AttachedProductSale) {
	s.Tracker = &p
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// AddPayment appends a received payment and re-derives the balance:
// invoice total minus the base amount of every payment taken so far.
func (s *Sale) AddPayment(date time.Time, amount valueobject.CurrencyValue, method PaymentMethod, notes string) *Payment {
	p := Payment{
		ID:     uuid.New(),
		SaleID: s.ID,
		Date:   date,
		Amount: amount,
		Method: method,
		Notes:  notes,
	}
	s.Payments = append(s.Payments, p)
	s.recomputeBalance()
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
	return &s.Payments[len(s.Payments)-1]
}

// SetInstallmentPlan stores the hire-purchase schedule
func (s *Sale) SetInstallmentPlan(plan InstallmentPlan) {
	s.Installments = plan
	s.UpdatedAt = time.Now()
	s.IncrementVersion()
}

// PendingInstallments returns installments still awaiting payment
func (s *Sale) PendingInstallments() []Installment {
	var pending []Installment
	for _, inst := range s.Installments {
		if inst.Status == InstallmentPending || inst.Status == InstallmentPartiallyPaid || inst.Status == InstallmentOverdue {
			pending = append(pending, inst)
		}
	}
	return pending
}

func (s *Sale) recomputeBalance() {
	paid := decimal.Zero
	for _, p := range s.Payments {
		paid = paid.Add(p.Amount.BaseAmount())
	}
	s.Balance = s.TotalInvoice.Sub(paid)
}
