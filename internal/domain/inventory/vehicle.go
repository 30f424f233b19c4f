package inventory

import (
	"strings"
	"time"

	"github.com/dealerops/backend/internal/domain/shared"
	"github.com/dealerops/backend/internal/domain/shared/valueobject"
	"github.com/shopspring/decimal"
)

// PurchaseType tags how a vehicle was acquired and therefore which
// costing variant it carries
type PurchaseType string

const (
	PurchaseTypeImport PurchaseType = "import"
	PurchaseTypeLocal  PurchaseType = "local"
)

// VehicleStatus is the stock lifecycle state
type VehicleStatus string

const (
	StatusAvailable VehicleStatus = "Available"
	StatusReserved  VehicleStatus = "Reserved"
	StatusOnWay     VehicleStatus = "On Way"
	StatusSold      VehicleStatus = "Sold"
)

// VehicleLocation is where the unit physically is
type VehicleLocation string

const (
	LocationJapan    VehicleLocation = "Japan"
	LocationOnWay    VehicleLocation = "On Way"
	LocationPort     VehicleLocation = "Port"
	LocationShowroom VehicleLocation = "Showroom"
	LocationYard     VehicleLocation = "Yard"
)

// ShipmentType is how an import unit travels
type ShipmentType string

const (
	ShipmentContainer ShipmentType = "CONTAINER"
	ShipmentRoRo      ShipmentType = "RORO"
)

// ImportCosting holds the acquisition-cost fields legal for imported
// vehicles: a multi-currency C&F total, clearing and repair costs, and
// the detailed yen-denominated line fees converted at one manually
// captured exchange rate. Zero-valued fields simply contribute nothing.
type ImportCosting struct {
	TotalCNF     valueobject.CurrencyValue `gorm:"type:text" json:"total_cnf"`
	ClearingCost valueobject.CurrencyValue `gorm:"type:text" json:"clearing_cost"`
	RepairCost   valueobject.CurrencyValue `gorm:"type:text" json:"repair_cost"`
	ExchangeRate decimal.Decimal           `gorm:"type:decimal(18,6)" json:"exchange_rate"`

	// Yen-denominated line fees
	BiddingPrice     decimal.Decimal `gorm:"type:decimal(18,2)" json:"bidding_price"`
	ProfitOnBidding  decimal.Decimal `gorm:"type:decimal(18,2)" json:"profit_on_bidding"`
	AuctionFee       decimal.Decimal `gorm:"type:decimal(18,2)" json:"auction_fee"`
	TransportFee     decimal.Decimal `gorm:"type:decimal(18,2)" json:"transport_fee"`
	InspectionFee    decimal.Decimal `gorm:"type:decimal(18,2)" json:"inspection_fee"`
	ExtraCharges     decimal.Decimal `gorm:"type:decimal(18,2)" json:"extra_charges"`
	RoRoShipping     decimal.Decimal `gorm:"type:decimal(18,2)" json:"roro_shipping"`
	RoRoFreight      decimal.Decimal `gorm:"type:decimal(18,2)" json:"roro_freight"`
	ContainerVanning decimal.Decimal `gorm:"type:decimal(18,2)" json:"container_vanning"`
	ContainerFreight decimal.Decimal `gorm:"type:decimal(18,2)" json:"container_freight"`
	DHL              decimal.Decimal `gorm:"type:decimal(18,2)" json:"dhl"`
}

// LocalCosting holds the acquisition-cost fields legal for locally
// purchased vehicles
type LocalCosting struct {
	PurchasePrice valueobject.CurrencyValue `gorm:"type:text" json:"purchase_price"`
	RepairCost    valueobject.CurrencyValue `gorm:"type:text" json:"repair_cost"`
}

// Vehicle is a stock unit. The costing side is a tagged union over
// PurchaseType: exactly one of Import or Local is populated, so a
// local vehicle cannot carry auction fees by construction.
type Vehicle struct {
	shared.BaseEntity
	shared.BaseAggregateRoot

	PurchaseType PurchaseType `gorm:"type:varchar(10);not null;index" json:"purchase_type"`
	SupplierID   string       `gorm:"type:varchar(100);index" json:"supplier_id"`
	Salesperson  string       `gorm:"type:varchar(100)" json:"salesperson"`
	StockNumber  string       `gorm:"type:varchar(50);index" json:"stock_number"`
	LotNumber    string       `gorm:"type:varchar(50)" json:"lot_number"`

	Make          string `gorm:"type:varchar(100);not null" json:"make"`
	Model         string `gorm:"type:varchar(100);not null" json:"model"`
	Grade         string `gorm:"type:varchar(50)" json:"grade"`
	Year          string `gorm:"type:varchar(10)" json:"year"`
	Color         string `gorm:"type:varchar(50)" json:"color"`
	Mileage       string `gorm:"type:varchar(20)" json:"mileage"`
	ChassisNumber string `gorm:"type:varchar(100);index" json:"chassis_number"`

	Status   VehicleStatus   `gorm:"type:varchar(20);not null;index" json:"status"`
	Location VehicleLocation `gorm:"type:varchar(20)" json:"location"`

	ShipmentType    ShipmentType `gorm:"type:varchar(20)" json:"shipment_type"`
	PortOfLoading   string       `gorm:"type:varchar(100)" json:"port_of_loading"`
	Vessel          string       `gorm:"type:varchar(100)" json:"vessel"`
	ETA             *time.Time   `json:"eta,omitempty"`
	ClearingAgentID string       `gorm:"type:varchar(100)" json:"clearing_agent_id"`

	Import *ImportCosting `gorm:"embedded;embeddedPrefix:import_" json:"import,omitempty"`
	Local  *LocalCosting  `gorm:"embedded;embeddedPrefix:local_" json:"local,omitempty"`
}

// TableName returns the table name for GORM
func (Vehicle) TableName() string {
	return "vehicles"
}

// NewImportVehicle creates an imported stock unit with its costing variant
func NewImportVehicle(make, model, chassisNumber, supplierID string, costing ImportCosting) (*Vehicle, error) {
	v, err := newVehicle(make, model, chassisNumber, supplierID, PurchaseTypeImport)
	if err != nil {
		return nil, err
	}
	v.Import = &costing
	v.Location = LocationJapan
	v.AddDomainEvent(NewVehicleAcquiredEvent(v))
	return v, nil
}

// NewLocalVehicle creates a locally purchased stock unit
func NewLocalVehicle(make, model, chassisNumber, supplierID string, costing LocalCosting) (*Vehicle, error) {
	v, err := newVehicle(make, model, chassisNumber, supplierID, PurchaseTypeLocal)
	if err != nil {
		return nil, err
	}
	v.Local = &costing
	v.Location = LocationYard
	v.AddDomainEvent(NewVehicleAcquiredEvent(v))
	return v, nil
}

func newVehicle(make, model, chassisNumber, supplierID string, purchaseType PurchaseType) (*Vehicle, error) {
	if strings.TrimSpace(make) == "" || strings.TrimSpace(model) == "" {
		return nil, shared.NewDomainError("INVALID_VEHICLE", "Make and model are required")
	}
	if strings.TrimSpace(chassisNumber) == "" {
		return nil, shared.NewDomainError("INVALID_VEHICLE", "Chassis number is required")
	}
	return &Vehicle{
		BaseEntity:        shared.NewBaseEntity(),
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		PurchaseType:      purchaseType,
		SupplierID:        supplierID,
		Make:              strings.TrimSpace(make),
		Model:             strings.TrimSpace(model),
		ChassisNumber:     strings.TrimSpace(chassisNumber),
		Status:            StatusAvailable,
	}, nil
}

// UpdateImportCosting replaces the import cost sheet
func (v *Vehicle) UpdateImportCosting(costing ImportCosting) error {
	if v.PurchaseType != PurchaseTypeImport {
		return shared.NewDomainError("INVALID_STATE", "Vehicle is not an import purchase")
	}
	v.Import = &costing
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
	return nil
}

// UpdateLocalCosting replaces the local cost sheet
func (v *Vehicle) UpdateLocalCosting(costing LocalCosting) error {
	if v.PurchaseType != PurchaseTypeLocal {
		return shared.NewDomainError("INVALID_STATE", "Vehicle is not a local purchase")
	}
	v.Local = &costing
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
	return nil
}

// SetShipment records transit details for an import unit
func (v *Vehicle) SetShipment(shipmentType ShipmentType, port, vessel string, eta *time.Time) error {
	if v.PurchaseType != PurchaseTypeImport {
		return shared.NewDomainError("INVALID_STATE", "Only imported vehicles ship")
	}
	v.ShipmentType = shipmentType
	v.PortOfLoading = port
	v.Vessel = vessel
	v.ETA = eta
	if eta != nil {
		v.Status = StatusOnWay
		v.Location = LocationOnWay
	}
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
	return nil
}

// SetLocation moves the unit
func (v *Vehicle) SetLocation(location VehicleLocation) {
	v.Location = location
	if v.Status == StatusOnWay && location != LocationOnWay && location != LocationJapan {
		v.Status = StatusAvailable
	}
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
}

// MarkSold transitions Available -> Sold. This is the only transition
// sale settlement performs; it is terminal from the engine's point of
// view (reversal is an administrative action elsewhere).
func (v *Vehicle) MarkSold() error {
	if v.Status == StatusSold {
		return shared.NewDomainError("INVALID_STATE", "Vehicle is already sold")
	}
	if v.Status != StatusAvailable {
		return shared.NewDomainError("INVALID_STATE", "Only available vehicles can be sold")
	}
	v.Status = StatusSold
	v.UpdatedAt = time.Now()
	v.IncrementVersion()
	v.AddDomainEvent(NewVehicleSoldEvent(v))
	return nil
}

// IsAvailable reports whether the unit can be sold
func (v *Vehicle) IsAvailable() bool {
	return v.Status == StatusAvailable
}
