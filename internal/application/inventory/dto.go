package inventory

import (
	"time"

	"github.com/dealerops/backend/internal/domain/inventory"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CurrencyValueRequest is the wire shape of a monetary amount: a raw
// amount string, a currency code and a manually captured rate. The
// base-currency equivalent is always re-derived server side.
type CurrencyValueRequest struct {
	Amount   string `json:"amount"`
	Currency string `json:"currency" binding:"omitempty,oneof=KES JPY USD EUR PKR"`
	Rate     string `json:"rate"`
}

// ImportCostingRequest carries the cost sheet fields legal for imports
type ImportCostingRequest struct {
	TotalCNF     CurrencyValueRequest `json:"total_cnf"`
	ClearingCost CurrencyValueRequest `json:"clearing_cost"`
	RepairCost   CurrencyValueRequest `json:"repair_cost"`
	ExchangeRate string               `json:"exchange_rate"`

	BiddingPrice     string `json:"bidding_price"`
	ProfitOnBidding  string `json:"profit_on_bidding"`
	AuctionFee       string `json:"auction_fee"`
	TransportFee     string `json:"transport_fee"`
	InspectionFee    string `json:"inspection_fee"`
	ExtraCharges     string `json:"extra_charges"`
	RoRoShipping     string `json:"roro_shipping"`
	RoRoFreight      string `json:"roro_freight"`
	ContainerVanning string `json:"container_vanning"`
	ContainerFreight string `json:"container_freight"`
	DHL              string `json:"dhl"`
}

// LocalCostingRequest carries the cost sheet fields legal for local purchases
type LocalCostingRequest struct {
	PurchasePrice CurrencyValueRequest `json:"purchase_price"`
	RepairCost    CurrencyValueRequest `json:"repair_cost"`
}

// CreateVehicleRequest represents a request to take a vehicle into stock
type CreateVehicleRequest struct {
	PurchaseType  string `json:"purchase_type" binding:"required,oneof=import local"`
	SupplierID    string `json:"supplier_id"`
	Make          string `json:"make" binding:"required,min=1,max=100"`
	Model         string `json:"model" binding:"required,min=1,max=100"`
	Grade         string `json:"grade" binding:"max=50"`
	Year          string `json:"year" binding:"max=10"`
	Color         string `json:"color" binding:"max=50"`
	Mileage       string `json:"mileage" binding:"max=20"`
	ChassisNumber string `json:"chassis_number" binding:"required,min=1,max=100"`
	StockNumber   string `json:"stock_number" binding:"max=50"`
	LotNumber     string `json:"lot_number" binding:"max=50"`
	Salesperson   string `json:"salesperson" binding:"max=100"`

	Import *ImportCostingRequest `json:"import,omitempty"`
	Local  *LocalCostingRequest  `json:"local,omitempty"`
}

// SetShipmentRequest records transit details for an import unit
type SetShipmentRequest struct {
	ShipmentType    string     `json:"shipment_type" binding:"required,oneof=CONTAINER RORO"`
	PortOfLoading   string     `json:"port_of_loading" binding:"max=100"`
	Vessel          string     `json:"vessel" binding:"max=100"`
	ETA             *time.Time `json:"eta"`
	ClearingAgentID string     `json:"clearing_agent_id"`
}

// SetLocationRequest moves a unit
type SetLocationRequest struct {
	Location string `json:"location" binding:"required,oneof=Japan 'On Way' Port Showroom Yard"`
}

// VehicleResponse represents a vehicle in API responses, with the
// acquisition cost computed from whichever cost sheet the unit carries.
type VehicleResponse struct {
	ID            uuid.UUID       `json:"id"`
	PurchaseType  string          `json:"purchase_type"`
	SupplierID    string          `json:"supplier_id,omitempty"`
	Salesperson   string          `json:"salesperson,omitempty"`
	StockNumber   string          `json:"stock_number,omitempty"`
	LotNumber     string          `json:"lot_number,omitempty"`
	Make          string          `json:"make"`
	Model         string          `json:"model"`
	Grade         string          `json:"grade,omitempty"`
	Year          string          `json:"year,omitempty"`
	Color         string          `json:"color,omitempty"`
	Mileage       string          `json:"mileage,omitempty"`
	ChassisNumber string          `json:"chassis_number"`
	Status        string          `json:"status"`
	Location      string          `json:"location,omitempty"`
	ShipmentType  string          `json:"shipment_type,omitempty"`
	PortOfLoading string          `json:"port_of_loading,omitempty"`
	Vessel        string          `json:"vessel,omitempty"`
	ETA           *time.Time      `json:"eta,omitempty"`
	TotalCost     decimal.Decimal `json:"total_cost"`
	CreatedAt     time.Time       `json:"created_at"`

	Import *inventory.ImportCosting `json:"import,omitempty"`
	Local  *inventory.LocalCosting  `json:"local,omitempty"`
}

// ToVehicleResponse converts a vehicle to its response DTO
func ToVehicleResponse(v *inventory.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:            v.ID,
		PurchaseType:  string(v.PurchaseType),
		SupplierID:    v.SupplierID,
		Salesperson:   v.Salesperson,
		StockNumber:   v.StockNumber,
		LotNumber:     v.LotNumber,
		Make:          v.Make,
		Model:         v.Model,
		Grade:         v.Grade,
		Year:          v.Year,
		Color:         v.Color,
		Mileage:       v.Mileage,
		ChassisNumber: v.ChassisNumber,
		Status:        string(v.Status),
		Location:      string(v.Location),
		ShipmentType:  string(v.ShipmentType),
		PortOfLoading: v.PortOfLoading,
		Vessel:        v.Vessel,
		ETA:           v.ETA,
		TotalCost:     v.TotalCost(),
		CreatedAt:     v.CreatedAt,
		Import:        v.Import,
		Local:         v.Local,
	}
}

// ToVehicleResponses converts a slice of vehicles
func ToVehicleResponses(vehicles []inventory.Vehicle) []VehicleResponse {
	responses := make([]VehicleResponse, len(vehicles))
	for i := range vehicles {
		responses[i] = ToVehicleResponse(&vehicles[i])
	}
	return responses
}
