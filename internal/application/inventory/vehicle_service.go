package inventory

import (
	"context"
	"strings"

	"github.com/dealerops/backend/internal/domain/inventory"
	"github.com/dealerops/backend/internal/domain/shared"
	"github.com/dealerops/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// VehicleService handles vehicle intake and cost-sheet maintenance
type VehicleService struct {
	vehicleRepo inventory.VehicleRepository
}

// NewVehicleService creates a new VehicleService
func NewVehicleService(vehicleRepo inventory.VehicleRepository) *VehicleService {
	return &VehicleService{vehicleRepo: vehicleRepo}
}

// Create takes a vehicle into stock with its purchase-type cost sheet
func (s *VehicleService) Create(ctx context.Context, req CreateVehicleRequest) (*VehicleResponse, error) {
	var v *inventory.Vehicle
	var err error

	switch inventory.PurchaseType(req.PurchaseType) {
	case inventory.PurchaseTypeImport:
		var costing inventory.ImportCosting
		if req.Import != nil {
			costing = toImportCosting(*req.Import)
		}
		v, err = inventory.NewImportVehicle(req.Make, req.Model, req.ChassisNumber, req.SupplierID, costing)
	case inventory.PurchaseTypeLocal:
		var costing inventory.LocalCosting
		if req.Local != nil {
			costing = toLocalCosting(*req.Local)
		}
		v, err = inventory.NewLocalVehicle(req.Make, req.Model, req.ChassisNumber, req.SupplierID, costing)
	default:
		return nil, shared.NewDomainError("INVALID_PURCHASE_TYPE", "Purchase type must be import or local")
	}
	if err != nil {
		return nil, err
	}

	v.Grade = req.Grade
	v.Year = req.Year
	v.Color = req.Color
	v.Mileage = req.Mileage
	v.StockNumber = req.StockNumber
	v.LotNumber = req.LotNumber
	v.Salesperson = req.Salesperson

	if err := s.vehicleRepo.Save(ctx, v); err != nil {
		return nil, err
	}
	response := ToVehicleResponse(v)
	return &response, nil
}

// GetByID retrieves one vehicle with its computed total cost
func (s *VehicleService) GetByID(ctx context.Context, id uuid.UUID) (*VehicleResponse, error) {
	v, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToVehicleResponse(v)
	return &response, nil
}

// List lists all vehicles, optionally filtered by status
func (s *VehicleService) List(ctx context.Context, status string) ([]VehicleResponse, error) {
	var vehicles []inventory.Vehicle
	var err error
	if status != "" {
		vehicles, err = s.vehicleRepo.FindByStatus(ctx, inventory.VehicleStatus(status))
	} else {
		vehicles, err = s.vehicleRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	return ToVehicleResponses(vehicles), nil
}

// UpdateImportCosting replaces an import unit's cost sheet
func (s *VehicleService) UpdateImportCosting(ctx context.Context, id uuid.UUID, req ImportCostingRequest) (*VehicleResponse, error) {
	v, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := v.UpdateImportCosting(toImportCosting(req)); err != nil {
		return nil, err
	}
	if err := s.vehicleRepo.Save(ctx, v); err != nil {
		return nil, err
	}
	response := ToVehicleResponse(v)
	return &response, nil
}

// UpdateLocalCosting replaces a local unit's cost sheet
func (s *VehicleService) UpdateLocalCosting(ctx context.Context, id uuid.UUID, req LocalCostingRequest) (*VehicleResponse, error) {
	v, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := v.UpdateLocalCosting(toLocalCosting(req)); err != nil {
		return nil, err
	}
	if err := s.vehicleRepo.Save(ctx, v); err != nil {
		return nil, err
	}
	response := ToVehicleResponse(v)
	return &response, nil
}

// SetShipment records transit details; a non-empty ETA moves the unit
// to On Way, which makes it visible to arrival reminders.
func (s *VehicleService) SetShipment(ctx context.Context, id uuid.UUID, req SetShipmentRequest) (*VehicleResponse, error) {
	v, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := v.SetShipment(inventory.ShipmentType(req.ShipmentType), req.PortOfLoading, req.Vessel, req.ETA); err != nil {
		return nil, err
	}
	if req.ClearingAgentID != "" {
		v.ClearingAgentID = req.ClearingAgentID
	}
	if err := s.vehicleRepo.Save(ctx, v); err != nil {
		return nil, err
	}
	response := ToVehicleResponse(v)
	return &response, nil
}

// SetLocation moves the unit
func (s *VehicleService) SetLocation(ctx context.Context, id uuid.UUID, req SetLocationRequest) (*VehicleResponse, error) {
	v, err := s.vehicleRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	v.SetLocation(inventory.VehicleLocation(req.Location))
	if err := s.vehicleRepo.Save(ctx, v); err != nil {
		return nil, err
	}
	response := ToVehicleResponse(v)
	return &response, nil
}

func toCurrencyValue(req CurrencyValueRequest) valueobject.CurrencyValue {
	v := valueobject.ZeroKES()
	if req.Currency != "" {
		v = v.WithCurrency(valueobject.Currency(req.Currency))
	}
	if req.Rate != "" {
		v = v.WithRate(parseDecimal(req.Rate, decimal.NewFromInt(1)))
	}
	return v.WithAmount(req.Amount)
}

func toImportCosting(req ImportCostingRequest) inventory.ImportCosting {
	return inventory.ImportCosting{
		TotalCNF:     toCurrencyValue(req.TotalCNF),
		ClearingCost: toCurrencyValue(req.ClearingCost),
		RepairCost:   toCurrencyValue(req.RepairCost),
		ExchangeRate: parseDecimal(req.ExchangeRate, decimal.Zero),

		BiddingPrice:     parseDecimal(req.BiddingPrice, decimal.Zero),
		ProfitOnBidding:  parseDecimal(req.ProfitOnBidding, decimal.Zero),
		AuctionFee:       parseDecimal(req.AuctionFee, decimal.Zero),
		TransportFee:     parseDecimal(req.TransportFee, decimal.Zero),
		InspectionFee:    parseDecimal(req.InspectionFee, decimal.Zero),
		ExtraCharges:     parseDecimal(req.ExtraCharges, decimal.Zero),
		RoRoShipping:     parseDecimal(req.RoRoShipping, decimal.Zero),
		RoRoFreight:      parseDecimal(req.RoRoFreight, decimal.Zero),
		ContainerVanning: parseDecimal(req.ContainerVanning, decimal.Zero),
		ContainerFreight: parseDecimal(req.ContainerFreight, decimal.Zero),
		DHL:              parseDecimal(req.DHL, decimal.Zero),
	}
}

func toLocalCosting(req LocalCostingRequest) inventory.LocalCosting {
	return inventory.LocalCosting{
		PurchasePrice: toCurrencyValue(req.PurchasePrice),
		RepairCost:    toCurrencyValue(req.RepairCost),
	}
}

// parseDecimal reads a user-entered number, falling back when blank or
// unparseable. Monetary amounts go through the stricter CurrencyValue
// path instead.
func parseDecimal(raw string, fallback decimal.Decimal) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return fallback
	}
	return d
}
