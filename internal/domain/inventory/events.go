package inventory

import (
	"github.com/dealerops/backend/internal/domain/shared"
)

// Aggregate type constant for Vehicle
const AggregateTypeVehicle = "Vehicle"

// Event type constants for Vehicle
const (
	EventTypeVehicleAcquired = "VehicleAcquired"
	EventTypeVehicleSold     = "VehicleSold"
)

// VehicleAcquiredEvent is published when a vehicle enters stock
type VehicleAcquiredEvent struct {
	shared.BaseDomainEvent
	Make          string       `json:"make"`
	Model         string       `json:"model"`
	ChassisNumber string       `json:"chassis_number"`
	PurchaseType  PurchaseType `json:"purchase_type"`
}

// NewVehicleAcquiredEvent creates a new VehicleAcquiredEvent
func NewVehicleAcquiredEvent(v *Vehicle) *VehicleAcquiredEvent {
	return &VehicleAcquiredEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeVehicleAcquired, AggregateTypeVehicle, v.ID.String()),
		Make:            v.Make,
		Model:           v.Model,
		ChassisNumber:   v.ChassisNumber,
		PurchaseType:    v.PurchaseType,
	}
}

// VehicleSoldEvent is published when a vehicle transitions to Sold
type VehicleSoldEvent struct {
	shared.BaseDomainEvent
	StockNumber   string `json:"stock_number"`
	ChassisNumber string `json:"chassis_number"`
}

// NewVehicleSoldEvent creates a new VehicleSoldEvent
func NewVehicleSoldEvent(v *Vehicle) *VehicleSoldEvent {
	return &VehicleSoldEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventTypeVehicleSold, AggregateTypeVehicle, v.ID.String()),
		StockNumber:     v.StockNumber,
		ChassisNumber:   v.ChassisNumber,
	}
}
