package inventory

import (
	"context"

	"github.com/google/uuid"
)

// VehicleRepository defines the interface for vehicle persistence
type VehicleRepository interface {
	// FindByID finds a vehicle by its ID
	FindByID(ctx context.Context, id uuid.UUID) (*Vehicle, error)

	// FindAll lists all vehicles, newest first
	FindAll(ctx context.Context) ([]Vehicle, error)

	// FindByStatus lists vehicles in one status
	FindByStatus(ctx context.Context, status VehicleStatus) ([]Vehicle, error)

	// Save inserts or updates a vehicle
	Save(ctx context.Context, v *Vehicle) error
}
