package trade

import (
	"context"

	"github.com/google/uuid"
)

// SaleRepository defines the interface for sale persistence
type SaleRepository interface {
	// FindByID finds a sale by its ID, payments included
	FindByID(ctx context.Context, id uuid.UUID) (*Sale, error)

	// FindByVehicleID finds the sale attached to a vehicle
	FindByVehicleID(ctx context.Context, vehicleID uuid.UUID) (*Sale, error)

	// FindAll lists all sales, newest first
	FindAll(ctx context.Context) ([]Sale, error)

	// Save inserts or updates a sale together with its payments
	Save(ctx context.Context, s *Sale) error
}
