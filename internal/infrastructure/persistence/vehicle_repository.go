package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dealerops/backend/internal/domain/inventory"
	"github.com/dealerops/backend/internal/domain/shared"
)

// GormVehicleRepository implements VehicleRepository using GORM
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewGormVehicleRepository creates a new GormVehicleRepository
func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// FindByID finds a vehicle by its ID
func (r *GormVehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*inventory.Vehicle, error) {
	var vehicle inventory.Vehicle
	if err := r.db.WithContext(ctx).First(&vehicle, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &vehicle, nil
}

// FindAll lists all vehicles, newest first
func (r *GormVehicleRepository) FindAll(ctx context.Context) ([]inventory.Vehicle, error) {
	var vehicles []inventory.Vehicle
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

// FindByStatus lists vehicles in one status, newest first
func (r *GormVehicleRepository) FindByStatus(ctx context.Context, status inventory.VehicleStatus) ([]inventory.Vehicle, error) {
	var vehicles []inventory.Vehicle
	if err := r.db.WithContext(ctx).
		Where("status = ?", status).
		Order("created_at DESC").
		Find(&vehicles).Error; err != nil {
		return nil, err
	}
	return vehicles, nil
}

// Save inserts or updates a vehicle
func (r *GormVehicleRepository) Save(ctx context.Context, v *inventory.Vehicle) error {
	return r.db.WithContext(ctx).Save(v).Error
}

// Ensure GormVehicleRepository implements VehicleRepository
var _ inventory.VehicleRepository = (*GormVehicleRepository)(nil)
