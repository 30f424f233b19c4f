package persistence

import (
	"context"

	"gorm.io/gorm"

	apptrade "github.com/dealerops/backend/internal/application/trade"
	"github.com/dealerops/backend/internal/domain/inventory"
	"github.com/dealerops/backend/internal/domain/partner"
	"github.com/dealerops/backend/internal/domain/trade"
)

// GormTradeTransactionScope implements the sale finalization
// TransactionScope using GORM transactions. The vehicle status flip,
// any inline customer and the sale row commit or roll back together.
type GormTradeTransactionScope struct {
	db *gorm.DB
}

// NewGormTradeTransactionScope creates a new GormTradeTransactionScope
func NewGormTradeTransactionScope(db *gorm.DB) *GormTradeTransactionScope {
	return &GormTradeTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormTradeTransactionScope) Execute(ctx context.Context, fn func(repos apptrade.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormTradeRepositories{tx: tx})
	})
}

type gormTradeRepositories struct {
	tx *gorm.DB
}

// SaleRepo returns the sale repository scoped to the current transaction
func (r *gormTradeRepositories) SaleRepo() trade.SaleRepository {
	return NewGormSaleRepository(r.tx)
}

// VehicleRepo returns the vehicle repository scoped to the current transaction
func (r *gormTradeRepositories) VehicleRepo() inventory.VehicleRepository {
	return NewGormVehicleRepository(r.tx)
}

// CustomerRepo returns the customer repository scoped to the current transaction
func (r *gormTradeRepositories) CustomerRepo() partner.CustomerRepository {
	return NewGormCustomerRepository(r.tx)
}

var _ apptrade.TransactionScope = (*GormTradeTransactionScope)(nil)
var _ apptrade.TransactionalRepositories = (*gormTradeRepositories)(nil)
