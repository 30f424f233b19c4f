package trade

import (
	"context"

	"github.com/dealerops/backend/internal/domain/inventory"
	"github.com/dealerops/backend/internal/domain/partner"
	"github.com/dealerops/backend/internal/domain/trade"
)

// TransactionScope runs sale finalization as one database transaction.
// Finalizing touches the vehicle, possibly a newly created customer and
// the sale itself; either all of it lands or none of it does.
type TransactionScope interface {
	// Execute runs fn inside a transaction. An error from fn rolls the
	// transaction back; nil commits it.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the repositories taking part in
// one finalization transaction.
type TransactionalRepositories interface {
	// SaleRepo returns the sale repository scoped to the transaction
	SaleRepo() trade.SaleRepository
	// VehicleRepo returns the vehicle repository scoped to the transaction
	VehicleRepo() inventory.VehicleRepository
	// CustomerRepo returns the customer repository scoped to the transaction
	CustomerRepo() partner.CustomerRepository
}

// NoOpTransactionScope executes without a real transaction. Used in
// tests and with stores that have no transaction support.
type NoOpTransactionScope struct {
	saleRepo     trade.SaleRepository
	vehicleRepo  inventory.VehicleRepository
	customerRepo partner.CustomerRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories
func NewNoOpTransactionScope(
	saleRepo trade.SaleRepository,
	vehicleRepo inventory.VehicleRepository,
	customerRepo partner.CustomerRepository,
) *NoOpTransactionScope {
	return &NoOpTransactionScope{
		saleRepo:     saleRepo,
		vehicleRepo:  vehicleRepo,
		customerRepo: customerRepo,
	}
}

// Execute runs fn against the plain repositories
func (s *NoOpTransactionScope) Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// SaleRepo returns the sale repository
func (s *NoOpTransactionScope) SaleRepo() trade.SaleRepository { return s.saleRepo }

// VehicleRepo returns the vehicle repository
func (s *NoOpTransactionScope) VehicleRepo() inventory.VehicleRepository { return s.vehicleRepo }

// CustomerRepo returns the customer repository
func (s *NoOpTransactionScope) CustomerRepo() partner.CustomerRepository { return s.customerRepo }
