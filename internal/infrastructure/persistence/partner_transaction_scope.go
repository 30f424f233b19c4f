package persistence

import (
	"context"

	"gorm.io/gorm"

	apppartner "github.com/dealerops/backend/internal/application/partner"
	"github.com/dealerops/backend/internal/domain/ledger"
	"github.com/dealerops/backend/internal/domain/partner"
)

// GormPartnerTransactionScope implements the partner provisioning
// TransactionScope using GORM transactions. The payable sub-account
// and the partner row commit or roll back together.
type GormPartnerTransactionScope struct {
	db *gorm.DB
}

// NewGormPartnerTransactionScope creates a new GormPartnerTransactionScope
func NewGormPartnerTransactionScope(db *gorm.DB) *GormPartnerTransactionScope {
	return &GormPartnerTransactionScope{db: db}
}

// Execute runs the given function within a database transaction
func (s *GormPartnerTransactionScope) Execute(ctx context.Context, fn func(repos apppartner.TransactionalRepositories) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormPartnerRepositories{tx: tx})
	})
}

type gormPartnerRepositories struct {
	tx *gorm.DB
}

// PartnerRepo returns the partner repository scoped to the current transaction
func (r *gormPartnerRepositories) PartnerRepo() partner.TradingPartnerRepository {
	return NewGormTradingPartnerRepository(r.tx)
}

// AccountRepo returns the account repository scoped to the current transaction
func (r *gormPartnerRepositories) AccountRepo() ledger.AccountRepository {
	return NewGormAccountRepository(r.tx)
}

var _ apppartner.TransactionScope = (*GormPartnerTransactionScope)(nil)
var _ apppartner.TransactionalRepositories = (*gormPartnerRepositories)(nil)
