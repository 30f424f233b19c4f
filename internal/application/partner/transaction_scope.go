package partner

import (
	"context"

	"github.com/dealerops/backend/internal/domain/ledger"
	"github.com/dealerops/backend/internal/domain/partner"
)

// TransactionScope runs partner provisioning as one database
// transaction. Provisioning writes two rows, the payable sub-account
// and the partner, and either both land or neither does.
type TransactionScope interface {
	// Execute runs fn inside a transaction. An error from fn rolls the
	// transaction back; nil commits it.
	Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error
}

// TransactionalRepositories exposes the repositories taking part in
// one provisioning transaction.
type TransactionalRepositories interface {
	// PartnerRepo returns the partner repository scoped to the transaction
	PartnerRepo() partner.TradingPartnerRepository
	// AccountRepo returns the account repository scoped to the transaction
	AccountRepo() ledger.AccountRepository
}

// NoOpTransactionScope executes without a real transaction. Used in
// tests and with stores that have no transaction support.
type NoOpTransactionScope struct {
	partnerRepo partner.TradingPartnerRepository
	accountRepo ledger.AccountRepository
}

// NewNoOpTransactionScope creates a NoOpTransactionScope over the given repositories
func NewNoOpTransactionScope(partnerRepo partner.TradingPartnerRepository, accountRepo ledger.AccountRepository) *NoOpTransactionScope {
	return &NoOpTransactionScope{partnerRepo: partnerRepo, accountRepo: accountRepo}
}

// Execute runs fn against the plain repositories
func (s *NoOpTransactionScope) Execute(ctx context.Context, fn func(repos TransactionalRepositories) error) error {
	return fn(s)
}

// PartnerRepo returns the partner repository
func (s *NoOpTransactionScope) PartnerRepo() partner.TradingPartnerRepository {
	return s.partnerRepo
}

// AccountRepo returns the account repository
func (s *NoOpTransactionScope) AccountRepo() ledger.AccountRepository {
	return s.accountRepo
}
