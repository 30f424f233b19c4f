package ledger

import (
	"context"

	"github.com/dealerops/backend/internal/domain/ledger"
	"github.com/dealerops/backend/internal/domain/shared"
)

// AccountService handles chart-of-accounts operations
type AccountService struct {
	accountRepo ledger.AccountRepository
}

// NewAccountService creates a new AccountService
func NewAccountService(accountRepo ledger.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

// List returns the full chart ordered lexicographically by code
func (s *AccountService) List(ctx context.Context) ([]AccountResponse, error) {
	accounts, err := s.accountRepo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return ToAccountResponses(accounts), nil
}

// GetByID retrieves one account
func (s *AccountService) GetByID(ctx context.Context, id int) (*AccountResponse, error) {
	account, err := s.accountRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	response := ToAccountResponse(account)
	return &response, nil
}

// GetByCode retrieves one account by code
func (s *AccountService) GetByCode(ctx context.Context, code string) (*AccountResponse, error) {
	account, err := s.accountRepo.FindByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	response := ToAccountResponse(account)
	return &response, nil
}

// AllocateSubAccountCode produces the next child code under the given
// parent: the parent's code, a dash, and the zero-padded child count
// plus one. This is a read-then-allocate sequence without a lock, which
// is safe in the single-writer deployment; the unique index on code is
// the backstop if a second writer ever appears.
func (s *AccountService) AllocateSubAccountCode(ctx context.Context, parentID int) (string, error) {
	parent, err := s.accountRepo.FindByID(ctx, parentID)
	if err != nil {
		return "", err
	}
	count, err := s.accountRepo.CountByParent(ctx, parentID)
	if err != nil {
		return "", err
	}
	return ledger.SubAccountCode(parent.Code, int(count)+1), nil
}

// CreateSubAccount allocates the next code under the parent and
// inserts the child account, inheriting the parent's category.
func (s *AccountService) CreateSubAccount(ctx context.Context, req CreateSubAccountRequest) (*AccountResponse, error) {
	parent, err := s.accountRepo.FindByID(ctx, req.ParentID)
	if err != nil {
		return nil, err
	}

	count, err := s.accountRepo.CountByParent(ctx, req.ParentID)
	if err != nil {
		return nil, err
	}

	code := ledger.SubAccountCode(parent.Code, int(count)+1)

	existing, err := s.accountRepo.FindByCode(ctx, code)
	if err != nil && err != shared.ErrNotFound {
		return nil, err
	}
	if existing != nil {
		return nil, shared.NewDomainError("CODE_TAKEN", "Allocated account code is already in use")
	}

	account, err := ledger.NewSubAccount(code, req.Name, parent.Category, parent)
	if err != nil {
		return nil, err
	}
	if err := s.accountRepo.Save(ctx, account); err != nil {
		return nil, err
	}

	response := ToAccountResponse(account)
	return &response, nil
}
