package ledger

import "context"

// AccountRepository defines the interface for chart-of-accounts persistence
type AccountRepository interface {
	// FindByID finds an account by its storage-assigned id
	FindByID(ctx context.Context, id int) (*Account, error)

	// FindByCode finds an account by its code
	FindByCode(ctx context.Context, code string) (*Account, error)

	// ListAll returns the full chart ordered lexicographically by code
	ListAll(ctx context.Context) ([]Account, error)

	// CountByParent counts direct children of the given parent account
	CountByParent(ctx context.Context, parentID int) (int64, error)

	// Save inserts or updates an account
	Save(ctx context.Context, account *Account) error
}
