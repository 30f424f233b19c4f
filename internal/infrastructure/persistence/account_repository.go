package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dealerops/backend/internal/domain/ledger"
	"github.com/dealerops/backend/internal/domain/shared"
)

// GormAccountRepository implements AccountRepository using GORM
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GormAccountRepository
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// FindByID finds an account by its storage-assigned id
func (r *GormAccountRepository) FindByID(ctx context.Context, id int) (*ledger.Account, error) {
	var account ledger.Account
	if err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// FindByCode finds an account by its code
func (r *GormAccountRepository) FindByCode(ctx context.Context, code string) (*ledger.Account, error) {
	var account ledger.Account
	if err := r.db.WithContext(ctx).First(&account, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &account, nil
}

// ListAll returns the full chart ordered lexicographically by code
func (r *GormAccountRepository) ListAll(ctx context.Context) ([]ledger.Account, error) {
	var accounts []ledger.Account
	if err := r.db.WithContext(ctx).Order("code ASC").Find(&accounts).Error; err != nil {
		return nil, err
	}
	return accounts, nil
}

// CountByParent counts direct children of the given parent account
func (r *GormAccountRepository) CountByParent(ctx context.Context, parentID int) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&ledger.Account{}).
		Where("parent_id = ?", parentID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// Save inserts or updates an account
func (r *GormAccountRepository) Save(ctx context.Context, account *ledger.Account) error {
	return r.db.WithContext(ctx).Save(account).Error
}

// Ensure GormAccountRepository implements AccountRepository
var _ ledger.AccountRepository = (*GormAccountRepository)(nil)
