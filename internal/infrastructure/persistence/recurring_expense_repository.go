package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/dealerops/backend/internal/domain/expense"
	"github.com/dealerops/backend/internal/domain/shared"
)

// GormRecurringExpenseRepository implements RecurringExpenseRepository using GORM
type GormRecurringExpenseRepository struct {
	db *gorm.DB
}

// NewGormRecurringExpenseRepository creates a new GormRecurringExpenseRepository
func NewGormRecurringExpenseRepository(db *gorm.DB) *GormRecurringExpenseRepository {
	return &GormRecurringExpenseRepository{db: db}
}

// FindByID finds a recurring expense by its ID
func (r *GormRecurringExpenseRepository) FindByID(ctx context.Context, id uuid.UUID) (*expense.RecurringExpense, error) {
	var e expense.RecurringExpense
	if err := r.db.WithContext(ctx).First(&e, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

// FindAll lists all recurring expenses ordered by name
func (r *GormRecurringExpenseRepository) FindAll(ctx context.Context) ([]expense.RecurringExpense, error) {
	var expenses []expense.RecurringExpense
	if err := r.db.WithContext(ctx).Order("name ASC").Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// FindActive lists expenses still generating reminders
func (r *GormRecurringExpenseRepository) FindActive(ctx context.Context) ([]expense.RecurringExpense, error) {
	var expenses []expense.RecurringExpense
	if err := r.db.WithContext(ctx).
		Where("active = ?", true).
		Order("name ASC").
		Find(&expenses).Error; err != nil {
		return nil, err
	}
	return expenses, nil
}

// Save inserts or updates a recurring expense
func (r *GormRecurringExpenseRepository) Save(ctx context.Context, e *expense.RecurringExpense) error {
	return r.db.WithContext(ctx).Save(e).Error
}

// Ensure GormRecurringExpenseRepository implements RecurringExpenseRepository
var _ expense.RecurringExpenseRepository = (*GormRecurringExpenseRepository)(nil)
