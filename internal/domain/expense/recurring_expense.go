package expense

import (
	"context"
	"strings"
	"time"

	"github.com/dealerops/backend/internal/domain/shared"
	"github.com/dealerops/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// RecurringExpense is a monthly obligation such as rent, insurance
// premiums or a standing service contract. It carries the ledger
// accounts it posts against and the day of the month it falls due,
// which feeds the reminder generator.
type RecurringExpense struct {
	shared.BaseEntity

	Name          string                    `gorm:"not null" json:"name"`
	Amount        valueobject.CurrencyValue `gorm:"type:text;not null" json:"amount"`
	DayOfMonthDue int                       `gorm:"not null" json:"day_of_month_due"`

	// Ledger account codes this expense posts to when paid.
	ExpenseAccountCode string `json:"expense_account_code"`
	PayableAccountCode string `json:"payable_account_code"`

	Active bool   `gorm:"default:true" json:"active"`
	Notes  string `json:"notes,omitempty"`
}

// TableName returns the table name for GORM
func (RecurringExpense) TableName() string {
	return "recurring_expenses"
}

// NewRecurringExpense validates and builds a recurring expense record
func NewRecurringExpense(name string, amount valueobject.CurrencyValue, dayOfMonthDue int) (*RecurringExpense, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_EXPENSE", "Expense name is required")
	}
	if dayOfMonthDue < 1 || dayOfMonthDue > 31 {
		return nil, shared.NewDomainError("INVALID_EXPENSE", "Day of month due must be between 1 and 31")
	}
	return &RecurringExpense{
		BaseEntity:    shared.NewBaseEntity(),
		Name:          name,
		Amount:        amount,
		DayOfMonthDue: dayOfMonthDue,
		Active:        true,
	}, nil
}

// SetAccounts records the ledger accounts the expense posts against
func (e *RecurringExpense) SetAccounts(expenseCode, payableCode string) {
	e.ExpenseAccountCode = expenseCode
	e.PayableAccountCode = payableCode
	e.UpdatedAt = time.Now()
}

// Deactivate stops the expense from generating further reminders
func (e *RecurringExpense) Deactivate() {
	e.Active = false
	e.UpdatedAt = time.Now()
}

// NextDueDate returns the due date for the month containing ref,
// clamping the configured day to the month's length. If that date has
// already passed it rolls to the following month.
func (e *RecurringExpense) NextDueDate(ref time.Time) time.Time {
	today := time.Date(ref.Year(), ref.Month(), ref.Day(), 0, 0, 0, 0, ref.Location())
	due := dueInMonth(ref.Year(), ref.Month(), e.DayOfMonthDue, ref.Location())
	if due.Before(today) {
		next := today.AddDate(0, 1, -today.Day()+1)
		due = dueInMonth(next.Year(), next.Month(), e.DayOfMonthDue, ref.Location())
	}
	return due
}

// DueDateIn returns the clamped due date for an arbitrary year/month,
// used when generating reminders for a specific period.
func (e *RecurringExpense) DueDateIn(year int, month time.Month, loc *time.Location) time.Time {
	return dueInMonth(year, month, e.DayOfMonthDue, loc)
}

func dueInMonth(year int, month time.Month, day int, loc *time.Location) time.Time {
	if last := daysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, 0, 0, 0, 0, loc)
}

func daysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// RecurringExpenseRepository defines persistence for recurring expenses
type RecurringExpenseRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RecurringExpense, error)
	FindAll(ctx context.Context) ([]RecurringExpense, error)
	FindActive(ctx context.Context) ([]RecurringExpense, error)
	Save(ctx context.Context, expense *RecurringExpense) error
}
