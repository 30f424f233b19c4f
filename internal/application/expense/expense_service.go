package expense

import (
	"context"
	"strings"
	"time"

	"github.com/dealerops/backend/internal/domain/expense"
	"github.com/dealerops/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateExpenseRequest represents a request to register a recurring expense
type CreateExpenseRequest struct {
	Name               string `json:"name" binding:"required,min=1,max=200"`
	Amount             string `json:"amount" binding:"required"`
	Currency           string `json:"currency" binding:"omitempty,oneof=KES JPY USD EUR PKR"`
	Rate               string `json:"rate"`
	DayOfMonthDue      int    `json:"day_of_month_due" binding:"required,min=1,max=31"`
	ExpenseAccountCode string `json:"expense_account_code"`
	PayableAccountCode string `json:"payable_account_code"`
	Notes              string `json:"notes" binding:"max=500"`
}

// ExpenseResponse represents a recurring expense in API responses
type ExpenseResponse struct {
	ID                 uuid.UUID       `json:"id"`
	Name               string          `json:"name"`
	Amount             decimal.Decimal `json:"amount"`
	Currency           string          `json:"currency"`
	BaseAmount         decimal.Decimal `json:"base_amount"`
	DayOfMonthDue      int             `json:"day_of_month_due"`
	NextDueDate        time.Time       `json:"next_due_date"`
	ExpenseAccountCode string          `json:"expense_account_code,omitempty"`
	PayableAccountCode string          `json:"payable_account_code,omitempty"`
	Active             bool            `json:"active"`
	Notes              string          `json:"notes,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// ToExpenseResponse converts a recurring expense to its response DTO
func ToExpenseResponse(e *expense.RecurringExpense, ref time.Time) ExpenseResponse {
	return ExpenseResponse{
		ID:                 e.ID,
		Name:               e.Name,
		Amount:             e.Amount.Amount(),
		Currency:           string(e.Amount.Currency()),
		BaseAmount:         e.Amount.BaseAmount(),
		DayOfMonthDue:      e.DayOfMonthDue,
		NextDueDate:        e.NextDueDate(ref),
		ExpenseAccountCode: e.ExpenseAccountCode,
		PayableAccountCode: e.PayableAccountCode,
		Active:             e.Active,
		Notes:              e.Notes,
		CreatedAt:          e.CreatedAt,
	}
}

// ExpenseService handles recurring expense records
type ExpenseService struct {
	expenseRepo expense.RecurringExpenseRepository
}

// NewExpenseService creates a new ExpenseService
func NewExpenseService(expenseRepo expense.RecurringExpenseRepository) *ExpenseService {
	return &ExpenseService{expenseRepo: expenseRepo}
}

// Create registers a recurring expense
func (s *ExpenseService) Create(ctx context.Context, req CreateExpenseRequest) (*ExpenseResponse, error) {
	amount := valueobject.ZeroKES()
	if req.Currency != "" {
		amount = amount.WithCurrency(valueobject.Currency(req.Currency))
	}
	if req.Rate != "" {
		if rate, err := decimal.NewFromString(strings.TrimSpace(req.Rate)); err == nil {
			amount = amount.WithRate(rate)
		}
	}
	amount = amount.WithAmount(req.Amount)

	e, err := expense.NewRecurringExpense(req.Name, amount, req.DayOfMonthDue)
	if err != nil {
		return nil, err
	}
	if req.ExpenseAccountCode != "" || req.PayableAccountCode != "" {
		e.SetAccounts(req.ExpenseAccountCode, req.PayableAccountCode)
	}
	e.Notes = req.Notes

	if err := s.expenseRepo.Save(ctx, e); err != nil {
		return nil, err
	}
	response := ToExpenseResponse(e, time.Now())
	return &response, nil
}

// List lists all recurring expenses
func (s *ExpenseService) List(ctx context.Context) ([]ExpenseResponse, error) {
	expenses, err := s.expenseRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now()
	responses := make([]ExpenseResponse, len(expenses))
	for i := range expenses {
		responses[i] = ToExpenseResponse(&expenses[i], now)
	}
	return responses, nil
}

// Deactivate stops an expense from generating further reminders
func (s *ExpenseService) Deactivate(ctx context.Context, id uuid.UUID) (*ExpenseResponse, error) {
	e, err := s.expenseRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	e.Deactivate()
	if err := s.expenseRepo.Save(ctx, e); err != nil {
		return nil, err
	}
	response := ToExpenseResponse(e, time.Now())
	return &response, nil
}
