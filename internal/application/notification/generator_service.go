package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/dealerops/backend/internal/domain/expense"
	"github.com/dealerops/backend/internal/domain/inventory"
	"github.com/dealerops/backend/internal/domain/notification"
	"github.com/dealerops/backend/internal/domain/trade"
)

// Policy is the due-window for one notification category: an event
// whose due date falls between LowerBoundDays and LookaheadDays from
// today raises a reminder.
type Policy struct {
	LookaheadDays  int
	LowerBoundDays int
}

// Policies maps each category to its window
type Policies map[notification.Category]Policy

// DefaultPolicies returns the standard 0..5 day window for every category
func DefaultPolicies() Policies {
	standard := Policy{LookaheadDays: 5, LowerBoundDays: 0}
	return Policies{
		notification.CategoryVehicleETA:       standard,
		notification.CategoryInstallment:      standard,
		notification.CategoryRecurringExpense: standard,
	}
}

// GeneratorService scans due-date-bearing records and raises reminders.
// Ids are deterministic per due event, so running the generator any
// number of times with the same inputs creates each reminder once.
type GeneratorService struct {
	notificationRepo notification.Repository
	vehicleRepo      inventory.VehicleRepository
	saleRepo         trade.SaleRepository
	expenseRepo      expense.RecurringExpenseRepository
	policies         Policies
}

// NewGeneratorService creates a new GeneratorService
func NewGeneratorService(
	notificationRepo notification.Repository,
	vehicleRepo inventory.VehicleRepository,
	saleRepo trade.SaleRepository,
	expenseRepo expense.RecurringExpenseRepository,
	policies Policies,
) *GeneratorService {
	if len(policies) == 0 {
		policies = DefaultPolicies()
	}
	return &GeneratorService{
		notificationRepo: notificationRepo,
		vehicleRepo:      vehicleRepo,
		saleRepo:         saleRepo,
		expenseRepo:      expenseRepo,
		policies:         policies,
	}
}

type candidate struct {
	id       string
	category notification.Category
	message  string
	dueDate  time.Time
	entityID string
}

// Generate scans all three sources against the given date and creates
// reminders for due events inside their category's window that do not
// already have one. It returns only the newly created reminders.
func (s *GeneratorService) Generate(ctx context.Context, today time.Time) ([]NotificationResponse, error) {
	var candidates []candidate

	etaCandidates, err := s.vehicleETACandidates(ctx, today)
	if err != nil {
		return nil, err
	}
	candidates = append(candidates, etaCandidates...)

	installmentCandidates, err := s.installmentCandidates(ctx, today)
	if err != nil {
		return nil, err
	}
	candidates = append(candidates, installmentCandidates...)

	expenseCandidates, err := s.recurringExpenseCandidates(ctx, today)
	if err != nil {
		return nil, err
	}
	candidates = append(candidates, expenseCandidates...)

	if len(candidates) == 0 {
		return []NotificationResponse{}, nil
	}

	ids := make([]string, len(candidates))
	for i, c := range candidates {
		ids[i] = c.id
	}
	existing, err := s.notificationRepo.ExistingIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	created := []NotificationResponse{}
	for _, c := range candidates {
		if _, ok := existing[c.id]; ok {
			continue
		}
		n, err := notification.New(c.id, c.category, c.message, c.dueDate, c.entityID)
		if err != nil {
			return nil, err
		}
		if err := s.notificationRepo.Save(ctx, n); err != nil {
			return nil, err
		}
		created = append(created, ToNotificationResponse(n))
	}
	return created, nil
}

// List lists all reminders, soonest due first
func (s *GeneratorService) List(ctx context.Context, unreadOnly bool) ([]NotificationResponse, error) {
	var notifications []notification.Notification
	var err error
	if unreadOnly {
		notifications, err = s.notificationRepo.FindUnread(ctx)
	} else {
		notifications, err = s.notificationRepo.FindAll(ctx)
	}
	if err != nil {
		return nil, err
	}
	return ToNotificationResponses(notifications), nil
}

// MarkRead flips a reminder's read flag. The row stays, and the
// generator will not recreate it because its id already exists.
func (s *GeneratorService) MarkRead(ctx context.Context, id string) (*NotificationResponse, error) {
	n, err := s.notificationRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	n.MarkRead()
	if err := s.notificationRepo.Save(ctx, n); err != nil {
		return nil, err
	}
	response := ToNotificationResponse(n)
	return &response, nil
}

func (s *GeneratorService) vehicleETACandidates(ctx context.Context, today time.Time) ([]candidate, error) {
	vehicles, err := s.vehicleRepo.FindByStatus(ctx, inventory.StatusOnWay)
	if err != nil {
		return nil, err
	}

	policy := s.policy(notification.CategoryVehicleETA)
	var candidates []candidate
	for i := range vehicles {
		v := &vehicles[i]
		if v.ETA == nil {
			continue
		}
		if !s.inWindow(policy, today, *v.ETA) {
			continue
		}
		candidates = append(candidates, candidate{
			id:       notification.ETANotificationID(v.ID.String()),
			category: notification.CategoryVehicleETA,
			message:  fmt.Sprintf("%s %s (%s) arriving %s", v.Make, v.Model, v.ChassisNumber, v.ETA.Format("2006-01-02")),
			dueDate:  *v.ETA,
			entityID: v.ID.String(),
		})
	}
	return candidates, nil
}

func (s *GeneratorService) installmentCandidates(ctx context.Context, today time.Time) ([]candidate, error) {
	sales, err := s.saleRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	policy := s.policy(notification.CategoryInstallment)
	var candidates []candidate
	for i := range sales {
		sale := &sales[i]
		for _, inst := range sale.PendingInstallments() {
			if !s.inWindow(policy, today, inst.DueDate) {
				continue
			}
			candidates = append(candidates, candidate{
				id:       notification.InstallmentNotificationID(sale.ID.String(), inst.Number),
				category: notification.CategoryInstallment,
				message: fmt.Sprintf("Installment %d of KES %s due from %s on %s",
					inst.Number, inst.AmountDue.StringFixed(0), sale.CustomerName, inst.DueDate.Format("2006-01-02")),
				dueDate:  inst.DueDate,
				entityID: sale.ID.String(),
			})
		}
	}
	return candidates, nil
}

func (s *GeneratorService) recurringExpenseCandidates(ctx context.Context, today time.Time) ([]candidate, error) {
	expenses, err := s.expenseRepo.FindActive(ctx)
	if err != nil {
		return nil, err
	}

	policy := s.policy(notification.CategoryRecurringExpense)
	var candidates []candidate
	for i := range expenses {
		e := &expenses[i]

		// The window can straddle a month boundary, so both this
		// month's and next month's occurrence are checked. Ids carry
		// the occurrence month, keeping the two distinct.
		thisMonth := e.DueDateIn(today.Year(), today.Month(), today.Location())
		nextRef := thisMonth.AddDate(0, 1, -thisMonth.Day()+1)
		nextMonth := e.DueDateIn(nextRef.Year(), nextRef.Month(), today.Location())

		for _, due := range []time.Time{thisMonth, nextMonth} {
			if !s.inWindow(policy, today, due) {
				continue
			}
			candidates = append(candidates, candidate{
				id:       notification.RecurringNotificationID(e.ID.String(), due),
				category: notification.CategoryRecurringExpense,
				message: fmt.Sprintf("%s of KES %s due on %s",
					e.Name, e.Amount.BaseAmount().StringFixed(0), due.Format("2006-01-02")),
				dueDate:  due,
				entityID: e.ID.String(),
			})
		}
	}
	return candidates, nil
}

func (s *GeneratorService) policy(category notification.Category) Policy {
	if p, ok := s.policies[category]; ok {
		return p
	}
	return Policy{LookaheadDays: 5, LowerBoundDays: 0}
}

func (s *GeneratorService) inWindow(policy Policy, today, due time.Time) bool {
	days := daysUntil(today, due)
	return days >= policy.LowerBoundDays && days <= policy.LookaheadDays
}

// daysUntil counts whole calendar days from today to due, ignoring the
// time-of-day component of both.
func daysUntil(today, due time.Time) int {
	t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	d := time.Date(due.Year(), due.Month(), due.Day(), 0, 0, 0, 0, time.UTC)
	return int(d.Sub(t).Hours() / 24)
}
