package notification

import (
	"context"
	"fmt"
	"time"

	"github.com/dealerops/backend/internal/domain/shared"
)

// Category identifies which kind of due event raised a reminder
type Category string

const (
	CategoryVehicleETA       Category = "vehicle_eta"
	CategoryInstallment      Category = "installment"
	CategoryRecurringExpense Category = "recurring_expense"
)

// IsValid checks if the category is one of the known values
func (c Category) IsValid() bool {
	switch c {
	case CategoryVehicleETA, CategoryInstallment, CategoryRecurringExpense:
		return true
	}
	return false
}

// Notification is a reminder for a dated obligation. Its id is a pure
// function of the event that raised it, so a due event produces at
// most one row no matter how many times the generator runs. Rows are
// never deleted; marking read only flips a flag.
type Notification struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	Category  Category  `gorm:"not null;index" json:"category"`
	Message   string    `gorm:"not null" json:"message"`
	DueDate   time.Time `gorm:"not null" json:"due_date"`
	EntityID  string    `gorm:"not null;index" json:"entity_id"`
	IsRead    bool      `gorm:"default:false" json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the table name for GORM
func (Notification) TableName() string {
	return "notifications"
}

// ETANotificationID is the id for a vehicle arrival reminder
func ETANotificationID(vehicleID string) string {
	return "eta-" + vehicleID
}

// InstallmentNotificationID is the id for one installment of a
// hire-purchase plan.
func InstallmentNotificationID(saleID string, number int) string {
	return fmt.Sprintf("hp-%s-%d", saleID, number)
}

// RecurringNotificationID is the id for one month's occurrence of a
// recurring expense.
func RecurringNotificationID(expenseID string, due time.Time) string {
	return fmt.Sprintf("recurring-%s-%s", expenseID, due.Format("2006-01"))
}

// New builds an unread notification for a due event
func New(id string, category Category, message string, dueDate time.Time, entityID string) (*Notification, error) {
	if id == "" || entityID == "" {
		return nil, shared.NewDomainError("INVALID_NOTIFICATION", "Notification id and entity id are required")
	}
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_NOTIFICATION", "Unknown notification category")
	}
	now := time.Now()
	return &Notification{
		ID:        id,
		Category:  category,
		Message:   message,
		DueDate:   dueDate,
		EntityID:  entityID,
		IsRead:    false,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// MarkRead flips the read flag. It never removes the row.
func (n *Notification) MarkRead() {
	n.IsRead = true
	n.UpdatedAt = time.Now()
}

// Repository defines persistence for notifications
type Repository interface {
	// FindByID finds a notification by its deterministic id
	FindByID(ctx context.Context, id string) (*Notification, error)

	// FindAll lists all notifications, soonest due first
	FindAll(ctx context.Context) ([]Notification, error)

	// FindUnread lists notifications not yet marked read
	FindUnread(ctx context.Context) ([]Notification, error)

	// ExistingIDs reports which of the given ids already have a row
	ExistingIDs(ctx context.Context, ids []string) (map[string]struct{}, error)

	// Save inserts or updates a notification
	Save(ctx context.Context, n *Notification) error
}
