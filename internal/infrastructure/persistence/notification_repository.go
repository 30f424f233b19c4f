package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/dealerops/backend/internal/domain/notification"
	"github.com/dealerops/backend/internal/domain/shared"
)

// GormNotificationRepository implements notification.Repository using GORM
type GormNotificationRepository struct {
	db *gorm.DB
}

// NewGormNotificationRepository creates a new GormNotificationRepository
func NewGormNotificationRepository(db *gorm.DB) *GormNotificationRepository {
	return &GormNotificationRepository{db: db}
}

// FindByID finds a notification by its deterministic id
func (r *GormNotificationRepository) FindByID(ctx context.Context, id string) (*notification.Notification, error) {
	var n notification.Notification
	if err := r.db.WithContext(ctx).First(&n, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return &n, nil
}

// FindAll lists all notifications, soonest due first
func (r *GormNotificationRepository) FindAll(ctx context.Context) ([]notification.Notification, error) {
	var notifications []notification.Notification
	if err := r.db.WithContext(ctx).Order("due_date ASC").Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

// FindUnread lists notifications not yet marked read
func (r *GormNotificationRepository) FindUnread(ctx context.Context) ([]notification.Notification, error) {
	var notifications []notification.Notification
	if err := r.db.WithContext(ctx).
		Where("is_read = ?", false).
		Order("due_date ASC").
		Find(&notifications).Error; err != nil {
		return nil, err
	}
	return notifications, nil
}

// ExistingIDs reports which of the given ids already have a row
func (r *GormNotificationRepository) ExistingIDs(ctx context.Context, ids []string) (map[string]struct{}, error) {
	existing := make(map[string]struct{}, len(ids))
	if len(ids) == 0 {
		return existing, nil
	}

	var found []string
	if err := r.db.WithContext(ctx).
		Model(&notification.Notification{}).
		Where("id IN ?", ids).
		Pluck("id", &found).Error; err != nil {
		return nil, err
	}
	for _, id := range found {
		existing[id] = struct{}{}
	}
	return existing, nil
}

// Save inserts or updates a notification
func (r *GormNotificationRepository) Save(ctx context.Context, n *notification.Notification) error {
	return r.db.WithContext(ctx).Save(n).Error
}

// Ensure GormNotificationRepository implements notification.Repository
var _ notification.Repository = (*GormNotificationRepository)(nil)
