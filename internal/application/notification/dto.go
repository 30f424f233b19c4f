package notification

import (
	"time"

	"github.com/dealerops/backend/internal/domain/notification"
)

// NotificationResponse represents a reminder in API responses
type NotificationResponse struct {
	ID        string    `json:"id"`
	Category  string    `json:"category"`
	Message   string    `json:"message"`
	DueDate   time.Time `json:"due_date"`
	EntityID  string    `json:"entity_id"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// ToNotificationResponse converts a notification to its response DTO
func ToNotificationResponse(n *notification.Notification) NotificationResponse {
	return NotificationResponse{
		ID:        n.ID,
		Category:  string(n.Category),
		Message:   n.Message,
		DueDate:   n.DueDate,
		EntityID:  n.EntityID,
		IsRead:    n.IsRead,
		CreatedAt: n.CreatedAt,
	}
}

// ToNotificationResponses converts a slice of notifications
func ToNotificationResponses(notifications []notification.Notification) []NotificationResponse {
	responses := make([]NotificationResponse, len(notifications))
	for i := range notifications {
		responses[i] = ToNotificationResponse(&notifications[i])
	}
	return responses
}
