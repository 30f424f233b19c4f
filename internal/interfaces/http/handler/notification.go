package handler

import (
	"time"

	notificationapp "github.com/dealerops/backend/internal/application/notification"
	"github.com/gin-gonic/gin"
)

// NotificationHandler handles obligation notification API endpoints
type NotificationHandler struct {
	BaseHandler
	generator *notificationapp.GeneratorService
}

// NewNotificationHandler creates a new NotificationHandler
func NewNotificationHandler(generator *notificationapp.GeneratorService) *NotificationHandler {
	return &NotificationHandler{generator: generator}
}

// Generate scans upcoming obligations and persists any notifications
// not yet on record. Generation is idempotent, so calling it twice for
// the same day returns the same set. An optional "date" query parameter
// (YYYY-MM-DD) overrides the reference day, mainly for backdated runs.
func (h *NotificationHandler) Generate(c *gin.Context) {
	today := time.Now()
	if raw := c.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			h.BadRequest(c, "Invalid date, expected YYYY-MM-DD")
			return
		}
		today = parsed
	}

	notifications, err := h.generator.Generate(c.Request.Context(), today)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.BaseHandler.List(c, notifications, len(notifications))
}

// List returns notifications ordered by due date. Pass unread=true to
// restrict the result to unread ones.
func (h *NotificationHandler) List(c *gin.Context) {
	unreadOnly := c.Query("unread") == "true"

	notifications, err := h.generator.List(c.Request.Context(), unreadOnly)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.BaseHandler.List(c, notifications, len(notifications))
}

// MarkRead marks a single notification as read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	notification, err := h.generator.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, notification)
}

// RegisterRoutes registers all notification routes
func (h *NotificationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	notifications := rg.Group("/notifications")
	{
		notifications.GET("", h.List)
		notifications.POST("/generate", h.Generate)
		notifications.POST("/:id/read", h.MarkRead)
	}
}
