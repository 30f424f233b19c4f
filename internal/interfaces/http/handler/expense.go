package handler

import (
	expenseapp "github.com/dealerops/backend/internal/application/expense"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ExpenseHandler handles recurring expense API endpoints
type ExpenseHandler struct {
	BaseHandler
	expenseService *expenseapp.ExpenseService
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseService *expenseapp.ExpenseService) *ExpenseHandler {
	return &ExpenseHandler{expenseService: expenseService}
}

// Create registers a recurring expense
func (h *ExpenseHandler) Create(c *gin.Context) {
	var req expenseapp.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	expense, err := h.expenseService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, expense)
}

// List returns all recurring expenses, active and inactive
func (h *ExpenseHandler) List(c *gin.Context) {
	expenses, err := h.expenseService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.BaseHandler.List(c, expenses, len(expenses))
}

// Deactivate stops an expense from producing further notifications
func (h *ExpenseHandler) Deactivate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid expense ID")
		return
	}

	expense, err := h.expenseService.Deactivate(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, expense)
}

// RegisterRoutes registers all recurring expense routes
func (h *ExpenseHandler) RegisterRoutes(rg *gin.RouterGroup) {
	expenses := rg.Group("/recurring-expenses")
	{
		expenses.GET("", h.List)
		expenses.POST("", h.Create)
		expenses.POST("/:id/deactivate", h.Deactivate)
	}
}
