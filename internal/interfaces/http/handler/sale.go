package handler

import (
	tradeapp "github.com/dealerops/backend/internal/application/trade"
	"github.com/dealerops/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SaleHandler handles sale and settlement API endpoints
type SaleHandler struct {
	BaseHandler
	saleService *tradeapp.SaleService
}

// NewSaleHandler creates a new SaleHandler
func NewSaleHandler(saleService *tradeapp.SaleService) *SaleHandler {
	return &SaleHandler{saleService: saleService}
}

// Quote previews the settlement for a deal without closing it
func (h *SaleHandler) Quote(c *gin.Context) {
	var req tradeapp.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	settlement, err := h.saleService.Quote(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, settlement)
}

// Finalize closes a deal, marks the vehicle sold and records the
// down payment and installment schedule
func (h *SaleHandler) Finalize(c *gin.Context) {
	var req tradeapp.FinalizeSaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	sale, err := h.saleService.Finalize(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, sale)
}

// AddPayment records a received payment against an existing sale
func (h *SaleHandler) AddPayment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid sale ID")
		return
	}

	var req tradeapp.AddPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	sale, err := h.saleService.AddPayment(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, sale)
}

// Get returns a single sale with its payment history
func (h *SaleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid sale ID")
		return
	}

	sale, err := h.saleService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, sale)
}

// List returns all sales
func (h *SaleHandler) List(c *gin.Context) {
	sales, err := h.saleService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.BaseHandler.List(c, sales, len(sales))
}

// RegisterRoutes registers all sale routes
func (h *SaleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	sales := rg.Group("/sales")
	{
		sales.GET("", h.List)
		sales.GET("/:id", h.Get)
		sales.POST("", h.Finalize)
		sales.POST("/quote", h.Quote)
		sales.POST("/:id/payments", h.AddPayment)
	}
}
