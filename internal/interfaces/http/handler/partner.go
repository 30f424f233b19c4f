package handler

import (
	partnerapp "github.com/dealerops/backend/internal/application/partner"
	"github.com/dealerops/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// PartnerHandler handles trading partner API endpoints. Creating a
// partner also creates its payable sub-account, so duplicate names
// come back as 409 with the existing record attached.
type PartnerHandler struct {
	BaseHandler
	provisioner *partnerapp.ProvisionerService
}

// NewPartnerHandler creates a new PartnerHandler
func NewPartnerHandler(provisioner *partnerapp.ProvisionerService) *PartnerHandler {
	return &PartnerHandler{provisioner: provisioner}
}

// Provision creates a trading partner together with its payable sub-account
func (h *PartnerHandler) Provision(c *gin.Context) {
	var req partnerapp.ProvisionPartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	partner, err := h.provisioner.Provision(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, partner)
}

// Get returns a single partner by its kind-prefixed normalized id
func (h *PartnerHandler) Get(c *gin.Context) {
	partner, err := h.provisioner.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, partner)
}

// ListByKind returns all partners of one kind, supplied via the
// required "kind" query parameter
func (h *PartnerHandler) ListByKind(c *gin.Context) {
	kind := c.Query("kind")
	if kind == "" {
		h.BadRequest(c, "Query parameter 'kind' is required")
		return
	}

	partners, err := h.provisioner.ListByKind(c.Request.Context(), kind)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.List(c, partners, len(partners))
}

// AddSalesperson adds a named contact to an existing partner
func (h *PartnerHandler) AddSalesperson(c *gin.Context) {
	var req partnerapp.AddSalespersonRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	partner, err := h.provisioner.AddSalesperson(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, partner)
}

// RegisterRoutes registers all partner routes
func (h *PartnerHandler) RegisterRoutes(rg *gin.RouterGroup) {
	partners := rg.Group("/partners")
	{
		partners.GET("", h.ListByKind)
		partners.GET("/:id", h.Get)
		partners.POST("", h.Provision)
		partners.POST("/:id/salespersons", h.AddSalesperson)
	}
}
