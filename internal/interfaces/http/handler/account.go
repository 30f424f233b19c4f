package handler

import (
	"strconv"

	ledgerapp "github.com/dealerops/backend/internal/application/ledger"
	"github.com/gin-gonic/gin"
)

// AccountHandler handles chart-of-accounts API endpoints
type AccountHandler struct {
	BaseHandler
	accountService *ledgerapp.AccountService
}

// NewAccountHandler creates a new AccountHandler
func NewAccountHandler(accountService *ledgerapp.AccountService) *AccountHandler {
	return &AccountHandler{accountService: accountService}
}

// List returns the full chart of accounts ordered by code
func (h *AccountHandler) List(c *gin.Context) {
	accounts, err := h.accountService.List(c.Request.Context())
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.BaseHandler.List(c, accounts, len(accounts))
}

// Get returns a single account by its numeric id
func (h *AccountHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid account ID")
		return
	}

	account, err := h.accountService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, account)
}

// GetByCode returns a single account by its ledger code
func (h *AccountHandler) GetByCode(c *gin.Context) {
	account, err := h.accountService.GetByCode(c.Request.Context(), c.Param("code"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, account)
}

// AllocateCode previews the next sub-account code under a parent
// without creating anything
func (h *AccountHandler) AllocateCode(c *gin.Context) {
	parentID, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid account ID")
		return
	}

	code, err := h.accountService.AllocateSubAccountCode(c.Request.Context(), parentID)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, gin.H{"code": code})
}

// CreateSubAccount creates a child account under an existing parent
func (h *AccountHandler) CreateSubAccount(c *gin.Context) {
	var req ledgerapp.CreateSubAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	account, err := h.accountService.CreateSubAccount(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, account)
}

// RegisterRoutes registers all account routes
func (h *AccountHandler) RegisterRoutes(rg *gin.RouterGroup) {
	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.List)
		accounts.GET("/:id", h.Get)
		accounts.GET("/code/:code", h.GetByCode)
		accounts.GET("/:id/next-code", h.AllocateCode)
		accounts.POST("/sub-accounts", h.CreateSubAccount)
	}
}
