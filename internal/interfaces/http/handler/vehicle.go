package handler

import (
	inventoryapp "github.com/dealerops/backend/internal/application/inventory"
	"github.com/dealerops/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// VehicleHandler handles vehicle stock API endpoints
type VehicleHandler struct {
	BaseHandler
	vehicleService *inventoryapp.VehicleService
}

// NewVehicleHandler creates a new VehicleHandler
func NewVehicleHandler(vehicleService *inventoryapp.VehicleService) *VehicleHandler {
	return &VehicleHandler{vehicleService: vehicleService}
}

// Create takes a vehicle into stock
func (h *VehicleHandler) Create(c *gin.Context) {
	var req inventoryapp.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.HandleValidationError(c, err)
		return
	}

	vehicle, err := h.vehicleService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Created(c, vehicle)
}

// Get returns a single vehicle with its computed acquisition cost
func (h *VehicleHandler) Get(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vehicle ID")
		return
	}

	vehicle, err := h.vehicleService.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, vehicle)
}

// List returns vehicles, optionally filtered by the "status" query parameter
func (h *VehicleHandler) List(c *gin.Context) {
	vehicles, err := h.vehicleService.List(c.Request.Context(), c.Query("status"))
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.BaseHandler.List(c, vehicles, len(vehicles))
}

// UpdateImportCosting replaces the cost sheet of an import unit
func (h *VehicleHandler) UpdateImportCosting(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vehicle ID")
		return
	}

	var req inventoryapp.ImportCostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	vehicle, err := h.vehicleService.UpdateImportCosting(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, vehicle)
}

// UpdateLocalCosting replaces the cost sheet of a locally purchased unit
func (h *VehicleHandler) UpdateLocalCosting(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vehicle ID")
		return
	}

	var req inventoryapp.LocalCostingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	vehicle, err := h.vehicleService.UpdateLocalCosting(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, vehicle)
}

// SetShipment records transit details for an import unit
func (h *VehicleHandler) SetShipment(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vehicle ID")
		return
	}

	var req inventoryapp.SetShipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	vehicle, err := h.vehicleService.SetShipment(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, vehicle)
}

// SetLocation moves a unit between locations
func (h *VehicleHandler) SetLocation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "Invalid vehicle ID")
		return
	}

	var req inventoryapp.SetLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, err.Error())
		return
	}

	vehicle, err := h.vehicleService.SetLocation(c.Request.Context(), id, req)
	if err != nil {
		h.HandleDomainError(c, err)
		return
	}
	h.Success(c, vehicle)
}

// RegisterRoutes registers all vehicle routes
func (h *VehicleHandler) RegisterRoutes(rg *gin.RouterGroup) {
	vehicles := rg.Group("/vehicles")
	{
		vehicles.GET("", h.List)
		vehicles.GET("/:id", h.Get)
		vehicles.POST("", h.Create)
		vehicles.PUT("/:id/costing/import", h.UpdateImportCosting)
		vehicles.PUT("/:id/costing/local", h.UpdateLocalCosting)
		vehicles.PUT("/:id/shipment", h.SetShipment)
		vehicles.PUT("/:id/location", h.SetLocation)
	}
}
