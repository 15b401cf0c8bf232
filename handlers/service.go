package handlers

import (
	"net/http"
	"strconv"

	"huzla/models"
	"huzla/services/catalog"
	"huzla/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ServiceHandler serves catalog endpoints.
type ServiceHandler struct {
	Catalog catalog.CatalogService
}

// NewServiceHandler creates a new ServiceHandler instance.
func NewServiceHandler(svc catalog.CatalogService) *ServiceHandler {
	return &ServiceHandler{Catalog: svc}
}

// CreateServiceHandler handles POST /api/services (provider only).
func (h *ServiceHandler) CreateServiceHandler(c *gin.Context) {
	logger := utils.GetLogger()
	providerID := c.GetString("userID")

	var req catalog.ServiceInput
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid service create request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	svc, err := h.Catalog.Create(providerID, req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, svc)
}

// ListServicesHandler handles GET /api/services (public).
func (h *ServiceHandler) ListServicesHandler(c *gin.Context) {
	filter := models.ServiceFilter{
		Category: c.Query("category"),
		Search:   c.Query("search"),
	}
	if raw := c.Query("minPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MinPrice = &v
		}
	}
	if raw := c.Query("maxPrice"); raw != "" {
		if v, err := strconv.ParseFloat(raw, 64); err == nil {
			filter.MaxPrice = &v
		}
	}

	services, err := h.Catalog.List(filter)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// GetServiceHandler handles GET /api/services/:id (public).
func (h *ServiceHandler) GetServiceHandler(c *gin.Context) {
	svc, err := h.Catalog.GetByID(c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// ProviderServicesHandler handles GET /api/services/provider/services.
func (h *ServiceHandler) ProviderServicesHandler(c *gin.Context) {
	services, err := h.Catalog.ListByProvider(c.GetString("userID"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, services)
}

// UpdateServiceHandler handles PUT /api/services/:id (owner only).
func (h *ServiceHandler) UpdateServiceHandler(c *gin.Context) {
	logger := utils.GetLogger()

	var req models.ServiceUpdate
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Invalid service update request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid request: " + err.Error()})
		return
	}

	svc, err := h.Catalog.Update(c.Param("id"), c.GetString("userID"), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, svc)
}

// DeleteServiceHandler handles DELETE /api/services/:id (owner only).
func (h *ServiceHandler) DeleteServiceHandler(c *gin.Context) {
	if err := h.Catalog.Delete(c.Param("id"), c.GetString("userID")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Service removed"})
}
