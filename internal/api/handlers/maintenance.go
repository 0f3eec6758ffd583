package handlers

import (
	"net/http"
	"strconv"

	"coverage-api-backend/internal/logger"
	"coverage-api-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// MaintenanceHandler handles destructive database maintenance requests
type MaintenanceHandler struct {
	service service.CoverageServiceInterface
}

// NewMaintenanceHandler creates a new maintenance handler
func NewMaintenanceHandler(service service.CoverageServiceInterface) *MaintenanceHandler {
	return &MaintenanceHandler{service: service}
}

// RecreateDatabase handles POST /database/recreate
// @Summary Recreate the database schema
// @Description Drop and recreate the coverages table and insert sample data. The request must be confirmed by passing confirmation=true.
// @Tags database
// @Accept json
// @Produce json
// @Param confirmation query bool true "Must be true for the operation to run"
// @Success 200 {object} map[string]interface{} "Database recreated"
// @Failure 400 {object} map[string]interface{} "Confirmation missing or false"
// @Failure 401 {object} map[string]interface{} "Missing or invalid API token"
// @Security ApiKeyAuth
// @Router /database/recreate [post]
func (h *MaintenanceHandler) RecreateDatabase(c *gin.Context) {
	confirmed, err := strconv.ParseBool(c.DefaultQuery("confirmation", "false"))
	if err != nil || !confirmed {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "confirmation is missing",
			"details": gin.H{"error": "check the API for how to confirm"},
		})
		return
	}

	log := logger.WithContext(c)
	log.Warn("recreating database schema, all coverage records will be dropped")

	if err := h.service.RecreateDatabase(); err != nil {
		log.WithField("error", err.Error()).Error("database recreate failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to recreate database", "details": err.Error()})
		return
	}

	log.Info("database recreated and reseeded")
	c.JSON(http.StatusOK, gin.H{"message": "database recreated"})
}
