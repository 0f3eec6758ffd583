package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "coverage-api-backend/internal/errors"
	"coverage-api-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// CoverageHandler handles HTTP requests for coverage assignments
type CoverageHandler struct {
	service service.CoverageServiceInterface
}

// NewCoverageHandler creates a new coverage handler
func NewCoverageHandler(service service.CoverageServiceInterface) *CoverageHandler {
	return &CoverageHandler{service: service}
}

// GetCoverageByCEID handles GET /coverages/ceid/:ceid
// @Summary Coverage record by CEID
// @Description Retrieve a single coverage record by its CEID (case-insensitive substring match)
// @Tags coverages
// @Accept json
// @Produce json
// @Param ceid path string true "CEID fragment"
// @Success 200 {object} service.CoverageResponse "Matching coverage record"
// @Failure 401 {object} map[string]interface{} "Missing or invalid API token"
// @Failure 404 {object} map[string]interface{} "No coverage matches"
// @Security ApiKeyAuth
// @Router /coverages/ceid/{ceid} [get]
func (h *CoverageHandler) GetCoverageByCEID(c *gin.Context) {
	ceid := c.Param("ceid")

	coverage, err := h.service.GetByCEID(ceid)
	if err != nil {
		if errors.Is(err, apperrors.ErrCoverageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get coverage", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, coverage)
}

// GetCoverageByName handles GET /coverages/name/:name
// @Summary Coverage record by name
// @Description Retrieve a single coverage record by its short partner name (case-insensitive substring match). A miss returns an empty object, not an error.
// @Tags coverages
// @Accept json
// @Produce json
// @Param name path string true "Short name fragment"
// @Success 200 {object} service.CoverageResponse "Matching coverage record, or empty object"
// @Failure 401 {object} map[string]interface{} "Missing or invalid API token"
// @Security ApiKeyAuth
// @Router /coverages/name/{name} [get]
func (h *CoverageHandler) GetCoverageByName(c *gin.Context) {
	name := c.Param("name")

	coverage, err := h.service.GetByName(name)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get coverage", "details": err.Error()})
		return
	}
	if coverage == nil {
		c.JSON(http.StatusOK, gin.H{})
		return
	}

	c.JSON(http.StatusOK, coverage)
}

// ListCoverages handles GET /coverages
// @Summary All coverages
// @Description Retrieve coverage records page by page
// @Tags coverages
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param per_page query int false "Records per page, at most 255" default(20)
// @Success 200 {object} service.CoverageListResponse "Page of coverage records"
// @Failure 400 {object} map[string]interface{} "per_page exceeds the cap"
// @Failure 401 {object} map[string]interface{} "Missing or invalid API token"
// @Security ApiKeyAuth
// @Router /coverages [get]
func (h *CoverageHandler) ListCoverages(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", strconv.Itoa(service.DefaultPage)))
	perPage, _ := strconv.Atoi(c.DefaultQuery("per_page", strconv.Itoa(service.DefaultPerPage)))

	resp, err := h.service.List(page, perPage)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list coverages", "details": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateCoverage handles POST /coverages
// @Summary Insert a new coverage record
// @Description Insert a new coverage record with the given attributes. Its new CID is returned.
// @Tags coverages
// @Accept json
// @Produce json
// @Param coverage body service.CreateCoverageRequest true "Coverage data"
// @Success 201 {object} service.CoverageResponse "Created coverage record"
// @Failure 400 {object} map[string]interface{} "Missing field or value over 255 characters"
// @Failure 401 {object} map[string]interface{} "Missing or invalid API token"
// @Security ApiKeyAuth
// @Router /coverages [post]
func (h *CoverageHandler) CreateCoverage(c *gin.Context) {
	var req service.CreateCoverageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body", "details": err.Error()})
		return
	}

	coverage, err := h.service.Create(&req)
	if err != nil {
		if apperrors.IsValidation(err) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create coverage", "details": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, coverage)
}

// DeleteCoverage handles DELETE /coverages/ceid/:ceid
// @Summary Delete a coverage record by CID
// @Description Delete a single coverage record identified by its exact numeric CID
// @Tags coverages
// @Accept json
// @Produce json
// @Param ceid path int true "Coverage CID"
// @Success 204 "Coverage deleted"
// @Failure 400 {object} map[string]interface{} "Identifier is not an integer"
// @Failure 401 {object} map[string]interface{} "Missing or invalid API token"
// @Failure 404 {object} map[string]interface{} "No coverage with that CID"
// @Security ApiKeyAuth
// @Router /coverages/ceid/{ceid} [delete]
func (h *CoverageHandler) DeleteCoverage(c *gin.Context) {
	// Deletion keeps exact integer matching even though lookup moved to
	// substring search: a destructive operation must not fuzzy-match.
	cid, err := strconv.Atoi(c.Param("ceid"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid coverage ID: must be an integer"})
		return
	}

	if err := h.service.Delete(cid); err != nil {
		if errors.Is(err, apperrors.ErrCoverageNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete coverage", "details": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
