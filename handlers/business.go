package handlers

import (
	"net/http"

	"meetly/models"
	"meetly/services/business"
	"meetly/services/catalog"
	"meetly/utils"

	"github.com/gin-gonic/gin"
)

// BusinessHandler exposes the schedule-facing business operations: reading a
// business, declaring its weekly opening hours, and deletion with cascade.
type BusinessHandler struct {
	Businesses business.BusinessService
	Catalog    catalog.CatalogService
}

func NewBusinessHandler(businesses business.BusinessService, cat catalog.CatalogService) *BusinessHandler {
	return &BusinessHandler{Businesses: businesses, Catalog: cat}
}

// GetByID returns a business including its opening hours.
func (h *BusinessHandler) GetByID(c *gin.Context) {
	b, err := h.Businesses.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// SetOpeningHours replaces the business's weekly schedule.
func (h *BusinessHandler) SetOpeningHours(c *gin.Context) {
	var input struct {
		OpeningHours []models.OpeningHours `json:"openingHours"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.Businesses.SetOpeningHours(c.Request.Context(), c.Param("id"), input.OpeningHours)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Delete removes a business along with its services and meetings.
func (h *BusinessHandler) Delete(c *gin.Context) {
	if err := h.Businesses.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// DeleteService removes a service along with its meetings.
func (h *BusinessHandler) DeleteService(c *gin.Context) {
	if err := h.Catalog.Delete(c.Request.Context(), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
