package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nwhitfield/weekplan-api/internal/service"
	appErrors "github.com/nwhitfield/weekplan-api/pkg/errors"
	"github.com/nwhitfield/weekplan-api/pkg/response"
)

// CatalogHandler manages the read-only planner input snapshots.
type CatalogHandler struct {
	service *service.CatalogService
}

// NewCatalogHandler constructs handler.
func NewCatalogHandler(svc *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: svc}
}

// ListActivities returns the current activity snapshot.
func (h *CatalogHandler) ListActivities(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Activities(c.Request.Context()))
}

// ReplaceActivities swaps in a full activity snapshot.
func (h *CatalogHandler) ReplaceActivities(c *gin.Context) {
	var req service.ReplaceActivitiesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.service.ReplaceActivities(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListLocations returns the current location snapshot.
func (h *CatalogHandler) ListLocations(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Locations(c.Request.Context()))
}

// ReplaceLocations swaps in a full location snapshot.
func (h *CatalogHandler) ReplaceLocations(c *gin.Context) {
	var req service.ReplaceLocationsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.service.ReplaceLocations(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListTravelTimes returns the current travel-time edges.
func (h *CatalogHandler) ListTravelTimes(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.TravelTimes(c.Request.Context()))
}

// ReplaceTravelTimes swaps in a full travel-time snapshot.
func (h *CatalogHandler) ReplaceTravelTimes(c *gin.Context) {
	var req service.ReplaceTravelTimesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.service.ReplaceTravelTimes(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
