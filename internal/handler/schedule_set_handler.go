package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nwhitfield/weekplan-api/internal/service"
	appErrors "github.com/nwhitfield/weekplan-api/pkg/errors"
	"github.com/nwhitfield/weekplan-api/pkg/response"
)

// ScheduleSetHandler manages candidate schedule sets.
type ScheduleSetHandler struct {
	service *service.ScheduleSetService
}

// NewScheduleSetHandler constructs handler.
func NewScheduleSetHandler(svc *service.ScheduleSetService) *ScheduleSetHandler {
	return &ScheduleSetHandler{service: svc}
}

// List returns all sets plus the active pointer.
func (h *ScheduleSetHandler) List(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.List(c.Request.Context()))
}

// Create appends a new empty set, which becomes active.
func (h *ScheduleSetHandler) Create(c *gin.Context) {
	set := h.service.Create(c.Request.Context())
	response.Created(c, set)
}

// Delete removes a set.
func (h *ScheduleSetHandler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Rename updates a set's name.
func (h *ScheduleSetHandler) Rename(c *gin.Context) {
	var req service.RenameSetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	set, err := h.service.Rename(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, set)
}

// AddActivity adds an activity to a set; repeats are a no-op.
func (h *ScheduleSetHandler) AddActivity(c *gin.Context) {
	var req service.SetMembershipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	set, err := h.service.AddActivity(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, set)
}

// RemoveActivity drops an activity from a set.
func (h *ScheduleSetHandler) RemoveActivity(c *gin.Context) {
	set, err := h.service.RemoveActivity(c.Request.Context(), c.Param("id"), c.Param("activityId"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, set)
}

// Activate switches the active pointer to this set.
func (h *ScheduleSetHandler) Activate(c *gin.Context) {
	if err := h.service.SwitchActive(c.Request.Context(), c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// Cost returns the running cost summary of a set.
func (h *ScheduleSetHandler) Cost(c *gin.Context) {
	summary, err := h.service.CostSummary(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, summary)
}
