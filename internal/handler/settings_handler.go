package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nwhitfield/weekplan-api/internal/service"
	appErrors "github.com/nwhitfield/weekplan-api/pkg/errors"
	"github.com/nwhitfield/weekplan-api/pkg/response"
)

// SettingsHandler manages preference and friend-interest snapshots.
type SettingsHandler struct {
	service *service.SettingsService
}

// NewSettingsHandler constructs handler.
func NewSettingsHandler(svc *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: svc}
}

// ListPreferences returns the ordered preference list.
func (h *SettingsHandler) ListPreferences(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.Preferences(c.Request.Context()))
}

// ReplacePreferences swaps in the ordered preference list.
func (h *SettingsHandler) ReplacePreferences(c *gin.Context) {
	var req service.ReplacePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.service.ReplacePreferences(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListFriendInterests returns the friend-interest snapshot.
func (h *SettingsHandler) ListFriendInterests(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.FriendInterests(c.Request.Context()))
}

// ReplaceFriendInterests swaps in the friend-interest snapshot.
func (h *SettingsHandler) ReplaceFriendInterests(c *gin.Context) {
	var req service.ReplaceFriendInterestsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}
	if err := h.service.ReplaceFriendInterests(c.Request.Context(), req); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}
