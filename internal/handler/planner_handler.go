package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nwhitfield/weekplan-api/internal/service"
	appErrors "github.com/nwhitfield/weekplan-api/pkg/errors"
	"github.com/nwhitfield/weekplan-api/pkg/response"
)

// PlannerHandler exposes the conflict and recommendation engine.
type PlannerHandler struct {
	scoring     *service.ScoringService
	suggestions *service.SuggestionService
}

// NewPlannerHandler constructs handler.
func NewPlannerHandler(scoring *service.ScoringService, suggestions *service.SuggestionService) *PlannerHandler {
	return &PlannerHandler{scoring: scoring, suggestions: suggestions}
}

// Scores returns every non-pinned activity scored against the active set,
// best first.
func (h *PlannerHandler) Scores(c *gin.Context) {
	ranked, err := h.scoring.RankActivities(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, ranked)
}

// Suggestions returns up to the configured number of conflict-free bundles.
func (h *PlannerHandler) Suggestions(c *gin.Context) {
	suggested, err := h.suggestions.GenerateSuggestedSets(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, suggested)
}

// Conflicts returns the pairwise conflict verdict for two activities.
func (h *PlannerHandler) Conflicts(c *gin.Context) {
	idA := c.Query("activityA")
	idB := c.Query("activityB")
	if idA == "" || idB == "" {
		response.Error(c, appErrors.Clone(appErrors.ErrValidation, "activityA and activityB are required"))
		return
	}
	check, ok := h.scoring.CheckConflict(idA, idB)
	if !ok {
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "activity not found"))
		return
	}
	response.JSON(c, http.StatusOK, check)
}
