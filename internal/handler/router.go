package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/nwhitfield/weekplan-api/internal/middleware"
	"github.com/nwhitfield/weekplan-api/internal/service"
)

// Handlers bundles every route handler the router mounts.
type Handlers struct {
	Catalog      *CatalogHandler
	Settings     *SettingsHandler
	Planner      *PlannerHandler
	ScheduleSets *ScheduleSetHandler
	Export       *ExportHandler
	Metrics      *MetricsHandler
}

// RouterConfig toggles optional route groups.
type RouterConfig struct {
	APIPrefix      string
	ExportsEnabled bool
}

// Register mounts all routes on the engine. Mutating routes sit behind the
// bearer-token guard; reads are open.
func Register(r *gin.Engine, h Handlers, tokens *service.TokenService, cfg RouterConfig) {
	r.GET("/health", h.Metrics.Health)
	r.GET("/ready", h.Metrics.Health)
	r.GET("/metrics", h.Metrics.Prometheus)

	prefix := cfg.APIPrefix
	if prefix == "" {
		prefix = "/api/v1"
	}
	api := r.Group(prefix)
	guarded := api.Group("", middleware.JWT(tokens))

	api.GET("/catalog/activities", h.Catalog.ListActivities)
	api.GET("/catalog/locations", h.Catalog.ListLocations)
	api.GET("/catalog/travel-times", h.Catalog.ListTravelTimes)
	guarded.PUT("/catalog/activities", h.Catalog.ReplaceActivities)
	guarded.PUT("/catalog/locations", h.Catalog.ReplaceLocations)
	guarded.PUT("/catalog/travel-times", h.Catalog.ReplaceTravelTimes)

	api.GET("/settings/preferences", h.Settings.ListPreferences)
	api.GET("/settings/friend-interests", h.Settings.ListFriendInterests)
	guarded.PUT("/settings/preferences", h.Settings.ReplacePreferences)
	guarded.PUT("/settings/friend-interests", h.Settings.ReplaceFriendInterests)

	api.GET("/planner/scores", h.Planner.Scores)
	api.GET("/planner/suggestions", h.Planner.Suggestions)
	api.GET("/planner/conflicts", h.Planner.Conflicts)

	api.GET("/sets", h.ScheduleSets.List)
	api.GET("/sets/:id/cost", h.ScheduleSets.Cost)
	guarded.POST("/sets", h.ScheduleSets.Create)
	guarded.PATCH("/sets/:id", h.ScheduleSets.Rename)
	guarded.DELETE("/sets/:id", h.ScheduleSets.Delete)
	guarded.POST("/sets/:id/activities", h.ScheduleSets.AddActivity)
	guarded.DELETE("/sets/:id/activities/:activityId", h.ScheduleSets.RemoveActivity)
	guarded.PUT("/sets/:id/activate", h.ScheduleSets.Activate)

	if cfg.ExportsEnabled && h.Export != nil {
		api.GET("/sets/:id/export", h.Export.Download)
	}
}
