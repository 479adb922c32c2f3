package main

import (
	"fmt"
	"log"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/nwhitfield/weekplan-api/internal/handler"
	"github.com/nwhitfield/weekplan-api/internal/middleware"
	"github.com/nwhitfield/weekplan-api/internal/repository"
	"github.com/nwhitfield/weekplan-api/internal/service"
	"github.com/nwhitfield/weekplan-api/pkg/cache"
	"github.com/nwhitfield/weekplan-api/pkg/config"
	"github.com/nwhitfield/weekplan-api/pkg/logger"
	corsmiddleware "github.com/nwhitfield/weekplan-api/pkg/middleware/cors"
	reqidmiddleware "github.com/nwhitfield/weekplan-api/pkg/middleware/requestid"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	validate := validator.New()
	metrics := service.NewMetricsService()

	var cacheRepo service.CacheRepository
	if cfg.Planner.CacheEnabled {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Warn("redis unavailable, planner cache disabled", zap.Error(err))
		} else {
			cacheRepo = repository.NewCacheRepository(client, logr)
		}
	}
	cacheSvc := service.NewCacheService(cacheRepo, metrics, cfg.Planner.CacheTTL, logr, cacheRepo != nil)

	catalogRepo := repository.NewCatalogRepository()
	settingsRepo := repository.NewSettingsRepository()
	setsRepo := repository.NewScheduleSetRepository()

	travel := service.NewTravelService(catalogRepo, cfg.Planner.DefaultTravelMinutes, logr)
	conflicts := service.NewConflictService(travel, logr)
	scoring := service.NewScoringService(catalogRepo, settingsRepo, setsRepo, conflicts, cacheSvc, metrics, logr)
	suggestions := service.NewSuggestionService(catalogRepo, settingsRepo, setsRepo, conflicts, cacheSvc, metrics, cfg.Planner.SuggestionLimit, logr)
	catalogSvc := service.NewCatalogService(catalogRepo, cacheSvc, validate, logr)
	settingsSvc := service.NewSettingsService(settingsRepo, cacheSvc, validate, logr)
	setsSvc := service.NewScheduleSetService(setsRepo, catalogRepo, cacheSvc, validate, logr)
	exportSvc := service.NewExportService(setsRepo, catalogRepo, logr)
	tokens := service.NewTokenService(cfg.JWT.Secret)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(middleware.Metrics(metrics))

	handler.Register(r, handler.Handlers{
		Catalog:      handler.NewCatalogHandler(catalogSvc),
		Settings:     handler.NewSettingsHandler(settingsSvc),
		Planner:      handler.NewPlannerHandler(scoring, suggestions),
		ScheduleSets: handler.NewScheduleSetHandler(setsSvc),
		Export:       handler.NewExportHandler(exportSvc),
		Metrics:      handler.NewMetricsHandler(metrics),
	}, tokens, handler.RouterConfig{
		APIPrefix:      cfg.APIPrefix,
		ExportsEnabled: cfg.Exports.Enabled,
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
