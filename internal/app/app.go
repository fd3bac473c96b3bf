package app

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/noah-isme/agency-dashboard-api/internal/handler"
	"github.com/noah-isme/agency-dashboard-api/internal/repository"
	"github.com/noah-isme/agency-dashboard-api/internal/service"
	"github.com/noah-isme/agency-dashboard-api/pkg/config"
)

// NewRouter wires repositories, services and handlers over db.
func NewRouter(cfg *config.Config, db *sqlx.DB, logger *zap.Logger) *gin.Engine {
	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	var metrics *service.MetricsService
	if cfg.Metrics.Enabled {
		metrics = service.NewMetricsService()
	}

	clientRepo := repository.NewClientRepository(db, metrics)
	scopeRepo := repository.NewScopeRepository(db, metrics)
	postRepo := repository.NewPostRepository(db, metrics)
	dashboardRepo := repository.NewDashboardRepository(db, metrics)

	validate := service.NewValidator()
	clock := service.Clock{Location: cfg.Dashboard.Location}

	clientSvc := service.NewClientService(clientRepo, validate, logger)
	scopeSvc := service.NewScopeService(scopeRepo, validate, logger)
	postSvc := service.NewPostService(postRepo, validate, logger, service.PostServiceConfig{
		CriticalAfterDays: cfg.Dashboard.CriticalAfterDays,
		Clock:             clock,
	})
	dashboardSvc := service.NewDashboardService(dashboardRepo, metrics, logger, service.DashboardServiceConfig{
		CriticalAfterDays: cfg.Dashboard.CriticalAfterDays,
		Clock:             clock,
	})

	var exporter *service.ExportService
	if cfg.Exports.Enabled {
		exporter = service.NewExportService(postSvc, clientSvc, logger, nil, nil)
	}
	postHandler := handler.NewPostHandler(postSvc, nil)
	if exporter != nil {
		postHandler = handler.NewPostHandler(postSvc, exporter)
	}

	return handler.NewRouter(handler.RouterConfig{
		APIPrefix:      cfg.APIPrefix,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		EnableDocs:     cfg.Env != config.EnvProduction,
		EnableMetrics:  cfg.Metrics.Enabled,
	}, handler.Handlers{
		Clients:   handler.NewClientHandler(clientSvc),
		Scopes:    handler.NewScopeHandler(scopeSvc),
		Posts:     postHandler,
		Dashboard: handler.NewDashboardHandler(dashboardSvc),
		System:    handler.NewMetricsHandler(metrics, db),
	}, metrics, logger)
}

// NewServer returns the HTTP server for cfg.
func NewServer(cfg *config.Config, router http.Handler) *http.Server {
	return &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
}
