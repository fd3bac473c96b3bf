package handler

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	"github.com/noah-isme/agency-dashboard-api/internal/middleware"
	"github.com/noah-isme/agency-dashboard-api/internal/service"
	"github.com/noah-isme/agency-dashboard-api/pkg/logger"
	corsmiddleware "github.com/noah-isme/agency-dashboard-api/pkg/middleware/cors"
	reqidmiddleware "github.com/noah-isme/agency-dashboard-api/pkg/middleware/requestid"
)

// RouterConfig controls which optional surfaces are mounted.
type RouterConfig struct {
	APIPrefix      string
	AllowedOrigins []string
	EnableDocs     bool
	EnableMetrics  bool
}

// Handlers groups the HTTP handlers served by the router.
type Handlers struct {
	Clients   *ClientHandler
	Scopes    *ScopeHandler
	Posts     *PostHandler
	Dashboard *DashboardHandler
	System    *MetricsHandler
}

var probePaths = []string{"/health", "/ready", "/metrics"}

// NewRouter builds the gin engine with middleware and every route registered.
func NewRouter(cfg RouterConfig, h Handlers, metrics *service.MetricsService, log *zap.Logger) *gin.Engine {
	if log == nil {
		log = zap.NewNop()
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(log, probePaths...))
	r.Use(corsmiddleware.New(cfg.AllowedOrigins))
	if cfg.EnableMetrics && metrics != nil {
		r.Use(middleware.Metrics(metrics))
	}
	r.Use(middleware.WithResponseMeta())

	r.GET("/health", h.System.Health)
	r.GET("/ready", h.System.Ready)
	if cfg.EnableMetrics {
		r.GET("/metrics", h.System.Prometheus)
	}
	if cfg.EnableDocs {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	clients := api.Group("/clients")
	clients.GET("", h.Clients.List)
	clients.POST("", h.Clients.Create)
	clients.GET("/:id", h.Clients.Get)
	clients.DELETE("/:id", h.Clients.Delete)

	scopes := api.Group("/scopes")
	scopes.GET("", h.Scopes.List)
	scopes.POST("", h.Scopes.Create)
	scopes.DELETE("", h.Scopes.Delete)
	scopes.DELETE("/:id", h.Scopes.Delete)

	posts := api.Group("/posts")
	posts.GET("", h.Posts.List)
	posts.POST("", h.Posts.Create)
	posts.PUT("", h.Posts.Update)
	posts.PUT("/:id", h.Posts.Update)
	posts.GET("/export", h.Posts.Export)

	api.GET("/dashboard", h.Dashboard.Summary)

	return r
}
