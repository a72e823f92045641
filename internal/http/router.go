package http

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/guttosm/translate-gateway/internal/envelope"
	"github.com/guttosm/translate-gateway/internal/metrics"
	"github.com/guttosm/translate-gateway/internal/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// ProtectedEndpoints lists the API paths behind the authorization middleware,
// as shown on the root page.
var ProtectedEndpoints = []string{"/logs", "/translate", "/detect", "/languages", "/version"}

// RouterConfig holds router configuration options.
type RouterConfig struct {
	Responses   *envelope.Builder
	Logger      zerolog.Logger
	Policy      middleware.AuthorizationPolicy
	CORSOrigins []string
	SwaggerUser string
	SwaggerPass string
	// Groups are registered on the root router after the middleware chain.
	Groups []RouteGroup
}

// NewRouter creates and configures the gin router for the gateway.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.SetHTMLTemplate(rootTemplate)

	configureGlobalMiddleware(router, &cfg)
	registerInfrastructureRoutes(router, &cfg)

	for _, g := range cfg.Groups {
		g.RegisterRoutes(router)
	}

	router.NoRoute(func(c *gin.Context) {
		cfg.Responses.NotFound(fmt.Sprintf("The requested URL %s was not found on the server.", c.Request.URL.Path), "").Write(c)
	})

	return router
}

// configureGlobalMiddleware sets up middleware applied to all routes.
func configureGlobalMiddleware(router *gin.Engine, cfg *RouterConfig) {
	allowedOrigins := cfg.CORSOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000"}
	}
	corsConfig := cors.Config{
		AllowOrigins:     allowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Accept", "Authorization", "Cache-Control", "X-Requested-With", "X-Request-ID"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           86400,
	}
	router.Use(cors.New(corsConfig))

	router.Use(
		middleware.RequestID(),
		middleware.Recovery(cfg.Responses, cfg.Logger),
		metrics.PrometheusMiddleware(),
		middleware.Compression("/metrics"),
		middleware.RequestLogger(cfg.Logger),
		middleware.ErrorHandler(cfg.Responses, cfg.Logger),
		middleware.Authorization(cfg.Policy, cfg.Responses, cfg.Logger, middleware.PublicEndpoints...),
	)
}

// registerInfrastructureRoutes registers metrics and documentation routes.
func registerInfrastructureRoutes(router *gin.Engine, cfg *RouterConfig) {
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Swagger with optional basic auth
	if cfg.SwaggerUser != "" && cfg.SwaggerPass != "" {
		authorized := router.Group("/swagger", gin.BasicAuth(gin.Accounts{
			cfg.SwaggerUser: cfg.SwaggerPass,
		}))
		authorized.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	} else {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}
}
