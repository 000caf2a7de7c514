// Package router assembles the Gin engine served by cmd/api.
package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "monthbook/internal/docs" // Import swagger docs
	"monthbook/internal/handlers"
	"monthbook/internal/metrics"
	"monthbook/internal/middleware"
	"monthbook/internal/services"
)

// Deps are the collaborators the routes are wired to.
type Deps struct {
	SaveService   services.SaveServicer
	DB            handlers.Pinger
	Metrics       *metrics.Metrics
	JWTSecret     string
	MetricsAPIKey string
}

// New builds the engine with the middleware chain and every route.
func New(deps Deps) *gin.Engine {
	saveHandler := handlers.NewSaveHandler(deps.SaveService)
	healthHandler := handlers.NewHealthHandler(deps.DB)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogging())
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware())
		r.GET("/metrics", middleware.MetricsAuthMiddleware(deps.MetricsAPIKey), gin.WrapH(deps.Metrics.Handler()))
	}
	r.Use(middleware.ErrorHandler())

	// Swagger documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/api/health", healthHandler.Health)

	v1 := r.Group("/api/v1")
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(deps.JWTSecret))
	protected.POST("/save", saveHandler.Save)

	return r
}
