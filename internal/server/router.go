package server

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/fuzumoe/watercrawl-datasource/internal/middleware"
)

// RouteRegistrar defines anything that can wire its routes into a Gin group.
type RouteRegistrar interface {
	// RegisterRoutes should add one or more routes on the provided router group.
	RegisterRoutes(rg *gin.RouterGroup)
}

// RegisterRoutes wires up health, public, and host-authenticated routes.
func RegisterRoutes(
	r *gin.Engine,
	pluginSecret string,
	publicRegs []RouteRegistrar,
	protectedRegs []RouteRegistrar,
) {
	// Global middleware
	r.Use(gin.Logger(), gin.Recovery())

	// Swagger UI
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health and other unauthenticated routes on the root group
	root := r.Group("/")
	for _, reg := range publicRegs {
		reg.RegisterRoutes(root)
	}

	// Host-facing API v1, guarded by the shared plugin secret
	protected := r.Group("/api/v1")
	protected.Use(middleware.PluginAuthMiddleware(pluginSecret))
	for _, reg := range protectedRegs {
		reg.RegisterRoutes(protected)
	}
}
