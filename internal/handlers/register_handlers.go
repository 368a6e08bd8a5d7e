package handlers

import (
	"github.com/SscSPs/fx_rates_app/cmd/docs"
	portssvc "github.com/SscSPs/fx_rates_app/internal/core/ports/services"
	"github.com/SscSPs/fx_rates_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// apiMiddleware is applied to the /api group only.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	apiMiddleware ...gin.HandlerFunc,
) {
	r.GET("/health", getHealth)

	setupAPIRoutes(r, services, apiMiddleware...)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIRoutes configures the /api group and delegates to specific route registrations
func setupAPIRoutes(r *gin.Engine, services *portssvc.ServiceContainer, mw ...gin.HandlerFunc) {
	api := r.Group("/api", mw...)

	registerPairRoutes(api, services.Pairs)
	registerRateRoutes(api, services.Query)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
