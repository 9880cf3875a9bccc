package handlers

import (
	"log/slog"

	"github.com/fleetserve/fleet_management_app/cmd/docs"
	portssvc "github.com/fleetserve/fleet_management_app/internal/core/ports/services"
	"github.com/fleetserve/fleet_management_app/internal/middleware"
	"github.com/fleetserve/fleet_management_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(200, "OK")
	})
	r.GET("/", getHome)

	// Setup API v1 routes, passing service interfaces
	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1")

	// Rate limit the whole v1 surface, keyed by client IP
	rate, err := limiter.NewRateFromFormatted(cfg.RateLimit)
	if err != nil {
		slog.Warn("Invalid rate limit format, rate limiting disabled", slog.String("rate_limit", cfg.RateLimit))
	} else {
		v1.Use(middleware.RateLimit(limiter.New(memory.NewStore(), rate)))
	}

	// Delegate route registration to specific handlers, passing required services
	registerVehicleRoutes(v1, services.Vehicle, services.Analytics, services.Transaction)
	registerTransactionRoutes(v1, services.Transaction)
	registerCustomerRoutes(v1, services.Customer, services.Invoice)
	registerInvoiceRoutes(v1, services.Invoice)
	registerQuotationRoutes(v1, services.Quotation)
	registerPurchaseOrderRoutes(v1, services.PurchaseOrder)
	registerEmployeeRoutes(v1, services.Employee)
	registerDashboardRoutes(v1, services.Analytics)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
