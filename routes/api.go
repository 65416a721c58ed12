package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/parkinvoice/validation-service/app/controllers"
	"github.com/parkinvoice/validation-service/helpers/utils"
)

// Controllers bundles the handlers the router wires up.
type Controllers struct {
	Fiscal  *controllers.FiscalController
	Address *controllers.AddressController
	Vehicle *controllers.VehicleController
	Invoice *controllers.InvoiceController
}

// SetupAPIRoutes registers the /v1 API surface.
func SetupAPIRoutes(router *gin.Engine, ctrl Controllers) {
	v1 := router.Group("/v1")
	{
		fiscal := v1.Group("/fiscal")
		{
			fiscal.POST("/validate", ctrl.Fiscal.Validate)
		}

		addresses := v1.Group("/addresses")
		{
			addresses.GET("/search", ctrl.Address.Search)
			addresses.GET("/suggest", ctrl.Address.Suggest)
		}

		vehicles := v1.Group("/vehicles")
		{
			vehicles.POST("/lookup", ctrl.Vehicle.Lookup)
		}

		invoices := v1.Group("/invoices")
		{
			invoices.GET("/next-number", ctrl.Invoice.NextNumber)
		}

		v1.GET("/health", ctrl.Address.HealthCheck)
	}
}

// SetupHealthRoutes registers the root-level probes.
func SetupHealthRoutes(router *gin.Engine, ctrl Controllers) {
	router.GET("/health", ctrl.Address.HealthCheck)
	router.GET("/ready", ctrl.Address.HealthCheck)
	router.GET("/live", ctrl.Address.HealthCheck)
}

// SetupAllRoutes wires middleware and every route group.
func SetupAllRoutes(router *gin.Engine, ctrl Controllers) {
	setupMiddleware(router)

	SetupWebRoutes(router)
	SetupHealthRoutes(router, ctrl)
	SetupAPIRoutes(router, ctrl)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":  "Route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})
}

func setupMiddleware(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(requestID())
}

// requestID tags every request so log lines can be correlated.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = utils.GenerateShortID()
		}
		c.Set("request_id", id)
		c.Header("X-Request-ID", id)
		c.Next()
	}
}
