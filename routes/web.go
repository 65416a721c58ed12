package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupWebRoutes registers the informational root endpoints.
func SetupWebRoutes(router *gin.Engine) {
	router.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "ParkInvoice Validation Service",
			"version": "1.0.0",
			"docs":    "/docs",
		})
	})

	router.GET("/docs", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"api": "ParkInvoice Validation API v1",
			"endpoints": map[string]string{
				"fiscal_validate":     "POST /v1/fiscal/validate",
				"address_search":      "GET /v1/addresses/search?q=",
				"address_suggest":     "GET /v1/addresses/suggest?q=",
				"vehicle_lookup":      "POST /v1/vehicles/lookup",
				"next_invoice_number": "GET /v1/invoices/next-number",
				"health":              "GET /v1/health",
			},
		})
	})
}
