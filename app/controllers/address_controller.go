package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/parkinvoice/validation-service/app/models"
	"github.com/parkinvoice/validation-service/app/responses"
	"github.com/parkinvoice/validation-service/app/services"
)

const serviceVersion = "1.0.0"

// defaultSuggestLimit caps street-directory suggestions per request.
const defaultSuggestLimit = 10

// AddressController handles address search, suggestions and health.
type AddressController struct {
	addressService *services.AddressService
	logger         *zap.Logger
}

func NewAddressController(addressService *services.AddressService, logger *zap.Logger) *AddressController {
	return &AddressController{
		addressService: addressService,
		logger:         logger,
	}
}

// Search runs the aggregated multi-source lookup. ?cache=0 bypasses the
// result cache for that request.
func (ac *AddressController) Search(c *gin.Context) {
	query := c.Query("q")
	useCache := c.Query("cache") != "0"

	startTime := time.Now()
	result, cacheHit, err := ac.addressService.Search(c.Request.Context(), query, useCache)
	if err != nil {
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "SEARCH_ERROR",
			Message: "Error buscando direcciones: " + err.Error(),
		})
		return
	}

	if result.TooShort {
		c.JSON(http.StatusBadRequest, responses.ErrorResponse{
			Error:   "QUERY_TOO_SHORT",
			Message: "La búsqueda necesita al menos 3 caracteres",
		})
		return
	}

	c.JSON(http.StatusOK, responses.AddressSearchResponse{
		Query:            result.Query,
		Results:          result.Results,
		Sources:          result.Sources,
		ProcessingTimeMs: time.Since(startTime).Milliseconds(),
		CacheHit:         cacheHit,
	})
}

// Suggest serves typo-tolerant suggestions from the static street directory.
func (ac *AddressController) Suggest(c *gin.Context) {
	query := c.Query("q")
	results := ac.addressService.Suggest(query, defaultSuggestLimit)
	if results == nil {
		results = []models.AddressCandidate{}
	}

	c.JSON(http.StatusOK, responses.SuggestResponse{
		Query:   query,
		Results: results,
	})
}

// HealthCheck reports liveness plus cache stats.
func (ac *AddressController) HealthCheck(c *gin.Context) {
	uptime := time.Since(ac.addressService.GetStartTime())

	resp := responses.HealthCheckResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Uptime:    uptime.String(),
		Version:   serviceVersion,
		Services: map[string]string{
			"fiscal_validator": "healthy",
			"address_search":   "healthy",
		},
	}

	if stats, err := ac.addressService.CacheStats(c.Request.Context()); err == nil {
		resp.Cache = &responses.CacheInfo{
			HitRate:    stats.HitRate,
			TotalItems: stats.TotalItems,
		}
	}

	c.JSON(http.StatusOK, resp)
}
