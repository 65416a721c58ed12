package controllers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/parkinvoice/validation-service/app/models"
	"github.com/parkinvoice/validation-service/app/responses"
	"github.com/parkinvoice/validation-service/app/services"
	"github.com/parkinvoice/validation-service/internal/geo"
)

func setupAddressRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	gazetteer := geo.NewGazetteerWithEntries([]models.AddressCandidate{
		{Street: "CALLE LISBOA", PostalCode: "28915", City: "LEGANÉS", Province: "MADRID", FullAddress: "CALLE LISBOA, LEGANÉS", Source: models.SourceLocal},
	})
	aggregator := geo.NewAggregator(gazetteer, nil, zap.NewNop())
	cache, err := services.NewLRUCacheService(10, zap.NewNop())
	require.NoError(t, err)
	svc := services.NewAddressService(aggregator, geo.NewDirectory(), cache, zap.NewNop())

	ac := NewAddressController(svc, zap.NewNop())
	router := gin.New()
	router.GET("/v1/addresses/search", ac.Search)
	router.GET("/v1/addresses/suggest", ac.Suggest)
	router.GET("/v1/health", ac.HealthCheck)
	return router
}

func get(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestSearchEndpoint(t *testing.T) {
	router := setupAddressRouter(t)

	w := get(router, "/v1/addresses/search?q=calle+lisboa")
	require.Equal(t, http.StatusOK, w.Code)

	var resp responses.AddressSearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Results, 1)
	assert.Equal(t, "CALLE LISBOA", resp.Results[0].Street)
	assert.Equal(t, 1, resp.Sources.Local)
	assert.False(t, resp.CacheHit)

	// Second identical request is served from cache.
	w = get(router, "/v1/addresses/search?q=calle+lisboa")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.CacheHit)
}

func TestSearchEndpointTooShort(t *testing.T) {
	router := setupAddressRouter(t)

	w := get(router, "/v1/addresses/search?q=ab")
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp responses.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "QUERY_TOO_SHORT", resp.Error)
}

func TestSearchEndpointCacheBypass(t *testing.T) {
	router := setupAddressRouter(t)

	get(router, "/v1/addresses/search?q=calle+lisboa")

	w := get(router, "/v1/addresses/search?q=calle+lisboa&cache=0")
	require.Equal(t, http.StatusOK, w.Code)

	var resp responses.AddressSearchResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.CacheHit)
}

func TestSuggestEndpoint(t *testing.T) {
	router := setupAddressRouter(t)

	w := get(router, "/v1/addresses/suggest?q=gran+via")
	require.Equal(t, http.StatusOK, w.Code)

	var resp responses.SuggestResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Results)
	assert.Equal(t, "CALLE GRAN VIA", resp.Results[0].Street)
}

func TestHealthEndpoint(t *testing.T) {
	router := setupAddressRouter(t)

	w := get(router, "/v1/health")
	require.Equal(t, http.StatusOK, w.Code)

	var resp responses.HealthCheckResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.NotEmpty(t, resp.Uptime)
}
