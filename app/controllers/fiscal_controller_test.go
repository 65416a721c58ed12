package controllers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/parkinvoice/validation-service/app/responses"
)

func setupFiscalRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	fc := NewFiscalController(zap.NewNop())
	router.POST("/v1/fiscal/validate", fc.Validate)
	return router
}

func postJSON(t *testing.T, router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestValidateEndpointValidNIF(t *testing.T) {
	router := setupFiscalRouter()

	w := postJSON(t, router, "/v1/fiscal/validate", gin.H{"value": "12345678Z"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp responses.FiscalValidationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Result.Valid)
	assert.Equal(t, "NIF", string(resp.Result.Kind))
}

func TestValidateEndpointInvalidIsStill200(t *testing.T) {
	router := setupFiscalRouter()

	w := postJSON(t, router, "/v1/fiscal/validate", gin.H{"value": "12345678A"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp responses.FiscalValidationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Result.Valid)
	assert.Equal(t, "Letra de control incorrecta", resp.Result.Err)
}

func TestValidateEndpointMissingBody(t *testing.T) {
	router := setupFiscalRouter()

	w := postJSON(t, router, "/v1/fiscal/validate", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
