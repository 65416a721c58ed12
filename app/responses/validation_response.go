package responses

import (
	"github.com/parkinvoice/validation-service/app/models"
	"github.com/parkinvoice/validation-service/internal/fiscal"
)

// ErrorResponse is the generic error envelope.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Message string `json:"message,omitempty"`
}

// FiscalValidationResponse wraps a fiscal identifier check. Invalid
// identifiers are still a 200: the outcome is data, not a transport error.
type FiscalValidationResponse struct {
	Result           fiscal.Result `json:"result"`
	ProcessingTimeMs int64         `json:"processing_time_ms"`
}

// AddressSearchResponse is the aggregated multi-source search payload.
type AddressSearchResponse struct {
	Query            string                   `json:"query"`
	Results          []models.AddressCandidate `json:"results"`
	Sources          models.SourceCounts      `json:"sources"`
	ProcessingTimeMs int64                    `json:"processing_time_ms"`
	CacheHit         bool                     `json:"cache_hit"`
}

// SuggestResponse is the static street-directory payload.
type SuggestResponse struct {
	Query   string                    `json:"query"`
	Results []models.AddressCandidate `json:"results"`
}

// VehicleLookupResponse wraps a plate lookup.
type VehicleLookupResponse struct {
	Success bool                `json:"success"`
	Data    *models.VehicleData `json:"data,omitempty"`
	Source  string              `json:"source,omitempty"`
	Error   string              `json:"error,omitempty"`
}

// NextInvoiceNumberResponse carries a freshly reserved invoice number.
type NextInvoiceNumberResponse struct {
	NextInvoiceNumber string `json:"next_invoice_number"`
}

// HealthCheckResponse reports service liveness and cache health.
type HealthCheckResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Uptime    string            `json:"uptime"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
	Cache     *CacheInfo        `json:"cache,omitempty"`
}

// CacheInfo is the cache portion of the health payload.
type CacheInfo struct {
	HitRate    float64 `json:"hit_rate"`
	TotalItems int64   `json:"total_items"`
}
