package services

import (
	"context"

	"github.com/parkinvoice/validation-service/app/models"
)

// CacheStats is the hit/miss summary exposed on the health endpoint.
type CacheStats struct {
	HitRate    float64 `json:"hit_rate"`
	TotalHits  int64   `json:"total_hits"`
	TotalMiss  int64   `json:"total_miss"`
	TotalItems int64   `json:"total_items"`
}

// ICacheService caches aggregated search results by normalized query.
type ICacheService interface {
	Get(ctx context.Context, key string) (*models.AddressSearchResult, bool, error)
	Set(ctx context.Context, key string, result *models.AddressSearchResult) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
	GetStats(ctx context.Context) (*CacheStats, error)
	Close() error
}
