package services

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/parkinvoice/validation-service/app/models"
	"github.com/parkinvoice/validation-service/internal/geo"
	"github.com/parkinvoice/validation-service/internal/normalizer"
)

// AddressService fronts the search aggregator and the street directory with
// result caching.
type AddressService struct {
	aggregator *geo.Aggregator
	directory  *geo.Directory
	cache      ICacheService
	logger     *zap.Logger
	startTime  time.Time
}

func NewAddressService(aggregator *geo.Aggregator, directory *geo.Directory, cache ICacheService, logger *zap.Logger) *AddressService {
	return &AddressService{
		aggregator: aggregator,
		directory:  directory,
		cache:      cache,
		logger:     logger,
		startTime:  time.Now(),
	}
}

// Search runs an aggregated lookup, consulting the cache first unless the
// caller opted out. The second return reports a cache hit. Too-short queries
// are never cached.
func (s *AddressService) Search(ctx context.Context, query string, useCache bool) (*models.AddressSearchResult, bool, error) {
	cacheKey := normalizer.Fold(query)

	if useCache {
		if cached, found, err := s.cache.Get(ctx, cacheKey); err == nil && found {
			return cached, true, nil
		}
	}

	result, err := s.aggregator.Search(ctx, query)
	if err != nil {
		return nil, false, err
	}

	if useCache && !result.TooShort {
		if err := s.cache.Set(ctx, cacheKey, result); err != nil {
			s.logger.Warn("caching search result failed", zap.Error(err), zap.String("key", cacheKey))
		}
	}
	return result, false, nil
}

// Suggest serves the static street-directory suggestions. Purely in-memory,
// so no caching.
func (s *AddressService) Suggest(query string, limit int) []models.AddressCandidate {
	return s.directory.Suggest(query, limit)
}

func (s *AddressService) GetStartTime() time.Time { return s.startTime }

// CacheStats surfaces cache health for the admin/health endpoints.
func (s *AddressService) CacheStats(ctx context.Context) (*CacheStats, error) {
	return s.cache.GetStats(ctx)
}
