package services

import (
	"context"
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/parkinvoice/validation-service/app/models"
)

// LRUCacheService is the in-process L1 cache over search results.
type LRUCacheService struct {
	cache  *lru.Cache[string, *models.AddressSearchResult]
	logger *zap.Logger

	hits   atomic.Int64
	misses atomic.Int64
}

// NewLRUCacheService builds an in-memory cache holding up to size entries.
func NewLRUCacheService(size int, logger *zap.Logger) (*LRUCacheService, error) {
	cache, err := lru.New[string, *models.AddressSearchResult](size)
	if err != nil {
		return nil, fmt.Errorf("creating LRU cache: %w", err)
	}
	return &LRUCacheService{cache: cache, logger: logger}, nil
}

func (s *LRUCacheService) Get(ctx context.Context, key string) (*models.AddressSearchResult, bool, error) {
	if result, ok := s.cache.Get(key); ok {
		s.hits.Add(1)
		s.logger.Debug("L1 cache hit", zap.String("key", key))
		return result, true, nil
	}
	s.misses.Add(1)
	return nil, false, nil
}

func (s *LRUCacheService) Set(ctx context.Context, key string, result *models.AddressSearchResult) error {
	s.cache.Add(key, result)
	return nil
}

func (s *LRUCacheService) Delete(ctx context.Context, key string) error {
	s.cache.Remove(key)
	return nil
}

func (s *LRUCacheService) Clear(ctx context.Context) error {
	s.cache.Purge()
	s.logger.Info("cleared L1 cache")
	return nil
}

func (s *LRUCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	hits, misses := s.hits.Load(), s.misses.Load()
	stats := &CacheStats{
		TotalHits:  hits,
		TotalMiss:  misses,
		TotalItems: int64(s.cache.Len()),
	}
	if total := hits + misses; total > 0 {
		stats.HitRate = float64(hits) / float64(total)
	}
	return stats, nil
}

func (s *LRUCacheService) Close() error { return nil }
