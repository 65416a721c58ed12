package services

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/parkinvoice/validation-service/app/models"
)

// HybridCacheService layers the in-process LRU (L1) over Redis (L2). Reads
// hit L1 first and promote L2 hits in the background; writes go to both.
type HybridCacheService struct {
	l1     *LRUCacheService
	l2     *RedisCacheService
	logger *zap.Logger
}

func NewHybridCacheService(l1 *LRUCacheService, l2 *RedisCacheService, logger *zap.Logger) *HybridCacheService {
	return &HybridCacheService{l1: l1, l2: l2, logger: logger}
}

func (h *HybridCacheService) Get(ctx context.Context, key string) (*models.AddressSearchResult, bool, error) {
	result, found, err := h.l1.Get(ctx, key)
	if err == nil && found {
		return result, true, nil
	}

	result, found, err = h.l2.Get(ctx, key)
	if err != nil {
		// L2 being down degrades to a miss, not a failure.
		h.logger.Warn("L2 cache error, treating as miss", zap.Error(err))
		return nil, false, nil
	}
	if !found {
		return nil, false, nil
	}

	// Promote to L1 off the request path.
	go func() {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := h.l1.Set(bgCtx, key, result); err != nil {
			h.logger.Warn("L2->L1 promotion failed", zap.Error(err), zap.String("key", key))
		}
	}()

	return result, true, nil
}

func (h *HybridCacheService) Set(ctx context.Context, key string, result *models.AddressSearchResult) error {
	if err := h.l1.Set(ctx, key, result); err != nil {
		return err
	}
	if err := h.l2.Set(ctx, key, result); err != nil {
		h.logger.Warn("L2 cache set failed", zap.Error(err), zap.String("key", key))
	}
	return nil
}

func (h *HybridCacheService) Delete(ctx context.Context, key string) error {
	err1 := h.l1.Delete(ctx, key)
	err2 := h.l2.Delete(ctx, key)
	if err1 != nil || err2 != nil {
		return fmt.Errorf("delete errors: %v, %v", err1, err2)
	}
	return nil
}

func (h *HybridCacheService) Clear(ctx context.Context) error {
	err1 := h.l1.Clear(ctx)
	err2 := h.l2.Clear(ctx)
	if err1 != nil || err2 != nil {
		return fmt.Errorf("clear errors: %v, %v", err1, err2)
	}
	return nil
}

// GetStats combines both layers.
func (h *HybridCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	l1Stats, _ := h.l1.GetStats(ctx)
	l2Stats, err := h.l2.GetStats(ctx)
	if err != nil {
		return l1Stats, nil
	}

	combined := &CacheStats{
		TotalHits:  l1Stats.TotalHits + l2Stats.TotalHits,
		TotalMiss:  l1Stats.TotalMiss + l2Stats.TotalMiss,
		TotalItems: l1Stats.TotalItems + l2Stats.TotalItems,
	}
	if total := combined.TotalHits + combined.TotalMiss; total > 0 {
		combined.HitRate = float64(combined.TotalHits) / float64(total)
	}
	return combined, nil
}

func (h *HybridCacheService) Close() error {
	err1 := h.l1.Close()
	err2 := h.l2.Close()
	if err1 != nil || err2 != nil {
		return fmt.Errorf("close errors: %v, %v", err1, err2)
	}
	return nil
}
