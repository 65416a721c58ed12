package services

import (
	"context"
	"encoding/json"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/parkinvoice/validation-service/app/models"
)

// RedisCacheService is the shared L2 cache over search results.
type RedisCacheService struct {
	client *redis.Client
	logger *zap.Logger
	prefix string
	ttl    time.Duration

	hits   atomic.Int64
	misses atomic.Int64
}

// NewRedisCacheService connects to Redis and verifies the connection.
func NewRedisCacheService(redisURL string, ttl time.Duration, logger *zap.Logger) (*RedisCacheService, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parsing Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("connecting to Redis: %w", err)
	}

	return &RedisCacheService{
		client: client,
		logger: logger,
		prefix: "parkinv:addr:",
		ttl:    ttl,
	}, nil
}

func (s *RedisCacheService) Get(ctx context.Context, key string) (*models.AddressSearchResult, bool, error) {
	val, err := s.client.Get(ctx, s.prefix+key).Result()
	if err == redis.Nil {
		s.misses.Add(1)
		return nil, false, nil
	}
	if err != nil {
		s.logger.Error("Redis get failed", zap.Error(err), zap.String("key", key))
		return nil, false, err
	}

	var result models.AddressSearchResult
	if err := json.Unmarshal([]byte(val), &result); err != nil {
		s.logger.Error("unmarshalling cached search result", zap.Error(err))
		return nil, false, err
	}

	s.hits.Add(1)
	s.logger.Debug("L2 cache hit", zap.String("key", key))
	return &result, true, nil
}

func (s *RedisCacheService) Set(ctx context.Context, key string, result *models.AddressSearchResult) error {
	data, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("marshalling search result: %w", err)
	}

	if err := s.client.Set(ctx, s.prefix+key, data, s.ttl).Err(); err != nil {
		s.logger.Error("Redis set failed", zap.Error(err), zap.String("key", key))
		return err
	}
	return nil
}

func (s *RedisCacheService) Delete(ctx context.Context, key string) error {
	return s.client.Del(ctx, s.prefix+key).Err()
}

func (s *RedisCacheService) Clear(ctx context.Context) error {
	keys, err := s.client.Keys(ctx, s.prefix+"*").Result()
	if err != nil {
		return fmt.Errorf("listing cache keys: %w", err)
	}
	if len(keys) > 0 {
		if err := s.client.Del(ctx, keys...).Err(); err != nil {
			return fmt.Errorf("deleting cache keys: %w", err)
		}
	}
	s.logger.Info("cleared L2 cache", zap.Int("keys_deleted", len(keys)))
	return nil
}

func (s *RedisCacheService) GetStats(ctx context.Context) (*CacheStats, error) {
	hits, misses := s.hits.Load(), s.misses.Load()
	stats := &CacheStats{TotalHits: hits, TotalMiss: misses}
	if total := hits + misses; total > 0 {
		stats.HitRate = float64(hits) / float64(total)
	}

	if keys, err := s.client.Keys(ctx, s.prefix+"*").Result(); err == nil {
		stats.TotalItems = int64(len(keys))
	}
	return stats, nil
}

func (s *RedisCacheService) Close() error { return s.client.Close() }

// Client exposes the underlying connection for services that share it.
func (s *RedisCacheService) Client() *redis.Client { return s.client }
