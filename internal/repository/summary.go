package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/shenikar/dispatch_console/internal/models"
)

const hexSummaryKey = "hex_summary"

// cacheClient - часть *redis.Client, нужная кэшу
type cacheClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// SummaryCache хранит сводку инцидентов по ячейкам в Redis
type SummaryCache struct {
	redisClient cacheClient
	ttl         time.Duration
}

func NewSummaryCache(client *redis.Client, ttl time.Duration) *SummaryCache {
	return newSummaryCache(client, ttl)
}

func newSummaryCache(client cacheClient, ttl time.Duration) *SummaryCache {
	return &SummaryCache{redisClient: client, ttl: ttl}
}

// GetSummary возвращает nil, nil при промахе кэша
func (r *SummaryCache) GetSummary(ctx context.Context) ([]models.HexCell, error) {
	val, err := r.redisClient.Get(ctx, hexSummaryKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get hex summary from cache: %w", err)
	}

	var cells []models.HexCell
	if err := json.Unmarshal(val, &cells); err != nil {
		return nil, fmt.Errorf("failed to unmarshal hex summary from cache: %w", err)
	}
	return cells, nil
}

// SetSummary сохраняет сводку на время ttl
func (r *SummaryCache) SetSummary(ctx context.Context, cells []models.HexCell) error {
	if cells == nil {
		cells = []models.HexCell{}
	}
	val, err := json.Marshal(cells)
	if err != nil {
		return fmt.Errorf("failed to marshal hex summary for cache: %w", err)
	}
	if err := r.redisClient.Set(ctx, hexSummaryKey, val, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set hex summary cache: %w", err)
	}
	return nil
}

// InvalidateSummary удаляет сводку из кэша
func (r *SummaryCache) InvalidateSummary(ctx context.Context) error {
	if err := r.redisClient.Del(ctx, hexSummaryKey).Err(); err != nil {
		return fmt.Errorf("failed to invalidate hex summary cache: %w", err)
	}
	return nil
}
