package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shenikar/dispatch_console/internal/models"
)

// memClient - in-memory замена Redis для тестов
type memClient struct {
	data    map[string]string
	ttl     time.Duration
	failGet error
}

func newMemClient() *memClient { return &memClient{data: map[string]string{}} }

func (m *memClient) Get(_ context.Context, key string) *redis.StringCmd {
	if m.failGet != nil {
		return redis.NewStringResult("", m.failGet)
	}
	v, ok := m.data[key]
	if !ok {
		return redis.NewStringResult("", redis.Nil)
	}
	return redis.NewStringResult(v, nil)
}

func (m *memClient) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	m.data[key] = string(value.([]byte))
	m.ttl = expiration
	return redis.NewStatusResult("OK", nil)
}

func (m *memClient) Del(_ context.Context, keys ...string) *redis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := m.data[k]; ok {
			delete(m.data, k)
			n++
		}
	}
	return redis.NewIntResult(n, nil)
}

func TestSummaryCache_RoundTrip(t *testing.T) {
	// Подготовка
	client := newMemClient()
	cache := newSummaryCache(client, 30*time.Second)
	ctx := context.Background()
	cells := []models.HexCell{{HexID: "h1", IncidentCount: 3, IncidentTypes: map[string]int{"fire": 3}}}

	// Промах
	got, err := cache.GetSummary(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Действие
	require.NoError(t, cache.SetSummary(ctx, cells))
	got, err = cache.GetSummary(ctx)

	// Проверки
	require.NoError(t, err)
	assert.Equal(t, cells, got)
	assert.Equal(t, 30*time.Second, client.ttl)

	require.NoError(t, cache.InvalidateSummary(ctx))
	got, err = cache.GetSummary(ctx)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSummaryCache_EmptySummaryIsAHit(t *testing.T) {
	cache := newSummaryCache(newMemClient(), time.Minute)
	ctx := context.Background()

	require.NoError(t, cache.SetSummary(ctx, nil))
	got, err := cache.GetSummary(ctx)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSummaryCache_Errors(t *testing.T) {
	client := newMemClient()
	cache := newSummaryCache(client, time.Minute)
	ctx := context.Background()

	client.failGet = errors.New("connection reset")
	_, err := cache.GetSummary(ctx)
	assert.ErrorContains(t, err, "connection reset")

	client.failGet = nil
	client.data[hexSummaryKey] = "{broken"
	_, err = cache.GetSummary(ctx)
	assert.Error(t, err)
}
