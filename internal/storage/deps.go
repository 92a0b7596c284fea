package storage

import (
	"context"

	"ecomonitor/internal/schema"
	"ecomonitor/internal/storage/lrucache"
)

type airQualityClient interface {
	GetReadings(ctx context.Context, locations []schema.Location) ([]schema.Reading, error)
}

type lruLocalCache[K comparable, V any] interface {
	BatchGet(keys []K) ([]V, []K)
	Update(rows []lrucache.CacheItem[K, V])
	GetValues() []V
}

type redisCache[V any] interface {
	BatchGet(ctx context.Context, keys []string) ([]V, []string, error)
	Update(keys []string, values []V)
}
