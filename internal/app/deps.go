package app

import (
	"context"
	"time"

	"ecomonitor/internal/schema"
)

type lruCache[V any] interface {
	GetValues() []V
}

type locationStore interface {
	Set(ctx context.Context, key string, value []schema.Location, expiration time.Duration) error
	Get(ctx context.Context, key string) ([]schema.Location, error)
}

type storage interface {
	Get(ctx context.Context, locations map[string]schema.Location) ([]schema.Reading, error)
}
