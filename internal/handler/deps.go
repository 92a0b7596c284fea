package handler

import (
	"context"

	"ecomonitor/internal/schema"
)

type readingGetter interface {
	Get(ctx context.Context, locations []schema.Location) ([]schema.Reading, error)
}
