package service

import (
	"context"

	"ecomonitor/internal/schema"
)

type storage interface {
	Get(ctx context.Context, locations map[string]schema.Location) ([]schema.Reading, error)
}
