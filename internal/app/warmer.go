package app

import (
	"context"
	"time"

	"ecomonitor/internal/schema"

	"github.com/rs/zerolog/log"
)

const warmUpKey = "warmingUpKey"

func startWarmUpper(ctx context.Context,
	warmupSaverPeriod time.Duration,
	cache lruCache[schema.Reading],
	store locationStore,
	storage storage,
) {
	go exportLocationsPeriodically(ctx, warmupSaverPeriod, cache, store)

	go warmup(ctx, store, storage)
}

// warmup requests the locations hot before the last restart so the caches fill up
func warmup(ctx context.Context, store locationStore, s storage) {
	select {
	case <-ctx.Done():
		log.Info().Msg("warmup: context canceled")
		return
	default:
		locations, err := store.Get(ctx, warmUpKey)
		if err != nil {
			log.Warn().Err(err).Msg("couldn't warm up")
			return
		}

		if len(locations) == 0 {
			return
		}

		if _, err := s.Get(ctx, toMap(locations)); err != nil {
			log.Warn().Err(err).Msg("warm up request failed")
			return
		}
		log.Info().Int("locations", len(locations)).Msg("cache warmed up")
	}
}

func toMap(locations []schema.Location) map[string]schema.Location {
	result := make(map[string]schema.Location, len(locations))

	for _, val := range locations {
		result[val.Id] = val
	}
	return result
}

func exportLocationsPeriodically(ctx context.Context, interval time.Duration, cache lruCache[schema.Reading], store locationStore) {
	if interval <= 0 {
		log.Info().Msg("exportLocationsPeriodically: non-positive period, export disabled")
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			log.Info().Msg("exportLocationsPeriodically: context canceled, stopping export goroutine")
			return
		case <-ticker.C:
			exportLocations(ctx, cache, store)
		}
	}
}

func exportLocations(ctx context.Context, cache lruCache[schema.Reading], store locationStore) {
	values := cache.GetValues()

	locations := make([]schema.Location, 0, len(values))
	for _, val := range values {
		locations = append(locations, schema.Location{
			Id:       val.LocationId,
			Lat:      val.Lat,
			Lon:      val.Lon,
			Priority: val.Priority,
		})
	}

	// TODO use shared lock when several instances share one redis
	if err := store.Set(ctx, warmUpKey, locations, 0); err != nil {
		log.Error().Err(err).Msg("couldn't export cached locations")
	}
}
