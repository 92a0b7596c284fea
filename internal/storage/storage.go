package storage

import (
	"context"
	"time"

	"ecomonitor/internal/schema"
	"ecomonitor/internal/storage/lrucache"

	"github.com/rs/zerolog/log"
)

type Storage struct {
	lruLocalCache lruLocalCache[string, schema.Reading]
	redisCache    redisCache[schema.Reading]
	upstream      airQualityClient
}

type redisRes struct {
	found    []schema.Reading
	notFound []schema.Location
}

// New return storage of air quality readings
func New(ctx context.Context,
	lruLocalCache lruLocalCache[string, schema.Reading],
	redisCache redisCache[schema.Reading],
	upstream airQualityClient,
	refreshPeriod time.Duration) *Storage {
	storage := &Storage{
		lruLocalCache: lruLocalCache,
		redisCache:    redisCache,
		upstream:      upstream,
	}

	go storage.runRefresher(ctx, refreshPeriod)

	return storage
}

// Get returns readings for locations, looking at lru, then redis, then upstream.
// Whatever is not ready before ctx is done is fetched in background for next time.
func (s *Storage) Get(ctx context.Context, locations map[string]schema.Location) ([]schema.Reading, error) {
	keys := extractKeys(locations)

	result := make([]schema.Reading, 0, len(locations))

	foundInLru, notFoundInLru := s.lruLocalCache.BatchGet(keys)
	result = append(result, withPriority(foundInLru, locations)...)
	if len(notFoundInLru) == 0 {
		return result, nil
	}

	redisCh := make(chan redisRes, 1)
	upstreamCh := make(chan []schema.Reading, 1)
	go s.fetchFromRedis(ctx, getLocations(notFoundInLru, locations), redisCh, locations)

	var rRes redisRes
	select {
	case rRes = <-redisCh:
		result = append(result, rRes.found...)
	case <-ctx.Done():
		go s.asyncUpdateCache(getLocations(notFoundInLru, locations))
		return result, nil
	}

	if len(rRes.notFound) == 0 {
		return result, nil
	}

	go s.fetchFromUpstream(ctx, rRes.notFound, upstreamCh)
	select {
	case fetched := <-upstreamCh:
		if fetched == nil {
			go s.asyncUpdateCache(rRes.notFound)
			return result, nil
		}
		s.save(fetched)
		result = append(result, fetched...)
	case <-ctx.Done():
		go s.asyncUpdateCache(rRes.notFound)
		return result, nil
	}
	return result, nil
}

func extractKeys(locations map[string]schema.Location) []string {
	result := make([]string, 0, len(locations))
	for k := range locations {
		result = append(result, k)
	}
	return result
}

// withPriority stamps the requested priority on cached readings
func withPriority(readings []schema.Reading, locations map[string]schema.Location) []schema.Reading {
	for i, r := range readings {
		if loc, ok := locations[r.LocationId]; ok {
			readings[i].Priority = loc.Priority
		}
	}
	return readings
}

func (s *Storage) asyncUpdateCache(notFound []schema.Location) {
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	found, err := s.upstream.GetReadings(ctx, notFound)
	if err != nil {
		log.Warn().Err(err).Int("locations", len(notFound)).Msg("background fetch failed")
		return
	}
	s.save(found)
}

func (s *Storage) save(found []schema.Reading) {
	if len(found) == 0 {
		return
	}
	s.redisCache.Update(extractKeysFromSlice(found), found)
	s.lruLocalCache.Update(toCacheEntities(found))
}

func toCacheEntities(found []schema.Reading) []lrucache.CacheItem[string, schema.Reading] {
	result := make([]lrucache.CacheItem[string, schema.Reading], 0, len(found))

	for _, val := range found {
		result = append(result, lrucache.CacheItem[string, schema.Reading]{
			Key:      val.LocationId,
			Value:    val,
			Priority: val.Priority,
		})
	}
	return result
}

func extractKeysFromSlice(found []schema.Reading) []string {
	result := make([]string, 0, len(found))

	for _, val := range found {
		result = append(result, val.LocationId)
	}

	return result
}

// gets from redis and send to chan
func (s *Storage) fetchFromRedis(ctx context.Context, locations []schema.Location, out chan<- redisRes, requested map[string]schema.Location) {
	var res redisRes
	select {
	case <-ctx.Done():
		res = redisRes{found: nil, notFound: locations}
	default:
		found, notFound, err := s.redisCache.BatchGet(ctx, extractLocationKeys(locations))
		if err != nil {
			log.Warn().Err(err).Msg("redis lookup failed")
			res = redisRes{found: nil, notFound: locations}
		} else {
			res = redisRes{found: withPriority(found, requested), notFound: getLocations(notFound, requested)}
		}
	}
	out <- res
	if len(res.found) != 0 {
		s.lruLocalCache.Update(toCacheEntities(res.found))
	}
}

func extractLocationKeys(locations []schema.Location) []string {
	result := make([]string, 0, len(locations))
	for _, l := range locations {
		result = append(result, l.Id)
	}
	return result
}

func getLocations(notFound []string, locations map[string]schema.Location) []schema.Location {
	result := make([]schema.Location, 0, len(notFound))

	for _, v := range notFound {
		result = append(result, locations[v])
	}

	return result
}

// gets from upstream and send to chan
func (s *Storage) fetchFromUpstream(ctx context.Context, locations []schema.Location, out chan<- []schema.Reading) {
	var res []schema.Reading
	select {
	case <-ctx.Done():
		res = nil
	default:
		found, err := s.upstream.GetReadings(ctx, locations)
		if err != nil {
			log.Warn().Err(err).Msg("upstream fetch failed")
			res = nil
		} else {
			res = found
		}
	}
	out <- res
}

// runRefresher refetches every cached location each period
func (s *Storage) runRefresher(ctx context.Context, period time.Duration) {
	if period <= 0 {
		return
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			cached := s.lruLocalCache.GetValues()
			locations := make([]schema.Location, 0, len(cached))
			for _, r := range cached {
				locations = append(locations, schema.Location{Id: r.LocationId, Lat: r.Lat, Lon: r.Lon, Priority: r.Priority})
			}
			readings, err := s.upstream.GetReadings(ctx, locations)
			if err != nil {
				log.Warn().Err(err).Msg("refresh failed")
				continue
			}
			s.save(readings)
			log.Info().Int("locations", len(readings)).Msg("air quality cache refreshed")

		case <-ctx.Done():
			log.Info().Msg("refresher: context canceled, stopping")
			return
		}
	}
}
