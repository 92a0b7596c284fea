package wrapper

import (
	"context"
	"sync"
	"time"

	"ecomonitor/internal/dto/openweather_dto"
	"ecomonitor/internal/schema"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const defaultParallelism = 16

type Service struct {
	client      airPollutionClient
	timeout     time.Duration
	parallelism int
}

func New(client airPollutionClient,
	timeout time.Duration,
) *Service {
	return &Service{
		client:      client,
		timeout:     timeout,
		parallelism: defaultParallelism,
	}
}

// GetReadings fetches readings for every location, one upstream call per location.
// Locations that fail are left out; the error is returned only when nothing was fetched.
func (s *Service) GetReadings(ctx context.Context, locations []schema.Location) ([]schema.Reading, error) {
	if len(locations) == 0 {
		return []schema.Reading{}, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	var (
		mu       sync.Mutex
		result   = make([]schema.Reading, 0, len(locations))
		firstErr error
	)

	g := new(errgroup.Group)
	g.SetLimit(s.parallelism)
	for _, loc := range locations {
		g.Go(func() error {
			resp, err := s.client.FetchAirPollution(ctx, loc.Lat, loc.Lon)
			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				log.Warn().Err(err).Str("location", loc.Id).Msg("couldn't fetch air pollution")
				if firstErr == nil {
					firstErr = err
				}
				return nil
			}
			reading, ok := toSchema(loc, resp)
			if !ok {
				log.Warn().Str("location", loc.Id).Msg("empty air pollution response")
				return nil
			}
			result = append(result, reading)
			return nil
		})
	}
	_ = g.Wait()

	if len(result) == 0 && firstErr != nil {
		return nil, firstErr
	}
	return result, nil
}

func toSchema(loc schema.Location, resp *openweather_dto.ResponseBody) (schema.Reading, bool) {
	if resp == nil || len(resp.List) == 0 {
		return schema.Reading{}, false
	}
	entry := resp.List[0]

	return schema.Reading{
		LocationId: loc.Id,
		Priority:   loc.Priority,
		Lat:        loc.Lat,
		Lon:        loc.Lon,
		AQI:        entry.Main.AQI,
		Components: schema.Components{
			CO:   entry.Components.CO,
			NO:   entry.Components.NO,
			NO2:  entry.Components.NO2,
			O3:   entry.Components.O3,
			SO2:  entry.Components.SO2,
			PM25: entry.Components.PM25,
			PM10: entry.Components.PM10,
			NH3:  entry.Components.NH3,
		},
		MeasuredAt: entry.Dt,
	}, true
}
