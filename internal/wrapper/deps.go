package wrapper

import (
	"context"

	"ecomonitor/internal/dto/openweather_dto"
)

type airPollutionClient interface {
	FetchAirPollution(ctx context.Context, lat, lon float64) (*openweather_dto.ResponseBody, error)
}
