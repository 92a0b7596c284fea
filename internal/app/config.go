package app

import (
	"time"

	"ecomonitor/internal/env"
)

type config struct {
	ServerPort         string
	RedisAddr          string
	RedisPassword      string
	RedisDb            int
	RedisChanSize      int
	RedisTTL           time.Duration
	LruCacheSize       int
	LruChanSize        int
	AirQualityURL      string
	OpenWeatherAPIKey  string
	UpstreamTimeout    time.Duration
	APITimeout         time.Duration
	UpdatePeriod       time.Duration
	WarmupSaverPeriod  time.Duration
	ProjectionMaxYears int
}

func loadConfig() (config, error) {
	cfg := config{
		ServerPort:        env.GetEnv("PORT", "8080"),
		RedisAddr:         env.GetEnv("REDIS_ADDR", ""),
		RedisPassword:     env.GetEnv("REDIS_PASSWORD", ""),
		AirQualityURL:     env.GetEnv("AIR_QUALITY_URL", "http://localhost:8081/data/2.5/air_pollution"),
		OpenWeatherAPIKey: env.GetEnv("OPENWEATHER_API_KEY", ""),
	}

	ints := []struct {
		key string
		def int
		dst *int
	}{
		{"REDIS_DB", 0, &cfg.RedisDb},
		{"REDIS_CHAN_SIZE", 1000, &cfg.RedisChanSize},
		{"LRU_CACHE_SIZE", 1000, &cfg.LruCacheSize},
		{"LRU_CHAN_SIZE", 1000, &cfg.LruChanSize},
		{"PROJECTION_MAX_YEARS", 50, &cfg.ProjectionMaxYears},
	}
	for _, v := range ints {
		val, err := env.GetInt(v.key, v.def)
		if err != nil {
			return config{}, err
		}
		*v.dst = val
	}

	durations := []struct {
		key string
		def time.Duration
		dst *time.Duration
	}{
		{"REDIS_TTL", 2 * time.Hour, &cfg.RedisTTL},
		{"UPSTREAM_TIMEOUT", time.Second, &cfg.UpstreamTimeout},
		{"API_TIMEOUT", 300 * time.Millisecond, &cfg.APITimeout},
		{"UPDATE_CACHE_PERIOD", time.Hour, &cfg.UpdatePeriod},
		{"WARMUP_SAVER_PERIOD", time.Hour, &cfg.WarmupSaverPeriod},
	}
	for _, v := range durations {
		val, err := env.GetDuration(v.key, v.def)
		if err != nil {
			return config{}, err
		}
		*v.dst = val
	}

	return cfg, nil
}
