package app

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ecomonitor/internal/client"
	"ecomonitor/internal/env"
	"ecomonitor/internal/handler"
	"ecomonitor/internal/middleware"
	"ecomonitor/internal/schema"
	"ecomonitor/internal/service"
	"ecomonitor/internal/storage"
	"ecomonitor/internal/storage/lrucache"
	redisStorage "ecomonitor/internal/storage/redis"
	"ecomonitor/internal/wrapper"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type App struct{}

const (
	successCode = 0
	failureCode = 1

	readingPrefix  = "ecomonitor:reading:"
	locationPrefix = "ecomonitor:"

	shutdownTimeout = 5 * time.Second
)

func New() *App {
	return &App{}
}

func (a *App) Run() (exitCode int) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	env.LoadEnv()
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	cfg, err := loadConfig()
	if err != nil {
		log.Error().Err(err).Msg("couldn't load config")
		return failureCode
	}

	lruCache := lrucache.New[string, schema.Reading](ctx,
		cfg.LruCacheSize,
		cfg.LruChanSize,
	)
	redisOpts := redisStorage.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDb,
		Prefix:   readingPrefix,
		TTL:      cfg.RedisTTL,
		ChanSize: cfg.RedisChanSize,
	}
	readings := redisStorage.NewClient[schema.Reading](ctx, redisOpts, marshalJSON[schema.Reading], unmarshalJSON[schema.Reading])
	defer readings.Close()

	redisOpts.Prefix = locationPrefix
	redisOpts.TTL = 0
	locations := redisStorage.NewClient[[]schema.Location](ctx, redisOpts, marshalJSON[[]schema.Location], unmarshalJSON[[]schema.Location])
	defer locations.Close()

	airClient, err := client.NewClient(cfg.AirQualityURL, cfg.OpenWeatherAPIKey, cfg.UpstreamTimeout)
	if err != nil {
		log.Error().Err(err).Msg("couldn't initialize an air pollution client")
		return failureCode
	}
	airWrapper := wrapper.New(airClient, cfg.UpstreamTimeout)
	readingStorage := storage.New(ctx, lruCache, readings, airWrapper, cfg.UpdatePeriod)
	readingService := service.New(readingStorage)

	h := handler.New(readingService, cfg.APITimeout, cfg.ProjectionMaxYears)

	startWarmUpper(ctx, cfg.WarmupSaverPeriod, lruCache, locations, readingStorage)

	mux := http.NewServeMux()
	routes := map[string]http.HandlerFunc{
		"/api/v1/air-quality":         h.AirQuality,
		"/api/v1/classify":            h.Classify,
		"/api/v1/sequestration":       h.Sequestration,
		"/api/v1/sequestration/batch": h.SequestrationBatch,
		"/api/v1/equivalents":         h.Equivalents,
	}
	for path, fn := range routes {
		mux.Handle(path, middleware.Chain(fn,
			middleware.RecoverMiddleware,
			middleware.LoggingMiddleware,
			middleware.JsonMiddleware,
		))
	}

	server := &http.Server{
		Addr:    ":" + cfg.ServerPort,
		Handler: mux,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("couldn't shut down gracefully")
		}
	}()

	log.Info().Str("port", cfg.ServerPort).Msg("server started")
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error().Err(err).Msg("Server crashed")
		return failureCode
	}

	return successCode
}

func marshalJSON[V any](v V) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func unmarshalJSON[V any](s string) (V, error) {
	var v V
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		var zero V
		return zero, err
	}
	return v, nil
}
