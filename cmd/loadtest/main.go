package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"math/rand"
	"net/http"
	"os"
	"sort"
	"strconv"
	"sync"
	"time"

	"ecomonitor/internal/dto/api_v1_dto"
	"ecomonitor/internal/env"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var (
	plantTypes = []string{"tree", "shrub", "herb", "succulent", "fern", "vine", "cactus"}
	species    = []string{"Ficus elastica", "Sansevieria trifasciata", "Nephrolepis exaltata", "Monstera deliciosa", ""}
)

func randomFloat(lo, hi float64) *float64 {
	v := lo + rand.Float64()*(hi-lo)
	return &v
}

func generateRandomPayload(maxPlants int, maxYears int) ([]byte, error) {
	numPlants := rand.Intn(maxPlants) + 1
	plants := make([]api_v1_dto.PlantRequest, numPlants)
	for i := 0; i < numPlants; i++ {
		plants[i] = api_v1_dto.PlantRequest{
			Id:      "plant" + strconv.Itoa(i),
			Name:    "Plant " + strconv.Itoa(i),
			Type:    plantTypes[rand.Intn(len(plantTypes))],
			Height:  randomFloat(0.1, 3),
			Width:   randomFloat(0.1, 2),
			Age:     randomFloat(0, 20),
			Species: species[rand.Intn(len(species))],
		}
	}
	body := api_v1_dto.SequestrationRequest{Plants: plants, Years: rand.Intn(maxYears + 1)}
	return json.Marshal(body)
}

type result struct {
	latency time.Duration
	status  int
}

func percentile(sorted []time.Duration, p float64) time.Duration {
	idx := int(float64(len(sorted)) * p)
	if idx >= len(sorted) {
		idx = len(sorted) - 1
	}
	return sorted[idx]
}

func worker(ctx context.Context, id int, url string, maxPlants, maxYears int, out chan<- result) {
	client := &http.Client{}
	for ctx.Err() == nil {
		payload, err := generateRandomPayload(maxPlants, maxYears)
		if err != nil {
			log.Error().Err(err).Int("worker", id).Msg("couldn't generate payload")
			continue
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
		if err != nil {
			log.Error().Err(err).Int("worker", id).Msg("couldn't create request")
			continue
		}
		req.Header.Set("Content-Type", "application/json")

		start := time.Now()
		resp, err := client.Do(req)
		res := result{latency: time.Since(start)}
		if err != nil {
			if ctx.Err() == nil {
				log.Error().Err(err).Int("worker", id).Msg("request failed")
			}
			out <- res
			continue
		}
		res.status = resp.StatusCode
		_ = resp.Body.Close()
		out <- res
	}
}

func main() {
	env.LoadEnv()
	if needTest := os.Getenv("NEED_TEST"); needTest != "true" {
		return
	}
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	concurrency := flag.Int("concurrency", 100, "Number of concurrent workers")
	duration := flag.Duration("duration", 5*time.Second, "Duration of the load test")
	maxPlants := flag.Int("maxPlants", 1000, "Maximum number of plants in a payload")
	maxYears := flag.Int("maxYears", 10, "Maximum projection horizon in a payload")
	flag.Parse()

	url := env.GetEnv("TARGET_URL", "http://localhost:8080/api/v1/sequestration")

	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	log.Info().
		Str("target", url).
		Int("concurrency", *concurrency).
		Dur("duration", *duration).
		Msg("Starting load test")

	results := make(chan result, 1024)
	var (
		latencies []time.Duration
		failed    int
		done      = make(chan struct{})
	)
	go func() {
		defer close(done)
		for r := range results {
			latencies = append(latencies, r.latency)
			if r.status != http.StatusOK {
				failed++
			}
		}
	}()

	startTime := time.Now()
	var wg sync.WaitGroup
	for i := 0; i < *concurrency; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			worker(ctx, id, url, *maxPlants, *maxYears, results)
		}(i)
	}
	wg.Wait()
	close(results)
	<-done

	if len(latencies) > 0 {
		sort.Slice(latencies, func(i, j int) bool { return latencies[i] < latencies[j] })
		log.Info().
			Str("p50", percentile(latencies, 0.50).String()).
			Str("p95", percentile(latencies, 0.95).String()).
			Str("p99", percentile(latencies, 0.99).String()).
			Msg("latency percentiles")
	}

	totalTime := time.Since(startTime).Seconds()
	log.Info().
		Int("total_requests", len(latencies)).
		Int("failed", failed).
		Float64("rps", float64(len(latencies))/totalTime).
		Msg("Load test completed")
}
