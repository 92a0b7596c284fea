package main

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"os"
	"strconv"
	"time"

	"ecomonitor/internal/dto/openweather_dto"
	"ecomonitor/internal/env"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func airPollutionHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Invalid request method", http.StatusMethodNotAllowed)
		return
	}

	lat, errLat := strconv.ParseFloat(r.URL.Query().Get("lat"), 64)
	lon, errLon := strconv.ParseFloat(r.URL.Query().Get("lon"), 64)
	if errLat != nil || errLon != nil {
		http.Error(w, "Invalid coordinates", http.StatusBadRequest)
		return
	}
	time.Sleep(300 * time.Millisecond)

	// random data in the ranges the real api reports for a city
	response := openweather_dto.ResponseBody{
		Coord: openweather_dto.Coord{Lat: lat, Lon: lon},
		List: []openweather_dto.Entry{
			{
				Main: openweather_dto.Main{AQI: rand.Intn(5) + 1},
				Components: openweather_dto.Components{
					CO:   rand.Float64()*800 + 200,
					NO:   rand.Float64() * 20,
					NO2:  rand.Float64() * 80,
					O3:   rand.Float64() * 160,
					SO2:  rand.Float64() * 60,
					PM25: rand.Float64() * 90,
					PM10: rand.Float64() * 140,
					NH3:  rand.Float64() * 10,
				},
				Dt: time.Now().Unix(),
			},
		},
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(response); err != nil {
		log.Error().Err(err).Msg("couldn't encode response")
	}
}

func main() {
	env.LoadEnv()
	zerolog.TimeFieldFormat = time.RFC3339
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout})

	port := env.GetEnv("MOCK_PORT", "8081")

	http.HandleFunc("/data/2.5/air_pollution", airPollutionHandler)
	log.Info().Str("port", port).Msg("Mock server running")
	if err := http.ListenAndServe(":"+port, nil); err != nil {
		log.Fatal().Err(err).Msg("Mock server crashed")
	}
}
