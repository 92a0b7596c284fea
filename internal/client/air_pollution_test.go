package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
	"time"

	"ecomonitor/internal/dto/openweather_dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type roundTripFunc func(req *http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(req *http.Request) (*http.Response, error) {
	return f(req)
}

func TestNewClient(t *testing.T) {
	testCases := []struct {
		name        string
		inputURL    string
		expectedURL string
		wantErr     bool
	}{
		{
			name:     "err, empty url",
			inputURL: "",
			wantErr:  true,
		},
		{
			name:     "err, malformed url",
			inputURL: "http://[::1",
			wantErr:  true,
		},
		{
			name:        "user URL",
			inputURL:    "http://example.com/data/2.5/air_pollution",
			expectedURL: "http://example.com/data/2.5/air_pollution",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, err := NewClient(tc.inputURL, "key", time.Millisecond)
			if tc.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedURL, client.APIURL)
		})
	}
}

func TestFetchAirPollution(t *testing.T) {
	expectedResponse := openweather_dto.ResponseBody{
		Coord: openweather_dto.Coord{Lat: 40.7128, Lon: -74.006},
		List: []openweather_dto.Entry{
			{
				Main:       openweather_dto.Main{AQI: 2},
				Components: openweather_dto.Components{PM25: 13.2, PM10: 20.1, O3: 61, NO2: 12, SO2: 3},
				Dt:         1700000000,
			},
		},
	}
	successRespBytes, _ := json.Marshal(expectedResponse)

	testCases := []struct {
		name             string
		transport        http.RoundTripper
		expectedResponse *openweather_dto.ResponseBody
		expectedError    string
	}{
		{
			name: "ok, success",
			transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
				if req.Method != http.MethodGet {
					return nil, errors.New("wrong method")
				}
				q := req.URL.Query()
				if q.Get("lat") != "40.7128" || q.Get("lon") != "-74.006" || q.Get("appid") != "secret" {
					return nil, errors.New("wrong query " + req.URL.RawQuery)
				}
				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(bytes.NewReader(successRespBytes)),
					Header:     make(http.Header),
				}, nil
			}),
			expectedResponse: &expectedResponse,
		},
		{
			name: "code is not 200",
			transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusUnauthorized,
					Status:     "401 Unauthorized",
					Body:       io.NopCloser(strings.NewReader("error")),
					Header:     make(http.Header),
				}, nil
			}),
			expectedError: "unexpected status code",
		},
		{
			name: "err",
			transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
				return nil, errors.New("network error")
			}),
			expectedError: "network error",
		},
		{
			name: "decoding error JSON",
			transport: roundTripFunc(func(req *http.Request) (*http.Response, error) {
				return &http.Response{
					StatusCode: http.StatusOK,
					Body:       io.NopCloser(strings.NewReader("invalid json")),
					Header:     make(http.Header),
				}, nil
			}),
			expectedError: "invalid character",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			client, err := NewClient("http://dummy/data/2.5/air_pollution", "secret", 0)
			require.NoError(t, err)
			client.client.Transport = tc.transport

			resp, err := client.FetchAirPollution(context.Background(), 40.7128, -74.006)
			if tc.expectedError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.expectedError)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.expectedResponse, resp)
		})
	}
}
