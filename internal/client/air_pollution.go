package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"ecomonitor/internal/dto/openweather_dto"

	"github.com/rs/zerolog/log"
)

type Client struct {
	APIURL string
	apiKey string
	client *http.Client
}

func NewClient(apiURL string, apiKey string, timeout time.Duration) (*Client, error) {
	if apiURL == "" {
		return nil, errors.New("api url is empty")
	}
	if _, err := url.Parse(apiURL); err != nil {
		return nil, fmt.Errorf("invalid api url: %w", err)
	}
	return &Client{
		APIURL: apiURL,
		apiKey: apiKey,
		client: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// FetchAirPollution gets current air pollution for a coordinate
func (c *Client) FetchAirPollution(ctx context.Context, lat, lon float64) (*openweather_dto.ResponseBody, error) {
	u, err := url.Parse(c.APIURL)
	if err != nil {
		return nil, fmt.Errorf("err during parsing api url: %w", err)
	}
	q := u.Query()
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	if c.apiKey != "" {
		q.Set("appid", c.apiKey)
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("err during creating a request with context: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request error: %w", err)
	}
	defer func(Body io.ReadCloser) {
		if err := Body.Close(); err != nil {
			log.Error().Err(err).Msg("couldn't close a body")
		}
	}(resp.Body)

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("unexpected status code: " + resp.Status)
	}

	var response openweather_dto.ResponseBody
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("err during unmarshaling of a response: %w", err)
	}

	return &response, nil
}
