package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client reads current conditions from the OpenWeather API.
type Client struct {
	baseURL string
	apiKey  string
	units   string
	client  *http.Client
}

// New creates a new OpenWeather client.
func New(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, ErrAPIKeyRequired
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Units == "" {
		cfg.Units = DefaultUnits
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}

	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		units:   cfg.Units,
		client:  &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// Current returns the current weather for city. An unknown city yields ErrCityNotFound.
func (c *Client) Current(ctx context.Context, city string) (Current, error) {
	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", c.units)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/data/2.5/weather?"+q.Encode(), nil)
	if err != nil {
		return Current{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return Current{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Current{}, fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return Current{}, fmt.Errorf("%w: %s", ErrCityNotFound, city)
	case resp.StatusCode != http.StatusOK:
		return Current{}, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var parsed currentResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Current{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}
	if parsed.Main == nil {
		return Current{}, fmt.Errorf("%w: missing main block", ErrMalformedResponse)
	}

	out := Current{
		City:        parsed.Name,
		Country:     parsed.Sys.Country,
		Temperature: parsed.Main.Temp,
		FeelsLike:   parsed.Main.FeelsLike,
		Humidity:    parsed.Main.Humidity,
		WindSpeed:   parsed.Wind.Speed,
		Units:       c.units,
	}
	if out.City == "" {
		out.City = city
	}
	if len(parsed.Weather) > 0 {
		out.Description = parsed.Weather[0].Description
	}
	return out, nil
}
