package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

// Client fetches the latest rates from an exchangerate.host compatible API.
type Client struct {
	baseURL   string
	accessKey string
	client    *http.Client
}

// New creates a new exchange rate client.
func New(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = DefaultTimeout
	}
	return &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		accessKey: cfg.AccessKey,
		client:    &http.Client{Timeout: cfg.Timeout},
	}
}

// Latest returns rates relative to DefaultBase. The response must carry an explicit
// success flag set to true and a non-empty rate map.
func (c *Client) Latest(ctx context.Context) (Latest, error) {
	q := url.Values{}
	q.Set("base", DefaultBase)
	if c.accessKey != "" {
		q.Set("access_key", c.accessKey)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/latest?"+q.Encode(), nil)
	if err != nil {
		return Latest{}, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")

	resp, err := c.client.Do(httpReq)
	if err != nil {
		return Latest{}, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Latest{}, fmt.Errorf("%w: read body: %w", ErrUnavailable, err)
	}

	if resp.StatusCode != http.StatusOK {
		return Latest{}, fmt.Errorf("%w: status %d", ErrUnsuccessful, resp.StatusCode)
	}

	var parsed latestResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return Latest{}, fmt.Errorf("%w: %w", ErrMalformedResponse, err)
	}

	if parsed.Success == nil || !*parsed.Success {
		if parsed.Error != nil {
			return Latest{}, fmt.Errorf("%w: %d %s", ErrUnsuccessful, parsed.Error.Code, parsed.Error.Info)
		}
		return Latest{}, ErrUnsuccessful
	}
	if len(parsed.Rates) == 0 {
		return Latest{}, ErrEmptyRates
	}

	base := parsed.Base
	if base == "" {
		base = parsed.Source
	}
	if base == "" {
		base = DefaultBase
	}

	return Latest{
		Base:  strings.ToUpper(base),
		Date:  parsed.Date,
		Rates: parsed.Rates,
	}, nil
}
