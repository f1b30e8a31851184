package geocode

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// ErrUnavailable covers every geocoding failure: network, non-200, bad JSON,
// empty result. Callers recover by proceeding with nil coordinates.
var ErrUnavailable = errors.New("geocoding unavailable")

type Geocoder interface {
	Lookup(ctx context.Context, name string) (lat, lon float64, err error)
}

// Client queries a Nominatim-style search endpoint.
type Client struct {
	baseURL string
	timeout time.Duration
	httpc   *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{baseURL: baseURL, timeout: timeout, httpc: &http.Client{}}
}

type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

func (c *Client) Lookup(ctx context.Context, name string) (float64, float64, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	u := fmt.Sprintf("%s/search?q=%s&format=json&limit=1", c.baseURL, url.QueryEscape(name))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	resp, err := c.httpc.Do(req)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, 0, fmt.Errorf("%w: status %d", ErrUnavailable, resp.StatusCode)
	}

	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return 0, 0, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	if len(results) == 0 {
		return 0, 0, fmt.Errorf("%w: no match for %q", ErrUnavailable, name)
	}
	lat, err := strconv.ParseFloat(results[0].Lat, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad lat %q", ErrUnavailable, results[0].Lat)
	}
	lon, err := strconv.ParseFloat(results[0].Lon, 64)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: bad lon %q", ErrUnavailable, results[0].Lon)
	}
	return lat, lon, nil
}
