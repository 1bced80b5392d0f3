// Package openweather provides a client for the OpenWeatherMap current weather API.
package openweather

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rotisserie/eris"
)

const (
	defaultBaseURL = "http://api.openweathermap.org/data/2.5/weather"
	defaultUnits   = "metric"
)

// ErrMissingTemperature is returned when a 200 response has no main.temp.
var ErrMissingTemperature = eris.New("openweather: response missing main.temp")

// Client fetches current conditions for a coordinate.
type Client interface {
	Current(ctx context.Context, lat, lon float64) (*Conditions, error)
}

// Conditions is the normalized subset of the current weather response.
type Conditions struct {
	Temperature float64
	WindSpeed   float64
	Humidity    float64
	Pressure    float64
	Description string
	ObservedAt  time.Time
}

type currentResponse struct {
	Main struct {
		Temp     *float64 `json:"temp"`
		Humidity float64  `json:"humidity"`
		Pressure float64  `json:"pressure"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Dt int64 `json:"dt"`
}

// Option configures the client.
type Option func(*httpClient)

// WithBaseURL overrides the default endpoint.
func WithBaseURL(url string) Option {
	return func(c *httpClient) {
		c.baseURL = url
	}
}

// WithUnits sets the units parameter ("metric", "imperial", "standard").
func WithUnits(units string) Option {
	return func(c *httpClient) {
		c.units = units
	}
}

// WithHTTPClient overrides the default http.Client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *httpClient) {
		c.http = hc
	}
}

type httpClient struct {
	apiKey  string
	baseURL string
	units   string
	http    *http.Client
}

// NewClient creates an OpenWeatherMap client.
func NewClient(apiKey string, opts ...Option) Client {
	c := &httpClient{
		apiKey:  apiKey,
		baseURL: defaultBaseURL,
		units:   defaultUnits,
		http:    &http.Client{Timeout: 30 * time.Second},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func (c *httpClient) Current(ctx context.Context, lat, lon float64) (*Conditions, error) {
	if c.apiKey == "" {
		return nil, eris.New("openweather: api key not configured")
	}

	q := url.Values{}
	q.Set("lat", strconv.FormatFloat(lat, 'f', -1, 64))
	q.Set("lon", strconv.FormatFloat(lon, 'f', -1, 64))
	q.Set("appid", c.apiKey)
	q.Set("units", c.units)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), http.NoBody)
	if err != nil {
		return nil, eris.Wrap(err, "openweather: create request")
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		// url.Error would repeat the request URL, key included.
		var uerr *url.Error
		if errors.As(err, &uerr) {
			err = uerr.Err
		}
		return nil, eris.Wrap(err, "openweather: send request")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, eris.Wrap(err, "openweather: read response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, eris.Errorf("openweather: unexpected status %d: %s", resp.StatusCode, string(body))
	}

	var raw currentResponse
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, eris.Wrap(err, "openweather: unmarshal response")
	}
	if raw.Main.Temp == nil {
		return nil, ErrMissingTemperature
	}

	out := &Conditions{
		Temperature: *raw.Main.Temp,
		WindSpeed:   raw.Wind.Speed,
		Humidity:    raw.Main.Humidity,
		Pressure:    raw.Main.Pressure,
	}
	if len(raw.Weather) > 0 {
		out.Description = raw.Weather[0].Description
	}
	if raw.Dt > 0 {
		out.ObservedAt = time.Unix(raw.Dt, 0).UTC()
	}
	return out, nil
}
