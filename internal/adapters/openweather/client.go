package openweather

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
	"town-info-service/internal/domain"
	"town-info-service/internal/platform/obs"
)

// providerCode accepts the provider's "cod" field, which is a number on
// success (200) and a string on failure ("404").
type providerCode string

func (p *providerCode) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*p = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*p = providerCode(strings.TrimSpace(s))
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("cod: %w", err)
	}
	*p = providerCode(n.String())
	return nil
}

type weatherResponse struct {
	Cod     providerCode    `json:"cod"`
	Message json.RawMessage `json:"message"`
	Name    string          `json:"name"`
	Sys     struct {
		Country string `json:"country"`
	} `json:"sys"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  float64 `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Coord struct {
		Lon float64 `json:"lon"`
		Lat float64 `json:"lat"`
	} `json:"coord"`
}

func (r weatherResponse) message() string {
	var s string
	if err := json.Unmarshal(r.Message, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(r.Message))
}

// Client implements WeatherProvider using the OpenWeather current weather API.
// Each lookup is a single request; failures are terminal.
type Client struct {
	session *http.Client
	apiKey  string
	baseURL string
	units   string
}

func NewClient(apiKey, baseURL string, timeout time.Duration) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("openweather api key is empty")
	}
	if baseURL == "" {
		baseURL = "https://api.openweathermap.org"
	}

	return &Client{
		session: &http.Client{Timeout: timeout},
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
		units:   "metric",
	}, nil
}

// CurrentWeather fetches current conditions for town.
//
// A provider code other than 200 yields *domain.WeatherLookupError.
// Transport and decode failures are returned wrapped.
func (c *Client) CurrentWeather(ctx context.Context, town string) (_ domain.WeatherReport, err error) {
	defer obs.Time(ctx, "openweather.CurrentWeather")(&err)

	town = strings.TrimSpace(town)
	if town == "" {
		return domain.WeatherReport{}, errors.New("current weather: town must be non-empty")
	}

	q := url.Values{}
	q.Set("q", town)
	q.Set("units", c.units)
	q.Set("appid", c.apiKey)

	req, err := c.newRequest(ctx, c.baseURL+"/data/2.5/weather", q)
	if err != nil {
		return domain.WeatherReport{}, fmt.Errorf("current weather: %w", err)
	}

	status, body, err := c.do(req)
	if err != nil {
		return domain.WeatherReport{}, fmt.Errorf("current weather: execute request: %w", err)
	}

	var decoded weatherResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		if status < 200 || status > 299 {
			return domain.WeatherReport{}, &domain.WeatherLookupError{Code: strconv.Itoa(status)}
		}
		return domain.WeatherReport{}, fmt.Errorf("current weather: decode response: %w", err)
	}

	code := string(decoded.Cod)
	if code == "" {
		code = strconv.Itoa(status)
	}
	if code != "200" {
		return domain.WeatherReport{}, &domain.WeatherLookupError{Code: code, Message: decoded.message()}
	}

	if len(decoded.Weather) == 0 {
		return domain.WeatherReport{}, fmt.Errorf("current weather: response for %q has no conditions", town)
	}

	return domain.WeatherReport{
		Town:        decoded.Name,
		Country:     decoded.Sys.Country,
		Condition:   decoded.Weather[0].Main,
		Temperature: decoded.Main.Temp,
		FeelsLike:   decoded.Main.FeelsLike,
		Humidity:    decoded.Main.Humidity,
		WindSpeed:   decoded.Wind.Speed,
		Coordinates: domain.Coordinates{
			Lon: decoded.Coord.Lon,
			Lat: decoded.Coord.Lat,
		},
	}, nil
}
