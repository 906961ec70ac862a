package ticketmaster

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
	"town-info-service/internal/domain"
	"town-info-service/internal/platform/obs"
)

type httpStatusError struct {
	Code int
	Body string
}

func (e *httpStatusError) Error() string {
	return fmt.Sprintf("Code %d: %s", e.Code, e.Body)
}

type eventsResponse struct {
	Embedded *struct {
		Events []eventItem `json:"events"`
	} `json:"_embedded"`
	Page *struct {
		TotalElements int `json:"totalElements"`
	} `json:"page"`
}

type eventItem struct {
	Name  string `json:"name"`
	Dates struct {
		Start struct {
			LocalDate string `json:"localDate"`
			LocalTime string `json:"localTime"`
		} `json:"start"`
		Status struct {
			Code string `json:"code"`
		} `json:"status"`
	} `json:"dates"`
	Embedded struct {
		Venues []struct {
			Name string `json:"name"`
		} `json:"venues"`
	} `json:"_embedded"`
}

// Client implements EventsProvider using the Ticketmaster Discovery API.
// Only the first page of results is requested.
type Client struct {
	session *http.Client
	apiKey  string
	baseURL string
}

func NewClient(apiKey, baseURL string, timeout time.Duration) (*Client, error) {
	if apiKey == "" {
		return nil, errors.New("ticketmaster api key is empty")
	}
	if baseURL == "" {
		baseURL = "https://app.ticketmaster.com"
	}

	return &Client{
		session: &http.Client{Timeout: timeout},
		apiKey:  apiKey,
		baseURL: strings.TrimRight(baseURL, "/"),
	}, nil
}

// EventsInCity returns the events scheduled in city, in provider order.
func (c *Client) EventsInCity(ctx context.Context, city string) (_ []domain.Event, err error) {
	defer obs.Time(ctx, "ticketmaster.EventsInCity")(&err)

	city = strings.TrimSpace(city)
	if city == "" {
		return nil, errors.New("events in city: city must be non-empty")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/discovery/v2/events", nil)
	if err != nil {
		return nil, fmt.Errorf("events in city: create request: %w", err)
	}
	q := url.Values{}
	q.Set("apikey", c.apiKey)
	q.Set("locale", "*")
	q.Set("city", city)
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := c.session.Do(req)
	if err != nil {
		return nil, fmt.Errorf("events in city: execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return nil, fmt.Errorf("events in city: %w", &httpStatusError{
			Code: resp.StatusCode,
			Body: strings.TrimSpace(string(b)),
		})
	}

	var decoded eventsResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("events in city: decode response: %w", err)
	}

	if decoded.Page == nil {
		return nil, errors.New("events in city: response has no page block")
	}
	if decoded.Page.TotalElements == 0 {
		return []domain.Event{}, nil
	}
	if decoded.Embedded == nil {
		return nil, fmt.Errorf("events in city: page reports %d events but none embedded", decoded.Page.TotalElements)
	}

	out := make([]domain.Event, 0, len(decoded.Embedded.Events))
	for _, item := range decoded.Embedded.Events {
		venues := make([]string, 0, len(item.Embedded.Venues))
		for _, v := range item.Embedded.Venues {
			venues = append(venues, v.Name)
		}

		out = append(out, domain.Event{
			Name:       item.Name,
			StartDate:  item.Dates.Start.LocalDate,
			StartTime:  item.Dates.Start.LocalTime,
			Venues:     venues,
			StatusCode: item.Dates.Status.Code,
		})
	}

	return out, nil
}
