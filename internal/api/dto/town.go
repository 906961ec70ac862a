package dto

type WeatherResponse struct {
	Town        string  `json:"town"`
	Country     string  `json:"country"`
	Condition   string  `json:"condition"`
	Temperature float64 `json:"temperature"`
	FeelsLike   float64 `json:"feels_like"`
	Humidity    float64 `json:"humidity"`
	WindSpeed   float64 `json:"wind_speed"`
	Lon         float64 `json:"lon"`
	Lat         float64 `json:"lat"`
}

type MapResponse struct {
	URL    string `json:"url"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

type EventResponse struct {
	Name       string   `json:"name"`
	StartDate  string   `json:"start_date"`
	StartTime  string   `json:"start_time"`
	Venues     []string `json:"venues"`
	StatusCode string   `json:"status_code"`
	Flagged    bool     `json:"flagged"`
}

// EventsResponse mirrors the events panel. Hidden is set when the events
// lookup failed; Message carries the placeholder when none are scheduled.
type EventsResponse struct {
	Hidden  bool            `json:"hidden"`
	Message string          `json:"message,omitempty"`
	Events  []EventResponse `json:"events"`
}

type TownInfoResponse struct {
	Weather WeatherResponse `json:"weather"`
	Map     MapResponse     `json:"map"`
	Events  EventsResponse  `json:"events"`
}
