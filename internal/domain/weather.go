package domain

import "fmt"

// Current conditions for a single town as reported by the weather provider.
// Numeric fields are carried exactly as the provider returned them.
type WeatherReport struct {
	Town        string
	Country     string
	Condition   string
	Temperature float64
	FeelsLike   float64
	Humidity    float64
	WindSpeed   float64
	Coordinates Coordinates
}

// Title returns the "<town>, <country>" heading shown above the report.
func (w WeatherReport) Title() string {
	return fmt.Sprintf("%s, %s", w.Town, w.Country)
}
