package domain

import "fmt"

// ProviderNotFound is the weather provider's code for an unknown town.
const ProviderNotFound = "404"

// WeatherLookupError is an application-level failure reported by the
// weather provider in its response body (or by its HTTP status when the
// body could not be read).
type WeatherLookupError struct {
	Code    string
	Message string
}

func (e *WeatherLookupError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("weather lookup failed: code %s", e.Code)
	}
	return fmt.Sprintf("weather lookup failed: code %s: %s", e.Code, e.Message)
}

// NotFound reports whether the provider has no information for the town.
func (e *WeatherLookupError) NotFound() bool {
	return e.Code == ProviderNotFound
}
