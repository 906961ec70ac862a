package domain

import "strings"

// StatusOnSale is the provider's default event status.
const StatusOnSale = "onsale"

// Represents a single scheduled event returned by the events provider.
// Venues keep the provider's order.
type Event struct {
	Name       string
	StartDate  string
	StartTime  string
	Venues     []string
	StatusCode string
}

// Flagged reports whether the event status deviates from the default
// (cancelled, rescheduled, postponed, ...).
func (e Event) Flagged() bool {
	return e.StatusCode != "" && e.StatusCode != StatusOnSale
}

// DatePlace renders "<date> <time>, <venue>, <venue>".
func (e Event) DatePlace() string {
	var b strings.Builder
	b.WriteString(e.StartDate)
	b.WriteString(" ")
	b.WriteString(e.StartTime)
	for _, v := range e.Venues {
		b.WriteString(", ")
		b.WriteString(v)
	}
	return b.String()
}
