package services

import (
	"errors"
	"town-info-service/internal/domain"
)

var (
	// ErrEmptyInput is returned before any network call when the town is blank.
	ErrEmptyInput = errors.New("town name is empty")

	// ErrSuperseded marks a completed lookup whose result was discarded
	// because a newer submission was issued in the meantime.
	ErrSuperseded = errors.New("lookup superseded by a newer submission")
)

const (
	MsgEmptyInput = "Please insert a town name"
	MsgNotFound   = "There is no information for this town"
	MsgGeneric    = "There was an error while processing the request"
	MsgNoEvents   = "There are no events scheduled for the selected town"
)

// UserMessage maps a lookup error to the text shown on the error panel.
func UserMessage(err error) string {
	if errors.Is(err, ErrEmptyInput) {
		return MsgEmptyInput
	}

	var lookupErr *domain.WeatherLookupError
	if errors.As(err, &lookupErr) && lookupErr.NotFound() {
		return MsgNotFound
	}

	return MsgGeneric
}
