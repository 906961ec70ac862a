package domain

import (
	"time"

	"github.com/google/uuid"
)

// Outcome of a single town-info action, as recorded in the lookup journal.
type LookupOutcome string

const (
	OutcomeOK       LookupOutcome = "ok"
	OutcomeNotFound LookupOutcome = "not_found"
	OutcomeFailed   LookupOutcome = "failed"
)

// Represents one journaled town-info action.
// ProviderCode is the weather provider's status code when the lookup failed.
type LookupEntry struct {
	ID           uuid.UUID
	Town         string
	Outcome      LookupOutcome
	ProviderCode string
	EventCount   int
	RequestedAt  time.Time
}
