package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"town-info-service/internal/domain"
	"town-info-service/internal/platform/obs"

	"github.com/google/uuid"
)

// Postgres-backed implementation of the LookupJournal port.
// Rows are only ever appended; nothing reads them back to serve a lookup.
type PgLookupJournal struct {
	DB *sql.DB
}

func NewPgLookupJournal(db *sql.DB) *PgLookupJournal {
	return &PgLookupJournal{DB: db}
}

// Record appends one town-info action.
func (j *PgLookupJournal) Record(ctx context.Context, e domain.LookupEntry) (err error) {
	defer obs.Time(ctx, "journal.Record")(&err)

	if j.DB == nil {
		return errors.New("lookup journal: db is nil")
	}
	if strings.TrimSpace(e.Town) == "" {
		return errors.New("lookup journal: empty town")
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}

	q := `
	INSERT INTO town_lookups (id, town, outcome, provider_code, event_count, requested_at)
	VALUES ($1, $2, $3, $4, $5, $6);
	`
	if _, err := j.DB.ExecContext(ctx, q,
		e.ID.String(), e.Town, string(e.Outcome), e.ProviderCode, e.EventCount, e.RequestedAt,
	); err != nil {
		return fmt.Errorf("insert town lookup town=%q: %w", e.Town, err)
	}

	return nil
}

// NopJournal discards entries. Used when no database is configured.
type NopJournal struct{}

func (NopJournal) Record(context.Context, domain.LookupEntry) error { return nil }
