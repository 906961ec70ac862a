package repositories

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"
	"town-info-service/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
)

func TestPgLookupJournalRecord(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	id := uuid.New()
	at := time.Date(2026, 10, 18, 9, 0, 0, 0, time.UTC)

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO town_lookups")).
		WithArgs(id.String(), "Aarhus", "not_found", "404", 0, at).
		WillReturnResult(sqlmock.NewResult(0, 1))

	j := NewPgLookupJournal(db)
	err = j.Record(context.Background(), domain.LookupEntry{
		ID:           id,
		Town:         "Aarhus",
		Outcome:      domain.OutcomeNotFound,
		ProviderCode: "404",
		RequestedAt:  at,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPgLookupJournalRecordAssignsID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO town_lookups").
		WithArgs(sqlmock.AnyArg(), "Odense", "ok", "", 4, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 1))

	j := NewPgLookupJournal(db)
	if err := j.Record(context.Background(), domain.LookupEntry{
		Town:        "Odense",
		Outcome:     domain.OutcomeOK,
		EventCount:  4,
		RequestedAt: time.Now(),
	}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestPgLookupJournalRecordErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer db.Close()

	j := NewPgLookupJournal(db)

	if err := j.Record(context.Background(), domain.LookupEntry{Town: "  "}); err == nil {
		t.Fatal("expected error for empty town")
	}

	mock.ExpectExec("INSERT INTO town_lookups").WillReturnError(errors.New("connection reset"))
	if err := j.Record(context.Background(), domain.LookupEntry{Town: "Vejle", Outcome: domain.OutcomeFailed}); err == nil {
		t.Fatal("expected error from failing insert")
	}

	if err := (&PgLookupJournal{}).Record(context.Background(), domain.LookupEntry{Town: "Vejle"}); err == nil {
		t.Fatal("expected error for nil db")
	}
}
