package ports

import (
	"context"
	"town-info-service/internal/domain"
)

// Port: an append-only audit trail of town-info actions.
type LookupJournal interface {
	Record(ctx context.Context, entry domain.LookupEntry) error
}
