package port

import (
	"context"
	"crowdfund/internal/core/domain"
)

// TxJournal persists the transactions this service submitted or was asked
// to track. It is an outbound port; implementations must be safe for
// concurrent use. The journal never stores campaign state.
type TxJournal interface {
	// Record stores rec. A record with an already known hash is left
	// untouched and rec is filled from the stored row.
	Record(ctx context.Context, rec *domain.TxRecord) error
	// UpdateOutcome sets the confirmation result of the transaction with
	// the given hash.
	UpdateOutcome(ctx context.Context, hash string, outcome domain.TxOutcome, status domain.TxStatus) error
	// FindByHash returns the record for hash or nil when it is unknown.
	FindByHash(ctx context.Context, hash string) (*domain.TxRecord, error)
	// ListBySender returns the newest records sent by sender.
	ListBySender(ctx context.Context, sender string, limit int) ([]domain.TxRecord, error)
}
