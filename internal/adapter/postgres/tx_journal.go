package postgres

import (
	"context"
	"crowdfund/internal/core/domain"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const recordColumns = `id, hash, sender, function, arguments, status, vm_status, version, created_at, updated_at`

// TxJournal implements port.TxJournal using pgxpool for PostgreSQL.
type TxJournal struct {
	pool *pgxpool.Pool
}

// NewTxJournal returns a journal backed by pool.
func NewTxJournal(pool *pgxpool.Pool) *TxJournal {
	return &TxJournal{pool: pool}
}

// Record inserts rec unless its hash is already journaled, then fills rec
// from the stored row.
func (r *TxJournal) Record(ctx context.Context, rec *domain.TxRecord) (err error) {
	args, err := json.Marshal(rec.Arguments)
	if err != nil {
		return fmt.Errorf("encode arguments: %w", err)
	}
	if rec.Arguments == nil {
		args = []byte("[]")
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.Status == "" {
		rec.Status = domain.TxPending
	}
	now := time.Now().UTC()
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = now
	}
	if rec.UpdatedAt.IsZero() {
		rec.UpdatedAt = now
	}

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	_, err = tx.Exec(ctx, `INSERT INTO tx_journal (`+recordColumns+`)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10) ON CONFLICT (hash) DO NOTHING`,
		rec.ID, rec.Hash, rec.Sender, rec.Function, args, rec.Status, rec.VMStatus, int64(rec.Version),
		rec.CreatedAt, rec.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert transaction %s: %w", rec.Hash, err)
	}

	rows, err := tx.Query(ctx, `SELECT `+recordColumns+` FROM tx_journal WHERE hash = $1`, rec.Hash)
	if err != nil {
		return err
	}
	stored, err := pgx.CollectExactlyOneRow(rows, scanRecord)
	if err != nil {
		return fmt.Errorf("load transaction %s: %w", rec.Hash, err)
	}
	*rec = stored
	return nil
}

// UpdateOutcome stores the confirmation result of hash. An unknown hash
// yields domain.ErrNotFound.
func (r *TxJournal) UpdateOutcome(ctx context.Context, hash string, outcome domain.TxOutcome, status domain.TxStatus) error {
	tag, err := r.pool.Exec(ctx, `UPDATE tx_journal
SET status = $2, vm_status = $3, version = $4, updated_at = $5
WHERE hash = $1`, hash, status, outcome.VMStatus, int64(outcome.Version), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("update transaction %s: %w", hash, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: transaction %s", domain.ErrNotFound, hash)
	}
	return nil
}

// FindByHash returns the record of hash, or nil when it is not journaled.
func (r *TxJournal) FindByHash(ctx context.Context, hash string) (*domain.TxRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+recordColumns+` FROM tx_journal WHERE hash = $1`, hash)
	if err != nil {
		return nil, err
	}
	rec, err := pgx.CollectExactlyOneRow(rows, scanRecord)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &rec, nil
}

// ListBySender returns up to limit records of sender, newest first.
func (r *TxJournal) ListBySender(ctx context.Context, sender string, limit int) ([]domain.TxRecord, error) {
	rows, err := r.pool.Query(ctx, `SELECT `+recordColumns+` FROM tx_journal
WHERE sender = $1 ORDER BY created_at DESC LIMIT $2`, sender, limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, scanRecord)
}

func scanRecord(row pgx.CollectableRow) (domain.TxRecord, error) {
	var (
		rec     domain.TxRecord
		args    []byte
		version int64
	)
	err := row.Scan(
		&rec.ID,
		&rec.Hash,
		&rec.Sender,
		&rec.Function,
		&args,
		&rec.Status,
		&rec.VMStatus,
		&version,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	)
	if err != nil {
		return domain.TxRecord{}, err
	}
	if err = json.Unmarshal(args, &rec.Arguments); err != nil {
		return domain.TxRecord{}, fmt.Errorf("decode arguments of %s: %w", rec.Hash, err)
	}
	rec.Version = uint64(version)
	return rec, nil
}
