package postgres

import (
	"context"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/db"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newJournal connects to the database named by CROWDFUND_TEST_PSQL and
// applies the migrations. The test is skipped without it.
func newJournal(t *testing.T) *TxJournal {
	t.Helper()
	addr := os.Getenv("CROWDFUND_TEST_PSQL")
	if addr == "" {
		t.Skip("CROWDFUND_TEST_PSQL not set")
	}
	require.NoError(t, db.Migrate(addr))

	pool, err := pgxpool.New(context.Background(), addr)
	require.NoError(t, err)
	t.Cleanup(pool.Close)
	return NewTxJournal(pool)
}

func TestTxJournal(t *testing.T) {
	j := newJournal(t)
	ctx := context.Background()
	hash := "0x" + uuid.NewString()
	sender := "0x" + uuid.NewString()

	rec := &domain.TxRecord{
		ID:        uuid.NewString(),
		Hash:      hash,
		Sender:    sender,
		Function:  "0x1::crowdfunding::donate_with_coin",
		Arguments: []any{"42", "10000000"},
		Status:    domain.TxPending,
	}
	require.NoError(t, j.Record(ctx, rec))
	firstID := rec.ID

	again := &domain.TxRecord{ID: uuid.NewString(), Hash: hash}
	require.NoError(t, j.Record(ctx, again))
	assert.Equal(t, firstID, again.ID, "known hash keeps the stored row")
	assert.Equal(t, sender, again.Sender)
	assert.Equal(t, []any{"42", "10000000"}, again.Arguments)

	outcome := domain.TxOutcome{Hash: hash, Success: true, VMStatus: "Executed successfully", Version: 77}
	require.NoError(t, j.UpdateOutcome(ctx, hash, outcome, domain.TxSuccess))

	got, err := j.FindByHash(ctx, hash)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, domain.TxSuccess, got.Status)
	assert.Equal(t, uint64(77), got.Version)
	assert.WithinDuration(t, time.Now(), got.UpdatedAt, time.Minute)

	missing, err := j.FindByHash(ctx, "0xmissing"+uuid.NewString())
	require.NoError(t, err)
	assert.Nil(t, missing)

	err = j.UpdateOutcome(ctx, "0xmissing", outcome, domain.TxFailed)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := j.ListBySender(ctx, sender, 10)
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, hash, list[0].Hash)
}
