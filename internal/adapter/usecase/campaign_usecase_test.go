package usecase

import (
	"context"
	"crowdfund/internal/adapter/aptos"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/payload"
	"crowdfund/internal/core/port"
	"crowdfund/internal/core/port/mocks"
	"crowdfund/internal/core/resolver"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const nowSecs = 1_700_000_000

type fakeSigner struct{}

func (fakeSigner) Address() string                 { return "0xfeed" }
func (fakeSigner) PublicKey() []byte               { return []byte{1, 2, 3} }
func (fakeSigner) Sign(msg []byte) ([]byte, error) { return msg, nil }

func builder(t *testing.T) *payload.Builder {
	t.Helper()
	b, err := payload.NewBuilder("0x1", "")
	require.NoError(t, err)
	return b
}

func newUseCase(t *testing.T, gw port.LedgerGateway, opts ...Option) *CampaignUseCase {
	t.Helper()
	opts = append([]Option{WithClock(func() time.Time { return time.Unix(nowSecs, 0) })}, opts...)
	return NewCampaignUseCase(gw, builder(t), resolver.New(nil), opts...)
}

// tuple returns a positional campaign record.
func tuple(organizer, title string, target, raised uint64, deadline int64, approved, closed bool) []any {
	return []any{
		organizer, title, "about " + title, "img",
		fmt.Sprint(target), fmt.Sprint(raised), fmt.Sprint(deadline),
		approved, false, "0", closed,
	}
}

func item(id uint64, c []any) map[string]any {
	return map[string]any{"id": fmt.Sprint(id), "campaign": c}
}

func viewOf(t *testing.T, fn string, args ...any) domain.ViewRequest {
	return builder(t).View(fn, args...)
}

func activeList() []any {
	return []any{[]any{
		item(1, tuple("0xA", "Clean water", 1000, 200, nowSecs+86400, true, false)),
		item(2, tuple("0xB", "School roof", 1000, 1000, nowSecs+86400, true, false)),
		item(3, tuple("0xC", "Old drive", 1000, 10, nowSecs-1, true, false)),
		item(4, tuple("0xD", "New idea", 1000, 0, nowSecs+86400, false, false)),
		item(5, tuple("0xE", "Cancelled", 1000, 0, nowSecs+86400, true, true)),
		map[string]any{"id": "6"},
	}}
}

func TestListCampaigns(t *testing.T) {
	gw := mocks.NewMockLedgerGateway(t)
	gw.EXPECT().View(mock.Anything, viewOf(t, payload.FnGetActiveCampaigns)).Return(activeList(), nil)

	u := newUseCase(t, gw)

	all, err := u.ListCampaigns(context.Background(), port.ListFilter{})
	require.NoError(t, err)
	require.Len(t, all, 5)
	want := []domain.Status{
		domain.StatusActive, domain.StatusSuccessful, domain.StatusExpired, domain.StatusPending, domain.StatusClosed,
	}
	for i, v := range all {
		assert.Equal(t, uint64(i+1), v.ID)
		assert.Equal(t, want[i], v.Status, "campaign %d", v.ID)
	}
	assert.Equal(t, 20.0, all[0].ProgressPercent)
	assert.Equal(t, int64(1), all[0].DaysLeft)
	assert.Equal(t, "0.00001", all[0].TargetCoins)

	active, err := u.ListCampaigns(context.Background(), port.ListFilter{Status: domain.StatusActive})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, uint64(1), active[0].ID)

	found, err := u.ListCampaigns(context.Background(), port.ListFilter{Query: "ROOF"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, uint64(2), found[0].ID)

	found, err = u.ListCampaigns(context.Background(), port.ListFilter{Query: "about new"})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, uint64(4), found[0].ID)
}

func TestListCampaigns_GatewayError(t *testing.T) {
	gw := mocks.NewMockLedgerGateway(t)
	gw.EXPECT().View(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("borrow: %w", errors.Join(domain.ErrGatewayUnavailable, domain.ErrModuleNotDeployed)))

	_, err := newUseCase(t, gw).ListCampaigns(context.Background(), port.ListFilter{})
	require.Error(t, err)
	assert.Equal(t, domain.FailureModuleNotDeployed, domain.Classify(err).Kind)
}

func TestGetCampaign(t *testing.T) {
	gw := mocks.NewMockLedgerGateway(t)
	gw.EXPECT().View(mock.Anything, viewOf(t, payload.FnGetCampaign, "7")).
		Return(tuple("0xA", "T", 1000, 200, nowSecs+3600, true, false), nil)
	gw.EXPECT().View(mock.Anything, viewOf(t, payload.FnGetDonorCount, "7")).
		Return([]any{"12"}, nil)

	got, err := newUseCase(t, gw).GetCampaign(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, uint64(7), got.ID)
	assert.Equal(t, domain.StatusActive, got.Status)
	assert.Equal(t, uint64(12), got.DonorCount)
}

func TestGetCampaign_DonorCountDegrades(t *testing.T) {
	gw := mocks.NewMockLedgerGateway(t)
	gw.EXPECT().View(mock.Anything, viewOf(t, payload.FnGetCampaign, "7")).
		Return([]any{map[string]any{
			"organizer": "0xA", "title": "T", "description": "D", "image_url": "",
			"target_amount": "10", "raised_amount": "0", "deadline_secs": "1",
			"approved": true, "nft_mode": false, "nft_unit_price": "0", "is_closed": false,
		}}, nil)
	gw.EXPECT().View(mock.Anything, viewOf(t, payload.FnGetDonorCount, "7")).
		Return(nil, domain.ErrGatewayUnavailable)

	got, err := newUseCase(t, gw).GetCampaign(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, domain.StatusExpired, got.Status)
	assert.Zero(t, got.DonorCount)
}

func TestGetCampaign_NotFound(t *testing.T) {
	gw := mocks.NewMockLedgerGateway(t)
	gw.EXPECT().View(mock.Anything, viewOf(t, payload.FnGetCampaign, "99")).
		Return(nil, fmt.Errorf("abort: %w", domain.ErrInvalidRequest))
	gw.EXPECT().View(mock.Anything, viewOf(t, payload.FnGetDonorCount, "99")).
		Return([]any{"0"}, nil)

	_, err := newUseCase(t, gw).GetCampaign(context.Background(), 99)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, domain.FailureNotFound, domain.Classify(err).Kind)
}

func TestGetCampaign_Malformed(t *testing.T) {
	gw := mocks.NewMockLedgerGateway(t)
	gw.EXPECT().View(mock.Anything, viewOf(t, payload.FnGetCampaign, "7")).
		Return([]any{"0xA", "T"}, nil)
	gw.EXPECT().View(mock.Anything, viewOf(t, payload.FnGetDonorCount, "7")).
		Return([]any{"1"}, nil)

	_, err := newUseCase(t, gw).GetCampaign(context.Background(), 7)
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}

func TestGetProfile(t *testing.T) {
	gw := mocks.NewMockLedgerGateway(t)
	gw.EXPECT().View(mock.Anything, viewOf(t, payload.FnGetUserProfile, "0xabc")).
		Return([]any{
			[]any{"1", "4"},
			[]any{item(9, tuple("0xB", "Donated", 50, 50, nowSecs+10, true, false))},
		}, nil)
	gw.EXPECT().View(mock.Anything, viewOf(t, payload.FnIsAdmin, "0xabc")).Return([]any{true}, nil)
	gw.EXPECT().View(mock.Anything, viewOf(t, payload.FnIsUser, "0xabc")).Return(nil, domain.ErrGatewayUnavailable)

	p, err := newUseCase(t, gw).GetProfile(context.Background(), "0xABC")
	require.NoError(t, err)
	assert.Equal(t, "0xabc", p.Address)
	assert.True(t, p.IsAdmin)
	assert.False(t, p.IsUser)
	assert.Equal(t, []uint64{1, 4}, p.CampaignIDs)
	require.Len(t, p.Donations, 1)
	assert.Equal(t, domain.StatusSuccessful, p.Donations[0].Status)
}

func TestGetProfile_Absent(t *testing.T) {
	gw := mocks.NewMockLedgerGateway(t)
	gw.EXPECT().View(mock.Anything, viewOf(t, payload.FnGetUserProfile, "0xabc")).
		Return(nil, fmt.Errorf("abort: %w", domain.ErrInvalidRequest))
	gw.EXPECT().View(mock.Anything, viewOf(t, payload.FnIsAdmin, "0xabc")).Return([]any{false}, nil)
	gw.EXPECT().View(mock.Anything, viewOf(t, payload.FnIsUser, "0xabc")).Return([]any{false}, nil)

	p, err := newUseCase(t, gw).GetProfile(context.Background(), "abc")
	require.NoError(t, err)
	assert.Empty(t, p.CampaignIDs)
	assert.NotNil(t, p.Donations)
	assert.Empty(t, p.Donations)
}

func TestGetProfile_MissingResource(t *testing.T) {
	missing := &aptos.APIError{
		StatusCode:  400,
		ErrorCode:   "invalid_input",
		VMErrorCode: 4008,
		Message:     "Failed to borrow global resource from 0xabc",
	}

	t.Run("module deployed", func(t *testing.T) {
		gw := mocks.NewMockLedgerGateway(t)
		gw.EXPECT().View(mock.Anything, viewOf(t, payload.FnGetUserProfile, "0xabc")).Return(nil, missing)
		gw.EXPECT().View(mock.Anything, viewOf(t, payload.FnIsAdmin, "0xabc")).Return([]any{false}, nil)
		gw.EXPECT().View(mock.Anything, viewOf(t, payload.FnIsUser, "0xabc")).Return([]any{false}, nil)
		gw.EXPECT().ModuleDeployed(mock.Anything, "0x1", "crowdfunding").Return(true, nil)

		p, err := newUseCase(t, gw).GetProfile(context.Background(), "0xabc")
		require.NoError(t, err)
		assert.Equal(t, "0xabc", p.Address)
		assert.Empty(t, p.CampaignIDs)
		assert.Empty(t, p.Donations)
	})

	t.Run("module missing", func(t *testing.T) {
		gw := mocks.NewMockLedgerGateway(t)
		gw.EXPECT().View(mock.Anything, viewOf(t, payload.FnGetUserProfile, "0xabc")).Return(nil, missing)
		gw.EXPECT().View(mock.Anything, viewOf(t, payload.FnIsAdmin, "0xabc")).Return([]any{false}, nil)
		gw.EXPECT().View(mock.Anything, viewOf(t, payload.FnIsUser, "0xabc")).Return([]any{false}, nil)
		gw.EXPECT().ModuleDeployed(mock.Anything, "0x1", "crowdfunding").Return(false, nil)

		_, err := newUseCase(t, gw).GetProfile(context.Background(), "0xabc")
		assert.ErrorIs(t, err, domain.ErrModuleNotDeployed)
		assert.Equal(t, domain.FailureModuleNotDeployed, domain.Classify(err).Kind)
	})
}

func TestGetProfile_BadAddress(t *testing.T) {
	_, err := newUseCase(t, mocks.NewMockLedgerGateway(t)).GetProfile(context.Background(), "not-hex")
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestAdminSummary(t *testing.T) {
	gw := mocks.NewMockLedgerGateway(t)
	gw.EXPECT().View(mock.Anything, viewOf(t, payload.FnGetActiveCampaigns)).Return(activeList(), nil)

	s, err := newUseCase(t, gw).AdminSummary(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 5, s.Total)
	for _, st := range domain.Statuses {
		assert.Equal(t, 1, s.ByStatus[st], st)
	}
}

func TestBuildPayload(t *testing.T) {
	active := tuple("0xA", "T", 1000, 200, nowSecs+3600, true, false)
	pending := tuple("0xA", "T", 1000, 0, nowSecs+3600, false, false)
	closed := tuple("0xA", "T", 1000, 0, nowSecs+3600, true, true)

	tests := []struct {
		name     string
		req      port.PayloadRequest
		campaign []any
		wantFn   string
		wantArgs []any
		wantErr  error
	}{
		{
			name:     "donate",
			req:      port.PayloadRequest{Kind: port.PayloadDonate, CampaignID: 42, Amount: 10_000_000},
			campaign: active,
			wantFn:   payload.FnDonateWithCoin,
			wantArgs: []any{"42", "10000000"},
		},
		{
			name:     "donate to pending",
			req:      port.PayloadRequest{Kind: port.PayloadDonate, CampaignID: 42, Amount: 1},
			campaign: pending,
			wantErr:  domain.ErrInvalidRequest,
		},
		{
			name:    "donate nothing",
			req:     port.PayloadRequest{Kind: port.PayloadDonate, CampaignID: 42},
			wantErr: domain.ErrInvalidRequest,
		},
		{
			name:     "approve",
			req:      port.PayloadRequest{Kind: port.PayloadApprove, CampaignID: 42},
			campaign: pending,
			wantFn:   payload.FnApproveCampaign,
			wantArgs: []any{"42"},
		},
		{
			name:     "approve active",
			req:      port.PayloadRequest{Kind: port.PayloadApprove, CampaignID: 42},
			campaign: active,
			wantErr:  domain.ErrInvalidRequest,
		},
		{
			name:     "extend",
			req:      port.PayloadRequest{Kind: port.PayloadExtendDeadline, CampaignID: 42, NewDeadlineEpochSecs: nowSecs + 7200},
			campaign: active,
			wantFn:   payload.FnExtendDeadline,
			wantArgs: []any{"42", fmt.Sprint(nowSecs + 7200)},
		},
		{
			name:     "extend backwards",
			req:      port.PayloadRequest{Kind: port.PayloadExtendDeadline, CampaignID: 42, NewDeadlineEpochSecs: nowSecs},
			campaign: active,
			wantErr:  domain.ErrInvalidRequest,
		},
		{
			name:     "close",
			req:      port.PayloadRequest{Kind: port.PayloadClose, CampaignID: 42, Reason: "fraud"},
			campaign: active,
			wantFn:   payload.FnCloseCampaign,
			wantArgs: []any{"42", "fraud"},
		},
		{
			name:     "close closed",
			req:      port.PayloadRequest{Kind: port.PayloadClose, CampaignID: 42},
			campaign: closed,
			wantErr:  domain.ErrInvalidRequest,
		},
		{
			name:    "unknown kind",
			req:     port.PayloadRequest{Kind: "refund", CampaignID: 42},
			wantErr: domain.ErrInvalidRequest,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := mocks.NewMockLedgerGateway(t)
			if tt.campaign != nil {
				gw.EXPECT().View(mock.Anything, viewOf(t, payload.FnGetCampaign, "42")).Return(tt.campaign, nil)
			}

			p, err := newUseCase(t, gw).BuildPayload(context.Background(), tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "0x1::crowdfunding::"+tt.wantFn, p.Function)
			assert.Equal(t, []string{}, p.TypeArguments)
			assert.Equal(t, tt.wantArgs, p.Arguments)
		})
	}
}

func TestBuildPayload_Create(t *testing.T) {
	u := newUseCase(t, mocks.NewMockLedgerGateway(t))

	p, err := u.BuildPayload(context.Background(), port.PayloadRequest{
		Kind: port.PayloadCreateCampaign,
		Create: payload.CreateCampaignRequest{
			Title: "Wells", Description: "d", ImageURL: "i",
			TargetAmount: 500, DeadlineEpochSecs: nowSecs + 60,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, []any{"Wells", "d", "i", "500", fmt.Sprint(nowSecs + 60), false, "0"}, p.Arguments)

	_, err = u.BuildPayload(context.Background(), port.PayloadRequest{
		Kind:   port.PayloadCreateCampaign,
		Create: payload.CreateCampaignRequest{Title: "Late", TargetAmount: 1, DeadlineEpochSecs: nowSecs},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestSubmit(t *testing.T) {
	gw := mocks.NewMockLedgerGateway(t)
	journal := mocks.NewMockTxJournal(t)
	p := builder(t).Approve(3)

	gw.EXPECT().Submit(mock.Anything, p, fakeSigner{}).Return("0xhash", nil)
	journal.EXPECT().Record(mock.Anything, mock.AnythingOfType("*domain.TxRecord")).
		Run(func(_ context.Context, rec *domain.TxRecord) {
			assert.Equal(t, "0xhash", rec.Hash)
			assert.Equal(t, "0xfeed", rec.Sender)
			assert.Equal(t, domain.TxPending, rec.Status)
			assert.NotEmpty(t, rec.ID)
		}).
		Return(nil)

	rec, err := newUseCase(t, gw, WithJournal(journal), WithSigner(fakeSigner{})).Submit(context.Background(), p)
	require.NoError(t, err)
	assert.Equal(t, "0xhash", rec.Hash)
	assert.Equal(t, p.Function, rec.Function)
}

func TestSubmit_JournalFailureKeepsHash(t *testing.T) {
	gw := mocks.NewMockLedgerGateway(t)
	journal := mocks.NewMockTxJournal(t)
	gw.EXPECT().Submit(mock.Anything, mock.Anything, mock.Anything).Return("0xhash", nil)
	journal.EXPECT().Record(mock.Anything, mock.Anything).Return(errors.New("db down"))

	rec, err := newUseCase(t, gw, WithJournal(journal), WithSigner(fakeSigner{})).
		Submit(context.Background(), builder(t).Approve(3))
	require.NoError(t, err)
	assert.Equal(t, "0xhash", rec.Hash)
}

func TestSubmit_NoSigner(t *testing.T) {
	_, err := newUseCase(t, mocks.NewMockLedgerGateway(t)).Submit(context.Background(), domain.EntryFunctionPayload{})
	assert.ErrorIs(t, err, domain.ErrSignerNotConfigured)
	assert.Equal(t, domain.FailureMisconfigured, domain.Classify(err).Kind)
}

func TestAwaitConfirmation(t *testing.T) {
	tests := []struct {
		name    string
		outcome domain.TxOutcome
		err     error
		want    domain.TxStatus
	}{
		{"success", domain.TxOutcome{Hash: "0xh", Success: true, VMStatus: "Executed successfully", Version: 5}, nil, domain.TxSuccess},
		{"failed", domain.TxOutcome{Hash: "0xh", VMStatus: "Move abort", Version: 6}, fmt.Errorf("%w: Move abort", domain.ErrTransactionFailed), domain.TxFailed},
		{"timeout", domain.TxOutcome{}, fmt.Errorf("%w: 0xh", domain.ErrConfirmationTimeout), domain.TxTimeout},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gw := mocks.NewMockLedgerGateway(t)
			journal := mocks.NewMockTxJournal(t)
			gw.EXPECT().AwaitConfirmation(mock.Anything, "0xh", 2*time.Second).Return(tt.outcome, tt.err)
			journal.EXPECT().Record(mock.Anything, mock.AnythingOfType("*domain.TxRecord")).
				Run(func(_ context.Context, rec *domain.TxRecord) {
					rec.Sender = "0xfeed"
				}).
				Return(nil)
			journal.EXPECT().UpdateOutcome(mock.Anything, "0xh", mock.Anything, tt.want).Return(nil)

			rec, err := newUseCase(t, gw, WithJournal(journal)).AwaitConfirmation(context.Background(), "0xh", 2*time.Second)
			require.NoError(t, err)
			assert.Equal(t, tt.want, rec.Status)
			assert.Equal(t, "0xfeed", rec.Sender, "stored row wins")
			assert.Equal(t, tt.outcome.Version, rec.Version)
			assert.NotEmpty(t, rec.VMStatus)
		})
	}
}

func TestAwaitConfirmation_Canceled(t *testing.T) {
	gw := mocks.NewMockLedgerGateway(t)
	gw.EXPECT().AwaitConfirmation(mock.Anything, "0xh", time.Duration(0)).Return(domain.TxOutcome{}, context.Canceled)

	_, err := newUseCase(t, gw).AwaitConfirmation(context.Background(), "0xh", 0)
	assert.ErrorIs(t, err, context.Canceled)

	_, err = newUseCase(t, gw).AwaitConfirmation(context.Background(), " ", 0)
	assert.ErrorIs(t, err, domain.ErrInvalidRequest)
}

func TestTransaction(t *testing.T) {
	journal := mocks.NewMockTxJournal(t)
	journal.EXPECT().FindByHash(mock.Anything, "0xh").Return(&domain.TxRecord{Hash: "0xh", Status: domain.TxSuccess}, nil)
	journal.EXPECT().FindByHash(mock.Anything, "0xmissing").Return(nil, nil)

	u := newUseCase(t, mocks.NewMockLedgerGateway(t), WithJournal(journal))

	rec, err := u.Transaction(context.Background(), "0xh")
	require.NoError(t, err)
	assert.Equal(t, domain.TxSuccess, rec.Status)

	_, err = u.Transaction(context.Background(), "0xmissing")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = newUseCase(t, mocks.NewMockLedgerGateway(t)).Transaction(context.Background(), "0xh")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSenderTransactions(t *testing.T) {
	journal := mocks.NewMockTxJournal(t)
	journal.EXPECT().ListBySender(mock.Anything, "0xfeed", maxHistory).
		Return([]domain.TxRecord{{Hash: "0x1"}, {Hash: "0x2"}}, nil)

	u := newUseCase(t, mocks.NewMockLedgerGateway(t), WithJournal(journal))
	recs, err := u.SenderTransactions(context.Background(), "0xFEED", 0)
	require.NoError(t, err)
	assert.Len(t, recs, 2)

	recs, err = newUseCase(t, mocks.NewMockLedgerGateway(t)).SenderTransactions(context.Background(), "0xfeed", 10)
	require.NoError(t, err)
	assert.Empty(t, recs)
}

func TestHealth(t *testing.T) {
	gw := mocks.NewMockLedgerGateway(t)
	gw.EXPECT().ModuleDeployed(mock.Anything, "0x1", "crowdfunding").Return(true, nil)

	h, err := newUseCase(t, gw, WithSigner(fakeSigner{})).Health(context.Background())
	require.NoError(t, err)
	assert.Equal(t, &port.HealthResp{ModuleAddress: "0x1", ModuleDeployed: true, SignerAddress: "0xfeed"}, h)
}

// TestConcurrentReads ensures the usecase can be shared between request
// goroutines.
func TestConcurrentReads(t *testing.T) {
	gw := mocks.NewMockLedgerGateway(t)
	gw.EXPECT().View(mock.Anything, viewOf(t, payload.FnGetActiveCampaigns)).Return(activeList(), nil)

	u := newUseCase(t, gw)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			views, err := u.ListCampaigns(context.Background(), port.ListFilter{})
			assert.NoError(t, err)
			assert.Len(t, views, 5)
		}()
	}
	wg.Wait()
}
