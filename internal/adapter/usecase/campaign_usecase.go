package usecase

import (
	"context"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/payload"
	"crowdfund/internal/core/port"
	"crowdfund/internal/core/resolver"
	"crowdfund/internal/units"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// CampaignUseCase provides the campaign read model and transaction flow on
// top of the ledger gateway. It implements port.CampaignUseCase.
type CampaignUseCase struct {
	gateway  port.LedgerGateway
	builder  *payload.Builder
	resolver *resolver.Resolver

	// journal and signer are optional. Without a journal nothing is
	// recorded; without a signer Submit is unavailable.
	journal port.TxJournal
	signer  port.Signer

	logger *slog.Logger
	now    func() time.Time
}

// Option configures a CampaignUseCase.
type Option func(u *CampaignUseCase)

// WithJournal records submitted and confirmed transactions in j.
func WithJournal(j port.TxJournal) Option {
	return func(u *CampaignUseCase) {
		u.journal = j
	}
}

// WithSigner enables server-side submission with s.
func WithSigner(s port.Signer) Option {
	return func(u *CampaignUseCase) {
		u.signer = s
	}
}

// WithClock replaces the wall clock used for status derivation.
func WithClock(now func() time.Time) Option {
	return func(u *CampaignUseCase) {
		u.now = now
	}
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(u *CampaignUseCase) {
		u.logger = l
	}
}

// NewCampaignUseCase creates a usecase reading through gateway. builder
// fixes the module the payloads and view calls target.
func NewCampaignUseCase(gateway port.LedgerGateway, builder *payload.Builder, res *resolver.Resolver, opts ...Option) *CampaignUseCase {
	u := &CampaignUseCase{
		gateway:  gateway,
		builder:  builder,
		resolver: res,
		logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	u.logger = u.logger.With("component", "usecase")
	return u
}

// ListCampaigns returns the listed campaigns matching filter, in ledger
// order.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context, filter port.ListFilter) ([]port.CampaignView, error) {
	campaigns, err := u.activeCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	now := u.now().Unix()
	query := strings.ToLower(strings.TrimSpace(filter.Query))

	out := make([]port.CampaignView, 0, len(campaigns))
	for _, c := range campaigns {
		v := newView(c, now)
		if filter.Status != "" && v.Status != filter.Status {
			continue
		}
		if query != "" &&
			!strings.Contains(strings.ToLower(c.Title), query) &&
			!strings.Contains(strings.ToLower(c.Description), query) {
			continue
		}
		out = append(out, v)
	}
	return out, nil
}

// GetCampaign loads the campaign and its donor count concurrently. A failed
// donor count is logged and reported as zero.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, id uint64) (*port.CampaignDetail, error) {
	var (
		g      errgroup.Group
		c      domain.Campaign
		donors uint64
	)
	g.Go(func() (err error) {
		c, err = u.campaign(ctx, id)
		return err
	})
	g.Go(func() error {
		values, err := u.gateway.View(ctx, u.builder.View(payload.FnGetDonorCount, payload.U64(id)))
		if err == nil {
			donors, err = u.resolver.ParseCount(returnValue(values))
		}
		if err != nil {
			u.logger.Warn("donor count unavailable", slog.Uint64("campaign_id", id), slog.Any("error", err))
			donors = 0
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &port.CampaignDetail{
		CampaignView: newView(c, u.now().Unix()),
		DonorCount:   donors,
	}, nil
}

// GetProfile loads the profile and the admin and user flags of address
// concurrently. A failing flag lookup is logged and reads as false. A
// missing profile yields an empty one; any other profile failure fails the
// call.
func (u *CampaignUseCase) GetProfile(ctx context.Context, address string) (*port.ProfileView, error) {
	addr, err := payload.NormalizeAddress(address)
	if err != nil {
		return nil, fmt.Errorf("%w: address %q", domain.ErrInvalidRequest, address)
	}

	var (
		g       errgroup.Group
		profile domain.UserProfile
		isAdmin bool
		isUser  bool
	)
	g.Go(func() error {
		values, err := u.gateway.View(ctx, u.builder.View(payload.FnGetUserProfile, addr))
		if u.profileAbsent(ctx, err) {
			u.logger.Debug("no profile", slog.String("address", addr), slog.Any("error", err))
			values, err = nil, nil
		}
		if err != nil {
			return fmt.Errorf("load profile of %s: %w", addr, err)
		}
		profile = u.resolver.ParseUserProfile(returnValue(values))
		return nil
	})
	g.Go(func() error {
		isAdmin = u.flag(ctx, payload.FnIsAdmin, addr)
		return nil
	})
	g.Go(func() error {
		isUser = u.flag(ctx, payload.FnIsUser, addr)
		return nil
	})
	if err = g.Wait(); err != nil {
		return nil, err
	}

	now := u.now().Unix()
	donations := make([]port.CampaignView, 0, len(profile.Donations))
	for _, c := range profile.Donations {
		donations = append(donations, newView(c, now))
	}
	return &port.ProfileView{
		Address:     addr,
		IsAdmin:     isAdmin,
		IsUser:      isUser,
		CampaignIDs: profile.CampaignIDs,
		Donations:   donations,
	}, nil
}

// profileAbsent reports whether err from get_user_profile means the address
// has no profile. The contract aborts for addresses that never interacted
// with it, and an unpublished profile resource looks like a missing module,
// so that case only counts as absent once the module is known to exist.
func (u *CampaignUseCase) profileAbsent(ctx context.Context, err error) bool {
	switch {
	case err == nil:
		return false
	case errors.Is(err, domain.ErrModuleNotDeployed):
		deployed, derr := u.gateway.ModuleDeployed(ctx, u.builder.Address(), u.builder.ModuleName())
		if derr != nil {
			u.logger.Warn("module check failed", slog.Any("error", derr))
			return false
		}
		return deployed
	default:
		return errors.Is(err, domain.ErrInvalidRequest)
	}
}

// AdminSummary counts the listed campaigns per status. Every status is
// present in the result.
func (u *CampaignUseCase) AdminSummary(ctx context.Context) (*port.AdminSummary, error) {
	campaigns, err := u.activeCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	summary := &port.AdminSummary{
		Total:    len(campaigns),
		ByStatus: make(map[domain.Status]int, len(domain.Statuses)),
	}
	for _, s := range domain.Statuses {
		summary.ByStatus[s] = 0
	}
	now := u.now().Unix()
	for _, c := range campaigns {
		summary.ByStatus[domain.DeriveStatus(c, now)]++
	}
	return summary, nil
}

// BuildPayload validates req against the current state of its campaign
// and returns the payload to sign.
func (u *CampaignUseCase) BuildPayload(ctx context.Context, req port.PayloadRequest) (domain.EntryFunctionPayload, error) {
	now := u.now().Unix()

	if req.Kind == port.PayloadCreateCampaign {
		if err := req.Create.Validate(now); err != nil {
			return domain.EntryFunctionPayload{}, err
		}
		return u.builder.CreateCampaign(req.Create), nil
	}

	switch req.Kind {
	case port.PayloadDonate, port.PayloadApprove, port.PayloadExtendDeadline, port.PayloadClose:
	default:
		return domain.EntryFunctionPayload{}, fmt.Errorf("%w: unknown payload kind %q", domain.ErrInvalidRequest, req.Kind)
	}
	if req.Kind == port.PayloadDonate && req.Amount == 0 {
		return domain.EntryFunctionPayload{}, fmt.Errorf("%w: donation amount must be positive", domain.ErrInvalidRequest)
	}

	c, err := u.campaign(ctx, req.CampaignID)
	if err != nil {
		return domain.EntryFunctionPayload{}, err
	}
	status := domain.DeriveStatus(c, now)

	switch req.Kind {
	case port.PayloadDonate:
		if status != domain.StatusActive {
			return domain.EntryFunctionPayload{}, fmt.Errorf("%w: campaign %d is %s, donations need an active campaign",
				domain.ErrInvalidRequest, c.ID, status)
		}
		u.logger.Debug("donation payload",
			slog.Uint64("campaign_id", c.ID), slog.String("amount", units.FormatCoins(req.Amount)))
		return u.builder.Donate(c.ID, req.Amount), nil
	case port.PayloadApprove:
		if status != domain.StatusPending {
			return domain.EntryFunctionPayload{}, fmt.Errorf("%w: campaign %d is %s, only pending campaigns can be approved",
				domain.ErrInvalidRequest, c.ID, status)
		}
		return u.builder.Approve(c.ID), nil
	case port.PayloadExtendDeadline:
		if c.IsClosed {
			return domain.EntryFunctionPayload{}, fmt.Errorf("%w: campaign %d is closed", domain.ErrInvalidRequest, c.ID)
		}
		ext := payload.ExtendDeadlineRequest{CampaignID: c.ID, NewDeadlineEpochSecs: req.NewDeadlineEpochSecs}
		if err = ext.Validate(c); err != nil {
			return domain.EntryFunctionPayload{}, err
		}
		return u.builder.ExtendDeadline(ext), nil
	default:
		if c.IsClosed {
			return domain.EntryFunctionPayload{}, fmt.Errorf("%w: campaign %d is already closed", domain.ErrInvalidRequest, c.ID)
		}
		return u.builder.Close(payload.CloseCampaignRequest{CampaignID: c.ID, Reason: req.Reason}), nil
	}
}

// Submit signs and broadcasts p with the service signer. The returned
// record is pending. A journal failure is logged and does not fail the
// call.
func (u *CampaignUseCase) Submit(ctx context.Context, p domain.EntryFunctionPayload) (*domain.TxRecord, error) {
	if u.signer == nil {
		return nil, domain.ErrSignerNotConfigured
	}
	hash, err := u.gateway.Submit(ctx, p, u.signer)
	if err != nil {
		return nil, err
	}
	now := u.now().UTC()
	rec := &domain.TxRecord{
		ID:        uuid.NewString(),
		Hash:      hash,
		Sender:    u.signer.Address(),
		Function:  p.Function,
		Arguments: p.Arguments,
		Status:    domain.TxPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if u.journal != nil {
		if err = u.journal.Record(ctx, rec); err != nil {
			u.logger.Error("journal submitted transaction", slog.String("hash", hash), slog.Any("error", err))
		}
	}
	return rec, nil
}

// AwaitConfirmation waits for hash and records the outcome. Failed and
// timed out transactions are not errors here: the returned record carries
// the terminal status. Hashes unknown to the journal are recorded, so a
// wallet-signed transaction can be tracked too.
func (u *CampaignUseCase) AwaitConfirmation(ctx context.Context, hash string, timeout time.Duration) (*domain.TxRecord, error) {
	if strings.TrimSpace(hash) == "" {
		return nil, fmt.Errorf("%w: empty transaction hash", domain.ErrInvalidRequest)
	}
	outcome, err := u.gateway.AwaitConfirmation(ctx, hash, timeout)

	var status domain.TxStatus
	switch {
	case err == nil:
		status = domain.TxSuccess
	case errors.Is(err, domain.ErrTransactionFailed):
		status = domain.TxFailed
	case errors.Is(err, domain.ErrConfirmationTimeout):
		status = domain.TxTimeout
	default:
		return nil, err
	}
	if outcome.VMStatus == "" && err != nil {
		outcome.VMStatus = err.Error()
	}

	now := u.now().UTC()
	rec := &domain.TxRecord{
		ID:        uuid.NewString(),
		Hash:      hash,
		Arguments: []any{},
		Status:    domain.TxPending,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if u.journal != nil {
		if jErr := u.journal.Record(ctx, rec); jErr != nil {
			u.logger.Error("journal tracked transaction", slog.String("hash", hash), slog.Any("error", jErr))
		} else if jErr = u.journal.UpdateOutcome(ctx, hash, outcome, status); jErr != nil {
			u.logger.Error("journal transaction outcome", slog.String("hash", hash), slog.Any("error", jErr))
		}
	}
	rec.Status = status
	rec.VMStatus = outcome.VMStatus
	rec.Version = outcome.Version
	rec.UpdatedAt = now

	u.logger.Info("transaction settled",
		slog.String("hash", hash), slog.String("status", string(status)), slog.Uint64("version", outcome.Version))
	return rec, nil
}

// Transaction returns the journal record of hash.
func (u *CampaignUseCase) Transaction(ctx context.Context, hash string) (*domain.TxRecord, error) {
	if u.journal == nil {
		return nil, fmt.Errorf("%w: transaction journal is disabled", domain.ErrNotFound)
	}
	rec, err := u.journal.FindByHash(ctx, hash)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("%w: transaction %s", domain.ErrNotFound, hash)
	}
	return rec, nil
}

// SenderTransactions lists the newest journal records of sender.
func (u *CampaignUseCase) SenderTransactions(ctx context.Context, sender string, limit int) ([]domain.TxRecord, error) {
	addr, err := payload.NormalizeAddress(sender)
	if err != nil {
		return nil, fmt.Errorf("%w: address %q", domain.ErrInvalidRequest, sender)
	}
	if u.journal == nil {
		return []domain.TxRecord{}, nil
	}
	if limit <= 0 || limit > maxHistory {
		limit = maxHistory
	}
	return u.journal.ListBySender(ctx, addr, limit)
}

// Health reports whether the module is published under the configured
// address.
func (u *CampaignUseCase) Health(ctx context.Context) (*port.HealthResp, error) {
	deployed, err := u.gateway.ModuleDeployed(ctx, u.builder.Address(), u.builder.ModuleName())
	if err != nil {
		return nil, err
	}
	resp := &port.HealthResp{
		ModuleAddress:  u.builder.Address(),
		ModuleDeployed: deployed,
	}
	if u.signer != nil {
		resp.SignerAddress = u.signer.Address()
	}
	return resp, nil
}

const maxHistory = 100

func (u *CampaignUseCase) activeCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	values, err := u.gateway.View(ctx, u.builder.View(payload.FnGetActiveCampaigns))
	if err != nil {
		return nil, fmt.Errorf("list campaigns: %w", err)
	}
	return u.resolver.ParseActiveCampaignList(returnValue(values)), nil
}

// campaign loads one campaign. The contract aborts the view call for an
// unknown id, which surfaces as an invalid request and is reported as not
// found.
func (u *CampaignUseCase) campaign(ctx context.Context, id uint64) (domain.Campaign, error) {
	values, err := u.gateway.View(ctx, u.builder.View(payload.FnGetCampaign, payload.U64(id)))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidRequest) && !errors.Is(err, domain.ErrModuleNotDeployed) {
			return domain.Campaign{}, fmt.Errorf("%w: campaign %d: %v", domain.ErrNotFound, id, err)
		}
		return domain.Campaign{}, fmt.Errorf("load campaign %d: %w", id, err)
	}
	return u.resolver.ParseCampaign(id, returnValue(values))
}

func (u *CampaignUseCase) flag(ctx context.Context, fn, addr string) bool {
	values, err := u.gateway.View(ctx, u.builder.View(fn, addr))
	if err == nil {
		var ok bool
		if ok, err = u.resolver.ParseFlag(returnValue(values)); err == nil {
			return ok
		}
	}
	u.logger.Warn("flag lookup failed", slog.String("function", fn), slog.String("address", addr), slog.Any("error", err))
	return false
}

// returnValue unwraps a view result holding a single return value. A
// tuple result is returned as is.
func returnValue(values []any) any {
	if len(values) == 1 {
		return values[0]
	}
	return values
}

func newView(c domain.Campaign, now int64) port.CampaignView {
	return port.CampaignView{
		Campaign:        c,
		Status:          domain.DeriveStatus(c, now),
		ProgressPercent: c.ProgressPercent(),
		DaysLeft:        c.DaysLeft(now),
		TargetCoins:     units.FormatCoins(c.TargetAmount),
		RaisedCoins:     units.FormatCoins(c.RaisedAmount),
	}
}
