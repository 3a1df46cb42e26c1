package port

import (
	"context"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/payload"
	"time"
)

// CampaignUseCase defines the operations exposed to the presentation layer.
// This interface is the primary port into the application domain. Mock
// implementations can be generated from this interface for testing.
type CampaignUseCase interface {
	// ListCampaigns returns the campaigns the ledger lists as active,
	// classified against the current time and narrowed by filter.
	ListCampaigns(ctx context.Context, filter ListFilter) ([]CampaignView, error)

	// GetCampaign returns one campaign with its donor count. A missing
	// campaign yields domain.ErrNotFound.
	GetCampaign(ctx context.Context, id uint64) (*CampaignDetail, error)

	// GetProfile returns the on-chain profile of address. An address
	// without a profile gets an empty one.
	GetProfile(ctx context.Context, address string) (*ProfileView, error)

	// AdminSummary counts listed campaigns per status.
	AdminSummary(ctx context.Context) (*AdminSummary, error)

	// BuildPayload checks req against the current ledger state and returns
	// the entry function payload for a wallet to sign.
	BuildPayload(ctx context.Context, req PayloadRequest) (domain.EntryFunctionPayload, error)

	// Submit signs and broadcasts payload with the service signer and
	// journals it. It fails with domain.ErrSignerNotConfigured when the
	// service has no signer.
	Submit(ctx context.Context, p domain.EntryFunctionPayload) (*domain.TxRecord, error)

	// AwaitConfirmation waits up to timeout for hash to commit and records
	// the outcome in the journal.
	AwaitConfirmation(ctx context.Context, hash string, timeout time.Duration) (*domain.TxRecord, error)

	// Transaction returns the journal record for hash.
	Transaction(ctx context.Context, hash string) (*domain.TxRecord, error)

	// SenderTransactions returns the newest journal records of sender.
	SenderTransactions(ctx context.Context, sender string, limit int) ([]domain.TxRecord, error)

	// Health reports whether the contract module is reachable.
	Health(ctx context.Context) (*HealthResp, error)
}

// ListFilter narrows a campaign listing. Zero values match everything.
// Query matches title or description case-insensitively.
type ListFilter struct {
	Status domain.Status
	Query  string
}

// CampaignView is a campaign with the values derived for display at the
// time of the request.
type CampaignView struct {
	domain.Campaign
	Status          domain.Status `json:"status"`
	ProgressPercent float64       `json:"progress_percent"`
	DaysLeft        int64         `json:"days_left"`
	TargetCoins     string        `json:"target_coins"`
	RaisedCoins     string        `json:"raised_coins"`
}

// CampaignDetail adds the donor count to a CampaignView.
type CampaignDetail struct {
	CampaignView
	DonorCount uint64 `json:"donor_count"`
}

// ProfileView is the profile of one address.
type ProfileView struct {
	Address     string         `json:"address"`
	IsAdmin     bool           `json:"is_admin"`
	IsUser      bool           `json:"is_user"`
	CampaignIDs []uint64       `json:"campaigns_created"`
	Donations   []CampaignView `json:"donations_made"`
}

// AdminSummary counts campaigns per derived status.
type AdminSummary struct {
	Total    int                   `json:"total"`
	ByStatus map[domain.Status]int `json:"by_status"`
}

// PayloadKind selects the entry function a PayloadRequest builds.
type PayloadKind string

const (
	PayloadCreateCampaign PayloadKind = "create-campaign"
	PayloadDonate         PayloadKind = "donate"
	PayloadApprove        PayloadKind = "approve"
	PayloadExtendDeadline PayloadKind = "extend-deadline"
	PayloadClose          PayloadKind = "close"
)

// PayloadRequest is a tagged request for one of the entry functions. Only
// the fields of the selected Kind are read. Amounts are in octas.
type PayloadRequest struct {
	Kind                 PayloadKind
	Create               payload.CreateCampaignRequest
	CampaignID           uint64
	Amount               domain.Octas
	NewDeadlineEpochSecs int64
	Reason               string
}

// HealthResp describes the ledger connectivity of the service.
type HealthResp struct {
	ModuleAddress  string `json:"module_address"`
	ModuleDeployed bool   `json:"module_deployed"`
	SignerAddress  string `json:"signer_address,omitempty"`
}
