// Package payload maps typed requests onto the call descriptors the ledger
// gateway expects. Builders are deterministic and side-effect free.
package payload

import (
	"crowdfund/internal/core/domain"
	"fmt"
	"strconv"
	"strings"
)

// DefaultModuleName is the name of the crowdfunding contract module.
const DefaultModuleName = "crowdfunding"

// Entry functions.
const (
	FnCreateCampaign  = "create_campaign"
	FnDonateWithCoin  = "donate_with_coin"
	FnApproveCampaign = "approve_campaign"
	FnExtendDeadline  = "extend_deadline"
	FnCloseCampaign   = "close_campaign"
)

// View functions.
const (
	FnGetCampaign        = "get_campaign"
	FnGetActiveCampaigns = "get_active_campaigns"
	FnGetUserProfile     = "get_user_profile"
	FnIsUser             = "is_user"
	FnIsAdmin            = "is_admin"
	FnGetDonorCount      = "get_donor_count"
	FnGetAdmin           = "get_admin"
	FnGetNextID          = "get_next_id"
)

// Builder creates payloads for one deployed module.
type Builder struct {
	address string
	module  string
}

// NewBuilder validates the module address and returns a Builder. An empty
// address fails with domain.ErrMissingModuleAddress, a malformed one with
// domain.ErrInvalidModuleAddress. The address may omit the 0x prefix.
func NewBuilder(address, moduleName string) (*Builder, error) {
	addr, err := NormalizeAddress(address)
	if err != nil {
		return nil, err
	}
	if moduleName == "" {
		moduleName = DefaultModuleName
	}
	return &Builder{address: addr, module: moduleName}, nil
}

// NormalizeAddress lowercases a hex account address and adds the 0x
// prefix.
func NormalizeAddress(address string) (string, error) {
	a := strings.ToLower(strings.TrimSpace(address))
	if a == "" {
		return "", domain.ErrMissingModuleAddress
	}
	hex := strings.TrimPrefix(a, "0x")
	if hex == "" || len(hex) > 64 {
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidModuleAddress, address)
	}
	for _, r := range hex {
		if (r < '0' || r > '9') && (r < 'a' || r > 'f') {
			return "", fmt.Errorf("%w: %q", domain.ErrInvalidModuleAddress, address)
		}
	}
	return "0x" + hex, nil
}

// Address returns the normalized module account address.
func (b *Builder) Address() string {
	return b.address
}

// ModuleName returns the contract module name.
func (b *Builder) ModuleName() string {
	return b.module
}

// Function returns the module-qualified identifier of fn.
func (b *Builder) Function(fn string) string {
	return b.address + "::" + b.module + "::" + fn
}

func (b *Builder) entry(fn string, args ...any) domain.EntryFunctionPayload {
	if args == nil {
		args = []any{}
	}
	return domain.EntryFunctionPayload{
		Function:      b.Function(fn),
		TypeArguments: []string{},
		Arguments:     args,
	}
}

// View builds a view call for fn.
func (b *Builder) View(fn string, args ...any) domain.ViewRequest {
	if args == nil {
		args = []any{}
	}
	return domain.ViewRequest{
		Function:      b.Function(fn),
		TypeArguments: []string{},
		Arguments:     args,
	}
}

// CreateCampaign builds the create_campaign payload.
func (b *Builder) CreateCampaign(req CreateCampaignRequest) domain.EntryFunctionPayload {
	return b.entry(FnCreateCampaign,
		req.Title,
		req.Description,
		req.ImageURL,
		U64(uint64(req.TargetAmount)),
		U64(uint64(req.DeadlineEpochSecs)),
		req.NFTMode,
		U64(uint64(req.NFTUnitPrice)),
	)
}

// Donate builds the donate_with_coin payload. The amount is already in
// octas and is passed through without scaling.
func (b *Builder) Donate(campaignID uint64, amount domain.Octas) domain.EntryFunctionPayload {
	return b.entry(FnDonateWithCoin, U64(campaignID), U64(uint64(amount)))
}

// Approve builds the admin-only approve_campaign payload.
func (b *Builder) Approve(campaignID uint64) domain.EntryFunctionPayload {
	return b.entry(FnApproveCampaign, U64(campaignID))
}

// ExtendDeadline builds the extend_deadline payload.
func (b *Builder) ExtendDeadline(req ExtendDeadlineRequest) domain.EntryFunctionPayload {
	return b.entry(FnExtendDeadline, U64(req.CampaignID), U64(uint64(req.NewDeadlineEpochSecs)))
}

// Close builds the close_campaign payload.
func (b *Builder) Close(req CloseCampaignRequest) domain.EntryFunctionPayload {
	return b.entry(FnCloseCampaign, U64(req.CampaignID), req.Reason)
}

// U64 encodes v the way the ledger expects 64-bit integers in JSON.
func U64(v uint64) string {
	return strconv.FormatUint(v, 10)
}
