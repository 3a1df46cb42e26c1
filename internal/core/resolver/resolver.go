// Package resolver turns loosely typed ledger view responses into campaign
// records. All parse functions are total: malformed input yields an error
// or an empty result, never a partially filled record.
package resolver

import (
	"crowdfund/internal/core/domain"
	"fmt"
	"io"
	"log/slog"
)

// Resolver normalizes raw gateway data. It keeps no state besides its
// logger and is safe for concurrent use.
type Resolver struct {
	logger  *slog.Logger
	dropped func(n int)
}

// Option configures a Resolver.
type Option func(r *Resolver)

// WithDropObserver reports the number of malformed elements dropped from
// each parsed list to fn.
func WithDropObserver(fn func(n int)) Option {
	return func(r *Resolver) {
		r.dropped = fn
	}
}

// New returns a Resolver logging dropped elements to logger. A nil logger
// discards output.
func New(logger *slog.Logger, opts ...Option) *Resolver {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	r := &Resolver{logger: logger.With("component", "resolver")}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// ParseCampaign builds the campaign with the given id from a named object
// or an 11-element positional sequence. Any other input, an unparsable
// numeric field or a record failing validation yields an error wrapping
// domain.ErrMalformedResponse.
func (r *Resolver) ParseCampaign(id uint64, raw any) (domain.Campaign, error) {
	var (
		c   domain.Campaign
		err error
	)
	switch detectShape(raw) {
	case shapeNamed:
		c, err = decodeNamed(id, raw.(map[string]any))
	case shapePositional:
		c, err = decodePositional(id, raw.([]any))
	default:
		return domain.Campaign{}, fmt.Errorf("%w: campaign %d has unrecognized shape %T", domain.ErrMalformedResponse, id, raw)
	}
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("campaign %d: %w", id, err)
	}
	if err = c.Validate(); err != nil {
		return domain.Campaign{}, fmt.Errorf("campaign %d: %w", id, err)
	}
	return c, nil
}

// ParseActiveCampaignList parses a sequence of {id, campaign} pairs.
// Malformed elements are logged and skipped; the order of the remaining
// elements is preserved.
func (r *Resolver) ParseActiveCampaignList(raw any) []domain.Campaign {
	items, ok := raw.([]any)
	if !ok {
		if raw != nil {
			r.logger.Warn("campaign list is not a sequence", slog.String("type", fmt.Sprintf("%T", raw)))
		}
		return []domain.Campaign{}
	}
	out := make([]domain.Campaign, 0, len(items))
	for i, item := range items {
		c, err := r.parseListItem(item)
		if err != nil {
			r.logger.Warn("skipping malformed campaign list element",
				slog.Int("index", i), slog.Any("error", err))
			continue
		}
		out = append(out, c)
	}
	if r.dropped != nil && len(out) < len(items) {
		r.dropped(len(items) - len(out))
	}
	return out
}

func (r *Resolver) parseListItem(item any) (domain.Campaign, error) {
	m, ok := item.(map[string]any)
	if !ok {
		return domain.Campaign{}, fmt.Errorf("%w: list element is %T", domain.ErrMalformedResponse, item)
	}
	rawID, ok := m["id"]
	if !ok || rawID == nil {
		return domain.Campaign{}, fmt.Errorf("%w: list element without id", domain.ErrMalformedResponse)
	}
	rawCampaign, ok := m["campaign"]
	if !ok || rawCampaign == nil {
		return domain.Campaign{}, fmt.Errorf("%w: list element without campaign", domain.ErrMalformedResponse)
	}
	id, err := parseUint(rawID)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("list element id: %w", err)
	}
	return r.ParseCampaign(id, rawCampaign)
}

// ParseUserProfile parses the two-element profile tuple: created campaign
// ids followed by the donated-to campaign list. Missing or short input is
// an absent profile and yields empty fields.
func (r *Resolver) ParseUserProfile(raw any) domain.UserProfile {
	profile := domain.UserProfile{
		CampaignIDs: []uint64{},
		Donations:   []domain.Campaign{},
	}
	values, ok := raw.([]any)
	if !ok || len(values) < 2 {
		return profile
	}
	if ids, ok := values[0].([]any); ok {
		for i, v := range ids {
			id, err := parseUint(v)
			if err != nil {
				r.logger.Warn("skipping malformed campaign id in profile",
					slog.Int("index", i), slog.Any("error", err))
				continue
			}
			profile.CampaignIDs = append(profile.CampaignIDs, id)
		}
	}
	if values[1] != nil {
		profile.Donations = r.ParseActiveCampaignList(values[1])
	}
	return profile
}

// ParseCount parses a single unsigned integer view result such as a donor
// count.
func (r *Resolver) ParseCount(raw any) (uint64, error) {
	return parseUint(raw)
}

// ParseFlag parses a single boolean view result.
func (r *Resolver) ParseFlag(raw any) (bool, error) {
	return parseBool(raw)
}
