package payload

import (
	"crowdfund/internal/core/domain"
	"fmt"
	"strings"
)

// CreateCampaignRequest holds the organizer's input for a new campaign.
// Amounts are in octas.
type CreateCampaignRequest struct {
	Title             string       `json:"title"`
	Description       string       `json:"description"`
	ImageURL          string       `json:"image_url"`
	TargetAmount      domain.Octas `json:"target_amount"`
	DeadlineEpochSecs int64        `json:"deadline_secs"`
	NFTMode           bool         `json:"nft_mode"`
	NFTUnitPrice      domain.Octas `json:"nft_unit_price"`
}

// Validate checks the request against the time nowEpochSecs.
func (r CreateCampaignRequest) Validate(nowEpochSecs int64) error {
	switch {
	case strings.TrimSpace(r.Title) == "":
		return fmt.Errorf("%w: title is required", domain.ErrInvalidRequest)
	case r.TargetAmount == 0:
		return fmt.Errorf("%w: target amount must be positive", domain.ErrInvalidRequest)
	case r.DeadlineEpochSecs <= nowEpochSecs:
		return fmt.Errorf("%w: deadline must be in the future", domain.ErrInvalidRequest)
	case r.NFTMode && r.NFTUnitPrice == 0:
		return fmt.Errorf("%w: nft unit price must be positive in nft mode", domain.ErrInvalidRequest)
	}
	return nil
}

// ExtendDeadlineRequest moves a campaign deadline later.
type ExtendDeadlineRequest struct {
	CampaignID           uint64 `json:"campaign_id"`
	NewDeadlineEpochSecs int64  `json:"new_deadline_secs"`
}

// Validate checks that the new deadline does not move backwards.
func (r ExtendDeadlineRequest) Validate(current domain.Campaign) error {
	if r.NewDeadlineEpochSecs <= current.DeadlineEpochSecs {
		return fmt.Errorf("%w: new deadline %d must be after current deadline %d",
			domain.ErrInvalidRequest, r.NewDeadlineEpochSecs, current.DeadlineEpochSecs)
	}
	return nil
}

// CloseCampaignRequest force-closes a campaign.
type CloseCampaignRequest struct {
	CampaignID uint64 `json:"campaign_id"`
	Reason     string `json:"reason"`
}
