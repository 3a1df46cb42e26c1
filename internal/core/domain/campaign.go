package domain

import "fmt"

// Octas is an amount in the ledger's smallest coin unit. Every on-chain
// amount field uses it; conversion from whole coins happens before a value
// becomes Octas.
type Octas uint64

// OctasPerCoin is the number of octas in one whole coin.
const OctasPerCoin Octas = 100_000_000

const secondsPerDay = 24 * 60 * 60

// Campaign represents one crowdfunding entry as stored on the ledger.
// Records are rebuilt from gateway responses on every read and are never
// mutated locally.
type Campaign struct {
	ID                uint64 `json:"id"`
	Organizer         string `json:"organizer"`
	Title             string `json:"title"`
	Description       string `json:"description"`
	ImageURL          string `json:"image_url"`
	TargetAmount      Octas  `json:"target_amount"`
	RaisedAmount      Octas  `json:"raised_amount"`
	DeadlineEpochSecs int64  `json:"deadline_secs"`
	Approved          bool   `json:"approved"`
	NFTMode           bool   `json:"nft_mode"`
	NFTUnitPrice      Octas  `json:"nft_unit_price"`
	IsClosed          bool   `json:"is_closed"`
	// NFTCollectionCreated is absent from older ledger responses and then
	// defaults to false.
	NFTCollectionCreated bool `json:"nft_collection_created"`
}

// Validate reports whether the record satisfies the minimum shape of a
// ledger campaign: a non-empty organizer, a positive target and a
// positive deadline.
func (c Campaign) Validate() error {
	if c.Organizer == "" {
		return fmt.Errorf("%w: empty organizer", ErrMalformedResponse)
	}
	if c.TargetAmount == 0 {
		return fmt.Errorf("%w: target amount must be positive", ErrMalformedResponse)
	}
	if c.DeadlineEpochSecs <= 0 {
		return fmt.Errorf("%w: deadline must be positive", ErrMalformedResponse)
	}
	return nil
}

// ProgressPercent returns the funded share of the target in percent,
// capped at 100.
func (c Campaign) ProgressPercent() float64 {
	if c.TargetAmount == 0 {
		return 0
	}
	p := float64(c.RaisedAmount) * 100 / float64(c.TargetAmount)
	if p > 100 {
		return 100
	}
	return p
}

// DaysLeft returns the whole days remaining until the deadline, rounded
// up. It never goes below zero.
func (c Campaign) DaysLeft(nowEpochSecs int64) int64 {
	diff := c.DeadlineEpochSecs - nowEpochSecs
	if diff <= 0 {
		return 0
	}
	return (diff + secondsPerDay - 1) / secondsPerDay
}
