package domain

import (
	"fmt"
	"strings"
)

// Status is the derived lifecycle state of a campaign. It is a pure
// function of the record and the wall clock and is never stored.
type Status string

const (
	StatusPending    Status = "pending"
	StatusActive     Status = "active"
	StatusSuccessful Status = "successful"
	StatusExpired    Status = "expired"
	StatusClosed     Status = "closed"
)

// Statuses lists every status in classification priority order.
var Statuses = []Status{StatusClosed, StatusPending, StatusExpired, StatusSuccessful, StatusActive}

// DeriveStatus classifies a campaign. The first matching rule wins:
// closed, then pending (not approved), then expired (now past the
// deadline), then successful (raised reached target), else active.
func DeriveStatus(c Campaign, nowEpochSecs int64) Status {
	switch {
	case c.IsClosed:
		return StatusClosed
	case !c.Approved:
		return StatusPending
	case nowEpochSecs > c.DeadlineEpochSecs:
		return StatusExpired
	case c.RaisedAmount >= c.TargetAmount:
		return StatusSuccessful
	default:
		return StatusActive
	}
}

// ParseStatus converts a user supplied status name. Matching is case
// insensitive.
func ParseStatus(s string) (Status, error) {
	st := Status(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Statuses {
		if st == known {
			return st, nil
		}
	}
	return "", fmt.Errorf("%w: unknown status %q", ErrInvalidRequest, s)
}
