package resolver

import (
	"crowdfund/internal/core/domain"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
)

// shape is the tag of a raw campaign payload.
type shape int

const (
	shapeInvalid shape = iota
	shapeNamed
	shapePositional
)

func (s shape) String() string {
	switch s {
	case shapeNamed:
		return "named"
	case shapePositional:
		return "positional"
	default:
		return "invalid"
	}
}

// campaignFields is the ledger struct field order. Positional payloads
// carry exactly these values in this order.
var campaignFields = [...]string{
	"organizer",
	"title",
	"description",
	"image_url",
	"target_amount",
	"raised_amount",
	"deadline_secs",
	"approved",
	"nft_mode",
	"nft_unit_price",
	"is_closed",
}

const (
	fieldOrganizer = iota
	fieldTitle
	fieldDescription
	fieldImageURL
	fieldTargetAmount
	fieldRaisedAmount
	fieldDeadline
	fieldApproved
	fieldNFTMode
	fieldNFTUnitPrice
	fieldIsClosed
)

const optionalCollectionField = "nft_collection_created"

// detectShape tags raw. An object is named only when it carries an
// organizer key; a sequence is positional only with the exact field count.
func detectShape(raw any) shape {
	switch v := raw.(type) {
	case map[string]any:
		if _, ok := v[campaignFields[fieldOrganizer]]; ok {
			return shapeNamed
		}
	case []any:
		if len(v) == len(campaignFields) {
			return shapePositional
		}
	}
	return shapeInvalid
}

// fieldDecoder reads campaign fields through get and keeps the first
// error. Once err is set every read returns a zero value.
type fieldDecoder struct {
	get func(idx int) (any, bool)
	err error
}

func (d *fieldDecoder) value(idx int) (any, bool) {
	if d.err != nil {
		return nil, false
	}
	v, ok := d.get(idx)
	if !ok {
		d.err = fmt.Errorf("%w: missing field %s", domain.ErrMalformedResponse, campaignFields[idx])
		return nil, false
	}
	return v, true
}

func (d *fieldDecoder) str(idx int) string {
	v, ok := d.value(idx)
	if !ok {
		return ""
	}
	s, ok := v.(string)
	if !ok {
		d.err = fmt.Errorf("%w: field %s is %T, want string", domain.ErrMalformedResponse, campaignFields[idx], v)
	}
	return s
}

func (d *fieldDecoder) flag(idx int) bool {
	v, ok := d.value(idx)
	if !ok {
		return false
	}
	b, err := parseBool(v)
	if err != nil {
		d.err = fmt.Errorf("field %s: %w", campaignFields[idx], err)
	}
	return b
}

func (d *fieldDecoder) number(idx int) uint64 {
	v, ok := d.value(idx)
	if !ok {
		return 0
	}
	n, err := parseUint(v)
	if err != nil {
		d.err = fmt.Errorf("field %s: %w", campaignFields[idx], err)
	}
	return n
}

func (d *fieldDecoder) epoch(idx int) int64 {
	n := d.number(idx)
	if d.err == nil && n > math.MaxInt64 {
		d.err = fmt.Errorf("%w: field %s out of range", domain.ErrMalformedResponse, campaignFields[idx])
		return 0
	}
	return int64(n)
}

func (d *fieldDecoder) campaign(id uint64) (domain.Campaign, error) {
	c := domain.Campaign{
		ID:                id,
		Organizer:         d.str(fieldOrganizer),
		Title:             d.str(fieldTitle),
		Description:       d.str(fieldDescription),
		ImageURL:          d.str(fieldImageURL),
		TargetAmount:      domain.Octas(d.number(fieldTargetAmount)),
		RaisedAmount:      domain.Octas(d.number(fieldRaisedAmount)),
		DeadlineEpochSecs: d.epoch(fieldDeadline),
		Approved:          d.flag(fieldApproved),
		NFTMode:           d.flag(fieldNFTMode),
		NFTUnitPrice:      domain.Octas(d.number(fieldNFTUnitPrice)),
		IsClosed:          d.flag(fieldIsClosed),
	}
	if d.err != nil {
		return domain.Campaign{}, d.err
	}
	return c, nil
}

func decodeNamed(id uint64, m map[string]any) (domain.Campaign, error) {
	d := fieldDecoder{get: func(idx int) (any, bool) {
		v, ok := m[campaignFields[idx]]
		return v, ok
	}}
	c, err := d.campaign(id)
	if err != nil {
		return c, err
	}
	if v, ok := m[optionalCollectionField]; ok && v != nil {
		if c.NFTCollectionCreated, err = parseBool(v); err != nil {
			return domain.Campaign{}, fmt.Errorf("field %s: %w", optionalCollectionField, err)
		}
	}
	return c, nil
}

func decodePositional(id uint64, values []any) (domain.Campaign, error) {
	d := fieldDecoder{get: func(idx int) (any, bool) {
		return values[idx], true
	}}
	return d.campaign(id)
}

// parseUint accepts the encodings a ledger node uses for unsigned integers:
// decimal strings for 64-bit values and plain JSON numbers for small ones.
func parseUint(v any) (uint64, error) {
	switch n := v.(type) {
	case string:
		u, err := strconv.ParseUint(n, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("%w: %q is not an unsigned integer", domain.ErrMalformedResponse, n)
		}
		return u, nil
	case json.Number:
		return parseUint(n.String())
	case float64:
		if n < 0 || n != math.Trunc(n) || n > 1<<53 {
			return 0, fmt.Errorf("%w: %v is not an exact unsigned integer", domain.ErrMalformedResponse, n)
		}
		return uint64(n), nil
	case int:
		if n < 0 {
			return 0, fmt.Errorf("%w: negative value %d", domain.ErrMalformedResponse, n)
		}
		return uint64(n), nil
	case int64:
		if n < 0 {
			return 0, fmt.Errorf("%w: negative value %d", domain.ErrMalformedResponse, n)
		}
		return uint64(n), nil
	case uint64:
		return n, nil
	default:
		return 0, fmt.Errorf("%w: %T is not an unsigned integer", domain.ErrMalformedResponse, v)
	}
}

func parseBool(v any) (bool, error) {
	b, ok := v.(bool)
	if !ok {
		return false, fmt.Errorf("%w: %T is not a boolean", domain.ErrMalformedResponse, v)
	}
	return b, nil
}
