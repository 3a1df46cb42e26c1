package resolver

import (
	"crowdfund/internal/core/domain"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func positional() []any {
	return []any{"0xA", "T", "D", "img", "1000", "200", "99999999999", true, false, "0", false}
}

func named() map[string]any {
	return map[string]any{
		"organizer":      "0xC",
		"title":          "Clean water",
		"description":    "Wells",
		"image_url":      "https://img/c.png",
		"target_amount":  "5000",
		"raised_amount":  "5000",
		"deadline_secs":  "1800000000",
		"approved":       true,
		"nft_mode":       true,
		"nft_unit_price": "25",
		"is_closed":      false,
	}
}

func TestParseCampaign_Positional(t *testing.T) {
	r := New(nil)

	c, err := r.ParseCampaign(7, positional())
	require.NoError(t, err)
	assert.Equal(t, domain.Campaign{
		ID:                7,
		Organizer:         "0xA",
		Title:             "T",
		Description:       "D",
		ImageURL:          "img",
		TargetAmount:      1000,
		RaisedAmount:      200,
		DeadlineEpochSecs: 99999999999,
		Approved:          true,
		NFTMode:           false,
		NFTUnitPrice:      0,
		IsClosed:          false,
	}, c)
}

func TestParseCampaign_Named(t *testing.T) {
	r := New(nil)

	c, err := r.ParseCampaign(3, named())
	require.NoError(t, err)
	assert.Equal(t, uint64(3), c.ID)
	assert.Equal(t, "0xC", c.Organizer)
	assert.Equal(t, domain.Octas(5000), c.TargetAmount)
	assert.Equal(t, domain.Octas(25), c.NFTUnitPrice)
	assert.True(t, c.NFTMode)
	assert.False(t, c.NFTCollectionCreated, "missing optional field defaults to false")

	raw := named()
	raw["nft_collection_created"] = true
	raw["target_amount"] = json.Number("7000")
	c, err = r.ParseCampaign(3, raw)
	require.NoError(t, err)
	assert.True(t, c.NFTCollectionCreated)
	assert.Equal(t, domain.Octas(7000), c.TargetAmount)
}

func TestParseCampaign_Malformed(t *testing.T) {
	r := New(nil)

	tests := map[string]any{
		"nil":                 nil,
		"string":              "campaign",
		"short tuple":         positional()[:10],
		"long tuple":          append(positional(), "extra"),
		"non-numeric amount":  func() any { p := positional(); p[4] = "lots"; return p }(),
		"negative amount":     func() any { p := positional(); p[5] = "-1"; return p }(),
		"fractional number":   func() any { p := positional(); p[4] = 10.5; return p }(),
		"string approved":     func() any { p := positional(); p[7] = "true"; return p }(),
		"numeric title":       func() any { p := positional(); p[1] = 12.0; return p }(),
		"zero target":         func() any { p := positional(); p[4] = "0"; return p }(),
		"zero deadline":       func() any { p := positional(); p[6] = "0"; return p }(),
		"empty organizer":     func() any { p := positional(); p[0] = ""; return p }(),
		"object without org":  map[string]any{"title": "x"},
		"named missing field": func() any { m := named(); delete(m, "raised_amount"); return m }(),
		"named bad optional":  func() any { m := named(); m["nft_collection_created"] = "yes"; return m }(),
	}
	for name, raw := range tests {
		t.Run(name, func(t *testing.T) {
			c, err := r.ParseCampaign(1, raw)
			require.Error(t, err)
			assert.ErrorIs(t, err, domain.ErrMalformedResponse)
			assert.Equal(t, domain.Campaign{}, c, "no partially populated record")
		})
	}
}

func TestParseCampaign_Idempotent(t *testing.T) {
	r := New(nil)
	raw := positional()

	first, err := r.ParseCampaign(9, raw)
	require.NoError(t, err)
	second, err := r.ParseCampaign(9, raw)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestDetectShape(t *testing.T) {
	assert.Equal(t, shapePositional.String(), detectShape(positional()).String())
	assert.Equal(t, shapeNamed, detectShape(named()))
	assert.Equal(t, shapeInvalid, detectShape([]any{"0xA"}))
	assert.Equal(t, shapeInvalid, detectShape(map[string]any{}))
}

func TestParseActiveCampaignList_SkipsMalformed(t *testing.T) {
	var dropped int
	r := New(nil, WithDropObserver(func(n int) { dropped += n }))

	raw := []any{
		map[string]any{"id": "1", "campaign": positional()},
		map[string]any{"id": "2"},
		map[string]any{"id": "3", "campaign": named()},
		map[string]any{"campaign": positional()},
		"garbage",
	}
	got := r.ParseActiveCampaignList(raw)
	require.Len(t, got, 2)
	assert.Equal(t, uint64(1), got[0].ID)
	assert.Equal(t, "0xA", got[0].Organizer)
	assert.Equal(t, uint64(3), got[1].ID)
	assert.Equal(t, "0xC", got[1].Organizer)
	assert.Equal(t, 3, dropped)
}

func TestParseActiveCampaignList_ZeroIDAndNonList(t *testing.T) {
	r := New(nil)

	got := r.ParseActiveCampaignList([]any{map[string]any{"id": "0", "campaign": positional()}})
	require.Len(t, got, 1)
	assert.Equal(t, uint64(0), got[0].ID)

	assert.Empty(t, r.ParseActiveCampaignList(nil))
	assert.Empty(t, r.ParseActiveCampaignList(map[string]any{"id": "1"}))
}

func TestParseUserProfile(t *testing.T) {
	r := New(nil)

	p := r.ParseUserProfile([]any{
		[]any{"4", "5", "x"},
		[]any{
			map[string]any{"id": "5", "campaign": positional()},
			map[string]any{"id": "6"},
		},
	})
	assert.Equal(t, []uint64{4, 5}, p.CampaignIDs)
	require.Len(t, p.Donations, 1)
	assert.Equal(t, uint64(5), p.Donations[0].ID)
}

func TestParseUserProfile_Absent(t *testing.T) {
	r := New(nil)

	for name, raw := range map[string]any{
		"nil":         nil,
		"empty":       []any{},
		"short":       []any{[]any{"1"}},
		"wrong types": []any{"a", "b"},
	} {
		t.Run(name, func(t *testing.T) {
			p := r.ParseUserProfile(raw)
			assert.NotNil(t, p.CampaignIDs)
			assert.NotNil(t, p.Donations)
			assert.Empty(t, p.CampaignIDs)
			assert.Empty(t, p.Donations)
		})
	}
}

func TestParseScalars(t *testing.T) {
	r := New(nil)

	n, err := r.ParseCount("12")
	require.NoError(t, err)
	assert.Equal(t, uint64(12), n)

	_, err = r.ParseCount(true)
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)

	ok, err := r.ParseFlag(true)
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = r.ParseFlag("true")
	assert.ErrorIs(t, err, domain.ErrMalformedResponse)
}
