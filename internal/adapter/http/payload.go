package httpadapter

import (
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/payload"
	"crowdfund/internal/core/port"
	"crowdfund/internal/units"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// payloadReq is the body of POST /api/v1/payloads/{kind}. Amounts are
// whole-coin decimal strings such as "0.1"; only the fields of the
// selected kind are read.
type payloadReq struct {
	CampaignID      uint64 `json:"campaign_id"`
	Amount          string `json:"amount"`
	NewDeadlineSecs int64  `json:"new_deadline_secs"`
	Reason          string `json:"reason"`

	Title        string `json:"title"`
	Description  string `json:"description"`
	ImageURL     string `json:"image_url"`
	TargetAmount string `json:"target_amount"`
	DeadlineSecs int64  `json:"deadline_secs"`
	NFTMode      bool   `json:"nft_mode"`
	NFTUnitPrice string `json:"nft_unit_price"`
}

// toPayloadRequest converts the body into octa amounts. Conversion errors
// wrap domain.ErrInvalidRequest.
func (b payloadReq) toPayloadRequest(kind port.PayloadKind) (port.PayloadRequest, error) {
	req := port.PayloadRequest{
		Kind:                 kind,
		CampaignID:           b.CampaignID,
		NewDeadlineEpochSecs: b.NewDeadlineSecs,
		Reason:               b.Reason,
	}
	switch kind {
	case port.PayloadDonate:
		amount, err := units.ToOctas(b.Amount)
		if err != nil {
			return port.PayloadRequest{}, err
		}
		req.Amount = amount
	case port.PayloadCreateCampaign:
		target, err := units.ToOctas(b.TargetAmount)
		if err != nil {
			return port.PayloadRequest{}, err
		}
		var price domain.Octas
		if b.NFTUnitPrice != "" {
			if price, err = units.ToOctas(b.NFTUnitPrice); err != nil {
				return port.PayloadRequest{}, err
			}
		}
		req.Create = payload.CreateCampaignRequest{
			Title:             b.Title,
			Description:       b.Description,
			ImageURL:          b.ImageURL,
			TargetAmount:      target,
			DeadlineEpochSecs: b.DeadlineSecs,
			NFTMode:           b.NFTMode,
			NFTUnitPrice:      price,
		}
	}
	return req, nil
}

// handleBuildPayload returns the entry function payload for the {kind}
// path parameter. The wallet of the caller signs and submits it.
func (h *Handler) handleBuildPayload(w http.ResponseWriter, r *http.Request) {
	var body payloadReq
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	req, err := body.toPayloadRequest(port.PayloadKind(chi.URLParam(r, "kind")))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	p, err := h.svc.BuildPayload(r.Context(), req)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}
