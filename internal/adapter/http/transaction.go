package httpadapter

import (
	"crowdfund/internal/core/domain"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
)

// maxConfirmTimeout bounds the timeout a client may ask to wait for.
const maxConfirmTimeout = 2 * time.Minute

// submitReq accepts the payload with or without the wallet's type tag.
type submitReq struct {
	Type string `json:"type"`
	domain.EntryFunctionPayload
}

// handleSubmit signs and broadcasts a payload with the service signer.
// Without a configured signer it answers HTTP 501.
func (h *Handler) handleSubmit(w http.ResponseWriter, r *http.Request) {
	var body submitReq
	if err := decodeJSON(r, &body); err != nil {
		h.writeError(w, r, err)
		return
	}
	p := body.EntryFunctionPayload
	if p.Function == "" {
		h.writeError(w, r, &requestError{msg: "function is required"})
		return
	}
	rec, err := h.svc.Submit(r.Context(), p)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusAccepted, rec)
}

// handleConfirm waits for a transaction to commit. The optional `timeout`
// query parameter is a Go duration such as "30s". The record is always
// returned; a failed transaction answers 422 and an unconfirmed one 504.
func (h *Handler) handleConfirm(w http.ResponseWriter, r *http.Request) {
	var timeout time.Duration
	if s := r.URL.Query().Get("timeout"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil || d <= 0 || d > maxConfirmTimeout {
			h.writeError(w, r, &requestError{msg: "timeout must be a positive duration up to " + maxConfirmTimeout.String()})
			return
		}
		timeout = d
	}
	rec, err := h.svc.AwaitConfirmation(r.Context(), chi.URLParam(r, "hash"), timeout)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, confirmStatus(rec.Status), rec)
}

func confirmStatus(s domain.TxStatus) int {
	switch s {
	case domain.TxFailed:
		return http.StatusUnprocessableEntity
	case domain.TxTimeout, domain.TxPending:
		return http.StatusGatewayTimeout
	default:
		return http.StatusOK
	}
}

func (h *Handler) handleTransaction(w http.ResponseWriter, r *http.Request) {
	rec, err := h.svc.Transaction(r.Context(), chi.URLParam(r, "hash"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, rec)
}

// handleHealth reports ledger connectivity. It answers HTTP 503 while the
// module is not deployed.
func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	resp, err := h.svc.Health(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	status := http.StatusOK
	if !resp.ModuleDeployed {
		status = http.StatusServiceUnavailable
	}
	h.writeJSON(w, status, resp)
}
