package httpadapter

import (
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

// handleListCampaigns returns the listed campaigns. It accepts optional
// `status` and `q` query parameters; an unknown status is rejected with
// HTTP 400.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	var (
		q      = r.URL.Query()
		filter = port.ListFilter{Query: q.Get("q")}
	)
	if s := q.Get("status"); s != "" && s != "all" {
		status, err := domain.ParseStatus(s)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		filter.Status = status
	}

	campaigns, err := h.svc.ListCampaigns(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, campaigns)
}

// handleGetCampaign returns one campaign with its donor count.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.writeError(w, r, &requestError{msg: "invalid campaign id"})
		return
	}
	c, err := h.svc.GetCampaign(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *Handler) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	p, err := h.svc.GetProfile(r.Context(), chi.URLParam(r, "address"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}

// handleProfileTransactions lists journaled transactions of an address.
// `limit` is optional.
func (h *Handler) handleProfileTransactions(w http.ResponseWriter, r *http.Request) {
	var limit int
	if s := r.URL.Query().Get("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 0 {
			h.writeError(w, r, &requestError{msg: "invalid limit"})
			return
		}
		limit = n
	}
	recs, err := h.svc.SenderTransactions(r.Context(), chi.URLParam(r, "address"), limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, recs)
}

func (h *Handler) handleAdminSummary(w http.ResponseWriter, r *http.Request) {
	s, err := h.svc.AdminSummary(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, s)
}
