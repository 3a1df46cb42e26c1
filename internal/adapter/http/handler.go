package httpadapter

import (
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP holding the campaign usecase and a logger. Routes are registered on
// a chi.Router.
type Handler struct {
	svc    port.CampaignUseCase
	logger *slog.Logger
	router chi.Router
}

// NewHandler creates a handler with all routes configured. Metrics in
// gatherer are exposed on /metrics; a nil gatherer disables the endpoint.
func NewHandler(svc port.CampaignUseCase, logger *slog.Logger, gatherer prometheus.Gatherer) *Handler {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	h := &Handler{svc: svc, logger: logger.With("component", "http")}
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/campaigns", h.handleListCampaigns)
		r.Get("/campaigns/{id}", h.handleGetCampaign)
		r.Get("/profiles/{address}", h.handleGetProfile)
		r.Get("/profiles/{address}/transactions", h.handleProfileTransactions)
		r.Get("/admin/summary", h.handleAdminSummary)

		r.Post("/payloads/{kind}", h.handleBuildPayload)

		r.Post("/transactions", h.handleSubmit)
		r.Post("/transactions/{hash}/confirm", h.handleConfirm)
		r.Get("/transactions/{hash}", h.handleTransaction)
	})
	r.Get("/health", h.handleHealth)
	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		// encoding should rarely fail; the status line is already out
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

type errorResp struct {
	Error *domain.Failure `json:"error"`
}

// writeError classifies err and writes it with the matching status code.
// Internal errors are logged and reported without detail.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	f := domain.Classify(err)
	status := statusOf(f, err)
	attrs := []any{
		slog.String("path", r.URL.Path),
		slog.String("kind", string(f.Kind)),
		slog.Int("status", status),
		slog.Any("error", err),
	}
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", attrs...)
	} else {
		h.logger.Debug("request rejected", attrs...)
	}
	h.writeJSON(w, status, errorResp{Error: f})
}

func statusOf(f *domain.Failure, err error) int {
	switch f.Kind {
	case domain.FailureInvalidRequest:
		return http.StatusBadRequest
	case domain.FailureNotFound:
		return http.StatusNotFound
	case domain.FailureModuleNotDeployed:
		return http.StatusServiceUnavailable
	case domain.FailureGatewayUnavailable, domain.FailureMalformedResponse:
		return http.StatusBadGateway
	case domain.FailureTransactionFailed:
		return http.StatusUnprocessableEntity
	case domain.FailureConfirmationTimeout:
		return http.StatusGatewayTimeout
	case domain.FailureCanceled:
		return http.StatusRequestTimeout
	case domain.FailureMisconfigured:
		if errors.Is(err, domain.ErrSignerNotConfigured) {
			return http.StatusNotImplemented
		}
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

// decodeJSON decodes the request body into v, rejecting unknown fields.
// Numbers stay json.Number so u64 arguments keep their precision.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return &requestError{msg: "invalid JSON: " + err.Error()}
	}
	return nil
}

// requestError is a malformed request rejected before reaching the usecase.
type requestError struct {
	msg string
}

func (e *requestError) Error() string { return e.msg }

func (e *requestError) Unwrap() error { return domain.ErrInvalidRequest }
