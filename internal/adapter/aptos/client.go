// Package aptos implements the ledger gateway port against the REST API
// of an Aptos full node.
package aptos

import (
	"bytes"
	"context"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/metrics"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Config holds the node connection and transaction parameters.
type Config struct {
	NodeURL        string
	RequestTimeout time.Duration
	MaxGasAmount   uint64
	GasUnitPrice   uint64
	TxExpiry       time.Duration
	PollInterval   time.Duration
	ConfirmTimeout time.Duration
}

// Client is an outbound adapter for port.LedgerGateway. It holds no
// response cache; every call reaches the node.
type Client struct {
	cfg     Config
	base    *url.URL
	http    *http.Client
	logger  *slog.Logger
	metrics *metrics.Gateway
	now     func() time.Time
}

// New returns a Client for the node at cfg.NodeURL. The /v1 API prefix is
// added when missing. logger and m may be nil.
func New(cfg Config, logger *slog.Logger, m *metrics.Gateway) (*Client, error) {
	base, err := url.Parse(strings.TrimRight(cfg.NodeURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("parse node url: %w", err)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, fmt.Errorf("node url %q must be absolute", cfg.NodeURL)
	}
	if !strings.HasSuffix(base.Path, "/v1") {
		base.Path += "/v1"
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = time.Second
	}
	if cfg.ConfirmTimeout <= 0 {
		cfg.ConfirmTimeout = 30 * time.Second
	}
	if cfg.TxExpiry <= 0 {
		cfg.TxExpiry = time.Minute
	}
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Client{
		cfg:     cfg,
		base:    base,
		http:    &http.Client{Timeout: cfg.RequestTimeout},
		logger:  logger.With("component", "aptos"),
		metrics: m,
		now:     time.Now,
	}, nil
}

func (c *Client) observe(operation string, start time.Time, err *error) {
	c.metrics.Observe(operation, start, *err)
}

// do sends a JSON request to path below the API root and decodes a JSON
// response into out. Numbers are decoded as json.Number.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("encode %s request: %w", path, err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.base.String()+path, reader)
	if err != nil {
		return fmt.Errorf("build %s request: %w", path, err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("%s %s: %w", method, path, ctxErr)
		}
		return fmt.Errorf("%w: %s %s: %w", domain.ErrGatewayUnavailable, method, path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		if jsonErr := json.Unmarshal(raw, apiErr); jsonErr != nil || apiErr.Message == "" {
			apiErr.Message = strings.TrimSpace(string(raw))
		}
		return apiErr
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	if err = dec.Decode(out); err != nil {
		return fmt.Errorf("%w: decode %s response: %w", domain.ErrMalformedResponse, path, err)
	}
	return nil
}

// View calls a view function and returns its return values.
func (c *Client) View(ctx context.Context, req domain.ViewRequest) (values []any, err error) {
	defer c.observe("view", time.Now(), &err)

	if req.TypeArguments == nil {
		req.TypeArguments = []string{}
	}
	if req.Arguments == nil {
		req.Arguments = []any{}
	}
	if err = c.do(ctx, http.MethodPost, "/view", req, &values); err != nil {
		c.logger.Debug("view failed", slog.String("function", req.Function), slog.Any("error", err))
		return nil, err
	}
	return values, nil
}

// ModuleDeployed reports whether module is published under address. A
// missing account or module is not an error.
func (c *Client) ModuleDeployed(ctx context.Context, address, module string) (ok bool, err error) {
	defer c.observe("module", time.Now(), &err)

	path := "/accounts/" + url.PathEscape(address) + "/module/" + url.PathEscape(module)
	err = c.do(ctx, http.MethodGet, path, nil, nil)
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError {
		c.logger.Info("module not found",
			slog.String("address", address), slog.String("module", module), slog.String("error_code", apiErr.ErrorCode))
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
