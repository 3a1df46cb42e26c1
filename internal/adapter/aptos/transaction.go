package aptos

import (
	"context"
	"crowdfund/internal/core/domain"
	"crowdfund/internal/core/port"
	"encoding/hex"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const (
	payloadType        = "entry_function_payload"
	signatureType      = "ed25519_signature"
	pendingTransaction = "pending_transaction"
)

type accountResp struct {
	SequenceNumber string `json:"sequence_number"`
}

type txPayload struct {
	Type          string   `json:"type"`
	Function      string   `json:"function"`
	TypeArguments []string `json:"type_arguments"`
	Arguments     []any    `json:"arguments"`
}

type signature struct {
	Type      string `json:"type"`
	PublicKey string `json:"public_key"`
	Signature string `json:"signature"`
}

type rawTx struct {
	Sender                  string     `json:"sender"`
	SequenceNumber          string     `json:"sequence_number"`
	MaxGasAmount            string     `json:"max_gas_amount"`
	GasUnitPrice            string     `json:"gas_unit_price"`
	ExpirationTimestampSecs string     `json:"expiration_timestamp_secs"`
	Payload                 txPayload  `json:"payload"`
	Signature               *signature `json:"signature,omitempty"`
}

type txResp struct {
	Type     string `json:"type"`
	Hash     string `json:"hash"`
	Success  bool   `json:"success"`
	VMStatus string `json:"vm_status"`
	Version  string `json:"version"`
}

// Submit signs p with signer and broadcasts it. It returns the transaction
// hash once the node accepted the submission; a rejected submission wraps
// domain.ErrTransactionFailed.
func (c *Client) Submit(ctx context.Context, p domain.EntryFunctionPayload, signer port.Signer) (hash string, err error) {
	defer c.observe("submit", time.Now(), &err)

	if signer == nil {
		return "", domain.ErrSignerNotConfigured
	}
	sender := signer.Address()

	var account accountResp
	if err = c.do(ctx, http.MethodGet, "/accounts/"+url.PathEscape(sender), nil, &account); err != nil {
		return "", fmt.Errorf("load sender account %s: %w", sender, err)
	}

	tx := rawTx{
		Sender:                  sender,
		SequenceNumber:          account.SequenceNumber,
		MaxGasAmount:            strconv.FormatUint(c.cfg.MaxGasAmount, 10),
		GasUnitPrice:            strconv.FormatUint(c.cfg.GasUnitPrice, 10),
		ExpirationTimestampSecs: strconv.FormatInt(c.now().Add(c.cfg.TxExpiry).Unix(), 10),
		Payload: txPayload{
			Type:          payloadType,
			Function:      p.Function,
			TypeArguments: p.TypeArguments,
			Arguments:     p.Arguments,
		},
	}
	if tx.Payload.TypeArguments == nil {
		tx.Payload.TypeArguments = []string{}
	}
	if tx.Payload.Arguments == nil {
		tx.Payload.Arguments = []any{}
	}

	var message string
	if err = c.do(ctx, http.MethodPost, "/transactions/encode_submission", tx, &message); err != nil {
		return "", fmt.Errorf("encode submission: %w", submissionErr(err))
	}
	raw, err := hex.DecodeString(strings.TrimPrefix(message, "0x"))
	if err != nil {
		return "", fmt.Errorf("%w: signing message is not hex: %w", domain.ErrMalformedResponse, err)
	}
	sig, err := signer.Sign(raw)
	if err != nil {
		return "", fmt.Errorf("sign transaction: %w", err)
	}
	tx.Signature = &signature{
		Type:      signatureType,
		PublicKey: "0x" + hex.EncodeToString(signer.PublicKey()),
		Signature: "0x" + hex.EncodeToString(sig),
	}

	var pending txResp
	if err = c.do(ctx, http.MethodPost, "/transactions", tx, &pending); err != nil {
		return "", fmt.Errorf("submit transaction: %w", submissionErr(err))
	}
	if pending.Hash == "" {
		return "", fmt.Errorf("%w: submission accepted without hash", domain.ErrMalformedResponse)
	}

	c.logger.Info("transaction submitted",
		slog.String("hash", pending.Hash),
		slog.String("function", p.Function),
		slog.String("sender", sender),
		slog.String("sequence_number", account.SequenceNumber))
	return pending.Hash, nil
}

// submissionErr marks client errors of the node as a rejected transaction.
func submissionErr(err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode < http.StatusInternalServerError &&
		apiErr.StatusCode != http.StatusTooManyRequests && !apiErr.NotDeployed() {
		return fmt.Errorf("%w: %w", domain.ErrTransactionFailed, err)
	}
	return err
}

// AwaitConfirmation polls the node until hash is committed or timeout
// elapses. A non-positive timeout uses the configured default. A committed
// but failed transaction returns its outcome together with an error
// wrapping domain.ErrTransactionFailed.
func (c *Client) AwaitConfirmation(ctx context.Context, hash string, timeout time.Duration) (outcome domain.TxOutcome, err error) {
	defer c.observe("confirm", time.Now(), &err)

	if timeout <= 0 {
		timeout = c.cfg.ConfirmTimeout
	}
	waitCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	ticker := time.NewTicker(c.cfg.PollInterval)
	defer ticker.Stop()

	path := "/transactions/by_hash/" + url.PathEscape(hash)
	for {
		var tx txResp
		err = c.do(waitCtx, http.MethodGet, path, nil, &tx)
		switch {
		case err == nil && tx.Type != pendingTransaction:
			return c.outcome(hash, tx)
		case err == nil:
		case errors.Is(err, domain.ErrNotFound), errors.Is(err, domain.ErrGatewayUnavailable):
			c.logger.Debug("transaction not committed yet", slog.String("hash", hash), slog.Any("error", err))
		case waitCtx.Err() != nil:
		default:
			return domain.TxOutcome{}, err
		}

		select {
		case <-waitCtx.Done():
			if ctx.Err() != nil {
				return domain.TxOutcome{}, ctx.Err()
			}
			return domain.TxOutcome{}, fmt.Errorf("%w: %s after %s", domain.ErrConfirmationTimeout, hash, timeout)
		case <-ticker.C:
		}
	}
}

func (c *Client) outcome(hash string, tx txResp) (domain.TxOutcome, error) {
	outcome := domain.TxOutcome{
		Hash:     hash,
		Success:  tx.Success,
		VMStatus: tx.VMStatus,
	}
	if tx.Hash != "" {
		outcome.Hash = tx.Hash
	}
	if tx.Version != "" {
		v, err := strconv.ParseUint(tx.Version, 10, 64)
		if err != nil {
			return domain.TxOutcome{}, fmt.Errorf("%w: transaction version %q", domain.ErrMalformedResponse, tx.Version)
		}
		outcome.Version = v
	}
	if !outcome.Success {
		c.logger.Warn("transaction failed", slog.String("hash", outcome.Hash), slog.String("vm_status", tx.VMStatus))
		return outcome, fmt.Errorf("%w: %s", domain.ErrTransactionFailed, tx.VMStatus)
	}
	c.logger.Info("transaction committed", slog.String("hash", outcome.Hash), slog.Uint64("version", outcome.Version))
	return outcome, nil
}
