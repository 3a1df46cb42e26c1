package domain

import (
	"context"
	"errors"
)

var (
	// ErrMalformedResponse is returned when a raw ledger payload matches
	// neither the named nor the positional campaign shape, or a numeric
	// field fails to parse.
	ErrMalformedResponse = errors.New("malformed ledger response")

	// ErrGatewayUnavailable covers network failures and unexpected node
	// responses.
	ErrGatewayUnavailable = errors.New("ledger gateway unavailable")

	// ErrModuleNotDeployed is a GatewayUnavailable condition where the node
	// answered but the contract module or its resources are missing.
	ErrModuleNotDeployed = errors.New("crowdfunding module not deployed")

	ErrTransactionFailed   = errors.New("transaction failed")
	ErrConfirmationTimeout = errors.New("transaction confirmation timed out")

	ErrMissingModuleAddress = errors.New("module address not configured")
	ErrInvalidModuleAddress = errors.New("invalid module address")
	ErrSignerNotConfigured  = errors.New("no transaction signer configured")

	ErrInvalidRequest = errors.New("invalid request")
	ErrNotFound       = errors.New("not found")
)

// FailureKind groups errors into the categories callers act on.
type FailureKind string

const (
	FailureMalformedResponse   FailureKind = "malformed_response"
	FailureModuleNotDeployed   FailureKind = "module_not_deployed"
	FailureGatewayUnavailable  FailureKind = "gateway_unavailable"
	FailureTransactionFailed   FailureKind = "transaction_failed"
	FailureConfirmationTimeout FailureKind = "confirmation_timeout"
	FailureInvalidRequest      FailureKind = "invalid_request"
	FailureNotFound            FailureKind = "not_found"
	FailureMisconfigured       FailureKind = "misconfigured"
	FailureCanceled            FailureKind = "canceled"
	FailureInternal            FailureKind = "internal"
)

// Failure is the classified form of an error, ready to be shown to a user.
type Failure struct {
	Kind      FailureKind `json:"kind"`
	Message   string      `json:"message"`
	Retryable bool        `json:"retryable"`
}

// Classify maps err onto the failure taxonomy. It returns nil for a nil
// error. More specific conditions are checked before the generic ones, so
// a missing module is reported as such and not as a network problem.
func Classify(err error) *Failure {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, ErrModuleNotDeployed):
		return &Failure{FailureModuleNotDeployed,
			"smart contract module not deployed; verify the module address and deployment", false}
	case errors.Is(err, ErrConfirmationTimeout):
		return &Failure{FailureConfirmationTimeout,
			"transaction was not confirmed in time; check its status before retrying", false}
	case errors.Is(err, ErrTransactionFailed):
		return &Failure{FailureTransactionFailed, "transaction failed: " + err.Error(), false}
	case errors.Is(err, ErrMalformedResponse):
		return &Failure{FailureMalformedResponse, "ledger returned an unexpected response", true}
	case errors.Is(err, ErrGatewayUnavailable):
		return &Failure{FailureGatewayUnavailable, "network error; please check your connection", true}
	case errors.Is(err, ErrInvalidRequest):
		return &Failure{FailureInvalidRequest, err.Error(), false}
	case errors.Is(err, ErrNotFound):
		return &Failure{FailureNotFound, err.Error(), false}
	case errors.Is(err, ErrMissingModuleAddress), errors.Is(err, ErrInvalidModuleAddress),
		errors.Is(err, ErrSignerNotConfigured):
		return &Failure{FailureMisconfigured, err.Error(), false}
	case errors.Is(err, context.Canceled):
		return &Failure{FailureCanceled, "request canceled", true}
	case errors.Is(err, context.DeadlineExceeded):
		return &Failure{FailureGatewayUnavailable, "ledger request timed out", true}
	default:
		return &Failure{FailureInternal, "internal error", false}
	}
}
