package port

import (
	"context"
	"crowdfund/internal/core/domain"
	"time"
)

// Signer signs transaction signing messages for one ledger account. A
// browser wallet plays this role for end users; the service holds one only
// for operator tooling.
type Signer interface {
	// Address returns the account address controlled by the signer.
	Address() string
	// PublicKey returns the raw ed25519 public key.
	PublicKey() []byte
	// Sign signs the ledger-provided signing message.
	Sign(message []byte) ([]byte, error)
}

// LedgerGateway is the outbound port to the remote ledger node. Every call
// goes to the node; implementations must not cache responses.
type LedgerGateway interface {
	// View executes a read-only view function and returns its raw return
	// values, one element per declared return value.
	View(ctx context.Context, req domain.ViewRequest) ([]any, error)

	// Submit signs payload with signer and broadcasts it. It returns the
	// transaction hash as soon as the node accepts the transaction.
	Submit(ctx context.Context, payload domain.EntryFunctionPayload, signer Signer) (string, error)

	// AwaitConfirmation blocks until the transaction is committed or the
	// timeout expires. Expiry returns domain.ErrConfirmationTimeout; a
	// committed but failed transaction returns its outcome together with
	// domain.ErrTransactionFailed.
	AwaitConfirmation(ctx context.Context, hash string, timeout time.Duration) (domain.TxOutcome, error)

	// ModuleDeployed reports whether module is published under address.
	ModuleDeployed(ctx context.Context, address, module string) (bool, error)
}
