package configs

import "time"

// Ledger configures access to the ledger node and the contract module.
type Ledger struct {
	// NodeURL is the REST endpoint of a full node. The /v1 suffix is
	// optional.
	NodeURL string `env:"NODE_URL" envDefault:"https://fullnode.testnet.aptoslabs.com"`
	// ModuleAddress is the account the crowdfunding module is published
	// under.
	ModuleAddress string `env:"MODULE_ADDRESS,required,notEmpty"`
	// ModuleName is the name of the contract module.
	ModuleName string `env:"MODULE_NAME" envDefault:"crowdfunding"`

	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"10s"`
	MaxGasAmount   uint64        `env:"MAX_GAS_AMOUNT" envDefault:"2000"`
	GasUnitPrice   uint64        `env:"GAS_UNIT_PRICE" envDefault:"100"`
	TxExpiry       time.Duration `env:"TX_EXPIRY" envDefault:"60s"`
	PollInterval   time.Duration `env:"POLL_INTERVAL" envDefault:"1s"`
	ConfirmTimeout time.Duration `env:"CONFIRM_TIMEOUT" envDefault:"30s"`

	// SignerKey is the hex ed25519 seed of the operator account. Leave it
	// empty to disable server-side submission.
	SignerKey string `env:"SIGNER_KEY"`
}
