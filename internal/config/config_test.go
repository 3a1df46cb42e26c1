package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LEDGER_MODULE_ADDRESS", "0x1")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, uint16(8080), cfg.HTTP.Port)
	assert.Equal(t, "https://fullnode.testnet.aptoslabs.com", cfg.Ledger.NodeURL)
	assert.Equal(t, "crowdfunding", cfg.Ledger.ModuleName)
	assert.Equal(t, uint64(2000), cfg.Ledger.MaxGasAmount)
	assert.Equal(t, uint64(100), cfg.Ledger.GasUnitPrice)
	assert.Equal(t, 60*time.Second, cfg.Ledger.TxExpiry)
	assert.Equal(t, 30*time.Second, cfg.Ledger.ConfirmTimeout)
	assert.Empty(t, cfg.Ledger.SignerKey)
	assert.False(t, cfg.Psql.Enabled)
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "postgres", cfg.Psql.Addr.Scheme)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("LEDGER_MODULE_ADDRESS", "0xabc")
	t.Setenv("LEDGER_CONFIRM_TIMEOUT", "45s")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("LOG_FORMAT", "JSON")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "0xabc", cfg.Ledger.ModuleAddress)
	assert.Equal(t, 45*time.Second, cfg.Ledger.ConfirmTimeout)
	assert.Equal(t, uint16(9090), cfg.HTTP.Port)
	assert.Equal(t, "json", cfg.Log.SlogFormat())
}

func TestLoad_MissingModuleAddress(t *testing.T) {
	t.Setenv("LEDGER_MODULE_ADDRESS", "")

	_, err := Load()
	assert.Error(t, err)
}
