package config_test

import (
	"testing"

	"github.com/SscSPs/settlement_ledger/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.True(t, cfg.LedgerEnabled)
	assert.Equal(t, config.LedgerModeTigerBeetle, cfg.LedgerMode)
	assert.Equal(t, uint64(0), cfg.LedgerClusterID)
	assert.Equal(t, []string{"3000"}, cfg.LedgerReplicaAddresses)
	assert.Equal(t, "1", cfg.HubID)
	assert.Equal(t, "600-M", cfg.RateLimit)
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	t.Setenv("LEDGER_MODE", "Memory")
	t.Setenv("LEDGER_ENABLED", "false")
	t.Setenv("LEDGER_CLUSTER_ID", "7")
	t.Setenv("LEDGER_REPLICA_ADDRESSES", "10.0.0.1:3000, 10.0.0.2:3000,")
	t.Setenv("HUB_ID", "20")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, config.LedgerModeMemory, cfg.LedgerMode)
	assert.False(t, cfg.LedgerEnabled)
	assert.Equal(t, uint64(7), cfg.LedgerClusterID)
	assert.Equal(t, []string{"10.0.0.1:3000", "10.0.0.2:3000"}, cfg.LedgerReplicaAddresses)
	assert.Equal(t, "20", cfg.HubID)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"unknown mode":    {"LEDGER_MODE": "postgres"},
		"cluster id":      {"LEDGER_CLUSTER_ID": "-1"},
		"no replicas":     {"LEDGER_REPLICA_ADDRESSES": " , "},
		"non numeric hub": {"HUB_ID": "hub"},
	}
	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := config.LoadConfig()
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_MockModeNeedsNoReplicas(t *testing.T) {
	t.Setenv("LEDGER_MODE", "mock")
	t.Setenv("LEDGER_REPLICA_ADDRESSES", " , ")

	cfg, err := config.LoadConfig()
	require.NoError(t, err)
	assert.Empty(t, cfg.LedgerReplicaAddresses)
}
