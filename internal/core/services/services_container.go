package services

import (
	"log/slog"

	"github.com/SscSPs/settlement_ledger/internal/core/chains"
	"github.com/SscSPs/settlement_ledger/internal/core/ports/ledger"
	portssvc "github.com/SscSPs/settlement_ledger/internal/core/ports/services"
	"github.com/SscSPs/settlement_ledger/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, dialer ledger.EngineDialer, logger *slog.Logger) *portssvc.ServiceContainer {
	gateway := NewLedgerGateway(GatewayConfig{
		Enabled: cfg.LedgerEnabled,
		Mock:    cfg.LedgerMode == config.LedgerModeMock,
		Engine: ledger.EngineConfig{
			ClusterID:        cfg.LedgerClusterID,
			ReplicaAddresses: cfg.LedgerReplicaAddresses,
		},
	}, dialer, WithLogger(logger))

	return &portssvc.ServiceContainer{
		Gateway:      gateway,
		Provisioner:  NewAccountProvisioner(gateway, WithLogger(logger)),
		Orchestrator: NewTransferOrchestrator(chains.Hub{ID: cfg.HubID}, gateway, WithLogger(logger)),
	}
}
