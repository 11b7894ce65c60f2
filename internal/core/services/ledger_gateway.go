package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"sync"

	"github.com/SscSPs/settlement_ledger/internal/apperrors"
	"github.com/SscSPs/settlement_ledger/internal/core/domain"
	"github.com/SscSPs/settlement_ledger/internal/core/ports/ledger"
	portssvc "github.com/SscSPs/settlement_ledger/internal/core/ports/services"
	"golang.org/x/sync/singleflight"
)

var errGatewayShutDown = errors.New("gateway shut down while connecting")

// GatewayConfig decides whether and how the gateway reaches an engine.
type GatewayConfig struct {
	// Enabled false makes every operation fail with a configuration error.
	Enabled bool
	// Mock answers every call with empty success without dialing anything.
	Mock   bool
	Engine ledger.EngineConfig
}

// LedgerGateway owns the single engine handle of the process. The handle is dialed
// on first use and shared by every caller until Shutdown.
type LedgerGateway struct {
	BaseService
	cfg    GatewayConfig
	dialer ledger.EngineDialer

	mu         sync.RWMutex
	client     ledger.EngineClient
	generation uint64
	connects   singleflight.Group
}

// NewLedgerGateway creates a gateway. dialer may be nil when cfg is disabled or in mock mode.
func NewLedgerGateway(cfg GatewayConfig, dialer ledger.EngineDialer, options ...Option) *LedgerGateway {
	g := &LedgerGateway{
		cfg:    cfg,
		dialer: dialer,
	}
	for _, option := range options {
		option(&g.BaseService)
	}
	return g
}

var _ portssvc.LedgerGatewaySvc = (*LedgerGateway)(nil)

// Connect returns the cached engine handle, dialing it if needed. Concurrent first
// callers share a single dial and its outcome. A failed dial is not cached.
func (g *LedgerGateway) Connect(ctx context.Context) (ledger.EngineClient, error) {
	const op = "ledger.connect"
	if !g.cfg.Enabled {
		return nil, apperrors.NewConfigurationError(op, "ledger integration is disabled")
	}
	if g.cfg.Mock {
		return mockEngine{}, nil
	}
	if g.dialer == nil {
		return nil, apperrors.NewConfigurationError(op, "no ledger engine dialer configured")
	}

	g.mu.RLock()
	client := g.client
	g.mu.RUnlock()
	if client != nil {
		return client, nil
	}

	v, err, _ := g.connects.Do("connect", func() (any, error) {
		return g.dial(ctx)
	})
	if err != nil {
		g.LogError(ctx, err, "Failed to connect to ledger engine",
			slog.Uint64("cluster_id", g.cfg.Engine.ClusterID),
			slog.String("replica_addresses", strings.Join(g.cfg.Engine.ReplicaAddresses, ",")))
		return nil, apperrors.NewConnectionError(op, err)
	}
	return v.(ledger.EngineClient), nil
}

func (g *LedgerGateway) dial(ctx context.Context) (ledger.EngineClient, error) {
	g.mu.RLock()
	if g.client != nil {
		defer g.mu.RUnlock()
		return g.client, nil
	}
	generation := g.generation
	g.mu.RUnlock()

	// The dial is shared, so one caller's cancellation must not fail the others.
	client, err := g.dialer.Dial(context.WithoutCancel(ctx), g.cfg.Engine)
	if err != nil {
		return nil, err
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	if g.generation != generation {
		client.Close()
		return nil, errGatewayShutDown
	}
	g.client = client
	g.LogInfo(ctx, "Connected to ledger engine",
		slog.Uint64("cluster_id", g.cfg.Engine.ClusterID),
		slog.Int("replicas", len(g.cfg.Engine.ReplicaAddresses)))
	return client, nil
}

// Shutdown closes the cached handle. A later call dials again.
func (g *LedgerGateway) Shutdown() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.generation++
	if g.client == nil {
		return
	}
	g.client.Close()
	g.client = nil
	g.LogInfo(context.Background(), "Ledger engine connection closed")
}

// CreateAccounts submits accounts and returns the engine's per-entry failures untranslated.
func (g *LedgerGateway) CreateAccounts(ctx context.Context, accounts []domain.Account) ([]domain.EntryResult, error) {
	const op = "ledger.create_accounts"
	client, err := g.Connect(ctx)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewConnectionError(op, err)
	}
	results, err := client.CreateAccounts(ctx, accounts)
	if err != nil {
		g.LogError(ctx, err, "Ledger engine account submission failed", slog.Int("entries", len(accounts)))
		return nil, apperrors.NewConnectionError(op, err)
	}
	return results, nil
}

// LookupAccounts returns the accounts found among ids.
func (g *LedgerGateway) LookupAccounts(ctx context.Context, ids []domain.LedgerID) ([]domain.Account, error) {
	const op = "ledger.lookup_accounts"
	client, err := g.Connect(ctx)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewConnectionError(op, err)
	}
	accounts, err := client.LookupAccounts(ctx, ids)
	if err != nil {
		g.LogError(ctx, err, "Ledger engine account lookup failed", slog.Int("ids", len(ids)))
		return nil, apperrors.NewConnectionError(op, err)
	}
	return accounts, nil
}

// CreateTransfers submits a chain in one batch and returns the engine's per-entry failures.
func (g *LedgerGateway) CreateTransfers(ctx context.Context, chain domain.TransferChain) ([]domain.EntryResult, error) {
	const op = "ledger.create_transfers"
	client, err := g.Connect(ctx)
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, apperrors.NewConnectionError(op, err)
	}
	results, err := client.CreateTransfers(ctx, chain)
	if err != nil {
		g.LogError(ctx, err, "Ledger engine transfer submission failed", slog.Int("entries", len(chain)))
		return nil, apperrors.NewConnectionError(op, err)
	}
	return results, nil
}

// mockEngine accepts everything and stores nothing.
type mockEngine struct{}

func (mockEngine) CreateAccounts(context.Context, []domain.Account) ([]domain.EntryResult, error) {
	return nil, nil
}

func (mockEngine) LookupAccounts(context.Context, []domain.LedgerID) ([]domain.Account, error) {
	return nil, nil
}

func (mockEngine) CreateTransfers(context.Context, []domain.Transfer) ([]domain.EntryResult, error) {
	return nil, nil
}

func (mockEngine) Close() {}
