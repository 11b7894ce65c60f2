package ledger

import (
	"context"

	"github.com/SscSPs/settlement_ledger/internal/core/domain"
)

// EngineConfig holds what a dialer needs to reach a ledger engine cluster.
type EngineConfig struct {
	ClusterID        uint64
	ReplicaAddresses []string
}

// EngineClient is a connected handle to the double-entry ledger engine.
type EngineClient interface {
	// CreateAccounts submits a batch of accounts. An empty result means every entry was accepted.
	CreateAccounts(ctx context.Context, accounts []domain.Account) ([]domain.EntryResult, error)

	// LookupAccounts returns the accounts found among ids. Unknown ids are omitted.
	LookupAccounts(ctx context.Context, ids []domain.LedgerID) ([]domain.Account, error)

	// CreateTransfers submits a batch of transfers. Linked entries succeed or fail together.
	CreateTransfers(ctx context.Context, transfers []domain.Transfer) ([]domain.EntryResult, error)

	// Close releases the handle.
	Close()
}

// EngineDialer creates engine handles.
type EngineDialer interface {
	Dial(ctx context.Context, cfg EngineConfig) (EngineClient, error)
}

// DialerFunc adapts a function to EngineDialer.
type DialerFunc func(ctx context.Context, cfg EngineConfig) (EngineClient, error)

func (f DialerFunc) Dial(ctx context.Context, cfg EngineConfig) (EngineClient, error) {
	return f(ctx, cfg)
}
