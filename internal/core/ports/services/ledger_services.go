package services

import (
	"context"

	"github.com/SscSPs/settlement_ledger/internal/core/domain"
)

// LedgerGatewaySvc gates every call to the ledger engine. Errors it returns are
// already in the domain taxonomy; per-entry results are returned untranslated.
type LedgerGatewaySvc interface {
	// CreateAccounts submits accounts and returns the per-entry failures.
	CreateAccounts(ctx context.Context, accounts []domain.Account) ([]domain.EntryResult, error)

	// LookupAccounts returns the accounts that exist among ids.
	LookupAccounts(ctx context.Context, ids []domain.LedgerID) ([]domain.Account, error)

	// CreateTransfers submits a chain and returns the per-entry failures.
	CreateTransfers(ctx context.Context, chain domain.TransferChain) ([]domain.EntryResult, error)

	// Shutdown releases the cached engine handle. Safe to call repeatedly.
	Shutdown()
}

// AccountProvisionerSvc creates and finds the accounts a settlement needs.
type AccountProvisionerSvc interface {
	// CreateHubAccount creates one hub-owned account.
	CreateHubAccount(ctx context.Context, req domain.HubAccountRequest) error

	// CreateParticipantSettlementAccounts creates every participant sub-account of a settlement in one batch.
	CreateParticipantSettlementAccounts(ctx context.Context, obligation domain.SettlementObligation) error

	// LookupHubAccount returns the hub account, or nil when it does not exist yet.
	LookupHubAccount(ctx context.Context, req domain.HubAccountRequest) (*domain.Account, error)
}

// TransferOrchestratorSvc drives a settlement transfer through its ledger lifecycle.
type TransferOrchestratorSvc interface {
	// PrepareTransfer records the obligation and forwards value to the participant settlement account.
	PrepareTransfer(ctx context.Context, t domain.SettlementTransfer) error

	// ReserveTransfer places the two-phase holds.
	ReserveTransfer(ctx context.Context, t domain.SettlementTransfer) error

	// CommitTransfer posts the holds placed by ReserveTransfer.
	CommitTransfer(ctx context.Context, ref domain.TransferRef) error

	// AbortTransfer voids the holds placed by ReserveTransfer.
	AbortTransfer(ctx context.Context, ref domain.TransferRef) error
}
