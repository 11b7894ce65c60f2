package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/settlement_ledger/internal/apperrors"
	"github.com/SscSPs/settlement_ledger/internal/core/chains"
	"github.com/SscSPs/settlement_ledger/internal/core/domain"
	portssvc "github.com/SscSPs/settlement_ledger/internal/core/ports/services"
	"github.com/SscSPs/settlement_ledger/internal/core/results"
)

// TransferOrchestrator submits the linked chain of each lifecycle step of a
// settlement transfer. It keeps no state between calls; commit and abort locate
// the reservation by recomputing its leg ids.
type TransferOrchestrator struct {
	BaseService
	hub     chains.Hub
	gateway portssvc.LedgerGatewaySvc
}

// NewTransferOrchestrator creates an orchestrator routing value through hub's accounts.
func NewTransferOrchestrator(hub chains.Hub, gateway portssvc.LedgerGatewaySvc, options ...Option) *TransferOrchestrator {
	o := &TransferOrchestrator{hub: hub, gateway: gateway}
	for _, option := range options {
		option(&o.BaseService)
	}
	return o
}

var _ portssvc.TransferOrchestratorSvc = (*TransferOrchestrator)(nil)

// PrepareTransfer records the obligation against the hub and forwards the value to the
// participant's settlement account.
func (o *TransferOrchestrator) PrepareTransfer(ctx context.Context, t domain.SettlementTransfer) error {
	const op = "orchestrator.prepare_transfer"
	if err := validateInput(ctx, op, t); err != nil {
		o.LogError(ctx, err, "Invalid settlement transfer", transferAttrs(t.Ref())...)
		return err
	}
	chain, err := chains.Prepare(o.hub, t)
	if err != nil {
		return apperrors.NewProgrammingError(op, err)
	}
	return o.submit(ctx, op, t.Ref(), chain)
}

// ReserveTransfer places the two linked pending legs.
func (o *TransferOrchestrator) ReserveTransfer(ctx context.Context, t domain.SettlementTransfer) error {
	const op = "orchestrator.reserve_transfer"
	if err := validateInput(ctx, op, t); err != nil {
		o.LogError(ctx, err, "Invalid settlement transfer", transferAttrs(t.Ref())...)
		return err
	}
	chain, err := chains.Reserve(o.hub, t)
	if err != nil {
		return apperrors.NewProgrammingError(op, err)
	}
	return o.submit(ctx, op, t.Ref(), chain)
}

// CommitTransfer posts both reserved legs.
func (o *TransferOrchestrator) CommitTransfer(ctx context.Context, ref domain.TransferRef) error {
	const op = "orchestrator.commit_transfer"
	if err := validateInput(ctx, op, ref); err != nil {
		o.LogError(ctx, err, "Invalid transfer reference", transferAttrs(ref)...)
		return err
	}
	chain, err := chains.Commit(ref)
	if err != nil {
		return apperrors.NewProgrammingError(op, err)
	}
	return o.submit(ctx, op, ref, chain)
}

// AbortTransfer voids both reserved legs.
func (o *TransferOrchestrator) AbortTransfer(ctx context.Context, ref domain.TransferRef) error {
	const op = "orchestrator.abort_transfer"
	if err := validateInput(ctx, op, ref); err != nil {
		o.LogError(ctx, err, "Invalid transfer reference", transferAttrs(ref)...)
		return err
	}
	chain, err := chains.Abort(ref)
	if err != nil {
		return apperrors.NewProgrammingError(op, err)
	}
	return o.submit(ctx, op, ref, chain)
}

func (o *TransferOrchestrator) submit(ctx context.Context, op string, ref domain.TransferRef, chain domain.TransferChain) error {
	if err := chains.Validate(chain); err != nil {
		err = apperrors.NewProgrammingError(op, err)
		o.LogError(ctx, err, "Malformed transfer chain", transferAttrs(ref)...)
		return err
	}

	entries, err := o.gateway.CreateTransfers(ctx, chain)
	if err != nil {
		return err
	}
	if err := results.TransferRejection(op, entries); err != nil {
		o.LogError(ctx, err, "Transfer chain rejected by ledger", transferAttrs(ref, slog.String("op", op))...)
		return err
	}

	o.LogInfo(ctx, "Transfer chain accepted", transferAttrs(ref, slog.String("op", op), slog.Int("legs", len(chain)))...)
	return nil
}

func transferAttrs(ref domain.TransferRef, extra ...any) []any {
	return append([]any{
		slog.String("settlement_id", ref.SettlementID),
		slog.String("settlement_transfer_id", ref.SettlementTransferID),
	}, extra...)
}
