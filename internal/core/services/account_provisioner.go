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

// AccountProvisioner creates hub accounts and per-settlement participant accounts.
type AccountProvisioner struct {
	BaseService
	gateway portssvc.LedgerGatewaySvc
}

// NewAccountProvisioner creates a provisioner submitting through gateway.
func NewAccountProvisioner(gateway portssvc.LedgerGatewaySvc, options ...Option) *AccountProvisioner {
	p := &AccountProvisioner{gateway: gateway}
	for _, option := range options {
		option(&p.BaseService)
	}
	return p
}

var _ portssvc.AccountProvisionerSvc = (*AccountProvisioner)(nil)

// CreateHubAccount creates one hub account. The account type defaults to SETTLEMENT.
// Creating the same account twice is rejected by the engine with "exists".
func (p *AccountProvisioner) CreateHubAccount(ctx context.Context, req domain.HubAccountRequest) error {
	const op = "provisioner.create_hub_account"
	if req.AccountType == 0 {
		req.AccountType = domain.Settlement
	}
	if err := validateInput(ctx, op, req); err != nil {
		p.LogError(ctx, err, "Invalid hub account request", slog.String("hub_id", req.HubID))
		return err
	}
	account, err := chains.HubAccount(req)
	if err != nil {
		return apperrors.NewProgrammingError(op, err)
	}

	entries, err := p.gateway.CreateAccounts(ctx, []domain.Account{account})
	if err != nil {
		return err
	}
	if err := results.AccountRejection(op, entries); err != nil {
		p.LogError(ctx, err, "Hub account rejected by ledger",
			slog.String("hub_id", req.HubID),
			slog.String("account_type", req.AccountType.String()),
			slog.String("currency", req.CurrencyCode))
		return err
	}

	p.LogInfo(ctx, "Hub account created",
		slog.String("hub_id", req.HubID),
		slog.String("account_type", req.AccountType.String()),
		slog.String("currency", req.CurrencyCode),
		slog.String("account_id", account.ID.String()))
	return nil
}

// CreateParticipantSettlementAccounts creates every participant sub-account of a settlement
// in a single linked batch. Any rejected entry fails the whole call.
func (p *AccountProvisioner) CreateParticipantSettlementAccounts(ctx context.Context, obligation domain.SettlementObligation) error {
	const op = "provisioner.create_participant_settlement_accounts"
	if err := validateInput(ctx, op, obligation); err != nil {
		p.LogError(ctx, err, "Invalid settlement obligation", slog.String("settlement_id", obligation.SettlementID))
		return err
	}
	accounts, err := chains.ParticipantSettlementAccounts(obligation)
	if err != nil {
		return apperrors.NewProgrammingError(op, err)
	}

	entries, err := p.gateway.CreateAccounts(ctx, accounts)
	if err != nil {
		return err
	}
	if err := results.AccountRejection(op, entries); err != nil {
		p.LogError(ctx, err, "Participant settlement accounts rejected by ledger",
			slog.String("settlement_id", obligation.SettlementID),
			slog.Int("accounts", len(accounts)))
		return err
	}

	p.LogInfo(ctx, "Participant settlement accounts created",
		slog.String("settlement_id", obligation.SettlementID),
		slog.String("currency", obligation.CurrencyCode),
		slog.Int("accounts", len(accounts)))
	return nil
}

// LookupHubAccount returns the hub account, or nil when it has not been created yet.
func (p *AccountProvisioner) LookupHubAccount(ctx context.Context, req domain.HubAccountRequest) (*domain.Account, error) {
	const op = "provisioner.lookup_hub_account"
	if req.AccountType == 0 {
		req.AccountType = domain.Settlement
	}
	if err := validateInput(ctx, op, req); err != nil {
		return nil, err
	}
	account, err := chains.HubAccount(req)
	if err != nil {
		return nil, apperrors.NewProgrammingError(op, err)
	}

	found, err := p.gateway.LookupAccounts(ctx, []domain.LedgerID{account.ID})
	if err != nil {
		return nil, err
	}
	for i := range found {
		if found[i].ID == account.ID {
			return &found[i], nil
		}
	}
	p.LogDebug(ctx, "Hub account not found",
		slog.String("hub_id", req.HubID),
		slog.String("account_id", account.ID.String()))
	return nil, nil
}
