// Package chains builds the account batches and linked transfer chains submitted to
// the ledger engine for each phase of a settlement transfer. Builders take business
// keys only and derive every engine id themselves.
package chains

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SscSPs/settlement_ledger/internal/core/domain"
	"github.com/SscSPs/settlement_ledger/internal/core/identity"
)

// Hub identifies the hub accounts a settlement flows through.
type Hub struct {
	ID string
}

// ReconciliationAccountID is the hub-reconciliation account for a currency.
func (h Hub) ReconciliationAccountID(currencyCode string) domain.LedgerID {
	return identity.AccountID(h.ID, currencyCode, domain.HubReconciliation)
}

// MultilateralSettlementAccountID is the hub-multilateral-settlement account for a currency.
func (h Hub) MultilateralSettlementAccountID(currencyCode string) domain.LedgerID {
	return identity.AccountID(h.ID, currencyCode, domain.HubMultilateralSettlement)
}

// HubAccount builds the single account record of a hub account.
func HubAccount(req domain.HubAccountRequest) (domain.Account, error) {
	owner, err := domain.CorrelationFromNumeric(req.HubID)
	if err != nil {
		return domain.Account{}, err
	}
	return domain.Account{
		ID:          identity.AccountID(req.HubID, req.CurrencyCode, req.AccountType),
		UserData128: owner,
		Ledger:      domain.LedgerCodeFor(req.CurrencyCode),
		Code:        req.AccountType,
	}, nil
}

// ParticipantSettlementAccounts builds one sub-account per participant currency for a
// settlement. Entries are linked so the engine creates all of them or none.
func ParticipantSettlementAccounts(o domain.SettlementObligation) ([]domain.Account, error) {
	if len(o.Accounts) == 0 {
		return nil, errors.New("no participant currency accounts")
	}
	settlementID, err := domain.CorrelationFromNumeric(o.SettlementID)
	if err != nil {
		return nil, err
	}
	if !settlementID.Big().IsUint64() {
		return nil, fmt.Errorf("settlement id %s does not fit in 64 bits", o.SettlementID)
	}
	var flags domain.AccountFlags
	if o.DebitsMayNotExceedCredits {
		flags |= domain.AccountDebitsMustNotExceedCredits
	}
	ledger := domain.LedgerCodeFor(o.CurrencyCode)

	accounts := make([]domain.Account, 0, len(o.Accounts))
	seen := make(map[string]bool, len(o.Accounts))
	for _, pca := range o.Accounts {
		if pca.CurrencyCode != "" && !strings.EqualFold(strings.TrimSpace(pca.CurrencyCode), strings.TrimSpace(o.CurrencyCode)) {
			return nil, fmt.Errorf("participant currency %s is in %s, settlement is in %s", pca.ParticipantCurrencyID, pca.CurrencyCode, o.CurrencyCode)
		}
		owner, err := domain.CorrelationFromNumeric(pca.ParticipantCurrencyID)
		if err != nil {
			return nil, err
		}
		key := owner.String()
		if seen[key] {
			return nil, fmt.Errorf("participant currency %s listed twice", pca.ParticipantCurrencyID)
		}
		seen[key] = true

		accounts = append(accounts, domain.Account{
			ID:          identity.SettlementAccountID(pca.ParticipantCurrencyID, o.SettlementID),
			UserData128: owner,
			UserData64:  settlementID.Big().Uint64(),
			Ledger:      ledger,
			Code:        o.AccountType,
			Flags:       flags | domain.AccountLinked,
		})
	}
	accounts[len(accounts)-1].Flags &^= domain.AccountLinked
	return accounts, nil
}

// Prepare records the obligation against the hub and forwards the value to the
// participant's settlement account. Both legs post immediately.
func Prepare(h Hub, t domain.SettlementTransfer) (domain.TransferChain, error) {
	currency := domain.LookupCurrency(t.CurrencyCode)
	amount, err := currency.ToMinorUnits(t.Amount)
	if err != nil {
		return nil, err
	}
	settlementRef, err := domain.CorrelationFromNumeric(t.SettlementID)
	if err != nil {
		return nil, err
	}
	transferRef, err := domain.CorrelationFromUUID(t.SettlementTransferID)
	if err != nil {
		return nil, err
	}
	hubMLS := h.MultilateralSettlementAccountID(t.CurrencyCode)

	return domain.TransferChain{
		{
			ID:              identity.ChainTransferID(t.SettlementID, t.SettlementTransferID, identity.LegPrepareReconciliation),
			DebitAccountID:  h.ReconciliationAccountID(t.CurrencyCode),
			CreditAccountID: hubMLS,
			Amount:          amount,
			UserData128:     settlementRef,
			Ledger:          currency.LedgerCode,
			Code:            domain.TransferCodeSettlement,
			Flags:           domain.TransferLinked,
		},
		{
			ID:              identity.RandomID(),
			DebitAccountID:  hubMLS,
			CreditAccountID: identity.SettlementAccountID(t.ParticipantCurrencyID, t.SettlementID),
			Amount:          amount,
			UserData128:     transferRef,
			Ledger:          currency.LedgerCode,
			Code:            domain.TransferCodeSettlement,
		},
	}, nil
}

// Reserve holds the participant's value against the hub as two linked pending
// transfers whose ids commit and abort can recompute.
func Reserve(h Hub, t domain.SettlementTransfer) (domain.TransferChain, error) {
	currency := domain.LookupCurrency(t.CurrencyCode)
	amount, err := currency.ToMinorUnits(t.Amount)
	if err != nil {
		return nil, err
	}
	transferRef, err := domain.CorrelationFromUUID(t.SettlementTransferID)
	if err != nil {
		return nil, err
	}
	hubMLS := h.MultilateralSettlementAccountID(t.CurrencyCode)

	return domain.TransferChain{
		{
			ID:              identity.ChainTransferID(t.SettlementID, t.SettlementTransferID, identity.LegParticipantToHub),
			DebitAccountID:  identity.SettlementAccountID(t.ParticipantCurrencyID, t.SettlementID),
			CreditAccountID: hubMLS,
			Amount:          amount,
			UserData128:     transferRef,
			Ledger:          currency.LedgerCode,
			Code:            domain.TransferCodeSettlement,
			Flags:           domain.TransferPending | domain.TransferLinked,
		},
		{
			ID:              identity.ChainTransferID(t.SettlementID, t.SettlementTransferID, identity.LegHubToReconciliation),
			DebitAccountID:  hubMLS,
			CreditAccountID: h.ReconciliationAccountID(t.CurrencyCode),
			Amount:          amount,
			UserData128:     transferRef,
			Ledger:          currency.LedgerCode,
			Code:            domain.TransferCodeSettlement,
			Flags:           domain.TransferPending,
		},
	}, nil
}

// Commit posts both reserved legs.
func Commit(ref domain.TransferRef) (domain.TransferChain, error) {
	return finalize(ref, domain.TransferPostPendingTransfer, identity.LegCommitParticipant, identity.LegCommitReconciliation)
}

// Abort voids both reserved legs.
func Abort(ref domain.TransferRef) (domain.TransferChain, error) {
	return finalize(ref, domain.TransferVoidPendingTransfer, identity.LegAbortParticipant, identity.LegAbortReconciliation)
}

func finalize(ref domain.TransferRef, flag domain.TransferFlags, first, second identity.Qualifier) (domain.TransferChain, error) {
	transferRef, err := domain.CorrelationFromUUID(ref.SettlementTransferID)
	if err != nil {
		return nil, err
	}
	return domain.TransferChain{
		{
			ID:          identity.ChainTransferID(ref.SettlementID, ref.SettlementTransferID, first),
			PendingID:   identity.ChainTransferID(ref.SettlementID, ref.SettlementTransferID, identity.LegParticipantToHub),
			UserData128: transferRef,
			Flags:       flag | domain.TransferLinked,
		},
		{
			ID:          identity.ChainTransferID(ref.SettlementID, ref.SettlementTransferID, second),
			PendingID:   identity.ChainTransferID(ref.SettlementID, ref.SettlementTransferID, identity.LegHubToReconciliation),
			UserData128: transferRef,
			Flags:       flag,
		},
	}, nil
}

// Validate checks the shape invariants every submitted chain must hold.
func Validate(chain domain.TransferChain) error {
	if len(chain) == 0 {
		return errors.New("empty transfer chain")
	}
	if chain[len(chain)-1].Flags.Has(domain.TransferLinked) {
		return errors.New("last entry of a chain must not be linked")
	}
	finalized := make(map[domain.LedgerID]bool, len(chain))
	for i, t := range chain {
		if t.ID.IsReserved() {
			return fmt.Errorf("entry %d: reserved id", i)
		}
		post := t.Flags.Has(domain.TransferPostPendingTransfer)
		void := t.Flags.Has(domain.TransferVoidPendingTransfer)
		if post && void {
			return fmt.Errorf("entry %d: post and void are mutually exclusive", i)
		}
		if !post && !void {
			if !t.PendingID.IsZero() {
				return fmt.Errorf("entry %d: pending id set on a non-finalizing transfer", i)
			}
			if t.DebitAccountID == t.CreditAccountID {
				return fmt.Errorf("entry %d: debit and credit accounts must differ", i)
			}
			continue
		}
		if t.PendingID.IsZero() {
			return fmt.Errorf("entry %d: finalizing transfer without pending id", i)
		}
		if !t.DebitAccountID.IsZero() || !t.CreditAccountID.IsZero() || !t.Amount.IsZero() || t.Ledger != 0 || t.Code != 0 {
			return fmt.Errorf("entry %d: finalizing transfer must inherit accounts, amount, ledger and code", i)
		}
		if finalized[t.PendingID] {
			return fmt.Errorf("entry %d: pending transfer %s finalized twice", i, t.PendingID)
		}
		finalized[t.PendingID] = true
	}
	return nil
}
