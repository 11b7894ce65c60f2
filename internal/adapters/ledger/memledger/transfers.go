package memledger

import (
	"github.com/SscSPs/settlement_ledger/internal/core/domain"
	"github.com/SscSPs/settlement_ledger/internal/core/results"
)

const knownTransferFlags = domain.TransferLinked | domain.TransferPending |
	domain.TransferPostPendingTransfer | domain.TransferVoidPendingTransfer

func (e *Engine) createTransfer(t domain.Transfer) (uint32, func()) {
	if code := validateTransfer(t); code != results.TransferOK {
		return code, nil
	}
	if existing, ok := e.transfers[t.ID]; ok {
		return transferExists(t, existing), nil
	}
	if t.IsFinalizing() {
		return e.finalize(t)
	}
	return e.move(t)
}

func validateTransfer(t domain.Transfer) uint32 {
	post := t.Flags.Has(domain.TransferPostPendingTransfer)
	void := t.Flags.Has(domain.TransferVoidPendingTransfer)
	switch {
	case t.Timestamp != 0:
		return results.TransferTimestampMustBeZero
	case t.Flags&^knownTransferFlags != 0:
		return results.TransferReservedFlag
	case t.ID.IsZero():
		return results.TransferIDMustNotBeZero
	case t.ID.IsReserved():
		return results.TransferIDMustNotBeIntMax
	case post && void, (post || void) && t.Flags.Has(domain.TransferPending):
		return results.TransferFlagsAreMutuallyExclusive
	}

	if post || void {
		switch {
		case t.PendingID.IsZero():
			return results.TransferPendingIDMustNotBeZero
		case t.PendingID.IsReserved():
			return results.TransferPendingIDMustNotBeIntMax
		case t.PendingID == t.ID:
			return results.TransferPendingIDMustBeDifferent
		case t.Timeout != 0:
			return results.TransferTimeoutReservedForPendingTransfer
		}
		return results.TransferOK
	}

	switch {
	case !t.PendingID.IsZero():
		return results.TransferPendingIDMustBeZero
	case t.Timeout != 0 && !t.Flags.Has(domain.TransferPending):
		return results.TransferTimeoutReservedForPendingTransfer
	case t.DebitAccountID.IsZero():
		return results.TransferDebitAccountIDMustNotBeZero
	case t.DebitAccountID.IsReserved():
		return results.TransferDebitAccountIDMustNotBeIntMax
	case t.CreditAccountID.IsZero():
		return results.TransferCreditAccountIDMustNotBeZero
	case t.CreditAccountID.IsReserved():
		return results.TransferCreditAccountIDMustNotBeIntMax
	case t.DebitAccountID == t.CreditAccountID:
		return results.TransferAccountsMustBeDifferent
	case t.Amount.IsZero():
		return results.TransferAmountMustNotBeZero
	case t.Ledger == 0:
		return results.TransferLedgerMustNotBeZero
	case t.Code == 0:
		return results.TransferCodeMustNotBeZero
	}
	return results.TransferOK
}

// move applies a single-phase or pending transfer between two accounts.
func (e *Engine) move(t domain.Transfer) (uint32, func()) {
	dr, ok := e.accounts[t.DebitAccountID]
	if !ok {
		return results.TransferDebitAccountNotFound, nil
	}
	cr, ok := e.accounts[t.CreditAccountID]
	if !ok {
		return results.TransferCreditAccountNotFound, nil
	}
	if dr.Ledger != cr.Ledger {
		return results.TransferAccountsMustHaveTheSameLedger, nil
	}
	if t.Ledger != dr.Ledger {
		return results.TransferMustHaveTheSameLedgerAsAccounts, nil
	}

	next, nextCr := *dr, *cr
	pending := t.Flags.Has(domain.TransferPending)
	if pending {
		if next.DebitsPending, ok = add(dr.DebitsPending, t.Amount); !ok {
			return results.TransferOverflowsDebitsPending, nil
		}
		if nextCr.CreditsPending, ok = add(cr.CreditsPending, t.Amount); !ok {
			return results.TransferOverflowsCreditsPending, nil
		}
	} else {
		if next.DebitsPosted, ok = add(dr.DebitsPosted, t.Amount); !ok {
			return results.TransferOverflowsDebitsPosted, nil
		}
		if nextCr.CreditsPosted, ok = add(cr.CreditsPosted, t.Amount); !ok {
			return results.TransferOverflowsCreditsPosted, nil
		}
	}

	debits, ok := add(next.DebitsPending, next.DebitsPosted)
	if !ok {
		return results.TransferOverflowsDebits, nil
	}
	credits, ok := add(nextCr.CreditsPending, nextCr.CreditsPosted)
	if !ok {
		return results.TransferOverflowsCredits, nil
	}
	if dr.Flags.Has(domain.AccountDebitsMustNotExceedCredits) && greater(debits, dr.CreditsPosted) {
		return results.TransferExceedsCredits, nil
	}
	if cr.Flags.Has(domain.AccountCreditsMustNotExceedDebits) && greater(credits, cr.DebitsPosted) {
		return results.TransferExceedsDebits, nil
	}

	prevDr, prevCr := *dr, *cr
	*dr, *cr = next, nextCr
	stored := t
	stored.Timestamp = e.tick()
	e.transfers[t.ID] = stored
	if pending {
		e.pending[t.ID] = statePending
	}
	return results.TransferOK, func() {
		*dr, *cr = prevDr, prevCr
		delete(e.transfers, t.ID)
		delete(e.pending, t.ID)
	}
}

// finalize posts or voids a pending transfer. The stored record carries the accounts,
// ledger and code inherited from the pending transfer.
func (e *Engine) finalize(t domain.Transfer) (uint32, func()) {
	p, ok := e.transfers[t.PendingID]
	if !ok {
		return results.TransferPendingTransferNotFound, nil
	}
	switch {
	case !p.Flags.Has(domain.TransferPending):
		return results.TransferPendingTransferNotPending, nil
	case !t.DebitAccountID.IsZero() && t.DebitAccountID != p.DebitAccountID:
		return results.TransferPendingTransferHasDifferentDebitAccount, nil
	case !t.CreditAccountID.IsZero() && t.CreditAccountID != p.CreditAccountID:
		return results.TransferPendingTransferHasDifferentCreditAccount, nil
	case t.Ledger != 0 && t.Ledger != p.Ledger:
		return results.TransferPendingTransferHasDifferentLedger, nil
	case t.Code != 0 && t.Code != p.Code:
		return results.TransferPendingTransferHasDifferentCode, nil
	}

	post := t.Flags.Has(domain.TransferPostPendingTransfer)
	amount := p.Amount
	if !t.Amount.IsZero() {
		if post && greater(t.Amount, p.Amount) {
			return results.TransferExceedsPendingTransferAmount, nil
		}
		if !post && t.Amount != p.Amount {
			return results.TransferPendingTransferHasDifferentAmount, nil
		}
		amount = t.Amount
	}

	switch e.pending[p.ID] {
	case statePosted:
		return results.TransferPendingTransferAlreadyPosted, nil
	case stateVoided:
		return results.TransferPendingTransferAlreadyVoided, nil
	}

	dr, cr := e.accounts[p.DebitAccountID], e.accounts[p.CreditAccountID]
	next, nextCr := *dr, *cr
	next.DebitsPending = sub(dr.DebitsPending, p.Amount)
	nextCr.CreditsPending = sub(cr.CreditsPending, p.Amount)
	state := stateVoided
	if post {
		state = statePosted
		if next.DebitsPosted, ok = add(dr.DebitsPosted, amount); !ok {
			return results.TransferOverflowsDebitsPosted, nil
		}
		if nextCr.CreditsPosted, ok = add(cr.CreditsPosted, amount); !ok {
			return results.TransferOverflowsCreditsPosted, nil
		}
	}

	prevDr, prevCr := *dr, *cr
	*dr, *cr = next, nextCr
	stored := t
	stored.DebitAccountID = p.DebitAccountID
	stored.CreditAccountID = p.CreditAccountID
	stored.Amount = amount
	stored.Ledger = p.Ledger
	stored.Code = p.Code
	stored.Timestamp = e.tick()
	e.transfers[t.ID] = stored
	e.pending[p.ID] = state
	return results.TransferOK, func() {
		*dr, *cr = prevDr, prevCr
		delete(e.transfers, t.ID)
		e.pending[p.ID] = statePending
	}
}

// transferExists compares a resubmitted transfer with the stored one. Fields a
// finalizing transfer leaves zero were inherited and are not compared.
func transferExists(t, e domain.Transfer) uint32 {
	inherited := t.IsFinalizing()
	switch {
	case t.Flags != e.Flags:
		return results.TransferExistsWithDifferentFlags
	case !(inherited && t.DebitAccountID.IsZero()) && t.DebitAccountID != e.DebitAccountID:
		return results.TransferExistsWithDifferentDebitAccountID
	case !(inherited && t.CreditAccountID.IsZero()) && t.CreditAccountID != e.CreditAccountID:
		return results.TransferExistsWithDifferentCreditAccountID
	case !(inherited && t.Amount.IsZero()) && t.Amount != e.Amount:
		return results.TransferExistsWithDifferentAmount
	case t.PendingID != e.PendingID:
		return results.TransferExistsWithDifferentPendingID
	case t.UserData128 != e.UserData128:
		return results.TransferExistsWithDifferentUserData128
	case t.UserData64 != e.UserData64:
		return results.TransferExistsWithDifferentUserData64
	case t.UserData32 != e.UserData32:
		return results.TransferExistsWithDifferentUserData32
	case t.Timeout != e.Timeout:
		return results.TransferExistsWithDifferentTimeout
	case !(inherited && t.Code == 0) && t.Code != e.Code:
		return results.TransferExistsWithDifferentCode
	case !(inherited && t.Ledger == 0) && t.Ledger != e.Ledger:
		return results.TransferExistsWithDifferentLedger
	}
	return results.TransferExists
}
