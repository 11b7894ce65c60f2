package memledger

import (
	"github.com/SscSPs/settlement_ledger/internal/core/domain"
	"github.com/SscSPs/settlement_ledger/internal/core/results"
)

const knownAccountFlags = domain.AccountLinked | domain.AccountDebitsMustNotExceedCredits |
	domain.AccountCreditsMustNotExceedDebits | domain.AccountHistory

func (e *Engine) createAccount(a domain.Account) (uint32, func()) {
	if code := validateAccount(a); code != results.AccountOK {
		return code, nil
	}
	if existing, ok := e.accounts[a.ID]; ok {
		return accountExists(a, *existing), nil
	}

	stored := a
	stored.Timestamp = e.tick()
	e.accounts[a.ID] = &stored
	return results.AccountOK, func() { delete(e.accounts, a.ID) }
}

func validateAccount(a domain.Account) uint32 {
	switch {
	case a.Timestamp != 0:
		return results.AccountTimestampMustBeZero
	case a.Flags&^knownAccountFlags != 0:
		return results.AccountReservedFlag
	case a.ID.IsZero():
		return results.AccountIDMustNotBeZero
	case a.ID.IsReserved():
		return results.AccountIDMustNotBeIntMax
	case a.Flags.Has(domain.AccountDebitsMustNotExceedCredits | domain.AccountCreditsMustNotExceedDebits):
		return results.AccountFlagsAreMutuallyExclusive
	case !a.DebitsPending.IsZero():
		return results.AccountDebitsPendingMustBeZero
	case !a.DebitsPosted.IsZero():
		return results.AccountDebitsPostedMustBeZero
	case !a.CreditsPending.IsZero():
		return results.AccountCreditsPendingMustBeZero
	case !a.CreditsPosted.IsZero():
		return results.AccountCreditsPostedMustBeZero
	case a.Ledger == 0:
		return results.AccountLedgerMustNotBeZero
	case a.Code == 0:
		return results.AccountCodeMustNotBeZero
	}
	return results.AccountOK
}

func accountExists(a, e domain.Account) uint32 {
	switch {
	case a.Flags != e.Flags:
		return results.AccountExistsWithDifferentFlags
	case a.UserData128 != e.UserData128:
		return results.AccountExistsWithDifferentUserData128
	case a.UserData64 != e.UserData64:
		return results.AccountExistsWithDifferentUserData64
	case a.UserData32 != e.UserData32:
		return results.AccountExistsWithDifferentUserData32
	case a.Ledger != e.Ledger:
		return results.AccountExistsWithDifferentLedger
	case a.Code != e.Code:
		return results.AccountExistsWithDifferentCode
	}
	return results.AccountExists
}
