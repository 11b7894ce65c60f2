package tigerbeetle

import (
	"github.com/SscSPs/settlement_ledger/internal/core/domain"
	tbt "github.com/tigerbeetle/tigerbeetle-go/pkg/types"
)

// Domain 128-bit values share the client's little-endian layout, and domain flag
// bits are the client's, so both convert without arithmetic.

func toAccount(a domain.Account) tbt.Account {
	return tbt.Account{
		ID:             tbt.Uint128(a.ID),
		DebitsPending:  tbt.Uint128(a.DebitsPending),
		DebitsPosted:   tbt.Uint128(a.DebitsPosted),
		CreditsPending: tbt.Uint128(a.CreditsPending),
		CreditsPosted:  tbt.Uint128(a.CreditsPosted),
		UserData128:    tbt.Uint128(a.UserData128),
		UserData64:     a.UserData64,
		UserData32:     a.UserData32,
		Ledger:         a.Ledger,
		Code:           uint16(a.Code),
		Flags:          uint16(a.Flags),
		Timestamp:      a.Timestamp,
	}
}

func fromAccount(a tbt.Account) domain.Account {
	return domain.Account{
		ID:             domain.LedgerID(a.ID),
		DebitsPending:  domain.Amount(a.DebitsPending),
		DebitsPosted:   domain.Amount(a.DebitsPosted),
		CreditsPending: domain.Amount(a.CreditsPending),
		CreditsPosted:  domain.Amount(a.CreditsPosted),
		UserData128:    domain.Correlation(a.UserData128),
		UserData64:     a.UserData64,
		UserData32:     a.UserData32,
		Ledger:         a.Ledger,
		Code:           domain.AccountType(a.Code),
		Flags:          domain.AccountFlags(a.Flags),
		Timestamp:      a.Timestamp,
	}
}

func toTransfer(t domain.Transfer) tbt.Transfer {
	return tbt.Transfer{
		ID:              tbt.Uint128(t.ID),
		DebitAccountID:  tbt.Uint128(t.DebitAccountID),
		CreditAccountID: tbt.Uint128(t.CreditAccountID),
		Amount:          tbt.Uint128(t.Amount),
		PendingID:       tbt.Uint128(t.PendingID),
		UserData128:     tbt.Uint128(t.UserData128),
		UserData64:      t.UserData64,
		UserData32:      t.UserData32,
		Timeout:         t.Timeout,
		Ledger:          t.Ledger,
		Code:            t.Code,
		Flags:           uint16(t.Flags),
		Timestamp:       t.Timestamp,
	}
}
