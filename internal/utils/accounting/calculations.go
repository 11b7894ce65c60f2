package accounting

import (
	"github.com/SscSPs/settlement_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
)

// NetPosted is credits posted minus debits posted, in major units of currency.
// A participant settlement account funded by prepare shows a positive net position.
func NetPosted(acc domain.Account, currency domain.Currency) decimal.Decimal {
	return currency.FromMinorUnits(acc.CreditsPosted).Sub(currency.FromMinorUnits(acc.DebitsPosted))
}

// Available is the net position left once outstanding reservations are honoured.
// Pending credits are not counted until posted.
func Available(acc domain.Account, currency domain.Currency) decimal.Decimal {
	return NetPosted(acc, currency).Sub(currency.FromMinorUnits(acc.DebitsPending))
}
