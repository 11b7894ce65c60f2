package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Currency maps an ISO 4217 code to the ledger the engine keeps its balances on.
type Currency struct {
	CurrencyCode string `json:"currencyCode"` // e.g., "USD"
	LedgerCode   uint32 `json:"ledgerCode"`   // ISO 4217 numeric code, used as the engine ledger
	Scale        int32  `json:"scale"`        // minor-unit digits
}

// DefaultCurrency is used for any code missing from the table.
var DefaultCurrency = Currency{CurrencyCode: "USD", LedgerCode: 840, Scale: 2}

// currencies is the closed set of settlement currencies. Add entries here to support more.
var currencies = map[string]Currency{
	"USD": DefaultCurrency,
	"KES": {CurrencyCode: "KES", LedgerCode: 404, Scale: 2},
	"ZAR": {CurrencyCode: "ZAR", LedgerCode: 710, Scale: 2},
}

// LookupCurrency resolves a currency code, falling back to DefaultCurrency.
func LookupCurrency(code string) Currency {
	if c, ok := currencies[strings.ToUpper(strings.TrimSpace(code))]; ok {
		return c
	}
	return DefaultCurrency
}

// LedgerCodeFor returns the engine ledger for a currency code.
func LedgerCodeFor(code string) uint32 {
	return LookupCurrency(code).LedgerCode
}

// SupportedCurrencies lists the codes with an explicit table entry.
func SupportedCurrencies() []string {
	out := make([]string, 0, len(currencies))
	for code := range currencies {
		out = append(out, code)
	}
	return out
}

// ToMinorUnits converts a major-unit amount into engine minor units.
func (c Currency) ToMinorUnits(amount decimal.Decimal) (Amount, error) {
	if amount.IsNegative() {
		return Amount{}, fmt.Errorf("amount %s must not be negative", amount.String())
	}
	shifted := amount.Shift(c.Scale)
	if !shifted.Equal(shifted.Truncate(0)) {
		return Amount{}, fmt.Errorf("amount %s has more than %d decimal places for %s", amount.String(), c.Scale, c.CurrencyCode)
	}
	return AmountFromBig(shifted.BigInt())
}

// FromMinorUnits converts engine minor units back to a major-unit amount.
func (c Currency) FromMinorUnits(a Amount) decimal.Decimal {
	return decimal.NewFromBigInt(a.Big(), -c.Scale)
}
