package domain_test

import (
	"testing"

	"github.com/SscSPs/settlement_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerCodeFor(t *testing.T) {
	tests := []struct {
		code string
		want uint32
	}{
		{"KES", 404},
		{"ZAR", 710},
		{"USD", 840},
		{"kes", 404},
		{" ZAR ", 710},
		{"EUR", 840},
		{"", 840},
	}
	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.LedgerCodeFor(tt.code))
		})
	}
}

func TestSupportedCurrencies_AllResolveToOwnEntry(t *testing.T) {
	codes := domain.SupportedCurrencies()
	assert.ElementsMatch(t, []string{"USD", "KES", "ZAR"}, codes)
	for _, code := range codes {
		assert.Equal(t, code, domain.LookupCurrency(code).CurrencyCode)
	}
}

func TestCurrency_ToMinorUnits(t *testing.T) {
	usd := domain.LookupCurrency("USD")

	amount, err := usd.ToMinorUnits(decimal.NewFromInt(500))
	require.NoError(t, err)
	assert.Equal(t, "50000", amount.String())

	amount, err = usd.ToMinorUnits(decimal.RequireFromString("12.34"))
	require.NoError(t, err)
	assert.Equal(t, "1234", amount.String())

	_, err = usd.ToMinorUnits(decimal.RequireFromString("0.001"))
	assert.Error(t, err)

	_, err = usd.ToMinorUnits(decimal.NewFromInt(-1))
	assert.Error(t, err)
}

func TestCurrency_FromMinorUnits(t *testing.T) {
	kes := domain.LookupCurrency("KES")
	got := kes.FromMinorUnits(domain.AmountFromUint64(1234))
	assert.True(t, decimal.RequireFromString("12.34").Equal(got))
}
