package accounting

import (
	"testing"

	"github.com/SscSPs/settlement_ledger/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

var usd = domain.LookupCurrency("USD")

func TestNetPostedAndAvailable(t *testing.T) {
	acc := domain.Account{
		CreditsPosted: domain.AmountFromUint64(50000),
		DebitsPosted:  domain.AmountFromUint64(10000),
		DebitsPending: domain.AmountFromUint64(15050),
	}

	assert.True(t, decimal.NewFromInt(400).Equal(NetPosted(acc, usd)))
	assert.True(t, decimal.RequireFromString("249.5").Equal(Available(acc, usd)))
}
