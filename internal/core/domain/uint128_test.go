package domain_test

import (
	"math/big"
	"testing"

	"github.com/SscSPs/settlement_ledger/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgerID_Reserved(t *testing.T) {
	var zero [16]byte
	assert.True(t, domain.LedgerIDFromBytes(zero).IsReserved())
	assert.True(t, domain.LedgerIDFromBytes(zero).IsZero())

	var max [16]byte
	for i := range max {
		max[i] = 0xff
	}
	assert.True(t, domain.LedgerIDFromBytes(max).IsReserved())
	assert.False(t, domain.LedgerIDFromBytes(max).IsZero())

	one := zero
	one[0] = 1
	assert.False(t, domain.LedgerIDFromBytes(one).IsReserved())
	assert.Equal(t, "1", domain.LedgerIDFromBytes(one).String())
}

func TestAmountFromBig(t *testing.T) {
	a, err := domain.AmountFromBig(big.NewInt(50000))
	require.NoError(t, err)
	assert.Equal(t, domain.AmountFromUint64(50000), a)

	_, err = domain.AmountFromBig(big.NewInt(-1))
	assert.Error(t, err)

	tooBig := new(big.Int).Lsh(big.NewInt(1), 128)
	_, err = domain.AmountFromBig(tooBig)
	assert.Error(t, err)
}

func TestCorrelationFromNumeric(t *testing.T) {
	c, err := domain.CorrelationFromNumeric("42")
	require.NoError(t, err)
	assert.Equal(t, "42", c.String())

	_, err = domain.CorrelationFromNumeric("forty-two")
	assert.Error(t, err)
}

func TestCorrelationFromUUID(t *testing.T) {
	c, err := domain.CorrelationFromUUID("00000000-0000-0000-0000-000000000101")
	require.NoError(t, err)
	assert.Equal(t, "257", c.String())

	_, err = domain.CorrelationFromUUID("not-a-uuid")
	assert.Error(t, err)
}
