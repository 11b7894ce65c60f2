package memledger

import (
	"math/big"

	"github.com/SscSPs/settlement_ledger/internal/core/domain"
)

// add returns a+b, or false when the sum does not fit in 128 bits.
func add(a, b domain.Amount) (domain.Amount, bool) {
	sum, err := domain.AmountFromBig(new(big.Int).Add(a.Big(), b.Big()))
	return sum, err == nil
}

// sub returns a-b. Callers guarantee b <= a.
func sub(a, b domain.Amount) domain.Amount {
	diff, _ := domain.AmountFromBig(new(big.Int).Sub(a.Big(), b.Big()))
	return diff
}

func greater(a, b domain.Amount) bool {
	return a.Big().Cmp(b.Big()) > 0
}
