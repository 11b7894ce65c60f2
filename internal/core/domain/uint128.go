package domain

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/google/uuid"
)

// uint128 is an unsigned 128-bit value stored little-endian, the same layout the
// ledger engine uses on the wire.
type uint128 [16]byte

var maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))

func uint128FromBig(v *big.Int) (uint128, error) {
	var out uint128
	if v.Sign() < 0 || v.Cmp(maxUint128) > 0 {
		return out, fmt.Errorf("value %s does not fit in 128 bits", v.String())
	}
	var be [16]byte
	v.FillBytes(be[:])
	for i := 0; i < 16; i++ {
		out[i] = be[15-i]
	}
	return out, nil
}

func (u uint128) big() *big.Int {
	var be [16]byte
	for i := 0; i < 16; i++ {
		be[i] = u[15-i]
	}
	return new(big.Int).SetBytes(be[:])
}

func (u uint128) isZero() bool {
	return u == uint128{}
}

func (u uint128) isMax() bool {
	for _, b := range u {
		if b != 0xff {
			return false
		}
	}
	return true
}

// LedgerID is an engine account or transfer identifier. Values of this type are
// always derived or generated, never raw business keys.
type LedgerID uint128

// LedgerIDFromBytes builds an id from its little-endian bytes.
func LedgerIDFromBytes(b [16]byte) LedgerID { return LedgerID(b) }

// Bytes returns the little-endian representation.
func (id LedgerID) Bytes() [16]byte { return id }

// IsZero reports whether the id is unset.
func (id LedgerID) IsZero() bool { return uint128(id).isZero() }

// IsReserved reports whether the id is one the engine refuses (zero or all ones).
func (id LedgerID) IsReserved() bool { return uint128(id).isZero() || uint128(id).isMax() }

// Big returns the id as an unsigned big integer.
func (id LedgerID) Big() *big.Int { return uint128(id).big() }

func (id LedgerID) String() string { return id.Big().String() }

// Amount is an unsigned 128-bit quantity of minor currency units.
type Amount uint128

// AmountFromUint64 builds an amount from a native integer.
func AmountFromUint64(v uint64) Amount {
	var a Amount
	binary.LittleEndian.PutUint64(a[:8], v)
	return a
}

// AmountFromBig converts a non-negative integer that fits in 128 bits.
func AmountFromBig(v *big.Int) (Amount, error) {
	u, err := uint128FromBig(v)
	return Amount(u), err
}

// IsZero reports whether the amount is zero.
func (a Amount) IsZero() bool { return uint128(a).isZero() }

// Big returns the amount as an unsigned big integer.
func (a Amount) Big() *big.Int { return uint128(a).big() }

func (a Amount) String() string { return a.Big().String() }

// Correlation is the opaque userData value carried on accounts and transfers.
type Correlation uint128

// CorrelationFromNumeric parses a base-10 business key such as a settlement or
// participant id.
func CorrelationFromNumeric(key string) (Correlation, error) {
	v, ok := new(big.Int).SetString(key, 10)
	if !ok {
		return Correlation{}, fmt.Errorf("%q is not a numeric identifier", key)
	}
	u, err := uint128FromBig(v)
	if err != nil {
		return Correlation{}, fmt.Errorf("identifier %q: %w", key, err)
	}
	return Correlation(u), nil
}

// CorrelationFromUUID stores the 16 bytes of a UUID business key.
func CorrelationFromUUID(key string) (Correlation, error) {
	parsed, err := uuid.Parse(key)
	if err != nil {
		return Correlation{}, fmt.Errorf("%q is not a UUID: %w", key, err)
	}
	// UUID bytes are big-endian; reverse so the numeric value matches the textual form.
	var c Correlation
	for i := 0; i < 16; i++ {
		c[i] = parsed[15-i]
	}
	return c, nil
}

// Big returns the correlation value as an unsigned big integer.
func (c Correlation) Big() *big.Int { return uint128(c).big() }

func (c Correlation) String() string { return c.Big().String() }
