// Package identity derives the engine ids of settlement accounts and transfer legs
// from business keys. Derivation is pure: the same keys always yield the same id, so
// resubmitting an operation is idempotent at the engine.
package identity

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/SscSPs/settlement_ledger/internal/core/domain"
	"github.com/google/uuid"
)

// Qualifier tells apart the legs derived from the same settlement transfer.
type Qualifier uint8

const (
	LegParticipantToHub      Qualifier = 1
	LegHubToReconciliation   Qualifier = 2
	LegPrepareReconciliation Qualifier = 3
	LegCommitParticipant     Qualifier = 4
	LegCommitReconciliation  Qualifier = 5
	LegAbortParticipant      Qualifier = 6
	LegAbortReconciliation   Qualifier = 7
)

// Kind tags keep account ids and transfer ids in separate hash domains.
const (
	kindAccount           = "account"
	kindSettlementAccount = "settlement-account"
	kindTransfer          = "transfer"
)

// DeriveID hashes the ordered parts into a 128-bit id. Each part is written with a
// length prefix so ("ab","c") and ("a","bc") never collide. The first 16 bytes of
// the SHA-256 digest are used whole; ids the engine reserves are re-hashed.
func DeriveID(parts ...any) domain.LedgerID {
	var buf []byte
	for _, p := range parts {
		s := fmt.Sprint(p)
		buf = binary.AppendUvarint(buf, uint64(len(s)))
		buf = append(buf, s...)
	}
	for round := byte(0); ; round++ {
		input := buf
		if round > 0 {
			input = append(append([]byte{}, buf...), round)
		}
		sum := sha256.Sum256(input)
		var raw [16]byte
		copy(raw[:], sum[:16])
		id := domain.LedgerIDFromBytes(raw)
		if !id.IsReserved() {
			return id
		}
	}
}

// AccountID is the id of the account owned by ownerRef in a currency with a role.
// The currency is resolved through the currency table first, so every spelling that
// lands on one ledger names the same account.
func AccountID(ownerRef, currencyCode string, accountType domain.AccountType) domain.LedgerID {
	return DeriveID(kindAccount, numericKey(ownerRef), domain.LookupCurrency(currencyCode).CurrencyCode, uint16(accountType))
}

// SettlementAccountID is the id of a participant's sub-account for one settlement.
func SettlementAccountID(participantCurrencyID, settlementID string) domain.LedgerID {
	return DeriveID(kindSettlementAccount, numericKey(participantCurrencyID), numericKey(settlementID))
}

// ChainTransferID is the id of one leg of a settlement transfer chain.
func ChainTransferID(settlementID, settlementTransferID string, q Qualifier) domain.LedgerID {
	return DeriveID(kindTransfer, numericKey(settlementID), uuidKey(settlementTransferID), uint8(q))
}

// numericKey renders a base-10 key in canonical form: "042", "+42" and "42" are one key.
// Keys that do not parse are hashed as given; builders reject them before submission.
func numericKey(key string) string {
	if v, ok := new(big.Int).SetString(key, 10); ok {
		return v.String()
	}
	return key
}

// uuidKey renders a UUID key in its lower-case hyphenated form.
func uuidKey(key string) string {
	if u, err := uuid.Parse(key); err == nil {
		return u.String()
	}
	return key
}

// RandomID returns a fresh id for legs nothing will ever need to look up again.
func RandomID() domain.LedgerID {
	for {
		id := domain.LedgerIDFromBytes(uuid.New())
		if !id.IsReserved() {
			return id
		}
	}
}
