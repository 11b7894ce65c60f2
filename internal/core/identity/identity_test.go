package identity_test

import (
	"fmt"
	"math/rand"
	"testing"

	"github.com/SscSPs/settlement_ledger/internal/core/domain"
	"github.com/SscSPs/settlement_ledger/internal/core/identity"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeriveID_Deterministic(t *testing.T) {
	a := identity.AccountID("1", "USD", domain.HubReconciliation)
	b := identity.AccountID("1", "USD", domain.HubReconciliation)
	assert.Equal(t, a, b)

	s1 := identity.SettlementAccountID("100", "42")
	s2 := identity.SettlementAccountID("100", "42")
	assert.Equal(t, s1, s2)

	c1 := identity.ChainTransferID("42", "11111111-1111-1111-1111-111111111111", identity.LegParticipantToHub)
	c2 := identity.ChainTransferID("42", "11111111-1111-1111-1111-111111111111", identity.LegParticipantToHub)
	assert.Equal(t, c1, c2)
	assert.False(t, c1.IsReserved())
}

func TestDeriveID_SingleFieldChangesID(t *testing.T) {
	base := identity.ChainTransferID("42", "11111111-1111-1111-1111-111111111111", identity.LegParticipantToHub)

	tests := []struct {
		name string
		id   domain.LedgerID
	}{
		{"settlement id", identity.ChainTransferID("43", "11111111-1111-1111-1111-111111111111", identity.LegParticipantToHub)},
		{"transfer id", identity.ChainTransferID("42", "11111111-1111-1111-1111-111111111112", identity.LegParticipantToHub)},
		{"qualifier", identity.ChainTransferID("42", "11111111-1111-1111-1111-111111111111", identity.LegHubToReconciliation)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotEqual(t, base, tt.id)
		})
	}
}

func TestDeriveID_PartBoundariesMatter(t *testing.T) {
	assert.NotEqual(t, identity.DeriveID("ab", "c"), identity.DeriveID("a", "bc"))
	assert.NotEqual(t, identity.DeriveID("1", "23"), identity.DeriveID("12", "3"))
	assert.NotEqual(t, identity.DeriveID("x"), identity.DeriveID("x", ""))
}

func TestDeriveID_KindsAreSeparate(t *testing.T) {
	// Same business keys through different helpers must not meet.
	assert.NotEqual(t, identity.SettlementAccountID("100", "42"), identity.AccountID("100", "42", 0))
	assert.NotEqual(t,
		identity.SettlementAccountID("42", "1"),
		identity.ChainTransferID("42", "1", 0))
}

func TestDeriveID_NoCollisionsAcrossRandomCorpus(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := make(map[domain.LedgerID]string, 60000)
	record := func(id domain.LedgerID, input string) {
		prev, dup := seen[id]
		require.False(t, dup, "collision between %q and %q", prev, input)
		seen[id] = input
	}

	for i := 0; i < 20000; i++ {
		settlementID := fmt.Sprint(rng.Int63())
		participant := fmt.Sprint(rng.Int63())
		transferID := uuid.NewString()

		record(identity.SettlementAccountID(participant, settlementID), "sa:"+participant+"/"+settlementID)
		record(identity.ChainTransferID(settlementID, transferID, identity.LegParticipantToHub), "ct1:"+settlementID+"/"+transferID)
		record(identity.ChainTransferID(settlementID, transferID, identity.LegHubToReconciliation), "ct2:"+settlementID+"/"+transferID)
	}
	assert.Len(t, seen, 60000)
}

func TestDeriveID_UsesFullWidth(t *testing.T) {
	// A halved id space would leave the top bit clear on every id.
	topBitSet := false
	for i := 0; i < 64 && !topBitSet; i++ {
		id := identity.DeriveID("width", i)
		topBitSet = id.Bytes()[15]&0x80 != 0
	}
	assert.True(t, topBitSet)
}

func TestRandomID_Unique(t *testing.T) {
	seen := make(map[domain.LedgerID]bool)
	for i := 0; i < 1000; i++ {
		id := identity.RandomID()
		assert.False(t, id.IsReserved())
		assert.False(t, seen[id])
		seen[id] = true
	}
}

func TestDerivers_CanonicalizeBusinessKeys(t *testing.T) {
	const transferID = "11111111-1111-1111-1111-111111111111"

	assert.Equal(t, identity.SettlementAccountID("100", "42"), identity.SettlementAccountID("+100", "042"))
	assert.Equal(t,
		identity.ChainTransferID("42", transferID, identity.LegParticipantToHub),
		identity.ChainTransferID("0042", "11111111-1111-1111-1111-111111111111", identity.LegParticipantToHub))
	assert.Equal(t,
		identity.ChainTransferID("42", "aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee", identity.LegParticipantToHub),
		identity.ChainTransferID("42", "AAAAAAAA-BBBB-CCCC-DDDD-EEEEEEEEEEEE", identity.LegParticipantToHub))
	assert.Equal(t, identity.AccountID("1", "USD", domain.HubReconciliation), identity.AccountID("01", "usd", domain.HubReconciliation))
	assert.Equal(t, identity.AccountID("1", "KES", domain.Settlement), identity.AccountID("1", " kes ", domain.Settlement))

	// Codes without a table entry settle on the default ledger, so they share its accounts.
	assert.Equal(t, identity.AccountID("1", "USD", domain.Settlement), identity.AccountID("1", "EUR", domain.Settlement))
	assert.NotEqual(t, identity.AccountID("1", "USD", domain.Settlement), identity.AccountID("1", "ZAR", domain.Settlement))
}
