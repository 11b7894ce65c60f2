package tigerbeetle

import (
	"testing"

	"github.com/SscSPs/settlement_ledger/internal/core/domain"
	"github.com/SscSPs/settlement_ledger/internal/core/identity"
	"github.com/stretchr/testify/assert"
	tbt "github.com/tigerbeetle/tigerbeetle-go/pkg/types"
)

func TestAmountLayoutMatchesClient(t *testing.T) {
	assert.Equal(t, tbt.ToUint128(50000), tbt.Uint128(domain.AmountFromUint64(50000)))
}

func TestFlagLayoutMatchesClient(t *testing.T) {
	assert.Equal(t, tbt.AccountFlags{Linked: true}.ToUint16(), uint16(domain.AccountLinked))
	assert.Equal(t, tbt.AccountFlags{DebitsMustNotExceedCredits: true}.ToUint16(), uint16(domain.AccountDebitsMustNotExceedCredits))
	assert.Equal(t, tbt.AccountFlags{CreditsMustNotExceedDebits: true}.ToUint16(), uint16(domain.AccountCreditsMustNotExceedDebits))
	assert.Equal(t, tbt.TransferFlags{Linked: true, Pending: true}.ToUint16(), uint16(domain.TransferLinked|domain.TransferPending))
	assert.Equal(t, tbt.TransferFlags{PostPendingTransfer: true}.ToUint16(), uint16(domain.TransferPostPendingTransfer))
	assert.Equal(t, tbt.TransferFlags{VoidPendingTransfer: true}.ToUint16(), uint16(domain.TransferVoidPendingTransfer))
}

func TestAccountRoundTrip(t *testing.T) {
	owner, err := domain.CorrelationFromNumeric("100")
	assert.NoError(t, err)
	in := domain.Account{
		ID:            identity.SettlementAccountID("100", "42"),
		CreditsPosted: domain.AmountFromUint64(7),
		UserData128:   owner,
		UserData64:    42,
		Ledger:        840,
		Code:          domain.Settlement,
		Flags:         domain.AccountLinked | domain.AccountDebitsMustNotExceedCredits,
		Timestamp:     99,
	}

	out := toAccount(in)
	assert.Equal(t, tbt.ToUint128(100), out.UserData128)
	assert.Equal(t, uint16(2), out.Code)
	assert.Equal(t, in, fromAccount(out))
}

func TestToTransfer(t *testing.T) {
	in := domain.Transfer{
		ID:        identity.ChainTransferID("42", "11111111-1111-1111-1111-111111111111", identity.LegCommitParticipant),
		PendingID: identity.ChainTransferID("42", "11111111-1111-1111-1111-111111111111", identity.LegParticipantToHub),
		Flags:     domain.TransferPostPendingTransfer | domain.TransferLinked,
	}

	out := toTransfer(in)
	assert.Equal(t, tbt.Uint128(in.ID.Bytes()), out.ID)
	assert.Equal(t, tbt.Uint128(in.PendingID.Bytes()), out.PendingID)
	assert.Equal(t, tbt.TransferFlags{Linked: true, PostPendingTransfer: true}.ToUint16(), out.Flags)
	assert.Equal(t, tbt.Uint128{}, out.Amount)
	assert.Zero(t, out.Ledger)
}
