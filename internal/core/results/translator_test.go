package results_test

import (
	"errors"
	"testing"

	"github.com/SscSPs/settlement_ledger/internal/apperrors"
	"github.com/SscSPs/settlement_ledger/internal/core/domain"
	"github.com/SscSPs/settlement_ledger/internal/core/results"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLabels(t *testing.T) {
	assert.Equal(t, "exists", results.AccountLabel(results.AccountExists))
	assert.Equal(t, "exists", results.TransferLabel(results.TransferExists))
	assert.Equal(t, "linked_event_failed", results.TransferLabel(1))
	assert.Equal(t, "pending_transfer_already_posted", results.TransferLabel(33))
	assert.Equal(t, "pending_transfer_already_voided", results.TransferLabel(34))
	assert.Equal(t, "exceeds_credits", results.TransferLabel(54))
	assert.Equal(t, "unknown_result_999", results.TransferLabel(999))
}

func TestLabels_TablesAreDense(t *testing.T) {
	for code := uint32(0); code <= results.AccountImportedEventTimestampMustNotRegress; code++ {
		assert.NotContains(t, results.AccountLabel(code), "unknown_result", "account code %d", code)
	}
	for code := uint32(0); code <= results.TransferIDAlreadyFailed; code++ {
		assert.NotContains(t, results.TransferLabel(code), "unknown_result", "transfer code %d", code)
	}
}

func TestTransferRejection(t *testing.T) {
	assert.NoError(t, results.TransferRejection("op", nil))

	err := results.TransferRejection("orchestrator.abort_transfer", []domain.EntryResult{
		{Index: 0, Code: results.TransferPendingTransferAlreadyPosted},
		{Index: 1, Code: results.TransferLinkedEventFailed},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrLedgerRejection))
	assert.False(t, errors.Is(err, apperrors.ErrDuplicate))

	se, ok := apperrors.AsSettlementError(err)
	require.True(t, ok)
	assert.Equal(t, []apperrors.EntryFailure{
		{Index: 0, Code: 33, Label: "pending_transfer_already_posted"},
		{Index: 1, Code: 1, Label: "linked_event_failed"},
	}, se.Failures)
	assert.Contains(t, err.Error(), "pending_transfer_already_posted")
}

func TestAccountRejection_Duplicate(t *testing.T) {
	err := results.AccountRejection("provisioner.create_hub_account", []domain.EntryResult{
		{Index: 0, Code: results.AccountExists},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrLedgerRejection))
	assert.True(t, errors.Is(err, apperrors.ErrDuplicate))
}
