package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/settlement_ledger/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestSettlementError_Is(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind error
	}{
		{"configuration", apperrors.NewConfigurationError("op", "disabled"), apperrors.ErrConfiguration},
		{"connection", apperrors.NewConnectionError("op", errors.New("dial tcp: refused")), apperrors.ErrConnection},
		{"rejection", apperrors.NewLedgerRejection("op", []apperrors.EntryFailure{{Index: 0, Code: 21, Label: "debit_account_not_found"}}), apperrors.ErrLedgerRejection},
		{"programming", apperrors.NewProgrammingError("op", errors.New("bad id")), apperrors.ErrProgramming},
	}
	kinds := []error{apperrors.ErrConfiguration, apperrors.ErrConnection, apperrors.ErrLedgerRejection, apperrors.ErrProgramming}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wrapped := fmt.Errorf("handler: %w", tt.err)
			for _, k := range kinds {
				assert.Equal(t, k == tt.kind, errors.Is(wrapped, k), "kind %v", k)
			}
			_, ok := apperrors.AsSettlementError(wrapped)
			assert.True(t, ok)
		})
	}
}

func TestSettlementError_Unwrap(t *testing.T) {
	cause := errors.New("connection reset")
	err := apperrors.NewConnectionError("ledger.create_transfers", cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "ledger.create_transfers")
	assert.Contains(t, err.Error(), "connection reset")
}

func TestSettlementError_Duplicate(t *testing.T) {
	tests := []struct {
		name     string
		failures []apperrors.EntryFailure
		want     bool
	}{
		{"single exists", []apperrors.EntryFailure{{Label: "exists"}}, true},
		{"exists with linked failure", []apperrors.EntryFailure{{Index: 0, Label: "exists"}, {Index: 1, Label: "linked_event_failed"}}, true},
		{"conflicting exists", []apperrors.EntryFailure{{Label: "exists_with_different_amount"}}, false},
		{"conflicting exists in a chain", []apperrors.EntryFailure{{Index: 0, Label: "exists_with_different_amount"}, {Index: 1, Label: "linked_event_failed"}}, false},
		{"account with different flags", []apperrors.EntryFailure{{Label: "exists_with_different_flags"}}, false},
		{"exists beside a conflict", []apperrors.EntryFailure{{Label: "exists"}, {Label: "exists_with_different_pending_id"}}, false},
		{"only linked failures", []apperrors.EntryFailure{{Label: "linked_event_failed"}}, false},
		{"other rejection", []apperrors.EntryFailure{{Label: "exists"}, {Label: "exceeds_credits"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := apperrors.NewLedgerRejection("op", tt.failures)
			assert.Equal(t, tt.want, errors.Is(err, apperrors.ErrDuplicate))
		})
	}

	assert.False(t, errors.Is(apperrors.NewProgrammingError("op", errors.New("x")), apperrors.ErrDuplicate))
}

func TestNewLedgerRejection_Message(t *testing.T) {
	one := apperrors.NewLedgerRejection("op", []apperrors.EntryFailure{{Index: 0, Code: 21, Label: "exists"}})
	assert.Contains(t, one.Error(), "1 entry rejected")
	assert.Contains(t, one.Error(), "#0 exists(21)")

	two := apperrors.NewLedgerRejection("op", make([]apperrors.EntryFailure, 2))
	assert.Contains(t, two.Error(), "2 entries rejected")
}
