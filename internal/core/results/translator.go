// Package results turns the numeric per-entry codes reported by the ledger engine
// into labelled failures, and those into the rejection error callers match on.
package results

import (
	"fmt"

	"github.com/SscSPs/settlement_ledger/internal/apperrors"
	"github.com/SscSPs/settlement_ledger/internal/core/domain"
)

// AccountLabel returns the name of an account creation result code.
func AccountLabel(code uint32) string {
	return label(accountLabels, code)
}

// TransferLabel returns the name of a transfer creation result code.
func TransferLabel(code uint32) string {
	return label(transferLabels, code)
}

func label(table map[uint32]string, code uint32) string {
	if l, ok := table[code]; ok {
		return l
	}
	return fmt.Sprintf("unknown_result_%d", code)
}

// TranslateAccountResults labels every account entry failure.
func TranslateAccountResults(entries []domain.EntryResult) []apperrors.EntryFailure {
	return translate(accountLabels, entries)
}

// TranslateTransferResults labels every transfer entry failure.
func TranslateTransferResults(entries []domain.EntryResult) []apperrors.EntryFailure {
	return translate(transferLabels, entries)
}

func translate(table map[uint32]string, entries []domain.EntryResult) []apperrors.EntryFailure {
	if len(entries) == 0 {
		return nil
	}
	failures := make([]apperrors.EntryFailure, 0, len(entries))
	for _, e := range entries {
		failures = append(failures, apperrors.EntryFailure{
			Index: e.Index,
			Code:  e.Code,
			Label: label(table, e.Code),
		})
	}
	return failures
}

// AccountRejection returns nil when the batch was fully accepted, otherwise a
// LedgerRejection listing every failed entry in submission order.
func AccountRejection(op string, entries []domain.EntryResult) error {
	if failures := TranslateAccountResults(entries); len(failures) > 0 {
		return apperrors.NewLedgerRejection(op, failures)
	}
	return nil
}

// TransferRejection is AccountRejection for transfer batches.
func TransferRejection(op string, entries []domain.EntryResult) error {
	if failures := TranslateTransferResults(entries); len(failures) > 0 {
		return apperrors.NewLedgerRejection(op, failures)
	}
	return nil
}
