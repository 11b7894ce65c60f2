package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// Failure kinds carried by SettlementError. Match them with errors.Is.
var (
	// ErrConfiguration means the ledger integration is administratively disabled or misconfigured.
	ErrConfiguration = errors.New("ledger configuration error")
	// ErrConnection means the ledger engine is unreachable or the client handle could not be created.
	ErrConnection = errors.New("ledger connection error")
	// ErrLedgerRejection means the engine rejected one or more entries of a batch.
	ErrLedgerRejection = errors.New("ledger rejection")
	// ErrProgramming means malformed input was detected before anything was submitted.
	ErrProgramming = errors.New("programming error")
)

// EntryFailure is one rejected entry of a batch.
type EntryFailure struct {
	Index uint32 `json:"index"`
	Code  uint32 `json:"code"`
	Label string `json:"label"`
}

// SettlementError is the single error type returned across the orchestration boundary.
type SettlementError struct {
	Kind     error
	Op       string
	Message  string
	Failures []EntryFailure
	Err      error
}

func (e *SettlementError) Error() string {
	var b strings.Builder
	if e.Op != "" {
		b.WriteString(e.Op)
		b.WriteString(": ")
	}
	if e.Kind != nil {
		b.WriteString(e.Kind.Error())
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if len(e.Failures) > 0 {
		parts := make([]string, len(e.Failures))
		for i, f := range e.Failures {
			parts[i] = fmt.Sprintf("#%d %s(%d)", f.Index, f.Label, f.Code)
		}
		b.WriteString(" [")
		b.WriteString(strings.Join(parts, ", "))
		b.WriteString("]")
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *SettlementError) Unwrap() error {
	return e.Err
}

// Is matches the error kind. A rejection caused only by entries that already exist
// with identical fields also matches ErrDuplicate; chain members failed by their
// neighbour do not count. An exists_with_different_* result is a conflict, not a retry.
func (e *SettlementError) Is(target error) bool {
	if target == e.Kind {
		return true
	}
	if target != ErrDuplicate || e.Kind != ErrLedgerRejection {
		return false
	}
	exists := false
	for _, f := range e.Failures {
		switch f.Label {
		case "exists":
			exists = true
		case "linked_event_failed":
		default:
			return false
		}
	}
	return exists
}

// NewConfigurationError reports a disabled or misconfigured ledger integration.
func NewConfigurationError(op, message string) *SettlementError {
	return &SettlementError{Kind: ErrConfiguration, Op: op, Message: message}
}

// NewConnectionError wraps a failure to reach the engine.
func NewConnectionError(op string, err error) *SettlementError {
	return &SettlementError{Kind: ErrConnection, Op: op, Message: "ledger engine unavailable", Err: err}
}

// NewLedgerRejection reports per-entry rejections of a batch.
func NewLedgerRejection(op string, failures []EntryFailure) *SettlementError {
	return &SettlementError{
		Kind:     ErrLedgerRejection,
		Op:       op,
		Message:  fmt.Sprintf("%d entr%s rejected", len(failures), plural(len(failures))),
		Failures: failures,
	}
}

// NewProgrammingError reports malformed input detected before submission.
func NewProgrammingError(op string, err error) *SettlementError {
	return &SettlementError{Kind: ErrProgramming, Op: op, Message: "invalid input", Err: err}
}

// AsSettlementError extracts the domain error from an error chain.
func AsSettlementError(err error) (*SettlementError, bool) {
	var se *SettlementError
	if errors.As(err, &se) {
		return se, true
	}
	return nil, false
}

func plural(n int) string {
	if n == 1 {
		return "y"
	}
	return "ies"
}
