package domain

// TransferFlags follows the engine's transfer flag bit layout.
type TransferFlags uint16

const (
	TransferLinked              TransferFlags = 1 << 0
	TransferPending             TransferFlags = 1 << 1
	TransferPostPendingTransfer TransferFlags = 1 << 2
	TransferVoidPendingTransfer TransferFlags = 1 << 3
)

// Has reports whether every bit of f is set.
func (t TransferFlags) Has(f TransferFlags) bool { return t&f == f }

// TransferCodeSettlement is the engine code on every settlement leg that specifies one.
const TransferCodeSettlement uint16 = 1

// Transfer is one directed movement of value from a debit account to a credit account.
// Finalizing transfers (post/void) leave DebitAccountID, CreditAccountID, Amount, Ledger
// and Code zero; the engine inherits them from the pending transfer named by PendingID.
type Transfer struct {
	ID              LedgerID
	DebitAccountID  LedgerID
	CreditAccountID LedgerID
	Amount          Amount
	PendingID       LedgerID
	UserData128     Correlation
	UserData64      uint64
	UserData32      uint32
	Timeout         uint32
	Ledger          uint32
	Code            uint16
	Flags           TransferFlags
	Timestamp       uint64
}

// IsFinalizing reports whether the transfer posts or voids a pending transfer.
func (t Transfer) IsFinalizing() bool {
	return t.Flags.Has(TransferPostPendingTransfer) || t.Flags.Has(TransferVoidPendingTransfer)
}

// TransferChain is an ordered batch submitted at once. Entries flagged Linked form an
// atomic unit with the entry that follows them.
type TransferChain []Transfer

// EntryResult is one per-entry failure reported by the engine. Accepted entries are
// not reported.
type EntryResult struct {
	Index uint32
	Code  uint32
}
