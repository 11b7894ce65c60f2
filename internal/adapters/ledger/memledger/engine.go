// Package memledger is an in-process double-entry engine with the batch semantics of
// the production ledger: linked chains apply atomically, pending transfers are posted
// or voided exactly once, ids are unique and balance limits are enforced. Result codes
// are those of the results package.
package memledger

import (
	"context"
	"sync"

	"github.com/SscSPs/settlement_ledger/internal/core/domain"
	"github.com/SscSPs/settlement_ledger/internal/core/ports/ledger"
	"github.com/SscSPs/settlement_ledger/internal/core/results"
)

type pendingState uint8

const (
	statePending pendingState = iota + 1
	statePosted
	stateVoided
)

// Engine holds every account and transfer in memory. It is safe for concurrent use;
// batches are applied one at a time.
type Engine struct {
	mu        sync.Mutex
	accounts  map[domain.LedgerID]*domain.Account
	transfers map[domain.LedgerID]domain.Transfer
	pending   map[domain.LedgerID]pendingState
	clock     uint64
}

// New returns an empty engine.
func New() *Engine {
	return &Engine{
		accounts:  make(map[domain.LedgerID]*domain.Account),
		transfers: make(map[domain.LedgerID]domain.Transfer),
		pending:   make(map[domain.LedgerID]pendingState),
	}
}

var _ ledger.EngineClient = (*Engine)(nil)

// Dialer hands out the engine itself, so every handle sees the same state.
func (e *Engine) Dialer() ledger.EngineDialer {
	return ledger.DialerFunc(func(context.Context, ledger.EngineConfig) (ledger.EngineClient, error) {
		return e, nil
	})
}

// Close is a no-op; state outlives handles.
func (e *Engine) Close() {}

// CreateAccounts applies the batch and reports every failed entry.
func (e *Engine) CreateAccounts(_ context.Context, accounts []domain.Account) ([]domain.EntryResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return applyBatch(len(accounts),
		func(i int) bool { return accounts[i].Flags.Has(domain.AccountLinked) },
		func(i int) (uint32, func()) { return e.createAccount(accounts[i]) },
		results.AccountLinkedEventFailed,
		results.AccountLinkedEventChainOpen,
	), nil
}

// LookupAccounts returns copies of the accounts found, in request order. Unknown ids are omitted.
func (e *Engine) LookupAccounts(_ context.Context, ids []domain.LedgerID) ([]domain.Account, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	out := make([]domain.Account, 0, len(ids))
	for _, id := range ids {
		if a, ok := e.accounts[id]; ok {
			out = append(out, *a)
		}
	}
	return out, nil
}

// CreateTransfers applies the batch and reports every failed entry.
func (e *Engine) CreateTransfers(_ context.Context, transfers []domain.Transfer) ([]domain.EntryResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return applyBatch(len(transfers),
		func(i int) bool { return transfers[i].Flags.Has(domain.TransferLinked) },
		func(i int) (uint32, func()) { return e.createTransfer(transfers[i]) },
		results.TransferLinkedEventFailed,
		results.TransferLinkedEventChainOpen,
	), nil
}

// Transfer returns a stored transfer. Finalizing transfers are stored with the fields
// they inherited from their pending transfer.
func (e *Engine) Transfer(id domain.LedgerID) (domain.Transfer, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	t, ok := e.transfers[id]
	return t, ok
}

// IsPending reports whether id is a pending transfer that has not been posted or voided.
func (e *Engine) IsPending(id domain.LedgerID) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.pending[id] == statePending
}

func (e *Engine) tick() uint64 {
	e.clock++
	return e.clock
}

// applyBatch walks the batch chain by chain. apply returns a result code and, on
// success, a function reverting its effects. A failure inside a chain reverts the
// chain's applied entries in reverse order; the failing entry keeps its own code and
// every other member reports linkedFailed. A chain still open at the end of the batch
// fails whole, its last entry reporting chainOpen.
func applyBatch(n int, linked func(int) bool, apply func(int) (uint32, func()), linkedFailed, chainOpen uint32) []domain.EntryResult {
	var out []domain.EntryResult
	for start := 0; start < n; {
		end := start
		for end < n && linked(end) {
			end++
		}
		if end == n {
			for i := start; i < n; i++ {
				code := linkedFailed
				if i == n-1 {
					code = chainOpen
				}
				out = append(out, domain.EntryResult{Index: uint32(i), Code: code})
			}
			break
		}

		var undo []func()
		failedAt, failCode := -1, uint32(0)
		for i := start; i <= end; i++ {
			code, revert := apply(i)
			if code != 0 {
				failedAt, failCode = i, code
				break
			}
			undo = append(undo, revert)
		}
		if failedAt >= 0 {
			for i := len(undo) - 1; i >= 0; i-- {
				undo[i]()
			}
			for i := start; i <= end; i++ {
				code := linkedFailed
				if i == failedAt {
					code = failCode
				}
				out = append(out, domain.EntryResult{Index: uint32(i), Code: code})
			}
		}
		start = end + 1
	}
	return out
}
