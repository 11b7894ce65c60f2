// Package tigerbeetle connects the ledger ports to a TigerBeetle cluster.
package tigerbeetle

import (
	"context"
	"fmt"

	"github.com/SscSPs/settlement_ledger/internal/core/domain"
	"github.com/SscSPs/settlement_ledger/internal/core/ports/ledger"
	tb "github.com/tigerbeetle/tigerbeetle-go"
	tbt "github.com/tigerbeetle/tigerbeetle-go/pkg/types"
)

// Dialer creates TigerBeetle client handles.
type Dialer struct{}

var _ ledger.EngineDialer = Dialer{}

// Dial opens a client for the cluster. The client connects to replicas in the background,
// so a successful Dial does not prove the cluster is reachable.
func (Dialer) Dial(_ context.Context, cfg ledger.EngineConfig) (ledger.EngineClient, error) {
	if len(cfg.ReplicaAddresses) == 0 {
		return nil, fmt.Errorf("tigerbeetle: no replica addresses")
	}
	c, err := tb.NewClient(tbt.ToUint128(cfg.ClusterID), cfg.ReplicaAddresses)
	if err != nil {
		return nil, fmt.Errorf("tigerbeetle: create client: %w", err)
	}
	return &client{tb: c}, nil
}

type client struct {
	tb tb.Client
}

func (c *client) CreateAccounts(_ context.Context, accounts []domain.Account) ([]domain.EntryResult, error) {
	batch := make([]tbt.Account, len(accounts))
	for i, a := range accounts {
		batch[i] = toAccount(a)
	}
	res, err := c.tb.CreateAccounts(batch)
	if err != nil {
		return nil, err
	}
	out := make([]domain.EntryResult, 0, len(res))
	for _, r := range res {
		out = append(out, domain.EntryResult{Index: r.Index, Code: uint32(r.Result)})
	}
	return out, nil
}

func (c *client) LookupAccounts(_ context.Context, ids []domain.LedgerID) ([]domain.Account, error) {
	batch := make([]tbt.Uint128, len(ids))
	for i, id := range ids {
		batch[i] = tbt.Uint128(id.Bytes())
	}
	res, err := c.tb.LookupAccounts(batch)
	if err != nil {
		return nil, err
	}
	out := make([]domain.Account, len(res))
	for i, a := range res {
		out[i] = fromAccount(a)
	}
	return out, nil
}

func (c *client) CreateTransfers(_ context.Context, transfers []domain.Transfer) ([]domain.EntryResult, error) {
	batch := make([]tbt.Transfer, len(transfers))
	for i, t := range transfers {
		batch[i] = toTransfer(t)
	}
	res, err := c.tb.CreateTransfers(batch)
	if err != nil {
		return nil, err
	}
	out := make([]domain.EntryResult, 0, len(res))
	for _, r := range res {
		out = append(out, domain.EntryResult{Index: r.Index, Code: uint32(r.Result)})
	}
	return out, nil
}

func (c *client) Close() {
	c.tb.Close()
}
