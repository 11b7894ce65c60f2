package services_test

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/SscSPs/settlement_ledger/internal/adapters/ledger/memledger"
	"github.com/SscSPs/settlement_ledger/internal/apperrors"
	"github.com/SscSPs/settlement_ledger/internal/core/domain"
	"github.com/SscSPs/settlement_ledger/internal/core/ports/ledger"
	"github.com/SscSPs/settlement_ledger/internal/core/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingDialer hands out handles to one engine and counts dials.
type countingDialer struct {
	engine *memledger.Engine
	delay  time.Duration
	fail   atomic.Bool
	dials  atomic.Int32
	closes atomic.Int32
}

func (d *countingDialer) Dial(context.Context, ledger.EngineConfig) (ledger.EngineClient, error) {
	d.dials.Add(1)
	time.Sleep(d.delay)
	if d.fail.Load() {
		return nil, errors.New("connection refused")
	}
	return &countedClient{Engine: d.engine, closes: &d.closes}, nil
}

type countedClient struct {
	*memledger.Engine
	closes *atomic.Int32
}

func (c *countedClient) Close() { c.closes.Add(1) }

func enabledConfig() services.GatewayConfig {
	return services.GatewayConfig{
		Enabled: true,
		Engine:  ledger.EngineConfig{ClusterID: 0, ReplicaAddresses: []string{"3000"}},
	}
}

func TestLedgerGateway_Disabled(t *testing.T) {
	dialer := &countingDialer{engine: memledger.New()}
	gateway := services.NewLedgerGateway(services.GatewayConfig{Enabled: false}, dialer)

	_, err := gateway.CreateTransfers(context.Background(), domain.TransferChain{{}})
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)

	_, err = gateway.LookupAccounts(context.Background(), nil)
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)
	assert.Zero(t, dialer.dials.Load())
}

func TestLedgerGateway_MockAcceptsEverything(t *testing.T) {
	gateway := services.NewLedgerGateway(services.GatewayConfig{Enabled: true, Mock: true}, nil)

	res, err := gateway.CreateAccounts(context.Background(), []domain.Account{{}})
	require.NoError(t, err)
	assert.Empty(t, res)

	res, err = gateway.CreateTransfers(context.Background(), domain.TransferChain{{}, {}})
	require.NoError(t, err)
	assert.Empty(t, res)

	found, err := gateway.LookupAccounts(context.Background(), []domain.LedgerID{{1}})
	require.NoError(t, err)
	assert.Empty(t, found)
}

func TestLedgerGateway_NoDialer(t *testing.T) {
	gateway := services.NewLedgerGateway(enabledConfig(), nil)
	_, err := gateway.Connect(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrConfiguration)
}

func TestLedgerGateway_ConcurrentFirstUseDialsOnce(t *testing.T) {
	dialer := &countingDialer{engine: memledger.New(), delay: 50 * time.Millisecond}
	gateway := services.NewLedgerGateway(enabledConfig(), dialer)

	const callers = 32
	handles := make([]ledger.EngineClient, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c, err := gateway.Connect(context.Background())
			assert.NoError(t, err)
			handles[i] = c
		}(i)
	}
	wg.Wait()

	assert.Equal(t, int32(1), dialer.dials.Load())
	for _, h := range handles {
		assert.Same(t, handles[0], h)
	}
}

func TestLedgerGateway_FailedDialIsNotCached(t *testing.T) {
	dialer := &countingDialer{engine: memledger.New()}
	dialer.fail.Store(true)
	gateway := services.NewLedgerGateway(enabledConfig(), dialer)

	_, err := gateway.Connect(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrConnection)
	assert.NotErrorIs(t, err, apperrors.ErrConfiguration)

	dialer.fail.Store(false)
	c, err := gateway.Connect(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, c)
	assert.Equal(t, int32(2), dialer.dials.Load())
}

func TestLedgerGateway_ShutdownIsIdempotentAndRedials(t *testing.T) {
	dialer := &countingDialer{engine: memledger.New()}
	gateway := services.NewLedgerGateway(enabledConfig(), dialer)

	gateway.Shutdown()
	_, err := gateway.Connect(context.Background())
	require.NoError(t, err)

	gateway.Shutdown()
	gateway.Shutdown()
	assert.Equal(t, int32(1), dialer.closes.Load())

	_, err = gateway.Connect(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int32(2), dialer.dials.Load())
}

func TestLedgerGateway_CancelledContext(t *testing.T) {
	gateway := services.NewLedgerGateway(enabledConfig(), &countingDialer{engine: memledger.New()})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gateway.CreateTransfers(ctx, domain.TransferChain{{}})
	assert.ErrorIs(t, err, apperrors.ErrConnection)
	assert.ErrorIs(t, err, context.Canceled)
}
