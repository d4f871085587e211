package application

import (
	"context"
	"testing"
	"time"

	"wallet-status/internal/adapter/storage/memory"
	"wallet-status/internal/config"
	"wallet-status/internal/domain"
	"wallet-status/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testAccount = "0x5aaeb6053f3e94c9b9a09f33669435e7ef1beaed"

type statusFixture struct {
	svc       *statusService
	providers *memory.ProviderStore
	txs       *memory.TransactionStore
	notifier  *memory.Notifier
}

func newStatusFixture(t *testing.T) statusFixture {
	t.Helper()
	return newStatusFixtureWithConfig(t, config.Config{})
}

func newStatusFixtureWithConfig(t *testing.T, cfg config.Config) statusFixture {
	t.Helper()
	logger := zap.NewNop()
	notifier := memory.NewNotifier()
	providers := memory.NewProviderStore(notifier, logger)
	txs := memory.NewTransactionStore(cfg, notifier, logger)
	ns, err := NewNetworkService(context.Background(), staticSource{networks: declaredNetworks}, nil, nil, logger, config.Config{})
	require.NoError(t, err)

	svc := NewStatusService(providers, txs, ns, notifier, logger).(*statusService)
	return statusFixture{svc: svc, providers: providers, txs: txs, notifier: notifier}
}

func (f statusFixture) connect(t *testing.T, chainID int64) {
	t.Helper()
	ctx := context.Background()
	one := int64(1)
	account := testAccount
	require.NoError(t, f.providers.PutContext(ctx, entity.ContextActive, entity.NetworkState{
		ChainID: &one, Active: true, Connector: entity.ConnectorInjected,
	}))
	require.NoError(t, f.providers.PutContext(ctx, entity.ContextInjected, entity.NetworkState{
		ChainID: &chainID, Account: &account, Active: true, Connector: entity.ConnectorInjected,
	}))
}

func TestStatusService_ResolveMissingChainID(t *testing.T) {
	f := newStatusFixture(t)

	_, err := f.svc.Resolve(context.Background())
	assert.ErrorIs(t, err, domain.ErrMissingChainID)
}

func TestStatusService_ResolveConnected(t *testing.T) {
	f := newStatusFixture(t)
	ctx := context.Background()
	f.connect(t, 1)
	require.NoError(t, f.txs.Add(ctx, entity.Transaction{Hash: "0x1", Owner: testAccount, Status: entity.TxPending}))
	require.NoError(t, f.txs.Add(ctx, entity.Transaction{Hash: "0x2", Owner: "0xDEF", Status: entity.TxConfirmed}))

	view, err := f.svc.Resolve(ctx)
	require.NoError(t, err)

	assert.Equal(t, entity.StatusConnected, view.Status.Kind)
	assert.Equal(t, testAccount, view.Status.Account)
	assert.Equal(t, "0x5aAe...eAed", view.DisplayAccount)
	require.Len(t, view.Status.Pending, 1)
	assert.Equal(t, "0x1", view.Status.Pending[0].Hash)
	assert.Empty(t, view.Status.Confirmed)
	assert.True(t, view.Status.HasPending)
	assert.True(t, view.Status.ShowIdentityIcon)
	require.NotNil(t, view.Network)
	assert.Equal(t, "Mainnet", view.Network.Name)
	assert.Equal(t, uint64(4), view.Version)
}

func TestStatusService_ResolveWrongNetwork(t *testing.T) {
	f := newStatusFixture(t)
	f.connect(t, 137)

	view, err := f.svc.Resolve(context.Background())
	require.NoError(t, err)
	assert.Equal(t, entity.StatusWrongNetwork, view.Status.Kind)
	assert.Nil(t, view.Network)
	assert.Empty(t, view.DisplayAccount)
}

func TestStatusService_ToggleWalletModal(t *testing.T) {
	f := newStatusFixture(t)
	ctx := context.Background()

	assert.True(t, f.svc.ToggleWalletModal(ctx))
	assert.False(t, f.svc.ToggleWalletModal(ctx))
	assert.True(t, f.svc.ToggleWalletModal(ctx))
	assert.Equal(t, uint64(3), f.notifier.Version())

	f.connect(t, 1)
	view, err := f.svc.Resolve(ctx)
	require.NoError(t, err)
	assert.True(t, view.WalletModalOpen)
}

func TestStatusService_RunPublishesOnChange(t *testing.T) {
	f := newStatusFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, views, unsubscribe := f.svc.Subscribe(16)
	defer unsubscribe()

	done := make(chan struct{})
	go func() {
		f.svc.Run(ctx)
		close(done)
	}()

	var got entity.StatusView
	require.Eventually(t, func() bool {
		f.connect(t, 1)
		select {
		case got = <-views:
			return true
		default:
			return false
		}
	}, 2*time.Second, 20*time.Millisecond)
	assert.Equal(t, entity.StatusConnected, got.Status.Kind)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not stop after cancellation")
	}

	for range views {
	}
}

func TestStatusService_DropsSlowSubscriber(t *testing.T) {
	f := newStatusFixture(t)
	ctx := context.Background()
	f.connect(t, 1)

	_, views, unsubscribe := f.svc.Subscribe(1)
	defer unsubscribe()

	f.svc.publish(ctx, entity.ChangeEvent{Source: entity.ChangeProvider})
	f.svc.publish(ctx, entity.ChangeEvent{Source: entity.ChangeProvider})

	_, ok := <-views
	assert.True(t, ok)
	_, ok = <-views
	assert.False(t, ok, "slow subscriber channel should be closed")
}

func TestStatusService_SkipsPublishWithoutChainID(t *testing.T) {
	f := newStatusFixture(t)

	_, views, unsubscribe := f.svc.Subscribe(1)
	f.svc.publish(context.Background(), entity.ChangeEvent{Source: entity.ChangeModal})

	select {
	case <-views:
		t.Fatal("nothing should be published without a chain id")
	default:
	}

	unsubscribe()
	unsubscribe()
	_, ok := <-views
	assert.False(t, ok)
}

func TestStatusService_RunPublishesConfirmedExpiry(t *testing.T) {
	f := newStatusFixtureWithConfig(t, config.Config{
		Cache:        config.CacheConfig{CleanupInterval: 10 * time.Millisecond},
		Transactions: config.TransactionsConfig{ConfirmedTTL: 50 * time.Millisecond},
	})
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	_, views, unsubscribe := f.svc.Subscribe(64)
	defer unsubscribe()
	go f.svc.Run(ctx)

	require.Eventually(t, func() bool {
		f.connect(t, 1)
		select {
		case <-views:
			return true
		default:
			return false
		}
	}, 2*time.Second, 20*time.Millisecond)

	require.NoError(t, f.txs.Add(ctx, entity.Transaction{Hash: "0x1", Owner: testAccount, Status: entity.TxConfirmed}))

	added := f.notifier.Version()

	deadline := time.After(2 * time.Second)
	for {
		select {
		case view := <-views:
			if view.Version > added {
				assert.Equal(t, entity.StatusConnected, view.Status.Kind)
				assert.Empty(t, view.Status.Confirmed)
				return
			}
		case <-deadline:
			t.Fatal("no view published after the confirmed transaction expired")
		}
	}
}

func TestStatusService_SubscribeAfterStop(t *testing.T) {
	f := newStatusFixture(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	f.svc.Run(ctx)

	_, views, unsubscribe := f.svc.Subscribe(1)
	defer unsubscribe()

	select {
	case _, ok := <-views:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("subscription after stop should be closed")
	}
}
