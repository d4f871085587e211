package application

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"wallet-status/internal/adapter/storage/memory"
	"wallet-status/internal/config"
	"wallet-status/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type staticSource struct {
	networks []entity.Network
	err      error
}

func (s staticSource) LoadNetworks(context.Context) ([]entity.Network, error) {
	return s.networks, s.err
}

type fakeChainRepo struct {
	networks []entity.Network
	err      error
	calls    atomic.Int32
}

func (f *fakeChainRepo) GetAllChains(context.Context) ([]entity.Network, error) {
	f.calls.Add(1)
	return f.networks, f.err
}

var declaredNetworks = []entity.Network{
	{ChainID: 1, Name: "Mainnet"},
	{ChainID: 4},
}

func TestNetworkService_WithoutChainlist(t *testing.T) {
	ns, err := NewNetworkService(context.Background(), staticSource{networks: declaredNetworks}, nil, nil, zap.NewNop(), config.Config{})
	require.NoError(t, err)
	ctx := context.Background()

	supported, err := ns.SupportedChainIDs(ctx)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 4}, supported.IDs())

	networks, err := ns.Networks(ctx)
	require.NoError(t, err)
	assert.Equal(t, declaredNetworks, networks)

	n, ok := ns.Lookup(ctx, 1)
	assert.True(t, ok)
	assert.Equal(t, "Mainnet", n.Name)

	_, ok = ns.Lookup(ctx, 137)
	assert.False(t, ok)
}

func TestNetworkService_SupportedSetIsACopy(t *testing.T) {
	ns, err := NewNetworkService(context.Background(), staticSource{networks: declaredNetworks}, nil, nil, zap.NewNop(), config.Config{})
	require.NoError(t, err)

	supported, err := ns.SupportedChainIDs(context.Background())
	require.NoError(t, err)
	supported[137] = struct{}{}

	again, err := ns.SupportedChainIDs(context.Background())
	require.NoError(t, err)
	assert.False(t, again.Contains(137))
}

func TestNetworkService_LoadFailure(t *testing.T) {
	_, err := NewNetworkService(context.Background(), staticSource{err: errors.New("boom")}, nil, nil, zap.NewNop(), config.Config{})
	assert.Error(t, err)
}

func TestNetworkService_EnrichesFromChainlist(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Config{
		Cache:     config.CacheConfig{DefaultExpiration: time.Minute},
		Chainlist: config.ChainlistConfig{Enabled: true, Timeout: time.Second, CacheTTL: time.Minute},
	}
	chains := &fakeChainRepo{networks: []entity.Network{
		{ChainID: 1, Name: "Ethereum Mainnet", ShortName: "eth", ExplorerURL: "https://etherscan.io"},
		{ChainID: 4, Name: "Rinkeby", ShortName: "rin"},
		{ChainID: 137, Name: "Polygon"},
	}}
	cacheRepo := memory.NewCacheRepository(cfg, zap.NewNop())

	ns, err := NewNetworkService(ctx, staticSource{networks: declaredNetworks}, chains, cacheRepo, zap.NewNop(), cfg)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		_, found, _ := cacheRepo.GetChains(ctx)
		return found
	}, time.Second, 10*time.Millisecond)

	networks, err := ns.Networks(ctx)
	require.NoError(t, err)
	require.Len(t, networks, 2)

	assert.Equal(t, "Mainnet", networks[0].Name, "declared values win")
	assert.Equal(t, "eth", networks[0].ShortName)
	assert.Equal(t, "https://etherscan.io", networks[0].ExplorerURL)
	assert.Equal(t, "Rinkeby", networks[1].Name)

	cached, _, _ := cacheRepo.GetChains(ctx)
	for _, n := range cached {
		assert.NotEqual(t, int64(137), n.ChainID)
	}

	supported, err := ns.SupportedChainIDs(ctx)
	require.NoError(t, err)
	assert.False(t, supported.Contains(137))
}

func TestNetworkService_ChainlistFailureKeepsDeclared(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cfg := config.Config{Chainlist: config.ChainlistConfig{Enabled: true}}
	chains := &fakeChainRepo{err: errors.New("offline")}
	cacheRepo := memory.NewCacheRepository(cfg, zap.NewNop())

	ns, err := NewNetworkService(ctx, staticSource{networks: declaredNetworks}, chains, cacheRepo, zap.NewNop(), cfg)
	require.NoError(t, err)

	require.Eventually(t, func() bool { return chains.calls.Load() > 0 }, time.Second, 10*time.Millisecond)

	networks, err := ns.Networks(ctx)
	require.NoError(t, err)
	assert.Equal(t, declaredNetworks, networks)
}
