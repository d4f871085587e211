package memory

import (
	"context"
	"testing"
	"time"

	"wallet-status/internal/config"
	"wallet-status/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestCacheRepository_SetAndGetChains(t *testing.T) {
	repo := NewCacheRepository(config.Config{
		Cache: config.CacheConfig{DefaultExpiration: time.Minute},
	}, zap.NewNop())
	ctx := context.Background()

	_, found, err := repo.GetChains(ctx)
	require.NoError(t, err)
	assert.False(t, found)

	chains := []entity.Network{{ChainID: 1, Name: "Ethereum Mainnet"}}
	require.NoError(t, repo.SetChains(ctx, chains, 0))

	got, found, err := repo.GetChains(ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, chains, got)
}

func TestCacheRepository_Expires(t *testing.T) {
	repo := NewCacheRepository(config.Config{}, zap.NewNop())
	ctx := context.Background()

	require.NoError(t, repo.SetChains(ctx, []entity.Network{{ChainID: 1}}, 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	_, found, err := repo.GetChains(ctx)
	require.NoError(t, err)
	assert.False(t, found)
}
