package memory

import (
	"context"
	"testing"

	"wallet-status/internal/domain"
	"wallet-status/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestEnableStateStore(t *testing.T) {
	store := NewEnableStateStore([]entity.TokenSymbol{entity.TokenTKN, entity.TokenDXD}, 1, zap.NewNop())
	ctx := context.Background()

	assert.Equal(t, []entity.TokenSymbol{entity.TokenDXD, entity.TokenTKN}, store.Symbols())

	state, err := store.Get(ctx, entity.TokenTKN)
	require.NoError(t, err)
	assert.Equal(t, entity.EnableState(1), state)

	require.NoError(t, store.Set(ctx, entity.TokenTKN, entity.EnableStateConfirmed))

	state, err = store.Get(ctx, entity.TokenTKN)
	require.NoError(t, err)
	assert.Equal(t, entity.EnableStateConfirmed, state)

	state, err = store.Get(ctx, entity.TokenDXD)
	require.NoError(t, err)
	assert.Equal(t, entity.EnableState(1), state)
}

func TestEnableStateStore_UnknownSymbol(t *testing.T) {
	store := NewEnableStateStore([]entity.TokenSymbol{entity.TokenTKN}, 0, zap.NewNop())
	ctx := context.Background()

	_, err := store.Get(ctx, entity.TokenDXD)
	assert.ErrorIs(t, err, domain.ErrUnknownTokenSymbol)
	assert.ErrorIs(t, store.Set(ctx, entity.TokenDXD, entity.EnableStateConfirmed), domain.ErrUnknownTokenSymbol)
	assert.Len(t, store.Symbols(), 1)
}
