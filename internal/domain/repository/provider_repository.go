package repository

import (
	"context"

	"wallet-status/internal/domain/entity"
)

// ChangeNotifier delivers an event after every mutation of observed state.
type ChangeNotifier interface {
	// Subscribe registers fn and returns its id and a cancel func. fn must not block.
	Subscribe(fn func(entity.ChangeEvent)) (string, func())

	// Publish bumps the version and notifies subscribers.
	Publish(source entity.ChangeSource) uint64

	// Version returns the number of changes published so far.
	Version() uint64
}

// ProviderRepository holds the latest snapshot of each connection context.
type ProviderRepository interface {
	GetContext(ctx context.Context, name entity.ContextName) (entity.NetworkState, error)
	PutContext(ctx context.Context, name entity.ContextName, state entity.NetworkState) error

	// Snapshot reads all contexts at once.
	Snapshot(ctx context.Context) (entity.ProviderSnapshot, error)
}
