package repository

import (
	"context"
	"time"

	"wallet-status/internal/domain/entity"
)

// CacheRepository defines the interface for caching remote chain metadata.
type CacheRepository interface {
	// GetChains retrieves the cached list of all chains.
	GetChains(ctx context.Context) ([]entity.Network, bool, error)

	// SetChains stores the list of all chains in the cache with a specified TTL.
	SetChains(ctx context.Context, chains []entity.Network, ttl time.Duration) error
}
