package repository

import (
	"context"

	"wallet-status/internal/domain/entity"
)

// ChainRepository defines the interface for accessing remote chain metadata.
type ChainRepository interface {
	// GetAllChains retrieves the list of all chains from the underlying data source.
	GetAllChains(ctx context.Context) ([]entity.Network, error)
}

// NetworkSource loads the locally declared supported networks.
type NetworkSource interface {
	LoadNetworks(ctx context.Context) ([]entity.Network, error)
}
