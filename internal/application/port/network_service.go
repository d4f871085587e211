package port

import (
	"context"

	"wallet-status/internal/domain/entity"
)

// NetworkService answers which chains are supported and what is known about them.
type NetworkService interface {
	// SupportedChainIDs returns the chain ids the application accepts.
	SupportedChainIDs(ctx context.Context) (entity.ChainSet, error)

	// Networks returns the supported networks, enriched with Chainlist metadata when available.
	Networks(ctx context.Context) ([]entity.Network, error)

	// Lookup returns metadata for a supported chain id.
	Lookup(ctx context.Context, chainID int64) (entity.Network, bool)
}
