package port

import (
	"context"

	"wallet-status/internal/domain/entity"
)

// StatusService resolves the wallet connection status and publishes it on every change.
type StatusService interface {
	// Resolve computes the current view. It fails with domain.ErrMissingChainID
	// when the active context has not reported a chain.
	Resolve(ctx context.Context) (entity.StatusView, error)

	// ToggleWalletModal flips the wallet modal and returns the new open state.
	ToggleWalletModal(ctx context.Context) bool

	// Subscribe returns a channel receiving every published view. The channel
	// is closed by cancel or when the subscriber falls behind. After Run has
	// stopped it is returned already closed.
	Subscribe(buffer int) (string, <-chan entity.StatusView, func())

	// Run re-resolves on change notifications until ctx is done.
	Run(ctx context.Context)
}
