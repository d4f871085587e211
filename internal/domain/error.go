package domain

import "errors"

var (
	// ErrMissingChainID means the active connection context reported no chain id.
	// Resolving a status without one is a caller contract violation.
	ErrMissingChainID = errors.New("no chain ID specified")

	// ErrUnknownContext means the named connection context is not one of active, injected or backup.
	ErrUnknownContext = errors.New("unknown connection context")

	// ErrTransactionNotFound means no transaction with the given hash is tracked.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrUnknownTokenSymbol means the token has no enable-state slot.
	ErrUnknownTokenSymbol = errors.New("unknown token symbol")

	// ErrUpstreamSourceFailure means an error occurred while fetching network metadata from Chainlist.
	ErrUpstreamSourceFailure = errors.New("upstream source failure")
)
