package service

import (
	"wallet-status/internal/domain"
	"wallet-status/internal/domain/entity"
)

// ResolverInput is everything ResolveConnectionStatus looks at.
type ResolverInput struct {
	Active            entity.NetworkState
	Injected          entity.NetworkState
	Backup            entity.NetworkState
	SupportedChainIDs entity.ChainSet
	Transactions      []entity.Transaction
}

// ResolveConnectionStatus decides which wallet status to present.
//
// Visibility depends on whether the active or backup context is live, while the
// displayed status depends on the injected wallet's account and chain. The two
// must not be collapsed: the selected connector may differ from the extension.
func ResolveConnectionStatus(in ResolverInput) (entity.ConnectionStatus, error) {
	if _, ok := in.Active.ChainIDValue(); !ok {
		return entity.ConnectionStatus{}, domain.ErrMissingChainID
	}

	if !in.Backup.Active && !in.Active.Active {
		return entity.ConnectionStatus{Kind: entity.StatusHidden}, nil
	}

	account, hasAccount := in.Injected.AccountValue()
	injectedChainID, hasChainID := in.Injected.ChainIDValue()
	supported := hasChainID && in.SupportedChainIDs.Contains(injectedChainID)

	switch {
	case hasAccount && !supported:
		return entity.ConnectionStatus{Kind: entity.StatusWrongNetwork}, nil

	case hasAccount:
		pending := entity.FilterTransactions(in.Transactions, account, entity.TxPending)
		confirmed := entity.FilterTransactions(in.Transactions, account, entity.TxConfirmed)
		return entity.ConnectionStatus{
			Kind:             entity.StatusConnected,
			Account:          account,
			Pending:          pending,
			Confirmed:        confirmed,
			HasPending:       len(pending) > 0,
			ShowIdentityIcon: in.Active.Connector == entity.ConnectorInjected,
		}, nil

	case in.Active.Error != nil:
		kind := entity.ErrorKindGeneric
		if in.Active.Error.Kind == entity.FaultUnsupportedChainID {
			kind = entity.ErrorKindWrongNetwork
		}
		return entity.ConnectionStatus{Kind: entity.StatusConnectionError, ErrorKind: kind}, nil

	default:
		return entity.ConnectionStatus{Kind: entity.StatusDisconnected}, nil
	}
}
