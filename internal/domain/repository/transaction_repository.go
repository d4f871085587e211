package repository

import (
	"context"

	"wallet-status/internal/domain/entity"
)

// TransactionRepository tracks submitted transactions for every account.
type TransactionRepository interface {
	Add(ctx context.Context, tx entity.Transaction) error
	UpdateStatus(ctx context.Context, hash string, status entity.TxStatus) error

	// All returns every tracked transaction in submission order.
	All(ctx context.Context) ([]entity.Transaction, error)

	GetPendingTransactions(ctx context.Context, account string) ([]entity.Transaction, error)
	GetConfirmedTransactions(ctx context.Context, account string) ([]entity.Transaction, error)
}

// EnableStateRepository holds one enable-state slot per token symbol.
type EnableStateRepository interface {
	Get(ctx context.Context, symbol entity.TokenSymbol) (entity.EnableState, error)
	Set(ctx context.Context, symbol entity.TokenSymbol, state entity.EnableState) error
	Symbols() []entity.TokenSymbol
}
