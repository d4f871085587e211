package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"wallet-status/internal/config"
	"wallet-status/internal/domain"
	"wallet-status/internal/domain/entity"
	domainRepo "wallet-status/internal/domain/repository"
	"wallet-status/internal/pkg/apperrors"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// Compile-time check
var _ domainRepo.TransactionRepository = (*TransactionStore)(nil)

const transactionKeyPrefix = "tx_"

type storedTransaction struct {
	seq uint64
	tx  entity.Transaction
}

// TransactionStore implements domainRepo.TransactionRepository on top of go-cache.
// Pending transactions never expire; confirmed ones expire after the configured TTL.
type TransactionStore struct {
	mu           sync.Mutex
	cache        *cache.Cache
	seq          atomic.Uint64
	confirmedTTL time.Duration
	notifier     domainRepo.ChangeNotifier
	logger       *zap.Logger
}

// NewTransactionStore creates an empty transaction store.
func NewTransactionStore(cfg config.Config, notifier domainRepo.ChangeNotifier, logger *zap.Logger) *TransactionStore {
	cleanupInterval := cfg.Cache.GetCleanupInterval()
	logger.Info("Initialized go-cache for transactions",
		zap.Duration("confirmedTTL", cfg.Transactions.ConfirmedTTL),
		zap.Duration("cleanupInterval", cleanupInterval),
	)
	s := &TransactionStore{
		cache:        cache.New(cache.NoExpiration, cleanupInterval),
		confirmedTTL: cfg.Transactions.ConfirmedTTL,
		notifier:     notifier,
		logger:       logger.Named("TransactionStore"),
	}
	// Only the janitor removes entries, so every eviction is an expiry.
	s.cache.OnEvicted(s.onExpired)
	return s
}

func (s *TransactionStore) onExpired(key string, _ any) {
	version := s.notifier.Publish(entity.ChangeTransactions)
	s.logger.Debug("Transaction expired",
		zap.String("hash", strings.TrimPrefix(key, transactionKeyPrefix)),
		zap.Uint64("version", version),
	)
}

// Add starts tracking tx. Hashes must be unique.
func (s *TransactionStore) Add(_ context.Context, tx entity.Transaction) error {
	if strings.TrimSpace(tx.Hash) == "" {
		return fmt.Errorf("%w: transaction hash is required", apperrors.ErrInvalidInput)
	}
	if strings.TrimSpace(tx.Owner) == "" {
		return fmt.Errorf("%w: transaction owner is required", apperrors.ErrInvalidInput)
	}
	if !tx.Status.Valid() {
		return fmt.Errorf("%w: unknown transaction status %q", apperrors.ErrInvalidInput, tx.Status)
	}
	if tx.SubmittedAt.IsZero() {
		tx.SubmittedAt = time.Now().UTC()
	}

	s.mu.Lock()
	item := storedTransaction{seq: s.seq.Add(1), tx: tx}
	err := s.cache.Add(transactionKeyPrefix+tx.Hash, item, s.ttlFor(tx.Status))
	s.mu.Unlock()
	if err != nil {
		return fmt.Errorf("%w: transaction %s already tracked", apperrors.ErrConflict, tx.Hash)
	}

	s.notifier.Publish(entity.ChangeTransactions)
	s.logger.Debug("Transaction added", zap.String("hash", tx.Hash), zap.String("status", string(tx.Status)))
	return nil
}

// UpdateStatus moves a tracked transaction to status, keeping its position.
func (s *TransactionStore) UpdateStatus(_ context.Context, hash string, status entity.TxStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown transaction status %q", apperrors.ErrInvalidInput, status)
	}
	key := transactionKeyPrefix + hash

	s.mu.Lock()
	x, found := s.cache.Get(key)
	if !found {
		s.mu.Unlock()
		return fmt.Errorf("%w: %s", domain.ErrTransactionNotFound, hash)
	}
	item, ok := x.(storedTransaction)
	if !ok {
		s.mu.Unlock()
		s.logger.Warn("Transaction cache data type mismatch", zap.String("key", key), zap.String("type", fmt.Sprintf("%T", x)))
		return fmt.Errorf("%w: %s", domain.ErrTransactionNotFound, hash)
	}
	item.tx.Status = status
	s.cache.Set(key, item, s.ttlFor(status))
	s.mu.Unlock()

	s.notifier.Publish(entity.ChangeTransactions)
	s.logger.Debug("Transaction status updated", zap.String("hash", hash), zap.String("status", string(status)))
	return nil
}

// All returns every unexpired transaction in submission order.
func (s *TransactionStore) All(_ context.Context) ([]entity.Transaction, error) {
	items := s.cache.Items()
	stored := make([]storedTransaction, 0, len(items))
	for key, it := range items {
		item, ok := it.Object.(storedTransaction)
		if !ok {
			s.logger.Warn("Transaction cache data type mismatch", zap.String("key", key))
			continue
		}
		stored = append(stored, item)
	}
	sort.Slice(stored, func(i, j int) bool { return stored[i].seq < stored[j].seq })

	txs := make([]entity.Transaction, len(stored))
	for i, item := range stored {
		txs[i] = item.tx
	}
	return txs, nil
}

// GetPendingTransactions returns account's pending transactions.
func (s *TransactionStore) GetPendingTransactions(ctx context.Context, account string) ([]entity.Transaction, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	return entity.FilterTransactions(all, account, entity.TxPending), nil
}

// GetConfirmedTransactions returns account's confirmed transactions.
func (s *TransactionStore) GetConfirmedTransactions(ctx context.Context, account string) ([]entity.Transaction, error) {
	all, err := s.All(ctx)
	if err != nil {
		return nil, err
	}
	return entity.FilterTransactions(all, account, entity.TxConfirmed), nil
}

func (s *TransactionStore) ttlFor(status entity.TxStatus) time.Duration {
	if status == entity.TxConfirmed && s.confirmedTTL > 0 {
		return s.confirmedTTL
	}
	return cache.NoExpiration
}
