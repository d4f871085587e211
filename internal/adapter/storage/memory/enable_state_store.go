package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"wallet-status/internal/domain"
	"wallet-status/internal/domain/entity"
	domainRepo "wallet-status/internal/domain/repository"

	"go.uber.org/zap"
)

// Compile-time check
var _ domainRepo.EnableStateRepository = (*EnableStateStore)(nil)

// EnableStateStore keeps one enable-state slot per configured token symbol.
type EnableStateStore struct {
	mu     sync.RWMutex
	slots  map[entity.TokenSymbol]entity.EnableState
	logger *zap.Logger
}

// NewEnableStateStore creates a slot for each symbol, starting at initial.
func NewEnableStateStore(symbols []entity.TokenSymbol, initial entity.EnableState, logger *zap.Logger) *EnableStateStore {
	slots := make(map[entity.TokenSymbol]entity.EnableState, len(symbols))
	for _, symbol := range symbols {
		slots[symbol] = initial
	}
	return &EnableStateStore{
		slots:  slots,
		logger: logger.Named("EnableStateStore"),
	}
}

// Get returns the slot value for symbol.
func (s *EnableStateStore) Get(_ context.Context, symbol entity.TokenSymbol) (entity.EnableState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.slots[symbol]
	if !ok {
		return 0, fmt.Errorf("%w: %q", domain.ErrUnknownTokenSymbol, symbol)
	}
	return state, nil
}

// Set writes the slot for symbol. Symbols without a slot are rejected.
func (s *EnableStateStore) Set(_ context.Context, symbol entity.TokenSymbol, state entity.EnableState) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.slots[symbol]; !ok {
		return fmt.Errorf("%w: %q", domain.ErrUnknownTokenSymbol, symbol)
	}
	s.slots[symbol] = state
	s.logger.Debug("Enable state set", zap.String("symbol", string(symbol)), zap.Int("state", int(state)))
	return nil
}

// Symbols returns the known symbols in lexical order.
func (s *EnableStateStore) Symbols() []entity.TokenSymbol {
	s.mu.RLock()
	defer s.mu.RUnlock()

	symbols := make([]entity.TokenSymbol, 0, len(s.slots))
	for symbol := range s.slots {
		symbols = append(symbols, symbol)
	}
	sort.Slice(symbols, func(i, j int) bool { return symbols[i] < symbols[j] })
	return symbols
}
