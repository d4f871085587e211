package memory

import (
	"context"
	"fmt"
	"sync"

	"wallet-status/internal/domain"
	"wallet-status/internal/domain/entity"
	domainRepo "wallet-status/internal/domain/repository"

	"go.uber.org/zap"
)

// Compile-time check
var _ domainRepo.ProviderRepository = (*ProviderStore)(nil)

// ProviderStore keeps the last reported NetworkState of each connection context.
type ProviderStore struct {
	mu       sync.RWMutex
	states   map[entity.ContextName]entity.NetworkState
	notifier domainRepo.ChangeNotifier
	logger   *zap.Logger
}

// NewProviderStore creates a store where every context starts inactive with no chain.
func NewProviderStore(notifier domainRepo.ChangeNotifier, logger *zap.Logger) *ProviderStore {
	states := make(map[entity.ContextName]entity.NetworkState, len(entity.ContextNames))
	for _, name := range entity.ContextNames {
		states[name] = entity.NetworkState{}
	}
	return &ProviderStore{
		states:   states,
		notifier: notifier,
		logger:   logger.Named("ProviderStore"),
	}
}

// GetContext returns a copy of the named context.
func (s *ProviderStore) GetContext(_ context.Context, name entity.ContextName) (entity.NetworkState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	state, ok := s.states[name]
	if !ok {
		return entity.NetworkState{}, fmt.Errorf("%w: %q", domain.ErrUnknownContext, name)
	}
	return state.Clone(), nil
}

// PutContext replaces the named context and publishes a change.
func (s *ProviderStore) PutContext(_ context.Context, name entity.ContextName, state entity.NetworkState) error {
	s.mu.Lock()
	if _, ok := s.states[name]; !ok {
		s.mu.Unlock()
		return fmt.Errorf("%w: %q", domain.ErrUnknownContext, name)
	}
	s.states[name] = state.Clone()
	// The version is bumped under the lock so a Snapshot never pairs new state with an old version.
	version := s.notifier.Publish(entity.ChangeProvider)
	s.mu.Unlock()

	s.logger.Debug("Context updated",
		zap.String("context", string(name)),
		zap.Bool("active", state.Active),
		zap.Uint64("version", version),
	)
	return nil
}

// Snapshot returns copies of all contexts together with the current version.
func (s *ProviderStore) Snapshot(_ context.Context) (entity.ProviderSnapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return entity.ProviderSnapshot{
		Active:   s.states[entity.ContextActive].Clone(),
		Injected: s.states[entity.ContextInjected].Clone(),
		Backup:   s.states[entity.ContextBackup].Clone(),
		Version:  s.notifier.Version(),
	}, nil
}
