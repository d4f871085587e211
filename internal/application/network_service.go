package application

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"wallet-status/internal/application/port"
	"wallet-status/internal/config"
	"wallet-status/internal/domain"
	"wallet-status/internal/domain/entity"
	domainRepo "wallet-status/internal/domain/repository"

	"dario.cat/mergo"
	"go.uber.org/zap"
)

// Compile-time check to ensure networkService implements NetworkService
var _ port.NetworkService = (*networkService)(nil)

// networkService serves the declared networks and enriches them with cached Chainlist metadata.
type networkService struct {
	chainRepo    domainRepo.ChainRepository
	cacheRepo    domainRepo.CacheRepository
	logger       *zap.Logger
	cfg          config.Config
	rootCtx      context.Context
	isRefreshing *atomic.Bool

	declared  []entity.Network
	supported entity.ChainSet
}

// NewNetworkService loads the declared networks from source. chainRepo may be nil, in which case
// no Chainlist enrichment happens.
func NewNetworkService(
	rootCtx context.Context,
	source domainRepo.NetworkSource,
	chainRepo domainRepo.ChainRepository,
	cacheRepo domainRepo.CacheRepository,
	logger *zap.Logger,
	cfg config.Config,
) (port.NetworkService, error) {
	declared, err := source.LoadNetworks(rootCtx)
	if err != nil {
		return nil, fmt.Errorf("failed to load supported networks: %w", err)
	}

	supported := make(entity.ChainSet, len(declared))
	for _, n := range declared {
		supported[n.ChainID] = struct{}{}
	}

	ns := &networkService{
		chainRepo:    chainRepo,
		cacheRepo:    cacheRepo,
		logger:       logger.Named("NetworkService"),
		cfg:          cfg,
		rootCtx:      rootCtx,
		isRefreshing: new(atomic.Bool),
		declared:     declared,
		supported:    supported,
	}
	ns.logger.Info("Supported networks loaded", zap.Int64s("chainIds", supported.IDs()))

	if ns.enrichmentEnabled() {
		go ns.startBackgroundRefresher()
	}

	return ns, nil
}

// SupportedChainIDs returns the declared chain ids. Chainlist never adds to this set.
func (s *networkService) SupportedChainIDs(_ context.Context) (entity.ChainSet, error) {
	out := make(entity.ChainSet, len(s.supported))
	for id := range s.supported {
		out[id] = struct{}{}
	}
	return out, nil
}

// Networks returns the declared networks; empty fields are filled from cached Chainlist data.
func (s *networkService) Networks(ctx context.Context) ([]entity.Network, error) {
	networks := make([]entity.Network, len(s.declared))
	copy(networks, s.declared)

	if !s.enrichmentEnabled() {
		return networks, nil
	}

	remote, found, err := s.cacheRepo.GetChains(ctx)
	if err != nil {
		s.logger.Warn("Cache error when getting Chainlist networks", zap.Error(err))
	}
	if !found {
		s.triggerRefresh()
		return networks, nil
	}

	byID := make(map[int64]entity.Network, len(remote))
	for _, n := range remote {
		byID[n.ChainID] = n
	}
	for i := range networks {
		r, ok := byID[networks[i].ChainID]
		if !ok {
			continue
		}
		if err := mergo.Merge(&networks[i], r); err != nil {
			s.logger.Warn("Failed to merge Chainlist metadata",
				zap.Int64("chainId", networks[i].ChainID), zap.Error(err),
			)
		}
	}
	return networks, nil
}

// Lookup returns the network for chainID if it is supported.
func (s *networkService) Lookup(ctx context.Context, chainID int64) (entity.Network, bool) {
	if !s.supported.Contains(chainID) {
		return entity.Network{}, false
	}
	networks, err := s.Networks(ctx)
	if err != nil {
		return entity.Network{}, false
	}
	for _, n := range networks {
		if n.ChainID == chainID {
			return n, true
		}
	}
	return entity.Network{}, false
}

func (s *networkService) enrichmentEnabled() bool {
	return s.cfg.Chainlist.Enabled && s.chainRepo != nil && s.cacheRepo != nil
}

// triggerRefresh starts a background refresh unless one is already running.
func (s *networkService) triggerRefresh() {
	if !s.isRefreshing.CompareAndSwap(false, true) {
		s.logger.Debug("Chainlist refresh already in progress, skipping")
		return
	}
	go func() {
		defer s.isRefreshing.Store(false)
		if err := s.refresh(s.rootCtx); err != nil {
			s.logger.Warn("Chainlist refresh failed", zap.Error(err))
		}
	}()
}

// refresh fetches Chainlist and caches the entries for supported chains.
func (s *networkService) refresh(ctx context.Context) error {
	fetchCtx := ctx
	if timeout := s.cfg.Chainlist.GetTimeout(); timeout > 0 {
		var cancel context.CancelFunc
		fetchCtx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	remote, err := s.chainRepo.GetAllChains(fetchCtx)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrUpstreamSourceFailure, err)
	}

	relevant := make([]entity.Network, 0, len(s.supported))
	for _, n := range remote {
		if s.supported.Contains(n.ChainID) {
			relevant = append(relevant, n)
		}
	}

	if err := s.cacheRepo.SetChains(ctx, relevant, s.cfg.Chainlist.GetCacheTTL()); err != nil {
		return fmt.Errorf("failed to cache Chainlist networks: %w", err)
	}
	s.logger.Info("Chainlist metadata refreshed", zap.Int("matched", len(relevant)))
	return nil
}

// startBackgroundRefresher refreshes Chainlist metadata once and then on every tick.
func (s *networkService) startBackgroundRefresher() {
	s.triggerRefresh()

	interval := s.cfg.Chainlist.GetRefreshInterval()
	if interval <= 0 {
		s.logger.Info("Periodic Chainlist refresh disabled (interval <= 0)")
		return
	}

	s.logger.Info("Starting background Chainlist refresher", zap.Duration("interval", interval))
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.triggerRefresh()
		case <-s.rootCtx.Done():
			s.logger.Info("Background Chainlist refresher stopping due to context cancellation.")
			return
		}
	}
}
