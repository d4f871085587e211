package memory

import (
	"context"
	"fmt"
	"time"

	"wallet-status/internal/config"
	"wallet-status/internal/domain/entity"
	domainRepo "wallet-status/internal/domain/repository"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

// Compile-time check
var _ domainRepo.CacheRepository = (*CacheRepository)(nil)

// Cache keys
const (
	chainlistNetworksKey = "chainlist_networks_v1"
)

// CacheRepository implements domainRepo.CacheRepository using the go-cache in-memory library.
type CacheRepository struct {
	cache   *cache.Cache
	logger  *zap.Logger
	fullCfg config.Config
}

// NewCacheRepository creates a new in-memory cache repository instance.
func NewCacheRepository(cfg config.Config, logger *zap.Logger) *CacheRepository {
	defaultExpiration := cfg.Cache.GetDefaultExpiration()
	cleanupInterval := cfg.Cache.GetCleanupInterval()

	c := cache.New(defaultExpiration, cleanupInterval)
	logger.Info(
		"Initialized go-cache for chain metadata",
		zap.Duration("defaultExpiration", defaultExpiration),
		zap.Duration("cleanupInterval", cleanupInterval),
	)

	return &CacheRepository{
		cache:   c,
		logger:  logger.Named("MemoryCacheStorage"),
		fullCfg: cfg,
	}
}

// GetChains retrieves the cached Chainlist networks, returning found status.
func (r *CacheRepository) GetChains(_ context.Context) ([]entity.Network, bool, error) {
	key := chainlistNetworksKey
	if x, found := r.cache.Get(key); found {
		if chains, ok := x.([]entity.Network); ok {
			r.logger.Debug("Memory cache hit", zap.String("key", key))
			return chains, true, nil
		}
		r.logger.Warn(
			"Memory cache data type mismatch for key",
			zap.String("key", key), zap.String("type", fmt.Sprintf("%T", x)),
		)
	}
	r.logger.Debug("Memory cache miss", zap.String("key", key))
	return nil, false, nil
}

// SetChains caches the Chainlist networks with a given TTL, falling back to configured TTLs.
func (r *CacheRepository) SetChains(_ context.Context, chains []entity.Network, ttl time.Duration) error {
	key := chainlistNetworksKey
	if ttl <= 0 {
		ttl = r.fullCfg.Chainlist.GetCacheTTL()
		if ttl <= 0 {
			ttl = r.fullCfg.Cache.GetDefaultExpiration()
		}
	}
	r.cache.Set(key, chains, ttl)
	r.logger.Debug("Memory cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}
