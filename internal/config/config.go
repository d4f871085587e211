package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
type Config struct {
	App          AppConfig          `mapstructure:"app"`
	Server       ServerConfig       `mapstructure:"server"`
	Stream       StreamConfig       `mapstructure:"stream"`
	Logger       LoggerConfig       `mapstructure:"logger"`
	Cache        CacheConfig        `mapstructure:"cache"`
	Transactions TransactionsConfig `mapstructure:"transactions"`
	Networks     NetworksConfig     `mapstructure:"networks"`
	Chainlist    ChainlistConfig    `mapstructure:"chainlist"`
	Tokens       TokensConfig       `mapstructure:"tokens"`
}

// AppConfig holds application-level configuration.
type AppConfig struct {
	Name    string `mapstructure:"name"`
	Version string `mapstructure:"version"`
}

// ServerConfig holds HTTP API server configuration.
type ServerConfig struct {
	Port string `mapstructure:"port"`
}

// StreamConfig holds settings for the websocket status stream.
type StreamConfig struct {
	Port         string        `mapstructure:"port"`
	Path         string        `mapstructure:"path"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	PingInterval time.Duration `mapstructure:"ping_interval"`
	SendBuffer   int           `mapstructure:"send_buffer"`
	// AllowedOrigins lists browser origins accepted besides the stream's own host.
	AllowedOrigins []string `mapstructure:"allowed_origins"`
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

// CacheConfig holds settings for the in-memory caches.
type CacheConfig struct {
	DefaultExpiration time.Duration `mapstructure:"default_expiration"`
	CleanupInterval   time.Duration `mapstructure:"cleanup_interval"`
}

// TransactionsConfig controls how long transactions stay in the store.
type TransactionsConfig struct {
	ConfirmedTTL time.Duration `mapstructure:"confirmed_ttl"`
}

// NetworksConfig declares which chains the application supports.
type NetworksConfig struct {
	File              string  `mapstructure:"file"`
	SupportedChainIDs []int64 `mapstructure:"supported_chain_ids"`
}

// ChainlistConfig holds configuration for the optional Chainlist metadata source.
type ChainlistConfig struct {
	Enabled         bool          `mapstructure:"enabled"`
	URL             string        `mapstructure:"url"`
	Timeout         time.Duration `mapstructure:"timeout"`
	RefreshInterval time.Duration `mapstructure:"refresh_interval"`
	CacheTTL        time.Duration `mapstructure:"cache_ttl"`
}

// TokensConfig lists the token symbols that carry an enable prompt.
type TokensConfig struct {
	Symbols      []string `mapstructure:"symbols"`
	InitialState int      `mapstructure:"initial_state"`
}

// Load reads configuration from file and environment variables.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	v.SetDefault("app.name", "wallet-status")
	v.SetDefault("app.version", "1.0.0")
	v.SetDefault("server.port", "8080")
	v.SetDefault("stream.port", "8081")
	v.SetDefault("stream.path", "/status/stream")
	v.SetDefault("stream.write_timeout", "5s")
	v.SetDefault("stream.ping_interval", "30s")
	v.SetDefault("stream.send_buffer", 16)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("cache.default_expiration", "30m")
	v.SetDefault("cache.cleanup_interval", "5m")
	v.SetDefault("transactions.confirmed_ttl", "24h")
	v.SetDefault("networks.file", "configs/networks.yaml")
	v.SetDefault("networks.supported_chain_ids", []int64{1, 4})
	v.SetDefault("chainlist.enabled", false)
	v.SetDefault("chainlist.url", "https://chainid.network/chains.json")
	v.SetDefault("chainlist.timeout", "15s")
	v.SetDefault("chainlist.refresh_interval", "6h")
	v.SetDefault("chainlist.cache_ttl", "12h")
	v.SetDefault("tokens.symbols", []string{"TKN", "DXD"})
	v.SetDefault("tokens.initial_state", 0)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		fmt.Printf("Warning: Config file not found in %s or '.', using defaults/env vars\n", configPath)
	}

	v.SetEnvPrefix("WALLET_STATUS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	if len(c.Tokens.Symbols) == 0 {
		return errors.New("config: tokens.symbols must not be empty")
	}
	if c.Chainlist.Enabled && strings.TrimSpace(c.Chainlist.URL) == "" {
		return errors.New("config: chainlist.url is required when chainlist is enabled")
	}
	for _, id := range c.Networks.SupportedChainIDs {
		if id <= 0 {
			return fmt.Errorf("config: invalid supported chain id %d", id)
		}
	}
	return nil
}

func (c ChainlistConfig) GetTimeout() time.Duration {
	return c.Timeout
}

func (c ChainlistConfig) GetRefreshInterval() time.Duration {
	return c.RefreshInterval
}

func (c ChainlistConfig) GetCacheTTL() time.Duration {
	return c.CacheTTL
}

func (c CacheConfig) GetDefaultExpiration() time.Duration {
	return c.DefaultExpiration
}

func (c CacheConfig) GetCleanupInterval() time.Duration {
	return c.CleanupInterval
}
