package config

import (
	"fmt"
)

// Config holds all configuration for the sentiment trading process.
// ⭐ SSOT: 모든 설정 변수는 여기서만 해석됨
//
// Built once at startup and never mutated; every accessor returns a copy,
// so a *Config can be shared by any number of goroutines without locking.
type Config struct {
	firebase RemoteStoreConfig
	trading  TradingConfig
	api      APIConfig
	sources  SourceSet
}

// Load builds and validates the configuration from an explicit mapping.
// Any violation is returned as a *ConfigurationError (wrapped); the caller
// is expected to abort startup.
func Load(env Environ) (*Config, error) {
	firebase, err := LoadRemoteStore(env)
	if err != nil {
		return nil, fmt.Errorf("firebase config: %w", err)
	}

	trading, err := LoadTrading(env)
	if err != nil {
		return nil, fmt.Errorf("trading config: %w", err)
	}

	api, err := LoadAPI(env)
	if err != nil {
		return nil, fmt.Errorf("api config: %w", err)
	}

	sources, err := LoadSources(env)
	if err != nil {
		return nil, fmt.Errorf("sentiment sources: %w", err)
	}

	return New(firebase, trading, api, sources)
}

// New assembles a Config from already-built sections and validates the
// trading parameters. Use it when sections come from somewhere other than env.
func New(firebase RemoteStoreConfig, trading TradingConfig, api APIConfig, sources SourceSet) (*Config, error) {
	// 리스크 파라미터가 잘못되면 기본값으로 대체하지 않고 즉시 실패
	if err := trading.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &Config{
		firebase: firebase,
		trading:  trading,
		api:      api,
		sources:  sources,
	}, nil
}

func (c *Config) Firebase() RemoteStoreConfig { return c.firebase }
func (c *Config) Trading() TradingConfig       { return c.trading }
func (c *Config) API() APIConfig               { return c.api }
func (c *Config) Sources() SourceSet           { return c.sources }

// LoggingConfig holds logger settings. Loaded separately from Config so a
// logger exists even when the main configuration fails to load.
type LoggingConfig struct {
	Level  string
	Format string
}

// LoadLogging never fails; unknown values fall back inside the logger
func LoadLogging(env Environ) LoggingConfig {
	return LoggingConfig{
		Level:  env.Get(EnvLogLevel, DefaultLogLevel),
		Format: env.Get(EnvLogFormat, DefaultLogFormat),
	}
}
