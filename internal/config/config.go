// Package config loads txharvest settings from the process environment.
//
// Values are read in three steps: a .env file (if present) is merged into the
// environment without overriding variables that are already set, the
// environment is decoded with envconfig using the TXHARVEST prefix, and the
// result is validated through struct tags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/gabapcia/txharvest/internal/pkg/validator"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// envPrefix is prepended to every variable name, e.g. TXHARVEST_CACHE_DIR.
const envPrefix = "TXHARVEST"

// Cache backends accepted in CacheConfig.Backend.
const (
	CacheBackendFile   = "file"
	CacheBackendRedis  = "redis"
	CacheBackendMemory = "memory"
)

// Throttle strategies accepted in ThrottleConfig.Strategy.
const (
	ThrottleStrategyDelay = "delay"
	ThrottleStrategyRate  = "rate"
)

// Config is the complete runtime configuration of a harvest run.
type Config struct {
	LogLevel   string `split_words:"true" default:"info" validate:"oneof=debug info warn error"`
	InputPath  string `split_words:"true" default:"Wallet_id.csv" validate:"required"`
	OutputPath string `split_words:"true" default:"raw_transaction_data.json" validate:"required"`

	Explorer  ExplorerConfig
	Cache     CacheConfig
	Redis     RedisConfig
	HTTP      HTTPConfig
	Throttle  ThrottleConfig
	Telemetry TelemetryConfig
}

// ExplorerConfig locates the Etherscan-compatible API and holds its credential.
type ExplorerConfig struct {
	// APIKey is read from TXHARVEST_EXPLORER_ETHERSCAN_API_KEY, falling back to ETHERSCAN_API_KEY.
	APIKey  string `envconfig:"ETHERSCAN_API_KEY" required:"true" validate:"required"`
	URL     string `default:"https://api.etherscan.io/v2/api" validate:"required,url"`
	// ChainID selects the network on multichain endpoints. Set it empty for explorers
	// that take no chainid parameter.
	ChainID string `split_words:"true" default:"1" validate:"omitempty,number"`
}

// CacheConfig selects where raw explorer responses are kept.
type CacheConfig struct {
	Backend string `default:"file" validate:"oneof=file redis memory"`
	Dir     string `default:"cache" validate:"required_if=Backend file"`
}

// RedisConfig is used when the redis cache backend is selected.
type RedisConfig struct {
	Addr     string `default:"localhost:6379" validate:"required"`
	Username string
	Password string
	DB       int `default:"0" validate:"gte=0"`
}

// HTTPConfig tunes the explorer HTTP client.
type HTTPConfig struct {
	Timeout      time.Duration `default:"30s"`
	RetryMax     int           `split_words:"true" default:"0" validate:"gte=0"`
	RetryWaitMin time.Duration `split_words:"true" default:"1s"`
	RetryWaitMax time.Duration `split_words:"true" default:"5s"`
}

// ThrottleConfig selects the pause applied after each successful upstream fetch.
type ThrottleConfig struct {
	Strategy string        `default:"delay" validate:"oneof=delay rate"`
	Delay    time.Duration `default:"200ms"`
	Burst    int           `default:"1" validate:"min=1"`
}

// TelemetryConfig enables OTLP export of traces and metrics.
type TelemetryConfig struct {
	Enabled     bool   `default:"false"`
	ServiceName string `split_words:"true" default:"txharvest" validate:"required"`
}

// Load reads the configuration.
//
// envFiles lists the dotenv files to merge into the environment; with none,
// ".env" in the working directory is used. Missing files are ignored.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("loading dotenv file: %w", err)
	}

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, err
	}

	if err := validator.Validate(cfg); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
