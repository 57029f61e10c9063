package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/gabapcia/txharvest/internal/config"
	"github.com/gabapcia/txharvest/internal/handlers/cli"
	"github.com/gabapcia/txharvest/internal/harvest"
	"github.com/gabapcia/txharvest/internal/infra/explorer/etherscan"
	"github.com/gabapcia/txharvest/internal/infra/storage/filesystem"
	"github.com/gabapcia/txharvest/internal/infra/storage/memory"
	"github.com/gabapcia/txharvest/internal/infra/storage/redis"
	"github.com/gabapcia/txharvest/internal/pkg/logger"
	"github.com/gabapcia/txharvest/internal/pkg/resilience/retry"
	"github.com/gabapcia/txharvest/internal/pkg/telemetry"
	"github.com/gabapcia/txharvest/internal/pkg/throttle"
	transporthttp "github.com/gabapcia/txharvest/internal/pkg/transport/http"
)

// telemetryShutdownTimeout bounds the final flush of traces and metrics.
const telemetryShutdownTimeout = 5 * time.Second

// nopCloser is returned for cache backends holding no connection.
type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// newResponseCache builds the cache backend selected in cfg.
// The returned closer releases the backend connection, if any.
func newResponseCache(ctx context.Context, cfg config.Config) (harvest.ResponseCache, io.Closer, error) {
	switch cfg.Cache.Backend {
	case config.CacheBackendFile:
		c, err := filesystem.NewCache(cfg.Cache.Dir)
		if err != nil {
			return nil, nil, err
		}

		return c, nopCloser{}, nil
	case config.CacheBackendRedis:
		r := retry.New(retry.WithAttempts(5), retry.WithName("redis.ping"))

		c, err := redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB, r)
		if err != nil {
			return nil, nil, fmt.Errorf("connecting to redis: %w", err)
		}

		return c, c, nil
	case config.CacheBackendMemory:
		return memory.NewCache(), nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}

// newThrottle builds the pause policy selected in cfg.
func newThrottle(cfg config.ThrottleConfig) throttle.Throttle {
	if cfg.Strategy == config.ThrottleStrategyRate {
		return throttle.RateLimited(cfg.Delay, cfg.Burst)
	}

	return throttle.FixedDelay(cfg.Delay)
}

// newFetcher builds the explorer client from cfg.
func newFetcher(cfg config.Config) harvest.TransactionFetcher {
	httpClient := transporthttp.NewClient(
		transporthttp.WithTimeout(cfg.HTTP.Timeout),
		transporthttp.WithRetryMax(cfg.HTTP.RetryMax),
		transporthttp.WithRetryWaitMin(cfg.HTTP.RetryWaitMin),
		transporthttp.WithRetryWaitMax(cfg.HTTP.RetryWaitMax),
	)

	var opts []etherscan.Option
	if cfg.Explorer.ChainID != "" {
		opts = append(opts, etherscan.WithChainID(cfg.Explorer.ChainID))
	}

	return etherscan.NewClient(httpClient, cfg.Explorer.URL, cfg.Explorer.APIKey, opts...)
}

func run(ctx context.Context, cfg config.Config) (err error) {
	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(ctx, cfg.Telemetry.ServiceName)
		if err != nil {
			return fmt.Errorf("initializing telemetry: %w", err)
		}

		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), telemetryShutdownTimeout)
			defer cancel()

			if shutdownErr := shutdown(shutdownCtx); shutdownErr != nil {
				logger.Error(ctx, "failed to shut down telemetry", "error", shutdownErr)
			}
		}()
	}

	cache, closer, err := newResponseCache(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() {
		err = errors.Join(err, closer.Close())
	}()

	svc := harvest.New(
		filesystem.NewWalletFile(cfg.InputPath),
		newFetcher(cfg),
		cache,
		filesystem.NewDatasetWriter(cfg.OutputPath),
		harvest.WithThrottle(newThrottle(cfg.Throttle)),
	)

	return cli.Run(ctx, svc)
}

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		// the configured level is unknown at this point
		_ = logger.Init("info")
		logger.Fatal(ctx, "failed to load configuration", "error", err)
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		logger.Fatal(ctx, "failed to initialize logger", "error", err)
	}
	defer logger.Sync()

	if err := run(ctx, cfg); err != nil {
		logger.Fatal(ctx, "harvest failed", "error", err)
	}
}
