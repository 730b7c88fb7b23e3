// Package main provides the entry point for cw20-server.
//
// cw20-server hosts a CW20-style fungible token ledger behind an HTTP
// API: balances, allowances, supply, and the owner's mint/burn/pause
// controls, persisted in an embedded key-value store.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/rupam-04/cw20/internal/core/service"
	"github.com/rupam-04/cw20/internal/infra/buildinfo"
	"github.com/rupam-04/cw20/internal/infra/confloader"
	"github.com/rupam-04/cw20/internal/infra/shutdown"
	"github.com/rupam-04/cw20/internal/server/config"
	"github.com/rupam-04/cw20/internal/server/httpserver"
	"github.com/rupam-04/cw20/internal/storage"
	"github.com/rupam-04/cw20/internal/storage/contractstore"
	"github.com/rupam-04/cw20/internal/telemetry/logger"
	"github.com/rupam-04/cw20/internal/telemetry/metric"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse command line flags
	var (
		configFile  = flag.String("config", "", "Path to configuration file")
		showVersion = flag.Bool("version", false, "Show version information")
	)
	flag.Parse()

	// Show version and exit
	if *showVersion {
		fmt.Printf("cw20-server %s\n", buildinfo.String())
		return nil
	}

	// Load configuration
	cfg, err := loadConfig(*configFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	// Initialize logger
	log, slogLogger, err := initLogger(cfg)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}

	log.Info("starting cw20-server",
		"version", buildinfo.Version,
		"commit", buildinfo.Commit,
		"config", *configFile)

	// Watch the config file so log-level changes apply without a restart.
	if *configFile != "" {
		watcher, err := startConfigWatcher(*configFile, slogLogger)
		if err != nil {
			log.Warn("config watcher disabled", "error", err)
		} else {
			defer watcher.Stop()
		}
	}

	// Initialize storage engine
	kv, err := initStorage(cfg, slogLogger)
	if err != nil {
		return fmt.Errorf("init storage: %w", err)
	}

	// Initialize metrics and the contract service
	metrics := metric.New()
	store := contractstore.New(kv)
	contractSvc := service.NewContractService(store, slogLogger,
		service.WithSupplyRecorder(metrics))

	// Seed the supply gauge from persisted state on restart.
	if info, err := contractSvc.QueryTokenInfo(context.Background()); err == nil {
		metrics.SetTotalSupply(info.TotalSupply)
	}

	// Create HTTP server
	router := httpserver.NewRouter(&httpserver.RouterConfig{
		ContractService: contractSvc,
		Logger:          slogLogger,
		Metrics:         metrics,
		RateLimitRPS:    rateLimitRPS(cfg),
		RateLimitBurst:  cfg.RateLimit.Burst,
		EnableAudit:     true,
	})
	httpServer := httpserver.New(cfg.Server.HTTP.Addr, router)
	httpServer.SetTimeouts(cfg.Server.HTTP.ReadTimeout, cfg.Server.HTTP.WriteTimeout)

	// Setup graceful shutdown
	shutdownHandler := shutdown.NewHandler(cfg.Server.HTTP.ShutdownTimeout)

	// Register shutdown hooks (reverse order of startup)
	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("shutting down HTTP server")
		return httpServer.Shutdown(ctx)
	})

	shutdownHandler.OnShutdown(func(ctx context.Context) error {
		log.Info("shutting down storage engine")
		return kv.Close()
	})

	// Start HTTP server in goroutine
	go func() {
		log.Info("HTTP server listening", "addr", cfg.Server.HTTP.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error", "error", err)
		}
	}()

	// Wait for shutdown signal
	log.Info("server started, press Ctrl+C to stop")
	if err := shutdownHandler.Wait(); err != nil {
		log.Error("shutdown error", "error", err)
		return err
	}

	log.Info("server stopped gracefully")
	return nil
}

// loadConfig loads configuration from file and environment.
func loadConfig(configFile string) (*config.ServerConfig, error) {
	// Start with defaults
	cfg := config.Default()

	// Create loader with optional config file
	opts := []confloader.Option{}
	if configFile != "" {
		opts = append(opts, confloader.WithConfigFile(configFile))
	}

	loader := confloader.NewLoader(opts...)

	// Load and unmarshal
	if err := loader.Load(cfg); err != nil {
		return nil, err
	}

	// Validate configuration
	if err := config.Verify(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// initLogger initializes the structured logger.
// Returns both the logger interface and slog.Logger for components that need it.
func initLogger(cfg *config.ServerConfig) (logger.Logger, *slog.Logger, error) {
	log, err := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})
	if err != nil {
		return nil, nil, err
	}

	// Set as default logger
	logger.SetDefault(log)

	slogLogger := logger.NewSlog(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: os.Stdout,
	})

	return log, slogLogger, nil
}

// startConfigWatcher reloads the config file on change and applies the
// new log level. Other settings require a restart.
func startConfigWatcher(configFile string, log *slog.Logger) (*confloader.Watcher, error) {
	watcher, err := confloader.NewWatcher(confloader.WithWatcherLogger(log))
	if err != nil {
		return nil, err
	}
	if err := watcher.Watch(configFile); err != nil {
		watcher.Stop()
		return nil, err
	}

	watcher.OnChange(func(path string) {
		cfg, err := loadConfig(configFile)
		if err != nil {
			log.Warn("config reload failed", "path", path, "error", err)
			return
		}
		if cfg.Log.Level != logger.GetLevel() {
			logger.SetLevel(cfg.Log.Level)
			log.Info("log level changed", "level", cfg.Log.Level)
		}
	})

	watcher.StartAsync()
	return watcher, nil
}

// initStorage opens the KV engine selected by the configuration.
func initStorage(cfg *config.ServerConfig, log *slog.Logger) (storage.KV, error) {
	storageCfg := storage.Config{
		Engine: cfg.Storage.Engine,
		Dir:    cfg.Storage.DataDir,
		Badger: storage.BadgerConfig{
			GCInterval:  cfg.Storage.Badger.GCInterval,
			GCThreshold: cfg.Storage.Badger.GCThreshold,
			CacheSize:   int64(cfg.Storage.Badger.CacheSizeMB) << 20,
			SyncWrites:  cfg.Storage.Badger.SyncWrites,
		},
	}
	return storage.Open(storageCfg, log)
}

func rateLimitRPS(cfg *config.ServerConfig) float64 {
	if !cfg.RateLimit.Enabled {
		return 0
	}
	return cfg.RateLimit.RPS
}
