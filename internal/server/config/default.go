// Package config defines the server configuration structure.
package config

import "time"

// Default configuration values.
const (
	DefaultHTTPAddr        = "127.0.0.1:5080"
	DefaultReadTimeout     = 10 * time.Second
	DefaultWriteTimeout    = 10 * time.Second
	DefaultShutdownTimeout = 15 * time.Second

	DefaultStorageEngine = "badger"
	DefaultDataDir       = "/var/lib/cw20-server/data"
	DefaultGCInterval    = 10 * time.Minute
	DefaultGCThreshold   = 0.5
	DefaultCacheSizeMB   = 64

	DefaultRateLimitRPS   = 100.0
	DefaultRateLimitBurst = 200

	DefaultLogLevel  = "info"
	DefaultLogFormat = "json"
)

// Default returns the default server configuration.
func Default() *ServerConfig {
	return &ServerConfig{
		Server: ServerSection{
			HTTP: HTTPConfig{
				Addr:            DefaultHTTPAddr,
				ReadTimeout:     DefaultReadTimeout,
				WriteTimeout:    DefaultWriteTimeout,
				ShutdownTimeout: DefaultShutdownTimeout,
			},
		},
		Storage: StorageSection{
			Engine:  DefaultStorageEngine,
			DataDir: DefaultDataDir,
			Badger: BadgerConfig{
				SyncWrites:  true,
				GCInterval:  DefaultGCInterval,
				GCThreshold: DefaultGCThreshold,
				CacheSizeMB: DefaultCacheSizeMB,
			},
		},
		RateLimit: RateLimitSection{
			Enabled: true,
			RPS:     DefaultRateLimitRPS,
			Burst:   DefaultRateLimitBurst,
		},
		Log: LogSection{
			Level:  DefaultLogLevel,
			Format: DefaultLogFormat,
		},
	}
}
