// Package config defines the server configuration structure.
package config

import "time"

// ServerConfig is the root configuration for cw20-server.
type ServerConfig struct {
	Server    ServerSection    `koanf:"server"`
	Storage   StorageSection   `koanf:"storage"`
	RateLimit RateLimitSection `koanf:"ratelimit"`
	Log       LogSection       `koanf:"log"`
}

// ServerSection configures server endpoints.
type ServerSection struct {
	HTTP HTTPConfig `koanf:"http"`
}

// HTTPConfig configures the HTTP server.
type HTTPConfig struct {
	Addr            string        `koanf:"addr"`
	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// StorageSection configures the state storage engine.
type StorageSection struct {
	// Engine selects the KV backend: "badger" or "memory".
	Engine  string       `koanf:"engine"`
	DataDir string       `koanf:"data_dir"`
	Badger  BadgerConfig `koanf:"badger"`
}

// BadgerConfig tunes the Badger engine.
type BadgerConfig struct {
	SyncWrites  bool          `koanf:"sync_writes"`
	GCInterval  time.Duration `koanf:"gc_interval"`
	GCThreshold float64       `koanf:"gc_threshold"`
	CacheSizeMB int           `koanf:"cache_size_mb"`
}

// RateLimitSection configures per-client request limiting.
type RateLimitSection struct {
	Enabled bool    `koanf:"enabled"`
	RPS     float64 `koanf:"rps"`
	Burst   int     `koanf:"burst"`
}

// LogSection configures logging.
type LogSection struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}
