// Package config defines the server configuration structure.
package config

import (
	"errors"
	"net"
	"os"
)

// Verify validates the configuration.
func Verify(cfg *ServerConfig) error {
	if err := verifyServer(&cfg.Server); err != nil {
		return err
	}
	if err := verifyStorage(&cfg.Storage); err != nil {
		return err
	}
	if err := verifyRateLimit(&cfg.RateLimit); err != nil {
		return err
	}
	return nil
}

func verifyServer(cfg *ServerSection) error {
	if cfg.HTTP.Addr == "" {
		return errors.New("server.http.addr is required")
	}
	if _, _, err := net.SplitHostPort(cfg.HTTP.Addr); err != nil {
		return errors.New("server.http.addr is not a valid host:port: " + err.Error())
	}
	return nil
}

func verifyStorage(cfg *StorageSection) error {
	switch cfg.Engine {
	case "badger":
		if cfg.DataDir == "" {
			return errors.New("storage.data_dir is required for the badger engine")
		}
		// Check if data directory exists or can be created
		if err := os.MkdirAll(cfg.DataDir, 0750); err != nil {
			return errors.New("cannot create data directory: " + err.Error())
		}
		if cfg.Badger.GCThreshold <= 0 || cfg.Badger.GCThreshold >= 1 {
			return errors.New("storage.badger.gc_threshold must be in (0, 1)")
		}
	case "memory":
		// No directory needed; state is lost on restart.
	default:
		return errors.New("storage.engine must be \"badger\" or \"memory\"")
	}
	return nil
}

func verifyRateLimit(cfg *RateLimitSection) error {
	if !cfg.Enabled {
		return nil
	}
	if cfg.RPS <= 0 {
		return errors.New("ratelimit.rps must be positive when enabled")
	}
	if cfg.Burst < 1 {
		return errors.New("ratelimit.burst must be at least 1 when enabled")
	}
	return nil
}
