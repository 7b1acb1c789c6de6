package config

import (
	"os"
	"path/filepath"
	"strconv"

	"github.com/pelletier/go-toml/v2"
)

// AppConfig is the service configuration, loaded from an optional
// config.toml beside the executable with env-var overrides for local
// runs and containers.
type AppConfig struct {
	Server  ServerConfig  `toml:"server"`
	Limits  LimitsConfig  `toml:"limits"`
	Cache   CacheConfig   `toml:"cache"`
	Advisor AdvisorConfig `toml:"advisor"`
}

type ServerConfig struct {
	Port int `toml:"port"`
}

// LimitsConfig configures the per-IP rate limiter.
type LimitsConfig struct {
	RateBurst         int `toml:"rate_burst"`
	RateWindowSeconds int `toml:"rate_window_seconds"`
}

type CacheConfig struct {
	// RedisAddr enables the Redis cache when non-empty; the in-memory
	// cache is used otherwise.
	RedisAddr string `toml:"redis_addr"`
}

type AdvisorConfig struct {
	Enabled bool `toml:"enabled"`
}

// DefaultConfig returns the configuration used when no config.toml
// exists.
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port: 8080,
		},
		Limits: LimitsConfig{
			RateBurst:         10,
			RateWindowSeconds: 60,
		},
		Cache: CacheConfig{
			RedisAddr: "",
		},
		Advisor: AdvisorConfig{
			Enabled: true,
		},
	}
}

// Load reads config.toml from the executable's directory, falling back
// to defaults when the file does not exist, then applies env overrides.
func Load() (*AppConfig, error) {
	cfg := DefaultConfig()

	exeDir := "."
	if exe, err := os.Executable(); err == nil {
		exeDir = filepath.Dir(exe)
	}

	data, err := os.ReadFile(filepath.Join(exeDir, "config.toml"))
	switch {
	case os.IsNotExist(err):
		// no config file, defaults apply
	case err != nil:
		return nil, err
	default:
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, err
		}
	}

	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Server.Port = port
		}
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		cfg.Cache.RedisAddr = v
	}

	return cfg, nil
}
