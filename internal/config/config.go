// Package config loads server configuration from a TOML file with
// environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"
)

// PlaceholderRemoteURL is the sample value shipped in the example config.
// A deployment still carrying it has no usable remote and runs local-only.
const PlaceholderRemoteURL = "redis://YOUR-REMOTE-HOST:6379"

// Config is the full server configuration
type Config struct {
	Server   ServerConfig   `toml:"server"`
	Remote   RemoteConfig   `toml:"remote"`
	Local    LocalConfig    `toml:"local"`
	Admin    AdminConfig    `toml:"admin"`
	Session  SessionConfig  `toml:"session"`
	Narrator NarratorConfig `toml:"narrator"`
}

// ServerConfig holds HTTP listener settings
type ServerConfig struct {
	Host string `toml:"host"`
	Port int    `toml:"port"`
}

// RemoteConfig holds remote store settings
type RemoteConfig struct {
	URL          string `toml:"url"`
	PoolSize     int    `toml:"pool_size"`
	MinIdleConns int    `toml:"min_idle_conns"`
}

// Configured reports whether the remote store has real credentials. An
// empty or placeholder URL means the process is local-only from boot.
func (c RemoteConfig) Configured() bool {
	return c.URL != "" && c.URL != PlaceholderRemoteURL
}

// LocalConfig holds the durable local store settings
type LocalConfig struct {
	Path string `toml:"path"`
}

// AdminConfig holds the chief account settings
type AdminConfig struct {
	Email    string `toml:"email"`
	Password string `toml:"password"`
}

// SessionConfig holds HTTP session settings
type SessionConfig struct {
	Duration time.Duration `toml:"duration"`
}

// NarratorConfig holds text-generation endpoint settings
type NarratorConfig struct {
	APIKey  string `toml:"api_key"`
	BaseURL string `toml:"base_url"`
	Model   string `toml:"model"`
}

// Default returns the configuration used when no file is present
func Default() Config {
	return Config{
		Server: ServerConfig{
			Host: "0.0.0.0",
			Port: 8080,
		},
		Remote: RemoteConfig{
			PoolSize:     10,
			MinIdleConns: 2,
		},
		Local: LocalConfig{
			Path: "swanhunt.db",
		},
		Admin: AdminConfig{
			Email:    "chief@swanhunt.local",
			Password: "admin123",
		},
		Session: SessionConfig{
			Duration: 24 * time.Hour,
		},
	}
}

// Load reads the config file at path, falling back to defaults when the
// file does not exist, then applies environment overrides
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				return Config{}, fmt.Errorf("load config %s: %w", path, err)
			}
		}
	}

	applyEnv(&cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("SWANHUNT_REMOTE_URL"); v != "" {
		cfg.Remote.URL = v
	}
	if v := os.Getenv("SWANHUNT_LOCAL_PATH"); v != "" {
		cfg.Local.Path = v
	}
	if v := os.Getenv("SWANHUNT_ADMIN_EMAIL"); v != "" {
		cfg.Admin.Email = v
	}
	if v := os.Getenv("SWANHUNT_ADMIN_PASSWORD"); v != "" {
		cfg.Admin.Password = v
	}
	if v := os.Getenv("SWANHUNT_NARRATOR_KEY"); v != "" {
		cfg.Narrator.APIKey = v
	}
}
