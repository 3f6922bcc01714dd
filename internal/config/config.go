// Package config holds the client settings: lobby endpoint, caller
// identity and retry behavior. Values come from an optional YAML file with
// LOBBY_* environment variables taking precedence.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// PlaceholderCallerID is used when the host context provides no identity.
// It exists so connectivity can be tested outside the hosting platform.
const PlaceholderCallerID = "guest"

// Config holds the client connection settings.
type Config struct {
	// ServerURL is the lobby server base, e.g. "wss://lobby.example.com".
	// The scheme mirrors the page's transport security.
	ServerURL string `yaml:"server_url"`
	// CallerID is the identity embedded in the endpoint path. Normally it
	// comes from the host platform's session handoff.
	CallerID string `yaml:"caller_id"`
	// RetryDelaySec is the fixed reconnect delay after a drop.
	RetryDelaySec int `yaml:"retry_delay_sec"`
	// DialTimeoutSec bounds the websocket handshake.
	DialTimeoutSec int `yaml:"dial_timeout_sec"`
}

// Default returns the development settings.
func Default() Config {
	return Config{
		ServerURL:      "ws://127.0.0.1:8000",
		CallerID:       PlaceholderCallerID,
		RetryDelaySec:  5,
		DialTimeoutSec: 5,
	}
}

// Load reads settings from the YAML file at path (skipped when path is
// empty or the file does not exist) and applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	cfg.ServerURL = getEnv("LOBBY_SERVER_URL", cfg.ServerURL)
	cfg.CallerID = getEnv("LOBBY_CALLER_ID", cfg.CallerID)
	cfg.RetryDelaySec = getEnvAsInt("LOBBY_RETRY_DELAY_SEC", cfg.RetryDelaySec)
	cfg.DialTimeoutSec = getEnvAsInt("LOBBY_DIAL_TIMEOUT_SEC", cfg.DialTimeoutSec)

	if cfg.CallerID == "" {
		cfg.CallerID = PlaceholderCallerID
	}
	return cfg, nil
}

// Endpoint returns the full websocket endpoint with the caller identity
// embedded: {ws|wss}://<host>/ws/<callerId>.
func (c Config) Endpoint() string {
	return fmt.Sprintf("%s/ws/%s", c.ServerURL, c.CallerID)
}

// RetryDelay returns the reconnect delay as a duration.
func (c Config) RetryDelay() time.Duration {
	return time.Duration(c.RetryDelaySec) * time.Second
}

// DialTimeout returns the handshake timeout as a duration.
func (c Config) DialTimeout() time.Duration {
	return time.Duration(c.DialTimeoutSec) * time.Second
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
