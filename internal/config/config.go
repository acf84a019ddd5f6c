// Package config loads game configuration from YAML with environment
// variable overrides.
package config

import (
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config holds game-wide configuration settings.
type Config struct {
	World  WorldConfig  `yaml:"world"`
	Save   SaveConfig   `yaml:"save"`
	Viewer ViewerConfig `yaml:"viewer"`
}

// WorldConfig holds world generation settings.
type WorldConfig struct {
	// Seed drives the generator. 0 draws a fresh seed at generation time.
	Seed int64 `yaml:"seed"`

	// Width and Height are the map dimensions in cells.
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// SaveConfig holds persistence settings.
type SaveConfig struct {
	// Driver specifies the save store backend: "sqlite" or "postgres".
	Driver string `yaml:"driver"`

	// SQLitePath is the database file path for the sqlite driver.
	SQLitePath string `yaml:"sqlite_path"`

	// PostgresDSN is the connection string for the postgres driver.
	PostgresDSN string `yaml:"postgres_dsn"`

	// SnapshotDir is where standalone world snapshot files are written.
	SnapshotDir string `yaml:"snapshot_dir"`
}

// ViewerConfig holds settings for the WebSocket world viewer.
type ViewerConfig struct {
	// ListenAddr is the address the viewer listens on.
	ListenAddr string `yaml:"listen_addr"`

	// AllowedOrigins is a list of origins allowed to connect via WebSocket.
	// Empty list enforces same-origin policy.
	// Use "*" to allow all origins (not recommended for production).
	AllowedOrigins []string `yaml:"allowed_origins"`

	// MaxMessageSize is the maximum WebSocket message size in bytes.
	MaxMessageSize int64 `yaml:"max_message_size"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		World: WorldConfig{
			Seed:   0, // Draw a fresh seed
			Width:  256,
			Height: 256,
		},
		Save: SaveConfig{
			Driver:      "sqlite",
			SQLitePath:  "data/saves.db",
			SnapshotDir: "data/snapshots",
		},
		Viewer: ViewerConfig{
			ListenAddr:     ":8080",
			AllowedOrigins: []string{}, // Same-origin only by default
			MaxMessageSize: 4096,
		},
	}
}

// LoadConfig loads configuration from a YAML file and applies environment
// variable overrides. If the file doesn't exist, defaults are used.
func LoadConfig(path string) (*Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(config)
			return config, nil
		}
		return config, err
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return DefaultConfig(), err
	}

	applyEnvOverrides(config)
	return config, nil
}

// applyEnvOverrides layers WILDLANDS_* environment variables on top of the
// loaded configuration.
func applyEnvOverrides(config *Config) {
	if seed := os.Getenv("WILDLANDS_SEED"); seed != "" {
		if v, err := strconv.ParseInt(seed, 10, 64); err == nil {
			config.World.Seed = v
		}
	}
	if width := os.Getenv("WILDLANDS_WIDTH"); width != "" {
		if v, err := strconv.Atoi(width); err == nil {
			config.World.Width = v
		}
	}
	if height := os.Getenv("WILDLANDS_HEIGHT"); height != "" {
		if v, err := strconv.Atoi(height); err == nil {
			config.World.Height = v
		}
	}
	if driver := os.Getenv("WILDLANDS_SAVE_DRIVER"); driver != "" {
		config.Save.Driver = driver
	}
	if path := os.Getenv("WILDLANDS_SQLITE_PATH"); path != "" {
		config.Save.SQLitePath = path
	}
	if dsn := os.Getenv("WILDLANDS_POSTGRES_DSN"); dsn != "" {
		config.Save.PostgresDSN = dsn
	}
	if addr := os.Getenv("WILDLANDS_VIEWER_ADDR"); addr != "" {
		config.Viewer.ListenAddr = addr
	}
}

// IsOriginAllowed checks if the given origin is allowed based on the config.
// Returns true if:
// - AllowedOrigins contains "*" (allow all)
// - AllowedOrigins contains the exact origin
// - AllowedOrigins is empty and origin matches the request host (same-origin)
func (c *ViewerConfig) IsOriginAllowed(origin, requestHost string) bool {
	// If no origins configured, enforce same-origin policy
	if len(c.AllowedOrigins) == 0 {
		return isSameOrigin(origin, requestHost)
	}

	for _, allowed := range c.AllowedOrigins {
		// Wildcard allows all origins
		if allowed == "*" {
			return true
		}
		// Exact match
		if allowed == origin {
			return true
		}
	}

	return false
}

// isSameOrigin checks if the origin matches the request host (same-origin policy).
func isSameOrigin(origin, requestHost string) bool {
	if origin == "" {
		return true // No origin header means same-origin (e.g., non-browser client)
	}

	// Extract host from origin URL (e.g., "http://localhost:3000" -> "localhost:3000")
	originHost := origin
	if idx := strings.Index(origin, "://"); idx != -1 {
		originHost = origin[idx+3:]
	}
	// Remove trailing slash if present
	originHost = strings.TrimSuffix(originHost, "/")

	return originHost == requestHost
}
