package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const appName = "statusmodal"

// Surface names accepted by the "surface" key.
const (
	SurfaceTUI     = "tui"
	SurfaceDesktop = "desktop"
	SurfaceBoth    = "both"
)

type Config struct {
	Icons   string `koanf:"icons"`   // "nerd", "unicode", or "none"
	Surface string `koanf:"surface"` // "tui", "desktop", or "both" (default: tui)
	Catalog string `koanf:"catalog"` // path to a YAML descriptor catalog

	HTTP HTTPConfig `koanf:"http"`
	Log  LogConfig  `koanf:"log"`
}

// HTTPConfig holds settings of the request wrapper.
type HTTPConfig struct {
	TimeoutSeconds int    `koanf:"timeout_seconds"` // request timeout (default: 30)
	UserAgent      string `koanf:"user_agent"`      // empty uses the built-in agent
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level    string `koanf:"level"`    // debug, info, warn, error (default: info)
	Encoding string `koanf:"encoding"` // "json" or "console" (default: json)
	File     string `koanf:"file"`     // log file (default: $XDG_STATE_HOME/statusmodal/statusmodal.log)
}

// Load reads the config files in priority order (last wins).
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given files in order, skipping missing ones.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := &Config{}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}

	cfg.Surface = strings.ToLower(strings.TrimSpace(cfg.Surface))
	if cfg.Catalog != "" {
		cfg.Catalog = expandPath(cfg.Catalog)
	}
	if cfg.Log.File != "" {
		cfg.Log.File = expandPath(cfg.Log.File)
	}

	return cfg, nil
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/statusmodal/config.toml
		filepath.Join(xdg.ConfigHome, appName, "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// GetSurface returns the configured surface, falling back to the terminal modal.
func (c *Config) GetSurface() string {
	switch c.Surface {
	case SurfaceTUI, SurfaceDesktop, SurfaceBoth:
		return c.Surface
	}
	return SurfaceTUI
}

// ShowsTUI reports whether the terminal modal is enabled.
func (c *Config) ShowsTUI() bool {
	s := c.GetSurface()
	return s == SurfaceTUI || s == SurfaceBoth
}

// ShowsDesktop reports whether desktop notifications are enabled.
func (c *Config) ShowsDesktop() bool {
	s := c.GetSurface()
	return s == SurfaceDesktop || s == SurfaceBoth
}

// HasCatalog returns true if a descriptor catalog is configured.
func (c *Config) HasCatalog() bool {
	return c.Catalog != ""
}

// GetHTTPTimeout returns the request timeout with the default applied.
func (c *Config) GetHTTPTimeout() time.Duration {
	if c.HTTP.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(c.HTTP.TimeoutSeconds) * time.Second
}

// GetLogConfig returns the log configuration with defaults applied.
func (c *Config) GetLogConfig() LogConfig {
	cfg := c.Log

	switch strings.ToLower(cfg.Level) {
	case "debug", "info", "warn", "error":
		cfg.Level = strings.ToLower(cfg.Level)
	default:
		cfg.Level = "info"
	}
	if cfg.Encoding != "console" {
		cfg.Encoding = "json"
	}
	if cfg.File == "" {
		cfg.File = filepath.Join(xdg.StateHome, appName, appName+".log")
	}

	return cfg
}
