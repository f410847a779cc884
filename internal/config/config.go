// Package config loads ssmshape settings from TOML and merges them with
// command-line flags. Priority: CLI > profile > defaults > built-in defaults.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// AppConfig is the parsed configuration file.
type AppConfig struct {
	Defaults Defaults           `toml:"defaults"`
	Profiles map[string]Profile `toml:"profiles"`
}

// Defaults holds values that apply when a profile does not set them.
type Defaults struct {
	LogLevel  string `toml:"log-level"`
	LogFormat string `toml:"log-format"`

	// Validation
	Strict       *bool    `toml:"strict"`
	FillTokens   *bool    `toml:"fill-tokens"`
	IgnoreFields []string `toml:"ignore-fields"`

	// Output of show and compare: text or json
	Format string `toml:"format"`

	WatchDebounce Duration `toml:"watch-debounce"`
}

// Profile is a named set of overrides, selected with --profile.
type Profile struct {
	// Operation used when --operation is omitted.
	Operation string `toml:"operation"`

	LogLevel  string `toml:"log-level"`
	LogFormat string `toml:"log-format"`

	Strict       *bool    `toml:"strict"`
	FillTokens   *bool    `toml:"fill-tokens"`
	IgnoreFields []string `toml:"ignore-fields"`

	Format string `toml:"format"`

	WatchDebounce Duration `toml:"watch-debounce"`
}

// Duration is a time.Duration written as a Go duration string ("250ms").
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", text, err)
	}
	if v < 0 {
		return fmt.Errorf("invalid duration %q: must not be negative", text)
	}
	d.Duration = v
	return nil
}

// MarshalText renders the duration string.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// LoadConfig loads configuration from path.
// A missing file yields an empty config; malformed TOML is an error.
func LoadConfig(path string) (*AppConfig, error) {
	path = expandTilde(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &AppConfig{Profiles: make(map[string]Profile)}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("failed to parse config file: unknown key %q", undecoded[0].String())
	}

	if cfg.Profiles == nil {
		cfg.Profiles = make(map[string]Profile)
	}
	return &cfg, nil
}

// GetProfile returns the profile with the given name, if it exists.
func (c *AppConfig) GetProfile(name string) (Profile, bool) {
	profile, exists := c.Profiles[name]
	return profile, exists
}

// DefaultConfigPath returns ~/.config/ssmshape/config.toml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "ssmshape", "config.toml")
}

func expandTilde(path string) string {
	if len(path) == 0 || path[0] != '~' {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[1:])
}
