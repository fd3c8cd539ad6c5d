// Package config provides reading and writing of iconforge configuration.
// Supports both global (~/.iconforge/config.yaml) and local (.iconforge/config.yaml).
// Reading: uses local if it exists, otherwise global.
// Writing: defaults to global, use --local for local.
//
// The config holds the default-parameters table consumed by the parameter
// validators: compression quality, the four colour defaults, and the
// splashscreen icon ratio. Pointer fields distinguish "not set" from an
// explicit zero so defaults only apply when the user has not set a value.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	// ErrNoConfigPath is returned when the config path cannot be determined.
	ErrNoConfigPath = errors.New("cannot determine config path")
	// ErrUnknownKey is returned when getting/setting an unknown config key.
	ErrUnknownKey = errors.New("unknown config key")
	// ErrInvalidValue is returned when a config value is invalid.
	ErrInvalidValue = errors.New("invalid config value")
)

// Scope represents the configuration scope (global or local).
type Scope int

const (
	// ScopeGlobal is user-wide config in ~/.iconforge/config.yaml (default)
	ScopeGlobal Scope = iota
	// ScopeLocal is project-specific config in .iconforge/config.yaml
	ScopeLocal
)

// Defaults holds the default-parameters table.
type Defaults struct {
	Quality               *int     `yaml:"quality,omitempty"`
	ThemeColor            *string  `yaml:"theme_color,omitempty"`
	PngColor              *string  `yaml:"png_color,omitempty"`
	SplashscreenColor     *string  `yaml:"splashscreen_color,omitempty"`
	SvgColor              *string  `yaml:"svg_color,omitempty"`
	SplashscreenIconRatio *float64 `yaml:"splashscreen_icon_ratio,omitempty"`
}

// Built-in defaults applied when not configured. Colours are hex digits
// without the "#" prefix; normalisation adds the prefix.
const (
	DefaultQuality               = 5
	DefaultThemeColor            = "1976D2"
	DefaultPngColor              = "000000"
	DefaultSplashscreenColor     = "FFFFFF"
	DefaultSvgColor              = "CC0033"
	DefaultSplashscreenIconRatio = 40.0
)

// Validation bounds for configuration values. Quality matches the range
// the quality validator accepts; the ratio is a percentage.
const (
	MinQuality = 1
	MaxQuality = 12
	MinRatio   = 0.0
	MaxRatio   = 100.0
)

// Config contains configuration for iconforge.
type Config struct {
	Defaults Defaults `yaml:"defaults,omitempty"`

	// path is the file this config was loaded from (for Save)
	path  string
	scope Scope
}

// hexColour reports whether s is a 3- or 6-digit hex colour without prefix.
func hexColour(s string) bool {
	if len(s) != 3 && len(s) != 6 {
		return false
	}
	for _, r := range s {
		if !strings.ContainsRune("0123456789abcdefABCDEF", r) {
			return false
		}
	}
	return true
}

// Validate checks that all configured values are within acceptable bounds.
// Returns nil if all values are valid or not set (defaults will be used).
func (c *Config) Validate() error {
	if c.Defaults.Quality != nil {
		v := *c.Defaults.Quality
		if v < MinQuality || v > MaxQuality {
			return fmt.Errorf("%w: defaults.quality must be between %d and %d, got %d",
				ErrInvalidValue, MinQuality, MaxQuality, v)
		}
	}
	if c.Defaults.SplashscreenIconRatio != nil {
		v := *c.Defaults.SplashscreenIconRatio
		if v < MinRatio || v > MaxRatio {
			return fmt.Errorf("%w: defaults.splashscreen_icon_ratio must be between %g and %g, got %g",
				ErrInvalidValue, MinRatio, MaxRatio, v)
		}
	}
	colours := map[string]*string{
		"defaults.theme_color":        c.Defaults.ThemeColor,
		"defaults.png_color":          c.Defaults.PngColor,
		"defaults.splashscreen_color": c.Defaults.SplashscreenColor,
		"defaults.svg_color":          c.Defaults.SvgColor,
	}
	for key, v := range colours {
		if v != nil && !hexColour(*v) {
			return fmt.Errorf("%w: %s must be a 3 or 6 digit hex colour, got %q",
				ErrInvalidValue, key, *v)
		}
	}
	return nil
}

// Quality returns the default compression quality (defaults to 5).
func (c *Config) Quality() int {
	if c.Defaults.Quality == nil {
		return DefaultQuality
	}
	return *c.Defaults.Quality
}

// ThemeColor returns the default theme colour hex digits.
func (c *Config) ThemeColor() string {
	if c.Defaults.ThemeColor == nil {
		return DefaultThemeColor
	}
	return *c.Defaults.ThemeColor
}

// PngColor returns the default PNG accent colour hex digits.
func (c *Config) PngColor() string {
	if c.Defaults.PngColor == nil {
		return DefaultPngColor
	}
	return *c.Defaults.PngColor
}

// SplashscreenColor returns the default splashscreen fill colour hex digits.
func (c *Config) SplashscreenColor() string {
	if c.Defaults.SplashscreenColor == nil {
		return DefaultSplashscreenColor
	}
	return *c.Defaults.SplashscreenColor
}

// SvgColor returns the default SVG colour hex digits.
func (c *Config) SvgColor() string {
	if c.Defaults.SvgColor == nil {
		return DefaultSvgColor
	}
	return *c.Defaults.SvgColor
}

// SplashscreenIconRatio returns the default icon-to-splashscreen ratio
// as a percentage (defaults to 40).
func (c *Config) SplashscreenIconRatio() float64 {
	if c.Defaults.SplashscreenIconRatio == nil {
		return DefaultSplashscreenIconRatio
	}
	return *c.Defaults.SplashscreenIconRatio
}

// LocalPath returns the path to the local (project) config file.
func LocalPath() string {
	return filepath.Join(".iconforge", "config.yaml")
}

// GlobalPath returns the path to the global (user) config file: ~/.iconforge/config.yaml
func GlobalPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".iconforge", "config.yaml")
}

// Load reads configuration: uses local if it exists, otherwise global.
func Load() (*Config, error) {
	if _, err := os.Stat(LocalPath()); err == nil {
		return LoadScope(ScopeLocal)
	}
	return LoadScope(ScopeGlobal)
}

// LoadScope reads configuration from a specific scope.
func LoadScope(scope Scope) (*Config, error) {
	path := pathForScope(scope)
	if path == "" {
		return &Config{scope: scope}, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return &Config{path: path, scope: scope}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read config file %s: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("malformed config file %s: %w\n\nTo fix: edit the file to correct the YAML syntax, or delete it to use defaults", path, err)
	}
	cfg.path = path
	cfg.scope = scope

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return &cfg, nil
}

// Scope returns which scope this config was loaded from.
func (c *Config) Scope() Scope {
	return c.scope
}

// Save writes the configuration to its original location.
func (c *Config) Save() error {
	if c.path == "" {
		c.path = pathForScope(c.scope)
	}
	if c.path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(c.path)
}

// SaveScope writes the configuration to the specified scope.
func (c *Config) SaveScope(scope Scope) error {
	path := pathForScope(scope)
	if path == "" {
		return ErrNoConfigPath
	}
	return c.saveToPath(path)
}

// saveToPath writes configuration to a specific filesystem path.
// Creates parent directories as needed with mode 0755.
func (c *Config) saveToPath(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// pathForScope returns the filesystem path for a given scope.
func pathForScope(scope Scope) string {
	switch scope {
	case ScopeLocal:
		return LocalPath()
	case ScopeGlobal:
		return GlobalPath()
	default:
		return ""
	}
}
