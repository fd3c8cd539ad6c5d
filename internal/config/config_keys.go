// config_keys.go provides key-value access to configuration settings.
//
// Separated from config.go to isolate the key enumeration and string-based
// get/set logic. config.go focuses on YAML structure and loading; this file
// handles the CLI and MCP interface where config is accessed by string keys
// (e.g., "defaults.quality").

package config

import (
	"fmt"
	"slices"
	"strconv"
)

// ValidKeys returns all valid configuration keys.
func ValidKeys() []string {
	return []string{
		"defaults.quality",
		"defaults.theme_color",
		"defaults.png_color",
		"defaults.splashscreen_color",
		"defaults.svg_color",
		"defaults.splashscreen_icon_ratio",
	}
}

// IsValidKey returns true if the key is a valid configuration key.
func IsValidKey(key string) bool {
	return slices.Contains(ValidKeys(), key)
}

// Get returns the value of a configuration key as a string.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "defaults.quality":
		return strconv.Itoa(c.Quality()), nil
	case "defaults.theme_color":
		return c.ThemeColor(), nil
	case "defaults.png_color":
		return c.PngColor(), nil
	case "defaults.splashscreen_color":
		return c.SplashscreenColor(), nil
	case "defaults.svg_color":
		return c.SvgColor(), nil
	case "defaults.splashscreen_icon_ratio":
		return strconv.FormatFloat(c.SplashscreenIconRatio(), 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
}

// Set sets the value of a configuration key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "defaults.quality":
		n, err := strconv.Atoi(value)
		if err != nil || n < MinQuality || n > MaxQuality {
			return fmt.Errorf("%w: defaults.quality must be an integer between %d and %d",
				ErrInvalidValue, MinQuality, MaxQuality)
		}
		c.Defaults.Quality = &n
	case "defaults.theme_color":
		if !hexColour(value) {
			return fmt.Errorf("%w: defaults.theme_color must be a 3 or 6 digit hex colour", ErrInvalidValue)
		}
		c.Defaults.ThemeColor = &value
	case "defaults.png_color":
		if !hexColour(value) {
			return fmt.Errorf("%w: defaults.png_color must be a 3 or 6 digit hex colour", ErrInvalidValue)
		}
		c.Defaults.PngColor = &value
	case "defaults.splashscreen_color":
		if !hexColour(value) {
			return fmt.Errorf("%w: defaults.splashscreen_color must be a 3 or 6 digit hex colour", ErrInvalidValue)
		}
		c.Defaults.SplashscreenColor = &value
	case "defaults.svg_color":
		if !hexColour(value) {
			return fmt.Errorf("%w: defaults.svg_color must be a 3 or 6 digit hex colour", ErrInvalidValue)
		}
		c.Defaults.SvgColor = &value
	case "defaults.splashscreen_icon_ratio":
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f < MinRatio || f > MaxRatio {
			return fmt.Errorf("%w: defaults.splashscreen_icon_ratio must be a number between %g and %g",
				ErrInvalidValue, MinRatio, MaxRatio)
		}
		c.Defaults.SplashscreenIconRatio = &f
	default:
		return fmt.Errorf("%w: %s", ErrUnknownKey, key)
	}
	return nil
}

// All returns all configuration values as a map.
func (c *Config) All() map[string]string {
	return map[string]string{
		"defaults.quality":                 strconv.Itoa(c.Quality()),
		"defaults.theme_color":             c.ThemeColor(),
		"defaults.png_color":               c.PngColor(),
		"defaults.splashscreen_color":      c.SplashscreenColor(),
		"defaults.svg_color":               c.SvgColor(),
		"defaults.splashscreen_icon_ratio": strconv.FormatFloat(c.SplashscreenIconRatio(), 'f', -1, 64),
	}
}

// IsSet returns true if the key has an explicit value (not just defaults).
func (c *Config) IsSet(key string) bool {
	switch key {
	case "defaults.quality":
		return c.Defaults.Quality != nil
	case "defaults.theme_color":
		return c.Defaults.ThemeColor != nil
	case "defaults.png_color":
		return c.Defaults.PngColor != nil
	case "defaults.splashscreen_color":
		return c.Defaults.SplashscreenColor != nil
	case "defaults.svg_color":
		return c.Defaults.SvgColor != nil
	case "defaults.splashscreen_icon_ratio":
		return c.Defaults.SplashscreenIconRatio != nil
	default:
		return false
	}
}
