// File: settings.go
// Title: Stringy Settings
// Description: Typed view on the configuration keys used by the CLI.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-15
// Modified: 2026-10-15
//
// Change History:
// - 2026-10-15 v0.1.0: Initial implementation

package config

// EnvPrefix is the environment variable prefix for stringy overrides
const EnvPrefix = "STRINGY"

// Settings holds the defaults applied to every CLI operation
type Settings struct {
	Encoding     string
	Language     string
	Separator    string
	Lowercase    bool
	Replacements map[string]string
	LogLevel     string
	LogFormat    string
}

// DefaultValues returns the built-in configuration as nested tables
func DefaultValues() map[string]interface{} {
	return map[string]interface{}{
		"defaults": map[string]interface{}{
			"encoding":  "UTF-8",
			"language":  "en",
			"separator": "-",
			"lowercase": true,
		},
		"log": map[string]interface{}{
			"level":  "warn",
			"format": "text",
		},
	}
}

// Settings reads the typed settings from the configuration
func (c *Config) Settings() Settings {
	return Settings{
		Encoding:     c.GetString("defaults.encoding", "UTF-8"),
		Language:     c.GetString("defaults.language", "en"),
		Separator:    c.GetString("defaults.separator", "-"),
		Lowercase:    c.GetBool("defaults.lowercase", true),
		Replacements: c.GetStringMap("slug.replacements"),
		LogLevel:     c.GetString("log.level", "warn"),
		LogFormat:    c.GetString("log.format", "text"),
	}
}
