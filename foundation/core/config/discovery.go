// File: discovery.go
// Title: Configuration File Discovery
// Description: Searches the working directory and the user configuration
//              directories for a stringy configuration file.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2026-10-15 v0.2.0: XDG and home directory search paths, optional files

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/stringy/foundation/core/error"
)

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string               // Directories to search for config files
	Filenames  []string               // Base filenames to look for (without extension)
	Extensions []string               // File extensions to try (.toml, .yaml, .yml)
	EnvPrefix  string                 // Environment variable prefix for overrides
	Defaults   map[string]interface{} // Default values applied below the file
	Required   bool                   // Whether finding a config file is required
}

// DefaultDiscoveryOptions returns the stringy search locations
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, "stringy"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "stringy"))
	}

	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"stringy"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  EnvPrefix,
		Defaults:   DefaultValues(),
		Required:   false,
	}
}

// Discover finds and loads the first configuration file. When no file exists and
// the file is not required, a configuration holding only the defaults is returned.
func Discover(options DiscoveryOptions) (*Config, error) {
	configPath, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, mdwerror.Wrap(err, fmt.Sprintf("no configuration file found in paths: %s",
				strings.Join(ListPossibleConfigFiles(options), ", "))).
				WithCode(mdwerror.CodeConfigError).
				WithOperation("config.Discover")
		}
		return New(options.EnvPrefix, options.Defaults), nil
	}

	cfg, err := LoadWithOptions(configPath, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Defaults:  options.Defaults,
	})
	if err != nil {
		return nil, mdwerror.Wrap(err, fmt.Sprintf("found config file %s but failed to load", configPath)).
			WithOperation("config.Discover").
			WithDetail("configPath", configPath)
	}
	return cfg, nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	for _, configPath := range ListPossibleConfigFiles(options) {
		if info, err := os.Stat(configPath); err == nil && !info.IsDir() {
			return configPath, nil
		}
	}

	return "", mdwerror.New("configuration file not found").
		WithCode(mdwerror.CodeConfigError).
		WithOperation("config.FindConfigFile")
}

// ListPossibleConfigFiles returns all candidate configuration file paths in search order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	var paths []string
	for _, path := range options.Paths {
		for _, filename := range options.Filenames {
			for _, ext := range options.Extensions {
				paths = append(paths, filepath.Join(path, filename+ext))
			}
		}
	}
	return paths
}
