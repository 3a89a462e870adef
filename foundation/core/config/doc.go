// Package config provides configuration loading for the stringy CLI.
//
// Package: config
// Title: Configuration Management
// Description: Loads TOML or YAML configuration files, applies defaults and
//              environment variable overrides, and exposes typed getters with
//              dot notation keys. Discover searches the usual locations for a
//              stringy configuration file.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-15 v0.2.0: Settings view for string defaults, dropped watching
//
// Usage:
//   cfg, err := config.Discover(config.DefaultDiscoveryOptions())
//   if err != nil {
//     return err
//   }
//   settings := cfg.Settings()
//   fmt.Println(settings.Encoding, cfg.GetString("log.level", "warn"))
//
// Environment variables override file values. With the prefix "STRINGY" the key
// "defaults.language" is read from STRINGY_DEFAULTS_LANGUAGE.
package config
