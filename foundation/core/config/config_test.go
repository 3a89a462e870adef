// File: config_test.go
// Title: Configuration Tests
// Description: Tests for loading, defaults, environment overrides, discovery
//              and the settings view.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-15

package config

import (
	"os"
	"path/filepath"
	"testing"

	mdwerror "github.com/msto63/stringy/foundation/core/error"
)

const sampleTOML = `
[defaults]
encoding = "ISO-8859-1"
language = "de"

[slug.replacements]
"&" = "und"

[log]
level = "debug"
`

const sampleYAML = `
defaults:
  language: tr
  separator: _
log:
  format: json
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}
	return path
}

func TestLoadFromString(t *testing.T) {
	tests := []struct {
		name    string
		content string
		format  Format
		key     string
		want    string
	}{
		{"toml", sampleTOML, FormatTOML, "defaults.language", "de"},
		{"auto means toml", sampleTOML, FormatAuto, "log.level", "debug"},
		{"yaml", sampleYAML, FormatYAML, "defaults.separator", "_"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := LoadFromString(tt.content, tt.format)
			if err != nil {
				t.Fatalf("LoadFromString() error = %v", err)
			}
			if got := cfg.GetString(tt.key); got != tt.want {
				t.Errorf("GetString(%q) = %q; want %q", tt.key, got, tt.want)
			}
		})
	}
}

func TestLoadFromStringInvalid(t *testing.T) {
	_, err := LoadFromString("[defaults\nencoding = ", FormatTOML)
	if err == nil {
		t.Fatal("LoadFromString() error = nil; want parse error")
	}
	if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
		t.Errorf("error code = %v; want %v", mdwerror.GetCode(err), mdwerror.CodeInvalidConfig)
	}
}

func TestLoadWithDefaults(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "stringy.toml", sampleTOML)

	cfg, err := LoadWithOptions(path, LoadOptions{Format: FormatAuto, Defaults: DefaultValues()})
	if err != nil {
		t.Fatalf("LoadWithOptions() error = %v", err)
	}

	s := cfg.Settings()
	if s.Encoding != "ISO-8859-1" || s.Language != "de" {
		t.Errorf("Settings() = %+v; file values lost", s)
	}
	if s.Separator != "-" || !s.Lowercase {
		t.Errorf("Settings() = %+v; nested defaults not merged", s)
	}
	if s.Replacements["&"] != "und" {
		t.Errorf("Replacements = %v", s.Replacements)
	}
	if cfg.FilePath() != path || cfg.Format() != FormatTOML {
		t.Errorf("FilePath/Format = %q/%v", cfg.FilePath(), cfg.Format())
	}
}

func TestLoadErrors(t *testing.T) {
	if _, err := Load("  "); !mdwerror.HasCode(err, mdwerror.CodeInvalidInput) {
		t.Errorf("Load(blank) error = %v; want INVALID_INPUT", err)
	}
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); !mdwerror.HasCode(err, mdwerror.CodeConfigError) {
		t.Errorf("Load(missing) error = %v; want CONFIG_ERROR", err)
	}
}

func TestEnvOverride(t *testing.T) {
	t.Setenv("STRINGY_DEFAULTS_LANGUAGE", "fr")
	t.Setenv("STRINGY_DEFAULTS_LOWERCASE", "false")

	cfg := New(EnvPrefix, DefaultValues())

	if got := cfg.GetString("defaults.language"); got != "fr" {
		t.Errorf("GetString(defaults.language) = %q; want fr", got)
	}
	if cfg.GetBool("defaults.lowercase", true) {
		t.Error("GetBool(defaults.lowercase) = true; want env override false")
	}
}

func TestGettersWithDefaults(t *testing.T) {
	cfg, err := LoadFromString("count = 3\nflag = \"true\"\nlist = [\"a\", 1]\n", FormatTOML)
	if err != nil {
		t.Fatalf("LoadFromString() error = %v", err)
	}

	if got := cfg.GetInt("count"); got != 3 {
		t.Errorf("GetInt(count) = %d; want 3", got)
	}
	if got := cfg.GetInt("missing", 7); got != 7 {
		t.Errorf("GetInt(missing, 7) = %d; want 7", got)
	}
	if !cfg.GetBool("flag") {
		t.Error("GetBool(flag) = false; want true")
	}
	if got := cfg.GetStringSlice("list"); len(got) != 2 || got[1] != "1" {
		t.Errorf("GetStringSlice(list) = %v", got)
	}
	if cfg.Has("nope") || !cfg.Has("count") {
		t.Error("Has() mismatch")
	}
}

func TestSetAndGetAll(t *testing.T) {
	cfg := New("", nil)
	cfg.Set("defaults.separator", "_")

	if got := cfg.GetString("defaults.separator"); got != "_" {
		t.Errorf("GetString() = %q; want _", got)
	}

	all := cfg.GetAll()
	all["defaults"].(map[string]interface{})["separator"] = "x"
	if got := cfg.GetString("defaults.separator"); got != "_" {
		t.Error("GetAll() must return a deep copy")
	}
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "stringy.yaml", sampleYAML)

	options := DefaultDiscoveryOptions()
	options.Paths = []string{filepath.Join(dir, "none"), dir}
	options.EnvPrefix = ""

	cfg, err := Discover(options)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if got := cfg.Settings(); got.Language != "tr" || got.LogFormat != "json" || got.Encoding != "UTF-8" {
		t.Errorf("Settings() = %+v", got)
	}
}

func TestDiscoverNotFound(t *testing.T) {
	options := DefaultDiscoveryOptions()
	options.Paths = []string{t.TempDir()}
	options.EnvPrefix = ""

	cfg, err := Discover(options)
	if err != nil {
		t.Fatalf("Discover() error = %v", err)
	}
	if got := cfg.Settings().Language; got != "en" {
		t.Errorf("Language = %q; want en", got)
	}

	options.Required = true
	if _, err := Discover(options); err == nil {
		t.Error("Discover(required) error = nil")
	}
}
