package version

import (
	"regexp"
	"runtime"
	"strings"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"Library", Library},
		{"CLI", CLI},
		{"Utf8x", Utf8x},
		{"Ascii", Ascii},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.version == "" {
				t.Errorf("%s version is empty", tt.name)
			}
			if !semverRegex.MatchString(tt.version) {
				t.Errorf("%s version %q does not match semver format (x.y.z)", tt.name, tt.version)
			}
		})
	}
}

func TestComponentVersion(t *testing.T) {
	tests := []struct {
		name      string
		component string
		expected  string
	}{
		{"cli", "cli", CLI},
		{"cli alias", "stringy-cli", CLI},
		{"utf8x", "utf8x", Utf8x},
		{"asciix", "asciix", Ascii},
		{"unknown component", "unknown", Library},
		{"empty component", "", Library},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := ComponentVersion(tt.component)
			if result != tt.expected {
				t.Errorf("ComponentVersion(%q) = %q, want %q", tt.component, result, tt.expected)
			}
		})
	}
}

func TestInfo(t *testing.T) {
	info := Info()

	if info.Version != CLI {
		t.Errorf("Info().Version = %q, want %q", info.Version, CLI)
	}
	if info.GoVersion != runtime.Version() {
		t.Errorf("Info().GoVersion = %q, want %q", info.GoVersion, runtime.Version())
	}
	if info.Platform != runtime.GOOS+"/"+runtime.GOARCH {
		t.Errorf("Info().Platform = %q", info.Platform)
	}
	if !strings.HasPrefix(info.String(), "stringy v"+CLI) {
		t.Errorf("Info().String() = %q", info.String())
	}
}
