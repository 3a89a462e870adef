// ============================================================================
// stringy - Unicode string values for Go
// ============================================================================
//
// Package:     version
// Description: Central version management for the library and the CLI
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants for all stringy components
const (
	// Library version of pkg/stringy and the facade
	Library = "1.0.0"

	// Component versions
	CLI   = "1.0.0"
	Utf8x = "1.0.0"
	Ascii = "1.0.0"
)

// Build metadata, set with -ldflags "-X"
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// ComponentVersion returns the version for a given component name
func ComponentVersion(name string) string {
	switch name {
	case "cli", "stringy-cli":
		return CLI
	case "utf8x":
		return Utf8x
	case "asciix":
		return Ascii
	default:
		return Library
	}
}

// BuildInfo describes the running binary
type BuildInfo struct {
	Version   string
	GitCommit string
	BuildDate string
	GoVersion string
	Platform  string
}

// Info returns the build information of the CLI
func Info() BuildInfo {
	return BuildInfo{
		Version:   CLI,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  fmt.Sprintf("%s/%s", runtime.GOOS, runtime.GOARCH),
	}
}

// String returns the one-line version banner
func (b BuildInfo) String() string {
	return fmt.Sprintf("stringy v%s (%s, %s)", b.Version, b.GitCommit, b.BuildDate)
}
