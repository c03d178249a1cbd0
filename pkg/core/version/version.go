// ============================================================================
// utf8x - UTF-8 Text Utility
// ============================================================================
//
// Package:     version
// Description: Central version information for the library and the CLI
// Author:      Mike Stoffels
// Created:     2026-10-14
// License:     MIT
// ============================================================================

package version

import (
	"fmt"
	"runtime"
)

// Version constants
const (
	// Library is the version of the utf8x package
	Library = "1.0.0"

	// CLI is the version of the utf8x command
	CLI = "1.0.0"
)

// Build information, set with -ldflags "-X ..."
var (
	GitCommit = "development"
	BuildDate = "unknown"
)

// Info describes a build
type Info struct {
	Library   string `json:"library"`
	CLI       string `json:"cli"`
	GitCommit string `json:"git_commit"`
	BuildDate string `json:"build_date"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

// Get returns the build information of the running binary
func Get() Info {
	return Info{
		Library:   Library,
		CLI:       CLI,
		GitCommit: GitCommit,
		BuildDate: BuildDate,
		GoVersion: runtime.Version(),
		Platform:  runtime.GOOS + "/" + runtime.GOARCH,
	}
}

// ComponentVersion returns the version for a component name
func ComponentVersion(name string) string {
	switch name {
	case "cli", "utf8x-cli":
		return CLI
	default:
		return Library
	}
}

// String implements fmt.Stringer
func (i Info) String() string {
	return fmt.Sprintf("utf8x v%s (library v%s, commit %s, built %s, %s %s)",
		i.CLI, i.Library, i.GitCommit, i.BuildDate, i.GoVersion, i.Platform)
}
