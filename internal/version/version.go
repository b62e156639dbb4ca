// Package version holds devkit build information.
package version

import (
	"fmt"
	"runtime/debug"
)

// Set at build time:
// go build -ldflags "-X github.com/shjeon-96/dev-tool-kit-sub005/internal/version.Version=0.2.0"
var (
	// Version is the semantic version of devkit
	Version = "0.4.0"

	// Commit is the git commit hash
	Commit = "unknown"

	// BuildDate is the build timestamp
	BuildDate = "unknown"
)

func init() {
	if Commit != "unknown" {
		return
	}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return
	}
	applyBuildSettings(info.Settings)
}

// applyBuildSettings fills Commit and BuildDate from the VCS stamps the Go
// toolchain embeds in module builds.
func applyBuildSettings(settings []debug.BuildSetting) {
	for _, s := range settings {
		switch s.Key {
		case "vcs.revision":
			if s.Value != "" {
				Commit = s.Value
			}
		case "vcs.time":
			if BuildDate == "unknown" && s.Value != "" {
				BuildDate = s.Value
			}
		}
	}
}

// Info returns the version with an abbreviated commit when one is known.
func Info() string {
	if Commit != "unknown" && len(Commit) > 7 {
		return Version + " (" + Commit[:7] + ")"
	}
	return Version
}

// Full returns complete version information
func Full() string {
	return fmt.Sprintf("devkit version %s\nCommit: %s\nBuilt: %s", Version, Commit, BuildDate)
}
