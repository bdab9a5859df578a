// Package app provides the main application helpers of the command line tools.
package app

import (
	"fmt"
	"strings"

	"github.com/retroenv/retrogolib/log"
)

// Build describes the version information injected at build time.
type Build struct {
	Version string
	Commit  string
	Date    string
}

// VersionString returns the version with the abbreviated commit appended.
func (b Build) VersionString() string {
	version := b.Version
	if version == "" {
		version = "dev"
	}

	commit := b.Commit
	if commit != "" {
		if len(commit) > 7 {
			commit = commit[:7]
		}
		version += fmt.Sprintf(" (%s)", commit)
	}
	return version
}

// PrintBanner logs the application name and version information.
func PrintBanner(logger *log.Logger, name string, quiet bool, build Build) {
	if quiet {
		return
	}

	logger.Info(name, log.String("version", build.VersionString()))

	if build.Date != "" && !strings.Contains(build.Date, "unknown") {
		logger.Info("Build", log.String("date", build.Date))
	}
}
