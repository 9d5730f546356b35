package internal

import (
	"fmt"
	"runtime"
	"strings"
)

const (

	// Name of the tool, used for the binary, config directory and log group.
	Name = "relpack"

	// String to indicate an undefined variable
	defaultUndefined = "(undefined)"

	// String to indicate a local (non-pipeline) build
	defaultLocalBuild = "(local)"
)

var (
	version   = "" // Version number (e.g., "1.2.3")
	gitCommit = "" // Git commit hash (e.g., "a1b2c3d4")

	rawQuiet   = "false" // Whether to enable quiet mode
	rawDebug   = "false" // Whether to enable debug mode
	rawVerbose = "false" // Whether to enable verbose logging
)

// Returns the relpack version.
//
// If the version is not set, returns "(undefined)". A leading "v" is stripped.
func Version() string {
	v := strings.TrimSpace(version)
	if v == "" {
		return defaultUndefined
	}
	return strings.TrimPrefix(strings.ToLower(v), "v")
}

// Returns the git commit hash relpack was built from, or "(undefined)".
func GitCommit() string {
	c := strings.TrimSpace(gitCommit)
	if c == "" {
		return defaultUndefined
	}
	return c
}

// Returns true if either the version or the commit was left unset at build time.
func IsLocal() bool {
	return strings.TrimSpace(version) == "" || strings.TrimSpace(gitCommit) == ""
}

// Returns a detailed version string.
//
// Local builds report "(local)". Otherwise the string is formatted as
// "<version> <git-commit> [<os>/<arch>]".
func VersionString() string {
	if IsLocal() {
		return defaultLocalBuild
	}
	return fmt.Sprintf("%s %s [%s/%s]", Version(), GitCommit(), runtime.GOOS, runtime.GOARCH)
}
