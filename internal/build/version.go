package build

import (
	"runtime/debug"
	"strings"
)

// version is the application's semantic version, overridden at link time
// via -ldflags "-X ... =vX.Y.Z" for tagged releases.
var version = "v0.1.0"

// Commit is set at link time via -ldflags for tagged release builds. When
// empty, CommitHash (read from the embedded VCS info) is used instead.
var Commit string

// GoVersion is the toolchain version this binary was built with.
var GoVersion = goVersion()

// CommitHash is the VCS revision embedded by the Go toolchain's build
// info, used as a fallback when Commit was not set via -ldflags.
var CommitHash = commitHash()

// buildTags is set at link time via -ldflags to a comma-separated list of
// Go build tags the binary was compiled with.
var buildTags string

// RawTags is the raw, unparsed build tags string set via -ldflags.
var RawTags = buildTags

// Version returns the application's semantic version.
func Version() string {
	return version
}

// Tags splits RawTags on commas, returning nil if none were set.
func Tags() []string {
	if RawTags == "" {
		return nil
	}
	return strings.Split(RawTags, ",")
}

func goVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	return info.GoVersion
}

func commitHash() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}

	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" {
			return setting.Value
		}
	}

	return ""
}
