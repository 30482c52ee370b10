// Package version exposes build metadata for the CLI.
package version

import (
	"runtime"
	"runtime/debug"
)

var version = "dev"

// Version returns the semantic version string, falling back to the VCS
// revision embedded by the Go toolchain for untagged builds.
func Version() string {
	if version != "dev" {
		return version
	}
	if rev := Revision(); rev != "" {
		return version + "+" + rev
	}
	return version
}

// Revision returns the short VCS revision from build info, if available.
func Revision() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return ""
	}
	for _, setting := range info.Settings {
		if setting.Key == "vcs.revision" && len(setting.Value) >= 12 {
			return setting.Value[:12]
		}
	}
	return ""
}

// GoVersion returns the Go toolchain version used for the build.
func GoVersion() string {
	return runtime.Version()
}
