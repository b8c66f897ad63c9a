// Package version provides build-time version information.
// Version information is injected at build time using ldflags.
package version

import (
	"fmt"
	"runtime"
)

var (
	// Version is the semantic version of the application.
	// Injected via: -ldflags "-X github.com/lrm2017/color-weakness-detector/internal/version.Version=x.y.z".
	Version = "dev"

	// Commit is the git commit hash of the build.
	Commit = "unknown"

	// Date is the build date in RFC3339 format.
	Date = "unknown"

	// GoVersion is the Go version used to build the binary.
	GoVersion = runtime.Version()
)

// String returns a human-readable version string.
func String() string {
	if Commit != "unknown" && Date != "unknown" {
		return fmt.Sprintf("colorvision version %s (commit: %s, built: %s, %s, %s/%s)",
			Version, shortCommit(), Date, GoVersion, runtime.GOOS, runtime.GOARCH)
	}
	return fmt.Sprintf("colorvision version %s (%s, %s/%s)", Version, GoVersion, runtime.GOOS, runtime.GOARCH)
}

// Short returns a short version string suitable for CLI output.
func Short() string {
	return Version
}

func shortCommit() string {
	if len(Commit) > 8 {
		return Commit[:8]
	}
	return Commit
}
