// Package version provides version information for the camelgen CLI.
//
// Overview:
//   - Responsibility: CLI version metadata (version, commit, build time)
//   - Key Types: Version variables and formatting functions
//   - Concurrency Model: Set once at link time, read-only afterwards
//   - Error Semantics: No errors
//   - Performance Notes: Zero-cost variables
//
// Usage:
//
//	go build -ldflags "-X go.eggybyte.com/camelgen/internal/version.Version=v0.2.0" ./cmd/camelgen
//	fmt.Println(version.GetVersionString())
package version

import (
	"fmt"
	"runtime"
)

// Version is the CLI version, overridden with -ldflags at release time.
var Version = "v0.1.0-dev"

// Commit is the git commit hash.
var Commit = "unknown"

// BuildTime is the build timestamp in RFC3339 format.
var BuildTime = "unknown"

// DefaultCamelVersion is the Camel release offered when nothing else is known.
const DefaultCamelVersion = "2.18.1"

// GetVersionString returns the one-line version string:
// camelgen version v0.1.0 (commit 4a9b2c1, built 2026-01-12T09:30:00Z)
func GetVersionString() string {
	return fmt.Sprintf("camelgen version %s (commit %s, built %s)", Version, Commit, BuildTime)
}

// GetFullVersionInfo returns detailed version information including the
// default Camel release and the Go runtime.
func GetFullVersionInfo() string {
	return fmt.Sprintf(`camelgen version %s (commit %s, built %s)
default camel version %s
go version %s (%s/%s)`,
		Version, Commit, BuildTime,
		DefaultCamelVersion,
		runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
