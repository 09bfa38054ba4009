// Package version holds build-time version information, set via ldflags.
package version

import "fmt"

// Set at build time:
//
//	go build -ldflags "-X .../pkg/version.Version=v1.0.0 ..."
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// String returns the full version line.
func String() string {
	return fmt.Sprintf("git-line-totals %s (commit: %s, built: %s)", Version, Commit, Date)
}
