// Package version carries build metadata stamped in at release time.
package version

import "fmt"

// Build information set by ldflags:
//
//	-X github.com/arthur-debert/cursorrules/internal/version.Version={{.Version}}
//	-X github.com/arthur-debert/cursorrules/internal/version.Commit={{.Commit}}
//	-X github.com/arthur-debert/cursorrules/internal/version.Date={{.Date}}
var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Info formats the build metadata for `cursorrules --version`.
func Info() string {
	return fmt.Sprintf("cursorrules %s (commit %s, built %s)", Version, Commit, Date)
}
