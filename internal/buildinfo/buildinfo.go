// Package buildinfo carries the version stamped in by -ldflags, e.g.
//
//	go build -ldflags "-X tangentviz/internal/buildinfo.Version=v0.3.0"
package buildinfo

import "fmt"

var (
	Version = "dev"
	Commit  = "unknown"
	Date    = "unknown"
)

// Short returns a compact build identifier for the window title and logs.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		return Commit
	}
	return "dev"
}

// Long returns every stamped field for -version output.
func Long() string {
	return fmt.Sprintf("tangentviz %s (commit %s, built %s)", Version, Commit, Date)
}
