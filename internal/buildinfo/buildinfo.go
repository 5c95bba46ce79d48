// Package buildinfo carries version stamps set at link time:
//
//	go build -ldflags "-X quarkwire/internal/buildinfo.Version=v0.3.0"
package buildinfo

import "runtime"

// Version is set at build time via -ldflags.
var Version = "dev"

// Commit is set at build time via -ldflags.
var Commit = "unknown"

// Date is set at build time via -ldflags.
var Date = "unknown"

// Short returns a compact build identifier for the window title.
func Short() string {
	if Version != "" && Version != "dev" {
		return Version
	}
	if Commit != "" && Commit != "unknown" {
		if len(Commit) > 7 {
			return Commit[:7]
		}
		return Commit
	}
	return "dev"
}

// String is the start-up log line.
func String() string {
	return "quarkwire " + Version + " (" + Commit + ", " + Date + ", " + runtime.GOOS + "/" + runtime.GOARCH + ")"
}
