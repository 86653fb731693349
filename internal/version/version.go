// Package version reports build information injected with -ldflags, e.g.
//
//	go build -ldflags "-X github.com/longkey1/twin/internal/version.Version=v0.1.0"
package version

import (
	"fmt"
	"runtime"
)

var (
	Version   = "dev"
	Commit    = "none"
	BuildTime = "unknown"
)

// Short returns the version number only.
func Short() string {
	return Version
}

// Info returns the full version report.
func Info() string {
	return fmt.Sprintf("twin %s\n  commit: %s\n  built:  %s\n  go:     %s %s/%s",
		Version, Commit, BuildTime, runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
