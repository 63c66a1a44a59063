// Package version holds build version information injected via ldflags.
package version

import (
	"fmt"
	"runtime"
)

// Build information. Populated at build time via -ldflags:
//
//	-X github.com/jackzampolin/coax/version.GitRelease=v0.2.0
//	-X github.com/jackzampolin/coax/version.GitCommit=abc1234
//	-X github.com/jackzampolin/coax/version.GitCommitDate=2026-08-30
var (
	GitRelease    = "dev"
	GitCommit     = "unknown"
	GitCommitDate = "unknown"
)

// GoInfo reports the Go version and platform the binary was built with.
var GoInfo = fmt.Sprintf("%s %s/%s", runtime.Version(), runtime.GOOS, runtime.GOARCH)
