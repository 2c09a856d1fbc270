// Package version holds build identity for the about command and logs.
package version

import "runtime"

// Set at build time via -ldflags "-X .../internal/version.Version=... -X .../internal/version.BuildDate=...".
var (
	AppName        = "Prefixkit"
	AppDescription = "Prefix command framework for Discord bots"
	Version        = "dev"
	BuildDate      = ""
)

// GoVersion is the toolchain the binary was built with.
var GoVersion = runtime.Version()
