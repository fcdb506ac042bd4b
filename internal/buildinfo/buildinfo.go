// Package buildinfo holds version information injected at build time via ldflags.
package buildinfo

var (
	Version    = "dev"
	CommitHash = "unknown"
	BuildDate  = "unknown"
)

// AppName is the display name used for the tray, notifications and login item.
const AppName = "Code Tray"
