// Package misc holds build identification.
package misc

// Set with -ldflags "-X textrun/misc.version=... -X textrun/misc.githash=...".
var (
	version = "dev"
	githash = "unknown"
)

const appName = "textrun"

func GetAppName() string {
	return appName
}

func GetVersion() string {
	return version
}

func GetGitHash() string {
	return githash
}
