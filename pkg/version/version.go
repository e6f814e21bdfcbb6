// Package version reports the build version of carboncalc.
package version

// These are set at build time with -ldflags "-X".
//
//nolint:gochecknoglobals // Build-time injected values.
var (
	version = "0.1.0-dev"
	commit  = "unknown"
)

// GetVersion returns the semantic version of this build.
func GetVersion() string {
	return version
}

// GetCommit returns the git commit this build was made from.
func GetCommit() string {
	return commit
}
