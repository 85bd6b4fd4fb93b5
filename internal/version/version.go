// Package version holds the static version string printed by --version and
// shown in the help banner.
package version

// Version is the release version of the portal binary.
const Version = "0.0.1"
