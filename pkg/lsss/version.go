package lsss

// Version is set at build time via -ldflags "-X".
var Version = "v0.0.0-in-progress"

// LibraryVersion returns the version populated at build time. In development
// it defaults to v0.0.0-in-progress.
func LibraryVersion() string {
	return Version
}
