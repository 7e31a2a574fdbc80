// Package version holds the build version, set with
// -ldflags "-X github.com/battlesnakeio/snake/version.Version=...".
package version

// Version of the snake binary.
var Version = "dev"
