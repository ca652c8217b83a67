// Package mddx holds application-wide metadata for the mddx tool.
package mddx

var (
	// Version is set by build flags.
	Version = "v0.1.0"
	// Build is the build timestamp, set by build flags.
	Build = "n/a"
)
