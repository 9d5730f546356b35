// Package manifest reads the release version from the project manifest.
//
// The manifest is a TOML file with a [package] table, as written by cargo:
//
//	[package]
//	name = "journald-to-cloudwatch"
//	version = "1.2.3"
//
// The version is returned exactly as written. It is checked to be a semantic
// version so that a malformed manifest fails before any container work
// starts, but it is never interpreted beyond that.
package manifest
