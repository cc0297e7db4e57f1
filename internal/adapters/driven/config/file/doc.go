// Package file provides a TOML-backed implementation of the
// configuration store, kept at ~/.benchrange/config.toml.
package file
