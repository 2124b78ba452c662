// Package config loads, normalizes, and validates fontsources configuration.
//
// It supplies defaults that reproduce the Font Squirrel translation out of the
// box, reads an optional TOML file, and honours environment fallbacks such as
// FONTSOURCES_OUTPUT. Every setting the CLI and pipeline need is reachable
// from the Config type, so callers never parse flags or env vars themselves.
package config
