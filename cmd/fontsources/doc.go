// Package main hosts the fontsources CLI.
//
// The translate command fetches the Font Squirrel font list, maps it into the
// FontGet source schema, and writes the result atomically. The show command
// inspects a written file, and the config commands scaffold and check the
// TOML configuration.
package main
