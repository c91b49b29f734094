// Package config loads, normalizes, and validates larder configuration from
// a TOML file. Every command works with the built-in defaults; the file only
// exists to change them.
package config
