// Package config loads, normalizes, and validates dvd2mp4 configuration.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), and reads an optional TOML file. Every knob the CLI needs is
// centralized here: external tool binaries, encode parameters, the temporary
// workspace root, and log output settings.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
