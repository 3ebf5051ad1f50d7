// Package config loads, normalizes, and validates spindex configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, seeds the environment from a local .env file,
// and honours SPINDEX_* environment overrides. The Config type centralizes
// the knobs the CLI needs: which files to read and write inside a source
// folder, the default target pack, prompt behaviour, catalog extensions, and
// log output.
//
// Always obtain settings through this package so command code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
