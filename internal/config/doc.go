// Package config loads and validates service configuration from YAML.
//
// Files are read with ${VAR} environment expansion, zero-valued optional
// fields are filled from defaults, and Validate catches unusable values
// before startup.
package config
