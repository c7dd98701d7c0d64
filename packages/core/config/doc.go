// Package config handles configuration loading and management for curlparse.
//
// It provides functionality for:
//   - Loading configuration from .curlparse.yaml or .curlparse.yml files
//   - Default configuration values
//   - Merging command-line overrides on top of file settings
package config
