// Package output provides formatters for displaying parsed curl requests.
//
// Supported output formats:
//   - Text: plain method/url/headers/body listing
//   - Console: human-readable colored terminal output
//   - JSON: machine-readable JSON output
//   - YAML: YAML document output
//   - TOML: TOML document output
//
// Each formatter implements the Formatter interface. New selects one by
// its config format name.
package output
