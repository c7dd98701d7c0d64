// Package cmd implements the curlparse CLI commands using Cobra.
//
// Available commands:
//   - parse: Parse a curl command from a file or stdin and print the request
//   - validate: Check files of curl commands, optionally against a body schema
//   - tree: Print the grammar's parse tree for a command or fragment
//   - credits: Show project credits
//   - init: Write a default .curlparse.yaml
//   - version: Show curlparse version information
//
// Output format, colors and the default method come from the config file
// and may be overridden with flags or CURLPARSE_* environment variables.
package cmd
