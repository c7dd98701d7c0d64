// Package schema validates request bodies against a JSON Schema.
//
// Schemas are loaded once with Load and may then be used from any number
// of goroutines.
package schema
