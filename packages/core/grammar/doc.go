// Package grammar defines the syntax of a curl command line and matches
// input text against it.
//
// The grammar recognizes:
//   - an optional leading "curl" word
//   - method flags (-X, --request)
//   - header flags (-H, --header)
//   - data flags (-d, --data)
//   - standalone values, which are treated as URLs
//
// Values are either quoted with ' or " (a backslash escapes the quote
// character without transforming it) or bare runs of non-whitespace.
// Flags and URLs may appear in any order and any number of times.
//
// Matching produces a tree of *Node values tagged with the Rule that
// produced them. The tree keeps the exact source text of every node.
package grammar
