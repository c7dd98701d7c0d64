// Package curl parses a curl command line into a request.Request.
//
// Parse is the single entry point. It matches the input against the curl
// grammar and extracts method, URL, headers and body from the resulting
// tree. Every failure is reported as a *ParseError; no partially filled
// request is ever returned.
//
// Parse keeps no state between calls and is safe for concurrent use.
package curl

import (
	"errors"

	"github.com/abdul-hamid-achik/curlparse/packages/core/extract"
	"github.com/abdul-hamid-achik/curlparse/packages/core/grammar"
	"github.com/abdul-hamid-achik/curlparse/packages/core/request"
)

// Kind classifies a ParseError.
type Kind int

const (
	// KindSyntax means the input does not match the curl grammar.
	KindSyntax Kind = iota + 1
	// KindMissingURL means no URL token was present.
	KindMissingURL
	// KindMissingValue means a flag was given without its value.
	KindMissingValue
	// KindExtract means the parse tree could not be read. The grammar
	// matched, so this is not a syntax error.
	KindExtract
)

func (k Kind) String() string {
	switch k {
	case KindSyntax:
		return "syntax"
	case KindMissingURL:
		return "missing-url"
	case KindMissingValue:
		return "missing-value"
	case KindExtract:
		return "extract"
	}
	return "unknown"
}

// ParseError wraps the error of the stage that failed. Err is a
// *grammar.SyntaxError, extract.ErrMissingURL or a
// *extract.MissingValueError, or any other extractor error for KindExtract.
// Flag is set for KindMissingValue.
type ParseError struct {
	Kind Kind
	Flag string
	Err  error
}

func (e *ParseError) Error() string {
	if e.Kind == KindSyntax {
		return "parse error: " + e.Err.Error()
	}
	return e.Err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// Parse parses a single curl command.
func Parse(input string) (*request.Request, error) {
	tree, err := grammar.Match(input)
	if err != nil {
		return nil, &ParseError{Kind: KindSyntax, Err: err}
	}

	req, err := extract.Extract(tree)
	if err != nil {
		return nil, wrapExtractError(err)
	}
	return req, nil
}

func wrapExtractError(err error) error {
	var mv *extract.MissingValueError
	switch {
	case errors.As(err, &mv):
		return &ParseError{Kind: KindMissingValue, Flag: mv.Flag, Err: err}
	case errors.Is(err, extract.ErrMissingURL):
		return &ParseError{Kind: KindMissingURL, Err: err}
	}
	return &ParseError{Kind: KindExtract, Err: err}
}

// IsKind reports whether err is a *ParseError of the given kind.
func IsKind(err error, kind Kind) bool {
	var perr *ParseError
	return errors.As(err, &perr) && perr.Kind == kind
}
