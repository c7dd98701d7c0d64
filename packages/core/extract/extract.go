// Package extract turns a curl parse tree into a request.Request.
package extract

import (
	"errors"
	"fmt"
	"strings"

	"github.com/abdul-hamid-achik/curlparse/packages/core/grammar"
	"github.com/abdul-hamid-achik/curlparse/packages/core/request"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Flag names reported by MissingValueError.
const (
	MethodFlag = "-X/--request"
	HeaderFlag = "-H/--header"
	DataFlag   = "-d/--data"
)

// ErrMissingURL is returned when a command has no URL.
var ErrMissingURL = errors.New("missing URL in curl command")

// MissingValueError is returned when a flag is not followed by its value.
type MissingValueError struct {
	Flag string
}

func (e *MissingValueError) Error() string {
	return "missing value for flag " + e.Flag
}

// Extract walks the children of a command node in document order.
//
// The first URL wins. Method and body take the last occurrence. Headers
// are split on the first ':' and trimmed; a header without ':' is
// dropped. A later header with the same name replaces an earlier one.
func Extract(tree *grammar.Node) (*request.Request, error) {
	if tree == nil || tree.Rule != grammar.RuleCommand {
		return nil, fmt.Errorf("extract: expected %s node", grammar.RuleCommand)
	}

	req := &request.Request{
		Headers: make(map[string]string),
	}

	for _, child := range tree.Children {
		switch child.Rule {
		case grammar.RuleURL:
			if req.URL == "" {
				req.URL = StripQuotes(child.Text)
			}

		case grammar.RuleMethodFlag:
			v, err := flagValue(child, MethodFlag)
			if err != nil {
				return nil, err
			}
			req.Method = upperMethod(v)

		case grammar.RuleHeaderFlag:
			v, err := flagValue(child, HeaderFlag)
			if err != nil {
				return nil, err
			}
			if name, value, ok := SplitHeader(v); ok {
				req.Headers[name] = value
			}

		case grammar.RuleDataFlag:
			v, err := flagValue(child, DataFlag)
			if err != nil {
				return nil, err
			}
			req.Body = v
		}
	}

	if req.URL == "" {
		return nil, ErrMissingURL
	}

	return req, nil
}

// flagValue returns the quote-stripped value of a flag node.
// upperMethod applies full Unicode case mapping, so "ß" becomes "SS".
// A Caser keeps state and is not shared between goroutines.
func upperMethod(m string) string {
	return cases.Upper(language.Und).String(m)
}

func flagValue(flag *grammar.Node, name string) (string, error) {
	v := flag.Child(grammar.RuleValue)
	if v == nil {
		return "", &MissingValueError{Flag: name}
	}
	return StripQuotes(v.Text), nil
}

// StripQuotes removes one pair of matching enclosing quotes. Escape
// sequences inside the quotes are left untouched.
func StripQuotes(s string) string {
	if len(s) < 2 {
		return s
	}
	first, last := s[0], s[len(s)-1]
	if first == last && (first == '"' || first == '\'') {
		return s[1 : len(s)-1]
	}
	return s
}

// SplitHeader splits "Name: value" on the first colon and trims both
// halves. ok is false when there is no colon.
func SplitHeader(raw string) (name, value string, ok bool) {
	name, value, ok = strings.Cut(raw, ":")
	if !ok {
		return "", "", false
	}
	return strings.TrimSpace(name), strings.TrimSpace(value), true
}
