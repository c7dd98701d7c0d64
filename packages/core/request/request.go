// Package request holds the structured result of parsing a curl command.
package request

import (
	"fmt"
	"sort"
	"strings"

	"github.com/tidwall/gjson"
)

// DefaultMethod is the method curl uses when none is given.
const DefaultMethod = "GET"

// Request describes one HTTP request taken from a curl command. It is
// built once by the parser and not modified afterwards.
type Request struct {
	// Method is uppercased, or empty when the command did not set one.
	Method string `json:"method" yaml:"method" toml:"method"`
	URL    string `json:"url" yaml:"url" toml:"url"`
	// Headers never holds the same name twice. Names are case-sensitive.
	Headers map[string]string `json:"headers" yaml:"headers" toml:"headers"`
	Body    string            `json:"body" yaml:"body" toml:"body"`
}

// EffectiveMethod returns Method, or GET when Method is unspecified.
func (r *Request) EffectiveMethod() string {
	if r.Method == "" {
		return DefaultMethod
	}
	return r.Method
}

// HeaderNames returns the header names in sorted order.
func (r *Request) HeaderNames() []string {
	names := make([]string, 0, len(r.Headers))
	for name := range r.Headers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (r *Request) Header(name string) (string, bool) {
	v, ok := r.Headers[name]
	return v, ok
}

func (r *Request) HasBody() bool {
	return r.Body != ""
}

// BodyJSON parses the body as JSON. ok is false when the body is empty or
// not valid JSON.
func (r *Request) BodyJSON() (result gjson.Result, ok bool) {
	if !r.HasBody() || !gjson.Valid(r.Body) {
		return gjson.Result{}, false
	}
	return gjson.Parse(r.Body), true
}

// String renders the request as method, url, headers (one per line,
// sorted by name) and body.
func (r *Request) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "method: %s\n", r.Method)
	fmt.Fprintf(&sb, "url: %s\n", r.URL)
	sb.WriteString("headers:\n")
	for _, name := range r.HeaderNames() {
		fmt.Fprintf(&sb, "  %s: %s\n", name, r.Headers[name])
	}
	fmt.Fprintf(&sb, "body:\n%s\n", r.Body)
	return sb.String()
}
