package output

import (
	"fmt"
	"io"
	"os"

	"github.com/abdul-hamid-achik/curlparse/packages/core/config"
	"github.com/abdul-hamid-achik/curlparse/packages/core/request"
)

// Formatter renders parsed requests and parse failures.
type Formatter interface {
	FormatRequest(req *request.Request) error
	FormatError(err error)
}

type options struct {
	writer        io.Writer
	errWriter     io.Writer
	noColor       bool
	prettyBody    bool
	defaultMethod string
}

// Option configures a formatter.
type Option func(*options)

func WithWriter(w io.Writer) Option {
	return func(o *options) {
		o.writer = w
	}
}

func WithErrorWriter(w io.Writer) Option {
	return func(o *options) {
		o.errWriter = w
	}
}

func WithNoColor(nc bool) Option {
	return func(o *options) {
		o.noColor = nc
	}
}

// WithPrettyBody indents JSON bodies in console output.
func WithPrettyBody(p bool) Option {
	return func(o *options) {
		o.prettyBody = p
	}
}

// WithDefaultMethod sets the method shown for requests that do not
// specify one. The request itself is left unchanged.
func WithDefaultMethod(m string) Option {
	return func(o *options) {
		o.defaultMethod = m
	}
}

func newOptions(opts []Option) *options {
	o := &options{
		writer:     os.Stdout,
		errWriter:  os.Stderr,
		prettyBody: true,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// withDefaultMethod returns req, or a shallow copy carrying the default
// method when req has none.
func (o *options) withDefaultMethod(req *request.Request) *request.Request {
	if req.Method != "" || o.defaultMethod == "" {
		return req
	}
	r := *req
	r.Method = o.defaultMethod
	return &r
}

// New returns the formatter for one of the config.Format* names.
func New(format string, opts ...Option) (Formatter, error) {
	switch format {
	case config.FormatText, "":
		return NewTextFormatter(opts...), nil
	case config.FormatConsole:
		return NewConsoleFormatter(opts...), nil
	case config.FormatJSON:
		return NewJSONFormatter(opts...), nil
	case config.FormatYAML:
		return NewYAMLFormatter(opts...), nil
	case config.FormatTOML:
		return NewTOMLFormatter(opts...), nil
	}
	return nil, fmt.Errorf("unknown output format %q", format)
}
