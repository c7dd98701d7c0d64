package output

import (
	"fmt"

	"github.com/abdul-hamid-achik/curlparse/packages/core/request"
)

// TextFormatter prints Request.String() followed by a blank line, and
// errors as their bare message.
type TextFormatter struct {
	opts *options
}

func NewTextFormatter(opts ...Option) *TextFormatter {
	return &TextFormatter{opts: newOptions(opts)}
}

func (f *TextFormatter) FormatRequest(req *request.Request) error {
	_, err := fmt.Fprintln(f.opts.writer, f.opts.withDefaultMethod(req).String())
	return err
}

func (f *TextFormatter) FormatError(err error) {
	fmt.Fprintln(f.opts.errWriter, err)
}
