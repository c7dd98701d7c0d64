package output

import (
	"fmt"

	"github.com/abdul-hamid-achik/curlparse/packages/core/request"
	toml "github.com/pelletier/go-toml/v2"
)

// TOMLFormatter formats requests as TOML documents, headers as a table.
type TOMLFormatter struct {
	opts *options
}

func NewTOMLFormatter(opts ...Option) *TOMLFormatter {
	return &TOMLFormatter{opts: newOptions(opts)}
}

func (f *TOMLFormatter) FormatRequest(req *request.Request) error {
	enc := toml.NewEncoder(f.opts.writer)
	return enc.Encode(f.opts.withDefaultMethod(req))
}

func (f *TOMLFormatter) FormatError(err error) {
	fmt.Fprintln(f.opts.errWriter, err)
}
