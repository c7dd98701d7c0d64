package output

import (
	"fmt"

	"github.com/abdul-hamid-achik/curlparse/packages/core/request"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter formats requests as YAML documents.
type YAMLFormatter struct {
	opts *options
}

func NewYAMLFormatter(opts ...Option) *YAMLFormatter {
	return &YAMLFormatter{opts: newOptions(opts)}
}

func (f *YAMLFormatter) FormatRequest(req *request.Request) error {
	enc := yaml.NewEncoder(f.opts.writer)
	enc.SetIndent(2)
	if err := enc.Encode(f.opts.withDefaultMethod(req)); err != nil {
		return err
	}
	return enc.Close()
}

func (f *YAMLFormatter) FormatError(err error) {
	fmt.Fprintln(f.opts.errWriter, err)
}
