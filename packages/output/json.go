package output

import (
	"encoding/json"
	"fmt"

	"github.com/abdul-hamid-achik/curlparse/packages/core/request"
)

// JSONRequest is the JSON shape of a parsed request
type JSONRequest struct {
	Method  string            `json:"method"`
	URL     string            `json:"url"`
	Headers map[string]string `json:"headers"`
	Body    string            `json:"body"`
	// BodyJSON repeats the body as a JSON value when it is valid JSON
	BodyJSON json.RawMessage `json:"bodyJson,omitempty"`
}

// JSONFormatter formats requests as indented JSON
type JSONFormatter struct {
	opts *options
}

func NewJSONFormatter(opts ...Option) *JSONFormatter {
	return &JSONFormatter{opts: newOptions(opts)}
}

func (f *JSONFormatter) FormatRequest(req *request.Request) error {
	req = f.opts.withDefaultMethod(req)

	out := JSONRequest{
		Method:  req.Method,
		URL:     req.URL,
		Headers: req.Headers,
		Body:    req.Body,
	}
	if result, ok := req.BodyJSON(); ok {
		out.BodyJSON = json.RawMessage(result.Raw)
	}

	encoder := json.NewEncoder(f.opts.writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(out)
}

// FormatError writes the bare message so stdout stays valid JSON.
func (f *JSONFormatter) FormatError(err error) {
	fmt.Fprintln(f.opts.errWriter, err)
}
