package output

import (
	"fmt"

	"github.com/abdul-hamid-achik/curlparse/packages/core/request"
	"github.com/fatih/color"
)

// formatValue truncates long header values for display. maxLen counts
// runes, so multi-byte characters are never split.
func formatValue(v string, maxLen int) string {
	n := 0
	for i := range v {
		if n == maxLen {
			return v[:i] + "..."
		}
		n++
	}
	return v
}

const maxHeaderValueLen = 200

type ConsoleFormatter struct {
	opts *options
}

func NewConsoleFormatter(opts ...Option) *ConsoleFormatter {
	f := &ConsoleFormatter{
		opts: newOptions(opts),
	}
	if f.opts.noColor {
		color.NoColor = true
	}
	return f
}

func (f *ConsoleFormatter) FormatRequest(req *request.Request) error {
	req = f.opts.withDefaultMethod(req)
	w := f.opts.writer

	green := color.New(color.FgGreen).SprintFunc()
	yellow := color.New(color.FgYellow).SprintFunc()
	cyan := color.New(color.FgCyan).SprintFunc()
	bold := color.New(color.Bold).SprintFunc()

	method := req.Method
	if method == "" {
		method = yellow("(no method)")
	} else {
		method = green(method)
	}
	fmt.Fprintf(w, "%s %s\n", bold(method), req.URL)

	names := req.HeaderNames()
	if len(names) > 0 {
		fmt.Fprintf(w, "\n%s\n", bold("Headers:"))
		for _, name := range names {
			fmt.Fprintf(w, "  %s: %s\n", cyan(name), formatValue(req.Headers[name], maxHeaderValueLen))
		}
	}

	if req.HasBody() {
		body := req.Body
		label := "Body:"
		if result, ok := req.BodyJSON(); ok {
			label = "Body (json):"
			if f.opts.prettyBody {
				body = result.Get("@pretty").Raw
			}
		}
		fmt.Fprintf(w, "\n%s\n%s\n", bold(label), body)
	}

	fmt.Fprintln(w)
	return nil
}

func (f *ConsoleFormatter) FormatError(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(f.opts.errWriter, "%s\n", red(err.Error()))
}
