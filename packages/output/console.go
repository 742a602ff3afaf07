package output

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/abdul-hamid-achik/gurl/packages/http"
	"github.com/fatih/color"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

// ErrBodyFormat is returned when a response declares a JSON content
// type but its body is not valid JSON.
var ErrBodyFormat = errors.New("malformed response body")

type ConsoleRenderer struct {
	writer  io.Writer
	noColor bool
}

type ConsoleOption func(*ConsoleRenderer)

func NewConsoleRenderer(opts ...ConsoleOption) *ConsoleRenderer {
	r := &ConsoleRenderer{
		writer: os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.noColor {
		color.NoColor = true
	}
	return r
}

func WithWriter(w io.Writer) ConsoleOption {
	return func(r *ConsoleRenderer) {
		r.writer = w
	}
}

func WithNoColor(nc bool) ConsoleOption {
	return func(r *ConsoleRenderer) {
		r.noColor = nc
	}
}

// Render writes the response in a fixed order: status line, blank
// line, one line per header, blank line, body. The status line and
// headers are flushed before the body is inspected, so a body format
// failure still leaves them on screen.
func (r *ConsoleRenderer) Render(resp *http.Response) error {
	blue := color.New(color.FgBlue).SprintFunc()
	green := color.New(color.FgGreen).SprintFunc()

	fmt.Fprintf(r.writer, "%s\n\n", blue(resp.Proto+" "+resp.Status))

	for _, h := range resp.Headers {
		fmt.Fprintf(r.writer, "%s: %s\n", green(h.Key), h.Value)
	}
	fmt.Fprintf(r.writer, "\n")

	return r.renderBody(resp)
}

func (r *ConsoleRenderer) renderBody(resp *http.Response) error {
	if !resp.IsJSON() {
		fmt.Fprintf(r.writer, "%s\n", resp.BodyString())
		return nil
	}

	if !gjson.ValidBytes(resp.Body) {
		return fmt.Errorf("%w: content type is application/json but the body does not parse", ErrBodyFormat)
	}

	cyan := color.New(color.FgCyan).SprintFunc()
	indented := bytes.TrimRight(pretty.Pretty(resp.Body), "\n")
	fmt.Fprintf(r.writer, "%s\n", cyan(string(indented)))
	return nil
}

// FormatError prints a diagnostic for any failure of the invocation.
func (r *ConsoleRenderer) FormatError(err error) {
	red := color.New(color.FgRed).SprintFunc()
	fmt.Fprintf(r.writer, "%s %v\n", red("Error:"), err)
}
