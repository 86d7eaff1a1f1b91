package typescript

import (
	"strings"

	"github.com/teranos/tsgen/typegen"
)

// codeWriter accumulates generated text using the configured indentation and
// line terminator. Every line goes through Line, so LF/CRLF never mix.
type codeWriter struct {
	sb     strings.Builder
	indent string
	nl     string
}

func newCodeWriter(opts typegen.Options) *codeWriter {
	return &codeWriter{
		indent: opts.IndentString(),
		nl:     string(opts.NewLine),
	}
}

// Line writes depth indentation levels, s and a line terminator
func (w *codeWriter) Line(depth int, s string) {
	for range depth {
		w.sb.WriteString(w.indent)
	}
	w.sb.WriteString(s)
	w.sb.WriteString(w.nl)
}

// Blank writes an empty line
func (w *codeWriter) Blank() {
	w.sb.WriteString(w.nl)
}

func (w *codeWriter) String() string {
	return w.sb.String()
}
