package formatter

import (
	"io"
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-lrn/internal/token"
)

// Formatter writes LRN lines to an output stream.
type Formatter struct {
	w   io.Writer
	err error
}

// New returns a new formatter that writes to w.
func New(w io.Writer) *Formatter {
	return &Formatter{w: w}
}

// Err returns the first write error, if any.
func (f *Formatter) Err() error { return f.err }

func (f *Formatter) write(s string) error {
	if f.err != nil {
		return f.err
	}
	_, f.err = io.WriteString(f.w, s)
	return f.err
}

// Comment writes text as a block of comment lines, one per line of text.
// Empty text writes nothing.
func (f *Formatter) Comment(text string) error {
	if text == "" {
		return f.err
	}
	var b strings.Builder
	for _, line := range strings.Split(text, "\n") {
		b.WriteByte(token.CommentMarker)
		if line != "" {
			b.WriteByte(' ')
			b.WriteString(line)
		}
		b.WriteByte('\n')
	}
	return f.write(b.String())
}

// Meta writes a header record with its fields separated by tabs.
func (f *Formatter) Meta(fields ...string) error {
	var b strings.Builder
	b.WriteByte(token.MetaMarker)
	b.WriteByte(' ')
	b.WriteString(strings.Join(fields, "\t"))
	b.WriteByte('\n')
	return f.write(b.String())
}

// Row writes one data row.
func (f *Formatter) Row(values []float64) error {
	var b strings.Builder
	for i, v := range values {
		if i > 0 {
			b.WriteByte('\t')
		}
		b.WriteString(FormatNumber(v))
	}
	b.WriteByte('\n')
	return f.write(b.String())
}

// FormatNumber renders v as the shortest plain decimal that parses back to
// exactly v. No exponent is used, so 1e21 is written out in full.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
