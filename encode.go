package lrn

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"github.com/KimNorgaard/go-lrn/internal/formatter"
)

// Encoder writes LRN datasets to an output stream.
type Encoder struct {
	w io.Writer
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

// Encode writes the LRN encoding of ds to the stream.
//
// The dataset is validated and fully rendered before the first byte is
// written, so an invalid dataset leaves the stream untouched.
func (e *Encoder) Encode(ds *Dataset) error {
	b, err := Marshal(ds)
	if err != nil {
		return err
	}
	if _, err := e.w.Write(b); err != nil {
		return &IOError{Op: "write", Err: err}
	}
	return nil
}

// Marshal returns the LRN encoding of ds.
func Marshal(ds *Dataset) ([]byte, error) {
	if ds == nil {
		return nil, fmt.Errorf("lrn: Marshal(nil dataset)")
	}
	if err := ds.Validate(); err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	f := formatter.New(&buf)
	f.Comment(ds.Comment)
	f.Meta(strconv.Itoa(ds.Rows()))
	f.Meta(strconv.Itoa(ds.Cols()))
	codes := make([]string, ds.Cols())
	for j, c := range ds.ColumnTypes {
		codes[j] = strconv.Itoa(int(c))
	}
	f.Meta(codes...)
	f.Meta(ds.Names...)
	for _, row := range ds.Data {
		f.Row(row)
	}
	if err := f.Err(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
