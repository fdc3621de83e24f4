package lrn

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-lrn/internal/lexer"
	"github.com/KimNorgaard/go-lrn/internal/token"
)

// preallocation cap for declared row counts, which are not trusted
const maxPrealloc = 1024

// Decoder reads an LRN dataset from an input stream.
type Decoder struct {
	r io.Reader
}

// NewDecoder returns a new decoder that reads from r.
//
// It is the caller's responsibility to call Close on r if required.
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// Decode reads the whole input and returns the dataset it holds.
//
// Malformed content yields a *FormatError and read failures an *IOError;
// in both cases no dataset is returned.
func (d *Decoder) Decode() (*Dataset, error) {
	if d.r == nil {
		return nil, fmt.Errorf("lrn: Decode(nil reader)")
	}
	s := &decodeState{l: lexer.New(d.r)}
	return s.decode()
}

// Unmarshal parses LRN-encoded data and returns the dataset it holds.
func Unmarshal(data []byte) (*Dataset, error) {
	return NewDecoder(bytes.NewReader(data)).Decode()
}

// decodeState walks the line tokens of one input. Each step is entered with
// tok holding the first line of its construct and leaves tok on the line
// after it.
type decodeState struct {
	l   *lexer.Lexer
	tok token.Token
}

func (s *decodeState) next() error {
	tok, err := s.l.NextToken()
	if err != nil {
		return &IOError{Op: "read", Err: err}
	}
	s.tok = tok
	if tok.Type == token.ILLEGAL {
		return s.errorf("%s", tok.Literal)
	}
	return nil
}

func (s *decodeState) errorf(format string, args ...any) *FormatError {
	return &FormatError{Line: s.tok.Line, Msg: fmt.Sprintf(format, args...)}
}

func (s *decodeState) unexpected(want string) *FormatError {
	switch s.tok.Type {
	case token.EOF:
		return s.errorf("unexpected end of file, expected %s", want)
	case token.COMMENT:
		return s.errorf("unexpected comment line, expected %s", want)
	case token.META:
		return s.errorf("unexpected %% record, expected %s", want)
	}
	return s.errorf("unexpected data row, expected %s", want)
}

func (s *decodeState) decode() (*Dataset, error) {
	ds := &Dataset{}
	if err := s.next(); err != nil {
		return nil, err
	}

	var comments []string
	for s.tok.Type == token.COMMENT {
		comments = append(comments, s.tok.Literal)
		if err := s.next(); err != nil {
			return nil, err
		}
	}
	ds.Comment = strings.Join(comments, "\n")

	n, err := s.count("row count", false)
	if err != nil {
		return nil, err
	}
	m, err := s.count("column count", true)
	if err != nil {
		return nil, err
	}
	if ds.ColumnTypes, err = s.columnTypes(m); err != nil {
		return nil, err
	}
	if ds.Names, err = s.names(m); err != nil {
		return nil, err
	}

	key := ds.KeyIndex()
	if key >= 0 {
		ds.KeyName = ds.Names[key]
		ds.Key = make([]int, 0, min(n, maxPrealloc))
	}
	ds.Data = make([][]float64, 0, min(n, maxPrealloc))
	for i := 0; i < n; i++ {
		if s.tok.Type != token.ROW {
			return nil, s.unexpected(fmt.Sprintf("data row %d of %d", i+1, n))
		}
		row, err := s.row(m)
		if err != nil {
			return nil, err
		}
		if key >= 0 {
			k, ok := toKey(row[key])
			if !ok {
				return nil, s.errorf("key %s is not an integer", lexer.Fields(s.tok.Literal)[key])
			}
			ds.Key = append(ds.Key, k)
		}
		ds.Data = append(ds.Data, row)
		if err := s.next(); err != nil {
			return nil, err
		}
	}

	switch s.tok.Type {
	case token.EOF:
		return ds, nil
	case token.ROW:
		return nil, s.errorf("more data rows than the declared %d", n)
	}
	return nil, s.unexpected("end of file")
}

// count reads a header record holding a single non-negative integer.
func (s *decodeState) count(what string, positive bool) (int, error) {
	if s.tok.Type != token.META {
		return 0, s.unexpected("% record with the " + what)
	}
	v, err := strconv.Atoi(s.tok.Literal)
	if err != nil {
		fe := s.errorf("invalid %s %q", what, s.tok.Literal)
		fe.Err = err
		return 0, fe
	}
	if v < 0 {
		return 0, s.errorf("negative %s %d", what, v)
	}
	if v == 0 && positive {
		return 0, s.errorf("%s must be positive", what)
	}
	return v, s.next()
}

func (s *decodeState) columnTypes(m int) ([]ColumnType, error) {
	if s.tok.Type != token.META {
		return nil, s.unexpected("% record with the column types")
	}
	fields := lexer.Fields(s.tok.Literal)
	if len(fields) != m {
		return nil, s.errorf("found %d column types, expected %d", len(fields), m)
	}
	types := make([]ColumnType, m)
	for j, f := range fields {
		code, err := strconv.Atoi(f)
		if err != nil || !ColumnType(code).Valid() {
			return nil, s.errorf("invalid type code %q for column %d", f, j+1)
		}
		types[j] = ColumnType(code)
	}
	return types, s.next()
}

func (s *decodeState) names(m int) ([]string, error) {
	if s.tok.Type != token.META {
		return nil, s.unexpected("% record with the column names")
	}
	names := lexer.Names(s.tok.Literal, m)
	if len(names) != m {
		return nil, s.errorf("found %d column names, expected %d", len(names), m)
	}
	return names, s.next()
}

func (s *decodeState) row(m int) ([]float64, error) {
	fields := lexer.Fields(s.tok.Literal)
	if len(fields) != m {
		return nil, s.errorf("found %d fields, expected %d", len(fields), m)
	}
	row := make([]float64, m)
	for j, f := range fields {
		v, ok := lexer.ParseNumber(f)
		if !ok {
			return nil, s.errorf("invalid number %q in column %d", f, j+1)
		}
		row[j] = v
	}
	return row, nil
}
