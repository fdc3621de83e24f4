package lrn

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ColumnType is the role of a column, stored as a numeric code in the
// header of an LRN file.
type ColumnType int

const (
	Ignore    ColumnType = 0 // column is carried but not analysed
	Data      ColumnType = 1 // ordinary data column
	UniqueKey ColumnType = 9 // integer row key
)

// Valid reports whether c is one of the defined column type codes.
func (c ColumnType) Valid() bool {
	switch c {
	case Ignore, Data, UniqueKey:
		return true
	}
	return false
}

func (c ColumnType) String() string {
	switch c {
	case Ignore:
		return "ignore"
	case Data:
		return "data"
	case UniqueKey:
		return "key"
	}
	return "ColumnType(" + strconv.Itoa(int(c)) + ")"
}

// Dataset is the in-memory form of an LRN file.
//
// Data holds one row per case and one column per variable, the key column
// included. ColumnTypes and Names run parallel to the columns of Data.
// Key and KeyName mirror the first column typed UniqueKey; both are empty
// when there is no such column. They are not written: reading a file takes
// them from the key column's values and name.
type Dataset struct {
	Data        [][]float64
	ColumnTypes []ColumnType
	Key         []int
	Names       []string
	KeyName     string
	Comment     string
}

// New returns a Dataset for matrix with default metadata: the first column
// is the key, the others are data columns named C1, C2, ..., the key runs
// 1..n and the key column is called "Key".
//
// The ordinal key and the "Key" name are not stored in the file, so reading
// the written dataset back yields the first column's values and the name C1.
//
// The matrix is not copied.
func New(matrix [][]float64) (*Dataset, error) {
	if len(matrix) == 0 || len(matrix[0]) == 0 {
		return nil, &FormatError{Msg: "matrix has no columns"}
	}
	m := len(matrix[0])
	for i, row := range matrix {
		if len(row) != m {
			return nil, &FormatError{Msg: fmt.Sprintf("matrix row %d has %d columns, expected %d", i+1, len(row), m)}
		}
	}

	ds := &Dataset{
		Data:        matrix,
		ColumnTypes: make([]ColumnType, m),
		Key:         make([]int, len(matrix)),
		Names:       make([]string, m),
		KeyName:     "Key",
	}
	for j := range ds.ColumnTypes {
		ds.ColumnTypes[j] = Data
		ds.Names[j] = "C" + strconv.Itoa(j+1)
	}
	ds.ColumnTypes[0] = UniqueKey
	for i := range ds.Key {
		ds.Key[i] = i + 1
	}
	return ds, nil
}

// Rows returns the number of cases.
func (ds *Dataset) Rows() int { return len(ds.Data) }

// Cols returns the number of columns, the key column included.
func (ds *Dataset) Cols() int { return len(ds.ColumnTypes) }

// KeyIndex returns the index of the first UniqueKey column, or -1.
func (ds *Dataset) KeyIndex() int {
	for j, c := range ds.ColumnTypes {
		if c == UniqueKey {
			return j
		}
	}
	return -1
}

// Validate checks that ds can be written as an LRN file that reads back to
// the same values. It returns a *FormatError describing the first problem.
func (ds *Dataset) Validate() error {
	m := ds.Cols()
	if m == 0 {
		return &FormatError{Msg: "dataset has no columns"}
	}
	if len(ds.Names) != m {
		return &FormatError{Msg: fmt.Sprintf("%d column names for %d columns", len(ds.Names), m)}
	}
	for j, c := range ds.ColumnTypes {
		if !c.Valid() {
			return &FormatError{Msg: fmt.Sprintf("column %d has invalid type code %d", j+1, int(c))}
		}
	}
	for j, name := range ds.Names {
		if err := checkName(name); err != nil {
			return &FormatError{Msg: fmt.Sprintf("column %d name %q %s", j+1, name, err)}
		}
	}
	key := ds.KeyIndex()
	for i, row := range ds.Data {
		if len(row) != m {
			return &FormatError{Msg: fmt.Sprintf("row %d has %d fields, expected %d", i+1, len(row), m)}
		}
		for j, v := range row {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return &FormatError{Msg: fmt.Sprintf("row %d column %d holds non-finite value %v", i+1, j+1, v)}
			}
		}
		if key >= 0 {
			if _, ok := toKey(row[key]); !ok {
				return &FormatError{Msg: fmt.Sprintf("row %d key %v is not an integer", i+1, row[key])}
			}
		}
	}
	if (key >= 0 || len(ds.Key) != 0) && len(ds.Key) != ds.Rows() {
		return &FormatError{Msg: fmt.Sprintf("%d keys for %d rows", len(ds.Key), ds.Rows())}
	}
	if !utf8.ValidString(ds.Comment) {
		return &FormatError{Msg: "comment is not valid UTF-8"}
	}
	for i, line := range strings.Split(ds.Comment, "\n") {
		if strings.HasSuffix(line, "\r") {
			return &FormatError{Msg: fmt.Sprintf("comment line %d ends in a carriage return", i+1)}
		}
	}
	return nil
}

func checkName(name string) error {
	switch {
	case name == "":
		return fmt.Errorf("is empty")
	case strings.TrimSpace(name) != name:
		return fmt.Errorf("has surrounding whitespace")
	case strings.ContainsAny(name, "\t\n"):
		return fmt.Errorf("contains a tab or newline")
	case !utf8.ValidString(name):
		return fmt.Errorf("is not valid UTF-8")
	}
	return nil
}

// toKey converts a key column value to an int, rejecting fractions and
// values outside the int range.
func toKey(v float64) (int, bool) {
	if v != math.Trunc(v) || v < float64(math.MinInt) || v >= -float64(math.MinInt) {
		return 0, false
	}
	return int(v), true
}
