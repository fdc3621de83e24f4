package lrn

import "strconv"

// A FormatError reports LRN content that is not well formed, either while
// reading or when a Dataset fails validation before writing.
type FormatError struct {
	Line int // 1-based input line, 0 when not reading
	Msg  string
	Err  error
}

func (e *FormatError) Error() string {
	if e.Line > 0 {
		return "lrn: line " + strconv.Itoa(e.Line) + ": " + e.Msg
	}
	return "lrn: " + e.Msg
}

func (e *FormatError) Unwrap() error { return e.Err }

// An IOError reports a failure to open, read, create or write a file or
// stream. Err is the error returned by the underlying system.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	if e.Path != "" {
		return "lrn: " + e.Op + " " + e.Path + ": " + e.Err.Error()
	}
	return "lrn: " + e.Op + ": " + e.Err.Error()
}

func (e *IOError) Unwrap() error { return e.Err }
