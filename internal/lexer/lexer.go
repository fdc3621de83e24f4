package lexer

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/KimNorgaard/go-lrn/internal/token"
)

// Lexer splits LRN source into line tokens.
type Lexer struct {
	r    *bufio.Reader
	line int
	done bool
}

// New creates and returns a new Lexer.
func New(r io.Reader) *Lexer {
	return &Lexer{r: bufio.NewReader(r)}
}

// NextToken returns the next non-blank line. At the end of input it returns
// an EOF token. The error is only ever a read error from the underlying
// reader.
func (l *Lexer) NextToken() (token.Token, error) {
	for !l.done {
		raw, err := l.r.ReadString('\n')
		if err != nil {
			if err != io.EOF {
				return token.Token{}, err
			}
			l.done = true
			if raw == "" {
				break
			}
		}
		l.line++

		text := strings.TrimRight(raw, "\r\n")
		trimmed := strings.TrimLeft(text, " \t")
		if strings.TrimSpace(trimmed) == "" {
			continue
		}

		tok := token.Token{Line: l.line}
		if !utf8.ValidString(trimmed) {
			tok.Type = token.ILLEGAL
			tok.Literal = "invalid utf-8"
			return tok, nil
		}
		tok.Type = token.Lookup(trimmed[0])
		switch tok.Type {
		case token.COMMENT:
			tok.Literal = strings.TrimPrefix(trimmed[1:], " ")
		case token.META:
			tok.Literal = strings.TrimSpace(trimmed[1:])
		default:
			tok.Literal = strings.TrimSpace(trimmed)
		}
		return tok, nil
	}
	return token.Token{Type: token.EOF, Line: l.line}, nil
}

// Fields splits a data row into its fields. Tabs and runs of other
// whitespace both separate fields.
func Fields(s string) []string {
	return strings.Fields(s)
}

// Names splits a name record into column names. If the record contains a
// tab only tabs separate names, so names may contain spaces. A record that
// is expected to hold a single name is kept whole.
func Names(s string, want int) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if strings.IndexByte(s, '\t') < 0 {
		if want == 1 {
			return []string{s}
		}
		return strings.Fields(s)
	}
	var names []string
	for _, part := range strings.Split(s, "\t") {
		if part = strings.TrimSpace(part); part != "" {
			names = append(names, part)
		}
	}
	return names
}

// ParseNumber parses a decimal number such as "1", "-0.5" or "6.02e23".
// A comma decimal separator, hexadecimal notation, NaN, infinities and
// values out of float64 range are rejected.
func ParseNumber(s string) (float64, bool) {
	if !isDecimal(s) {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func isDecimal(s string) bool {
	if len(s) == 0 {
		return false
	}
	i := 0

	// Optional sign.
	if s[i] == '-' || s[i] == '+' {
		i++
	}

	// Mantissa, at least one digit on either side of the point.
	intEnd := skipDigits(s, i)
	digits := intEnd - i
	i = intEnd
	if i < len(s) && s[i] == '.' {
		fracEnd := skipDigits(s, i+1)
		digits += fracEnd - i - 1
		i = fracEnd
	}
	if digits == 0 {
		return false
	}

	// Exponent part.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < len(s) && (s[i] == '-' || s[i] == '+') {
			i++
		}
		expEnd := skipDigits(s, i)
		if expEnd == i {
			return false
		}
		i = expEnd
	}

	// Must consume the whole string.
	return i == len(s)
}

func skipDigits(s string, i int) int {
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		i++
	}
	return i
}
