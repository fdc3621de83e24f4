package token

// Type is the type of a line token.
type Type string

// Token represents one non-blank input line.
type Token struct {
	Type    Type
	Literal string // line content with the leading marker removed
	Line    int
}

const (
	// Special tokens
	ILLEGAL Type = "ILLEGAL" // A line that cannot be read as text
	EOF     Type = "EOF"     // End of file

	COMMENT Type = "COMMENT" // # free text
	META    Type = "META"    // % header record
	ROW     Type = "ROW"     // tab-separated data row
)

const (
	CommentMarker = '#'
	MetaMarker    = '%'
)

// Lookup returns the token type for a line starting with ch.
func Lookup(ch byte) Type {
	switch ch {
	case CommentMarker:
		return COMMENT
	case MetaMarker:
		return META
	}
	return ROW
}
