package token

import "strconv"

// Type is the type of a token.
type Type string

// Token represents a lexical token.
type Token struct {
	Type    Type
	Literal string
	Span    Span
}

const (
	// Special tokens
	ILLEGAL Type = "ILLEGAL" // An unknown or invalid token; Literal holds the reason
	EOF     Type = "EOF"     // End of input

	// Content
	TEXT Type = "TEXT" // character data between tags, entities decoded
	DECL Type = "DECL" // <?xml ... ?>

	// Tag frames
	START_TAG  Type = "START_TAG" // <name
	END_TAG    Type = "END_TAG"   // </name
	TAG_END    Type = ">"
	SELF_CLOSE Type = "/>"

	// Attributes
	IDENT  Type = "IDENT"  // attribute name
	ASSIGN Type = "="      // =
	STRING Type = "STRING" // "quoted value", entities decoded
)

// Pos is a resolved position in the source.
type Pos struct {
	Offset int // zero-based byte offset
	Line   int // one-based line
	Column int // one-based column, counted in runes
}

// String returns the position in the "line:column" format.
func (p Pos) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

// Span is the half-open source range [Start, End) covered by a token or a construct.
type Span struct {
	Start Pos
	End   Pos
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End.Offset - s.Start.Offset
}

// Join returns the smallest span covering both s and o.
func (s Span) Join(o Span) Span {
	out := s
	if o.Start.Offset < out.Start.Offset {
		out.Start = o.Start
	}
	if o.End.Offset > out.End.Offset {
		out.End = o.End
	}
	return out
}

// String returns the span in the "line:column-line:column" format.
func (s Span) String() string {
	return s.Start.String() + "-" + s.End.String()
}
