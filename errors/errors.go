package errors

import (
	"fmt"

	"github.com/KimNorgaard/go-ssml/token"
)

// ParseError represents a single error that occurred during parsing.
// Span covers the offending source range.
type ParseError struct {
	Message string
	Span    token.Span
}

func (e ParseError) Error() string {
	return fmt.Sprintf("line %d, column %d: %s", e.Span.Start.Line, e.Span.Start.Column, e.Message)
}

// ParseErrors is a slice of ParseError that implements the error interface.
// The order is the order in which the parser detected them.
type ParseErrors []ParseError

func (p ParseErrors) Error() string {
	if len(p) == 0 {
		return ""
	}
	// The collection reports the first error; callers range over the slice for the rest.
	return fmt.Sprintf("ssml: parsing error at line %d, column %d: %s", p[0].Span.Start.Line, p[0].Span.Start.Column, p[0].Message)
}
