package ssml

import (
	"fmt"
	"io"

	"github.com/KimNorgaard/go-ssml/ast"
)

// Decoder reads and parses an SSML document from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r.
//
// Functional options can be provided to configure parsing, such as setting
// a maximum nesting depth with the MaxDepth option.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads the rest of the input and parses it as one document.
//
// If the input contains syntax errors, Decode returns an errors.ParseErrors value.
//
// Note: This is a non-streaming implementation. It reads the entire
// reader into memory first before parsing.
func (d *Decoder) Decode() (*ast.Document, error) {
	if d.r == nil {
		return nil, fmt.Errorf("ssml: Decode(nil reader)")
	}
	data, err := io.ReadAll(d.r)
	if err != nil {
		return nil, fmt.Errorf("ssml: reading input: %w", err)
	}
	return Parse(data, d.opts...)
}
