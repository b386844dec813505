package ssml

import (
	"io"

	"github.com/KimNorgaard/go-ssml/ast"
	"github.com/KimNorgaard/go-ssml/internal/formatter"
)

// Encoder writes SSML documents to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the markup encoding of doc to the stream.
func (e *Encoder) Encode(doc *ast.Document) error {
	if doc == nil {
		return ErrNilDocument
	}
	o, err := newOptions(e.opts)
	if err != nil {
		return err
	}

	f := formatter.New(e.w, o.indent, o.declaration)
	return f.Format(doc)
}
