package ssml

import (
	"fmt"

	"github.com/KimNorgaard/go-ssml/parser"
)

// Option configures parsing and rendering.
type Option func(*options) error

type options struct {
	maxDepth    int
	indent      int
	declaration bool
}

func newOptions(opts []Option) (*options, error) {
	o := &options{maxDepth: parser.DefaultMaxDepth}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// MaxDepth returns an Option that sets the maximum element nesting depth
// accepted by the parser. Deeper documents fail to parse with a structural
// error instead of consuming unbounded memory.
//
// The depth n must be a positive integer. The default is 1000.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("ssml: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}

// Indent returns an Option that renders every element and text node on its
// own line, indented by n spaces per nesting level. Zero, the default,
// renders compactly.
func Indent(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return fmt.Errorf("ssml: indent spaces cannot be negative")
		}
		o.indent = n
		return nil
	}
}

// Declaration returns an Option that prefixes rendered output with an XML declaration.
func Declaration() Option {
	return func(o *options) error {
		o.declaration = true
		return nil
	}
}
