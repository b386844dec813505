package ssml

import (
	"bytes"
	"strings"

	"github.com/KimNorgaard/go-ssml/ast"
	"github.com/KimNorgaard/go-ssml/internal/formatter"
	"github.com/KimNorgaard/go-ssml/lexer"
	"github.com/KimNorgaard/go-ssml/parser"
)

// Parse parses SSML markup into an element tree.
//
// If the input is malformed, Parse returns a nil document and an
// errors.ParseErrors value listing every problem with its source span.
// Only the MaxDepth option affects parsing.
func Parse(data []byte, opts ...Option) (*ast.Document, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}

	p := parser.New(lexer.New(data), parser.MaxDepth(o.maxDepth))
	doc := p.Parse()
	if errs := p.Errors(); len(errs) > 0 {
		return nil, errs
	}
	return doc, nil
}

// ParseString is like Parse but takes the markup as a string.
func ParseString(s string, opts ...Option) (*ast.Document, error) {
	return Parse([]byte(s), opts...)
}

// Render returns the compact markup form of doc. It never fails; a nil
// document renders as the empty string.
func Render(doc *ast.Document) string {
	if doc == nil {
		return ""
	}
	var sb strings.Builder
	_ = formatter.New(&sb, 0, false).Format(doc) // strings.Builder never fails
	return sb.String()
}

// Marshal returns the markup encoding of doc, shaped by the Indent and
// Declaration options.
func Marshal(doc *ast.Document, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	e := NewEncoder(&buf, opts...)
	if err := e.Encode(doc); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Format parses data and renders it back in canonical form.
func Format(data []byte, opts ...Option) ([]byte, error) {
	doc, err := Parse(data, opts...)
	if err != nil {
		return nil, err
	}
	return Marshal(doc, opts...)
}

// FindAndModify applies modify to every element of the named kind, visiting
// the tree in pre-order, and reports whether any element matched. Kind names
// are those of ast.Kind, such as "Break" or "LexiconReference"; "LexiconUri"
// is accepted for the latter. An unknown name matches nothing.
func FindAndModify(doc *ast.Document, kindName string, modify func(ast.Element)) bool {
	k, ok := ast.ParseKind(kindName)
	if !ok || doc == nil {
		return false
	}
	return ast.FindAndModify(doc, k, modify)
}

// CanonicalizeLanguages rewrites every xml:lang value in doc to its canonical
// BCP 47 form, e.g. "en-us" to "en-US". Values that are not valid language
// tags are left alone. It reports whether any value changed.
func CanonicalizeLanguages(doc *ast.Document) bool {
	if doc == nil {
		return false
	}
	changed := false
	canonicalize := func(tag string) string {
		c, ok := ast.CanonicalLanguage(tag)
		if ok {
			changed = true
		}
		return c
	}
	doc.VisitMut(
		func(e ast.Element) bool {
			k := e.Kind()
			return k == ast.KindSpeak || k == ast.KindLang
		},
		func(e ast.Element) {
			switch n := e.(type) {
			case *ast.Speak:
				if n.Language != nil {
					n.Language = ast.Ptr(canonicalize(*n.Language))
				}
			case *ast.Lang:
				if n.Language != "" {
					n.Language = canonicalize(n.Language)
				}
			}
		},
	)
	return changed
}
