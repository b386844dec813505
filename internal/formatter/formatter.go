package formatter

import (
	"io"
	"strings"

	"github.com/KimNorgaard/go-ssml/ast"
)

// Declaration is the XML declaration written when requested.
const Declaration = `<?xml version="1.0" encoding="UTF-8"?>`

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Escape replaces the characters that may not appear literally in text or
// attribute values with their entity references.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Formatter writes an SSML element tree to an output stream.
//
// With an indent of zero the output is compact: no whitespace is added
// between tags. Otherwise every element and text node starts on its own line.
type Formatter struct {
	w           io.Writer
	indent      string
	depth       int
	declaration bool
	err         error
}

// New returns a new formatter that writes to w, indenting nested elements by
// indentSpaces spaces. If declaration is set the output starts with an XML
// declaration.
func New(w io.Writer, indentSpaces int, declaration bool) *Formatter {
	var indentStr string
	if indentSpaces > 0 {
		indentStr = strings.Repeat(" ", indentSpaces)
	}
	return &Formatter{w: w, indent: indentStr, declaration: declaration}
}

// Format writes the markup representation of the document to the writer.
// It returns the first write error.
func (f *Formatter) Format(doc *ast.Document) error {
	if f.declaration {
		f.write(Declaration)
		if f.indent != "" && len(doc.Elements) > 0 {
			f.write("\n")
		}
	}
	for i, e := range doc.Elements {
		if i > 0 && f.indent != "" {
			f.write("\n")
		}
		f.writeElement(e)
	}
	return f.err
}

// FormatElement writes a single element and its subtree.
func (f *Formatter) FormatElement(e ast.Element) error {
	f.writeElement(e)
	return f.err
}

func (f *Formatter) write(s string) {
	if f.err != nil {
		return
	}
	_, f.err = io.WriteString(f.w, s)
}

func (f *Formatter) writeIndent() {
	for i := 0; i < f.depth; i++ {
		f.write(f.indent)
	}
}

func (f *Formatter) writeElement(e ast.Element) {
	switch n := e.(type) {
	case nil:
		return
	case *ast.Text:
		f.write(Escape(n.Value))
		return
	case ast.Container:
		f.writeStartTag(n, ">")
		children := n.ChildNodes()
		if f.indent != "" && len(children) > 0 {
			f.depth++
			for _, c := range children {
				if c == nil {
					continue
				}
				f.write("\n")
				f.writeIndent()
				f.writeElement(c)
			}
			f.depth--
			f.write("\n")
			f.writeIndent()
		} else {
			for _, c := range children {
				f.writeElement(c)
			}
		}
		f.write("</" + n.Kind().Tag() + ">")
	default:
		f.writeStartTag(n, "/>")
	}
}

func (f *Formatter) writeStartTag(e ast.Element, closing string) {
	f.write("<" + e.Kind().Tag())
	for _, a := range e.Attrs() {
		f.write(" " + a.Name + `="` + Escape(a.Value) + `"`)
	}
	f.write(closing)
}
