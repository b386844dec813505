package ast

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Element is one node of the tree. The set of implementations is closed:
// every type in this package with an elementNode method.
type Element interface {
	// Kind returns the variant of the element.
	Kind() Kind
	// Attrs returns the element's attributes in canonical order, omitting
	// fields that hold their default value.
	Attrs() []Attr
	// String returns a debug representation of the element and its subtree.
	String() string
	elementNode()
}

// Container is an element that owns an ordered sequence of children.
type Container interface {
	Element
	ChildNodes() Nodes
}

// Nodes is an ordered sequence of elements owned by one parent.
type Nodes []Element

// Attr is one markup attribute.
type Attr struct {
	Name  string
	Value string
}

// Ptr returns a pointer to v, for populating optional fields.
func Ptr[T any](v T) *T {
	return &v
}

// Document is the root of a parsed SSML text: the top-level elements in speech order.
type Document struct {
	Elements Nodes
}

// String returns a debug representation with one top-level element per line.
func (d *Document) String() string {
	var out bytes.Buffer
	for i, e := range d.Elements {
		if i > 0 {
			out.WriteString("\n")
		}
		out.WriteString(e.String())
	}
	return out.String()
}

// Speak is the root element of an SSML document.
type Speak struct {
	Version   *string `json:"version"`
	Namespace *string `json:"xmlns"`
	Language  *string `json:"lang"`
	Children  Nodes   `json:"children"`
}

func (e *Speak) elementNode()      {}
func (e *Speak) Kind() Kind        { return KindSpeak }
func (e *Speak) ChildNodes() Nodes { return e.Children }
func (e *Speak) String() string    { return debugString(e, e.Children) }
func (e *Speak) Attrs() []Attr {
	var attrs []Attr
	attrs = appendOptional(attrs, "version", e.Version)
	attrs = appendOptional(attrs, "xmlns", e.Namespace)
	return appendOptional(attrs, "xml:lang", e.Language)
}

// Voice selects the voice for its content.
type Voice struct {
	Name     string `json:"name"`
	Children Nodes  `json:"children"`
}

func (e *Voice) elementNode()      {}
func (e *Voice) Kind() Kind        { return KindVoice }
func (e *Voice) ChildNodes() Nodes { return e.Children }
func (e *Voice) String() string    { return debugString(e, e.Children) }
func (e *Voice) Attrs() []Attr     { return appendString(nil, "name", e.Name) }

// Paragraph groups sentences.
type Paragraph struct {
	Children Nodes `json:"children"`
}

func (e *Paragraph) elementNode()      {}
func (e *Paragraph) Kind() Kind        { return KindParagraph }
func (e *Paragraph) ChildNodes() Nodes { return e.Children }
func (e *Paragraph) String() string    { return debugString(e, e.Children) }
func (e *Paragraph) Attrs() []Attr     { return nil }

// Sentence is a single sentence.
type Sentence struct {
	Children Nodes `json:"children"`
}

func (e *Sentence) elementNode()      {}
func (e *Sentence) Kind() Kind        { return KindSentence }
func (e *Sentence) ChildNodes() Nodes { return e.Children }
func (e *Sentence) String() string    { return debugString(e, e.Children) }
func (e *Sentence) Attrs() []Attr     { return nil }

// Phoneme gives a phonetic pronunciation for its content.
type Phoneme struct {
	Alphabet      string `json:"alphabet"`
	Pronunciation string `json:"ph"`
	Children      Nodes  `json:"children"`
}

func (e *Phoneme) elementNode()      {}
func (e *Phoneme) Kind() Kind        { return KindPhoneme }
func (e *Phoneme) ChildNodes() Nodes { return e.Children }
func (e *Phoneme) String() string    { return debugString(e, e.Children) }
func (e *Phoneme) Attrs() []Attr {
	attrs := appendString(nil, "alphabet", e.Alphabet)
	return appendString(attrs, "ph", e.Pronunciation)
}

// SayAs tells the synthesizer how to interpret its content.
type SayAs struct {
	InterpretAs string `json:"interpret_as"`
	Format      string `json:"format"`
	Detail      string `json:"detail"`
	Children    Nodes  `json:"children"`
}

func (e *SayAs) elementNode()      {}
func (e *SayAs) Kind() Kind        { return KindSayAs }
func (e *SayAs) ChildNodes() Nodes { return e.Children }
func (e *SayAs) String() string    { return debugString(e, e.Children) }
func (e *SayAs) Attrs() []Attr {
	attrs := appendString(nil, "interpret-as", e.InterpretAs)
	attrs = appendString(attrs, "format", e.Format)
	return appendString(attrs, "detail", e.Detail)
}

// Sub substitutes Alias for the spoken form of its content.
type Sub struct {
	Alias    string `json:"alias"`
	Children Nodes  `json:"children"`
}

func (e *Sub) elementNode()      {}
func (e *Sub) Kind() Kind        { return KindSub }
func (e *Sub) ChildNodes() Nodes { return e.Children }
func (e *Sub) String() string    { return debugString(e, e.Children) }
func (e *Sub) Attrs() []Attr     { return appendString(nil, "alias", e.Alias) }

// Prosody controls rate, pitch and volume of its content.
type Prosody struct {
	Rate     string `json:"rate"`
	Pitch    string `json:"pitch"`
	Contour  string `json:"contour"`
	Range    string `json:"range"`
	Volume   string `json:"volume"`
	Children Nodes  `json:"children"`
}

func (e *Prosody) elementNode()      {}
func (e *Prosody) Kind() Kind        { return KindProsody }
func (e *Prosody) ChildNodes() Nodes { return e.Children }
func (e *Prosody) String() string    { return debugString(e, e.Children) }
func (e *Prosody) Attrs() []Attr {
	attrs := appendString(nil, "rate", e.Rate)
	attrs = appendString(attrs, "pitch", e.Pitch)
	attrs = appendString(attrs, "contour", e.Contour)
	attrs = appendString(attrs, "range", e.Range)
	return appendString(attrs, "volume", e.Volume)
}

// Emphasis stresses its content.
type Emphasis struct {
	Level    string `json:"level"`
	Children Nodes  `json:"children"`
}

func (e *Emphasis) elementNode()      {}
func (e *Emphasis) Kind() Kind        { return KindEmphasis }
func (e *Emphasis) ChildNodes() Nodes { return e.Children }
func (e *Emphasis) String() string    { return debugString(e, e.Children) }
func (e *Emphasis) Attrs() []Attr     { return appendString(nil, "level", e.Level) }

// Break is a pause. Duration and Strength are independent and both optional.
type Break struct {
	Duration *time.Duration `json:"time"`
	Strength *BreakStrength `json:"strength"`
}

func (e *Break) elementNode()   {}
func (e *Break) Kind() Kind     { return KindBreak }
func (e *Break) String() string { return debugString(e, nil) }
func (e *Break) Attrs() []Attr {
	var attrs []Attr
	// A negative pause cannot be read back, so it is left out.
	if e.Duration != nil && *e.Duration >= 0 {
		attrs = append(attrs, Attr{Name: "time", Value: FormatDuration(*e.Duration)})
	}
	if e.Strength != nil {
		attrs = append(attrs, Attr{Name: "strength", Value: e.Strength.String()})
	}
	return attrs
}

// Mark is a named position in the speech stream.
type Mark struct {
	Name string `json:"name"`
}

func (e *Mark) elementNode()   {}
func (e *Mark) Kind() Kind     { return KindMark }
func (e *Mark) String() string { return debugString(e, nil) }
func (e *Mark) Attrs() []Attr  { return appendString(nil, "name", e.Name) }

// Audio plays a recording; its content is the fallback.
type Audio struct {
	Source   string `json:"src"`
	Children Nodes  `json:"children"`
}

func (e *Audio) elementNode()      {}
func (e *Audio) Kind() Kind        { return KindAudio }
func (e *Audio) ChildNodes() Nodes { return e.Children }
func (e *Audio) String() string    { return debugString(e, e.Children) }
func (e *Audio) Attrs() []Attr     { return appendString(nil, "src", e.Source) }

// Desc describes the content of an enclosing Audio element.
type Desc struct {
	Children Nodes `json:"children"`
}

func (e *Desc) elementNode()      {}
func (e *Desc) Kind() Kind        { return KindDesc }
func (e *Desc) ChildNodes() Nodes { return e.Children }
func (e *Desc) String() string    { return debugString(e, e.Children) }
func (e *Desc) Attrs() []Attr     { return nil }

// LexiconReference points at an external pronunciation lexicon.
type LexiconReference struct {
	URI string `json:"uri"`
}

func (e *LexiconReference) elementNode()   {}
func (e *LexiconReference) Kind() Kind     { return KindLexiconReference }
func (e *LexiconReference) String() string { return debugString(e, nil) }
func (e *LexiconReference) Attrs() []Attr  { return appendString(nil, "uri", e.URI) }

// Lang marks its content as being in another language.
type Lang struct {
	Language string `json:"xml_lang"`
	Children Nodes  `json:"children"`
}

func (e *Lang) elementNode()      {}
func (e *Lang) Kind() Kind        { return KindLang }
func (e *Lang) ChildNodes() Nodes { return e.Children }
func (e *Lang) String() string    { return debugString(e, e.Children) }
func (e *Lang) Attrs() []Attr     { return appendString(nil, "xml:lang", e.Language) }

// Text is character data. Parsed text is trimmed and never empty.
type Text struct {
	Value string
}

func (e *Text) elementNode()   {}
func (e *Text) Kind() Kind     { return KindText }
func (e *Text) String() string { return strconv.Quote(e.Value) }
func (e *Text) Attrs() []Attr  { return nil }

// FormatDuration renders d in milliseconds with an "ms" suffix. Sub-millisecond
// remainders become a decimal fraction, so "1.5ms" survives a round trip.
// Negative durations render as "0ms".
func FormatDuration(d time.Duration) string {
	var b strings.Builder
	d = max(d, 0)
	ms, rem := d/time.Millisecond, d%time.Millisecond
	b.WriteString(strconv.FormatInt(int64(ms), 10))
	if rem != 0 {
		b.WriteByte('.')
		b.WriteString(strings.TrimRight(fmt.Sprintf("%06d", int64(rem)), "0"))
	}
	b.WriteString("ms")
	return b.String()
}

func appendString(attrs []Attr, name, value string) []Attr {
	if value == "" {
		return attrs
	}
	return append(attrs, Attr{Name: name, Value: value})
}

func appendOptional(attrs []Attr, name string, value *string) []Attr {
	if value == nil {
		return attrs
	}
	return append(attrs, Attr{Name: name, Value: *value})
}

// debugString renders (tag name="value" child...) with children in order.
func debugString(e Element, children Nodes) string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(e.Kind().Tag())
	for _, a := range e.Attrs() {
		out.WriteString(" " + a.Name + "=" + strconv.Quote(a.Value))
	}
	for _, c := range children {
		out.WriteString(" ")
		if c == nil {
			out.WriteString("<nil>")
			continue
		}
		out.WriteString(c.String())
	}
	out.WriteString(")")
	return out.String()
}
