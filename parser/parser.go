package parser

import (
	"fmt"
	"strings"

	"github.com/KimNorgaard/go-ssml/ast"
	"github.com/KimNorgaard/go-ssml/errors"
	"github.com/KimNorgaard/go-ssml/internal/duration"
	"github.com/KimNorgaard/go-ssml/lexer"
	"github.com/KimNorgaard/go-ssml/token"
)

// DefaultMaxDepth is the nesting limit used when no MaxDepth option is given.
const DefaultMaxDepth = 1000

type attributes map[string]string

// buildFn constructs an element from its attribute map and, for containers,
// its children.
type buildFn func(attrs attributes, children ast.Nodes) ast.Element

type elementDef struct {
	kind  ast.Kind
	build buildFn
}

// frame is an element whose start tag has been read but whose end tag has not.
// The bottom frame of the stack collects the document's top-level elements.
type frame struct {
	def      *elementDef
	tag      string
	attrs    attributes
	span     token.Span
	children ast.Nodes
}

// Parser transforms a stream of tokens into an element tree.
type Parser struct {
	l      *lexer.Lexer
	errors errors.ParseErrors

	curToken  token.Token
	peekToken token.Token

	elements map[string]*elementDef
	stack    []frame
	maxDepth int
	started  bool // an element or non-blank text has been read
}

// Option configures a Parser.
type Option func(*Parser)

// MaxDepth limits element nesting. Values below one are ignored.
func MaxDepth(n int) Option {
	return func(p *Parser) {
		if n > 0 {
			p.maxDepth = n
		}
	}
}

// New creates a new parser.
func New(l *lexer.Lexer, opts ...Option) *Parser {
	p := &Parser{
		l:        l,
		maxDepth: DefaultMaxDepth,
	}
	for _, opt := range opts {
		opt(p)
	}

	p.elements = make(map[string]*elementDef)
	p.register(ast.KindSpeak, buildSpeak)
	p.register(ast.KindVoice, func(a attributes, c ast.Nodes) ast.Element {
		return &ast.Voice{Name: a["name"], Children: c}
	})
	p.register(ast.KindParagraph, func(_ attributes, c ast.Nodes) ast.Element {
		return &ast.Paragraph{Children: c}
	})
	p.register(ast.KindSentence, func(_ attributes, c ast.Nodes) ast.Element {
		return &ast.Sentence{Children: c}
	})
	p.register(ast.KindPhoneme, func(a attributes, c ast.Nodes) ast.Element {
		return &ast.Phoneme{Alphabet: a["alphabet"], Pronunciation: a["ph"], Children: c}
	})
	p.register(ast.KindSayAs, func(a attributes, c ast.Nodes) ast.Element {
		return &ast.SayAs{InterpretAs: a["interpret-as"], Format: a["format"], Detail: a["detail"], Children: c}
	})
	p.register(ast.KindSub, func(a attributes, c ast.Nodes) ast.Element {
		return &ast.Sub{Alias: a["alias"], Children: c}
	})
	p.register(ast.KindProsody, func(a attributes, c ast.Nodes) ast.Element {
		return &ast.Prosody{
			Rate:     a["rate"],
			Pitch:    a["pitch"],
			Contour:  a["contour"],
			Range:    a["range"],
			Volume:   a["volume"],
			Children: c,
		}
	})
	p.register(ast.KindEmphasis, func(a attributes, c ast.Nodes) ast.Element {
		return &ast.Emphasis{Level: a["level"], Children: c}
	})
	p.register(ast.KindBreak, buildBreak)
	p.register(ast.KindMark, func(a attributes, _ ast.Nodes) ast.Element {
		return &ast.Mark{Name: a["name"]}
	})
	p.register(ast.KindAudio, func(a attributes, c ast.Nodes) ast.Element {
		return &ast.Audio{Source: a["src"], Children: c}
	})
	p.register(ast.KindDesc, func(_ attributes, c ast.Nodes) ast.Element {
		return &ast.Desc{Children: c}
	})
	p.register(ast.KindLexiconReference, func(a attributes, _ ast.Nodes) ast.Element {
		return &ast.LexiconReference{URI: a["uri"]}
	})
	p.register(ast.KindLang, func(a attributes, c ast.Nodes) ast.Element {
		return &ast.Lang{Language: a["xml:lang"], Children: c}
	})

	// Read two tokens, so curToken and peekToken are both set.
	p.nextToken()
	p.nextToken()

	return p
}

func (p *Parser) register(k ast.Kind, fn buildFn) {
	p.elements[k.Tag()] = &elementDef{kind: k, build: fn}
}

// Errors returns the errors encountered during parsing, in source order.
func (p *Parser) Errors() errors.ParseErrors {
	return p.errors
}

// Parse parses the whole input. It returns nil if any error was found;
// the errors are available from Errors.
func (p *Parser) Parse() *ast.Document {
	p.stack = append(p.stack[:0], frame{})

	for len(p.errors) == 0 && !p.curTokenIs(token.EOF) {
		switch p.curToken.Type {
		case token.TEXT:
			p.parseText()
		case token.DECL:
			p.parseDeclaration()
		case token.START_TAG:
			p.parseElement()
		case token.END_TAG:
			p.parseEndTag()
		case token.ILLEGAL:
			p.errorf(p.curToken.Span, "%s", p.curToken.Literal)
		default:
			p.errorf(p.curToken.Span, "unexpected %s", p.curToken.Type)
		}
	}

	if len(p.errors) == 0 {
		for i := len(p.stack) - 1; i > 0; i-- {
			f := p.stack[i]
			p.errorf(f.span, "unclosed element <%s>", f.tag)
		}
	}
	if len(p.errors) > 0 {
		return nil
	}

	return &ast.Document{Elements: p.stack[0].children}
}

func (p *Parser) nextToken() {
	p.curToken = p.peekToken
	p.peekToken = p.l.NextToken()
}

func (p *Parser) curTokenIs(t token.Type) bool {
	return p.curToken.Type == t
}

func (p *Parser) errorf(span token.Span, format string, args ...any) {
	p.errors = append(p.errors, errors.ParseError{
		Message: fmt.Sprintf(format, args...),
		Span:    span,
	})
}

func (p *Parser) top() *frame {
	return &p.stack[len(p.stack)-1]
}

func (p *Parser) appendChild(e ast.Element) {
	f := p.top()
	f.children = append(f.children, e)
	p.started = true
}

// The contract for all parse functions is that they are entered with
// p.curToken being the first token of the construct, and they return with
// p.curToken pointing to the token after it, or with an error recorded.

func (p *Parser) parseText() {
	if text := strings.TrimSpace(p.curToken.Literal); text != "" {
		p.appendChild(&ast.Text{Value: text})
	}
	p.nextToken()
}

func (p *Parser) parseDeclaration() {
	name, body := p.curToken.Literal, ""
	if i := strings.IndexAny(p.curToken.Literal, " \t\r\n"); i >= 0 {
		name, body = p.curToken.Literal[:i], p.curToken.Literal[i:]
	}
	if name != "xml" {
		p.errorf(p.curToken.Span, "unsupported processing instruction <?%s?>", p.curToken.Literal)
		return
	}
	if p.started || len(p.stack) > 1 {
		p.errorf(p.curToken.Span, "xml declaration allowed only at the start of the document")
		return
	}
	if !pseudoAttributes(body) {
		p.errorf(p.curToken.Span, "malformed xml declaration <?%s?>", p.curToken.Literal)
		return
	}
	p.started = true
	p.nextToken()
}

func (p *Parser) parseElement() {
	tag, start := p.curToken.Literal, p.curToken.Span
	def, ok := p.elements[tag]
	if !ok {
		p.errorf(start, "unknown element <%s>", tag)
		return
	}
	p.nextToken()

	attrs, end, selfClosing, ok := p.parseAttributes(tag)
	if !ok {
		return
	}
	span := start.Join(end)

	switch {
	case selfClosing && def.kind.IsLeaf():
		p.appendChild(def.build(attrs, nil))
	case selfClosing:
		p.errorf(span, "element <%s> cannot be self-closing", tag)
	case def.kind.IsLeaf():
		p.parseEmptyBody(def, tag, attrs)
	case len(p.stack) > p.maxDepth:
		p.errorf(span, "maximum nesting depth of %d exceeded", p.maxDepth)
	default:
		p.started = true
		p.stack = append(p.stack, frame{def: def, tag: tag, attrs: attrs, span: span})
	}
}

// parseAttributes reads attributes up to and including the token closing the
// start tag. It returns the span of that token and whether it was "/>".
func (p *Parser) parseAttributes(tag string) (attributes, token.Span, bool, bool) {
	attrs := attributes{}
	for {
		switch p.curToken.Type {
		case token.TAG_END, token.SELF_CLOSE:
			end, selfClosing := p.curToken.Span, p.curTokenIs(token.SELF_CLOSE)
			p.nextToken()
			return attrs, end, selfClosing, true
		case token.IDENT:
			if !p.parseAttribute(attrs) {
				return nil, token.Span{}, false, false
			}
		case token.EOF:
			p.errorf(p.curToken.Span, "unexpected end of input in tag <%s>", tag)
			return nil, token.Span{}, false, false
		case token.ILLEGAL:
			p.errorf(p.curToken.Span, "%s", p.curToken.Literal)
			return nil, token.Span{}, false, false
		default:
			p.errorf(p.curToken.Span, "unexpected %s in tag <%s>", p.curToken.Type, tag)
			return nil, token.Span{}, false, false
		}
	}
}

// parseAttribute reads name="value". A repeated name overwrites the earlier value.
func (p *Parser) parseAttribute(attrs attributes) bool {
	name := p.curToken.Literal
	p.nextToken()
	if !p.curTokenIs(token.ASSIGN) {
		p.errorf(p.curToken.Span, "expected '=' after attribute name %q", name)
		return false
	}
	p.nextToken()
	if !p.curTokenIs(token.STRING) {
		if p.curTokenIs(token.ILLEGAL) {
			p.errorf(p.curToken.Span, "%s", p.curToken.Literal)
		} else {
			p.errorf(p.curToken.Span, "expected quoted value for attribute %q", name)
		}
		return false
	}
	attrs[name] = p.curToken.Literal
	p.nextToken()
	return true
}

// parseEmptyBody handles a leaf element written as <tag ...></tag>. Only
// whitespace may appear between the two tags.
func (p *Parser) parseEmptyBody(def *elementDef, tag string, attrs attributes) {
	if p.curTokenIs(token.TEXT) && strings.TrimSpace(p.curToken.Literal) == "" {
		p.nextToken()
	}
	if !p.curTokenIs(token.END_TAG) || p.curToken.Literal != tag {
		p.errorf(p.curToken.Span, "element <%s> must be empty", tag)
		return
	}
	if !p.parseEndTagClose() {
		return
	}
	p.appendChild(def.build(attrs, nil))
}

func (p *Parser) parseEndTag() {
	tag, span := p.curToken.Literal, p.curToken.Span
	if !p.parseEndTagClose() {
		return
	}
	if len(p.stack) == 1 {
		p.errorf(span, "unexpected closing tag </%s>", tag)
		return
	}
	f := p.top()
	if f.tag != tag {
		p.errorf(span, "mismatched closing tag </%s>, expected </%s>", tag, f.tag)
		return
	}
	e := f.def.build(f.attrs, f.children)
	p.stack = p.stack[:len(p.stack)-1]
	p.appendChild(e)
}

// parseEndTagClose consumes an END_TAG and the '>' that must follow it.
func (p *Parser) parseEndTagClose() bool {
	tag := p.curToken.Literal
	p.nextToken()
	switch p.curToken.Type {
	case token.TAG_END:
		p.nextToken()
		return true
	case token.ILLEGAL:
		p.errorf(p.curToken.Span, "%s", p.curToken.Literal)
	case token.EOF:
		p.errorf(p.curToken.Span, "unexpected end of input in tag </%s>", tag)
	default:
		p.errorf(p.curToken.Span, "expected '>' to close tag </%s>", tag)
	}
	return false
}

func buildSpeak(a attributes, c ast.Nodes) ast.Element {
	return &ast.Speak{
		Version:   optional(a, "version"),
		Namespace: optional(a, "xmlns"),
		Language:  optional(a, "xml:lang"),
		Children:  c,
	}
}

// buildBreak ignores time and strength values it cannot parse.
func buildBreak(a attributes, _ ast.Nodes) ast.Element {
	b := &ast.Break{}
	if v, ok := a["time"]; ok {
		if d, ok := duration.Parse(v); ok {
			b.Duration = &d
		}
	}
	if v, ok := a["strength"]; ok {
		if s, ok := ast.ParseBreakStrength(v); ok {
			b.Strength = &s
		}
	}
	return b
}

// pseudoAttributes reports whether s is a whitespace-separated sequence of
// name="value" pairs, the only content an xml declaration may carry.
func pseudoAttributes(s string) bool {
	for {
		s = strings.TrimLeft(s, " \t\r\n")
		if s == "" {
			return true
		}
		n := strings.IndexFunc(s, func(r rune) bool { return !isNameChar(r) })
		if n <= 0 {
			return false
		}
		s = strings.TrimLeft(s[n:], " \t\r\n")
		if !strings.HasPrefix(s, "=") {
			return false
		}
		s = strings.TrimLeft(s[1:], " \t\r\n")
		if !strings.HasPrefix(s, `"`) {
			return false
		}
		end := strings.IndexByte(s[1:], '"')
		if end < 0 {
			return false
		}
		s = s[end+2:]
		if s != "" && !strings.ContainsRune(" \t\r\n", rune(s[0])) {
			return false
		}
	}
}

func isNameChar(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' ||
		r == '_' || r == '-' || r == ':' || r == '.'
}

func optional(a attributes, name string) *string {
	v, ok := a[name]
	if !ok {
		return nil
	}
	return &v
}
