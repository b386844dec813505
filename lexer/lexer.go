package lexer

import (
	"bytes"
	"fmt"
	"strconv"
	"unicode/utf8"

	"github.com/KimNorgaard/go-ssml/token"
)

// maxEntityLen bounds the lookahead for a terminating ';' ("&#x10FFFF;" is the longest form).
const maxEntityLen = 10

// Lexer transforms SSML source into a stream of tokens.
//
// It has two modes. In content mode it produces TEXT, DECL, START_TAG and
// END_TAG tokens. After a START_TAG or END_TAG it switches to tag mode,
// producing IDENT, ASSIGN, STRING, TAG_END and SELF_CLOSE tokens until the
// tag frame is closed.
type Lexer struct {
	input        []byte
	position     int  // current position in input (points to current char)
	readPosition int  // current reading position in input (after current char)
	ch           rune // current char under examination, -1 at end of input
	line         int
	column       int
	inTag        bool
	buf          bytes.Buffer
}

// New creates and returns a new Lexer.
func New(input []byte) *Lexer {
	l := &Lexer{input: input, line: 1}
	l.readChar()
	return l
}

// NextToken scans the input and returns the next token.
func (l *Lexer) NextToken() token.Token {
	if l.inTag {
		return l.nextTagToken()
	}
	return l.nextContentToken()
}

func (l *Lexer) nextContentToken() token.Token {
	start := l.pos()
	var tok token.Token
	switch {
	case l.ch == -1:
		tok.Type = token.EOF
	case l.ch == '<':
		switch l.peekByte() {
		case '?':
			tok.Type, tok.Literal = l.readDeclaration()
		case '!':
			l.readChar()
			l.readChar()
			tok.Type = token.ILLEGAL
			tok.Literal = "comments, CDATA sections and DOCTYPE declarations are not supported"
		case '/':
			l.readChar()
			l.readChar()
			tok.Type, tok.Literal = l.readTagName(token.END_TAG)
		default:
			l.readChar()
			tok.Type, tok.Literal = l.readTagName(token.START_TAG)
		}
	default:
		tok.Type, tok.Literal = l.readText()
	}
	tok.Span = token.Span{Start: start, End: l.pos()}
	return tok
}

func (l *Lexer) nextTagToken() token.Token {
	l.skipWhitespace()
	start := l.pos()
	var tok token.Token
	switch {
	case l.ch == -1:
		tok.Type = token.EOF
	case l.ch == '>':
		tok.Type = token.TAG_END
		tok.Literal = ">"
		l.inTag = false
		l.readChar()
	case l.ch == '/' && l.peekByte() == '>':
		tok.Type = token.SELF_CLOSE
		tok.Literal = "/>"
		l.inTag = false
		l.readChar()
		l.readChar()
	case l.ch == '=':
		tok.Type = token.ASSIGN
		tok.Literal = "="
		l.readChar()
	case l.ch == '"':
		tok.Type, tok.Literal = l.readString()
	case isNameStart(l.ch):
		tok.Type = token.IDENT
		tok.Literal = l.readName()
	default:
		tok.Type = token.ILLEGAL
		if l.invalidRune() {
			tok.Literal = "invalid utf-8 sequence in tag"
		} else {
			tok.Literal = fmt.Sprintf("unexpected character %q in tag", l.ch)
		}
		l.readChar()
	}
	tok.Span = token.Span{Start: start, End: l.pos()}
	return tok
}

// readChar gives us the next character and advances our position in the input.
func (l *Lexer) readChar() {
	if l.ch == -1 {
		return
	}
	if l.ch == '\n' {
		l.line++
		l.column = 0
	}
	l.position = l.readPosition
	l.column++
	if l.readPosition >= len(l.input) {
		l.ch = -1
		return
	}
	r, size := utf8.DecodeRune(l.input[l.readPosition:])
	l.ch = r
	l.readPosition += size
}

func (l *Lexer) pos() token.Pos {
	return token.Pos{Offset: l.position, Line: l.line, Column: l.column}
}

// invalidRune reports whether the current char was decoded from a malformed byte sequence.
func (l *Lexer) invalidRune() bool {
	return l.ch == utf8.RuneError && l.readPosition-l.position == 1
}

func (l *Lexer) peekByte() byte {
	if l.readPosition >= len(l.input) {
		return 0
	}
	return l.input[l.readPosition]
}

func (l *Lexer) skipWhitespace() {
	for isWhitespace(l.ch) {
		l.readChar()
	}
}

func (l *Lexer) readTagName(typ token.Type) (token.Type, string) {
	l.skipWhitespace()
	if !isNameStart(l.ch) {
		return token.ILLEGAL, "expected element name after '<'"
	}
	l.inTag = true
	return typ, l.readName()
}

func (l *Lexer) readName() string {
	position := l.position
	for isNameChar(l.ch) {
		l.readChar()
	}
	return string(l.input[position:l.position])
}

func (l *Lexer) readDeclaration() (token.Type, string) {
	l.readChar() // consume '<'
	l.readChar() // consume '?'
	position := l.position
	for {
		if l.ch == -1 {
			return token.ILLEGAL, "unterminated declaration, expected '?>'"
		}
		if l.ch == '?' && l.peekByte() == '>' {
			body := string(bytes.TrimSpace(l.input[position:l.position]))
			l.readChar()
			l.readChar()
			return token.DECL, body
		}
		l.readChar()
	}
}

func (l *Lexer) readText() (token.Type, string) {
	l.buf.Reset()
	for l.ch != '<' && l.ch != -1 {
		if l.invalidRune() {
			l.readChar()
			return token.ILLEGAL, "invalid utf-8 sequence in text"
		}
		if l.ch == '&' {
			l.readEntity()
			continue
		}
		l.buf.WriteRune(l.ch)
		l.readChar()
	}
	return token.TEXT, l.buf.String()
}

func (l *Lexer) readString() (token.Type, string) {
	l.readChar() // consume opening quote
	l.buf.Reset()
	for {
		switch {
		case l.ch == -1:
			return token.ILLEGAL, "unterminated attribute value"
		case l.ch == '"':
			l.readChar() // consume closing quote
			return token.STRING, l.buf.String()
		case l.invalidRune():
			l.readChar()
			return token.ILLEGAL, "invalid utf-8 sequence in attribute value"
		case l.ch == '&':
			l.readEntity()
		default:
			l.buf.WriteRune(l.ch)
			l.readChar()
		}
	}
}

// readEntity is entered on '&'. It writes the decoded character reference to
// the buffer, or a literal '&' when the reference is not one we decode.
func (l *Lexer) readEntity() {
	rest := l.input[l.readPosition:min(len(l.input), l.readPosition+maxEntityLen)]
	semi := bytes.IndexByte(rest, ';')
	if semi > 0 {
		if r, ok := decodeEntity(string(rest[:semi])); ok {
			l.buf.WriteRune(r)
			end := l.readPosition + semi // offset of ';'
			for l.position <= end {
				l.readChar()
			}
			return
		}
	}
	l.buf.WriteByte('&')
	l.readChar()
}

func decodeEntity(name string) (rune, bool) {
	switch name {
	case "amp":
		return '&', true
	case "lt":
		return '<', true
	case "gt":
		return '>', true
	case "quot":
		return '"', true
	case "apos":
		return '\'', true
	}
	if len(name) < 2 || name[0] != '#' {
		return 0, false
	}
	digits, base := name[1:], 10
	if digits[0] == 'x' || digits[0] == 'X' {
		digits, base = digits[1:], 16
	}
	if digits == "" || digits[0] == '+' || digits[0] == '-' {
		return 0, false
	}
	v, err := strconv.ParseUint(digits, base, 32)
	if err != nil || v == 0 || !utf8.ValidRune(rune(v)) {
		return 0, false
	}
	return rune(v), true
}

func isWhitespace(ch rune) bool {
	return ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n'
}

func isLetter(ch rune) bool {
	return 'a' <= ch && ch <= 'z' || 'A' <= ch && ch <= 'Z'
}

func isDigit(ch rune) bool {
	return '0' <= ch && ch <= '9'
}

func isNameStart(ch rune) bool {
	return isLetter(ch) || ch == '_' || ch == '-' || ch == ':'
}

func isNameChar(ch rune) bool {
	return isNameStart(ch) || isDigit(ch) || ch == '.'
}
