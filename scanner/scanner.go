// Package scanner turns Go-style struct declaration source into a flat
// token sequence with line/column positions. Whitespace and pointer
// sigils are dropped before the tokens reach the parser: a structural
// type system has no use for pointer-ness, so it is discarded here
// rather than carried through the pipeline.
package scanner

import (
	"fmt"

	"github.com/typeport/typeport/ast"
)

// Kind discriminates token types.
type Kind int

const (
	KindLeftBrace Kind = iota
	KindRightBrace
	KindColon
	KindIdentifier
	KindStringLiteral
	KindBacktick
	KindNewline
	KindLeftBracket
	KindRightBracket
	// Keywords
	KindType
	KindStruct
	KindJSON
	KindBinding
	// KindDataType is a recognized built-in type name; the mapped
	// DataType rides along in Token.DataType.
	KindDataType
)

// Position is a 1-based line/column location in the source text.
// A newline increments the line and resets the column to 1; every
// other consumed character advances the column by 1.
type Position struct {
	Line   int
	Column int
}

func initialPosition() Position {
	return Position{Line: 1, Column: 1}
}

func (p *Position) advance(r rune) {
	if r == '\n' {
		p.Line++
		p.Column = 1
	} else {
		p.Column++
	}
}

// Token is one lexeme with its kind and the position of its first
// character.
type Token struct {
	Kind   Kind
	Lexeme string // exact matched source text, quotes included for strings
	Pos    Position

	// DataType is set when Kind == KindDataType.
	DataType ast.DataType
	// Literal is the unquoted value when Kind == KindStringLiteral.
	Literal string
}

// Error is a lexical error. The only possible cause is a string
// literal not closed before a newline or end of input.
type Error struct {
	Pos Position
}

func (e *Error) Error() string {
	return fmt.Sprintf("Missing string terminator at line %d column %d", e.Pos.Line, e.Pos.Column)
}

// keywords maps identifier text to its token kind and, for built-in
// type names, the structural data type it denotes. time.Time maps to
// String because that is how it crosses a JSON boundary.
var keywords = map[string]struct {
	kind Kind
	data ast.DataType
}{
	"type":      {kind: KindType},
	"struct":    {kind: KindStruct},
	"json":      {kind: KindJSON},
	"binding":   {kind: KindBinding},
	"int":       {kind: KindDataType, data: ast.NumberType},
	"int64":     {kind: KindDataType, data: ast.NumberType},
	"float64":   {kind: KindDataType, data: ast.NumberType},
	"string":    {kind: KindDataType, data: ast.StringType},
	"time.Time": {kind: KindDataType, data: ast.StringType},
	"bool":      {kind: KindDataType, data: ast.BooleanType},
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// Identifier characters admit '.' and '-' so dotted package-qualified
// names like time.Time scan as a single token.
func isAlpha(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || r == '.' || r == '-'
}

func isAlphanumeric(r rune) bool { return isDigit(r) || isAlpha(r) }

func isWhitespace(r rune) bool { return r == ' ' || r == '\r' || r == '\t' }

// scanner is a rune cursor over the full source with position tracking.
type scanner struct {
	src    []rune
	idx    int
	pos    Position
	lexeme []rune
}

func newScanner(source string) *scanner {
	return &scanner{src: []rune(source), pos: initialPosition()}
}

func (s *scanner) atEnd() bool { return s.idx >= len(s.src) }

func (s *scanner) peek() (rune, bool) {
	if s.atEnd() {
		return 0, false
	}
	return s.src[s.idx], true
}

func (s *scanner) advance() (rune, bool) {
	r, ok := s.peek()
	if !ok {
		return 0, false
	}
	s.idx++
	s.lexeme = append(s.lexeme, r)
	s.pos.advance(r)
	return r, true
}

func (s *scanner) advanceIfMatch(expected rune) bool {
	if r, ok := s.peek(); ok && r == expected {
		s.advance()
		return true
	}
	return false
}

func (s *scanner) advanceWhile(cond func(rune) bool) {
	for {
		r, ok := s.peek()
		if !ok || !cond(r) {
			return
		}
		s.advance()
	}
}

// string scans the remainder of a string literal after the opening
// quote. Scanning never crosses a newline: an unclosed literal fails
// with the position where scanning stopped.
func (s *scanner) string() (Token, error) {
	s.advanceWhile(func(r rune) bool { return r != '"' && r != '\n' })
	if !s.advanceIfMatch('"') {
		return Token{}, &Error{Pos: s.pos}
	}
	lexeme := string(s.lexeme)
	return Token{
		Kind:    KindStringLiteral,
		Literal: lexeme[1 : len(lexeme)-1],
	}, nil
}

// identifier scans an identifier or keyword starting at the already
// consumed first character.
func (s *scanner) identifier() Token {
	s.advanceWhile(isAlphanumeric)
	word := string(s.lexeme)
	if kw, ok := keywords[word]; ok {
		return Token{Kind: kw.kind, DataType: kw.data}
	}
	return Token{Kind: KindIdentifier}
}

// scanNext produces the next raw token. emit reports whether the token
// belongs in the output stream (whitespace and pointer sigils do not).
func (s *scanner) scanNext() (tok Token, emit bool, err error) {
	start := s.pos
	s.lexeme = s.lexeme[:0]

	r, ok := s.advance()
	if !ok {
		return Token{}, false, nil
	}

	switch {
	case r == ':':
		tok = Token{Kind: KindColon}
	case r == '{':
		tok = Token{Kind: KindLeftBrace}
	case r == '}':
		tok = Token{Kind: KindRightBrace}
	case r == '`':
		tok = Token{Kind: KindBacktick}
	case r == '[':
		tok = Token{Kind: KindLeftBracket}
	case r == ']':
		tok = Token{Kind: KindRightBracket}
	case r == '*':
		// Pointer sigil: scanned so positions stay exact, never emitted.
		return Token{}, false, nil
	case r == '\n':
		tok = Token{Kind: KindNewline}
	case isWhitespace(r):
		return Token{}, false, nil
	case r == '"':
		tok, err = s.string()
		if err != nil {
			return Token{}, false, err
		}
	default:
		tok = s.identifier()
	}

	tok.Lexeme = string(s.lexeme)
	tok.Pos = start
	return tok, true, nil
}

// Scan tokenizes the entire input eagerly. On success it returns the
// token sequence with whitespace and pointer tokens filtered out. If
// any lexical error occurs, scanning continues so every error in the
// input is reported, and no token sequence is returned.
func Scan(source string) ([]Token, []error) {
	s := newScanner(source)
	var tokens []Token
	var errs []error
	for !s.atEnd() {
		tok, emit, err := s.scanNext()
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if emit {
			tokens = append(tokens, tok)
		}
	}
	if len(errs) > 0 {
		return nil, errs
	}
	return tokens, nil
}
