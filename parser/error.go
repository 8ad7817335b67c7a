package parser

import (
	"fmt"

	"github.com/typeport/typeport/errors"
	"github.com/typeport/typeport/scanner"
)

// Element names the grammatical element a Missing diagnostic expected.
type Element int

const (
	ElementStringLiteral Element = iota
	ElementStruct
	ElementLeftBrace
	ElementIdentifier
	ElementColon
	ElementRightBracket
)

func (e Element) String() string {
	switch e {
	case ElementStringLiteral:
		return "StringLiteral"
	case ElementStruct:
		return "Struct"
	case ElementLeftBrace:
		return "LeftBrace"
	case ElementIdentifier:
		return "Identifier"
	case ElementColon:
		return "Colon"
	case ElementRightBracket:
		return "RightBracket"
	}
	return "Unknown"
}

var (
	// ErrUnexpectedEndOfFile reports input that ran out inside an open
	// declaration, struct body, or tag block.
	ErrUnexpectedEndOfFile = errors.New("Unexpected End Of file")

	// ErrUnknown is the defensive catch-all for token shapes the
	// grammar does not recognize in a given context. Kept explicit
	// rather than panicking.
	ErrUnknown = errors.New("We have encountered an unknown error. This is likely a bug with the library.")
)

// MissingError reports a wrong token where a specific grammatical
// element was required.
type MissingError struct {
	Element Element
	Lexeme  string
	Pos     scanner.Position
}

func (e *MissingError) Error() string {
	return fmt.Sprintf("Expected %s but found `%s` at line %d column %d",
		e.Element, e.Lexeme, e.Pos.Line, e.Pos.Column)
}
