// Package parser builds struct declaration ASTs from scanner tokens.
//
// The grammar is recursive descent with one token of lookahead over a
// materialized token slice. Errors recover at declaration granularity:
// a malformed declaration is recorded as a diagnostic and parsing
// resumes with the next declaration, so one bad struct never hides the
// ones after it.
package parser

import (
	"github.com/typeport/typeport/ast"
	"github.com/typeport/typeport/scanner"
)

type parser struct {
	tokens []scanner.Token
	idx    int
}

func (p *parser) atEnd() bool { return p.idx >= len(p.tokens) }

func (p *parser) peek() (*scanner.Token, bool) {
	if p.atEnd() {
		return nil, false
	}
	return &p.tokens[p.idx], true
}

func (p *parser) next() (*scanner.Token, bool) {
	tok, ok := p.peek()
	if ok {
		p.idx++
	}
	return tok, ok
}

// expect consumes the next token if it has the wanted kind. A wrong
// token is consumed and reported as Missing(element); exhaustion is
// UnexpectedEndOfFile.
func (p *parser) expect(kind scanner.Kind, element Element) (*scanner.Token, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, ErrUnexpectedEndOfFile
	}
	if tok.Kind != kind {
		p.next()
		return nil, &MissingError{Element: element, Lexeme: tok.Lexeme, Pos: tok.Pos}
	}
	p.next()
	return tok, nil
}

// Parse consumes the whole token sequence. The result is either every
// declaration in source order, or every diagnostic collected along the
// way — never a mix. Exhausting the input between declarations is the
// normal termination condition; exhausting it inside one is a
// diagnostic.
func Parse(tokens []scanner.Token) ([]ast.Decl, []string) {
	p := &parser{tokens: tokens}
	var decls []ast.Decl
	var diags []string
	for !p.atEnd() {
		decl, err := p.parseDeclaration()
		if err != nil {
			diags = append(diags, err.Error())
			continue
		}
		if _, blank := decl.(ast.BlankField); blank {
			// Stray newlines and skipped tokens between declarations.
			continue
		}
		decls = append(decls, decl)
	}
	if len(diags) > 0 {
		return nil, diags
	}
	return decls, nil
}

// parseDeclaration dispatches on the leading token. Tokens the grammar
// does not recognize here are consumed as inert no-ops rather than
// errors, which is what makes declaration-level recovery work.
func (p *parser) parseDeclaration() (ast.Decl, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, ErrUnexpectedEndOfFile
	}
	switch tok.Kind {
	case scanner.KindType:
		p.next()
		return p.parseStructDeclaration()
	case scanner.KindIdentifier:
		p.next()
		return p.parseField(tok.Lexeme)
	case scanner.KindLeftBrace:
		p.next()
		if _, err := p.parseFieldBlock(); err != nil {
			return nil, err
		}
		return ast.BlankField{}, nil
	case scanner.KindJSON, scanner.KindBinding:
		// Tag entries only mean something inside a backtick block;
		// elsewhere they parse for diagnostics and contribute nothing.
		p.next()
		if _, err := p.parseTagValue(); err != nil {
			return nil, err
		}
		return ast.BlankField{}, nil
	default:
		p.next()
		return ast.BlankField{}, nil
	}
}

// parseStructDeclaration parses `<name> struct { ... }` after the type
// keyword has been consumed.
func (p *parser) parseStructDeclaration() (ast.Decl, error) {
	name, err := p.expect(scanner.KindIdentifier, ElementIdentifier)
	if err != nil {
		return nil, err
	}
	if _, err := p.expect(scanner.KindStruct, ElementStruct); err != nil {
		return nil, err
	}
	if _, err := p.expect(scanner.KindLeftBrace, ElementLeftBrace); err != nil {
		return nil, err
	}
	fields, err := p.parseFieldBlock()
	if err != nil {
		return nil, err
	}
	return &ast.StructDeclaration{Name: name.Lexeme, Fields: fields}, nil
}

// parseFieldBlock parses declarations until the closing brace. End of
// input before the brace is never an implicit close.
func (p *parser) parseFieldBlock() ([]ast.Field, error) {
	var fields []ast.Field
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, ErrUnexpectedEndOfFile
		}
		if tok.Kind == scanner.KindRightBrace {
			p.next()
			return fields, nil
		}
		decl, err := p.parseDeclaration()
		if err != nil {
			return nil, err
		}
		if field, ok := decl.(ast.Field); ok {
			fields = append(fields, field)
		}
	}
}

// parseField branches on the token after the field-name identifier.
func (p *parser) parseField(name string) (ast.Decl, error) {
	tok, ok := p.peek()
	if !ok {
		return nil, ErrUnexpectedEndOfFile
	}
	switch tok.Kind {
	case scanner.KindDataType:
		p.next()
		return p.maybeTagged(name, ast.One(tok.DataType))
	case scanner.KindIdentifier:
		p.next()
		return p.maybeTagged(name, ast.One(ast.CustomType(tok.Lexeme)))
	case scanner.KindNewline:
		// No type at all: the "name" is really an embedded type
		// reference.
		p.next()
		return ast.EmbeddedField{TypeName: name}, nil
	case scanner.KindBacktick:
		p.next()
		tags, err := p.parseTagBlock()
		if err != nil {
			return nil, err
		}
		return ast.TaggedField{Name: name, Type: ast.One(ast.UnspecifiedType), Tags: tags}, nil
	case scanner.KindLeftBracket:
		p.next()
		return p.parseListField(name)
	default:
		return nil, ErrUnknown
	}
}

// maybeTagged upgrades a plain field to a tagged one when a backtick
// block follows immediately.
func (p *parser) maybeTagged(name string, fieldType ast.FieldType) (ast.Decl, error) {
	tok, ok := p.peek()
	if !ok || tok.Kind != scanner.KindBacktick {
		return ast.PlainField{Name: name, Type: fieldType}, nil
	}
	p.next()
	tags, err := p.parseTagBlock()
	if err != nil {
		return nil, err
	}
	return ast.TaggedField{Name: name, Type: fieldType, Tags: tags}, nil
}

// parseListField parses `[]<element>` with an optional tag block, after
// the opening bracket has been consumed.
func (p *parser) parseListField(name string) (ast.Decl, error) {
	if _, err := p.expect(scanner.KindRightBracket, ElementRightBracket); err != nil {
		return nil, err
	}

	tok, ok := p.peek()
	if !ok {
		return nil, ErrUnexpectedEndOfFile
	}
	var fieldType ast.FieldType
	switch tok.Kind {
	case scanner.KindDataType:
		p.next()
		fieldType = ast.ListOf(tok.DataType)
	case scanner.KindIdentifier:
		p.next()
		fieldType = ast.ListOf(ast.CustomType(tok.Lexeme))
	default:
		return nil, ErrUnknown
	}

	trailing, ok := p.peek()
	if !ok {
		return nil, ErrUnexpectedEndOfFile
	}
	switch trailing.Kind {
	case scanner.KindBacktick:
		p.next()
		tags, err := p.parseTagBlock()
		if err != nil {
			return nil, err
		}
		return ast.TaggedField{Name: name, Type: fieldType, Tags: tags}, nil
	case scanner.KindNewline:
		// Benign end of the field line. Left unconsumed; the block
		// loop treats it as a no-op declaration.
		return ast.PlainField{Name: name, Type: fieldType}, nil
	default:
		return nil, ErrUnexpectedEndOfFile
	}
}

// parseTagBlock runs the inner declaration loop of a backtick block.
// It terminates at the matching closing backtick, never at a `}`.
func (p *parser) parseTagBlock() (ast.Tags, error) {
	tags := ast.Tags{}
	for {
		tok, ok := p.peek()
		if !ok {
			return nil, ErrUnexpectedEndOfFile
		}
		switch tok.Kind {
		case scanner.KindBacktick:
			p.next()
			return tags, nil
		case scanner.KindJSON:
			p.next()
			value, err := p.parseTagValue()
			if err != nil {
				return nil, err
			}
			tags["json"] = value
		case scanner.KindBinding:
			p.next()
			value, err := p.parseTagValue()
			if err != nil {
				return nil, err
			}
			tags["binding"] = value
		default:
			p.next()
		}
	}
}

// parseTagValue parses the `:"literal"` remainder of a tag entry.
func (p *parser) parseTagValue() (string, error) {
	if _, err := p.expect(scanner.KindColon, ElementColon); err != nil {
		return "", err
	}
	tok, err := p.expect(scanner.KindStringLiteral, ElementStringLiteral)
	if err != nil {
		return "", err
	}
	return tok.Literal, nil
}
