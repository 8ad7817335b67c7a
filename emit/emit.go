// Package emit defines the rendering contract shared by the target
// dialect interpreters. Each dialect lives in its own subpackage and
// implements Interpreter; adding a dialect touches neither the parser
// nor the AST.
package emit

import (
	"fmt"

	"github.com/typeport/typeport/ast"
	"github.com/typeport/typeport/errors"
)

// Dialect selects a target type-system syntax.
type Dialect int

const (
	DialectTypeScript Dialect = iota
	DialectFlow
)

func (d Dialect) String() string {
	switch d {
	case DialectTypeScript:
		return "typescript"
	case DialectFlow:
		return "flow"
	}
	return fmt.Sprintf("dialect(%d)", int(d))
}

// ParseDialect maps a user-supplied name to a Dialect.
func ParseDialect(name string) (Dialect, error) {
	switch name {
	case "typescript", "ts":
		return DialectTypeScript, nil
	case "flow":
		return DialectFlow, nil
	}
	return 0, errors.Wrapf(errors.ErrUnknownDialect, "%q (supported: typescript, flow)", name)
}

// Interpreter renders a declaration sequence as target-dialect source
// text. Declarations and their fields are rendered in input order.
type Interpreter interface {
	Render(decls []ast.Decl) (string, error)
}

// ErrExpectedStruct is the single interpretation failure mode: a
// top-level field reached an interpreter. A correct parser never
// produces one, so this guards the producer/consumer contract rather
// than any user-facing scenario.
var ErrExpectedStruct = errors.New("expected a struct declaration but found a field")

// ResolveName applies the json tag to a field name. drop reports a
// json value of exactly "-", which suppresses the field entirely.
func ResolveName(name string, tags ast.Tags) (resolved string, drop bool) {
	jsonName, ok := tags.JSONName()
	if !ok {
		return name, false
	}
	if jsonName == "-" {
		return "", true
	}
	return jsonName, false
}

// MemberStyle is a dialect's punctuation for struct members. The
// rendering rules are identical across dialects; only the terminator
// and built-in type names differ.
type MemberStyle struct {
	Indent     string
	Terminator string
	Types      map[ast.DataTypeKind]string
	Any        string // rendered type when none was declared
}

// Member renders one field. An empty result means the field
// contributes nothing to the output.
func (s MemberStyle) Member(field ast.Field) string {
	switch f := field.(type) {
	case ast.BlankField:
		return ""
	case ast.EmbeddedField:
		return fmt.Sprintf("%s...%s%s\n", s.Indent, f.TypeName, s.Terminator)
	case ast.PlainField:
		return s.member(f.Name, f.Type)
	case ast.TaggedField:
		name, drop := ResolveName(f.Name, f.Tags)
		if drop {
			return ""
		}
		return s.member(name, f.Type)
	}
	return ""
}

func (s MemberStyle) member(name string, fieldType ast.FieldType) string {
	if fieldType.Elem.Kind == ast.Unspecified && !fieldType.List {
		// Type omitted in the source: optional marker instead of a
		// plain colon.
		return fmt.Sprintf("%s%s?: %s%s\n", s.Indent, name, s.Any, s.Terminator)
	}
	return fmt.Sprintf("%s%s: %s%s\n", s.Indent, name, s.typeName(fieldType), s.Terminator)
}

func (s MemberStyle) typeName(fieldType ast.FieldType) string {
	var base string
	switch fieldType.Elem.Kind {
	case ast.Custom:
		base = fieldType.Elem.Custom
	case ast.Unspecified:
		base = s.Any
	default:
		base = s.Types[fieldType.Elem.Kind]
	}
	if fieldType.List {
		base += "[]"
	}
	return base
}
