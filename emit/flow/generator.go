// Package flow renders struct declarations as exported Flow type
// aliases.
package flow

import (
	"fmt"
	"strings"

	"github.com/typeport/typeport/ast"
	"github.com/typeport/typeport/emit"
)

// TypeMapping defines how built-in data types map to Flow types.
var TypeMapping = map[ast.DataTypeKind]string{
	ast.Number:  "number",
	ast.String:  "string",
	ast.Boolean: "boolean",
}

var style = emit.MemberStyle{
	Indent:     "  ",
	Terminator: ",",
	Types:      TypeMapping,
	Any:        "any",
}

// Interpreter implements emit.Interpreter for Flow.
type Interpreter struct{}

// New creates a Flow interpreter.
func New() *Interpreter {
	return &Interpreter{}
}

// Render emits one `export type Name = { ... };` per struct
// declaration, fields in source order. Embedded fields use Flow's
// object type spread.
func (i *Interpreter) Render(decls []ast.Decl) (string, error) {
	var sb strings.Builder
	for _, decl := range decls {
		structDecl, ok := decl.(*ast.StructDeclaration)
		if !ok {
			return "", emit.ErrExpectedStruct
		}
		sb.WriteString(fmt.Sprintf("export type %s = {\n", structDecl.Name))
		for _, field := range structDecl.Fields {
			sb.WriteString(style.Member(field))
		}
		sb.WriteString("};\n")
	}
	return sb.String(), nil
}
