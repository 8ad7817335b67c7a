// Package typescript renders struct declarations as exported
// TypeScript interfaces.
package typescript

import (
	"fmt"
	"strings"

	"github.com/typeport/typeport/ast"
	"github.com/typeport/typeport/emit"
)

// TypeMapping defines how built-in data types map to TypeScript types.
var TypeMapping = map[ast.DataTypeKind]string{
	ast.Number:  "number",
	ast.String:  "string",
	ast.Boolean: "boolean",
}

var style = emit.MemberStyle{
	Indent:     "  ",
	Terminator: ";",
	Types:      TypeMapping,
	Any:        "any",
}

// Interpreter implements emit.Interpreter for TypeScript.
type Interpreter struct{}

// New creates a TypeScript interpreter.
func New() *Interpreter {
	return &Interpreter{}
}

// Render emits one `export interface` per struct declaration, fields
// in source order.
func (i *Interpreter) Render(decls []ast.Decl) (string, error) {
	var sb strings.Builder
	for _, decl := range decls {
		structDecl, ok := decl.(*ast.StructDeclaration)
		if !ok {
			return "", emit.ErrExpectedStruct
		}
		sb.WriteString(fmt.Sprintf("export interface %s {\n", structDecl.Name))
		for _, field := range structDecl.Fields {
			sb.WriteString(style.Member(field))
		}
		sb.WriteString("}\n")
	}
	return sb.String(), nil
}
