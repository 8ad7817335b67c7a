// Package transform wires the pipeline: source text is scanned, the
// tokens are parsed, and the AST is handed to exactly one interpreter.
// The whole path is purely functional over its input, so concurrent
// calls on independent inputs need no synchronization.
package transform

import (
	"strings"

	"github.com/typeport/typeport/emit"
	"github.com/typeport/typeport/emit/flow"
	"github.com/typeport/typeport/emit/typescript"
	"github.com/typeport/typeport/errors"
	"github.com/typeport/typeport/parser"
	"github.com/typeport/typeport/scanner"
)

// Diagnostics is the ordered batch of human-readable error lines a
// failed scan or parse produces. No partial output accompanies it.
type Diagnostics []string

func (d Diagnostics) Error() string {
	return strings.Join(d, "\n")
}

// AsDiagnostics unwraps the diagnostic lines from a Transform error,
// if that is what it carries.
func AsDiagnostics(err error) (Diagnostics, bool) {
	var diags Diagnostics
	if errors.As(err, &diags) {
		return diags, true
	}
	return nil, false
}

// Transform renders source text containing struct declarations into
// the requested dialect. Lexical or syntactic failures return a
// Diagnostics error carrying every collected message; an unrecognized
// dialect fails immediately before any scanning.
func Transform(source string, dialect emit.Dialect) (string, error) {
	var interp emit.Interpreter
	switch dialect {
	case emit.DialectTypeScript:
		interp = typescript.New()
	case emit.DialectFlow:
		interp = flow.New()
	default:
		return "", errors.Wrapf(errors.ErrUnknownDialect, "dialect(%d)", int(dialect))
	}

	tokens, scanErrs := scanner.Scan(source)
	if len(scanErrs) > 0 {
		diags := make(Diagnostics, 0, len(scanErrs))
		for _, err := range scanErrs {
			diags = append(diags, err.Error())
		}
		return "", diags
	}

	decls, parseDiags := parser.Parse(tokens)
	if len(parseDiags) > 0 {
		return "", Diagnostics(parseDiags)
	}

	return interp.Render(decls)
}
