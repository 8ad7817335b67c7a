package scanner

import (
	"testing"

	"github.com/typeport/typeport/ast"
)

func kinds(tokens []Token) []Kind {
	out := make([]Kind, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.Kind)
	}
	return out
}

func TestScanStructDeclaration(t *testing.T) {
	tokens, errs := Scan("type Region struct {}")
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}

	want := []struct {
		kind   Kind
		lexeme string
		line   int
		column int
	}{
		{KindType, "type", 1, 1},
		{KindIdentifier, "Region", 1, 6},
		{KindStruct, "struct", 1, 13},
		{KindLeftBrace, "{", 1, 20},
		{KindRightBrace, "}", 1, 21},
	}
	if len(tokens) != len(want) {
		t.Fatalf("token count = %d, want %d", len(tokens), len(want))
	}
	for i, w := range want {
		tok := tokens[i]
		if tok.Kind != w.kind {
			t.Errorf("token %d: Kind = %v, want %v", i, tok.Kind, w.kind)
		}
		if tok.Lexeme != w.lexeme {
			t.Errorf("token %d: Lexeme = %q, want %q", i, tok.Lexeme, w.lexeme)
		}
		if tok.Pos.Line != w.line || tok.Pos.Column != w.column {
			t.Errorf("token %d: Pos = %d:%d, want %d:%d", i, tok.Pos.Line, tok.Pos.Column, w.line, w.column)
		}
	}
}

func TestScanKeywords(t *testing.T) {
	tests := []struct {
		source string
		kind   Kind
		data   ast.DataType
	}{
		{"type", KindType, ast.DataType{}},
		{"struct", KindStruct, ast.DataType{}},
		{"json", KindJSON, ast.DataType{}},
		{"binding", KindBinding, ast.DataType{}},
		{"int", KindDataType, ast.NumberType},
		{"int64", KindDataType, ast.NumberType},
		{"float64", KindDataType, ast.NumberType},
		{"string", KindDataType, ast.StringType},
		{"time.Time", KindDataType, ast.StringType},
		{"bool", KindDataType, ast.BooleanType},
		{"Region", KindIdentifier, ast.DataType{}},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			tokens, errs := Scan(tt.source)
			if errs != nil {
				t.Fatalf("unexpected errors: %v", errs)
			}
			if len(tokens) != 1 {
				t.Fatalf("token count = %d, want 1", len(tokens))
			}
			if tokens[0].Kind != tt.kind {
				t.Errorf("Kind = %v, want %v", tokens[0].Kind, tt.kind)
			}
			if tokens[0].DataType != tt.data {
				t.Errorf("DataType = %v, want %v", tokens[0].DataType, tt.data)
			}
		})
	}
}

func TestScanFiltersWhitespaceAndPointers(t *testing.T) {
	tokens, errs := Scan(" \t\r*Foo *bar")
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	got := kinds(tokens)
	want := []Kind{KindIdentifier, KindIdentifier}
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	// Pointer-ness is discarded entirely; the identifier position still
	// accounts for the consumed sigil.
	if tokens[0].Lexeme != "Foo" || tokens[0].Pos.Column != 5 {
		t.Errorf("first token = %q at column %d, want Foo at column 5", tokens[0].Lexeme, tokens[0].Pos.Column)
	}
}

func TestScanNewlinesResetColumn(t *testing.T) {
	tokens, errs := Scan("a\nbb\n  c")
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := []struct {
		lexeme string
		line   int
		column int
	}{
		{"a", 1, 1},
		{"\n", 1, 2},
		{"bb", 2, 1},
		{"\n", 2, 3},
		{"c", 3, 3},
	}
	if len(tokens) != len(want) {
		t.Fatalf("token count = %d, want %d", len(tokens), len(want))
	}
	for i, w := range want {
		tok := tokens[i]
		if tok.Lexeme != w.lexeme || tok.Pos.Line != w.line || tok.Pos.Column != w.column {
			t.Errorf("token %d: %q at %d:%d, want %q at %d:%d",
				i, tok.Lexeme, tok.Pos.Line, tok.Pos.Column, w.lexeme, w.line, w.column)
		}
	}
}

func TestScanStringLiteral(t *testing.T) {
	tokens, errs := Scan("`json:\"country\"`")
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	got := kinds(tokens)
	want := []Kind{KindBacktick, KindJSON, KindColon, KindStringLiteral, KindBacktick}
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("kinds = %v, want %v", got, want)
		}
	}
	str := tokens[3]
	if str.Literal != "country" {
		t.Errorf("Literal = %q, want %q", str.Literal, "country")
	}
	if str.Lexeme != `"country"` {
		t.Errorf("Lexeme = %q, want %q", str.Lexeme, `"country"`)
	}
}

func TestScanUnterminatedString(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		wantPos []Position
	}{
		{
			name:    "end of input",
			source:  `json:"x`,
			wantPos: []Position{{Line: 1, Column: 8}},
		},
		{
			name:    "newline before terminator",
			source:  "a \"x\nb",
			wantPos: []Position{{Line: 1, Column: 5}},
		},
		{
			name:    "multiple errors all reported",
			source:  "a \"x\nb \"y",
			wantPos: []Position{{Line: 1, Column: 5}, {Line: 2, Column: 5}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, errs := Scan(tt.source)
			if tokens != nil {
				t.Fatalf("expected no token sequence alongside errors, got %d tokens", len(tokens))
			}
			if len(errs) != len(tt.wantPos) {
				t.Fatalf("error count = %d, want %d: %v", len(errs), len(tt.wantPos), errs)
			}
			for i, want := range tt.wantPos {
				scanErr, ok := errs[i].(*Error)
				if !ok {
					t.Fatalf("error %d: %T, want *Error", i, errs[i])
				}
				if scanErr.Pos != want {
					t.Errorf("error %d: Pos = %v, want %v", i, scanErr.Pos, want)
				}
			}
		})
	}
}

func TestScanEmptyInput(t *testing.T) {
	tokens, errs := Scan("")
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(tokens) != 0 {
		t.Fatalf("token count = %d, want 0", len(tokens))
	}
}

func TestScanDottedIdentifier(t *testing.T) {
	tokens, errs := Scan("CreatedAt time.Time")
	if errs != nil {
		t.Fatalf("unexpected errors: %v", errs)
	}
	if len(tokens) != 2 {
		t.Fatalf("token count = %d, want 2", len(tokens))
	}
	if tokens[1].Kind != KindDataType || tokens[1].DataType != ast.StringType {
		t.Errorf("time.Time scanned as %v/%v, want data type String", tokens[1].Kind, tokens[1].DataType)
	}
}
