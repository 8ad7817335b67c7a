// Package ast holds the parsed representation of Go-style struct
// declarations. It is pure data: the parser builds it, the emit
// interpreters walk it, nothing mutates it in between.
package ast

// DataType is the resolved type of a field.
type DataType struct {
	Kind   DataTypeKind
	Custom string // identifier text, set only when Kind == Custom
}

// DataTypeKind discriminates the built-in type classes a field can carry.
type DataTypeKind int

const (
	// Unspecified means no type token was given; targets render it as
	// an optional/unknown member.
	Unspecified DataTypeKind = iota
	Number
	String
	Boolean
	// Custom is a user type referenced by name and passed through
	// verbatim. The identifier is never validated.
	Custom
)

// Convenience constructors keep parser and test code terse.
var (
	NumberType      = DataType{Kind: Number}
	StringType      = DataType{Kind: String}
	BooleanType     = DataType{Kind: Boolean}
	UnspecifiedType = DataType{Kind: Unspecified}
)

// CustomType references a user-defined type by name.
func CustomType(name string) DataType {
	return DataType{Kind: Custom, Custom: name}
}

// FieldType is either a scalar or a list of a DataType.
type FieldType struct {
	Elem DataType
	List bool
}

// One wraps a scalar element type.
func One(d DataType) FieldType { return FieldType{Elem: d} }

// ListOf wraps a list element type.
func ListOf(d DataType) FieldType { return FieldType{Elem: d, List: true} }

// Tags is per-field metadata from a backtick tag block. Only the "json"
// key affects output; "binding" is parsed but documentary.
type Tags map[string]string

// JSONName returns the json tag value and whether one was set.
func (t Tags) JSONName() (string, bool) {
	v, ok := t["json"]
	return v, ok
}

// Decl is a top-level parse result: either a struct declaration or a
// stray field. Interpreters only accept struct declarations; anything
// else at the top level is a contract violation on their side.
type Decl interface {
	decl()
}

// StructDeclaration is a named struct with its fields in source order.
// Field order is preserved end-to-end.
type StructDeclaration struct {
	Name   string
	Fields []Field
}

func (*StructDeclaration) decl() {}

// Field is one member of a struct body. Implementations:
// BlankField, EmbeddedField, PlainField, TaggedField.
type Field interface {
	Decl
	field()
}

// BlankField is a no-op member that contributes no output. The parser
// produces it for skip-and-continue declarations inside a body.
type BlankField struct{}

func (BlankField) decl()  {}
func (BlankField) field() {}

// EmbeddedField is a bare type reference with no field name: struct
// embedding. Targets render it as a spread of the type's members.
type EmbeddedField struct {
	TypeName string
}

func (EmbeddedField) decl()  {}
func (EmbeddedField) field() {}

// PlainField is a named field with a type and no tag metadata.
type PlainField struct {
	Name string
	Type FieldType
}

func (PlainField) decl()  {}
func (PlainField) field() {}

// TaggedField is a named field with a type and a tag block.
type TaggedField struct {
	Name string
	Type FieldType
	Tags Tags
}

func (TaggedField) decl()  {}
func (TaggedField) field() {}
