package protogen

// Column is one column of a fetched table schema: its name, the declared
// type expression, and whether it is nullable. Columns are read-only
// snapshots; the generator never mutates them.
//
// Column names propagate into the generated file verbatim. No identifier
// validation is performed.
type Column struct {
	Name     string `json:"name" yaml:"name"`
	TypeText string `json:"type_text" yaml:"type_text"`
	Nullable bool   `json:"nullable" yaml:"nullable"`
}

// Modifier is the presence/cardinality marker on an emitted proto2 field.
type Modifier string

// Modifier constants.
const (
	ModifierRequired Modifier = "required"
	ModifierOptional Modifier = "optional"
	ModifierRepeated Modifier = "repeated"

	// ModifierNone applies to map fields, which proto2 declares without a
	// leading modifier keyword.
	ModifierNone Modifier = ""
)

// Field is the proto2 field descriptor produced for one column by MapType.
type Field struct {
	Modifier Modifier
	Type     string
}

// MessageField pairs a field name with its descriptor for emission.
type MessageField struct {
	Name  string
	Field Field
}
