package protogen

import (
	"strconv"
	"strings"
)

// fieldIndent is the indentation of field lines inside a message block.
const fieldIndent = "    "

// Emit renders a proto2 definition file for the given message name and
// ordered field list. Tags are assigned from the field's 1-based position,
// so reordering the input reorders every tag; the output is a one-shot
// snapshot, not a schema-evolution tool.
//
// Emit performs no identifier validation; message and field names are the
// caller's responsibility.
func Emit(messageName string, fields []MessageField) string {
	var b strings.Builder

	b.WriteString("syntax = \"proto2\";\n\n")
	b.WriteString("message " + messageName + " {\n")

	for i, f := range fields {
		tag := i + 1

		b.WriteString(fieldIndent)

		if f.Field.Modifier != ModifierNone {
			b.WriteString(string(f.Field.Modifier) + " ")
		}

		b.WriteString(f.Field.Type + " " + f.Name + " = " + strconv.Itoa(tag) + ";\n")
	}

	b.WriteString("}\n")

	return b.String()
}
