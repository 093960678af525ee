package grammar

import (
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
)

// Parser is the column type parser instance.
var Parser = participle.MustBuild[Type](
	participle.Lexer(TypeLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),          // ARRAY< and MAP< vs. a scalar that happens to share the name
	participle.CaseInsensitive("Ident"), // type keywords are case-insensitive
)

// Parse parses a column type expression into an AST.
func Parse(typeText string) (*Type, error) {
	return Parser.ParseString("", typeText)
}

// String reconstructs the source form of the type, preserving the original
// spelling of scalar names.
func (t *Type) String() string {
	if t == nil {
		return ""
	}

	switch {
	case t.Array != nil:
		return "ARRAY<" + t.Array.Elem.String() + ">"
	case t.Map != nil:
		return "MAP<" + t.Map.Key.String() + "," + t.Map.Value.String() + ">"
	case t.Scalar != nil:
		return t.Scalar.String()
	default:
		return ""
	}
}

// String returns the scalar's source form, e.g. "DECIMAL(10,2)".
func (s *ScalarType) String() string {
	if s == nil {
		return ""
	}
	if len(s.Args) == 0 {
		return s.Name
	}

	args := make([]string, len(s.Args))
	for i, a := range s.Args {
		args[i] = strconv.Itoa(a)
	}

	return s.Name + "(" + strings.Join(args, ",") + ")"
}

// IsScalar returns true if this type is a bare scalar.
func (t *Type) IsScalar() bool {
	return t != nil && t.Scalar != nil
}
