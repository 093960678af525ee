package protogen

import (
	"fmt"
	"strings"

	"github.com/protogen-dev/protogen/grammar"
)

// scalarTypes maps upper-cased catalog scalar type names to proto2 types.
var scalarTypes = map[string]string{
	"SMALLINT":  "int32",
	"SHORT":     "int32",
	"INT":       "int32",
	"STRING":    "string",
	"FLOAT":     "float",
	"BIGINT":    "int64",
	"LONG":      "int64",
	"DOUBLE":    "double",
	"BOOLEAN":   "bool",
	"BINARY":    "bytes",
	"DATE":      "int32",
	"TIMESTAMP": "int64",
}

// MapType maps one column type expression (plus nullability) to a proto2
// field descriptor.
//
// Scalars take the optional/required modifier from nullability. ARRAY<T>
// becomes a repeated field of the mapped element type; repeated fields have
// no nullability in proto2, so the column's nullable flag is ignored for
// arrays. MAP<K,V> becomes a modifier-less map field. Array elements and map
// keys/values must themselves be scalars; nested composites are rejected.
//
// Failures are ErrUnsupportedType naming the offending type expression.
func MapType(typeText string, nullable bool) (Field, error) {
	typ, err := grammar.Parse(typeText)
	if err != nil {
		return Field{}, fmt.Errorf("%w: %s", ErrUnsupportedType, typeText)
	}

	switch {
	case typ.Scalar != nil:
		protoType, ok := scalarProtoType(typ)
		if !ok {
			return Field{}, fmt.Errorf("%w: %s", ErrUnsupportedType, typ)
		}

		return Field{Modifier: modifierFor(nullable), Type: protoType}, nil

	case typ.Array != nil:
		protoType, ok := scalarProtoType(typ.Array.Elem)
		if !ok {
			return Field{}, fmt.Errorf("%w: array element %s", ErrUnsupportedType, typ.Array.Elem)
		}

		return Field{Modifier: ModifierRepeated, Type: protoType}, nil

	case typ.Map != nil:
		keyType, ok := scalarProtoType(typ.Map.Key)
		if !ok {
			return Field{}, fmt.Errorf("%w: map key %s", ErrUnsupportedType, typ.Map.Key)
		}

		valueType, ok := scalarProtoType(typ.Map.Value)
		if !ok {
			return Field{}, fmt.Errorf("%w: map value %s", ErrUnsupportedType, typ.Map.Value)
		}

		return Field{Modifier: ModifierNone, Type: "map<" + keyType + ", " + valueType + ">"}, nil
	}

	return Field{}, fmt.Errorf("%w: %s", ErrUnsupportedType, typeText)
}

// scalarProtoType resolves a parsed type as a scalar proto2 type.
// Returns false for composites and for scalars outside the fixed table.
func scalarProtoType(t *grammar.Type) (string, bool) {
	if t == nil || t.Scalar == nil {
		return "", false
	}

	name := strings.ToUpper(t.Scalar.Name)

	// The table covers bare names only; a parameterized type like INT(11)
	// is not a supported spelling.
	if len(t.Scalar.Args) == 0 {
		if protoType, ok := scalarTypes[name]; ok {
			return protoType, true
		}
	}

	// Bounded-length string types (VARCHAR, VARCHAR(255)) collapse to string.
	if strings.HasPrefix(name, "VARCHAR") {
		return "string", true
	}

	return "", false
}

// modifierFor returns the modifier for a scalar field.
func modifierFor(nullable bool) Modifier {
	if nullable {
		return ModifierOptional
	}

	return ModifierRequired
}
