package grammar

import "github.com/alecthomas/participle/v2/lexer"

// ----------------------------------------------------------------------------
// Column type AST
//
// This file defines the parse tree for catalog column type expressions as
// they appear in a table schema's type_text field, e.g.:
//
//	INT
//	VARCHAR(255)
//	ARRAY<STRING>
//	MAP<STRING, BIGINT>
//
// The grammar is recursive, so nested composites such as ARRAY<ARRAY<INT>>
// parse structurally; whether a shape is supported is the mapper's decision,
// not the parser's.
// ----------------------------------------------------------------------------

// Type is the root of a parsed column type expression.
// Exactly one of Array, Map, or Scalar is set.
type Type struct {
	Pos    lexer.Position
	Array  *ArrayType  `parser:"  @@"`
	Map    *MapType    `parser:"| @@"`
	Scalar *ScalarType `parser:"| @@"`
}

// ArrayType is ARRAY<T>.
type ArrayType struct {
	Pos  lexer.Position
	Elem *Type `parser:"'ARRAY' LAngle @@ RAngle"`
}

// MapType is MAP<K, V>. A single top-level comma separates key and value.
type MapType struct {
	Pos   lexer.Position
	Key   *Type `parser:"'MAP' LAngle @@"`
	Value *Type `parser:"Comma @@ RAngle"`
}

// ScalarType is a bare type name with optional integer arguments,
// e.g. INT, VARCHAR(255), DECIMAL(10,2).
type ScalarType struct {
	Pos  lexer.Position
	Name string `parser:"@Ident"`
	Args []int  `parser:"( LParen @Int ( Comma @Int )* RParen )?"`
}
