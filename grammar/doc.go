// Package grammar provides a parser for catalog column type expressions built
// with participle.
//
// This package contains the lexer, AST types, and parser for the type_text
// grammar used by Unity Catalog table schemas. It replaces regex-based bracket
// matching with a recursive-descent parser so nested composites are recognized
// structurally and errors carry precise positions.
//
// # Usage
//
//	typ, err := grammar.Parse("MAP<STRING, BIGINT>")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// Work with typ...
package grammar
