package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// TypeLexer defines the lexer for catalog column type expressions.
// Note: type keywords are case-insensitive, but we preserve the original
// spelling of names so errors can quote the input verbatim.
var TypeLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Whitespace (elided from output)
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`, Action: nil},

		// Punctuation
		{Name: "LAngle", Pattern: `<`},
		{Name: "RAngle", Pattern: `>`},
		{Name: "LParen", Pattern: `\(`},
		{Name: "RParen", Pattern: `\)`},
		{Name: "Comma", Pattern: `,`},

		// Numbers - precision/scale arguments like DECIMAL(10,2)
		{Name: "Int", Pattern: `\d+`},

		// Type names (including the ARRAY and MAP keywords)
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	},
})
