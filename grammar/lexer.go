package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

var ArgsLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Quoted strings run to the next quote; there are no escapes.
		{Name: "String", Pattern: `'[^']*'`},

		{Name: "Number", Pattern: `[0-9]+`},

		// Identifiers (must come before punctuation, '_' is in both)
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},

		// Every other visible ASCII character
		{Name: "Punct", Pattern: "[!-/:-@\\[-`{-~]"},

		{Name: "Whitespace", Pattern: `[\t-\r ]+`},
	},
})
