package parser

// regenerate tokentype_string.go with `go generate ./internal/parser`
//
//go:generate stringer -type=TokenType
type TokenType int

const (
	// ILLEGAL is the zero value, the type of a Token that was never
	// scanned. The scanner reports bad input as an error instead.
	ILLEGAL TokenType = iota
	EOF

	// Identifiers + literals
	IDENTIFIER
	NUMBER
	STRING

	// Single-character punctuators such as ',' and '='
	PUNCT
)

type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based absolute index in input
}

// Token is a classified slice of the input. Lexeme is a substring of the
// scanned source, so it shares the source's backing memory. For STRING
// tokens the Lexeme excludes the surrounding quotes while Length covers them.
type Token struct {
	Type     TokenType
	Lexeme   string
	Number   int64 // set for NUMBER only
	Position Position
	Length   int
}
