package grammar

import "github.com/alecthomas/participle/v2/lexer"

// Args is the reference grammar for an argument list. It mirrors the
// hand-written parser in internal/parser and backs the formatter.
type Args struct {
	Pos     lexer.Position
	Assigns []*Assign `parser:"( @@ ( \",\" @@ )* )?"`
}

type Assign struct {
	Pos   lexer.Position
	Key   string   `parser:"@Ident \"=\""`
	Value *Literal `parser:"@@"`
}

type Literal struct {
	Pos    lexer.Position
	Str    *string `parser:"  @String"`
	Number *int64  `parser:"| @Number"`
}
