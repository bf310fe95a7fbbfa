package parser

// ParseResult keeps the intermediate token stream next to the outcome, for
// tooling that highlights or annotates the source.
type ParseResult struct {
	Tokens   []Token
	Bindings []Binding
	Err      error
}

// ParseSourceWithTokens runs the same pipeline as ParseSource. When
// scanning fails Tokens is nil; when parsing fails Tokens is complete and
// Bindings is nil.
func ParseSourceWithTokens(source string) *ParseResult {
	scanner := NewScanner(source)
	tokens, err := scanner.ScanTokens()
	if err != nil {
		return &ParseResult{Err: err}
	}

	parser := NewParser(tokens)
	bindings, err := parser.ParseArgs()
	return &ParseResult{
		Tokens:   tokens,
		Bindings: bindings,
		Err:      err,
	}
}
