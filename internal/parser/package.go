package parser

// ParseSource scans and parses source, returning the bindings in source
// order. The error is a *ScanError or a *ParseError.
func ParseSource(source string) ([]Binding, error) {
	scanner := NewScanner(source)
	tokens, err := scanner.ScanTokens()
	if err != nil {
		return nil, err
	}

	parser := NewParser(tokens)
	return parser.ParseArgs()
}
