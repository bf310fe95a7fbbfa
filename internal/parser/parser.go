package parser

import (
	"fmt"

	"namedargs/internal/errors"
)

// ParseError reports the token at which the grammar could not continue.
// Parsing stops at the first error; there is no recovery.
type ParseError struct {
	Code     string
	Message  string
	Position Position
	Length   int
	Lexeme   string    // text of the offending token
	Previous *Position // first definition, set for duplicate keys
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
}

type Parser struct {
	tokens   []Token
	current  int
	bindings []Binding
	seen     map[string]int // key -> index into bindings
}

// NewParser expects tokens as produced by Scanner.ScanTokens, terminated
// by an EOF token.
func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens: tokens,
		seen:   make(map[string]int),
	}
}

// ParseArgs parses
//
//	args   := EOF | stmt EOF
//	stmt   := assign ("," assign)*
//	assign := IDENT "=" primary
//	primary:= STRING | NUMBER
//
// and returns the bindings in source order.
func (p *Parser) ParseArgs() ([]Binding, error) {
	if p.isAtEnd() {
		return p.bindings, nil
	}
	if err := p.parseStmt(); err != nil {
		return nil, err
	}
	if !p.isAtEnd() {
		return nil, p.unexpected("end of input")
	}
	return p.bindings, nil
}

func (p *Parser) parseStmt() error {
	if err := p.parseAssign(); err != nil {
		return err
	}
	for p.matchPunct(",") {
		if err := p.parseAssign(); err != nil {
			return err
		}
	}
	return nil
}

func (p *Parser) parseAssign() error {
	key, err := p.parseIdent()
	if err != nil {
		return err
	}
	if !p.matchPunct("=") {
		return p.unexpected("'='")
	}
	value, err := p.parsePrimary()
	if err != nil {
		return err
	}
	p.seen[key.Lexeme] = len(p.bindings)
	p.bindings = append(p.bindings, Binding{
		Key:      key.Lexeme,
		Value:    value,
		Position: key.Position,
	})
	return nil
}

func (p *Parser) parseIdent() (Token, error) {
	if !p.check(IDENTIFIER) {
		return Token{}, p.unexpected("identifier")
	}
	tok := p.peek()
	if i, ok := p.seen[tok.Lexeme]; ok {
		first := p.bindings[i].Position
		return Token{}, &ParseError{
			Code:     errors.ErrorDuplicateKey,
			Message:  fmt.Sprintf("argument already exists: %s", tok.Lexeme),
			Position: tok.Position,
			Length:   tok.Length,
			Lexeme:   tok.Lexeme,
			Previous: &first,
		}
	}
	return p.advance(), nil
}

func (p *Parser) parsePrimary() (Value, error) {
	switch tok := p.peek(); tok.Type {
	case STRING:
		p.advance()
		return String(tok.Lexeme), nil
	case NUMBER:
		p.advance()
		return Int(tok.Number), nil
	default:
		return Value{}, p.unexpected("string or number")
	}
}
