package parser

import (
	"fmt"

	"namedargs/internal/errors"
)

func (p *Parser) advance() Token {
	if !p.isAtEnd() {
		p.current++
	}
	return p.previous()
}

func (p *Parser) check(tt TokenType) bool {
	if p.isAtEnd() {
		return false
	}
	return p.peek().Type == tt
}

func (p *Parser) matchPunct(punct string) bool {
	if p.check(PUNCT) && p.peek().Lexeme == punct {
		p.advance()
		return true
	}
	return false
}

func (p *Parser) peek() Token {
	return p.tokens[p.current]
}

func (p *Parser) previous() Token {
	return p.tokens[p.current-1]
}

func (p *Parser) isAtEnd() bool {
	return p.peek().Type == EOF
}

func (p *Parser) unexpected(expecting string) *ParseError {
	tok := p.peek()
	return &ParseError{
		Code:     errors.ErrorUnexpectedToken,
		Message:  fmt.Sprintf("unexpected token %s; expecting %s", describe(tok), expecting),
		Position: tok.Position,
		Length:   tok.Length,
		Lexeme:   tok.Lexeme,
	}
}

func describe(tok Token) string {
	switch tok.Type {
	case EOF:
		return "end of input"
	case STRING:
		return fmt.Sprintf("'%s'", tok.Lexeme)
	default:
		return fmt.Sprintf("%q", tok.Lexeme)
	}
}
