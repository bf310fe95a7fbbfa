package parser

import (
	"fmt"

	"namedargs/internal/errors"
)

type Scanner struct {
	source      string
	tokens      []Token
	start       int
	current     int
	line        int
	column      int
	startLine   int
	startColumn int
	err         *ScanError
}

// ScanError reports the first input byte sequence that could not be
// tokenized. Scanning stops at the first error.
type ScanError struct {
	Code     string
	Message  string
	Position Position // line, column, offset
	Length   int      // how many characters it covers
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
}

func NewScanner(source string) *Scanner {
	return &Scanner{
		source: source,
		line:   1,
		column: 1,
	}
}

// ScanTokens tokenizes the whole source. On success the returned slice ends
// with exactly one EOF token.
func (s *Scanner) ScanTokens() ([]Token, error) {
	for !s.isAtEnd() && s.err == nil {
		s.start = s.current
		s.startLine = s.line
		s.startColumn = s.column
		s.scanToken()
	}
	if s.err != nil {
		return nil, s.err
	}
	s.tokens = append(s.tokens, Token{
		Type:     EOF,
		Lexeme:   s.source[s.current:],
		Position: Position{Line: s.line, Column: s.column, Offset: s.current},
	})
	return s.tokens, nil
}

func (s *Scanner) scanToken() {
	c := s.peek()
	switch {
	case isSpace(c):
		s.skipWhitespace()
	case isDigit(c):
		s.scanNumber()
	case c == '\'':
		s.scanString()
	case isIdentStart(c):
		s.scanIdentifier()
	case isPunct(c):
		s.advance()
		s.addToken(PUNCT, s.source[s.start:s.current])
	default:
		s.advance()
		s.reportError(errors.ErrorUnexpectedCharacter, fmt.Sprintf("unexpected character %q", c))
	}
}

func (s *Scanner) skipWhitespace() {
	for !s.isAtEnd() && isSpace(s.peek()) {
		s.advance()
	}
}

func (s *Scanner) scanNumber() {
	value, n, overflow := scanDecimal(s.source, s.current)
	for i := 0; i < n; i++ {
		s.advance()
	}
	if overflow {
		s.reportError(errors.ErrorNumericOverflow, "conversion from characters to integer failed")
		return
	}
	s.addToken(NUMBER, s.source[s.start:s.current])
	s.tokens[len(s.tokens)-1].Number = value
}

// scanString consumes a single-quoted literal. There are no escapes: the
// next quote always terminates the literal.
func (s *Scanner) scanString() {
	s.advance() // opening quote
	for !s.isAtEnd() && s.peek() != '\'' {
		s.advance()
	}
	if s.isAtEnd() {
		s.reportError(errors.ErrorUnclosedString, "unclosed string literal")
		return
	}
	s.advance() // closing quote
	s.addToken(STRING, s.source[s.start+1:s.current-1])
}

func (s *Scanner) scanIdentifier() {
	for !s.isAtEnd() && isIdentContinue(s.peek()) {
		s.advance()
	}
	s.addToken(IDENTIFIER, s.source[s.start:s.current])
}

func (s *Scanner) advance() byte {
	c := s.source[s.current]
	s.current++
	if c == '\n' {
		s.line++
		s.column = 1
	} else {
		s.column++
	}
	return c
}

func (s *Scanner) peek() byte {
	if s.isAtEnd() {
		return 0
	}
	return s.source[s.current]
}

func (s *Scanner) addToken(tokenType TokenType, lexeme string) {
	s.tokens = append(s.tokens, Token{
		Type:   tokenType,
		Lexeme: lexeme,
		Position: Position{
			Line:   s.startLine,
			Column: s.startColumn,
			Offset: s.start,
		},
		Length: s.current - s.start,
	})
}

func (s *Scanner) reportError(code, message string) {
	s.err = &ScanError{
		Code:     code,
		Message:  message,
		Position: Position{Line: s.startLine, Column: s.startColumn, Offset: s.start},
		Length:   s.current - s.start,
	}
}

func (s *Scanner) isAtEnd() bool {
	return s.current >= len(s.source)
}
