package lsp

import (
	"strings"

	"namedargs/internal/parser"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into SemanticTokenTypes
// TokenModifiers is a bitmask based on SemanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into SemanticTokenTypes
	TokenModifiers int // bitmask
}

const (
	tokenProperty = iota
	tokenNumber
	tokenString
	tokenOperator
)

const modifierDeclaration = 1 << 0

// collectSemanticTokens classifies the scanner's tokens. Nothing is
// highlighted when the text does not scan; parse errors past the scanner
// still leave every token highlighted.
func collectSemanticTokens(text string) []SemanticToken {
	result := parser.ParseSourceWithTokens(text)

	var tokens []SemanticToken
	for _, tok := range result.Tokens {
		var tokenType, modifiers int
		switch tok.Type {
		case parser.IDENTIFIER:
			tokenType, modifiers = tokenProperty, modifierDeclaration
		case parser.NUMBER:
			tokenType = tokenNumber
		case parser.STRING:
			tokenType = tokenString
		case parser.PUNCT:
			tokenType = tokenOperator
		default:
			continue
		}
		tokens = append(tokens, splitLines(text, tok, tokenType, modifiers)...)
	}
	return tokens
}

// splitLines emits one entry per line a token covers; only strings can
// contain a newline. Columns and lengths are in UTF-16 code units.
func splitLines(text string, tok parser.Token, tokenType, modifiers int) []SemanticToken {
	var tokens []SemanticToken

	line := uint32(tok.Position.Line - 1)
	start := columnOf(text, tok.Position.Offset)
	raw := text[tok.Position.Offset : tok.Position.Offset+tok.Length]

	for {
		segment, rest, more := strings.Cut(raw, "\n")
		if len(segment) > 0 {
			tokens = append(tokens, SemanticToken{
				Line:           line,
				StartChar:      start,
				Length:         utf16Len(segment),
				TokenType:      tokenType,
				TokenModifiers: modifiers,
			})
		}
		if !more {
			return tokens
		}
		raw = rest
		line++
		start = 0
	}
}

// encodeSemanticTokens packs tokens into the LSP wire format (using
// delta-line, delta-start compression).
func encodeSemanticTokens(tokens []SemanticToken) []uint32 {
	data := make([]uint32, 0, len(tokens)*5)
	var prevLine, prevStart uint32

	for _, token := range tokens {
		deltaLine := token.Line - prevLine
		var deltaStart uint32
		if deltaLine == 0 {
			deltaStart = token.StartChar - prevStart
		} else {
			deltaStart = token.StartChar
		}

		data = append(data, deltaLine, deltaStart, token.Length, uint32(token.TokenType), uint32(token.TokenModifiers))

		prevLine = token.Line
		prevStart = token.StartChar
	}
	return data
}
