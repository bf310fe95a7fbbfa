package parser

import (
	"math"
	"testing"
)

func TestIdentifiersAndPunctuation(t *testing.T) {
	input := "num = 42, _x1=7"
	expected := []struct {
		typ    TokenType
		lexeme string
	}{
		{IDENTIFIER, "num"},
		{PUNCT, "="},
		{NUMBER, "42"},
		{PUNCT, ","},
		{IDENTIFIER, "_x1"},
		{PUNCT, "="},
		{NUMBER, "7"},
		{EOF, ""},
	}

	tokens, err := NewScanner(input).ScanTokens()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != len(expected) {
		t.Fatalf("expected %d tokens, got %d", len(expected), len(tokens))
	}

	for i, exp := range expected {
		if tokens[i].Type != exp.typ {
			t.Errorf("token %d: expected %s, got %s", i, exp.typ, tokens[i].Type)
		}
		if tokens[i].Lexeme != exp.lexeme {
			t.Errorf("token %d: expected lexeme %q, got %q", i, exp.lexeme, tokens[i].Lexeme)
		}
	}
}

func TestNumbers(t *testing.T) {
	input := "0 42 007 9223372036854775807"
	expected := []int64{0, 42, 7, math.MaxInt64}

	tokens, err := NewScanner(input).ScanTokens()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, exp := range expected {
		if tokens[i].Type != NUMBER {
			t.Errorf("token %d: expected NUMBER, got %s", i, tokens[i].Type)
		}
		if tokens[i].Number != exp {
			t.Errorf("token %d: expected %d, got %d", i, exp, tokens[i].Number)
		}
	}
}

func TestStrings(t *testing.T) {
	input := `'hello' 'a, b = c' ''`
	tokens, err := NewScanner(input).ScanTokens()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []struct {
		lexeme string
		length int
	}{
		{"hello", 7},
		{"a, b = c", 10},
		{"", 2},
	}
	for i, exp := range expected {
		if tokens[i].Type != STRING || tokens[i].Lexeme != exp.lexeme {
			t.Errorf("token %d: expected STRING %q, got %s %q", i, exp.lexeme, tokens[i].Type, tokens[i].Lexeme)
		}
		if tokens[i].Length != exp.length {
			t.Errorf("token %d: expected length %d, got %d", i, exp.length, tokens[i].Length)
		}
	}
}

func TestStringStopsAtFirstQuote(t *testing.T) {
	tokens, err := NewScanner(`'it's'`).ScanTokens()
	if err == nil {
		t.Fatalf("expected an error for the dangling quote, got tokens %v", tokens)
	}
	assertError(t, err.(*ScanError), "unclosed string literal", 1, 6, 5)
}

func TestWhitespaceOnly(t *testing.T) {
	tokens, err := NewScanner(" \t\r\n\v\f ").ScanTokens()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Type != EOF {
		t.Fatalf("expected a single EOF token, got %v", tokens)
	}
}

func TestEmptyInput(t *testing.T) {
	tokens, err := NewScanner("").ScanTokens()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Type != EOF {
		t.Fatalf("expected a single EOF token, got %v", tokens)
	}
}

func TestNoEmptyTokensBeforeEOF(t *testing.T) {
	tokens, err := NewScanner("a='' , b = 1,c='x'").ScanTokens()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, tok := range tokens[:len(tokens)-1] {
		if tok.Length == 0 {
			t.Errorf("token %d (%s) has zero length", i, tok.Type)
		}
	}
}

func TestUnterminatedString(t *testing.T) {
	_, err := NewScanner(`str = 'unterminated`).ScanTokens()
	if err == nil {
		t.Fatal("expected an unclosed string error, got none")
	}

	assertError(t, err.(*ScanError), "unclosed string literal", 1, 7, 6)
}

func TestUnexpectedCharacter(t *testing.T) {
	_, err := NewScanner("a = 1,\n\x01").ScanTokens()
	if err == nil {
		t.Fatal("expected an unexpected character error, got none")
	}

	assertError(t, err.(*ScanError), `unexpected character '\x01'`, 2, 1, 7)
}

func TestNonASCIIByteIsUnexpected(t *testing.T) {
	_, err := NewScanner("s = é").ScanTokens()
	if err == nil {
		t.Fatal("expected an unexpected character error, got none")
	}
	if err.(*ScanError).Code != "E0100" {
		t.Errorf("expected code E0100, got %s", err.(*ScanError).Code)
	}
}

func TestNumericOverflow(t *testing.T) {
	_, err := NewScanner("n = 9223372036854775808").ScanTokens()
	if err == nil {
		t.Fatal("expected an overflow error, got none")
	}

	scanErr := err.(*ScanError)
	assertError(t, scanErr, "conversion from characters to integer failed", 1, 5, 4)
	if scanErr.Length != 19 {
		t.Errorf("expected the error to cover all 19 digits, got %d", scanErr.Length)
	}
}

func TestTokenPositions(t *testing.T) {
	input := "a = 1,\n  bb = 'x'"
	tokens, err := NewScanner(input).ScanTokens()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	expected := []struct {
		typ    TokenType
		line   int
		column int
		offset int
	}{
		{IDENTIFIER, 1, 1, 0},
		{PUNCT, 1, 3, 2},
		{NUMBER, 1, 5, 4},
		{PUNCT, 1, 6, 5},
		{IDENTIFIER, 2, 3, 9},
		{PUNCT, 2, 6, 12},
		{STRING, 2, 8, 14},
		{EOF, 2, 11, 17},
	}

	for i, exp := range expected {
		tok := tokens[i]
		if tok.Type != exp.typ {
			t.Errorf("token %d: expected type %s, got %s", i, exp.typ, tok.Type)
		}
		if tok.Position.Line != exp.line || tok.Position.Column != exp.column || tok.Position.Offset != exp.offset {
			t.Errorf("token %d: expected %d:%d@%d, got %d:%d@%d", i,
				exp.line, exp.column, exp.offset,
				tok.Position.Line, tok.Position.Column, tok.Position.Offset)
		}
	}
}

func TestScanDecimal(t *testing.T) {
	tests := []struct {
		src      string
		pos      int
		value    int64
		n        int
		overflow bool
	}{
		{"42", 0, 42, 2, false},
		{"x42y", 1, 42, 2, false},
		{"abc", 0, 0, 0, false},
		{"", 0, 0, 0, false},
		{"9223372036854775807", 0, math.MaxInt64, 19, false},
		{"9223372036854775808", 0, 0, 19, true},
		{"123456789012345678901234567890,", 0, 0, 30, true},
	}

	for _, tt := range tests {
		value, n, overflow := scanDecimal(tt.src, tt.pos)
		if n != tt.n || overflow != tt.overflow {
			t.Errorf("scanDecimal(%q, %d): got n=%d overflow=%v, want n=%d overflow=%v",
				tt.src, tt.pos, n, overflow, tt.n, tt.overflow)
		}
		if !tt.overflow && value != tt.value {
			t.Errorf("scanDecimal(%q, %d): got %d, want %d", tt.src, tt.pos, value, tt.value)
		}
	}
}

func TestCharacterClasses(t *testing.T) {
	for c := 0; c < 256; c++ {
		b := byte(c)
		classes := 0
		for _, is := range []func(byte) bool{isSpace, isDigit, isIdentStart, isPunct} {
			if is(b) {
				classes++
			}
		}
		// '_' sits in a punctuation range; the scanner tries identifiers first.
		if classes > 1 && b != '_' {
			t.Errorf("byte %q belongs to %d classes", b, classes)
		}
		visible := '!' <= b && b <= '~'
		if visible && classes == 0 {
			t.Errorf("visible byte %q belongs to no class", b)
		}
	}

	if !isPunct('\'') {
		t.Error("quote should classify as punctuation; the scanner checks strings first")
	}
	if !isIdentContinue('9') || isIdentStart('9') {
		t.Error("digits continue identifiers but do not start them")
	}
}

func assertError(t *testing.T, got *ScanError, wantMessage string, wantLine, wantCol, wantOffset int) {
	t.Helper()
	if got.Message != wantMessage {
		t.Errorf("expected message %q, got %q", wantMessage, got.Message)
	}
	if got.Position.Line != wantLine {
		t.Errorf("expected line %d, got %d", wantLine, got.Position.Line)
	}
	if got.Position.Column != wantCol {
		t.Errorf("expected column %d, got %d", wantCol, got.Position.Column)
	}
	if got.Position.Offset != wantOffset {
		t.Errorf("expected offset %d, got %d", wantOffset, got.Position.Offset)
	}
}

func TestTokenTypeString(t *testing.T) {
	var zero Token
	if got := zero.Type.String(); got != "ILLEGAL" {
		t.Errorf("zero token type: expected ILLEGAL, got %s", got)
	}
	if got := PUNCT.String(); got != "PUNCT" {
		t.Errorf("expected PUNCT, got %s", got)
	}
	if got := TokenType(42).String(); got != "TokenType(42)" {
		t.Errorf("expected TokenType(42), got %s", got)
	}
}
