package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"namedargs/internal/errors"
)

func TestParseEmptyInput(t *testing.T) {
	for _, source := range []string{"", "   ", "\n\t"} {
		bindings, err := ParseSource(source)
		assert.NoError(t, err, "empty input %q should parse", source)
		assert.Empty(t, bindings)
	}
}

func TestParseAssignments(t *testing.T) {
	bindings, err := ParseSource("num = 42, str = 'Hello, world!'")
	require.NoError(t, err)
	require.Len(t, bindings, 2)

	assert.Equal(t, "num", bindings[0].Key)
	n, ok := bindings[0].Value.Int()
	assert.True(t, ok, "num should hold an integer")
	assert.Equal(t, int64(42), n)

	assert.Equal(t, "str", bindings[1].Key)
	s, ok := bindings[1].Value.Str()
	assert.True(t, ok, "str should hold a string")
	assert.Equal(t, "Hello, world!", s)
}

func TestParseKeepsSourceOrder(t *testing.T) {
	bindings, err := ParseSource("zeta = 1, alpha = 2, mid = 'm'")
	require.NoError(t, err)

	keys := make([]string, len(bindings))
	for i, b := range bindings {
		keys[i] = b.Key
	}
	assert.Equal(t, []string{"zeta", "alpha", "mid"}, keys)
}

func TestParseTrailingWhitespace(t *testing.T) {
	bindings, err := ParseSource("num = 42, str = 'Hello, world!'     ")
	require.NoError(t, err)
	assert.Len(t, bindings, 2)
}

func TestParseStringKeepsPunctuation(t *testing.T) {
	bindings, err := ParseSource("s = 'a, b = c'")
	require.NoError(t, err)
	require.Len(t, bindings, 1)

	s, _ := bindings[0].Value.Str()
	assert.Equal(t, "a, b = c", s)
}

func TestParseBindingPositions(t *testing.T) {
	bindings, err := ParseSource("a = 1,\n  b = 2")
	require.NoError(t, err)
	require.Len(t, bindings, 2)

	assert.Equal(t, Position{Line: 1, Column: 1, Offset: 0}, bindings[0].Position)
	assert.Equal(t, Position{Line: 2, Column: 3, Offset: 9}, bindings[1].Position)
}

func TestParseDuplicateKeys(t *testing.T) {
	tests := []string{
		"a = 1, a = 2",
		"a = 1, b = 2, a = 3",
		"a = 'x', a = 1",
		"a = 1, b = 'two', a = 'three'",
	}

	for _, source := range tests {
		_, err := ParseSource(source)
		require.Error(t, err, "source %q should fail", source)

		parseErr, ok := err.(*ParseError)
		require.True(t, ok, "expected *ParseError for %q, got %T", source, err)
		assert.Equal(t, errors.ErrorDuplicateKey, parseErr.Code)
		assert.Equal(t, "argument already exists: a", parseErr.Message)
		require.NotNil(t, parseErr.Previous)
		assert.Equal(t, 0, parseErr.Previous.Offset, "first definition of a is at the start")
	}
}

func TestParseDuplicateReportedBeforeValue(t *testing.T) {
	// The key check fires before the value is parsed, so a broken value
	// after a duplicate key still reports the duplicate.
	_, err := ParseSource("a = 1, a = ")
	require.Error(t, err)
	assert.Equal(t, errors.ErrorDuplicateKey, err.(*ParseError).Code)
}

func TestParseUnexpectedTokens(t *testing.T) {
	tests := []struct {
		source  string
		message string
		column  int
	}{
		{"a = 1,", "unexpected token end of input; expecting identifier", 7},
		{"a = 1, ", "unexpected token end of input; expecting identifier", 8},
		{"a = 1, dummy", "unexpected token end of input; expecting '='", 13},
		{"a = 1, dummy = ", "unexpected token end of input; expecting string or number", 16},
		{"a = 1 b = 2", `unexpected token "b"; expecting end of input`, 7},
		{"a 1", `unexpected token "1"; expecting '='`, 3},
		{"= 1", `unexpected token "="; expecting identifier`, 1},
		{"a = b", `unexpected token "b"; expecting string or number`, 5},
		{"a == 1", `unexpected token "="; expecting string or number`, 4},
		{"'a' = 1", `unexpected token 'a'; expecting identifier`, 1},
		{",", `unexpected token ","; expecting identifier`, 1},
		{"a = 1;", `unexpected token ";"; expecting end of input`, 6},
		{"a = 1,, b = 2", `unexpected token ","; expecting identifier`, 7},
	}

	for _, tt := range tests {
		_, err := ParseSource(tt.source)
		require.Error(t, err, "source %q should fail", tt.source)

		parseErr, ok := err.(*ParseError)
		require.True(t, ok, "expected *ParseError for %q, got %T", tt.source, err)
		assert.Equal(t, errors.ErrorUnexpectedToken, parseErr.Code, tt.source)
		assert.Equal(t, tt.message, parseErr.Message, tt.source)
		assert.Equal(t, tt.column, parseErr.Position.Column, tt.source)
	}
}

func TestParseSourceReturnsScanErrors(t *testing.T) {
	_, err := ParseSource("a = 'open")
	require.Error(t, err)

	scanErr, ok := err.(*ScanError)
	require.True(t, ok, "expected *ScanError, got %T", err)
	assert.Equal(t, errors.ErrorUnclosedString, scanErr.Code)
}

func TestParseSourceWithTokens(t *testing.T) {
	result := ParseSourceWithTokens("a = 1, b")
	require.Error(t, result.Err)
	assert.Nil(t, result.Bindings)
	assert.Len(t, result.Tokens, 6, "tokens survive a parse failure")

	result = ParseSourceWithTokens("a = '")
	require.Error(t, result.Err)
	assert.Nil(t, result.Tokens)

	result = ParseSourceWithTokens("a = 1")
	require.NoError(t, result.Err)
	assert.Len(t, result.Bindings, 1)
	assert.Equal(t, EOF, result.Tokens[len(result.Tokens)-1].Type)
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "42", Int(42).String())
	assert.Equal(t, "'hi there'", String("hi there").String())
	assert.Equal(t, "k = 'v'", Binding{Key: "k", Value: String("v")}.String())
	assert.Equal(t, "int", Int(1).Kind().String())
	assert.Equal(t, "string", String("").Kind().String())
}
