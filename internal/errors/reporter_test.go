package errors

import (
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func init() {
	color.NoColor = true
}

func TestErrorReporter(t *testing.T) {
	source := "num = 42,\nnum = 7"

	reporter := NewErrorReporter("args.nargs", source)

	err := DuplicateKey("num", Position{Line: 2, Column: 1, Offset: 10}, &Position{Line: 1, Column: 1})
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "error["+ErrorDuplicateKey+"]")
	assert.Contains(t, formatted, "argument already exists: num")
	assert.Contains(t, formatted, "args.nargs:2:1")
	assert.Contains(t, formatted, "num = 42,")
	assert.Contains(t, formatted, "first assigned at 1:1")
	assert.Contains(t, formatted, "^^^")
}

func TestErrorWithoutPosition(t *testing.T) {
	reporter := NewErrorReporter("<input>", "num = 'x'")

	err := TypeMismatch("num", "int", "string", Position{})
	formatted := reporter.FormatError(err)

	assert.Contains(t, formatted, "error[E0200]: value is not assignable")
	assert.NotContains(t, formatted, "-->")
	assert.Contains(t, formatted, "write the value without quotes")
}

func TestUnknownKeyError(t *testing.T) {
	pos := Position{Line: 1, Column: 1}

	err := UnknownKey("nmu", pos, []string{"num", "str"})
	assert.Equal(t, ErrorUnknownKey, err.Code)
	assert.Contains(t, err.Message, "nmu")
	assert.Len(t, err.Suggestions, 1)
	assert.Contains(t, err.Suggestions[0].Message, "did you mean 'num'")
	assert.Contains(t, err.Notes[0], "known arguments: num, str")

	err = UnknownKey("verydifferent", pos, []string{"num"})
	assert.Empty(t, err.Suggestions)
}

func TestTypeMismatchSuggestions(t *testing.T) {
	pos := Position{Line: 1, Column: 1}

	err := TypeMismatch("str", "string", "int", pos)
	assert.Equal(t, ErrorTypeMismatch, err.Code)
	assert.Contains(t, err.Suggestions[0].Message, "quote the value")

	err = TypeMismatch("small", "int8", "int", pos)
	assert.Empty(t, err.Suggestions)
	assert.Contains(t, err.Notes[0], "does not fit in int8")
}

func TestUnexpectedTokenAtEnd(t *testing.T) {
	err := UnexpectedToken("unexpected token end of input; expecting identifier", Position{Line: 1, Column: 8}, 0)
	assert.Equal(t, ErrorUnexpectedToken, err.Code)
	assert.Len(t, err.Suggestions, 1)
	assert.NotEmpty(t, err.HelpText)
}

func TestErrorMarkerCreation(t *testing.T) {
	reporter := NewErrorReporter("test.nargs", "variable = value")

	marker := reporter.createMarker(5, 8, Error)

	spaces := strings.Count(marker, " ")
	assert.Equal(t, 4, spaces) // column 5 means 4 spaces before
	carets := strings.Count(marker, "^")
	assert.Equal(t, 8, carets)
}

func TestLevenshteinDistance(t *testing.T) {
	assert.Equal(t, 0, levenshteinDistance("hello", "hello"))
	assert.Equal(t, 1, levenshteinDistance("hello", "hallo"))
	assert.Equal(t, 1, levenshteinDistance("hello", "helo"))
	assert.Equal(t, 5, levenshteinDistance("hello", ""))
	assert.Equal(t, 3, levenshteinDistance("kitten", "sitting"))
}

func TestErrorCategories(t *testing.T) {
	assert.Equal(t, "Lexer", GetErrorCategory(ErrorUnexpectedCharacter))
	assert.Equal(t, "Lexer", GetErrorCategory(ErrorNumericOverflow))
	assert.Equal(t, "Parser", GetErrorCategory(ErrorDuplicateKey))
	assert.Equal(t, "Binding", GetErrorCategory(ErrorTypeMismatch))
	assert.Equal(t, "Unknown error code", GetErrorDescription("E9999"))
}

func TestErrorLevels(t *testing.T) {
	reporter := NewErrorReporter("test.nargs", "test")
	pos := Position{Line: 1, Column: 1}

	errorErr := CompilerError{Level: Error, Message: "test error", Position: pos}
	warningErr := CompilerError{Level: Warning, Message: "test warning", Position: pos}

	assert.Contains(t, reporter.FormatError(errorErr), "error:")
	assert.Contains(t, reporter.FormatError(warningErr), "warning:")
}
