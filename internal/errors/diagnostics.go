package errors

import (
	"fmt"
	"sort"
	"strings"
)

// DiagnosticBuilder provides a fluent interface for creating errors with suggestions
type DiagnosticBuilder struct {
	err CompilerError
}

// NewDiagnostic creates a new error builder
func NewDiagnostic(code, message string, pos Position) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span
func (b *DiagnosticBuilder) WithLength(length int) *DiagnosticBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *DiagnosticBuilder) WithSuggestion(message string) *DiagnosticBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text
func (b *DiagnosticBuilder) WithReplacement(message, replacement string) *DiagnosticBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
	})
	return b
}

// WithNote adds a note to the error
func (b *DiagnosticBuilder) WithNote(note string) *DiagnosticBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *DiagnosticBuilder) WithHelp(help string) *DiagnosticBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed error
func (b *DiagnosticBuilder) Build() CompilerError {
	return b.err
}

// UnexpectedCharacter creates an error for a byte that starts no token
func UnexpectedCharacter(message string, pos Position) CompilerError {
	return NewDiagnostic(ErrorUnexpectedCharacter, message, pos).
		WithHelp("keys are identifiers, values are 'quoted strings' or unsigned integers").
		Build()
}

// UnclosedString creates an error for a string literal missing its closing quote
func UnclosedString(pos Position, length int) CompilerError {
	return NewDiagnostic(ErrorUnclosedString, "unclosed string literal", pos).
		WithLength(length).
		WithSuggestion("add a closing ' at the end of the value").
		WithNote("string literals have no escapes; the next quote always ends the literal").
		Build()
}

// NumericOverflow creates an error for integer literals outside the int64 range
func NumericOverflow(pos Position, length int) CompilerError {
	return NewDiagnostic(ErrorNumericOverflow, "conversion from characters to integer failed", pos).
		WithLength(length).
		WithNote("integer values must not exceed 9223372036854775807").
		WithSuggestion("pass large numbers as a quoted string").
		Build()
}

// UnexpectedToken creates an error for input that breaks the grammar
func UnexpectedToken(message string, pos Position, length int) CompilerError {
	builder := NewDiagnostic(ErrorUnexpectedToken, message, pos).WithLength(length)
	if strings.HasPrefix(message, "unexpected token end of input") {
		builder = builder.WithSuggestion("remove the trailing ',' or complete the assignment")
	}
	return builder.WithHelp("arguments are written as name = 'text' or name = 123, separated by commas").
		Build()
}

// DuplicateKey creates an error for a key that is assigned twice
func DuplicateKey(key string, pos Position, first *Position) CompilerError {
	builder := NewDiagnostic(ErrorDuplicateKey, fmt.Sprintf("argument already exists: %s", key), pos).
		WithLength(len(key)).
		WithSuggestion(fmt.Sprintf("remove one of the assignments to '%s'", key))
	if first != nil {
		builder = builder.WithNote(fmt.Sprintf("'%s' was first assigned at %d:%d", key, first.Line, first.Column))
	}
	return builder.Build()
}

// TypeMismatch creates an error for a value requested as an incompatible type
func TypeMismatch(key, expected, actual string, pos Position) CompilerError {
	builder := NewDiagnostic(ErrorTypeMismatch, fmt.Sprintf("value is not assignable: '%s' holds %s, expected %s", key, actual, expected), pos).
		WithLength(len(key))
	switch {
	case actual == "string" && expected != "string":
		builder = builder.WithSuggestion("write the value without quotes")
	case actual == "int" && expected == "string":
		builder = builder.WithSuggestion("quote the value")
	default:
		builder = builder.WithNote(fmt.Sprintf("the value does not fit in %s", expected))
	}
	return builder.Build()
}

// UnknownKey creates an error for an argument nobody asked for, suggesting
// close matches among the known keys
func UnknownKey(key string, pos Position, known []string) CompilerError {
	builder := NewDiagnostic(ErrorUnknownKey, fmt.Sprintf("unknown argument '%s'", key), pos).
		WithLength(len(key))

	similar := findSimilarNames(key, known)
	if len(similar) == 1 {
		builder = builder.WithSuggestion(fmt.Sprintf("did you mean '%s'?", similar[0]))
	} else if len(similar) > 1 {
		builder = builder.WithSuggestion(fmt.Sprintf("did you mean one of: '%s'?", strings.Join(similar, "', '")))
	}

	if len(known) > 0 {
		sorted := append([]string(nil), known...)
		sort.Strings(sorted)
		builder = builder.WithNote(fmt.Sprintf("known arguments: %s", strings.Join(sorted, ", ")))
	}

	return builder.Build()
}

func findSimilarNames(target string, candidates []string) []string {
	var similar []string

	for _, candidate := range candidates {
		if levenshteinDistance(target, candidate) <= 2 && len(candidate) > 2 {
			similar = append(similar, candidate)
		}
	}

	return similar
}

// Simple Levenshtein distance implementation for finding similar names
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}

	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}
