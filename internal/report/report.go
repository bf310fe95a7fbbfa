// Package report turns namedargs failures into caret diagnostics.
package report

import (
	stderrors "errors"

	"namedargs"
	"namedargs/internal/errors"
)

// Diagnostic converts err into a structured diagnostic for reporting. The
// second result is false when err is not a *namedargs.Error.
func Diagnostic(err error) (errors.CompilerError, bool) {
	var e *namedargs.Error
	if !stderrors.As(err, &e) {
		return errors.CompilerError{}, false
	}

	pos := errors.Position{Line: e.Position.Line, Column: e.Position.Column, Offset: e.Position.Offset}
	switch e.Code {
	case errors.ErrorUnexpectedCharacter:
		return errors.UnexpectedCharacter(e.Message, pos), true
	case errors.ErrorUnclosedString:
		return errors.UnclosedString(pos, e.Length), true
	case errors.ErrorNumericOverflow:
		return errors.NumericOverflow(pos, e.Length), true
	case errors.ErrorUnexpectedToken:
		return errors.UnexpectedToken(e.Message, pos, e.Length), true
	case errors.ErrorDuplicateKey:
		var first *errors.Position
		if e.Previous != nil {
			first = &errors.Position{Line: e.Previous.Line, Column: e.Previous.Column, Offset: e.Previous.Offset}
		}
		return errors.DuplicateKey(e.Key, pos, first), true
	case errors.ErrorTypeMismatch:
		return errors.TypeMismatch(e.Key, e.Expected, e.Actual, pos), true
	case errors.ErrorUnknownKey:
		return errors.UnknownKey(e.Key, pos, e.Known), true
	default:
		return errors.NewDiagnostic(e.Code, e.Message, pos).WithLength(e.Length).Build(), true
	}
}

// Format renders err against source. Errors from outside namedargs are
// rendered as a bare error line.
func Format(filename, source string, err error) string {
	reporter := errors.NewErrorReporter(filename, source)
	diagnostic, ok := Diagnostic(err)
	if !ok {
		diagnostic = errors.CompilerError{Level: errors.Error, Message: err.Error()}
	}
	return reporter.FormatError(diagnostic)
}
