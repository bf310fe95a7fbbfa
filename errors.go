package namedargs

import (
	stderrors "errors"
	"fmt"

	"namedargs/internal/errors"
	"namedargs/internal/parser"
)

// Error is the single failure value returned by Parse, ParseArgs,
// Unmarshal and AssignOr.
type Error struct {
	Code     string   // stable code such as "E0104"
	Message  string   // human-readable description
	Position Position // zero when the failure has no source location
	Length   int      // bytes of input covered by the failure

	Key      string    // offending key, for binding errors
	Previous *Position // first assignment of a duplicate key
	Expected string    // requested Go type, for type mismatches
	Actual   string    // stored value kind, for type mismatches
	Known    []string  // keys the consumer asked for, for unknown keys
}

func (e *Error) Error() string {
	if e.Position.Line > 0 {
		return fmt.Sprintf("namedargs: %d:%d: %s", e.Position.Line, e.Position.Column, e.Message)
	}
	return "namedargs: " + e.Message
}

// Is reports whether target is an *Error with the same code, so the
// sentinels below match any failure of their kind.
func (e *Error) Is(target error) bool {
	var t *Error
	if !stderrors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

var (
	ErrUnexpectedCharacter   = &Error{Code: errors.ErrorUnexpectedCharacter, Message: "unexpected character"}
	ErrUnclosedStringLiteral = &Error{Code: errors.ErrorUnclosedString, Message: "unclosed string literal"}
	ErrNumericOverflow       = &Error{Code: errors.ErrorNumericOverflow, Message: "conversion from characters to integer failed"}
	ErrUnexpectedToken       = &Error{Code: errors.ErrorUnexpectedToken, Message: "unexpected token"}
	ErrDuplicateKey          = &Error{Code: errors.ErrorDuplicateKey, Message: "argument already exists"}
	ErrUnknownKey            = &Error{Code: errors.ErrorUnknownKey, Message: "unknown argument"}
	ErrTypeMismatch          = &Error{Code: errors.ErrorTypeMismatch, Message: "value is not assignable"}
)

func fromParserError(err error) error {
	var scanErr *parser.ScanError
	if stderrors.As(err, &scanErr) {
		return &Error{
			Code:     scanErr.Code,
			Message:  scanErr.Message,
			Position: scanErr.Position,
			Length:   scanErr.Length,
		}
	}

	var parseErr *parser.ParseError
	if stderrors.As(err, &parseErr) {
		e := &Error{
			Code:     parseErr.Code,
			Message:  parseErr.Message,
			Position: parseErr.Position,
			Length:   parseErr.Length,
			Previous: parseErr.Previous,
		}
		if parseErr.Code == errors.ErrorDuplicateKey {
			e.Key = parseErr.Lexeme
		}
		return e
	}

	return err
}

func typeMismatch(b Binding, expected string) *Error {
	actual := b.Value.Kind().String()
	return &Error{
		Code:     errors.ErrorTypeMismatch,
		Message:  fmt.Sprintf("value is not assignable: '%s' holds %s, expected %s", b.Key, actual, expected),
		Position: b.Position,
		Length:   len(b.Key),
		Key:      b.Key,
		Expected: expected,
		Actual:   actual,
	}
}

func unknownKey(b Binding, known []string) *Error {
	return &Error{
		Code:     errors.ErrorUnknownKey,
		Message:  fmt.Sprintf("unknown argument '%s'", b.Key),
		Position: b.Position,
		Length:   len(b.Key),
		Key:      b.Key,
		Known:    known,
	}
}
