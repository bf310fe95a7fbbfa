package errors

// Error codes for named argument parsing.
// These codes appear in diagnostics and are matched by the public error
// sentinels, so they must stay stable.
//
// Error code ranges:
// E0100-E0199: Lexer and parser errors
// E0200-E0299: Binding and conversion errors

const (
	// E0100: A byte matches no token-start rule
	ErrorUnexpectedCharacter = "E0100"

	// E0101: String literal without a closing quote
	ErrorUnclosedString = "E0101"

	// E0102: Decimal literal does not fit a 64-bit signed integer
	ErrorNumericOverflow = "E0102"

	// E0103: Token stream does not match the grammar
	ErrorUnexpectedToken = "E0103"

	// E0104: Same key assigned twice
	ErrorDuplicateKey = "E0104"

	// E0105: Key present in the input but never read by the consumer
	ErrorUnknownKey = "E0105"

	// E0200: Stored value cannot be assigned to the requested type
	ErrorTypeMismatch = "E0200"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnexpectedCharacter:
		return "Character cannot start any token"
	case ErrorUnclosedString:
		return "String literal is missing its closing quote"
	case ErrorNumericOverflow:
		return "Integer literal is too large for a 64-bit signed integer"
	case ErrorUnexpectedToken:
		return "Input does not match the argument grammar"
	case ErrorDuplicateKey:
		return "Argument is assigned more than once"
	case ErrorUnknownKey:
		return "Argument is not recognized by the consumer"
	case ErrorTypeMismatch:
		return "Argument value does not match the requested type"
	default:
		return "Unknown error code"
	}
}

// GetErrorCategory returns the category of the error based on its code
func GetErrorCategory(code string) string {
	switch {
	case code >= "E0100" && code < "E0103":
		return "Lexer"
	case code >= "E0103" && code < "E0200":
		return "Parser"
	case code >= "E0200" && code < "E0300":
		return "Binding"
	default:
		return "Unknown"
	}
}
