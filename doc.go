// Package namedargs parses "named arguments" strings such as
//
//	num = 42, str = 'Hello, world!'
//
// into typed key/value bindings and hands them to a conversion routine that
// fills a caller-defined value.
//
// The grammar is
//
//	args   := EOF | stmt EOF
//	stmt   := assign ("," assign)*
//	assign := IDENT "=" primary
//	primary:= STRING | NUMBER
//
// Identifiers are ASCII letters, digits and underscores, not starting with a
// digit. Strings are single-quoted and have no escapes. Numbers are unsigned
// decimal literals that must fit in an int64. Whitespace between tokens is
// ignored and the empty string is valid input with no bindings.
//
// Keys and string values are substrings of the input; Go strings keep the
// input alive for as long as any of them is referenced.
//
// A parse either succeeds completely or fails with a single *Error; there are
// no partial results. Use errors.Is with the Err* sentinels to tell failures
// apart.
//
//	type params struct {
//		Num int
//		Str string
//	}
//
//	p, err := namedargs.Parse(input, func(a *namedargs.Accessor) (params, error) {
//		var p params
//		if err := namedargs.AssignOr(a, &p.Num, "num", 0); err != nil {
//			return p, err
//		}
//		err := namedargs.AssignOr(a, &p.Str, "str", "")
//		return p, err
//	})
package namedargs
