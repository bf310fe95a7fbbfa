package namedargs

import "namedargs/internal/parser"

type options struct {
	strict bool
}

type Option func(*options)

// WithStrict makes a parse fail with ErrUnknownKey when the input binds a
// key the conversion routine never looked up.
func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// ParseArgs lexes and parses input into finalized bindings.
func ParseArgs(input string) (*Args, error) {
	bindings, err := parser.ParseSource(input)
	if err != nil {
		return nil, fromParserError(err)
	}
	return newArgs(bindings), nil
}

// Parse parses input and calls convert exactly once with an Accessor over
// the bindings. When parsing fails convert is not called. Any error yields
// the zero T.
func Parse[T any](input string, convert func(*Accessor) (T, error), opts ...Option) (T, error) {
	var zero T

	o := options{}
	for _, opt := range opts {
		opt(&o)
	}

	args, err := ParseArgs(input)
	if err != nil {
		return zero, err
	}

	accessor := newAccessor(args)
	result, err := convert(accessor)
	if err != nil {
		return zero, err
	}
	if o.strict {
		if err := accessor.checkUnused(); err != nil {
			return zero, err
		}
	}
	return result, nil
}
