package parser

import (
	"strconv"
	"strings"
)

type ValueKind int

const (
	IntValue ValueKind = iota
	StringValue
)

func (k ValueKind) String() string {
	switch k {
	case IntValue:
		return "int"
	case StringValue:
		return "string"
	default:
		return "unknown"
	}
}

// Value holds either an int64 or a string, never both.
type Value struct {
	kind ValueKind
	num  int64
	str  string
}

func Int(n int64) Value {
	return Value{kind: IntValue, num: n}
}

func String(s string) Value {
	return Value{kind: StringValue, str: s}
}

func (v Value) Kind() ValueKind { return v.kind }

// Int returns the integer and true when v holds an integer.
func (v Value) Int() (int64, bool) {
	return v.num, v.kind == IntValue
}

// Str returns the string and true when v holds a string.
func (v Value) Str() (string, bool) {
	return v.str, v.kind == StringValue
}

// Interface returns the held value as int64 or string.
func (v Value) Interface() any {
	if v.kind == IntValue {
		return v.num
	}
	return v.str
}

// String renders v as a literal of the argument language.
func (v Value) String() string {
	if v.kind == IntValue {
		return strconv.FormatInt(v.num, 10)
	}
	return "'" + v.str + "'"
}

type Binding struct {
	Key      string
	Value    Value
	Position Position // of the key
}

func (b Binding) String() string {
	var sb strings.Builder
	sb.WriteString(b.Key)
	sb.WriteString(" = ")
	sb.WriteString(b.Value.String())
	return sb.String()
}
