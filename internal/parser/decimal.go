package parser

import "math"

const (
	riskyValue = math.MaxInt64 / 10
	maxDigit   = math.MaxInt64 % 10
)

// scanDecimal reads the run of decimal digits starting at src[pos]. It
// returns the accumulated value, the number of digits consumed and whether
// the value overflowed int64. On overflow the scan keeps going so n still
// covers every digit; value is meaningless in that case. n == 0 means
// src[pos] is not a digit.
func scanDecimal(src string, pos int) (value int64, n int, overflow bool) {
	i := pos
	for ; i < len(src) && isDigit(src[i]); i++ {
		digit := int64(src[i] - '0')
		if value < riskyValue || (value == riskyValue && digit <= maxDigit) {
			value = value*10 + digit
		} else {
			overflow = true
		}
	}
	return value, i - pos, overflow
}
