package lsp

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// utf16Len counts s in UTF-16 code units, the unit of LSP columns.
// Invalid bytes count as one unit each, as U+FFFD would.
func utf16Len(s string) uint32 {
	var n uint32
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		n += uint32(utf16.RuneLen(r))
		s = s[size:]
	}
	return n
}

// columnOf returns the UTF-16 column of the byte offset in text.
func columnOf(text string, offset int) uint32 {
	offset = min(max(offset, 0), len(text))
	lineStart := strings.LastIndexByte(text[:offset], '\n') + 1
	return utf16Len(text[lineStart:offset])
}

// byteOffset maps a UTF-16 column on line to a byte offset in text. A
// column past the end of the line clamps to the line end, and a column
// inside a surrogate pair resolves to the start of its rune.
func byteOffset(text string, line, character uint32) (int, error) {
	offset := 0
	for l := uint32(0); l < line; l++ {
		i := strings.IndexByte(text[offset:], '\n')
		if i < 0 {
			return 0, fmt.Errorf("line %d out of range", line)
		}
		offset += i + 1
	}

	var units uint32
	for offset < len(text) && text[offset] != '\n' {
		r, size := utf8.DecodeRuneInString(text[offset:])
		units += uint32(utf16.RuneLen(r))
		if units > character {
			break
		}
		offset += size
	}
	return offset, nil
}
