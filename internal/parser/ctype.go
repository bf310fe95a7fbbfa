package parser

// Byte classification for the lexer. ASCII only; bytes >= 0x80 match nothing.

func isSpace(c byte) bool {
	return ('\t' <= c && c <= '\r') || c == ' '
}

func isDigit(c byte) bool {
	return '0' <= c && c <= '9'
}

func isIdentStart(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || c == '_'
}

func isIdentContinue(c byte) bool {
	return isIdentStart(c) || isDigit(c)
}

func isPunct(c byte) bool {
	return ('!' <= c && c <= '/') || (':' <= c && c <= '@') ||
		('[' <= c && c <= '`') || ('{' <= c && c <= '~')
}
