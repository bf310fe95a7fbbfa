package grammar

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
	"github.com/fatih/color"
)

var argsParser = participle.MustBuild[Args](
	participle.Lexer(ArgsLexer),
	participle.Elide("Whitespace"),
	participle.Map(unquote, "String"),
	participle.Map(decimal, "Number"),
)

func unquote(t lexer.Token) (lexer.Token, error) {
	t.Value = t.Value[1 : len(t.Value)-1]
	return t, nil
}

// decimal drops leading zeros so "010" is ten, not an octal literal.
func decimal(t lexer.Token) (lexer.Token, error) {
	if trimmed := strings.TrimLeft(t.Value, "0"); trimmed != "" {
		t.Value = trimmed
	} else {
		t.Value = "0"
	}
	return t, nil
}

// DuplicateError is returned when a key is assigned twice. The grammar
// itself accepts duplicates; ParseString rejects them afterwards.
type DuplicateError struct {
	Key   string
	Pos   lexer.Position
	First lexer.Position
}

func (e *DuplicateError) Error() string {
	return fmt.Sprintf("%s: argument already exists: %s", e.Pos, e.Key)
}

func ParseFile(path string) (*Args, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseString(path, string(source))
}

func ParseString(filename, source string) (*Args, error) {
	args, err := argsParser.ParseString(filename, source)
	if err != nil {
		return nil, err
	}
	if err := checkDuplicates(args); err != nil {
		return nil, err
	}
	return args, nil
}

func checkDuplicates(args *Args) error {
	seen := make(map[string]lexer.Position, len(args.Assigns))
	for _, a := range args.Assigns {
		if first, ok := seen[a.Key]; ok {
			return &DuplicateError{Key: a.Key, Pos: a.Pos, First: first}
		}
		seen[a.Key] = a.Pos
	}
	return nil
}

// ReportError writes a caret-style message for an error returned by
// ParseString.
func ReportError(w io.Writer, src string, err error) {
	red := color.New(color.FgRed)
	hiRed := color.New(color.FgHiRed)

	var pos lexer.Position
	var message string
	switch e := err.(type) {
	case *DuplicateError:
		pos, message = e.Pos, fmt.Sprintf("argument already exists: %s (first assigned at %d:%d)", e.Key, e.First.Line, e.First.Column)
	case participle.Error:
		pos, message = e.Position(), e.Message()
	default:
		red.Fprintf(w, "Unexpected error: %s\n", err)
		return
	}

	lines := strings.Split(src, "\n")
	if pos.Line <= 0 || pos.Line > len(lines) {
		red.Fprintf(w, "Syntax error at unknown location: %s\n", err)
		return
	}

	line := lines[pos.Line-1]
	caret := strings.Repeat(" ", max(pos.Column-1, 0)) + "^"

	red.Fprintf(w, "Syntax error in %s at line %d, column %d:\n", pos.Filename, pos.Line, pos.Column)
	fmt.Fprintln(w, line)
	hiRed.Fprintln(w, caret)
	fmt.Fprintf(w, "→ %s\n", message)
}
