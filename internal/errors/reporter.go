package errors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// ErrorLevel represents the severity of an error
type ErrorLevel string

const (
	Error   ErrorLevel = "error"
	Warning ErrorLevel = "warning"
	Note    ErrorLevel = "note"
	Help    ErrorLevel = "help"
)

// Position is a location in the argument text
type Position struct {
	Line   int // 1-based
	Column int // 1-based
	Offset int // 0-based
}

// CompilerError represents a structured error with suggestions and context
type CompilerError struct {
	Level       ErrorLevel
	Code        string       // Error code like E0104
	Message     string       // Primary error message
	Position    Position     // Location in source
	Length      int          // Length of the problematic region
	Suggestions []Suggestion // Suggested fixes
	Notes       []string     // Additional context notes
	HelpText    string       // Help text for the error
}

// Suggestion represents a suggested fix
type Suggestion struct {
	Message     string // Description of the suggestion
	Replacement string // Suggested replacement text (optional)
}

// ErrorReporter renders diagnostics against one source text in the
// caret style:
//
//	error[E0104]: argument already exists: num
//	    --> args.nargs:2:1
//	    │
//	  1 │ num = 42,
//	  2 │ num = 7
//	    │ ^^^
//	    │ note: 'num' was first assigned at 1:1
type ErrorReporter struct {
	filename string
	lines    []string
}

// NewErrorReporter creates a new error reporter for a named source.
// Use "<input>" or similar for text that did not come from a file.
func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

var (
	bold    = color.New(color.Bold).SprintFunc()
	faint   = color.New(color.Faint).SprintFunc()
	cyan    = color.New(color.FgCyan).SprintFunc()
	blue    = color.New(color.FgBlue).SprintFunc()
	green   = color.New(color.FgGreen).SprintFunc()
	gutter  = "│"
	pointer = "-->"
)

// FormatError formats an error with caret styling and suggestions
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var b strings.Builder
	pad := strings.Repeat(" ", er.gutterWidth(err.Position.Line))

	er.writeHeader(&b, err)
	// Errors raised outside any source text (e.g. while converting) have no location.
	if err.Position.Line > 0 {
		er.writeSnippet(&b, pad, err)
	}
	writeSuggestions(&b, pad, err.Suggestions)

	for _, note := range err.Notes {
		fmt.Fprintf(&b, "%s %s %s %s\n", pad, faint(gutter), blue("note:"), note)
	}
	if err.HelpText != "" {
		fmt.Fprintf(&b, "%s %s %s %s\n", pad, faint(gutter), green("help:"), err.HelpText)
	}

	b.WriteString("\n")
	return b.String()
}

func (er *ErrorReporter) writeHeader(b *strings.Builder, err CompilerError) {
	level := er.getLevelColor(err.Level)(string(err.Level))
	if err.Code == "" {
		fmt.Fprintf(b, "%s: %s\n", level, err.Message)
		return
	}
	fmt.Fprintf(b, "%s[%s]: %s\n", level, err.Code, err.Message)
}

// writeSnippet prints the location, the line before the error for context,
// the offending line and the marker beneath it.
func (er *ErrorReporter) writeSnippet(b *strings.Builder, pad string, err CompilerError) {
	line := err.Position.Line
	width := len(pad)

	fmt.Fprintf(b, "%s %s %s:%d:%d\n", pad, faint(pointer), er.filename, line, err.Position.Column)
	fmt.Fprintf(b, "%s %s\n", pad, faint(gutter))

	if line > 1 && line-1 <= len(er.lines) {
		fmt.Fprintf(b, "%s %s %s\n", faint(fmt.Sprintf("%*d", width, line-1)), faint(gutter), er.lines[line-2])
	}
	if line > len(er.lines) {
		return
	}
	fmt.Fprintf(b, "%s %s %s\n", bold(fmt.Sprintf("%*d", width, line)), faint(gutter), er.lines[line-1])
	fmt.Fprintf(b, "%s %s %s\n", pad, faint(gutter), er.createMarker(err.Position.Column, err.Length, err.Level))
}

func writeSuggestions(b *strings.Builder, pad string, suggestions []Suggestion) {
	if len(suggestions) == 0 {
		return
	}
	fmt.Fprintf(b, "%s %s\n", pad, faint(gutter))

	for i, s := range suggestions {
		if i == 0 {
			fmt.Fprintf(b, "%s %s %s: %s\n", pad, cyan("help"), cyan("try"), s.Message)
		} else {
			fmt.Fprintf(b, "%s %s %s\n", pad, cyan("    "), s.Message)
		}
		if s.Replacement != "" {
			fmt.Fprintf(b, "%s %s %s\n", pad, cyan(gutter), cyan(s.Replacement))
		}
	}
}

func (er *ErrorReporter) getLevelColor(level ErrorLevel) func(...interface{}) string {
	attrs := []color.Attribute{color.FgRed, color.Bold}
	switch level {
	case Warning:
		attrs[0] = color.FgYellow
	case Note:
		attrs[0] = color.FgBlue
	case Help:
		attrs[0] = color.FgGreen
	}
	return color.New(attrs...).SprintFunc()
}

// createMarker underlines length bytes starting at column, at least one.
func (er *ErrorReporter) createMarker(column, length int, level ErrorLevel) string {
	carets := strings.Repeat("^", max(length, 1))
	return strings.Repeat(" ", max(column-1, 0)) + er.getLevelColor(level)(carets)
}

// gutterWidth is the width of the line number column, never under three.
func (er *ErrorReporter) gutterWidth(line int) int {
	return max(len(strconv.Itoa(line)), 3)
}
