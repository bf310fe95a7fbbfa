package lsp

import (
	"strings"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"namedargs"
	"namedargs/internal/report"
)

const diagnosticSource = "namedargs"

// CollectDiagnostics parses text and returns at most one diagnostic, since
// parsing stops at the first error. A valid document yields an empty,
// non-nil slice so publishing it clears earlier markers.
func CollectDiagnostics(text string) []protocol.Diagnostic {
	diagnostics := []protocol.Diagnostic{}

	_, err := namedargs.ParseArgs(text)
	if err == nil {
		return diagnostics
	}
	return append(diagnostics, ConvertError(text, err))
}

// ConvertError transforms a parse failure of text into an LSP diagnostic.
// Notes and suggestions from the reporter are appended to the message.
func ConvertError(text string, err error) protocol.Diagnostic {
	d, ok := report.Diagnostic(err)
	if !ok {
		return protocol.Diagnostic{
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString(diagnosticSource),
			Message:  err.Error(),
		}
	}

	line := uint32(max(d.Position.Line-1, 0))
	start := columnOf(text, d.Position.Offset)
	end := start + 1
	if from := min(d.Position.Offset, len(text)); d.Length > 0 && from < len(text) {
		span, _, _ := strings.Cut(text[from:min(from+d.Length, len(text))], "\n")
		end = start + max(utf16Len(span), 1)
	}

	message := []string{d.Message}
	for _, s := range d.Suggestions {
		message = append(message, "help: "+s.Message)
	}
	for _, n := range d.Notes {
		message = append(message, "note: "+n)
	}

	return protocol.Diagnostic{
		Range: protocol.Range{
			Start: protocol.Position{Line: line, Character: start},
			End:   protocol.Position{Line: line, Character: end},
		},
		Severity: ptrSeverity(protocol.DiagnosticSeverityError),
		Code:     &protocol.IntegerOrString{Value: d.Code},
		Source:   ptrString(diagnosticSource),
		Message:  strings.Join(message, "\n"),
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
