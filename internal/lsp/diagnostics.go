package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"quill/internal/diag"
	"quill/internal/parser"
	"quill/internal/report"
	"quill/internal/source"
)

// Collect runs a full parse over the document and converts both the fatal
// error, when there is one, and the advisory bag into LSP diagnostics.
// An empty slice clears previously published diagnostics on the client.
func Collect(src source.Source) []protocol.Diagnostic {
	bag := diag.NewBag()
	_, err := parser.ParseSource(src, bag)

	diagnostics := []protocol.Diagnostic{}

	for _, d := range bag.All() {
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    spanRange(d.Position.Line, d.Position.Column, 2),
			Severity: ptrSeverity(severityFor(d.Type.Level())),
			Source:   ptrString("quill"),
			Message:  d.Type.Message(),
		})
	}

	if err != nil {
		line, column, length := 1, 1, 1
		if pos, n, ok := report.Locate(err); ok {
			line, column, length = pos.Line, pos.Column, n
		}
		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range:    spanRange(line, column, length),
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Source:   ptrString("quill"),
			Message:  err.Error(),
		})
	}

	return diagnostics
}

// spanRange builds a single-line range from 1-based line/column coordinates.
func spanRange(line, column, length int) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{
			Line:      uint32(line - 1),
			Character: uint32(column - 1),
		},
		End: protocol.Position{
			Line:      uint32(line - 1),
			Character: uint32(column - 1 + length),
		},
	}
}

func severityFor(level diag.Level) protocol.DiagnosticSeverity {
	switch level {
	case diag.Error:
		return protocol.DiagnosticSeverityError
	case diag.Warning:
		return protocol.DiagnosticSeverityWarning
	case diag.Info:
		return protocol.DiagnosticSeverityInformation
	default:
		return protocol.DiagnosticSeverityHint
	}
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}

func ptrString(s string) *string {
	return &s
}
