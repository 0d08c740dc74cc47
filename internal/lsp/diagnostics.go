package lsp

import (
	protocol "github.com/tliron/glsp/protocol_3_16"

	"stant/internal/errors"
	"stant/internal/lexer"
)

// ConvertScanErrors transforms lexer diagnostics into LSP diagnostics for IDE display.
func ConvertScanErrors(source string, scanErrors []lexer.ScanError) []protocol.Diagnostic {
	diagnostics := make([]protocol.Diagnostic, 0, len(scanErrors))

	for _, scanErr := range scanErrors {
		compilerErr := errors.FromScanError(source, scanErr)

		diagnostics = append(diagnostics, protocol.Diagnostic{
			Range: protocol.Range{
				Start: positionAt(source, scanErr.Span.Start),
				End:   positionAt(source, scanErr.Span.End),
			},
			Severity: ptrSeverity(protocol.DiagnosticSeverityError),
			Code:     &protocol.IntegerOrString{Value: compilerErr.Code},
			Source:   ptrString("stant-lexer"),
			Message:  compilerErr.Message,
		})
	}

	return diagnostics
}

func ptrSeverity(s protocol.DiagnosticSeverity) *protocol.DiagnosticSeverity {
	return &s
}
