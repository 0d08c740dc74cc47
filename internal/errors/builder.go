package errors

// DiagnosticBuilder provides a fluent interface for creating diagnostics with suggestions
type DiagnosticBuilder struct {
	err CompilerError
}

// NewError creates a new error builder
func NewError(code, message string, pos Position) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// NewWarning creates a new warning builder
func NewWarning(code, message string, pos Position) *DiagnosticBuilder {
	b := NewError(code, message, pos)
	b.err.Level = Warning
	return b
}

// WithLength sets the length of the error span
func (b *DiagnosticBuilder) WithLength(length int) *DiagnosticBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *DiagnosticBuilder) WithSuggestion(message string) *DiagnosticBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text
func (b *DiagnosticBuilder) WithReplacement(message, replacement string, pos Position, length int) *DiagnosticBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
		Position:    pos,
		Length:      length,
	})
	return b
}

// WithNote adds a note to the error
func (b *DiagnosticBuilder) WithNote(note string) *DiagnosticBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp sets help text for the error
func (b *DiagnosticBuilder) WithHelp(help string) *DiagnosticBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the constructed error
func (b *DiagnosticBuilder) Build() CompilerError {
	return b.err
}
