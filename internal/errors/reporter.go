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

// Position is a 1-based line/column location plus the 0-based byte offset.
type Position struct {
	Line   int
	Column int
	Offset int
}

// CompilerError represents a structured error with suggestions and context
type CompilerError struct {
	Level       ErrorLevel
	Code        string       // Error code like E0100
	Message     string       // Primary error message
	Position    Position     // Location in source
	Length      int          // Length of the problematic region in bytes
	Suggestions []Suggestion // Suggested fixes
	Notes       []string     // Additional context notes
	HelpText    string       // Help text for the error
}

// Suggestion represents a suggested fix
type Suggestion struct {
	Message     string   // Description of the suggestion
	Replacement string   // Suggested replacement text (optional)
	Position    Position // Position to apply the fix (optional)
	Length      int      // Length of text to replace (optional)
}

// ErrorReporter renders diagnostics for one source file
type ErrorReporter struct {
	filename string
	lines    []string
}

// NewErrorReporter creates a new error reporter for a file
func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// Filename returns the file the reporter renders diagnostics for
func (er *ErrorReporter) Filename() string { return er.filename }

// FormatAll formats errors in order
func (er *ErrorReporter) FormatAll(errs []CompilerError) string {
	var b strings.Builder
	for _, err := range errs {
		b.WriteString(er.FormatError(err))
	}
	return b.String()
}

// FormatError formats a compiler error as a header, the offending line with
// its neighbours and a marker, followed by suggestions, notes and help.
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var out strings.Builder

	levelColor := levelColor(err.Level)
	bold := color.New(color.Bold).SprintFunc()
	dim := color.New(color.Faint).SprintFunc()
	bar := dim("│")

	// error[E0100]: message
	if err.Code != "" {
		fmt.Fprintf(&out, "%s[%s]: %s\n", levelColor(string(err.Level)), err.Code, err.Message)
	} else {
		fmt.Fprintf(&out, "%s: %s\n", levelColor(string(err.Level)), err.Message)
	}

	line := err.Position.Line
	width := lineNumberWidth(line + 1)
	indent := strings.Repeat(" ", width)

	fmt.Fprintf(&out, "%s %s %s:%d:%d\n", indent, dim("-->"), er.filename, line, err.Position.Column)
	fmt.Fprintf(&out, "%s %s\n", indent, bar)

	if line > 1 && line-1 <= len(er.lines) {
		fmt.Fprintf(&out, "%s %s %s\n", dim(fmt.Sprintf("%*d", width, line-1)), bar, er.lines[line-2])
	}

	if line > 0 && line <= len(er.lines) {
		content := er.lines[line-1]
		fmt.Fprintf(&out, "%s %s %s\n", bold(fmt.Sprintf("%*d", width, line)), bar, content)

		// The marker never runs past the end of the line.
		length := min(max(err.Length, 1), max(len(content)-err.Position.Column+1, 1))
		marker := strings.Repeat(" ", max(0, err.Position.Column-1)) + levelColor(strings.Repeat("^", length))
		fmt.Fprintf(&out, "%s %s %s\n", indent, bar, marker)
	}

	if line > 0 && line < len(er.lines) {
		fmt.Fprintf(&out, "%s %s %s\n", dim(fmt.Sprintf("%*d", width, line+1)), bar, er.lines[line])
	}

	if len(err.Suggestions) > 0 {
		cyan := color.New(color.FgCyan).SprintFunc()
		fmt.Fprintf(&out, "%s %s\n", indent, bar)

		for i, suggestion := range err.Suggestions {
			if i == 0 {
				fmt.Fprintf(&out, "%s %s %s: %s\n", indent, cyan("help"), cyan("try"), suggestion.Message)
			} else {
				fmt.Fprintf(&out, "%s %s %s\n", indent, cyan("    "), suggestion.Message)
			}

			if suggestion.Replacement != "" {
				replacement := strings.ReplaceAll(suggestion.Replacement, "\n", fmt.Sprintf("\n%s %s ", indent, bar))
				fmt.Fprintf(&out, "%s %s\n", indent, bar)
				fmt.Fprintf(&out, "%s %s %s\n", indent, cyan("│"), cyan(replacement))
			}
		}
	}

	noteColor := color.New(color.FgBlue).SprintFunc()
	for _, note := range err.Notes {
		fmt.Fprintf(&out, "%s %s %s %s\n", indent, bar, noteColor("note:"), note)
	}

	if err.HelpText != "" {
		helpColor := color.New(color.FgGreen).SprintFunc()
		fmt.Fprintf(&out, "%s %s %s %s\n", indent, bar, helpColor("help:"), err.HelpText)
	}

	if err.Code != "" {
		fmt.Fprintf(&out, "%s %s %s\n", indent, dim("="), dim(GetErrorDescription(err.Code)))
	}

	out.WriteString("\n")
	return out.String()
}

func levelColor(level ErrorLevel) func(...any) string {
	switch level {
	case Warning:
		return color.New(color.FgYellow, color.Bold).SprintFunc()
	case Note:
		return color.New(color.FgBlue, color.Bold).SprintFunc()
	case Help:
		return color.New(color.FgGreen, color.Bold).SprintFunc()
	default:
		return color.New(color.FgRed, color.Bold).SprintFunc()
	}
}

// lineNumberWidth keeps a minimum width of 3 for visual alignment
func lineNumberWidth(line int) int {
	return max(len(strconv.Itoa(line)), 3)
}
