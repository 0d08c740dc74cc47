package errors

// Error codes for the stant toolchain.
//
// Error code ranges:
// E0100-E0199: Lexer errors
// E0200-E0299: Reserved for the parser
// E0900-E0999: Reserved for tooling errors

const (
	// E0100: No dispatch entry exists for a byte
	ErrorUnrecognizedByte = "E0100"

	// E0101: Quoted identifier without a closing backtick
	ErrorUnterminatedQuotedIdentifier = "E0101"

	// E0102: Quoted identifier with nothing between the backticks
	ErrorEmptyQuotedIdentifier = "E0102"

	// E0103: Non-ASCII or invalid UTF-8 input
	ErrorUnsupportedCharacter = "E0103"

	// E0900: Source could not be read
	ErrorUnreadableSource = "E0900"
)

// GetErrorDescription returns a human-readable description of the error code
func GetErrorDescription(code string) string {
	switch code {
	case ErrorUnrecognizedByte:
		return "Byte does not start any token and was skipped"
	case ErrorUnterminatedQuotedIdentifier:
		return "Quoted identifier is missing its closing backtick"
	case ErrorEmptyQuotedIdentifier:
		return "Quoted identifier has no name between the backticks"
	case ErrorUnsupportedCharacter:
		return "Only ASCII source text is supported"
	case ErrorUnreadableSource:
		return "Source file could not be read"
	default:
		return "Unknown error"
	}
}
