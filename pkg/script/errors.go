package script

import (
	"github.com/shapestone/shape-script/internal/scanner"
)

// Scan failure conditions, re-exported so callers can match them with
// errors.Is without importing internal packages.
var (
	// ErrUnexpectedEOF indicates the input ended where at least one more
	// character was required.
	ErrUnexpectedEOF = scanner.ErrUnexpectedEOF

	// ErrLeadingDigit indicates an identifier beginning with a digit.
	ErrLeadingDigit = scanner.ErrLeadingDigit

	// ErrNumericParse indicates a numeric literal that could not be parsed
	// as a floating-point value.
	ErrNumericParse = scanner.ErrNumericParse

	// ErrIndentationOverflow indicates an indentation run longer than 255
	// characters.
	ErrIndentationOverflow = scanner.ErrIndentationOverflow

	// ErrUnrecognizedChar indicates a character matching no lexical
	// category.
	ErrUnrecognizedChar = scanner.ErrUnrecognizedChar
)

// ScanError is the error type returned by Scan and its variants. It carries
// the row and column at which the scan stopped and wraps one of the sentinel
// conditions above; match it with errors.As.
type ScanError = scanner.ScanError
