package scanner

import (
	"errors"
	"fmt"
)

// Scan failure conditions. Every failure aborts the whole scan; the caller
// receives exactly one of these, wrapped in a *ScanError carrying the
// position at which the scan stopped.
var (
	// ErrUnexpectedEOF indicates a recognizer or the dispatcher was invoked
	// with no remaining characters where at least one was required.
	ErrUnexpectedEOF = errors.New("unexpected end of input")

	// ErrLeadingDigit indicates identifier recognition was attempted on text
	// beginning with a digit.
	ErrLeadingDigit = errors.New("identifier cannot start with a digit")

	// ErrNumericParse indicates the text captured by the number recognizer
	// could not be parsed as a floating-point value.
	ErrNumericParse = errors.New("invalid numeric literal")

	// ErrIndentationOverflow indicates an indentation run longer than 255
	// characters, the widest width a token can carry.
	ErrIndentationOverflow = errors.New("indentation exceeds 255 characters")

	// ErrUnrecognizedChar indicates a character that matches no lexical
	// category.
	ErrUnrecognizedChar = errors.New("unrecognized character")
)

// ScanError reports a scan failure with the position at which it occurred.
type ScanError struct {
	// Row is the line on which the scan stopped (1-indexed).
	Row int
	// Column is the column on which the scan stopped (1-indexed).
	Column int
	// Err is the underlying failure condition.
	Err error
}

// Error returns a formatted message with position information.
func (e *ScanError) Error() string {
	return fmt.Sprintf("scan error on line %d, column %d: %v", e.Row, e.Column, e.Err)
}

// Unwrap returns the underlying failure condition.
func (e *ScanError) Unwrap() error {
	return e.Err
}
