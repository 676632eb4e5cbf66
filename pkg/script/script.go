// Package script provides lexical scanning for Shape script notation.
//
// Script notation is a small indentation-sensitive language: identifiers,
// decimal numbers, double-quoted strings, fifteen single-character
// punctuation marks, and synthetic indentation tokens that carry the width of
// the whitespace run beginning each line. Scanning is eager: the full source
// is converted into an ordered sequence of positioned tokens, ready for a
// downstream parser.
//
// # Thread Safety
//
// All functions in this package are safe for concurrent use by multiple
// goroutines. Each call scans with its own cursor and shares no mutable
// state; scanning is referentially transparent given identical input.
//
// # Scanning APIs
//
// The package provides three scanning functions:
//
//   - Scan(string) - scans source already in memory as a string
//   - ScanReader(io.Reader) - reads the full source from any io.Reader
//   - ScanStream(tokenizer.Stream) - reads from a pre-configured shape-core stream
//
// # Example usage with Scan:
//
//	tokens, err := script.Scan("width = 320.5")
//	if err != nil {
//	    // handle error
//	}
//	for _, tok := range tokens {
//	    fmt.Println(tok)
//	}
//
// # Error handling
//
// A scan either yields the complete token sequence or a single terminal
// error; there is no recovery or partial result. Errors are *ScanError
// values carrying the row and column at which the scan stopped, wrapping one
// of the package's sentinel conditions:
//
//	tokens, err := script.Scan(src)
//	if errors.Is(err, script.ErrUnrecognizedChar) {
//	    var serr *script.ScanError
//	    errors.As(err, &serr)
//	    fmt.Printf("bad character at %d:%d\n", serr.Row, serr.Column)
//	}
package script

import (
	"io"

	"github.com/shapestone/shape-core/pkg/tokenizer"
	"github.com/shapestone/shape-script/internal/scanner"
	"github.com/shapestone/shape-script/pkg/token"
)

// Scan tokenizes source text into an ordered sequence of positioned tokens.
//
// Columns are 1-indexed, half-open byte spans on their row; rows are
// 1-indexed. Inline whitespace between tokens is skipped; the whitespace run
// beginning each line (including its newline) is captured as an Indentation
// token.
//
// Example:
//
//	tokens, err := script.Scan("title = \"Sign up\"")
//	// tokens[0] = Identifier(title) at 1:1-6
//	// tokens[1] = Equals at 1:7-8
//	// tokens[2] = QuotedString("Sign up") at 1:9-18
func Scan(input string) ([]token.Token, error) {
	return scanner.Scan(input)
}

// ScanReader tokenizes source read from an io.Reader.
//
// The reader is drained through shape-core's buffered stream layer and the
// resulting text is scanned eagerly; the token sequence for the whole source
// is returned at once.
//
// The reader can be any io.Reader implementation:
//   - os.File for reading from files
//   - strings.Reader for reading from strings
//   - bytes.Buffer for reading from byte slices
//
// Example:
//
//	file, err := os.Open("layout.shape")
//	if err != nil {
//	    // handle error
//	}
//	defer file.Close()
//
//	tokens, err := script.ScanReader(file)
func ScanReader(r io.Reader) ([]token.Token, error) {
	return ScanStream(tokenizer.NewStreamFromReader(r))
}

// ScanStream tokenizes source read from a pre-configured shape-core stream.
// This allows callers that already hold a tokenizer.Stream to reuse it.
func ScanStream(stream tokenizer.Stream) ([]token.Token, error) {
	input, err := readAll(stream)
	if err != nil {
		return nil, err
	}
	return scanner.Scan(input)
}

// Validate scans the source and reports the first lexical error, if any.
//
// Example:
//
//	if err := script.Validate(src); err != nil {
//	    fmt.Printf("invalid source: %v\n", err)
//	}
func Validate(input string) error {
	_, err := Scan(input)
	return err
}
