package scanner

import (
	"github.com/shapestone/shape-script/pkg/token"
)

// Scan tokenizes the entire source eagerly and returns the ordered token
// sequence.
//
// The driver alternates between two modes. At the start of a line no
// whitespace is skipped, so a leading run is captured by the indentation
// recognizer; mid-line, inline whitespace between tokens is skipped and
// accounted for in the column bookkeeping. An indentation token switches the
// driver back to line-start mode, advances the row, and resets the column.
//
// Any recognizer failure aborts the whole scan: the error is a *ScanError
// wrapping the failure condition, and no partial token sequence is returned.
func Scan(input string) ([]token.Token, error) {
	tokens := make([]token.Token, 0, 16)

	remaining := input
	row := 1
	colStart := 1
	lineStart := true

	for {
		if lineStart {
			// The flag is consumed for this iteration only.
			lineStart = false
		} else {
			ws := skipWhitespace(remaining)
			colStart += ws
			remaining = remaining[ws:]
		}

		if remaining == "" {
			return tokens, nil
		}

		tok, lenRead, err := scanToken(remaining)
		if err != nil {
			return nil, &ScanError{Row: row, Column: colStart, Err: err}
		}

		if tok.Kind == token.Indentation {
			lineStart = true
			row++
			colStart = 1
		}
		colEnd := colStart + lenRead

		tok.ColStart = colStart
		tok.ColEnd = colEnd
		tok.Row = row
		tokens = append(tokens, tok)

		colStart = colEnd
		remaining = remaining[lenRead:]
	}
}
