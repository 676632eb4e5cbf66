//go:build go1.18
// +build go1.18

package scanner

import (
	"testing"

	"github.com/shapestone/shape-script/pkg/token"
)

// FuzzScan tests the scanner with random inputs to find edge cases and
// panics. Run with: go test -fuzz=FuzzScan -fuzztime=30s ./internal/scanner
func FuzzScan(f *testing.F) {
	seeds := []string{
		"",
		"F",
		"Foo_bar",
		"7Foo_bar",
		"12.3.456",
		"123.4asdfghj",
		`title = "Sign up"`,
		"\"",
		"\"unterminated",
		"foo\n  bar\n    baz",
		"a\n\n\nb",
		" \t\n\r123",
		"*=+/<>-:@.)](;[",
		"héllo wörld",
	}

	for _, s := range seeds {
		f.Add(s)
	}

	f.Fuzz(func(t *testing.T, input string) {
		// Scanning must never panic, regardless of input.
		tokens, err := Scan(input)
		if err != nil {
			return
		}

		// A successful scan is deterministic.
		again, err := Scan(input)
		if err != nil {
			t.Fatalf("rescan failed: %v", err)
		}
		if len(again) != len(tokens) {
			t.Fatalf("rescan produced %d tokens, first scan %d", len(again), len(tokens))
		}

		// Spans are well formed and rows never move backwards.
		row := 1
		for i, tok := range tokens {
			if tok.Kind == token.Invalid {
				t.Errorf("token %d: invalid kind emitted", i)
			}
			if tok.ColEnd < tok.ColStart || tok.ColStart < 1 {
				t.Errorf("token %d: malformed span %d-%d", i, tok.ColStart, tok.ColEnd)
			}
			if tok.Row < row {
				t.Errorf("token %d: row moved backwards (%d after %d)", i, tok.Row, row)
			}
			row = tok.Row
		}

		verifySpansAccountForInput(t, input, tokens)
	})
}
