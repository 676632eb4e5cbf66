// Package scanner implements lexical scanning for Shape script notation.
//
// The engine is a single-pass maximal-munch scanner over the raw source
// string. Each recognizer consumes the longest run of characters belonging to
// its category and reports the number of bytes it read; the driver in scan.go
// stitches the recognized spans into positioned tokens.
//
// Character classification is pure: predicates over a single rune backed by
// the unicode tables, with no scanner state involved.
package scanner

import (
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"

	"github.com/shapestone/shape-script/pkg/token"
)

// takeWhile consumes the longest prefix of input whose characters all satisfy
// pred, returning the consumed text and its length in bytes.
//
// The only failure is calling it on empty input. A zero-length match is not
// an error; callers that cannot accept one must check for it themselves.
// The scan never looks past the first character that fails pred.
func takeWhile(input string, pred func(rune) bool) (string, int, error) {
	if input == "" {
		return "", 0, ErrUnexpectedEOF
	}

	end := len(input)
	for i, r := range input {
		if !pred(r) {
			end = i
			break
		}
	}

	return input[:end], end, nil
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isInlineSpace reports whitespace that may separate tokens within a line.
// A newline is never inline: it starts an indentation run instead.
func isInlineSpace(r rune) bool {
	return r != '\n' && unicode.IsSpace(r)
}

// scanIdentifier recognizes an alphanumeric-or-underscore run.
//
// The first character must not be a digit; the dispatcher only routes here
// when it is a letter or underscore, but direct callers get the same check.
func scanIdentifier(input string) (token.Token, int, error) {
	if input == "" {
		return token.Token{}, 0, ErrUnexpectedEOF
	}
	if first, _ := utf8.DecodeRuneInString(input); unicode.IsDigit(first) {
		return token.Token{}, 0, ErrLeadingDigit
	}

	got, n, err := takeWhile(input, isIdentRune)
	if err != nil {
		return token.Token{}, 0, err
	}
	if n == 0 {
		first, _ := utf8.DecodeRuneInString(input)
		return token.Token{}, 0, fmt.Errorf("%w: %q cannot start an identifier", ErrUnrecognizedChar, first)
	}

	return token.Token{Kind: token.Identifier, Text: got}, n, nil
}

// scanNumber recognizes a decimal literal with at most one decimal point.
// Once a dot has been consumed, a second dot ends the run: "12.3.456" yields
// 12.3 over four bytes, leaving ".456" for subsequent scanning.
func scanNumber(input string) (token.Token, int, error) {
	dotSeen := false
	got, n, err := takeWhile(input, func(r rune) bool {
		if unicode.IsDigit(r) {
			return true
		}
		if r == '.' && !dotSeen {
			dotSeen = true
			return true
		}
		return false
	})
	if err != nil {
		return token.Token{}, 0, err
	}

	value, perr := strconv.ParseFloat(got, 64)
	if perr != nil {
		return token.Token{}, 0, fmt.Errorf("%w: %q", ErrNumericParse, got)
	}

	return token.Token{Kind: token.Number, Value: value}, n, nil
}

// scanQuotedString recognizes a double-quoted string. The payload excludes
// the quotes; the consumed length includes both. There is no escape
// processing, so a quote cannot appear inside the string. A quote with no
// closing quote before end of input fails with ErrUnexpectedEOF.
func scanQuotedString(input string) (token.Token, int, error) {
	if input == "" {
		return token.Token{}, 0, ErrUnexpectedEOF
	}

	// input[0] is the opening quote; the dispatcher guarantees it.
	inner, n, err := takeWhile(input[1:], func(r rune) bool { return r != '"' })
	if err != nil {
		return token.Token{}, 0, fmt.Errorf("unterminated string: %w", ErrUnexpectedEOF)
	}
	if 1+n >= len(input) {
		return token.Token{}, 0, fmt.Errorf("unterminated string: %w", ErrUnexpectedEOF)
	}

	return token.Token{Kind: token.QuotedString, Text: inner}, n + 2, nil
}

// skipWhitespace returns how many bytes of inline whitespace precede the next
// token. It is applied only between tokens on the same line and never
// consumes a newline; a newline hands control to the indentation recognizer.
func skipWhitespace(input string) int {
	if input == "" {
		return 0
	}
	if first, _ := utf8.DecodeRuneInString(input); !isInlineSpace(first) {
		return 0
	}

	_, n, err := takeWhile(input, isInlineSpace)
	if err != nil {
		return 0
	}
	return n
}

// captureIndentation recognizes the whitespace run that begins a new line,
// including the newline that triggered it and any further spaces, tabs, or
// newlines. The run length is narrowed to uint8; longer runs fail rather
// than silently widen, since layout-sensitive parsing depends on the bound.
func captureIndentation(input string) (token.Token, int, error) {
	_, n, err := takeWhile(input, unicode.IsSpace)
	if err != nil {
		n = 0
	}

	if n > 255 {
		return token.Token{}, 0, fmt.Errorf("%w: run of %d", ErrIndentationOverflow, n)
	}

	return token.Token{Kind: token.Indentation, Width: uint8(n)}, n, nil
}

// punctKind maps a single-character punctuation or operator to its kind.
func punctKind(r rune) (token.Kind, bool) {
	switch r {
	case '*':
		return token.Asterisk, true
	case '=':
		return token.Equals, true
	case '+':
		return token.Plus, true
	case '/':
		return token.Slash, true
	case '<':
		return token.LessThan, true
	case '>':
		return token.GreaterThan, true
	case '-':
		return token.Minus, true
	case ':':
		return token.Colon, true
	case '@':
		return token.At, true
	case '.':
		return token.Dot, true
	case ')':
		return token.CloseParen, true
	case ']':
		return token.CloseSquare, true
	case '(':
		return token.OpenParen, true
	case '[':
		return token.OpenSquare, true
	case ';':
		return token.Semicolon, true
	}
	return token.Invalid, false
}

// scanToken inspects the next character and routes to the matching
// recognizer, returning the recognized token (without position) and the
// number of bytes consumed.
func scanToken(input string) (token.Token, int, error) {
	if input == "" {
		return token.Token{}, 0, ErrUnexpectedEOF
	}
	next, _ := utf8.DecodeRuneInString(input)

	if kind, ok := punctKind(next); ok {
		return token.Token{Kind: kind}, 1, nil
	}

	switch {
	case next == '\n':
		return captureIndentation(input)
	case next == '"':
		return scanQuotedString(input)
	case unicode.IsDigit(next):
		return scanNumber(input)
	case next == '_' || unicode.IsLetter(next):
		return scanIdentifier(input)
	}

	return token.Token{}, 0, fmt.Errorf("%w: %q", ErrUnrecognizedChar, next)
}
