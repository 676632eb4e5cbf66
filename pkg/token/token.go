// Package token defines the lexical tokens produced by scanning Shape script
// notation. It is plain data: the token kinds, their payloads, and the
// positioned Token record form the contract between the scanner and any
// downstream consumer (parser, formatter, tooling).
package token

import "fmt"

// Kind identifies the lexical category of a token.
//
// The set is closed: four payload-carrying kinds (Identifier, Number,
// QuotedString, Indentation) and fifteen payload-less single-character
// punctuation and operator kinds.
type Kind int

const (
	// Invalid is the zero value. The scanner never emits it; a scan either
	// produces well-formed tokens or fails as a whole.
	Invalid Kind = iota

	// Identifier is an alphanumeric-or-underscore run that does not start
	// with a digit. Payload: Text.
	Identifier
	// Number is a decimal literal with at most one decimal point.
	// Payload: Value.
	Number
	// QuotedString is the text between two double quotes, exclusive of the
	// quotes, with no escape processing. Payload: Text.
	QuotedString
	// Indentation is the whitespace run that begins a new line, including
	// the newline that triggered it. Payload: Width.
	Indentation

	// Single-character punctuation and operators. No payload.
	Asterisk     // *
	Equals       // =
	Plus         // +
	Slash        // /
	LessThan     // <
	GreaterThan  // >
	Minus        // -
	Colon        // :
	At           // @
	Dot          // .
	CloseParen   // )
	CloseSquare  // ]
	OpenParen    // (
	OpenSquare   // [
	Semicolon    // ;
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Invalid:
		return "Invalid"
	case Identifier:
		return "Identifier"
	case Number:
		return "Number"
	case QuotedString:
		return "QuotedString"
	case Indentation:
		return "Indentation"
	case Asterisk:
		return "Asterisk"
	case Equals:
		return "Equals"
	case Plus:
		return "Plus"
	case Slash:
		return "Slash"
	case LessThan:
		return "LessThan"
	case GreaterThan:
		return "GreaterThan"
	case Minus:
		return "Minus"
	case Colon:
		return "Colon"
	case At:
		return "At"
	case Dot:
		return "Dot"
	case CloseParen:
		return "CloseParen"
	case CloseSquare:
		return "CloseSquare"
	case OpenParen:
		return "OpenParen"
	case OpenSquare:
		return "OpenSquare"
	case Semicolon:
		return "Semicolon"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is a single positioned lexical unit.
//
// ColStart and ColEnd are 1-indexed and half-open over the byte span the
// token occupies on its row; Row is a 1-indexed line counter. Tokens are
// created once by the scanner and never mutated.
type Token struct {
	Kind Kind

	// Text holds the Identifier or QuotedString payload.
	Text string
	// Value holds the Number payload.
	Value float64
	// Width holds the Indentation payload: the length of the whitespace run,
	// capped at 255 by the scanner.
	Width uint8

	ColStart int
	ColEnd   int
	Row      int
}

// String returns a readable form of the token for debugging and error
// messages, e.g. `Identifier(Foo_bar) at 1:1-8`.
func (t Token) String() string {
	pos := fmt.Sprintf("%d:%d-%d", t.Row, t.ColStart, t.ColEnd)
	switch t.Kind {
	case Identifier:
		return fmt.Sprintf("Identifier(%s) at %s", t.Text, pos)
	case Number:
		return fmt.Sprintf("Number(%g) at %s", t.Value, pos)
	case QuotedString:
		return fmt.Sprintf("QuotedString(%q) at %s", t.Text, pos)
	case Indentation:
		return fmt.Sprintf("Indentation(%d) at %s", t.Width, pos)
	default:
		return fmt.Sprintf("%s at %s", t.Kind, pos)
	}
}
