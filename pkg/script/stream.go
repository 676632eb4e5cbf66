package script

import (
	"bytes"
	"errors"
	"strings"

	"github.com/shapestone/shape-core/pkg/tokenizer"
)

// errShortRead indicates the stream stopped producing characters before
// reaching end of stream, which means the underlying reader failed.
var errShortRead = errors.New("read from stream failed before end of input")

// readAll drains a shape-core stream into a string.
//
// The scanner's column bookkeeping is byte-based, so the drain preserves the
// source byte-for-byte. When the stream exposes the ByteStream interface the
// bytes are copied directly; otherwise the rune-based fallback re-encodes
// each character.
func readAll(stream tokenizer.Stream) (string, error) {
	if byteStream, ok := stream.(tokenizer.ByteStream); ok {
		var buf bytes.Buffer
		for {
			b, ok := byteStream.PeekByte()
			if !ok {
				break
			}
			byteStream.NextByte()
			buf.WriteByte(b)
		}
		if !stream.IsEos() {
			return "", errShortRead
		}
		return buf.String(), nil
	}

	var sb strings.Builder
	for {
		r, ok := stream.PeekChar()
		if !ok {
			break
		}
		stream.NextChar()
		sb.WriteRune(r)
	}
	if !stream.IsEos() {
		return "", errShortRead
	}
	return sb.String(), nil
}
