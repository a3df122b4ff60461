package types

import (
	"strings"
	"unicode/utf8"
)

// TranslatedMessage holds one output codepoint per input codepoint. Values
// lie in [0, MaxCodepoint] but may include surrogates, which UTF-8 cannot
// encode.
type TranslatedMessage []rune

// Representable reports whether every codepoint can be encoded as UTF-8.
func (m TranslatedMessage) Representable() bool {
	for _, r := range m {
		if !utf8.ValidRune(r) {
			return false
		}
	}
	return true
}

// String renders the message as UTF-8, replacing unencodable codepoints
// with U+FFFD.
func (m TranslatedMessage) String() string {
	var b strings.Builder
	b.Grow(len(m))
	for _, r := range m {
		b.WriteRune(r)
	}
	return b.String()
}

// Translation is the outcome of one translate call. Saved is true only when
// an output sink accepted Message; SaveErr holds the sink's error otherwise.
type Translation struct {
	Message TranslatedMessage
	Saved   bool
	SaveErr error
}
