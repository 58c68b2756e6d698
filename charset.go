package runedecode

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Charset is the interface for the supported character encodings.
type Charset interface {
	// Name returns the name of the charset.
	Name() string

	// Max returns the maximum number of bytes per rune.
	Max() int

	// SequenceLen returns the total length of the sequence introduced by
	// lead, or an error if lead cannot start a sequence.
	SequenceLen(lead byte) (int, error)

	// Decode converts one complete sequence into a rune. len(seq) is the
	// value SequenceLen returned for seq[0].
	Decode(seq []byte) (rune, error)
}

// UTF8Charset implements Charset for UTF-8.
type UTF8Charset struct{}

// ASCIICharset implements Charset for 7-bit ASCII.
type ASCIICharset struct{}

var (
	_ Charset = UTF8Charset{}
	_ Charset = ASCIICharset{}
)

// UTF8 and ASCII are the two supported charsets.
var (
	UTF8  Charset = UTF8Charset{}
	ASCII Charset = ASCIICharset{}
)

// Name fulfills the Charset interface.
func (UTF8Charset) Name() string { return "utf-8" }

// Max fulfills the Charset interface.
func (UTF8Charset) Max() int { return utf8.UTFMax }

// SequenceLen fulfills the Charset interface.
func (UTF8Charset) SequenceLen(lead byte) (int, error) {
	c := Classify(lead)
	if c == Unrecognised {
		return 0, invalidByteSequence(-1, fmt.Sprintf("unrecognised lead byte 0x%02x", lead))
	}
	return c.Len(), nil
}

// Decode fulfills the Charset interface.
//
// Triple sequences in the surrogate band and Quad sequences above U+10FFFF
// are rejected. Overlong encodings are accepted, and continuation bytes are
// masked rather than checked.
func (UTF8Charset) Decode(seq []byte) (rune, error) {
	c := Classify(seq[0])
	if c == Unrecognised || len(seq) != c.Len() {
		return 0, invalidByteSequence(-1, fmt.Sprintf("malformed %d-byte sequence % x", len(seq), seq))
	}

	v := assemble(c, seq)
	switch c {
	case Triple:
		if v >= surrogateMin && v <= surrogateMax {
			return 0, invalidByteSequence(-1, fmt.Sprintf("surrogate U+%04X", v))
		}
	case Quad:
		if v > maxRune {
			return 0, invalidByteSequence(-1, fmt.Sprintf("value 0x%X exceeds U+10FFFF", v))
		}
	}
	return toRune(v)
}

// toRune converts v to a rune, refusing anything that is not a Unicode
// scalar value.
func toRune(v uint32) (rune, error) {
	r := rune(v)
	if v > maxRune || !utf8.ValidRune(r) {
		return 0, invalidByteSequence(-1, fmt.Sprintf("0x%X is not a Unicode scalar value", v))
	}
	return r, nil
}

// Name fulfills the Charset interface.
func (ASCIICharset) Name() string { return "ascii" }

// Max fulfills the Charset interface.
func (ASCIICharset) Max() int { return 1 }

// SequenceLen fulfills the Charset interface.
func (ASCIICharset) SequenceLen(lead byte) (int, error) { return 1, nil }

// Decode fulfills the Charset interface.
func (ASCIICharset) Decode(seq []byte) (rune, error) {
	b := seq[0]
	if b > mask1 {
		return 0, outOfRange(-1, b)
	}
	return rune(b), nil
}

// Mode selects the decoding mode of a Decoder.
type Mode uint8

const (
	ModeUTF8 Mode = iota
	ModeASCII
)

// Charset returns the Charset implementing the mode.
func (m Mode) Charset() Charset {
	switch m {
	case ModeASCII:
		return ASCII
	default:
		return UTF8
	}
}

func (m Mode) String() string {
	return m.Charset().Name()
}

// ParseMode parses a mode name as accepted on command lines.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(s) {
	case "utf-8", "utf8", "":
		return ModeUTF8, nil
	case "ascii", "us-ascii":
		return ModeASCII, nil
	default:
		return 0, fmt.Errorf("unknown mode %q", s)
	}
}
