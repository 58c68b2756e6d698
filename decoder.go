package runedecode

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"go.uber.org/zap"
)

// Options holds configurable parameters for a Decoder.
type Options struct {
	// Logger receives the decoder's debug output.
	//
	// Default is Logger().
	//
	Logger *zap.Logger

	// Mode selects UTF-8 or ASCII decoding.
	//
	// Default is ModeUTF8.
	//
	Mode Mode

	// Strategy selects how bytes are pulled from the reader.
	//
	// Default is Incremental.
	//
	Strategy Strategy
}

// Decoder turns a byte stream into runes, one complete sequence per call.
//
// A Decoder owns its source for its whole lifetime and has no internal
// locking; it must only be used by one goroutine at a time. Closing the
// underlying reader is left to the caller.
type Decoder struct {
	// src is the byte source chosen by the Strategy.
	src byteSource

	// cs is the Charset for the Mode.
	cs Charset

	strategy Strategy

	// pending holds the bytes of the sequence being decoded. They survive
	// a failed read so the next call can finish the same sequence.
	pending [utf8.UTFMax]byte

	// npending is the number of valid bytes in pending.
	npending int

	// need is the length of the pending sequence, known once its lead
	// byte has been classified.
	need int

	// offset counts the bytes consumed by completed decode calls.
	offset int64
}

// New constructs a Decoder reading from r.
func New(r io.Reader, o Options) *Decoder {
	log := o.Logger
	if log == nil {
		log = Logger()
	}

	d := &Decoder{
		cs:       o.Mode.Charset(),
		strategy: o.Strategy,
	}
	switch o.Strategy {
	case Buffered:
		d.src = newBufferedSource(r, log)
	default:
		d.src = newIncrementalSource(r)
	}
	return d
}

// NewBytes constructs a Decoder over an in-memory buffer. With the Buffered
// strategy p is used as the staging buffer directly and must not be
// modified while the Decoder is in use.
func NewBytes(p []byte, o Options) *Decoder {
	if o.Strategy != Buffered {
		return New(bytes.NewReader(p), o)
	}
	log := o.Logger
	if log == nil {
		log = Logger()
	}
	return &Decoder{
		src:      newStagedSource(p, log),
		cs:       o.Mode.Charset(),
		strategy: Buffered,
	}
}

// NewUTF8 is shorthand for New(r, Options{Mode: ModeUTF8}).
func NewUTF8(r io.Reader) *Decoder {
	return New(r, Options{Mode: ModeUTF8})
}

// NewASCII is shorthand for New(r, Options{Mode: ModeASCII}).
func NewASCII(r io.Reader) *Decoder {
	return New(r, Options{Mode: ModeASCII})
}

// Charset returns the Charset the Decoder decodes.
func (d *Decoder) Charset() Charset {
	return d.cs
}

// Strategy returns the Strategy the Decoder reads with.
func (d *Decoder) Strategy() Strategy {
	return d.strategy
}

// Offset returns the number of bytes consumed by completed decode calls,
// i.e. the offset of the next sequence to decode.
func (d *Decoder) Offset() int64 {
	return d.offset
}

// DecodeNext decodes the next rune.
//
// Every failure is an *Error. A call either consumes one complete sequence
// or fails; a sequence cut short by a read failure stays pending and is
// resumed by the next call. Unrecognised lead bytes and out-of-range values
// are consumed along with their sequence, and decoding goes on from the
// following byte. Once the input is exhausted every call returns an
// EndOfInput error without touching the reader again.
func (d *Decoder) DecodeNext() (rune, error) {
	if d.npending == 0 {
		b, err := d.src.ReadByte()
		if err != nil {
			return 0, d.readError(err, "")
		}
		d.pending[0] = b
		d.npending = 1

		n, err := d.cs.SequenceLen(b)
		if err != nil {
			return 0, d.reject(err)
		}
		d.need = n
	}

	for d.npending < d.need {
		b, err := d.src.ReadByte()
		if err != nil {
			return 0, d.readError(err, fmt.Sprintf("truncated %d-byte sequence", d.need))
		}
		d.pending[d.npending] = b
		d.npending++
	}

	r, err := d.cs.Decode(d.pending[:d.need])
	if err != nil {
		return 0, d.reject(err)
	}
	d.consume()
	return r, nil
}

func (d *Decoder) consume() {
	d.offset += int64(d.npending)
	d.npending = 0
	d.need = 0
}

// reject consumes the pending bytes and returns err located at their
// offset.
func (d *Decoder) reject(err error) error {
	offset := d.offset
	d.consume()

	var e *Error
	if errors.As(err, &e) {
		located := *e
		located.Offset = offset
		return &located
	}
	return invalidByteSequence(offset, err.Error())
}

func (d *Decoder) readError(err error, detail string) error {
	if err == io.EOF {
		return endOfInput(d.offset, detail)
	}
	return streamFailure(d.offset, err)
}
