package runedecode

import (
	"io"
	"iter"
)

// Runes returns the decoded runes as a lazy, forward-only sequence. The
// sequence reads from the Decoder itself, so it cannot be restarted and
// ranging over it twice continues where the first range stopped.
//
// The sequence ends on the first error of any kind. A malformed byte
// sequence or a failed read therefore looks exactly like a clean end of
// input; callers that need to tell them apart should use All or
// DecodeNext instead.
func (d *Decoder) Runes() iter.Seq[rune] {
	return func(yield func(rune) bool) {
		for {
			r, err := d.DecodeNext()
			if err != nil {
				return
			}
			if !yield(r) {
				return
			}
		}
	}
}

// All is like Runes, but reports why the sequence ended: if decoding stops
// on anything other than the end of input, a final (0, err) pair is
// yielded.
func (d *Decoder) All() iter.Seq2[rune, error] {
	return func(yield func(rune, error) bool) {
		for {
			r, err := d.DecodeNext()
			if err != nil {
				if !IsEndOfInput(err) {
					yield(0, err)
				}
				return
			}
			if !yield(r, nil) {
				return
			}
		}
	}
}

// Count decodes r to the end and returns the number of runes. It stops at
// the first error other than the end of input and returns the count so far
// along with that error.
func Count(r io.Reader, o Options) (int, error) {
	d := New(r, o)
	n := 0
	for {
		_, err := d.DecodeNext()
		if IsEndOfInput(err) {
			return n, nil
		}
		if err != nil {
			return n, err
		}
		n++
	}
}
