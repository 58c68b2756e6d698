package runedecode

// Scanner is a lexer-facing view of a Decoder. It tracks the Position of
// every rune and offers one rune of lookahead through Unread.
//
// A Scanner stops at the first decode error; Err reports it.
type Scanner struct {
	// d is the Decoder to read from.
	d *Decoder

	// pos is the position of the next rune to be decoded.
	pos Position

	// curr is the rune most recently delivered by Advance.
	curr scannedRune

	// started is set by the first Advance.
	started bool

	// unread means curr is delivered again by the next Advance.
	unread bool
}

// scannedRune is a single rune read from the Decoder, or the error that
// ended the input.
type scannedRune struct {
	pos   Position
	value rune
	size  int
	err   error
}

// NewScanner constructs a Scanner reading from d.
func NewScanner(d *Decoder) *Scanner {
	return &Scanner{d: d, pos: MakePosition()}
}

// Advance moves forward by one rune, returning true if a rune is available
// or false if decoding stopped, either at the end of input or on an error.
func (s *Scanner) Advance() bool {
	if s.unread {
		s.unread = false
		return s.curr.err == nil
	}
	if s.started && s.curr.err != nil {
		return false
	}
	s.started = true

	before := s.d.Offset()
	r, err := s.d.DecodeNext()
	if err != nil {
		s.curr = scannedRune{pos: s.pos, err: err}
		return false
	}

	size := int(s.d.Offset() - before)
	s.curr = scannedRune{pos: s.pos, value: r, size: size}
	s.pos.Advance(r, size)
	return true
}

// Unread steps back one rune, so the next Advance delivers the current rune
// again. Only one step back is possible; calling Unread twice without an
// Advance in between panics.
func (s *Scanner) Unread() {
	if !s.started {
		panic("Unread called before Advance")
	}
	if s.unread {
		panic("Unread called twice")
	}
	s.unread = true
}

// Peek returns the next rune without consuming it.
func (s *Scanner) Peek() (rune, bool) {
	ok := s.Advance()
	s.Unread()
	return s.curr.value, ok
}

// Rune returns the rune at the current position.
func (s *Scanner) Rune() rune {
	return s.curr.value
}

// Size returns the number of bytes the current rune occupied in the input.
func (s *Scanner) Size() int {
	return s.curr.size
}

// Position returns the position of the current rune.
func (s *Scanner) Position() Position {
	return s.curr.pos
}

// Err returns the error that stopped the Scanner, or nil if it stopped at
// the end of input.
func (s *Scanner) Err() error {
	if IsEndOfInput(s.curr.err) {
		return nil
	}
	return s.curr.err
}

// Take consumes one rune, but only if it matches pred.
func (s *Scanner) Take(pred func(rune) bool) (rune, bool) {
	if s.Advance() && pred(s.curr.value) {
		return s.curr.value, true
	}
	s.Unread()
	return 0, false
}

// TakeWhile consumes zero or more runes, advancing so long as pred returns
// true for each one, and appends them to out.
//
// If max is negative, then the number of runes that can match is unbounded;
// otherwise, max is the upper limit on the number of runes matched.
//
func (s *Scanner) TakeWhile(max int, out []rune, pred func(rune) bool) []rune {
	count := 0
	for max < 0 || count < max {
		if !s.Advance() || !pred(s.curr.value) {
			s.Unread()
			break
		}
		count++
		out = append(out, s.curr.value)
	}
	return out
}

// TakeUntil consumes zero or more runes, advancing until pred returns true
// for a rune.
//
// If max is negative, then the number of runes that can match is unbounded;
// otherwise, max is the upper limit on the number of runes matched.
//
func (s *Scanner) TakeUntil(max int, out []rune, pred func(rune) bool) []rune {
	return s.TakeWhile(max, out, func(r rune) bool { return !pred(r) })
}
