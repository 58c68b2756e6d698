package runedecode

import (
	"fmt"
)

// TabWidth is the distance between tab stops used by Position.Advance.
const TabWidth = 8

// Position is a location within decoded text.
type Position struct {
	Offset     int64 // byte offset, starting at 0
	Line       int   // line number, starting at 1
	Column     int   // column number, starting at 1
	SkipNextLF bool  // last rune was '\r'; a following '\n' ends no line
}

// MakePosition returns the Position for the start of the input.
func MakePosition() Position {
	return Position{Line: 1, Column: 1}
}

// Reset sets this position to the start of the input.
func (pos *Position) Reset() {
	*pos = MakePosition()
}

// Advance moves the position past ch, which was encoded in size bytes.
//
// "\r", "\n" and "\r\n" each end one line. A tab advances to the next tab
// stop.
func (pos *Position) Advance(ch rune, size int) {
	if size < 0 {
		panic("negative size")
	}
	if size == 0 {
		return
	}

	pos.Offset += int64(size)
	skip := pos.SkipNextLF
	pos.SkipNextLF = false

	switch ch {
	case '\r':
		pos.Line++
		pos.Column = 1
		pos.SkipNextLF = true
	case '\n':
		if !skip {
			pos.Line++
			pos.Column = 1
		}
	case '\t':
		pos.Column += TabWidth - (pos.Column-1)%TabWidth
	default:
		pos.Column++
	}
}

func (pos Position) String() string {
	return fmt.Sprintf("%d:%d (byte offset %d)", pos.Line, pos.Column, pos.Offset)
}
