package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"

	runedecode "github.com/chronos-tachyon/go-runedecode"
)

var (
	offsetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))

	codeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	runeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))
)

// entry is one decode result, ready for display.
type entry struct {
	err    error
	offset int64
	value  rune
	size   int
}

// next decodes one entry. ok is false once the input is exhausted.
func next(d *runedecode.Decoder) (e entry, ok bool) {
	e.offset = d.Offset()
	r, err := d.DecodeNext()
	if runedecode.IsEndOfInput(err) {
		return e, false
	}
	e.value = r
	e.err = err
	e.size = int(d.Offset() - e.offset)
	return e, true
}

// format renders e as a single line, styled if styled is true.
func (e entry) format(styled bool) string {
	paint := func(s lipgloss.Style, text string) string {
		if styled {
			return s.Render(text)
		}
		return text
	}

	offset := paint(offsetStyle, fmt.Sprintf("%8d", e.offset))
	if e.err != nil {
		kind, _ := runedecode.KindOf(e.err)
		return offset + "  " + paint(errorStyle, fmt.Sprintf("error %s: %v", kind, e.err))
	}

	code := paint(codeStyle, fmt.Sprintf("U+%04X", e.value))
	return fmt.Sprintf("%s  %s  %d byte(s)  %s", offset, code, e.size, paint(runeStyle, strconv.QuoteRune(e.value)))
}

// dump writes one line per decoded rune. It stops at the first error, which
// it prints and returns.
func dump(w io.Writer, d *runedecode.Decoder, styled bool) error {
	for {
		e, ok := next(d)
		if !ok {
			return nil
		}
		if _, err := fmt.Fprintln(w, e.format(styled)); err != nil {
			return err
		}
		if e.err != nil {
			return e.err
		}
	}
}
