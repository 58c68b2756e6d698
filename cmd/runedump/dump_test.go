package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	runedecode "github.com/chronos-tachyon/go-runedecode"
)

func TestDump(t *testing.T) {
	var out bytes.Buffer
	d := runedecode.NewBytes([]byte("aह"), runedecode.Options{})
	if err := dump(&out, d, false); err != nil {
		t.Fatalf("dump: %v", err)
	}

	expected := "       0  U+0061  1 byte(s)  'a'\n" +
		"       1  U+0939  3 byte(s)  'ह'\n"
	if out.String() != expected {
		t.Errorf("expected:\n%s\ngot:\n%s", expected, out.String())
	}
}

func TestDump_stopsOnError(t *testing.T) {
	var out bytes.Buffer
	d := runedecode.NewBytes([]byte("ab\xffc"), runedecode.Options{})
	err := dump(&out, d, false)
	if !errors.Is(err, runedecode.ErrInvalidByteSequence) {
		t.Fatalf("expected invalid byte sequence, got %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(out.String(), "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %q", lines)
	}
	if !strings.Contains(lines[2], "error invalid_byte_sequence") {
		t.Errorf("unexpected error line %q", lines[2])
	}
}

func TestParseOptions(t *testing.T) {
	opts, err := parseOptions("ascii", "buffered")
	if err != nil {
		t.Fatal(err)
	}
	if opts.Mode != runedecode.ModeASCII || opts.Strategy != runedecode.Buffered {
		t.Errorf("unexpected options %+v", opts)
	}
	if _, err := parseOptions("ebcdic", ""); err == nil {
		t.Error("expected an error for an unknown mode")
	}
	if _, err := parseOptions("", "mmap"); err == nil {
		t.Error("expected an error for an unknown strategy")
	}
}

func TestInteractiveModel(t *testing.T) {
	m := newInteractiveModel(runedecode.Options{})
	for _, r := range "hé" {
		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	if len(m.entries) != 2 || m.entries[1].value != 'é' {
		t.Fatalf("unexpected entries %+v", m.entries)
	}

	m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.opts.Mode != runedecode.ModeASCII {
		t.Fatalf("tab did not switch mode")
	}
	if len(m.entries) != 2 || m.entries[1].err == nil {
		t.Fatalf("expected an out-of-range entry, got %+v", m.entries)
	}
	if !strings.Contains(m.View(), "ascii") {
		t.Error("view does not show the mode")
	}
}
