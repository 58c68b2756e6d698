package runedecode

import (
	"testing"
)

func TestCharset_names(t *testing.T) {
	tests := []struct {
		mode Mode
		name string
		max  int
	}{
		{ModeUTF8, "utf-8", 4},
		{ModeASCII, "ascii", 1},
	}

	for _, tt := range tests {
		cs := tt.mode.Charset()
		if cs.Name() != tt.name || tt.mode.String() != tt.name {
			t.Errorf("%v: got name %q", tt.mode, cs.Name())
		}
		if cs.Max() != tt.max {
			t.Errorf("%v: got max %d, want %d", tt.mode, cs.Max(), tt.max)
		}
		d := NewBytes(nil, Options{Mode: tt.mode})
		if d.Charset() != cs {
			t.Errorf("%v: decoder uses %v", tt.mode, d.Charset().Name())
		}
	}
}

func TestParseMode(t *testing.T) {
	tests := []struct {
		in   string
		want Mode
		ok   bool
	}{
		{"", ModeUTF8, true},
		{"utf-8", ModeUTF8, true},
		{"UTF8", ModeUTF8, true},
		{"ascii", ModeASCII, true},
		{"US-ASCII", ModeASCII, true},
		{"latin-1", 0, false},
	}

	for _, tt := range tests {
		got, err := ParseMode(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseMode(%q): unexpected error state %v", tt.in, err)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseMode(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseStrategy(t *testing.T) {
	tests := []struct {
		in   string
		want Strategy
		ok   bool
	}{
		{"", Incremental, true},
		{"incremental", Incremental, true},
		{"Buffered", Buffered, true},
		{"eager", Buffered, true},
		{"mmap", 0, false},
	}

	for _, tt := range tests {
		got, err := ParseStrategy(tt.in)
		if (err == nil) != tt.ok {
			t.Errorf("ParseStrategy(%q): unexpected error state %v", tt.in, err)
			continue
		}
		if tt.ok && got != tt.want {
			t.Errorf("ParseStrategy(%q): got %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestUTF8Charset_Decode(t *testing.T) {
	tests := []struct {
		name string
		seq  []byte
		want rune
		kind Kind
	}{
		{"ascii", []byte{'A'}, 'A', ""},
		{"surrogate low", []byte{0xED, 0xA0, 0x80}, 0, KindInvalidByteSequence},
		{"surrogate high", []byte{0xED, 0xBF, 0xBF}, 0, KindInvalidByteSequence},
		{"below surrogates", []byte{0xED, 0x9F, 0xBF}, 0xD7FF, ""},
		{"above surrogates", []byte{0xEE, 0x80, 0x80}, 0xE000, ""},
		{"max", []byte{0xF4, 0x8F, 0xBF, 0xBF}, 0x10FFFF, ""},
		{"above max", []byte{0xF4, 0x90, 0x80, 0x80}, 0, KindInvalidByteSequence},
		{"short", []byte{0xE0, 0xA4}, 0, KindInvalidByteSequence},
		{"continuation lead", []byte{0x80}, 0, KindInvalidByteSequence},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := UTF8.Decode(tt.seq)
			if tt.kind != "" {
				if kind, _ := KindOf(err); kind != tt.kind {
					t.Fatalf("expected %s, got %q, %v", tt.kind, r, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if r != tt.want {
				t.Errorf("got U+%04X, want U+%04X", r, tt.want)
			}
		})
	}
}

func TestToRune(t *testing.T) {
	for _, v := range []uint32{0xD800, 0xDFFF, 0x110000, 0xFFFFFFFF} {
		if _, err := toRune(v); err == nil {
			t.Errorf("toRune(0x%X) succeeded", v)
		}
	}
	for _, v := range []uint32{0, 0x7F, 0xD7FF, 0xE000, 0x10FFFF} {
		if r, err := toRune(v); err != nil || r != rune(v) {
			t.Errorf("toRune(0x%X): got %q, %v", v, r, err)
		}
	}
}
