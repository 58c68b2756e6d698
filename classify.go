package runedecode

// Class identifies the kind of UTF-8 sequence introduced by a lead byte.
//
//	Byte-0    Byte-1    Byte-2    Byte-3    Class
//	0xxxxxxx                                Single
//	110yyyyy  10xxxxxx                      Pair
//	1110zzzz  10yyyyyy  10xxxxxx            Triple
//	11110uuu  10uuzzzz  10yyyyyy  10xxxxxx  Quad
//
// Any other lead byte (a stray continuation byte, or 11111xxx) is
// Unrecognised.
type Class uint8

const (
	Unrecognised Class = iota
	Single
	Pair
	Triple
	Quad
)

const (
	mask1 = 0x7F // 0111 1111
	mask2 = 0x1F // 0001 1111
	mask3 = 0x0F // 0000 1111
	mask4 = 0x07 // 0000 0111
	maskx = 0x3F // 0011 1111

	maxRune      = 0x10FFFF
	surrogateMin = 0xD800
	surrogateMax = 0xDFFF
)

// Classify returns the Class of the sequence that starts with lead.
func Classify(lead byte) Class {
	switch {
	case lead>>7 == 0x00:
		return Single
	case lead>>5 == 0x06:
		return Pair
	case lead>>4 == 0x0E:
		return Triple
	case lead>>3 == 0x1E:
		return Quad
	default:
		return Unrecognised
	}
}

// Len returns the total number of bytes in a sequence of this class, or 0
// for Unrecognised.
func (c Class) Len() int {
	switch c {
	case Single:
		return 1
	case Pair:
		return 2
	case Triple:
		return 3
	case Quad:
		return 4
	default:
		return 0
	}
}

func (c Class) String() string {
	switch c {
	case Single:
		return "single"
	case Pair:
		return "pair"
	case Triple:
		return "triple"
	case Quad:
		return "quad"
	default:
		return "unrecognised"
	}
}

// assemble packs a complete sequence of class c into its scalar value,
// most significant bits first. len(seq) must equal c.Len().
func assemble(c Class, seq []byte) uint32 {
	switch c {
	case Single:
		return uint32(seq[0]) & mask1
	case Pair:
		return (uint32(seq[0])&mask2)<<6 |
			uint32(seq[1])&maskx
	case Triple:
		return (uint32(seq[0])&mask3)<<12 |
			(uint32(seq[1])&maskx)<<6 |
			uint32(seq[2])&maskx
	case Quad:
		return (uint32(seq[0])&mask4)<<18 |
			(uint32(seq[1])&maskx)<<12 |
			(uint32(seq[2])&maskx)<<6 |
			uint32(seq[3])&maskx
	default:
		panic("assemble: unrecognised sequence")
	}
}
