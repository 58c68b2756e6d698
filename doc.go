// Package runedecode decodes a byte stream into runes one sequence at a
// time, without building strings, for use as the first stage of a lexer.
//
// A Decoder runs in one of two modes. ModeUTF8 decodes 1- to 4-byte UTF-8
// sequences, rejecting unrecognised lead bytes, surrogates and values above
// U+10FFFF with an InvalidByteSequence error. Overlong encodings are
// accepted. ModeASCII accepts only bytes below 0x80 and reports anything
// else as OutOfRange.
//
// Use DecodeNext when the reason decoding stopped matters:
//
//	d := runedecode.NewUTF8(r)
//	for {
//		ch, err := d.DecodeNext()
//		if runedecode.IsEndOfInput(err) {
//			break
//		}
//		if err != nil {
//			return err
//		}
//		handle(ch)
//	}
//
// Runes offers the same stream as an iter.Seq, but ends silently on any
// error; All reports the error that ended it. Scanner adds positions and
// one rune of lookahead for hand-written lexers.
package runedecode
