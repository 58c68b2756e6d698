package runedecode

import (
	"errors"
	"strconv"
	"strings"
)

// Kind categorizes a decoding failure.
type Kind string

const (
	// KindStreamFailure means the underlying byte source could not be read.
	KindStreamFailure Kind = "stream_failure"

	// KindInvalidByteSequence means bytes were read but do not form a valid
	// encoded sequence.
	KindInvalidByteSequence Kind = "invalid_byte_sequence"

	// KindEndOfInput means no more bytes are available.
	KindEndOfInput Kind = "end_of_input"

	// KindOutOfRange means a byte >= 0x80 was seen in ASCII mode.
	KindOutOfRange Kind = "out_of_range"
)

// Error is the error type returned by every decode operation.
type Error struct {
	Cause  error
	Kind   Kind
	Detail string
	Offset int64 // byte offset of the sequence that failed; -1 if unknown
}

// Sentinel errors for use with errors.Is. They match any *Error of the same
// Kind.
var (
	ErrStreamFailure       = &Error{Kind: KindStreamFailure, Offset: -1}
	ErrInvalidByteSequence = &Error{Kind: KindInvalidByteSequence, Offset: -1}
	ErrEndOfInput          = &Error{Kind: KindEndOfInput, Offset: -1}
	ErrOutOfRange          = &Error{Kind: KindOutOfRange, Offset: -1}
)

func (e *Error) Error() string {
	var b strings.Builder

	b.WriteByte('[')
	b.WriteString(string(e.Kind))
	b.WriteByte(']')

	if e.Offset >= 0 {
		b.WriteString(" at offset ")
		b.WriteString(strconv.FormatInt(e.Offset, 10))
	}

	if e.Detail != "" {
		b.WriteString(": ")
		b.WriteString(e.Detail)
	}

	if e.Cause != nil {
		b.WriteString(" (caused by: ")
		b.WriteString(e.Cause.Error())
		b.WriteByte(')')
	}

	return b.String()
}

// Unwrap returns the underlying I/O error, if any.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// KindOf returns the Kind of err if it is (or wraps) an *Error.
func KindOf(err error) (Kind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return "", false
}

// IsEndOfInput reports whether err signals a clean end of input.
func IsEndOfInput(err error) bool {
	return errors.Is(err, ErrEndOfInput)
}

func endOfInput(offset int64, detail string) *Error {
	if detail == "" {
		detail = "end of input reached"
	}
	return &Error{
		Kind:   KindEndOfInput,
		Offset: offset,
		Detail: detail,
	}
}

func streamFailure(offset int64, cause error) *Error {
	return &Error{
		Kind:   KindStreamFailure,
		Offset: offset,
		Detail: "failed to read input",
		Cause:  cause,
	}
}

func invalidByteSequence(offset int64, detail string) *Error {
	return &Error{
		Kind:   KindInvalidByteSequence,
		Offset: offset,
		Detail: detail,
	}
}

func outOfRange(offset int64, b byte) *Error {
	return &Error{
		Kind:   KindOutOfRange,
		Offset: offset,
		Detail: "non-ASCII byte detected: 0x" + strconv.FormatUint(uint64(b), 16),
	}
}
