package runedecode

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"go.uber.org/zap"
)

// Strategy selects how a Decoder pulls bytes from its reader.
type Strategy uint8

const (
	// Incremental pulls exactly the bytes each decode step needs.
	Incremental Strategy = iota

	// Buffered reads the whole input into memory on the first decode call
	// and decodes from that buffer.
	Buffered
)

func (s Strategy) String() string {
	switch s {
	case Buffered:
		return "buffered"
	default:
		return "incremental"
	}
}

// ParseStrategy parses a strategy name as accepted on command lines.
func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(s) {
	case "incremental", "":
		return Incremental, nil
	case "buffered", "eager":
		return Buffered, nil
	default:
		return 0, fmt.Errorf("unknown strategy %q", s)
	}
}

// maxEmptyReads bounds how many (0, nil) reads are tolerated in a row.
const maxEmptyReads = 100

// byteSource yields one byte at a time. It returns io.EOF when no more
// bytes are available and any other error when the read failed.
type byteSource interface {
	ReadByte() (byte, error)
}

// incrementalSource reads straight from the caller's reader.
type incrementalSource struct {
	r   io.Reader
	br  io.ByteReader
	one [1]byte
	eof bool
}

func newIncrementalSource(r io.Reader) *incrementalSource {
	src := &incrementalSource{r: r}
	if br, ok := r.(io.ByteReader); ok {
		src.br = br
	}
	return src
}

func (src *incrementalSource) ReadByte() (byte, error) {
	if src.eof {
		return 0, io.EOF
	}

	var b byte
	var err error
	if src.br != nil {
		b, err = src.br.ReadByte()
	} else {
		b, err = src.readOne()
	}
	if err == io.EOF {
		src.eof = true
	}
	return b, err
}

func (src *incrementalSource) readOne() (byte, error) {
	for i := 0; i < maxEmptyReads; i++ {
		n, err := src.r.Read(src.one[:])
		if n == 1 {
			return src.one[0], nil
		}
		if err != nil {
			return 0, err
		}
	}
	return 0, io.ErrNoProgress
}

// bufferedSource stages the whole input on first use.
type bufferedSource struct {
	r       io.Reader
	staging bytes.Buffer
	buf     []byte
	cursor  int
	ready   bool
	log     *zap.Logger
}

func newBufferedSource(r io.Reader, log *zap.Logger) *bufferedSource {
	return &bufferedSource{r: r, log: log}
}

// newStagedSource wraps an in-memory buffer that needs no staging.
func newStagedSource(p []byte, log *zap.Logger) *bufferedSource {
	return &bufferedSource{buf: p, ready: true, log: log}
}

// stage reads r to exhaustion. Bytes read before a failure are kept, so a
// later call resumes the bulk read where it stopped.
func (src *bufferedSource) stage() error {
	if _, err := src.staging.ReadFrom(src.r); err != nil {
		return err
	}
	src.buf = src.staging.Bytes()
	src.r = nil
	src.ready = true
	src.log.Debug("staged input", zap.Int("bytes", len(src.buf)))
	return nil
}

func (src *bufferedSource) ReadByte() (byte, error) {
	if !src.ready {
		if err := src.stage(); err != nil {
			return 0, err
		}
	}
	if src.cursor >= len(src.buf) {
		return 0, io.EOF
	}
	b := src.buf[src.cursor]
	src.cursor++
	return b, nil
}
