package streams

import (
	"bufio"
	"io"
	"iter"

	"github.com/ParkSnoopy/base116-cli/internal/util/buffers"
	"github.com/pkg/errors"
)

// ByteSource turns a reader into a lazy byte sequence. A read error ends the sequence; it is available
// through Err afterwards.
type ByteSource struct {
	r   *bufio.Reader
	err error
}

func NewByteSource(r io.Reader) *ByteSource {
	return &ByteSource{
		r: bufio.NewReaderSize(r, buffers.BufferSize),
	}
}

// All returns the bytes of the reader, pulled one buffer at a time
func (s *ByteSource) All() iter.Seq[byte] {
	return func(yield func(byte) bool) {
		for {
			b, err := s.r.ReadByte()
			if err == io.EOF {
				return
			} else if err != nil {
				s.err = errors.WithStack(err)
				return
			}
			if !yield(b) {
				return
			}
		}
	}
}

// Err returns the error which ended the sequence, if any. Reaching the end of the reader is not an error.
func (s *ByteSource) Err() error {
	return s.err
}
