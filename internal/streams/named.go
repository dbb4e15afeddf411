package streams

import (
	"fmt"
	"io"
)

// NamedReader is a SafeReader which also implements fmt.Stringer. It allows the caller to setup a name for
// the stream which will be returned when outputing the stream with `%v`. If the wrapped stream has a name
// itself, it is appended, e.g. `input->/tmp/data.bin`.
type NamedReader struct {
	*SafeReader
	name string
}

func NewNamedReader(wrapped io.ReadCloser, name string) *NamedReader {
	return &NamedReader{
		SafeReader: NewSafeReader(wrapped),
		name:       name,
	}
}

func (ns *NamedReader) String() string {
	return ns.name + chainName(ns.SafeReader.Unwrap())
}

// Unwrap returns the embedded io.ReadCloser
func (ns *NamedReader) Unwrap() io.ReadCloser {
	return ns.SafeReader
}

// NamedWriter is the writing counterpart of NamedReader
type NamedWriter struct {
	*SafeWriter
	name string
}

func NewNamedWriter(wrapped io.WriteCloser, name string) *NamedWriter {
	return &NamedWriter{
		SafeWriter: NewSafeWriter(wrapped),
		name:       name,
	}
}

func (ns *NamedWriter) String() string {
	return ns.name + chainName(ns.SafeWriter.Unwrap())
}

// Unwrap returns the embedded io.WriteCloser
func (ns *NamedWriter) Unwrap() io.WriteCloser {
	return ns.SafeWriter
}

// chainName walks down the wrapped streams until it finds one with a name
func chainName(s interface{}) string {
	for s != nil {
		if v, ok := s.(fmt.Stringer); ok {
			return "->" + v.String()
		}
		switch t := s.(type) {
		case UnwrappedReadCloser:
			s = t.Unwrap()
		case UnwrappedWriteCloser:
			s = t.Unwrap()
		default:
			return ""
		}
	}
	return ""
}
