package streams

import (
	"io"
)

// Closed is implemented by streams which know whether Close was already called. LogClose uses it to
// close a stream only once.
type Closed interface {
	Closed() bool
}

// UnwrappedReadCloser gives access to the reader a stream wraps; names are chained through it.
type UnwrappedReadCloser interface {
	Unwrap() io.ReadCloser
}

// UnwrappedWriteCloser gives access to the writer a stream wraps.
type UnwrappedWriteCloser interface {
	Unwrap() io.WriteCloser
}
