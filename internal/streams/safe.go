package streams

import (
	"io"
)

// SafeReader implements the io.ReadCloser and makes sure that `Close()` can be called safely multiple times.
// Calling `Close()` on a closed object will simply succeed without an error. It also counts the bytes read,
// so the commands can report how much input they consumed.
type SafeReader struct {
	io.ReadCloser
	closed bool
	count  int64
}

func NewSafeReader(wrapped io.ReadCloser) *SafeReader {
	if scs, ok := wrapped.(*SafeReader); ok {
		return scs
	}

	return &SafeReader{
		ReadCloser: wrapped,
	}
}

func (ns *SafeReader) Read(p []byte) (int, error) {
	if ns.closed {
		return 0, io.ErrClosedPipe
	}
	n, err := ns.ReadCloser.Read(p)
	ns.count += int64(n)
	return n, err
}

// Close will close the underlying stream. If the Close has already been called, it will do nothing
func (ns *SafeReader) Close() error {
	if ns.closed {
		return nil
	}
	err := LogClose(ns.ReadCloser)
	ns.closed = true

	return err
}

// Closed will return `true` if SafeReader.Close has been called at least once
func (ns *SafeReader) Closed() bool {
	return ns.closed
}

// Count returns the number of bytes read so far
func (ns *SafeReader) Count() int64 {
	return ns.count
}

// Unwrap returns the embedded io.ReadCloser
func (ns *SafeReader) Unwrap() io.ReadCloser {
	return ns.ReadCloser
}

// SafeWriter implements the io.WriteCloser and makes sure that `Close()` can be called safely multiple times.
// Calling `Close()` on a closed object will simply succeed without an error. Bytes written are counted.
type SafeWriter struct {
	io.WriteCloser
	closed bool
	count  int64
}

func NewSafeWriter(wrapped io.WriteCloser) *SafeWriter {
	if scs, ok := wrapped.(*SafeWriter); ok {
		return scs
	}

	return &SafeWriter{
		WriteCloser: wrapped,
	}
}

func (ns *SafeWriter) Write(p []byte) (int, error) {
	if ns.closed {
		return 0, io.ErrClosedPipe
	}
	n, err := ns.WriteCloser.Write(p)
	ns.count += int64(n)
	return n, err
}

// Close will close the underlying stream. If the Close has already been called, it will do nothing
func (ns *SafeWriter) Close() error {
	if ns.closed {
		return nil
	}
	err := LogClose(ns.WriteCloser)
	ns.closed = true

	return err
}

// Closed will return `true` if SafeWriter.Close has been called at least once
func (ns *SafeWriter) Closed() bool {
	return ns.closed
}

// Count returns the number of bytes written so far
func (ns *SafeWriter) Count() int64 {
	return ns.count
}

// Unwrap returns the embedded io.WriteCloser
func (ns *SafeWriter) Unwrap() io.WriteCloser {
	return ns.WriteCloser
}
