package base116

import (
	"io"
	"iter"

	"github.com/ParkSnoopy/base116-cli/internal/streams"
	"github.com/pkg/errors"
)

// ErrClosed is returned when using an encoder or decoder after Close
var ErrClosed = errors.New("base116: use of closed stream")

type encoder struct {
	w       io.Writer
	cfg     EncodeConfig
	block   [BlockSize]byte
	n       int
	out     []byte
	started bool
	closed  bool
	err     error
}

// NewEncoder returns a stream encoder. Data written to it is encoded and written to w as UTF-8 text,
// one complete block at a time. Close must be called to write the final partial block and the closing
// wrapper marker; it does not close w.
func NewEncoder(w io.Writer, cfg EncodeConfig) io.WriteCloser {
	return &encoder{
		w:   w,
		cfg: cfg,
	}
}

func (e *encoder) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	if e.closed {
		return 0, ErrClosed
	}

	e.out = e.out[:0]
	e.start()

	written := 0
	for written < len(p) {
		c := copy(e.block[e.n:], p[written:])
		e.n += c
		written += c
		if e.n == BlockSize {
			e.out = AppendEncode(e.out, e.block[:])
			e.n = 0
		}
	}

	if err := e.flush(); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Close writes the pending partial block and the closing wrapper marker, if enabled. Calling Close
// more than once does nothing.
func (e *encoder) Close() error {
	if e.closed {
		return e.err
	}
	e.closed = true
	if e.err != nil {
		return e.err
	}

	e.out = e.out[:0]
	e.start()
	e.out = AppendEncode(e.out, e.block[:e.n])
	e.n = 0
	if e.cfg.AddWrapper {
		e.out = append(e.out, WrapperSuffix...)
	}
	return e.flush()
}

// start queues the opening marker ahead of the first output.
func (e *encoder) start() {
	if e.started {
		return
	}
	e.started = true
	if e.cfg.AddWrapper {
		e.out = append(e.out, WrapperPrefix...)
	}
}

func (e *encoder) flush() error {
	if len(e.out) == 0 {
		return nil
	}
	if _, err := e.w.Write(e.out); err != nil {
		e.err = errors.WithStack(err)
		return e.err
	}
	return nil
}

// Decoder is a stream decoder returned by NewDecoder. It stops at the first decoding error.
type Decoder struct {
	src  *streams.ByteSource
	next func() (byte, error, bool)
	stop func()
	err  error
}

// NewDecoder returns a decoder reading UTF-8 encoded symbols from r. Read returns the first error found
// in the input, a *DecodeError, or any error returned by r. Close releases the decoder; it does not
// close r.
func NewDecoder(r io.Reader, cfg DecodeConfig) *Decoder {
	src := streams.NewByteSource(r)
	next, stop := iter.Pull2(DecodeBytes(src.All(), cfg))
	return &Decoder{
		src:  src,
		next: next,
		stop: stop,
	}
}

func (d *Decoder) Read(p []byte) (int, error) {
	n := 0
	for n < len(p) && d.err == nil {
		b, err, ok := d.next()
		switch {
		case !ok:
			d.err = io.EOF
			if err := d.src.Err(); err != nil {
				d.err = err
			}
			d.stop()
		case err != nil:
			d.err = err
			d.stop()
		default:
			p[n] = b
			n++
		}
	}
	if n > 0 {
		return n, nil
	}
	return 0, d.err
}

// Close stops decoding. Calling Close more than once does nothing.
func (d *Decoder) Close() error {
	d.stop()
	if d.err == nil {
		d.err = ErrClosed
	}
	return nil
}
