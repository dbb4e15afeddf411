package base116

import (
	"iter"
	"unicode/utf8"

	"github.com/hashicorp/go-multierror"
)

type phase int

const (
	phasePrefix phase = iota // waiting for the opening marker
	phaseBody                // collecting digit groups
	phaseSuffix              // inside the closing marker
	phaseDone                // closing marker seen
)

// decoder is the state of one decoding run: the wrapper phase and the digit group being collected.
type decoder struct {
	cfg   DecodeConfig
	yield func(byte, error) bool

	phase  phase
	marker int // runes of the current marker matched so far

	digits [BlockDigits]byte
	n      int // digits collected in the current group
	start  int // position of the first symbol of the current group
	out    [BlockSize]byte
}

func newDecoder(cfg DecodeConfig, yield func(byte, error) bool) *decoder {
	d := &decoder{
		cfg:   cfg,
		yield: yield,
		phase: phaseBody,
	}
	if cfg.RequireWrapper {
		d.phase = phasePrefix
	}
	return d
}

// feed processes one input unit found at pos. It returns false once decoding must stop, either
// because the consumer stopped or because of a fatal error.
func (d *decoder) feed(pos int, r rune) bool {
	switch d.phase {
	case phasePrefix:
		return d.feedPrefix(pos, r)
	case phaseSuffix:
		return d.feedSuffix(pos, r)
	case phaseDone:
		return d.feedTrailer(pos, r)
	}

	if v, ok := ValueFor(r); ok {
		if d.n == 0 {
			d.start = pos
		}
		d.digits[d.n] = v
		d.n++
		if d.n == BlockDigits {
			return d.flush()
		}
		return true
	}

	if d.cfg.RequireWrapper && isMarker(r) {
		return d.feedMarker(pos, r)
	}
	return d.skip(pos, r)
}

// finish is called once the input is exhausted; end is the position just past the last unit.
func (d *decoder) finish(end int) {
	switch d.phase {
	case phasePrefix, phaseSuffix:
		d.fail(ErrMissingWrapper, end, 0)
	case phaseBody:
		if !d.flush() {
			return
		}
		if d.cfg.RequireWrapper {
			d.fail(ErrMissingWrapper, end, 0)
		}
	}
}

// flush decodes the pending digit group. A broken group is reported and dropped.
func (d *decoder) flush() bool {
	if d.n == 0 {
		return true
	}
	digits := d.digits[:d.n]
	d.n = 0

	n, err := DecodeBlock(d.out[:], digits)
	if err != nil {
		return d.yield(0, &DecodeError{Kind: err, Position: d.start})
	}
	for _, b := range d.out[:n] {
		if !d.yield(b, nil) {
			return false
		}
	}
	return true
}

// skip handles a unit which is not part of the alphabet: ignored in relaxed mode, reported otherwise.
func (d *decoder) skip(pos int, r rune) bool {
	if d.cfg.Relaxed {
		return true
	}
	return d.yield(0, &DecodeError{Kind: ErrInvalidSymbol, Unit: r, Position: pos})
}

// fail reports an error decoding can not recover from.
func (d *decoder) fail(kind error, pos int, r rune) bool {
	d.yield(0, &DecodeError{Kind: kind, Unit: r, Position: pos})
	return false
}

// units is a source of input units paired with their positions. End returns the position just past
// the last unit once All has been exhausted.
type units interface {
	All() iter.Seq2[int, rune]
	End() int
}

// decodeUnits runs the decoder over positioned units. A fresh source is made for every iteration.
func decodeUnits(newUnits func() units, cfg DecodeConfig) iter.Seq2[byte, error] {
	return func(yield func(byte, error) bool) {
		src := newUnits()
		d := newDecoder(cfg, yield)
		for pos, r := range src.All() {
			if !d.feed(pos, r) {
				return
			}
		}
		d.finish(src.End())
	}
}

// Decode returns the bytes the symbols of src decode to. Every failure is reported as a separate
// (0, *DecodeError) pair, positions being rune indexes into src. Invalid symbols and broken digit groups
// are dropped and decoding goes on; wrapper failures end the sequence. Callers wanting to fail fast
// simply stop at the first error.
func Decode(src iter.Seq[rune], cfg DecodeConfig) iter.Seq2[byte, error] {
	return decodeUnits(func() units { return &runeUnits{src: src} }, cfg)
}

// DecodeBytes is like Decode, but takes the UTF-8 encoding of the symbols. Malformed UTF-8 is reported
// as utf8.RuneError. Positions are byte offsets into src.
func DecodeBytes(src iter.Seq[byte], cfg DecodeConfig) iter.Seq2[byte, error] {
	return decodeUnits(func() units { return &byteUnits{src: src} }, cfg)
}

// DecodeString decodes the whole of s. All the errors found are returned combined into one
// *multierror.Error, together with the bytes which could be decoded. Positions are byte offsets into s.
func DecodeString(s string, cfg DecodeConfig) ([]byte, error) {
	var result error

	dst := make([]byte, 0, len(s)/SymbolWidth*BlockSize/BlockDigits+BlockSize)
	for b, err := range decodeUnits(func() units { return stringUnits(s) }, cfg) {
		if err != nil {
			result = multierror.Append(result, err)
			continue
		}
		dst = append(dst, b)
	}
	return dst, result
}

// runeUnits positions runes by their index.
type runeUnits struct {
	src iter.Seq[rune]
	n   int
}

func (u *runeUnits) All() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		for r := range u.src {
			if !yield(u.n, r) {
				return
			}
			u.n++
		}
	}
}

func (u *runeUnits) End() int {
	return u.n
}

// stringUnits positions the runes of a string by their byte offset.
type stringUnits string

func (u stringUnits) All() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		for i, r := range string(u) {
			if !yield(i, r) {
				return
			}
		}
	}
}

func (u stringUnits) End() int {
	return len(u)
}

// byteUnits decodes runes out of a byte sequence, positioned by their byte offset. Every byte which
// does not start a valid sequence is returned as utf8.RuneError.
type byteUnits struct {
	src    iter.Seq[byte]
	buf    [utf8.UTFMax]byte
	n      int
	offset int
}

func (u *byteUnits) All() iter.Seq2[int, rune] {
	return func(yield func(int, rune) bool) {
		for b := range u.src {
			u.buf[u.n] = b
			u.n++
			for u.n > 0 && utf8.FullRune(u.buf[:u.n]) {
				if !u.next(yield) {
					return
				}
			}
		}
		// a truncated sequence at the very end
		for u.n > 0 {
			if !u.next(yield) {
				return
			}
		}
	}
}

func (u *byteUnits) next(yield func(int, rune) bool) bool {
	r, size := utf8.DecodeRune(u.buf[:u.n])
	pos := u.offset
	copy(u.buf[:], u.buf[size:u.n])
	u.n -= size
	u.offset += size
	return yield(pos, r)
}

func (u *byteUnits) End() int {
	return u.offset
}
