package base116

import (
	"iter"
	"slices"
	"strings"
	"unicode/utf8"
)

// blockEncoder collects bytes into a block and emits the block's symbols once it is full.
type blockEncoder struct {
	block  [BlockSize]byte
	n      int
	digits [BlockDigits]byte
	yield  func(rune) bool
}

func (e *blockEncoder) push(b byte) bool {
	e.block[e.n] = b
	e.n++
	if e.n == BlockSize {
		return e.flush()
	}
	return true
}

// flush emits the pending, possibly partial, block.
func (e *blockEncoder) flush() bool {
	if e.n == 0 {
		return true
	}
	d := EncodeBlock(e.digits[:], e.block[:e.n])
	e.n = 0
	for _, digit := range e.digits[:d] {
		if !e.yield(SymbolFor(digit)) {
			return false
		}
	}
	return true
}

// Encode returns the symbols src encodes to. Bytes are pulled from src one block at a time, so the
// sequence can be of any length and stopping the iteration stops reading src.
func Encode(src iter.Seq[byte], cfg EncodeConfig) iter.Seq[rune] {
	return func(yield func(rune) bool) {
		if cfg.AddWrapper && !emitRunes(prefixRunes, yield) {
			return
		}

		e := &blockEncoder{yield: yield}
		for b := range src {
			if !e.push(b) {
				return
			}
		}
		if !e.flush() {
			return
		}

		if cfg.AddWrapper {
			emitRunes(suffixRunes, yield)
		}
	}
}

// EncodeToBytes is like Encode, but returns the UTF-8 encoding of the symbols.
func EncodeToBytes(src iter.Seq[byte], cfg EncodeConfig) iter.Seq[byte] {
	return func(yield func(byte) bool) {
		var buf [utf8.UTFMax]byte
		for r := range Encode(src, cfg) {
			n := utf8.EncodeRune(buf[:], r)
			for _, b := range buf[:n] {
				if !yield(b) {
					return
				}
			}
		}
	}
}

// AppendEncode appends the UTF-8 encoded symbols of src to dst, without any wrapper.
func AppendEncode(dst, src []byte) []byte {
	dst = slices.Grow(dst, EncodedLen(len(src))*SymbolWidth)

	var digits [BlockDigits]byte
	for len(src) > 0 {
		n := min(len(src), BlockSize)
		d := EncodeBlock(digits[:], src[:n])
		for _, digit := range digits[:d] {
			dst = utf8.AppendRune(dst, SymbolFor(digit))
		}
		src = src[n:]
	}
	return dst
}

// EncodeToString returns the encoding of src as a string.
func EncodeToString(src []byte, cfg EncodeConfig) string {
	sb := strings.Builder{}
	size := EncodedLen(len(src)) * SymbolWidth
	if cfg.AddWrapper {
		size += len(WrapperPrefix) + len(WrapperSuffix)
	}
	sb.Grow(size)

	for r := range Encode(slices.Values(src), cfg) {
		sb.WriteRune(r)
	}
	return sb.String()
}
