package enc

import (
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.chromium.org/luci/common/data/base128"
)

const (
	// Printable ASCII first, then Latin-1 letters for the remaining values.
	cb128 = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789" +
		"¼½¾¿" +
		"ÀÁÂÃÄÅÆÇÈÉÊËÌÍÎÏ" +
		"ÐÑÒÓÔÕÖ×ØÙÚÛÜÝÞß" +
		"àáâãäåæçèéêëìíîï" +
		"ðñòóôõö÷øùúûüý"
)

var cb128Symbols []rune
var cb128Invert map[rune]byte
var cbInitialized sync.Once

func init() {
	setupCb128Invert()
}

func setupCb128Invert() {
	cbInitialized.Do(func() {
		cb128Symbols = []rune(cb128)
		cb128Invert = make(map[rune]byte, len(cb128Symbols))
		for i, v := range cb128Symbols {
			cb128Invert[v] = byte(i)
		}
	})
}

// Base128Encoder encodes 7 bytes to 8 characters. Values are 7-bit, so they are mapped onto printable
// characters; half of them are outside of ASCII and take two bytes in UTF-8.
type Base128Encoder struct {
}

func (b *Base128Encoder) Name() string {
	return "Base128"
}

func (b *Base128Encoder) String() string {
	return describe(b)
}

func (b *Base128Encoder) Code() byte {
	return 'V'
}

// Encode packs the input into 7-bit values the same way base128.Decode unpacks them. The packing in the
// base128 package masks the carried bits wrongly and yields values above 127, so it is not used here.
func (b *Base128Encoder) Encode(src []byte) string {
	dst := pack128(src)

	sb := strings.Builder{}
	sb.Grow(2 * len(dst))
	for _, v := range dst {
		sb.WriteRune(cb128Symbols[v])
	}
	return sb.String()
}

// pack128 splits src into big-endian 7-bit values, base128.EncodedLen of them
func pack128(src []byte) []byte {
	dst := make([]byte, 0, base128.EncodedLen(len(src)))

	whichByte := uint(1)
	bufByte := byte(0)

	for _, val := range src {
		// the carried bits, followed by the top bits of this byte
		dst = append(dst, bufByte|(val>>whichByte))

		// the low bits of this byte are carried into the next value
		bufByte = (val & ((1 << whichByte) - 1)) << (7 - whichByte)

		if whichByte == 7 {
			dst = append(dst, bufByte)
			bufByte = 0
			whichByte = 0
		}
		whichByte++
	}

	if whichByte > 1 {
		dst = append(dst, bufByte)
	}
	return dst
}

func (b *Base128Encoder) Decode(data string) ([]byte, error) {
	src := make([]byte, 0, len(data))
	for i, r := range data {
		v, ok := cb128Invert[r]
		if !ok {
			return nil, errors.Errorf("Invalid Base128 character %q at position %d", r, i)
		}
		src = append(src, v)
	}

	res, err := base128.DecodeString(string(src))
	if err != nil {
		err = errors.WithStack(err)
		return nil, err
	}
	return res, nil
}

func (b *Base128Encoder) Ratio() float64 {
	return 8.0 / 7.0
}
