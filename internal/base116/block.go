package base116

import "fmt"

const (
	// BlockSize is the number of raw bytes in a full block
	BlockSize = 6
	// BlockDigits is the number of digits a full block encodes to. 256^6 <= 116^7.
	BlockDigits = 7
)

// digitsForBytes is the number of digits a block of the given number of bytes encodes to: the smallest
// d such that 256^k <= 116^d.
var digitsForBytes = [BlockSize + 1]int{0, 2, 3, 4, 5, 6, BlockDigits}

// bytesForDigits is the inverse of digitsForBytes. Digit counts no block encodes to map to -1.
var bytesForDigits = [BlockDigits + 1]int{0, -1, 1, 2, 3, 4, 5, BlockSize}

// BlockDigitsFor returns the number of digits a block of n bytes (0 <= n <= BlockSize) encodes to.
func BlockDigitsFor(n int) int {
	return digitsForBytes[n]
}

// EncodedLen returns the number of symbols n bytes encode to, wrapper not included.
func EncodedLen(n int) int {
	return n/BlockSize*BlockDigits + digitsForBytes[n%BlockSize]
}

// DecodedLen returns the number of bytes m symbols decode to. It fails with ErrInvalidLength if the
// final digit group of m symbols would have a length no block encodes to.
func DecodedLen(m int) (int, error) {
	n := bytesForDigits[m%BlockDigits]
	if n < 0 {
		return 0, ErrInvalidLength
	}
	return m/BlockDigits*BlockSize + n, nil
}

// EncodeBlock encodes src, holding between 1 and BlockSize bytes, into dst as big-endian base-116 digit
// values and returns the number of digits written. dst must have room for BlockDigitsFor(len(src))
// digits. The result is front-padded with zero digits, as the digit count is what carries the length of
// the block.
func EncodeBlock(dst, src []byte) int {
	if len(src) > BlockSize {
		panic(fmt.Sprintf("base116: block of %d bytes", len(src)))
	}

	var limbs [BlockSize]byte
	num := limbs[:len(src)]
	copy(num, src)

	d := digitsForBytes[len(src)]
	for i := d - 1; i >= 0; i-- {
		dst[i] = divmod(num, Radix)
	}
	return d
}

// DecodeBlock decodes a group of digit values into dst and returns the number of bytes written. It
// fails with ErrInvalidLength if no block size encodes to len(digits) digits and with ErrOverflow if
// the digits represent a number which does not fit the block.
func DecodeBlock(dst, digits []byte) (int, error) {
	if len(digits) == 0 || len(digits) > BlockDigits || bytesForDigits[len(digits)] < 0 {
		return 0, ErrInvalidLength
	}

	var limbs [BlockSize]byte
	num := limbs[:bytesForDigits[len(digits)]]
	for _, digit := range digits {
		if digit >= Radix {
			return 0, ErrInvalidSymbol
		}
		if carry := mulAdd(num, Radix, uint(digit)); carry != 0 {
			return 0, ErrOverflow
		}
	}
	return copy(dst, num), nil
}

// divmod divides the big-endian number num by divisor in place and returns the remainder.
func divmod(num []byte, divisor uint) byte {
	rem := uint(0)
	for i, limb := range num {
		cur := rem<<8 | uint(limb)
		num[i] = byte(cur / divisor)
		rem = cur % divisor
	}
	return byte(rem)
}

// mulAdd sets the big-endian number num to num*m+a and returns the carry out of the top limb. A non-zero
// carry means the result did not fit.
func mulAdd(num []byte, m, a uint) uint {
	carry := a
	for i := len(num) - 1; i >= 0; i-- {
		cur := uint(num[i])*m + carry
		num[i] = byte(cur)
		carry = cur >> 8
	}
	return carry
}
