package base116

import (
	"fmt"
	"sync"
	"unicode"
	"unicode/utf8"
)

const (
	// Radix is the number of symbols in the alphabet
	Radix = 116

	// SymbolWidth is the number of UTF-8 bytes taken by every symbol and every wrapper marker rune
	SymbolWidth = 2

	cb116 = "" +
		"ĀāĂăĄąĆćĈĉĊċČčĎď" +
		"ĐđĒēĔĕĖėĘęĚěĜĝĞğ" +
		"ĠġĢģĤĥĦħĨĩĪīĬĭĮį" +
		"İıĲĳĴĵĶķĸĹĺĻļĽľĿ" +
		"ŀŁłŃńŅņŇňŉŊŋŌōŎŏ" +
		"ŐőŒœŔŕŖŗŘřŚśŜŝŞş" +
		"ŠšŢţŤťŦŧŨũŪūŬŭŮů" +
		"ŰűŲų"

	// noValue marks runes of the lookup window that are not part of the alphabet
	noValue = 0xFF
)

var (
	cb116Symbols [Radix]rune

	// cb116Invert maps rune-cb116Base to the digit value, noValue when not a symbol
	cb116Invert [256]byte
	cb116Base   rune

	cbInitialized sync.Once
)

func init() {
	setupAlphabet()
}

func setupAlphabet() {
	cbInitialized.Do(func() {
		symbols := []rune(cb116)
		if len(symbols) != Radix {
			panic(fmt.Sprintf("base116 alphabet has %d symbols", len(symbols)))
		}

		cb116Base = symbols[0]
		for _, r := range symbols {
			if r < cb116Base {
				cb116Base = r
			}
		}

		for i := range cb116Invert {
			cb116Invert[i] = noValue
		}

		for i, r := range symbols {
			idx := r - cb116Base
			if idx >= rune(len(cb116Invert)) {
				panic(fmt.Sprintf("base116 alphabet symbol %q is outside of the lookup window", r))
			}
			if cb116Invert[idx] != noValue {
				panic(fmt.Sprintf("base116 alphabet has repeating symbol %q", r))
			}
			if !unicode.IsPrint(r) || unicode.IsSpace(r) || utf8.RuneLen(r) != SymbolWidth {
				panic(fmt.Sprintf("base116 alphabet symbol %q is not a printable two-byte rune", r))
			}
			if isMarker(r) {
				panic(fmt.Sprintf("base116 alphabet symbol %q collides with a wrapper marker", r))
			}
			cb116Symbols[i] = r
			cb116Invert[idx] = byte(i)
		}
	})
}

// SymbolFor returns the symbol bound to the given digit value. Values of Radix and above panic.
func SymbolFor(value byte) rune {
	if value >= Radix {
		panic(fmt.Sprintf("base116: digit value %d out of range", value))
	}
	return cb116Symbols[value]
}

// ValueFor returns the digit value bound to the given symbol. The second return value is false for
// any rune which is not part of the alphabet.
func ValueFor(symbol rune) (byte, bool) {
	idx := symbol - cb116Base
	if idx < 0 || idx >= rune(len(cb116Invert)) {
		return 0, false
	}
	v := cb116Invert[idx]
	return v, v != noValue
}

// Alphabet returns all the symbols, ordered by their value.
func Alphabet() string {
	return cb116
}
