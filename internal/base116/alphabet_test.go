package base116

import (
	"testing"
	"unicode"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func Test_AlphabetIsBijective(t *testing.T) {
	seen := make(map[rune]bool)
	for v := 0; v < Radix; v++ {
		r := SymbolFor(byte(v))
		require.False(t, seen[r], "Symbol %q is used more than once", r)
		seen[r] = true

		back, ok := ValueFor(r)
		require.True(t, ok, "Symbol %q not found", r)
		require.Equal(t, byte(v), back)
	}
	require.Len(t, seen, Radix)
	require.Equal(t, Radix, utf8.RuneCountInString(Alphabet()))
}

func Test_AlphabetSymbols(t *testing.T) {
	for _, r := range Alphabet() {
		require.True(t, unicode.IsPrint(r), "Symbol %U is not printable", r)
		require.False(t, unicode.IsSpace(r), "Symbol %U is a space", r)
		require.Equal(t, SymbolWidth, utf8.RuneLen(r), "Symbol %U has the wrong width", r)
		require.False(t, isMarker(r), "Symbol %U is a wrapper marker", r)
	}
}

func Test_AlphabetOrdering(t *testing.T) {
	require.Equal(t, 'Ā', SymbolFor(0))
	require.Equal(t, 'Ą', SymbolFor(4))
	require.Equal(t, 'Ť', SymbolFor(100))
	require.Equal(t, 'ų', SymbolFor(Radix-1))
}

func Test_ValueForUnknown(t *testing.T) {
	for _, r := range []rune{0, 'A', 'z', '0', ' ', '\n', '\t', 'ÿ', 'Ŵ', 'Ǳ', 'Ǆ', 'ǲ', 'ǅ', utf8.RuneError, -1, unicode.MaxRune} {
		_, ok := ValueFor(r)
		require.False(t, ok, "Rune %U should not be a symbol", r)
	}
}

func Test_SymbolForOutOfRange(t *testing.T) {
	require.Panics(t, func() {
		SymbolFor(Radix)
	})
	require.Panics(t, func() {
		SymbolFor(255)
	})
}

func Test_WrapperMarkers(t *testing.T) {
	for _, marker := range []string{WrapperPrefix, WrapperSuffix} {
		require.Equal(t, 2, utf8.RuneCountInString(marker))
		require.Equal(t, 2*SymbolWidth, len(marker))
		for _, r := range marker {
			require.True(t, isMarker(r))
			_, ok := ValueFor(r)
			require.False(t, ok, "Marker %U collides with the alphabet", r)
		}
	}
	require.NotEqual(t, WrapperPrefix, WrapperSuffix)
}
