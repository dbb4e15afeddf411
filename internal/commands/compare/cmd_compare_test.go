package compare

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ParkSnoopy/base116-cli/internal/util/enc"
	"github.com/stretchr/testify/require"
)

func Test_Measure(t *testing.T) {
	data := bytes.Repeat([]byte{0x00, 0x01, 0xFE, 0xFF, 0x42, 0x99}, 700)
	results, err := Measure(data, enc.All())
	require.NoError(t, err)
	require.Len(t, results, 6)

	sizes := map[string]Result{}
	for _, r := range results {
		sizes[r.Encoder.Name()] = r
	}

	require.Equal(t, 4900, sizes["Base116"].Symbols)
	require.Equal(t, 9800, sizes["Base116"].Bytes)
	require.Equal(t, 5600, sizes["Base64"].Symbols)
	require.Equal(t, sizes["Base64"].Symbols, sizes["Base64"].Bytes, "Base64 output is ASCII")
	require.Less(t, sizes["Base116"].Symbols, sizes["Base91"].Symbols)
	require.Greater(t, sizes["Base116"].Symbols, sizes["Base128"].Symbols)
}

func Test_MeasureShortInputs(t *testing.T) {
	for n := 1; n <= 15; n++ {
		data := bytes.Repeat([]byte{0xFF}, n)
		results, err := Measure(data, enc.All())
		require.NoError(t, err, "%d bytes", n)
		require.Len(t, results, 6)
	}

	results, err := Measure([]byte{0x00}, enc.All())
	require.NoError(t, err)
	for _, r := range results {
		require.Greater(t, r.Symbols, 0, "%v", r.Encoder)
	}
}

func Test_MeasureEmpty(t *testing.T) {
	results, err := Measure(nil, enc.All())
	require.NoError(t, err)
	for _, r := range results {
		require.Equal(t, 0, r.Symbols, "%v", r.Encoder)
	}
}

func Test_Print(t *testing.T) {
	results, err := Measure([]byte("Hello, World!"), enc.All())
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	Print(buf, 13, results)

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 8)
	require.Contains(t, lines[0], "Encoding")
	require.Contains(t, lines[1], "Input")
	require.Contains(t, buf.String(), "Base116")
	require.Contains(t, buf.String(), "1.2308")
	require.Contains(t, buf.String(), Bold+Green)
}

func Test_CompareExecute(t *testing.T) {
	input := filepath.Join(t.TempDir(), "input.bin")
	require.NoError(t, os.WriteFile(input, []byte("hello"), 0644))

	buf := &bytes.Buffer{}
	cmd := &Command{Input: input, out: buf}
	require.NoError(t, cmd.Execute(nil))
	require.Contains(t, buf.String(), "Base116")
}

func Test_CompareOnly(t *testing.T) {
	cmd := &Command{Only: []string{"base116", "S", "Base91"}}
	encoders, err := cmd.Encoders()
	require.NoError(t, err)
	require.Len(t, encoders, 3)
	require.Equal(t, "Base116", encoders[0].Name())
	require.Equal(t, "Base64", encoders[1].Name())
	require.Equal(t, "Base91", encoders[2].Name())

	input := filepath.Join(t.TempDir(), "input.bin")
	require.NoError(t, os.WriteFile(input, []byte("hello"), 0644))
	buf := &bytes.Buffer{}
	cmd.Input = input
	cmd.out = buf
	require.NoError(t, cmd.Execute(nil))
	require.Contains(t, buf.String(), "Base116")
	require.NotContains(t, buf.String(), "Base128")

	cmd = &Command{Only: []string{"base2048"}}
	_, err = cmd.Encoders()
	require.Error(t, err)
	require.Error(t, cmd.Execute(nil))
}
