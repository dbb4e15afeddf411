package streams

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

func Test_OpenInputStdin(t *testing.T) {
	for _, name := range []string{"", StandardStream} {
		in, err := OpenInput(name)
		require.NoError(t, err)
		require.Equal(t, "stdin", in.String())
		require.NoError(t, in.Close())
	}
}

func Test_OpenInputFile(t *testing.T) {
	file := tempFile(t, "hello")
	in, err := OpenInput(file)
	require.NoError(t, err)
	defer in.Close()

	require.Equal(t, file, in.String())
	data, err := io.ReadAll(in)
	require.NoError(t, err)
	require.Equal(t, "hello", string(data))
}

func Test_OpenInputMissing(t *testing.T) {
	_, err := OpenInput(filepath.Join(t.TempDir(), "missing"))
	require.Error(t, err)
	require.True(t, errors.Is(err, os.ErrNotExist))
}

func Test_OpenOutputFile(t *testing.T) {
	file := tempFile(t, "previous content")
	out, err := OpenOutput(file)
	require.NoError(t, err)

	_, err = out.Write([]byte("ĀĀ"))
	require.NoError(t, err)
	require.NoError(t, out.Close())

	data, err := os.ReadFile(file)
	require.NoError(t, err)
	require.Equal(t, "ĀĀ", string(data))
}

func Test_OpenOutputStdout(t *testing.T) {
	out, err := OpenOutput(StandardStream)
	require.NoError(t, err)
	require.Equal(t, "stdout", out.String())
	require.NoError(t, out.Close())
}

func Test_ByteSource(t *testing.T) {
	content := strings.Repeat("base116", 5000)
	src := NewByteSource(iotest.HalfReader(strings.NewReader(content)))

	var sb strings.Builder
	for b := range src.All() {
		sb.WriteByte(b)
	}
	require.NoError(t, src.Err())
	require.Equal(t, content, sb.String())
}

func Test_ByteSourceStopsEarly(t *testing.T) {
	src := NewByteSource(strings.NewReader("abc"))
	for b := range src.All() {
		require.Equal(t, byte('a'), b)
		break
	}
	require.NoError(t, src.Err())
}

func Test_ByteSourceError(t *testing.T) {
	failure := errors.New("broken pipe")
	src := NewByteSource(io.MultiReader(strings.NewReader("ab"), iotest.ErrReader(failure)))

	var data []byte
	for b := range src.All() {
		data = append(data, b)
	}
	require.Equal(t, []byte("ab"), data)
	require.True(t, errors.Is(src.Err(), failure))
}
