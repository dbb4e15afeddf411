package streams

import (
	"io"
	"os"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// StandardStream is the name used for stdin / stdout on the command line
const StandardStream = "-"

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error {
	return nil
}

// OpenInput opens the named file for reading. An empty name or StandardStream means stdin, which is never
// closed.
func OpenInput(name string) (*NamedReader, error) {
	if name == "" || name == StandardStream {
		return NewNamedReader(io.NopCloser(os.Stdin), "stdin"), nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not open input %v", name)
	}
	log.Debugf("Reading from %v", name)
	return NewNamedReader(f, name), nil
}

// OpenOutput creates (or truncates) the named file for writing. An empty name or StandardStream means
// stdout, which is never closed.
func OpenOutput(name string) (*NamedWriter, error) {
	if name == "" || name == StandardStream {
		return NewNamedWriter(nopWriteCloser{os.Stdout}, "stdout"), nil
	}

	f, err := os.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return nil, errors.Wrapf(err, "Could not create output %v", name)
	}
	log.Debugf("Writing to %v", name)
	return NewNamedWriter(f, name), nil
}
