package decode

import (
	"bufio"
	"fmt"
	"io"

	"github.com/ParkSnoopy/base116-cli/internal/base116"
	"github.com/ParkSnoopy/base116-cli/internal/logging"
	"github.com/ParkSnoopy/base116-cli/internal/streams"
	"github.com/ParkSnoopy/base116-cli/internal/util/buffers"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command decodes base-116 text back into binary data. Every decoding error is logged and decoding goes on
// with the rest of the input.
type Command struct {
	Input    string `yaml:"input"     short:"i" long:"input"     env:"BASE116_INPUT"     description:"Input file. Defaults to stdin (-)."`
	Output   string `yaml:"output"    short:"o" long:"output"    env:"BASE116_OUTPUT"    description:"Output file. Defaults to stdout (-)."`
	Wrapper  bool   `yaml:"wrapper"   short:"w" long:"wrapper"   env:"BASE116_WRAPPER"   description:"Require the input to be framed with the wrapper markers"`
	Strict   bool   `yaml:"strict"    short:"s" long:"strict"    env:"BASE116_STRICT"    description:"Report characters outside of the alphabet (whitespace included) instead of skipping them"`
	FailFast bool   `yaml:"fail-fast" short:"f" long:"fail-fast" env:"BASE116_FAIL_FAST" description:"Stop at the first decoding error instead of reporting all of them"`
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) String() string {
	return "Decode base-116 text"
}

// Config returns the decoder configuration for the command line options
func (c *Command) Config() base116.DecodeConfig {
	return base116.DecodeConfig{
		RequireWrapper: c.Wrapper,
		Relaxed:        !c.Strict,
	}
}

func (c *Command) Execute(args []string) error {
	if err := logging.SetupLogging(); err != nil {
		return err
	}

	in, err := streams.OpenInput(c.Input)
	if err != nil {
		return err
	}
	defer streams.TryClose(in)

	out, err := streams.OpenOutput(c.Output)
	if err != nil {
		return err
	}
	defer streams.TryClose(out)

	decodeErr := c.Run(in, out)
	log.Infof("Decoded %d bytes from %v into %d bytes to %v", in.Count(), in, out.Count(), out)
	if err := out.Close(); err != nil {
		decodeErr = multierror.Append(decodeErr, err)
	}
	return decodeErr
}

// Run decodes everything read from r and writes the data to w. Decoding errors are collected into a
// *multierror.Error; I/O errors stop decoding immediately. With FailFast the first decoding error stops
// decoding too.
func (c *Command) Run(r io.Reader, w io.Writer) error {
	if c.FailFast {
		return c.runFailFast(r, w)
	}

	var errs *multierror.Error

	src := streams.NewByteSource(r)
	out := bufio.NewWriterSize(w, buffers.BufferSize)
	for b, err := range base116.DecodeBytes(src.All(), c.Config()) {
		if err != nil {
			logDecodeError(err)
			errs = multierror.Append(errs, err)
			continue
		}
		if err := out.WriteByte(b); err != nil {
			return errors.Wrapf(err, "Could not write output")
		}
	}
	if err := src.Err(); err != nil {
		return errors.Wrapf(err, "Could not read input")
	}
	if err := out.Flush(); err != nil {
		return errors.Wrapf(err, "Could not write output")
	}

	if errs != nil {
		errs.ErrorFormat = func(es []error) string {
			return fmt.Sprintf("input is not valid base-116 data: %d error(s), first: %v", len(es), es[0])
		}
	}
	return errs.ErrorOrNil()
}

func (c *Command) runFailFast(r io.Reader, w io.Writer) error {
	decoder := base116.NewDecoder(r, c.Config())
	defer decoder.Close()

	out := bufio.NewWriterSize(w, buffers.BufferSize)
	_, err := io.CopyBuffer(out, decoder, make([]byte, buffers.BufferSize))
	if flushErr := out.Flush(); flushErr != nil && err == nil {
		err = errors.Wrapf(flushErr, "Could not write output")
	}

	var de *base116.DecodeError
	if errors.As(err, &de) {
		logDecodeError(err)
		return err
	}
	if err != nil {
		return errors.Wrapf(err, "Could not decode input")
	}
	return nil
}

func logDecodeError(err error) {
	entry := log.WithError(err)
	var de *base116.DecodeError
	if errors.As(err, &de) {
		entry = entry.WithField("position", de.Position)
	}
	entry.Errorf("Input is not valid base-116 data: %v", err)
}
