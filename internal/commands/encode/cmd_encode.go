package encode

import (
	"bufio"
	"io"

	"github.com/ParkSnoopy/base116-cli/internal/base116"
	"github.com/ParkSnoopy/base116-cli/internal/logging"
	"github.com/ParkSnoopy/base116-cli/internal/streams"
	"github.com/ParkSnoopy/base116-cli/internal/util/buffers"
	"github.com/emersion/go-textwrapper"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// Command encodes binary input into base-116 text
type Command struct {
	Input   string `yaml:"input"   short:"i" long:"input"   env:"BASE116_INPUT"   description:"Input file. Defaults to stdin (-)."`
	Output  string `yaml:"output"  short:"o" long:"output"  env:"BASE116_OUTPUT"  description:"Output file. Defaults to stdout (-)."`
	Wrapper bool   `yaml:"wrapper" short:"w" long:"wrapper" env:"BASE116_WRAPPER" description:"Frame the output with the wrapper markers"`
	Columns uint   `yaml:"wrap"              long:"wrap"    env:"BASE116_WRAP"    description:"Break output lines every COLS symbols (0 disables wrapping)" value-name:"COLS"`
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) String() string {
	return "Encode binary data"
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

	if err := c.Run(in, out); err != nil {
		return err
	}
	log.Infof("Encoded %d bytes from %v into %d bytes to %v", in.Count(), in, out.Count(), out)
	return out.Close()
}

// Run encodes everything read from r and writes the text to w
func (c *Command) Run(r io.Reader, w io.Writer) error {
	buffered := bufio.NewWriterSize(w, buffers.BufferSize)
	var dst io.Writer = buffered
	if c.Columns > 0 {
		// every symbol and marker rune takes exactly SymbolWidth bytes, so lines never split a symbol
		dst = textwrapper.New(buffered, "\n", int(c.Columns)*base116.SymbolWidth)
	}

	encoder := base116.NewEncoder(dst, base116.EncodeConfig{AddWrapper: c.Wrapper})
	if _, err := io.CopyBuffer(encoder, r, make([]byte, buffers.BufferSize)); err != nil {
		return errors.Wrapf(err, "Could not encode input")
	}
	if err := encoder.Close(); err != nil {
		return errors.Wrapf(err, "Could not write output")
	}
	if err := buffered.Flush(); err != nil {
		return errors.Wrapf(err, "Could not write output")
	}
	return nil
}
