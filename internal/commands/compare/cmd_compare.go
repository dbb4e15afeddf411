package compare

import (
	"bytes"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/ParkSnoopy/base116-cli/internal/logging"
	"github.com/ParkSnoopy/base116-cli/internal/streams"
	"github.com/ParkSnoopy/base116-cli/internal/util/enc"
	"github.com/k0kubun/go-ansi"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	Bold      = "\x1b[1m"
	Reset     = "\x1b[0m"
	DarkGray  = "\x1b[90m"
	White     = "\x1b[97m"
	Green     = "\x1b[32m"
	LightGray = "\x1b[37m"
)

// Command shows how large the input gets with every known binary-to-text encoding
type Command struct {
	Input string   `yaml:"input" short:"i" long:"input" env:"BASE116_INPUT" description:"Input file. Defaults to stdin (-)."`
	Only  []string `yaml:"only"  long:"only" description:"Only measure this encoding, by name or one-letter code. May be repeated." value-name:"NAME"`
	out   io.Writer
}

// Result is the size of the input encoded with one encoder
type Result struct {
	Encoder enc.Encoder
	Symbols int
	Bytes   int
}

func NewCommand() *Command {
	return &Command{}
}

func (c *Command) String() string {
	return "Compare encodings"
}

// Encoders returns the encoders selected with --only, or all of them
func (c *Command) Encoders() ([]enc.Encoder, error) {
	if len(c.Only) == 0 {
		return enc.All(), nil
	}

	res := make([]enc.Encoder, 0, len(c.Only))
	for _, name := range c.Only {
		var e enc.Encoder
		var err error
		if len(name) == 1 {
			e, err = enc.FromCode(name[0])
		} else {
			e, err = enc.FromName(name)
		}
		if err != nil {
			return nil, err
		}
		res = append(res, e)
	}
	return res, nil
}

func (c *Command) Execute(args []string) error {
	if err := logging.SetupLogging(); err != nil {
		return err
	}

	encoders, err := c.Encoders()
	if err != nil {
		return err
	}

	in, err := streams.OpenInput(c.Input)
	if err != nil {
		return err
	}
	defer streams.TryClose(in)

	data, err := io.ReadAll(in)
	if err != nil {
		return errors.Wrapf(err, "Could not read %v", in)
	}

	results, err := Measure(data, encoders)
	if err != nil {
		return err
	}

	w := c.out
	if w == nil {
		w = ansi.NewAnsiStdout()
	}
	Print(w, len(data), results)
	return nil
}

// Measure encodes data with every given encoder and checks that it decodes back
func Measure(data []byte, encoders []enc.Encoder) ([]Result, error) {
	results := make([]Result, 0, len(encoders))
	for _, e := range encoders {
		encoded := e.Encode(data)
		log.Debugf("%v: %d bytes encoded", e, len(encoded))

		decoded, err := e.Decode(encoded)
		if err != nil {
			return nil, errors.Wrapf(err, "%v could not decode its own output", e.Name())
		}
		if !bytes.Equal(decoded, data) {
			return nil, errors.Errorf("%v did not round-trip the input", e.Name())
		}

		results = append(results, Result{
			Encoder: e,
			Symbols: utf8.RuneCountInString(encoded),
			Bytes:   len(encoded),
		})
	}
	return results, nil
}

// Print writes the results as a table. The smallest output, in symbols and in bytes, is highlighted.
//
//goland:noinspection GoUnhandledErrorResult
func Print(w io.Writer, size int, results []Result) {
	minSymbols, minBytes := -1, -1
	for _, r := range results {
		if minSymbols < 0 || r.Symbols < minSymbols {
			minSymbols = r.Symbols
		}
		if minBytes < 0 || r.Bytes < minBytes {
			minBytes = r.Bytes
		}
	}

	fmt.Fprintf(w, Bold+White+" %-10s %10s %10s %12s"+Reset+"\n", "Encoding", "Symbols", "Bytes", "Symbols/B")
	fmt.Fprintf(w, DarkGray+" %-10s %10d %10d %12s"+Reset+"\n", "Input", size, size, "-")
	for _, r := range results {
		ratio := "-"
		if size > 0 {
			ratio = fmt.Sprintf("%.4f", float64(r.Symbols)/float64(size))
		}
		fmt.Fprintf(w, " "+LightGray+"%-10s "+highlight(r.Symbols == minSymbols)+"%10d "+highlight(r.Bytes == minBytes)+"%10d "+LightGray+"%12s"+Reset+"\n",
			r.Encoder.Name(), r.Symbols, r.Bytes, ratio)
	}
}

func highlight(best bool) string {
	if best {
		return Bold + Green
	}
	return Reset + White
}
