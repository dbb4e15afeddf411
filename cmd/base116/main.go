package main

import (
	"fmt"
	"os"
	"path"

	"github.com/ParkSnoopy/base116-cli/internal/args"
	"github.com/ParkSnoopy/base116-cli/internal/commands/compare"
	"github.com/ParkSnoopy/base116-cli/internal/commands/decode"
	"github.com/ParkSnoopy/base116-cli/internal/commands/encode"
	"github.com/ParkSnoopy/base116-cli/internal/commands/version"
	b116Flags "github.com/ParkSnoopy/base116-cli/internal/flags"
	"github.com/ParkSnoopy/base116-cli/internal/util"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
)

const (
	// ErrConfigFileDoesNotExist is raised when configuration file cannot be found
	ErrConfigFileDoesNotExist = flags.ErrInvalidTag + 1
)

// Base116 is the main executable
type Base116 struct {
	parser     *flags.Parser
	yamlParser *b116Flags.YamlParser

	encode *encode.Command
	decode *decode.Command
}

// NewBase116 will create a new instance of Base116 and initialize the parser
func NewBase116() *Base116 {
	executableFilename := os.Args[0]
	executablePath := path.Base(executableFilename)

	b := &Base116{
		parser: flags.NewNamedParser(executablePath, flags.HelpFlag|flags.PrintErrors),
	}
	b.yamlParser = b116Flags.NewYamlParser(b.parser)

	b.setupGeneral()
	b.setupVersion()
	b.setupEncode()
	b.setupDecode()
	b.setupCompare()

	return b
}

// setupGeneral will configure general options
func (b *Base116) setupGeneral() {
	if _, err := b.parser.AddGroup("General", "General options", &args.General); err != nil {
		err = errors.WithStack(err)
		util.MustErrorNilOrExit(err)
	}
}

// setupVersion adds the `version` command
func (b *Base116) setupVersion() {
	cmd := &version.Command{}
	_, err := b.parser.AddCommand(
		"version",
		"Print the version",
		"Print the application version and exit",
		cmd,
	)
	util.MustErrorNilOrExit(err)
}

// setupEncode adds the `encode` command
func (b *Base116) setupEncode() {
	cmd := encode.NewCommand()
	b.encode = cmd
	_, err := b.parser.AddCommand(
		"encode",
		"Encode binary data",
		"Encode binary data into base-116 text, two bytes of UTF-8 per symbol",
		cmd,
	)
	util.MustErrorNilOrExit(err)
	b.yamlParser.AddTarget("encode", cmd)
}

// setupDecode adds the `decode` command
func (b *Base116) setupDecode() {
	cmd := decode.NewCommand()
	b.decode = cmd
	_, err := b.parser.AddCommand(
		"decode",
		"Decode base-116 text",
		"Decode base-116 text back into binary data. Errors are reported and decoding goes on.",
		cmd,
	)
	util.MustErrorNilOrExit(err)
	b.yamlParser.AddTarget("decode", cmd)
}

// setupCompare adds the `compare` command
func (b *Base116) setupCompare() {
	cmd := compare.NewCommand()
	_, err := b.parser.AddCommand(
		"compare",
		"Compare encodings",
		"Show the size of the input encoded with Base32, Base64, Base85, Base91, Base116 and Base128",
		cmd,
	)
	util.MustErrorNilOrExit(err)
	b.yamlParser.AddTarget("compare", cmd)
}

// main starts base116 and reads the configuration file
func main() {

	b := NewBase116()
	args.General.ConfigurationFile = func(file string) error {
		if _, err := os.Stat(file); os.IsNotExist(err) {
			message := fmt.Sprintf("Configuration file %s does not exist.", file)
			util.MustErrorNilOrExit(&flags.Error{
				Type:    ErrConfigFileDoesNotExist,
				Message: message,
			})
		}

		args.General.ConfigurationFilePath = file
		return b.yamlParser.ParseFile(file)
	}

	_, err := b.parser.Parse()
	util.MustErrorNilOrExit(err)

}
