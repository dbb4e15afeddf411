package flags

import (
	"fmt"
	"io"
	"os"
	"path"

	"github.com/goccy/go-yaml"
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// YamlParser is an argument parser for flags package but takes a YAML file instead of a standard INI.
// Every top-level key of the file names a command; its value is decoded into the options registered for
// that command with AddTarget.
type YamlParser struct {
	parser  *flags.Parser
	targets map[string]interface{}
}

// NewYamlParser creates a new yaml parser for a given flags.Parser.
func NewYamlParser(p *flags.Parser) *YamlParser {
	return &YamlParser{
		parser:  p,
		targets: make(map[string]interface{}),
	}
}

// AddTarget registers the options structure of the named command. data must be a pointer.
func (y *YamlParser) AddTarget(name string, data interface{}) {
	y.targets[name] = data
}

// ParseFile parses flags from an yaml formatted file. The returned errors
// can be of the type flags.Error.
func (y *YamlParser) ParseFile(filename string) error {
	body, err := os.Open(filename)

	if err != nil {
		return errors.WithStack(err)
	}

	defer func() {
		if err := body.Close(); err != nil {
			log.Errorf("Could not close %s: %v", filename, err)
		}
	}()

	// Give the decoder the location of the file and the support for recursive directories. This allows
	// you to reference files in subdirs
	return y.Parse(body, yaml.ReferenceDirs(path.Dir(filename)), yaml.RecursiveDir(true))
}

// Parse takes an input stream (a reader) and parses YAML segments one after another, using the provided
// decode options. This allows you to have multiple individual YAML segments within one physical file /
// input stream, all separated by triple dashes (`---`).
func (y *YamlParser) Parse(config io.Reader, opts ...yaml.DecodeOption) error {

	// Create a new decoder
	decoder := yaml.NewDecoder(config, opts...)

	for i := 1; ; i++ {
		obj := make(map[string]interface{})
		err := decoder.Decode(&obj)
		if err == io.EOF {
			return nil
		} else if err != nil {
			return errors.Wrapf(err, "Could not decode element at position %v", i)
		}

		if err = y.parseSegment(obj); err != nil {
			return errors.WithStack(err)
		}
	}
}

// parseSegment will get the "segment" from our input stream and try to match it key = name to our commands.
// E.g. -- top level yaml line "encode:" will be matched to a command named "encode".
func (y *YamlParser) parseSegment(obj map[string]interface{}) error {
	for name, val := range obj {

		// Find the command this key belongs to
		data, ok := y.targets[name]
		if !ok || y.parser.Find(name) == nil {
			return errors.WithStack(&flags.Error{
				Type:    flags.ErrUnknownGroup,
				Message: fmt.Sprintf("could not find option command '%s'", name),
			})
		}
		if val == nil {
			continue
		}

		if conv, err := yaml.Marshal(val); err != nil {
			return errors.WithStack(err)
		} else if err := yaml.Unmarshal(conv, data); err != nil {
			return errors.Wrapf(err, "Could not read options of '%s'", name)
		}
	}
	return nil
}
