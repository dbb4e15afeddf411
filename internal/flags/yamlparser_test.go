package flags

import (
	"strings"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
)

type options struct {
	Wrapper bool   `yaml:"wrapper" long:"wrapper"`
	File    string `yaml:"file"    long:"file"`
	Columns int    `yaml:"columns" long:"columns"`
}

func newParser(t *testing.T, names ...string) (*YamlParser, map[string]*options) {
	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	yamlParser := NewYamlParser(parser)

	targets := make(map[string]*options)
	for _, name := range names {
		data := &options{}
		_, err := parser.AddCommand(name, name, name+" options", data)
		require.NoErrorf(t, err, "Could not add %v command", name)
		yamlParser.AddTarget(name, data)
		targets[name] = data
	}
	return yamlParser, targets
}

func Test_EmptyParse(t *testing.T) {
	file := "testdata/empty.yml"

	yamlParser, _ := newParser(t)
	err := yamlParser.ParseFile(file)

	require.NoErrorf(t, err, "Parsing not successful: %v", file)
}

func Test_GeneralParse(t *testing.T) {
	file := "testdata/general.yml"

	yamlParser, targets := newParser(t, "general")
	err := yamlParser.ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)

	data := targets["general"]
	require.Equal(t, true, data.Wrapper, "Invalid reading of boolean value")
	require.Equal(t, "something.txt", data.File, "Invalid reading of string value")
}

func Test_InvalidGeneralParse(t *testing.T) {
	file := "testdata/invalid_general.yml"

	yamlParser, targets := newParser(t, "general")
	err := yamlParser.ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)
	require.Equal(t, options{}, *targets["general"])
}

func Test_InvalidNoCommand(t *testing.T) {
	file := "testdata/invalid_no_command.yml"

	yamlParser, _ := newParser(t, "general")
	err := yamlParser.ParseFile(file)
	require.Errorf(t, err, "Parsing not successful, expected error but did not get one: %v", file)

	var flagsErr *flags.Error
	require.True(t, errors.As(err, &flagsErr))
	require.Equal(t, flags.ErrUnknownGroup, flagsErr.Type)
}

func Test_MultipleSegments(t *testing.T) {
	file := "testdata/segments.yml"

	yamlParser, targets := newParser(t, "general", "other", "unused")
	err := yamlParser.ParseFile(file)
	require.NoErrorf(t, err, "Parsing not successful: %v", file)

	require.Equal(t, options{File: "first.txt", Columns: 76}, *targets["general"])
	require.Equal(t, options{Wrapper: true}, *targets["other"])
	require.Equal(t, options{}, *targets["unused"])
}

func Test_MissingFile(t *testing.T) {
	yamlParser, _ := newParser(t)
	require.Error(t, yamlParser.ParseFile("testdata/missing.yml"))
}

func Test_UnregisteredCommand(t *testing.T) {
	parser := flags.NewNamedParser("yaml-test", flags.HelpFlag|flags.PrintErrors)
	_, err := parser.AddCommand("general", "General", "General options", &options{})
	require.NoError(t, err)

	// the command exists, but has no options target
	err = NewYamlParser(parser).Parse(strings.NewReader("general:\n  wrapper: true\n"))
	require.Error(t, err)
}

func Test_BadValue(t *testing.T) {
	yamlParser, _ := newParser(t, "general")
	err := yamlParser.Parse(strings.NewReader("general:\n  columns: many\n"))
	require.Error(t, err)
}
