package version

import (
	"fmt"
	"io"

	"github.com/ParkSnoopy/base116-cli/internal/base116"
	"github.com/ParkSnoopy/base116-cli/internal/version"
	"github.com/k0kubun/go-ansi"
)

const (
	Bold           = "\x1b[1m"
	Reset          = "\x1b[0m"
	LightGray      = "\x1b[37m"
	DarkGray       = "\x1b[90m"
	White          = "\x1b[97m"
	BackgroundBlue = "\x1b[44m"
)

// Command prints the build details of the binary
type Command struct {
	out io.Writer
}

func (i *Command) String() string {
	return "Version details"
}

//goland:noinspection GoUnhandledErrorResult
func (i *Command) Execute(args []string) error {
	w := i.out
	if w == nil {
		w = ansi.NewAnsiStdout()
	}
	PrintVersion(w)
	symbols := []rune(base116.Alphabet())
	fmt.Fprintf(w, DarkGray+" Alphabet    "+White+"%d symbols, U+%04X..U+%04X"+Reset+"\n", len(symbols), symbols[0], symbols[len(symbols)-1])
	if version.GitTag != "" {
		fmt.Fprintf(w, DarkGray+" Git tag     "+White+"%+v"+Reset+"\n", version.GitTag)
	}
	if version.GitBranch != "" {
		fmt.Fprintf(w, DarkGray+" Git branch  "+White+"%+v"+Reset+"\n", version.GitBranch)
	}
	if version.GitState != "" {
		fmt.Fprintf(w, DarkGray+" Git state   "+White+"%+v"+Reset+"\n", version.GitState)
	}
	if version.GoVersion != "" {
		fmt.Fprintf(w, DarkGray+" Go version  "+White+"%+v"+Reset+"\n", version.GoVersion)
	}
	return nil
}

//goland:noinspection GoUnhandledErrorResult
func PrintVersion(w io.Writer) {
	if w == nil {
		w = ansi.NewAnsiStdout()
	}

	fmt.Fprintf(w, Bold+BackgroundBlue+
		LightGray+" BASE116 - Binary to text, two bytes a symbol "+White+"%s"+LightGray+" "+Reset+"\n"+
		DarkGray+" Built on    "+White+"%+v\n"+
		DarkGray+" Git version "+White+"%+v"+Reset+"\n",
		version.AppVersion(), version.BuildDate, version.GitCommit)
}
