package util

import (
	"io"
	"sync"
	"testing"

	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/require"
)

// seqMutex makes sure that we are executing the code sequentially, as we are replacing the exit function
// of the global logger.
var seqMutex sync.Mutex

// fakeExit replaces the exit function of the standard logger and returns a pointer to the recorded
// exit code (-1 if not exited) and a function to restore the logger.
func fakeExit() (*int, func()) {
	seqMutex.Lock()

	logger := log.StandardLogger()
	exitFunc, out := logger.ExitFunc, logger.Out

	exitCode := -1
	logger.ExitFunc = func(code int) {
		exitCode = code
	}
	logger.SetOutput(io.Discard)

	return &exitCode, func() {
		logger.ExitFunc = exitFunc
		logger.SetOutput(out)
		seqMutex.Unlock()
	}
}

func Test_MustErrorNilOrExit_NilError(t *testing.T) {
	exitCode, restore := fakeExit()
	defer restore()

	MustErrorNilOrExit(nil)

	require.Equal(t, -1, *exitCode, "MustErrorNilOrExit existed the program and it shouldn't have done so.")
}

func Test_MustErrorNilOrExit_FlagsError(t *testing.T) {
	exitCode, restore := fakeExit()
	defer restore()

	err := &flags.Error{
		Type:    flags.ErrShortNameTooLong,
		Message: "Short name too long",
	}

	MustErrorNilOrExit(err)

	require.Equal(t, int(flags.ErrShortNameTooLong), *exitCode, "MustErrorNilOrExit did not return a proper exit code")
}

func Test_MustErrorNilOrExit_Help(t *testing.T) {
	exitCode, restore := fakeExit()
	defer restore()

	MustErrorNilOrExit(&flags.Error{
		Type:    flags.ErrHelp,
		Message: "Usage",
	})

	require.Equal(t, 0, *exitCode, "Help should exit cleanly")
}

func Test_MustErrorNilOrExit_GenericError(t *testing.T) {
	exitCode, restore := fakeExit()
	defer restore()

	err := errors.New("demo")

	MustErrorNilOrExit(err)

	require.Equal(t, int(ErrGeneric), *exitCode, "MustErrorNilOrExit did not return a proper exit code")
}

func Test_MustErrorNilOrExit_WrappedFlagsError(t *testing.T) {
	exitCode, restore := fakeExit()
	defer restore()

	err := errors.Wrapf(errors.WithStack(&flags.Error{
		Type:    flags.ErrUnknownGroup,
		Message: "could not find option command 'nope'",
	}), "Could not parse config")

	MustErrorNilOrExit(err)

	require.Equal(t, int(flags.ErrUnknownGroup), *exitCode, "The flags error must be found inside the wrapped error")
}
