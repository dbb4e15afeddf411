package util

import (
	"github.com/jessevdk/go-flags"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

const (
	ErrGeneric = 99
)

// MustErrorNilOrExit will check the provided argument. If it's `nil` it will simply return. If it's
// not `nil`, it will log the error as `log.FatalLevel` and exit immediately with provided error code.
// Error code is unwrapped from `flags.Error` object, also when it is wrapped in another error. If it's a different kind of error, a generic
// error code - 99 - is returned. Exiting goes through the standard logger's ExitFunc.
func MustErrorNilOrExit(err error) {
	if err == nil {
		return
	}

	logger := log.StandardLogger()
	var flagsError *flags.Error
	if errors.As(err, &flagsError) {
		if flagsError.Type == flags.ErrHelp {
			logger.Exit(0)
			return
		}

		logger.WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
		logger.Exit(int(flagsError.Type))
	} else {
		logger.WithError(err).Logf(log.FatalLevel, "Error: %+v", err)
		logger.Exit(ErrGeneric)
	}

}
