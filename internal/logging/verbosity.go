package logging

import (
	log "github.com/sirupsen/logrus"
)

// DefaultLevel is used when no `-v` is given. Decode errors are logged as errors and must always show.
const DefaultLevel = log.WarnLevel

// SetVerbosity defines the verbosity level of the application. Every `-v` adds one level on top of
// DefaultLevel.
func SetVerbosity(v []bool) {

	verbosity := DefaultLevel + log.Level(len(v))
	if verbosity > log.TraceLevel {
		verbosity = log.TraceLevel
	}
	log.SetLevel(verbosity)
}

func VerbosityName() string {
	switch log.GetLevel() {
	case log.PanicLevel:
		return "PANIC"
	case log.FatalLevel:
		return "FATAL"
	case log.ErrorLevel:
		return "ERROR"
	case log.WarnLevel:
		return "WARN"
	case log.InfoLevel:
		return "INFO"
	case log.DebugLevel:
		return "DEBUG"
	default:
		return "TRACE"
	}
}
