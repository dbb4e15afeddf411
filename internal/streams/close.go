package streams

import (
	"io"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
)

// TryClose closes the stream and just reports to log if it fails
func TryClose(closer io.Closer) {
	if err := LogClose(closer); err != nil {
		log.Tracef("Ignoring close error: %v", err)
	}
}

// LogClose will close the stream and log the error, if any
func LogClose(closer io.Closer) error {
	if closer == nil {
		return nil
	}

	if c, ok := closer.(Closed); ok {
		if c.Closed() {
			return nil
		}
	}

	if err := closer.Close(); err != nil {
		err = errors.WithStack(err)
		log.WithError(err).Errorf("Could not close %v: %v", closer, err)
		return err
	}
	log.Tracef("%v successfully closed", closer)
	return nil
}
