package enc

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// Encoder is a binary-to-text encoding the `compare` command can measure
type Encoder interface {
	// Name is the user-friendly name of this encoder
	Name() string
	// Code represends the short (one-letter) code for the encoder
	Code() byte

	// Encode will take an array of bytes and encode it using this encoder
	Encode([]byte) string

	// Decode is the reverse proces of encoding
	Decode(string) ([]byte, error)

	// Ratio is the number of output symbols per input byte for long inputs
	Ratio() float64
}

var encoders = []Encoder{
	&Base32Encoder{},
	&Base64Encoder{},
	&Base85Encoder{},
	&Base91Encoder{},
	&Base116Encoder{},
	&Base128Encoder{},
}

// All returns every known encoder, ordered from the least to the most dense
func All() []Encoder {
	res := make([]Encoder, len(encoders))
	copy(res, encoders)
	return res
}

// FromCode returns the encoder with the given short code
func FromCode(code byte) (Encoder, error) {
	for _, e := range encoders {
		if e.Code() == code {
			return e, nil
		}
	}
	return nil, errors.Errorf("Unknown encoder code: %q", code)
}

// FromName finds an encoder by its name, ignoring case
func FromName(name string) (Encoder, error) {
	for _, e := range encoders {
		if strings.EqualFold(e.Name(), name) {
			return e, nil
		}
	}
	return nil, errors.Errorf("Unknown encoder: %v", name)
}

func describe(e Encoder) string {
	return fmt.Sprintf("%v(%v)", e.Name(), string(e.Code()))
}
