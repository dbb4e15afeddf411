package enc

import (
	"unicode/utf8"

	"github.com/ParkSnoopy/base116-cli/internal/base116"
	"github.com/pkg/errors"
)

// Base116Encoder encodes 6 bytes to 7 symbols of the Latin Extended-A block
type Base116Encoder struct {
}

func (b *Base116Encoder) Name() string {
	return "Base116"
}

func (b *Base116Encoder) String() string {
	return describe(b)
}

func (b *Base116Encoder) Code() byte {
	return 'Y'
}

func (b *Base116Encoder) Encode(data []byte) string {
	return base116.EncodeToString(data, base116.EncodeConfig{})
}

func (b *Base116Encoder) Decode(data string) ([]byte, error) {
	n, err := base116.DecodedLen(utf8.RuneCountInString(data))
	if err != nil {
		return nil, errors.Wrapf(err, "Invalid Base116 text of %d symbols", utf8.RuneCountInString(data))
	}

	res, err := base116.DecodeString(data, base116.DecodeConfig{})
	if err != nil {
		return nil, errors.WithStack(err)
	}
	if len(res) != n {
		return nil, errors.Errorf("Decoded %d bytes, expected %d", len(res), n)
	}
	return res, nil
}

func (b *Base116Encoder) Ratio() float64 {
	return float64(base116.BlockDigits) / float64(base116.BlockSize)
}
