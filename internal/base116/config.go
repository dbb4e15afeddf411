package base116

// EncodeConfig configures an encoding run
type EncodeConfig struct {
	// AddWrapper frames the output with WrapperPrefix and WrapperSuffix
	AddWrapper bool `yaml:"add-wrapper" json:"add-wrapper"`
}

// DecodeConfig configures a decoding run
type DecodeConfig struct {
	// RequireWrapper makes the input start with WrapperPrefix and end with WrapperSuffix. When not set,
	// wrapper markers are treated like any other rune which is not part of the alphabet.
	RequireWrapper bool `yaml:"require-wrapper" json:"require-wrapper"`

	// Relaxed skips input units which are not part of the alphabet instead of reporting them as
	// ErrInvalidSymbol. Digit group and wrapper checks still apply.
	Relaxed bool `yaml:"relaxed" json:"relaxed"`
}
