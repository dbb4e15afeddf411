package base116

const (
	// WrapperPrefix opens a wrapped payload
	WrapperPrefix = "ǱǄ"
	// WrapperSuffix closes a wrapped payload
	WrapperSuffix = "ǲǅ"
)

var (
	prefixRunes = []rune(WrapperPrefix)
	suffixRunes = []rune(WrapperSuffix)
)

// isMarker returns true if r is used by one of the wrapper markers
func isMarker(r rune) bool {
	for _, m := range prefixRunes {
		if r == m {
			return true
		}
	}
	for _, m := range suffixRunes {
		if r == m {
			return true
		}
	}
	return false
}

// emitRunes yields the given marker runes one by one.
func emitRunes(marker []rune, yield func(rune) bool) bool {
	for _, r := range marker {
		if !yield(r) {
			return false
		}
	}
	return true
}

// known returns true for units the decoder never treats as noise: symbols and, when the wrapper is
// required, marker runes.
func (d *decoder) known(r rune) bool {
	if _, ok := ValueFor(r); ok {
		return true
	}
	return d.cfg.RequireWrapper && isMarker(r)
}

// feedPrefix matches the opening marker. Anything else than noise in relaxed mode means the input is not
// wrapped.
func (d *decoder) feedPrefix(pos int, r rune) bool {
	if r == prefixRunes[d.marker] {
		d.marker++
		if d.marker == len(prefixRunes) {
			d.phase = phaseBody
			d.marker = 0
		}
		return true
	}
	if d.cfg.Relaxed && !d.known(r) {
		return true
	}
	return d.fail(ErrMissingWrapper, pos, r)
}

// feedSuffix matches the rest of the closing marker after its first rune has been seen in the body.
func (d *decoder) feedSuffix(pos int, r rune) bool {
	if r == suffixRunes[d.marker] {
		d.marker++
		if d.marker == len(suffixRunes) {
			d.phase = phaseDone
			d.marker = 0
		}
		return true
	}
	if d.cfg.Relaxed && !d.known(r) {
		return true
	}
	return d.fail(ErrMissingWrapper, pos, r)
}

// feedTrailer handles units after the closing marker. Noise is handled as anywhere else, anything
// meaningful is trailing data.
func (d *decoder) feedTrailer(pos int, r rune) bool {
	if d.known(r) {
		return d.fail(ErrTrailingData, pos, r)
	}
	return d.skip(pos, r)
}

// feedMarker handles a marker rune found in the body of a wrapped payload: the first rune of the
// closing marker ends the body, any other marker rune is misplaced.
func (d *decoder) feedMarker(pos int, r rune) bool {
	if r != suffixRunes[0] {
		return d.fail(ErrUnexpectedWrapper, pos, r)
	}
	if !d.flush() {
		return false
	}
	d.phase = phaseSuffix
	d.marker = 1
	return true
}
