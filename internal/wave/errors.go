package wave

import (
	"errors"
	"fmt"
)

// Domain errors for waveform construction.
var (
	// ErrEmptyCode indicates a waveform code with no digits.
	ErrEmptyCode = errors.New("wave: empty waveform code")

	// ErrInvalidDigit indicates a waveform digit other than 0 or 1.
	ErrInvalidDigit = errors.New("wave: waveform digit must be 0 or 1")

	// ErrEmptySymbols indicates a symbol set with no glyphs.
	ErrEmptySymbols = errors.New("wave: empty symbol set")

	// ErrIntensity indicates a turbulence intensity below 1.
	ErrIntensity = errors.New("wave: turbulence intensity must be at least 1")
)

// DigitError reports the position of a bad digit in a waveform code.
type DigitError struct {
	Pos     int
	Digit   rune
	Wrapped error
}

func (e *DigitError) Error() string {
	return fmt.Sprintf("%s (got %q at %d)", e.Wrapped.Error(), e.Digit, e.Pos)
}

func (e *DigitError) Unwrap() error {
	return e.Wrapped
}
