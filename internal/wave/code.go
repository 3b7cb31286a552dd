package wave

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// DefaultCode is the fixed waveform used when turbulence is off.
// 1 draws a crest sweep, 0 a flat segment.
const DefaultCode = "010110111011"

// IntSource yields uniform integers in [0, n). *rand.Rand satisfies it.
type IntSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Code is an immutable binary waveform code.
type Code struct {
	bits []byte
}

// NewCode parses a string of 0 and 1 digits.
func NewCode(s string) (Code, error) {
	if s == "" {
		return Code{}, ErrEmptyCode
	}
	bits := make([]byte, 0, len(s))
	for _, r := range s {
		switch r {
		case '0':
			bits = append(bits, 0)
		case '1':
			bits = append(bits, 1)
		default:
			return Code{}, &DigitError{Pos: len(bits), Digit: r, Wrapped: ErrInvalidDigit}
		}
	}
	return Code{bits: bits}, nil
}

// Turbulent draws a code of n digits, each uniform over {0,1}.
// Every call is an independent draw. A nil rng uses the global source.
func Turbulent(n int, rng IntSource) (Code, error) {
	if n < 1 {
		return Code{}, fmt.Errorf("%w: got %d", ErrIntensity, n)
	}
	if rng == nil {
		rng = globalRand{}
	}
	bits := make([]byte, n)
	for i := range bits {
		bits[i] = byte(rng.IntN(2))
	}
	return Code{bits: bits}, nil
}

// Len returns the number of digits.
func (c Code) Len() int { return len(c.bits) }

// Bit returns the digit at i.
func (c Code) Bit(i int) byte { return c.bits[i] }

func (c Code) String() string {
	var b strings.Builder
	b.Grow(len(c.bits))
	for _, bit := range c.bits {
		b.WriteByte('0' + bit)
	}
	return b.String()
}

// Source selects the waveform code for a run.
type Source struct {
	Fixed     string
	Intensity int
	Rand      IntSource
}

// Code returns the fixed code, or a fresh random one when turbulent is set.
// Callers build the code once at startup; it is never redrawn per frame.
func (s Source) Code(turbulent bool) (Code, error) {
	if turbulent {
		return Turbulent(s.Intensity, s.Rand)
	}
	return NewCode(s.Fixed)
}
