package anim

import (
	"math/rand/v2"
	"time"
)

// FloatSource yields uniform values in [0, 1). *rand.Rand satisfies it.
type FloatSource interface {
	Float64() float64
}

type globalRand struct{}

func (globalRand) Float64() float64 { return rand.Float64() }

// Delay returns the time to wait for one frame.
//
// Level 0 (or below) returns base unchanged. Level L scales base by a
// uniform factor in [0.5, 0.5+1/L): 1 gives 50%..150%, 2 gives 50%..100%.
func Delay(base time.Duration, level int, rng FloatSource) time.Duration {
	if level <= 0 {
		return base
	}
	if rng == nil {
		rng = globalRand{}
	}
	factor := 0.5 + rng.Float64()/float64(level)
	return time.Duration(float64(base) * factor)
}
