package puppet

import (
	"math"

	"github.com/tanema/gween/ease"
)

// Lerp linearly interpolates between a and b by t. Not clamped.
func Lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// Clamp01 clamps t into [0, 1].
func Clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// EaseInOutCubic is the standard symmetric cubic ease: f(0)=0, f(0.5)=0.5,
// f(1)=1, monotone on [0,1]. Pose transitions and camera moves run on it.
// Kept in float64 so joint-angle and camera math never round-trip through
// float32.
func EaseInOutCubic(t float64) float64 {
	t = Clamp01(t)
	if t < 0.5 {
		return 4 * t * t * t
	}
	u := -2*t + 2
	return 1 - u*u*u/2
}

// runEase evaluates a gween easing curve at unit progress t. gween works
// in float32; the cast boundary lives here.
func runEase(fn ease.TweenFunc, t float64) float64 {
	return float64(fn(float32(Clamp01(t)), 0, 1, 1))
}

// floorModFloat shifts math.Mod into [0, cycle) so negative times land at
// their in-cycle position instead of mirroring.
func floorModFloat(v, cycle float64) float64 {
	m := math.Mod(v, cycle)
	if m < 0 {
		m += cycle
	}
	return m
}
