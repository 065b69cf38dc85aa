package puppet

import (
	"fmt"
	"math"

	"github.com/tanema/gween/ease"
)

// Effect identifies a visual animation preset. Each variant carries its
// own default duration and cycle length, so a missing override can never
// fall through to another preset's timing.
type Effect uint8

const (
	EffectNone Effect = iota // no visual change

	EffectFadeIn         // opacity ramp from 0
	EffectFadeInUp       // fade while rising from below
	EffectSlideLeft      // slide in from the left edge
	EffectSlideRight     // slide in from the right edge
	EffectPopIn          // scale up with overshoot
	EffectTypewriter     // reveal progress for character-by-character text
	EffectDrawLine       // reveal progress for stroked paths
	EffectPoseTransition // character pose change; visuals stay neutral, the pose track moves

	EffectFloating // slow vertical bob
	EffectPulse    // periodic scale swell
	EffectBreathe  // gentler scale swell
	EffectWobble   // periodic rotation sway

	EffectFadeOut      // opacity ramp to 0
	EffectFadeOutDown  // fade while sinking
	EffectSlideOutLeft // slide away to the left
	EffectSlideOutRight
	EffectShrinkOut // scale down to nothing
)

// EffectCategory is the phase slot an effect is valid in.
type EffectCategory uint8

const (
	CategoryNone   EffectCategory = iota // EffectNone only
	CategoryEnter                        // one-shot, anchored to element start
	CategoryDuring                       // periodic over the visible window
	CategoryExit                         // one-shot, anchored to element end
)

var effectNames = map[Effect]string{
	EffectNone:           "none",
	EffectFadeIn:         "fadeIn",
	EffectFadeInUp:       "fadeInUp",
	EffectSlideLeft:      "slideLeft",
	EffectSlideRight:     "slideRight",
	EffectPopIn:          "popIn",
	EffectTypewriter:     "typewriter",
	EffectDrawLine:       "drawLine",
	EffectPoseTransition: "poseTransition",
	EffectFloating:       "floating",
	EffectPulse:          "pulse",
	EffectBreathe:        "breathing",
	EffectWobble:         "wobble",
	EffectFadeOut:        "fadeOut",
	EffectFadeOutDown:    "fadeOutDown",
	EffectSlideOutLeft:   "slideOutLeft",
	EffectSlideOutRight:  "slideOutRight",
	EffectShrinkOut:      "shrinkOut",
}

// String returns the scene-data spelling of the effect name.
func (e Effect) String() string {
	if n, ok := effectNames[e]; ok {
		return n
	}
	return fmt.Sprintf("Effect(%d)", uint8(e))
}

// UnknownEffectError reports an effect name with no registered preset.
type UnknownEffectError struct {
	Name string
}

func (e *UnknownEffectError) Error() string {
	return fmt.Sprintf("puppet: unknown effect %q", e.Name)
}

// ParseEffect resolves a scene-data effect name. Unknown names are a fatal
// configuration error, reported as *UnknownEffectError.
func ParseEffect(name string) (Effect, error) {
	for e, n := range effectNames {
		if n == name {
			return e, nil
		}
	}
	debugf("unknown effect %q", name)
	return EffectNone, &UnknownEffectError{Name: name}
}

// Category returns the phase slot the effect belongs to.
func (e Effect) Category() EffectCategory {
	switch e {
	case EffectFadeIn, EffectFadeInUp, EffectSlideLeft, EffectSlideRight,
		EffectPopIn, EffectTypewriter, EffectDrawLine, EffectPoseTransition:
		return CategoryEnter
	case EffectFloating, EffectPulse, EffectBreathe, EffectWobble:
		return CategoryDuring
	case EffectFadeOut, EffectFadeOutDown, EffectSlideOutLeft,
		EffectSlideOutRight, EffectShrinkOut:
		return CategoryExit
	default:
		return CategoryNone
	}
}

// DefaultDurationMs returns the duration used when a phase spec names the
// effect without one. Periodic effects have no duration; see [Effect.CycleMs].
func (e Effect) DefaultDurationMs() int {
	switch e {
	case EffectFadeIn:
		return 500
	case EffectFadeInUp:
		return 600
	case EffectSlideLeft, EffectSlideRight:
		return 600
	case EffectPopIn:
		return 400
	case EffectTypewriter:
		return 1200
	case EffectDrawLine:
		return 1000
	case EffectPoseTransition:
		return 400
	case EffectFadeOut:
		return 300
	case EffectFadeOutDown:
		return 500
	case EffectSlideOutLeft, EffectSlideOutRight:
		return 500
	case EffectShrinkOut:
		return 350
	default:
		return 0
	}
}

// CycleMs returns the loop period for periodic effects, 0 for one-shots.
func (e Effect) CycleMs() int {
	switch e {
	case EffectFloating:
		return 2000
	case EffectPulse:
		return 1500
	case EffectBreathe:
		return 3000
	case EffectWobble:
		return 1800
	default:
		return 0
	}
}

// Motion amplitudes for the built-in presets, in screen units, scale
// factors, or degrees as noted.
const (
	enterRise       = 30.0 // px below final position a rising entry starts from
	slideDistance   = 80.0 // px a sliding entry or exit travels
	floatAmplitude  = 6.0  // px of vertical bob
	pulseAmplitude  = 0.05 // scale swell
	breathAmplitude = 0.02 // scale swell, calmer
	wobbleDegrees   = 3.0  // rotation sway
)

// enterEffectState evaluates a one-shot entry preset at clamped progress
// p. Returns opacity, the transform away from rest, and the reveal
// fraction for typewriter/drawLine style elements.
func enterEffectState(e Effect, p float64) (opacity float64, tr Transform2D, draw float64) {
	tr = IdentityTransform()
	draw = 1
	opacity = 1
	switch e {
	case EffectFadeIn:
		opacity = p
	case EffectFadeInUp:
		opacity = p
		tr.TY = (1 - runEase(ease.OutCubic, p)) * enterRise
	case EffectSlideLeft:
		opacity = p
		tr.TX = -(1 - runEase(ease.OutCubic, p)) * slideDistance
	case EffectSlideRight:
		opacity = p
		tr.TX = (1 - runEase(ease.OutCubic, p)) * slideDistance
	case EffectPopIn:
		opacity = Clamp01(p * 2)
		tr.Scale = runEase(ease.OutBack, p)
	case EffectTypewriter:
		draw = p
	case EffectDrawLine:
		draw = runEase(ease.InOutSine, p)
	}
	return opacity, tr, draw
}

// duringEffectState evaluates a periodic preset at cycle position
// t in [0,1). The wave is a function of absolute cycle position, never of
// evaluation history.
func duringEffectState(e Effect, t float64) Transform2D {
	tr := IdentityTransform()
	wave := math.Sin(2 * math.Pi * t)
	switch e {
	case EffectFloating:
		tr.TY = -wave * floatAmplitude
	case EffectPulse:
		tr.Scale = 1 + wave*pulseAmplitude
	case EffectBreathe:
		tr.Scale = 1 + wave*breathAmplitude
	case EffectWobble:
		tr.RotationDeg = wave * wobbleDegrees
	}
	return tr
}

// exitEffectState evaluates a one-shot exit preset at clamped progress p.
func exitEffectState(e Effect, p float64) (opacity float64, tr Transform2D) {
	tr = IdentityTransform()
	opacity = 1
	switch e {
	case EffectFadeOut:
		opacity = 1 - p
	case EffectFadeOutDown:
		opacity = 1 - p
		tr.TY = runEase(ease.InCubic, p) * enterRise
	case EffectSlideOutLeft:
		opacity = 1 - p
		tr.TX = -runEase(ease.InCubic, p) * slideDistance
	case EffectSlideOutRight:
		opacity = 1 - p
		tr.TX = runEase(ease.InCubic, p) * slideDistance
	case EffectShrinkOut:
		opacity = 1 - p
		tr.Scale = 1 - runEase(ease.InCubic, p)
	}
	return opacity, tr
}
