package puppet

import (
	"fmt"
	"math"
	"sort"
)

// CameraState is the camera for one frame: the world point it centers on,
// a zoom factor, and rotation in degrees. States are plain values; the
// sampler builds a fresh one per query.
type CameraState struct {
	X, Y        float64
	Zoom        float64
	RotationDeg float64
}

// DefaultCamera returns the neutral camera: centered on the origin at
// zoom 1 with no rotation.
func DefaultCamera() CameraState {
	return CameraState{Zoom: 1}
}

// lerpCamera interpolates every camera field independently.
func lerpCamera(a, b CameraState, t float64) CameraState {
	return CameraState{
		X:           Lerp(a.X, b.X, t),
		Y:           Lerp(a.Y, b.Y, t),
		Zoom:        Lerp(a.Zoom, b.Zoom, t),
		RotationDeg: Lerp(a.RotationDeg, b.RotationDeg, t),
	}
}

// ViewAffine builds the world-to-screen matrix for a viewport of the
// given size:
//
//	Translate(w/2, h/2) * Scale(zoom) * Rotate(-rotation) * Translate(-X, -Y)
func (c CameraState) ViewAffine(viewportW, viewportH float64) [6]float64 {
	cx := viewportW / 2
	cy := viewportH / 2

	sin, cos := math.Sincos(-c.RotationDeg * degToRad)
	z := c.Zoom

	a := z * cos
	b := -z * sin
	cc := z * sin
	d := z * cos
	tx := cx + z*(-cos*c.X+sin*c.Y)
	ty := cy + z*(-sin*c.X-cos*c.Y)

	return [6]float64{a, cc, b, d, tx, ty}
}

// WorldToScreen converts a world point to viewport coordinates.
func (c CameraState) WorldToScreen(viewportW, viewportH, wx, wy float64) (sx, sy float64) {
	return transformPoint(c.ViewAffine(viewportW, viewportH), wx, wy)
}

// ScreenToWorld converts a viewport point back to world coordinates.
func (c CameraState) ScreenToWorld(viewportW, viewportH, sx, sy float64) (wx, wy float64) {
	inv := invertAffine(c.ViewAffine(viewportW, viewportH))
	return transformPoint(inv, sx, sy)
}

// VisibleBounds returns the world-space box the camera can see in a
// viewport of the given size.
func (c CameraState) VisibleBounds(viewportW, viewportH float64) Rect {
	inv := invertAffine(c.ViewAffine(viewportW, viewportH))

	x0, y0 := transformPoint(inv, 0, 0)
	x1, y1 := transformPoint(inv, viewportW, 0)
	x2, y2 := transformPoint(inv, viewportW, viewportH)
	x3, y3 := transformPoint(inv, 0, viewportH)

	minX := math.Min(math.Min(x0, x1), math.Min(x2, x3))
	minY := math.Min(math.Min(y0, y1), math.Min(y2, y3))
	maxX := math.Max(math.Max(x0, x1), math.Max(x2, x3))
	maxY := math.Max(math.Max(y0, y1), math.Max(y2, y3))

	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// CameraKeyframe pins a camera state at a progress point in [0, 1].
type CameraKeyframe struct {
	Progress float64
	State    CameraState
}

// DirectionPreset is a named camera move sampled by scene progress. The
// same keyframe-over-progress pattern as motion tracks, at lower
// dimensionality. Presets are read-only tables.
type DirectionPreset struct {
	Name      string
	Keyframes []CameraKeyframe
}

// At samples the move at clamped progress p. Local bracket progress is
// shaped with the cubic ease so the camera departs and arrives gently at
// every keyframe. Zero-width brackets resolve to their first state.
func (d DirectionPreset) At(p float64) CameraState {
	kfs := d.Keyframes
	if len(kfs) == 0 {
		return DefaultCamera()
	}
	p = Clamp01(p)
	if p <= kfs[0].Progress {
		return kfs[0].State
	}
	if p >= kfs[len(kfs)-1].Progress {
		return kfs[len(kfs)-1].State
	}
	for i := 0; i+1 < len(kfs); i++ {
		if kfs[i].Progress <= p && p <= kfs[i+1].Progress {
			span := kfs[i+1].Progress - kfs[i].Progress
			if span <= 0 {
				return kfs[i].State
			}
			local := EaseInOutCubic((p - kfs[i].Progress) / span)
			return lerpCamera(kfs[i].State, kfs[i+1].State, local)
		}
	}
	return kfs[len(kfs)-1].State
}

// UnknownDirectionError reports a camera direction name with no
// registered preset.
type UnknownDirectionError struct {
	Name string
}

func (e *UnknownDirectionError) Error() string {
	return fmt.Sprintf("puppet: unknown camera direction %q", e.Name)
}

// GetDirection looks up a camera move by name.
func GetDirection(name string) (DirectionPreset, error) {
	d, ok := directionPresets[name]
	if !ok {
		debugf("unknown camera direction %q", name)
		return DirectionPreset{}, &UnknownDirectionError{Name: name}
	}
	return d, nil
}

// DirectionNames returns the sorted names of all registered camera moves.
func DirectionNames() []string {
	names := make([]string, 0, len(directionPresets))
	for n := range directionPresets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// directionPresets is the built-in camera move catalog. Pans keep a
// slight zoom so the frame edge never shows.
var directionPresets = map[string]DirectionPreset{
	"static": {
		Name: "static",
		Keyframes: []CameraKeyframe{
			{Progress: 0, State: CameraState{Zoom: 1}},
		},
	},
	"staticCloseup": {
		Name: "staticCloseup",
		Keyframes: []CameraKeyframe{
			{Progress: 0, State: CameraState{Zoom: 1.3}},
		},
	},
	"staticWide": {
		Name: "staticWide",
		Keyframes: []CameraKeyframe{
			{Progress: 0, State: CameraState{Zoom: 0.85}},
		},
	},
	"zoomIn": {
		Name: "zoomIn",
		Keyframes: []CameraKeyframe{
			{Progress: 0, State: CameraState{Zoom: 1}},
			{Progress: 1, State: CameraState{Zoom: 1.15}},
		},
	},
	"zoomInFast": {
		Name: "zoomInFast",
		Keyframes: []CameraKeyframe{
			{Progress: 0, State: CameraState{Zoom: 1}},
			{Progress: 0.35, State: CameraState{Zoom: 1.25}},
			{Progress: 1, State: CameraState{Zoom: 1.25}},
		},
	},
	"zoomOut": {
		Name: "zoomOut",
		Keyframes: []CameraKeyframe{
			{Progress: 0, State: CameraState{Zoom: 1.15}},
			{Progress: 1, State: CameraState{Zoom: 1}},
		},
	},
	"zoomInOut": {
		Name: "zoomInOut",
		Keyframes: []CameraKeyframe{
			{Progress: 0, State: CameraState{Zoom: 1}},
			{Progress: 0.5, State: CameraState{Zoom: 1.12}},
			{Progress: 1, State: CameraState{Zoom: 1}},
		},
	},
	"panLeft": {
		Name: "panLeft",
		Keyframes: []CameraKeyframe{
			{Progress: 0, State: CameraState{X: 40, Zoom: 1.08}},
			{Progress: 1, State: CameraState{X: -40, Zoom: 1.08}},
		},
	},
	"panRight": {
		Name: "panRight",
		Keyframes: []CameraKeyframe{
			{Progress: 0, State: CameraState{X: -40, Zoom: 1.08}},
			{Progress: 1, State: CameraState{X: 40, Zoom: 1.08}},
		},
	},
	"panUp": {
		Name: "panUp",
		Keyframes: []CameraKeyframe{
			{Progress: 0, State: CameraState{Y: 30, Zoom: 1.08}},
			{Progress: 1, State: CameraState{Y: -30, Zoom: 1.08}},
		},
	},
	"zoomBreathe": {
		Name: "zoomBreathe",
		Keyframes: []CameraKeyframe{
			{Progress: 0, State: CameraState{Zoom: 1}},
			{Progress: 0.25, State: CameraState{Zoom: 1.04}},
			{Progress: 0.5, State: CameraState{Zoom: 1}},
			{Progress: 0.75, State: CameraState{Zoom: 1.04}},
			{Progress: 1, State: CameraState{Zoom: 1}},
		},
	},
}
