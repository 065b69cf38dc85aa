package puppet

import "math/bits"

// Pose is a complete assignment of rotation angles, in degrees, to all ten
// joints, indexed by [Joint]. Angles are unbounded (presets may be authored
// beyond ±180°) and the zero value is the neutral standing pose. Poses are
// value types: every operation returns a fresh value and never mutates its
// inputs.
type Pose [JointCount]float64

// PoseDelta is a sparse set of joint-angle overrides: a bitmask of present
// joints plus their values. It is the only representation of a partial
// pose. A PoseDelta is never a substitute for a full Pose, only an update
// applied over one.
type PoseDelta struct {
	mask uint16
	vals [JointCount]float64
}

// Set records an override for joint j.
func (d *PoseDelta) Set(j Joint, degrees float64) {
	d.mask |= 1 << j
	d.vals[j] = degrees
}

// Get returns the override for joint j, and whether one is present.
// Absent joints report 0.
func (d PoseDelta) Get(j Joint) (float64, bool) {
	if d.mask&(1<<j) == 0 {
		return 0, false
	}
	return d.vals[j], true
}

// Has reports whether joint j is overridden.
func (d PoseDelta) Has(j Joint) bool {
	return d.mask&(1<<j) != 0
}

// Len returns the number of overridden joints.
func (d PoseDelta) Len() int {
	return bits.OnesCount16(d.mask)
}

// Joints returns the overridden joints in enumeration order.
func (d PoseDelta) Joints() []Joint {
	out := make([]Joint, 0, d.Len())
	for j := Joint(0); j < JointCount; j++ {
		if d.mask&(1<<j) != 0 {
			out = append(out, j)
		}
	}
	return out
}

// JointAngle pairs a joint with an angle in degrees. Used to build
// PoseDelta literals.
type JointAngle struct {
	Joint Joint
	Deg   float64
}

// DeltaOf builds a PoseDelta from the given overrides.
func DeltaOf(overrides ...JointAngle) PoseDelta {
	var d PoseDelta
	for _, o := range overrides {
		d.Set(o.Joint, o.Deg)
	}
	return d
}

// InterpolatePose blends two complete poses with per-joint linear
// interpolation. t is clamped to [0, 1]; there is no extrapolation.
//
// Angles interpolate as plain scalars with no shortest-angular-path
// wraparound. Presets author angles beyond ±180° (an arm reaching behind,
// a raised celebration sweep) and expect the blend to travel the authored
// arc, not the numerically shorter one.
func InterpolatePose(a, b Pose, t float64) Pose {
	t = Clamp01(t)
	var out Pose
	for j := 0; j < JointCount; j++ {
		out[j] = Lerp(a[j], b[j], t)
	}
	return out
}

// ApplyOverride merges a sparse delta over a complete base pose: joints
// present in the delta replace the base value, all others pass through.
// The base is not mutated.
func ApplyOverride(base Pose, delta PoseDelta) Pose {
	out := base
	for j := Joint(0); j < JointCount; j++ {
		if v, ok := delta.Get(j); ok {
			out[j] = v
		}
	}
	return out
}
