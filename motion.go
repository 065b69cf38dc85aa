package puppet

import "fmt"

// MotionKeyframe pins a sparse pose override at a point in the motion
// cycle. Progress is in [0, 1]; for a looping track, 0 and 1 are the same
// instant.
type MotionKeyframe struct {
	Progress float64
	Override PoseDelta
}

// Motion is a keyframe track of sparse pose overrides over a cycle of
// CycleMs milliseconds. Tracks are static configuration: loaded once,
// read-only during evaluation.
type Motion struct {
	Name      string
	CycleMs   float64
	Keyframes []MotionKeyframe
}

// Validate reports malformed tracks: an empty keyframe list, a
// non-positive cycle, or progress values out of order or outside [0, 1].
// These are load-time configuration errors; evaluation assumes a valid
// track.
func (m Motion) Validate() error {
	if len(m.Keyframes) == 0 {
		return fmt.Errorf("puppet: motion %q has no keyframes", m.Name)
	}
	if m.CycleMs <= 0 {
		return fmt.Errorf("puppet: motion %q has non-positive cycle %vms", m.Name, m.CycleMs)
	}
	for i, kf := range m.Keyframes {
		if kf.Progress < 0 || kf.Progress > 1 {
			return fmt.Errorf("puppet: motion %q keyframe %d has progress %v outside [0,1]", m.Name, i, kf.Progress)
		}
		if i > 0 && kf.Progress < m.Keyframes[i-1].Progress {
			return fmt.Errorf("puppet: motion %q keyframe %d has progress %v before its predecessor", m.Name, i, kf.Progress)
		}
	}
	return nil
}

// MotionOverride samples the track at timeMs, cyclically, and returns the
// sparse override blending the bracketing keyframes.
//
// timeMs maps to unit progress (timeMs mod CycleMs)/CycleMs, shifted
// positive for negative times. A sample before the first keyframe or after
// the last brackets across the wrap (last → first), so a two-keyframe
// motion loops smoothly without an explicit duplicate keyframe at
// progress 1. For the union of joints either bracket keyframe overrides,
// values lerp with the local bracket progress; a joint absent from one
// side lerps from 0. Joints no keyframe mentions stay absent from the
// result.
func MotionOverride(m Motion, timeMs float64) PoseDelta {
	if len(m.Keyframes) == 0 || m.CycleMs <= 0 {
		return PoseDelta{}
	}
	p := floorModFloat(timeMs, m.CycleMs) / m.CycleMs
	return sampleTrack(m.Keyframes, p, true)
}

// MotionOverrideOnce samples the track as a one-shot: time clamps into the
// cycle instead of wrapping, holding the final keyframe afterwards and the
// first before time zero.
func MotionOverrideOnce(m Motion, timeMs float64) PoseDelta {
	if len(m.Keyframes) == 0 || m.CycleMs <= 0 {
		return PoseDelta{}
	}
	return sampleTrack(m.Keyframes, Clamp01(timeMs/m.CycleMs), false)
}

// sampleTrack blends the keyframes bracketing unit progress p. With wrap
// set, out-of-bracket progress blends last → first across the cycle seam;
// otherwise it clamps to the nearest end keyframe. A zero-width bracket
// resolves to local progress 0.
func sampleTrack(kfs []MotionKeyframe, p float64, wrap bool) PoseDelta {
	prev := kfs[len(kfs)-1]
	next := kfs[0]
	local := 0.0

	switch {
	case p < kfs[0].Progress || p > prev.Progress:
		if !wrap {
			if p < kfs[0].Progress {
				return kfs[0].Override
			}
			return prev.Override
		}
		// Wrapped bracket: the seam spans from the last keyframe through
		// progress 1/0 to the first.
		span := 1 - prev.Progress + next.Progress
		if span > 0 {
			off := p - prev.Progress
			if off < 0 {
				off += 1
			}
			local = off / span
		}
	default:
		for i := 0; i+1 < len(kfs); i++ {
			if kfs[i].Progress <= p && p <= kfs[i+1].Progress {
				prev, next = kfs[i], kfs[i+1]
				break
			}
		}
		if span := next.Progress - prev.Progress; span > 0 {
			local = (p - prev.Progress) / span
		}
	}

	var out PoseDelta
	for j := Joint(0); j < JointCount; j++ {
		pv, pok := prev.Override.Get(j)
		nv, nok := next.Override.Get(j)
		if !pok && !nok {
			continue
		}
		out.Set(j, Lerp(pv, nv, local))
	}
	return out
}

// ApplyMotion merges the motion's override at timeMs into the base pose.
func ApplyMotion(base Pose, m Motion, timeMs float64) Pose {
	return ApplyOverride(base, MotionOverride(m, timeMs))
}

// BlendMotion interpolates between the base pose and the fully applied
// motion by blend (clamped to [0, 1]), letting a motion fade in or out
// independently of its own cycle.
func BlendMotion(base Pose, m Motion, timeMs, blend float64) Pose {
	return InterpolatePose(base, ApplyMotion(base, m, timeMs), blend)
}
