package puppet

import "fmt"

// defaultBlendInMs ramps a motion's weight up after the element starts so
// the character eases into its loop instead of snapping.
const defaultBlendInMs = 250

// TrackKeyframe pins a full resolved pose at a millisecond offset inside
// a custom character track.
type TrackKeyframe struct {
	AtMs int
	Pose Pose
}

// StickmanConfig is the per-element character setup with every name
// already resolved: the skeleton proportions, the base pose, and the
// motion or custom track driving the during phase. Resolution happens
// once in [NewStickmanConfig]; per-frame evaluation never consults the
// catalogs and never fails.
type StickmanConfig struct {
	Skeleton Skeleton
	Base     Pose

	// Motion loops over the during phase. Track, when non-empty, takes
	// precedence and plays the custom pose keyframes instead.
	Motion Motion
	Track  []TrackKeyframe

	Once      bool // play the motion or track a single pass instead of looping
	BlendInMs int  // motion weight ramp after element start; 0 applies full weight at once
}

// NewStickmanConfig resolves a character definition against the pose and
// motion catalogs. poseName "" means the standing pose. Unknown names and
// malformed tracks are fatal configuration errors.
func NewStickmanConfig(poseName string, during AnimationSpec) (StickmanConfig, error) {
	cfg := StickmanConfig{
		Skeleton:  DefaultSkeleton(),
		Once:      during.Once,
		BlendInMs: defaultBlendInMs,
	}

	if poseName == "" {
		poseName = "standing"
	}
	base, err := GetPose(poseName)
	if err != nil {
		return StickmanConfig{}, err
	}
	cfg.Base = base

	if during.Motion != "" {
		m, err := GetMotion(during.Motion)
		if err != nil {
			return StickmanConfig{}, err
		}
		cfg.Motion = m
	}

	for i, kf := range during.Keyframes {
		if i > 0 && kf.AtMs < during.Keyframes[i-1].AtMs {
			return StickmanConfig{}, fmt.Errorf("puppet: pose track: keyframe times must not decrease (%dms after %dms)",
				kf.AtMs, during.Keyframes[i-1].AtMs)
		}
		p, err := GetPose(kf.Pose)
		if err != nil {
			return StickmanConfig{}, fmt.Errorf("puppet: pose track keyframe at %dms: %w", kf.AtMs, err)
		}
		cfg.Track = append(cfg.Track, TrackKeyframe{AtMs: kf.AtMs, Pose: p})
	}

	return cfg, nil
}

// StickmanFrame is the fully resolved character at one frame: the element
// phase output, the final merged pose, and the posed world-space figure.
type StickmanFrame struct {
	State  FrameState
	Pose   Pose
	Figure Figure
}

// ResolveStickman computes the character's complete state at an absolute
// frame. Like [Element.Evaluate], the result depends only on the
// arguments; frames may be resolved in any order and in parallel.
func ResolveStickman(cfg *StickmanConfig, el *Element, frame, fps int) StickmanFrame {
	st := el.Evaluate(frame, fps)

	pose := cfg.Base
	switch {
	case len(cfg.Track) > 0:
		pose = samplePoseTrack(cfg.Base, cfg.Track, st.ElapsedMs, !cfg.Once)
	case len(cfg.Motion.Keyframes) > 0:
		pose = motionBlend(cfg, st.ElapsedMs)
	}

	return StickmanFrame{
		State:  st,
		Pose:   pose,
		Figure: EvaluateFK(&cfg.Skeleton, pose),
	}
}

// motionBlend applies the configured motion at the element-local time,
// ramping its weight over BlendInMs.
func motionBlend(cfg *StickmanConfig, elapsedMs float64) Pose {
	var ov PoseDelta
	if cfg.Once {
		ov = MotionOverrideOnce(cfg.Motion, elapsedMs)
	} else {
		ov = MotionOverride(cfg.Motion, elapsedMs)
	}
	posed := ApplyOverride(cfg.Base, ov)

	if cfg.BlendInMs <= 0 {
		return posed
	}
	weight := Clamp01(elapsedMs / float64(cfg.BlendInMs))
	if weight >= 1 {
		return posed
	}
	return InterpolatePose(cfg.Base, posed, weight)
}

// samplePoseTrack plays a custom pose track at the element-local time.
// Looping tracks wrap at the last keyframe's offset; one-shot tracks hold
// their final pose. Times before the first keyframe clamp to it.
func samplePoseTrack(base Pose, track []TrackKeyframe, ms float64, loop bool) Pose {
	if len(track) == 0 {
		return base
	}
	if len(track) == 1 {
		return track[0].Pose
	}

	duration := float64(track[len(track)-1].AtMs)
	if loop && duration > 0 {
		ms = floorModFloat(ms, duration)
	}

	if ms <= float64(track[0].AtMs) {
		return track[0].Pose
	}
	if ms >= duration {
		return track[len(track)-1].Pose
	}

	for i := 0; i+1 < len(track); i++ {
		lo := float64(track[i].AtMs)
		hi := float64(track[i+1].AtMs)
		if lo <= ms && ms <= hi {
			if hi <= lo {
				return track[i].Pose
			}
			local := EaseInOutCubic((ms - lo) / (hi - lo))
			return InterpolatePose(track[i].Pose, track[i+1].Pose, local)
		}
	}
	return track[len(track)-1].Pose
}
