package schema

import (
	"fmt"

	"github.com/phanxgames/puppet"
)

// Element converts the object's animation configuration into a core
// element spanning the scene's frame window.
func (o *Object) Element(sc *Scene, fps int) puppet.Element {
	return puppet.Element{
		ID:         o.ID,
		StartFrame: puppet.FrameAtMs(sc.StartMs, fps),
		EndFrame:   puppet.FrameAtMs(sc.EndMs, fps),
		Enter:      animationSpec(o.Animation.Enter, o.Type),
		During:     animationSpec(o.Animation.During, o.Type),
		Exit:       animationSpec(o.Animation.Exit, o.Type),
	}
}

// animationSpec converts one phase definition. A stickman's during type
// may name a motion track; it rides in the spec's Motion field and leaves
// the visual effect empty so the phase engine stays neutral while the
// skeleton moves. The document's loop flag defaults to true and inverts
// into the core's Once.
func animationSpec(def *AnimationDef, kind string) puppet.AnimationSpec {
	if def == nil {
		return puppet.AnimationSpec{}
	}
	spec := puppet.AnimationSpec{
		DurationMs: def.DurationMs,
		DelayMs:    def.DelayMs,
		Once:       def.Loop != nil && !*def.Loop,
	}
	for _, kf := range def.Keyframes {
		spec.Keyframes = append(spec.Keyframes, puppet.PoseKeyframe{AtMs: kf.AtMs, Pose: kf.Pose})
	}
	if kind == KindStickman && isMotionName(def.Type) {
		spec.Motion = def.Type
		return spec
	}
	if eff, err := puppet.ParseEffect(def.Type); err == nil {
		spec.Effect = eff
	}
	return spec
}

// StickmanConfig resolves the object's character setup against the core
// catalogs. A targetPose becomes a concrete pose track: transition in
// over the enter duration, hold the target, and return to the base pose
// through a poseTransition exit. Explicit keyframes win over targetPose;
// a motion plays only when no track does.
func (o *Object) StickmanConfig(sc *Scene) (puppet.StickmanConfig, error) {
	during := animationSpec(o.Animation.During, o.Type)
	if during.Motion == "" && len(during.Keyframes) == 0 && o.Props.Motion != "" {
		during.Motion = o.Props.Motion
	}

	if o.Props.TargetPose != "" && len(during.Keyframes) == 0 {
		during.Keyframes = poseTransitionTrack(o, sc)
		during.Motion = ""
		during.Once = true
	}

	cfg, err := puppet.NewStickmanConfig(o.Props.Pose, during)
	if err != nil {
		return puppet.StickmanConfig{}, fmt.Errorf("schema: scene %q object %q: %w", sc.ID, o.ID, err)
	}
	return cfg, nil
}

// poseTransitionTrack realizes a targetPose as pose keyframes over the
// scene: base at zero, target after the enter transition, and when the
// exit slot asks for a return, target held until the exit window and
// base again at the scene end.
func poseTransitionTrack(o *Object, sc *Scene) []puppet.PoseKeyframe {
	base := o.Props.Pose
	if base == "" {
		base = "standing"
	}
	enterMs := puppet.EffectPoseTransition.DefaultDurationMs()
	if o.Animation.Enter != nil && o.Animation.Enter.DurationMs > 0 {
		enterMs = o.Animation.Enter.DurationMs
	}
	track := []puppet.PoseKeyframe{
		{AtMs: 0, Pose: base},
		{AtMs: enterMs, Pose: o.Props.TargetPose},
	}

	if o.Animation.Exit != nil && o.Animation.Exit.Type == puppet.EffectPoseTransition.String() {
		exitMs := o.Animation.Exit.DurationMs
		if exitMs <= 0 {
			exitMs = puppet.EffectPoseTransition.DefaultDurationMs()
		}
		holdEnd := sc.DurationMs() - exitMs
		if holdEnd < enterMs {
			holdEnd = enterMs
		}
		track = append(track,
			puppet.PoseKeyframe{AtMs: holdEnd, Pose: o.Props.TargetPose},
			puppet.PoseKeyframe{AtMs: holdEnd + exitMs, Pose: base},
		)
	}
	return track
}

// isMotionName reports whether the name belongs to the motion catalog.
func isMotionName(name string) bool {
	for _, n := range puppet.MotionNames() {
		if n == name {
			return true
		}
	}
	return false
}
