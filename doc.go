// Package puppet is a deterministic animation and kinematics engine for
// stickman explainer videos.
//
// Every visual property puppet computes (joint angles, element opacity,
// 2D transforms, camera zoom) is a pure function of an absolute frame
// number. There are no timers, no tickers, and no state carried between
// frames: a host may evaluate frames out of order, in parallel, or
// repeatedly, and always gets identical results. That property is what
// makes scrub-seek previews and multi-worker exports correct.
//
// # Evaluating an element
//
// An [Element] describes one animated thing on the timeline: its visible
// frame window and optional enter/during/exit phases. [Element.Evaluate]
// resolves it at any frame:
//
//	el := puppet.Element{
//		StartFrame: 0, EndFrame: 120,
//		Enter: puppet.AnimationSpec{Effect: puppet.EffectFadeIn, DurationMs: 500},
//		Exit:  puppet.AnimationSpec{Effect: puppet.EffectFadeOut},
//	}
//	st := el.Evaluate(7, 30) // frame 7 at 30 fps
//	_ = st.Opacity           // 7/15 of the way through the fade
//
// # The character stack
//
// The stickman is a ten-joint figure evaluated by forward kinematics.
// [GetPose] looks up a named full pose, [InterpolatePose] blends two poses,
// [MotionOverride] samples a cyclic keyframe track into a sparse
// [PoseDelta], and [EvaluateFK] walks the bone forest into world-space
// placements. [ResolveStickman] runs the whole pipeline for one frame:
//
//	cfg, err := puppet.NewStickmanConfig("standing", puppet.AnimationSpec{Motion: "breathing"})
//	if err != nil {
//		// unknown pose or motion name
//	}
//	frame := puppet.ResolveStickman(&cfg, &el, 42, 30)
//
// # Scene documents and rendering
//
// The schema subpackage loads, validates, and enriches the declarative
// scene documents that drive the engine. The raster subpackage renders
// resolved frames to RGBA images for PNG export or interactive preview.
// The ecs submodule adapts scene objects into a [Donburi] world for hosts
// that run an entity-component system.
//
// [Donburi]: https://github.com/yohamta/donburi
package puppet
