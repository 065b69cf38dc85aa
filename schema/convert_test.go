package schema

import (
	"errors"
	"strings"
	"testing"

	"github.com/phanxgames/puppet"
)

// --- Element conversion ---

func TestObjectElementFrameBounds(t *testing.T) {
	sc := &Scene{ID: "s1", StartMs: 2000, EndMs: 5000}
	o := &Object{ID: "title", Type: KindText}
	el := o.Element(sc, 30)
	if el.ID != "title" {
		t.Errorf("ID = %q", el.ID)
	}
	if el.StartFrame != 60 || el.EndFrame != 150 {
		t.Errorf("frames = [%d, %d), want [60, 150)", el.StartFrame, el.EndFrame)
	}
}

func TestObjectElementCarriesAllSlots(t *testing.T) {
	sc := &Scene{ID: "s1", StartMs: 0, EndMs: 4000}
	o := &Object{
		ID:   "title",
		Type: KindText,
		Animation: Animations{
			Enter:  &AnimationDef{Type: "fadeInUp", DurationMs: 400, DelayMs: 100},
			During: &AnimationDef{Type: "floating"},
			Exit:   &AnimationDef{Type: "fadeOut", DurationMs: 300},
		},
	}
	el := o.Element(sc, 30)
	if el.Enter.Effect != puppet.EffectFadeInUp || el.Enter.DurationMs != 400 || el.Enter.DelayMs != 100 {
		t.Errorf("enter = %+v", el.Enter)
	}
	if el.During.Effect != puppet.EffectFloating {
		t.Errorf("during = %+v", el.During)
	}
	if el.Exit.Effect != puppet.EffectFadeOut || el.Exit.DurationMs != 300 {
		t.Errorf("exit = %+v", el.Exit)
	}
}

func TestAnimationSpecLoopInversion(t *testing.T) {
	yes, no := true, false
	cases := []struct {
		name string
		loop *bool
		want bool // Once
	}{
		{"absent loop keeps looping", nil, false},
		{"loop true keeps looping", &yes, false},
		{"loop false plays once", &no, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			spec := animationSpec(&AnimationDef{Type: "floating", Loop: c.loop}, KindText)
			if spec.Once != c.want {
				t.Errorf("Once = %v, want %v", spec.Once, c.want)
			}
		})
	}
}

func TestAnimationSpecNilDef(t *testing.T) {
	spec := animationSpec(nil, KindText)
	if spec.Effect != puppet.EffectNone || spec.Motion != "" || spec.DurationMs != 0 {
		t.Errorf("spec = %+v, want zero", spec)
	}
}

func TestStickmanDuringMotionRidesMotionField(t *testing.T) {
	spec := animationSpec(&AnimationDef{Type: "nodding"}, KindStickman)
	if spec.Motion != "nodding" {
		t.Errorf("Motion = %q, want nodding", spec.Motion)
	}
	if spec.Effect != puppet.EffectNone {
		t.Errorf("Effect = %v, want none", spec.Effect)
	}

	// On any other kind the same name is not a motion; it parses as an
	// effect and fails, leaving the spec neutral for Validate to report.
	spec = animationSpec(&AnimationDef{Type: "nodding"}, KindText)
	if spec.Motion != "" || spec.Effect != puppet.EffectNone {
		t.Errorf("spec = %+v, want neutral", spec)
	}
}

func TestAnimationSpecConvertsKeyframes(t *testing.T) {
	def := &AnimationDef{
		Type: "none",
		Keyframes: []PoseKeyframe{
			{AtMs: 0, Pose: "standing"},
			{AtMs: 800, Pose: "waving"},
		},
	}
	spec := animationSpec(def, KindStickman)
	if len(spec.Keyframes) != 2 {
		t.Fatalf("keyframes = %+v", spec.Keyframes)
	}
	if spec.Keyframes[1].AtMs != 800 || spec.Keyframes[1].Pose != "waving" {
		t.Errorf("keyframes[1] = %+v", spec.Keyframes[1])
	}
}

func TestIsMotionName(t *testing.T) {
	if !isMotionName("breathing") {
		t.Error("breathing is a motion")
	}
	if isMotionName("fadeIn") {
		t.Error("fadeIn is an effect, not a motion")
	}
}

// --- StickmanConfig conversion ---

func TestStickmanConfigMotionFallback(t *testing.T) {
	sc := &Scene{ID: "s1", StartMs: 0, EndMs: 4000}
	o := &Object{ID: "guy", Type: KindStickman, Props: Props{Pose: "typing_pose", Motion: "typing"}}
	cfg, err := o.StickmanConfig(sc)
	if err != nil {
		t.Fatalf("StickmanConfig: %v", err)
	}
	if cfg.Motion.Name != "typing" {
		t.Errorf("motion = %q, want typing", cfg.Motion.Name)
	}
	base, _ := puppet.GetPose("typing_pose")
	if cfg.Base != base {
		t.Errorf("base = %v", cfg.Base)
	}
}

func TestStickmanConfigDuringWinsOverProps(t *testing.T) {
	sc := &Scene{ID: "s1", StartMs: 0, EndMs: 4000}
	o := &Object{
		ID: "guy", Type: KindStickman,
		Props:     Props{Motion: "breathing"},
		Animation: Animations{During: &AnimationDef{Type: "waving_loop"}},
	}
	cfg, err := o.StickmanConfig(sc)
	if err != nil {
		t.Fatalf("StickmanConfig: %v", err)
	}
	if cfg.Motion.Name != "waving_loop" {
		t.Errorf("motion = %q, want waving_loop", cfg.Motion.Name)
	}
}

func TestStickmanConfigTargetPoseTrack(t *testing.T) {
	sc := &Scene{ID: "s1", StartMs: 0, EndMs: 4000}
	o := &Object{
		ID: "guy", Type: KindStickman,
		Props: Props{Pose: "standing", TargetPose: "pointing_right"},
		Animation: Animations{
			Enter: &AnimationDef{Type: "poseTransition", DurationMs: 400},
			Exit:  &AnimationDef{Type: "poseTransition", DurationMs: 300},
		},
	}
	cfg, err := o.StickmanConfig(sc)
	if err != nil {
		t.Fatalf("StickmanConfig: %v", err)
	}
	if !cfg.Once {
		t.Error("pose track should play once")
	}
	if len(cfg.Motion.Keyframes) != 0 {
		t.Errorf("motion = %+v, want none alongside a track", cfg.Motion)
	}

	standing, _ := puppet.GetPose("standing")
	pointing, _ := puppet.GetPose("pointing_right")
	want := []struct {
		atMs int
		pose puppet.Pose
	}{
		{0, standing},
		{400, pointing},
		{3700, pointing}, // hold until the exit window opens
		{4000, standing},
	}
	if len(cfg.Track) != len(want) {
		t.Fatalf("track has %d keyframes, want %d", len(cfg.Track), len(want))
	}
	for i, w := range want {
		if cfg.Track[i].AtMs != w.atMs {
			t.Errorf("track[%d].AtMs = %d, want %d", i, cfg.Track[i].AtMs, w.atMs)
		}
		if cfg.Track[i].Pose != w.pose {
			t.Errorf("track[%d] holds the wrong pose", i)
		}
	}
}

func TestStickmanConfigTargetPoseWithoutReturn(t *testing.T) {
	// No poseTransition exit: transition in and hold to the scene end.
	sc := &Scene{ID: "s1", StartMs: 0, EndMs: 4000}
	o := &Object{
		ID: "guy", Type: KindStickman,
		Props: Props{TargetPose: "waving"},
	}
	cfg, err := o.StickmanConfig(sc)
	if err != nil {
		t.Fatalf("StickmanConfig: %v", err)
	}
	if len(cfg.Track) != 2 {
		t.Fatalf("track = %+v, want transition and hold only", cfg.Track)
	}
	if cfg.Track[1].AtMs != puppet.EffectPoseTransition.DefaultDurationMs() {
		t.Errorf("track[1].AtMs = %d", cfg.Track[1].AtMs)
	}
}

func TestStickmanConfigShortSceneClampsHold(t *testing.T) {
	// The scene is shorter than enter plus exit; the hold pins to the
	// end of the transition and the return runs past the scene end.
	sc := &Scene{ID: "s1", StartMs: 0, EndMs: 500}
	o := &Object{
		ID: "guy", Type: KindStickman,
		Props: Props{Pose: "standing", TargetPose: "waving"},
		Animation: Animations{
			Enter: &AnimationDef{Type: "poseTransition", DurationMs: 400},
			Exit:  &AnimationDef{Type: "poseTransition", DurationMs: 300},
		},
	}
	cfg, err := o.StickmanConfig(sc)
	if err != nil {
		t.Fatalf("StickmanConfig: %v", err)
	}
	atMs := make([]int, len(cfg.Track))
	for i := range cfg.Track {
		atMs[i] = cfg.Track[i].AtMs
	}
	want := []int{0, 400, 400, 700}
	for i := range want {
		if atMs[i] != want[i] {
			t.Fatalf("track times = %v, want %v", atMs, want)
		}
	}
}

func TestStickmanConfigExplicitKeyframesWin(t *testing.T) {
	sc := &Scene{ID: "s1", StartMs: 0, EndMs: 4000}
	o := &Object{
		ID: "guy", Type: KindStickman,
		Props: Props{TargetPose: "pointing_right"},
		Animation: Animations{During: &AnimationDef{
			Type: "none",
			Keyframes: []PoseKeyframe{
				{AtMs: 0, Pose: "standing"},
				{AtMs: 1000, Pose: "waving"},
			},
		}},
	}
	cfg, err := o.StickmanConfig(sc)
	if err != nil {
		t.Fatalf("StickmanConfig: %v", err)
	}
	if len(cfg.Track) != 2 {
		t.Fatalf("track has %d keyframes, want the explicit 2", len(cfg.Track))
	}
	waving, _ := puppet.GetPose("waving")
	if cfg.Track[1].Pose != waving {
		t.Error("explicit keyframes were replaced by the targetPose track")
	}
}

func TestStickmanConfigErrorNamesSceneAndObject(t *testing.T) {
	sc := &Scene{ID: "s1", StartMs: 0, EndMs: 4000}
	o := &Object{ID: "guy", Type: KindStickman, Props: Props{Pose: "levitating"}}
	_, err := o.StickmanConfig(sc)
	if err == nil {
		t.Fatal("error expected")
	}
	if !strings.Contains(err.Error(), `scene "s1"`) || !strings.Contains(err.Error(), `object "guy"`) {
		t.Errorf("error %q does not name the scene and object", err)
	}
	var upe *puppet.UnknownPoseError
	if !errors.As(err, &upe) {
		t.Errorf("error = %v, want *UnknownPoseError underneath", err)
	}
}
