package puppet

// DefaultFPS is the frame rate assumed when a scene does not declare one.
const DefaultFPS = 30

// FrameAtMs converts a millisecond offset to a frame count at the given
// rate, truncating toward zero. Phase windows are resolved to whole
// frames with this before any comparison.
func FrameAtMs(ms, fps int) int {
	return ms * fps / 1000
}

// floorMod returns frame mod cycle shifted into [0, cycle). Plain % is
// truncated division, which would hand negative frames a negative phase.
func floorMod(frame, cycle int) int {
	m := frame % cycle
	if m < 0 {
		m += cycle
	}
	return m
}

// Phase is the slot of an element's lifetime a frame falls in.
type Phase uint8

const (
	PhaseHidden Phase = iota // before the element starts or after it ends
	PhaseEnter               // inside the enter window
	PhaseDuring              // visible, between enter and exit
	PhaseExit                // inside the exit window
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseEnter:
		return "enter"
	case PhaseDuring:
		return "during"
	case PhaseExit:
		return "exit"
	default:
		return "hidden"
	}
}

// Transform2D is the visual offset an effect stack produces: translation
// in screen units, uniform scale, rotation in degrees. It carries less
// than a full affine so effects compose commutatively.
type Transform2D struct {
	TX, TY      float64
	Scale       float64
	RotationDeg float64
}

// IdentityTransform returns the no-op transform.
func IdentityTransform() Transform2D {
	return Transform2D{Scale: 1}
}

// Compose merges two effect transforms: translations add, scales
// multiply, rotations add.
func (t Transform2D) Compose(o Transform2D) Transform2D {
	return Transform2D{
		TX:          t.TX + o.TX,
		TY:          t.TY + o.TY,
		Scale:       t.Scale * o.Scale,
		RotationDeg: t.RotationDeg + o.RotationDeg,
	}
}

// Affine expands the transform to a matrix: translate, then rotate, then
// scale about the local origin.
func (t Transform2D) Affine() [6]float64 {
	m := multiplyAffine(translationAffine(t.TX, t.TY), rotationAffine(t.RotationDeg))
	if t.Scale != 1 {
		m = multiplyAffine(m, scaleAffine(t.Scale))
	}
	return m
}

// PoseKeyframe pins a named pose at a millisecond offset inside a custom
// character track.
type PoseKeyframe struct {
	AtMs int
	Pose string
}

// AnimationSpec configures one phase slot of an element. The zero value
// is "no animation": effect none, default timing, looping playback.
type AnimationSpec struct {
	Effect     Effect
	DurationMs int // 0 picks the effect's default duration
	DelayMs    int
	Once       bool // play motion-backed tracks a single cycle instead of looping

	// Motion and Keyframes drive the character resolver when the spec
	// sits in a stickman element's during slot. Motion names a built-in
	// track; Keyframes is a custom pose track. Generic elements ignore
	// both.
	Motion    string
	Keyframes []PoseKeyframe
}

// resolveDurationMs returns the explicit duration, or the effect default.
func (a AnimationSpec) resolveDurationMs() int {
	if a.DurationMs > 0 {
		return a.DurationMs
	}
	return a.Effect.DefaultDurationMs()
}

// resolveCycleMs returns the loop period for a periodic effect, with an
// explicit duration overriding the effect default.
func (a AnimationSpec) resolveCycleMs() int {
	if a.DurationMs > 0 {
		return a.DurationMs
	}
	return a.Effect.CycleMs()
}

// Element is one animated scene member: a frame window plus up to three
// phase specs. Elements hold configuration only; nothing in them changes
// during rendering, so a single Element may be evaluated from any number
// of goroutines.
//
// StartFrame is inclusive and EndFrame exclusive. EndFrame 0 means the
// element never ends; such an element cannot carry an exit phase, since
// the exit window anchors to the end.
type Element struct {
	ID         string
	StartFrame int
	EndFrame   int

	Enter  AnimationSpec
	During AnimationSpec
	Exit   AnimationSpec
}

// VisibleAt reports whether the element occupies the frame at all.
func (el *Element) VisibleAt(frame int) bool {
	if frame < el.StartFrame {
		return false
	}
	return el.EndFrame <= 0 || frame < el.EndFrame
}

// EnterStartFrame is the element start plus the enter delay.
func (el *Element) EnterStartFrame(fps int) int {
	return el.StartFrame + FrameAtMs(el.Enter.DelayMs, fps)
}

// EnterEndFrame is the first frame past the enter window.
func (el *Element) EnterEndFrame(fps int) int {
	return el.EnterStartFrame(fps) + FrameAtMs(el.Enter.resolveDurationMs(), fps)
}

// ExitStartFrame is the first frame of the exit window, anchored to the
// element end.
func (el *Element) ExitStartFrame(fps int) int {
	return el.EndFrame - FrameAtMs(el.Exit.resolveDurationMs(), fps)
}

// IsInEnterPhase reports whether the frame sits before the end of the
// enter window. Frames inside the enter delay count as entering; the
// enter preset holds them at progress zero.
func (el *Element) IsInEnterPhase(frame, fps int) bool {
	return frame < el.EnterEndFrame(fps)
}

// IsInExitPhase reports whether the frame has reached the exit window.
// Elements without an exit effect never exit, and neither do unbounded
// elements: the window anchors to an end that never comes. The predicate
// has no upper bound; visibility is a separate question answered by
// [Element.VisibleAt].
func (el *Element) IsInExitPhase(frame, fps int) bool {
	return el.EndFrame > 0 && el.Exit.Effect != EffectNone && frame >= el.ExitStartFrame(fps)
}

// PhaseAt classifies a frame. Exit wins over enter when a short element
// makes both windows claim the same frame.
func (el *Element) PhaseAt(frame, fps int) Phase {
	switch {
	case !el.VisibleAt(frame):
		return PhaseHidden
	case el.IsInExitPhase(frame, fps):
		return PhaseExit
	case el.IsInEnterPhase(frame, fps):
		return PhaseEnter
	default:
		return PhaseDuring
	}
}

// phaseProgress is the clamped position of frame inside a window. Empty
// windows report 1: an instant animation has always finished.
func phaseProgress(frame, startFrame, durFrames int) float64 {
	if durFrames <= 0 {
		return 1
	}
	return Clamp01(float64(frame-startFrame) / float64(durFrames))
}

// FrameState is the resolved visual state of an element at one frame.
// It is recomputed on every query and never cached; see [Element.Evaluate].
type FrameState struct {
	Phase   Phase
	Visible bool

	Opacity      float64
	Transform    Transform2D
	DrawProgress float64 // reveal fraction for typewriter and drawLine elements

	EnterProgress float64
	ExitProgress  float64
	ElapsedMs     float64 // milliseconds since element start, may be negative
}

// Evaluate computes the element's visual state at an absolute frame. The
// result is a pure function of the arguments: any frame may be evaluated
// out of order, in parallel, or repeatedly, and the answer is identical.
//
// Opacity comes from the active one-shot phase, with exit overriding
// enter. The periodic during-effect transform keys off the absolute frame
// and composes with whichever one-shot transform is active, so a floating
// element keeps bobbing while it fades.
func (el *Element) Evaluate(frame, fps int) FrameState {
	if fps <= 0 {
		fps = DefaultFPS
	}
	st := FrameState{
		Phase:        PhaseHidden,
		Transform:    IdentityTransform(),
		DrawProgress: 1,
		ElapsedMs:    float64(frame-el.StartFrame) * 1000 / float64(fps),
	}
	if !el.VisibleAt(frame) {
		return st
	}
	st.Visible = true

	enterStart := el.EnterStartFrame(fps)
	enterDur := FrameAtMs(el.Enter.resolveDurationMs(), fps)
	st.EnterProgress = phaseProgress(frame, enterStart, enterDur)

	duringTr := IdentityTransform()
	if el.During.Effect.Category() == CategoryDuring {
		if cycle := FrameAtMs(el.During.resolveCycleMs(), fps); cycle > 0 {
			duringTr = duringEffectState(el.During.Effect, float64(floorMod(frame, cycle))/float64(cycle))
		}
	}

	switch {
	case el.IsInExitPhase(frame, fps):
		st.Phase = PhaseExit
		exitDur := FrameAtMs(el.Exit.resolveDurationMs(), fps)
		st.ExitProgress = phaseProgress(frame, el.ExitStartFrame(fps), exitDur)
		opacity, tr := exitEffectState(el.Exit.Effect, st.ExitProgress)
		st.Opacity = opacity
		st.Transform = tr.Compose(duringTr)
	case frame < enterStart+enterDur:
		st.Phase = PhaseEnter
		opacity, tr, draw := enterEffectState(el.Enter.Effect, st.EnterProgress)
		st.Opacity = opacity
		st.DrawProgress = draw
		st.Transform = tr.Compose(duringTr)
	default:
		st.Phase = PhaseDuring
		st.Opacity = 1
		st.Transform = duringTr
	}
	return st
}
