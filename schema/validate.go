package schema

import (
	"fmt"

	"github.com/phanxgames/puppet"

	"golang.org/x/mod/semver"
)

// Validate checks a document against the engine catalogs. The first
// problem found is returned as a fatal configuration error naming the
// offending scene and object; a document that validates renders without
// lookup failures.
//
// Validation expects a complete document: run [ApplyDefaults] first when
// loading hand-written files.
func Validate(doc *Document) error {
	if v := doc.SchemaVersion; v != "" {
		if !semver.IsValid(v) {
			return fmt.Errorf("schema: invalid schemaVersion %q", v)
		}
		if semver.Major(v) != "v1" {
			return fmt.Errorf("schema: unsupported schemaVersion %q, this reader takes v1", v)
		}
	}
	if doc.Meta.FPS <= 0 {
		return fmt.Errorf("schema: meta: fps must be positive, got %d", doc.Meta.FPS)
	}
	if doc.Meta.Width <= 0 || doc.Meta.Height <= 0 {
		return fmt.Errorf("schema: meta: canvas size must be positive, got %dx%d", doc.Meta.Width, doc.Meta.Height)
	}
	if doc.Meta.Theme != "" {
		if _, ok := ThemePalettes[doc.Meta.Theme]; !ok {
			return fmt.Errorf("schema: meta: unknown theme %q", doc.Meta.Theme)
		}
	}
	for i := range doc.Scenes {
		if err := validateScene(&doc.Scenes[i], i); err != nil {
			return err
		}
	}
	return nil
}

func validateScene(sc *Scene, index int) error {
	if sc.ID == "" {
		return fmt.Errorf("schema: scene %d: missing id", index)
	}
	if sc.EndMs <= sc.StartMs {
		return fmt.Errorf("schema: scene %q: endMs %d must be after startMs %d", sc.ID, sc.EndMs, sc.StartMs)
	}
	if sc.Template != "" && !contains(SceneTemplates, sc.Template) {
		return fmt.Errorf("schema: scene %q: unknown sceneTemplate %q", sc.ID, sc.Template)
	}
	if sc.Camera != "" {
		if _, err := puppet.GetDirection(sc.Camera); err != nil {
			return fmt.Errorf("schema: scene %q: %w", sc.ID, err)
		}
	}
	if sc.Transition.Type != "" && !contains(TransitionTypes, sc.Transition.Type) {
		return fmt.Errorf("schema: scene %q: unknown transition %q", sc.ID, sc.Transition.Type)
	}
	for i := range sc.Objects {
		if err := validateObject(sc, &sc.Objects[i]); err != nil {
			return err
		}
	}
	return nil
}

func validateObject(sc *Scene, o *Object) error {
	if o.ID == "" {
		return fmt.Errorf("schema: scene %q: object missing id", sc.ID)
	}
	errf := func(format string, args ...any) error {
		prefix := fmt.Sprintf("schema: scene %q object %q: ", sc.ID, o.ID)
		return fmt.Errorf(prefix+format, args...)
	}

	switch o.Type {
	case KindStickman:
		if o.Props.Pose != "" {
			if _, err := puppet.GetPose(o.Props.Pose); err != nil {
				return errf("%w", err)
			}
		}
		if o.Props.TargetPose != "" {
			if _, err := puppet.GetPose(o.Props.TargetPose); err != nil {
				return errf("targetPose: %w", err)
			}
		}
		if o.Props.Motion != "" {
			if _, err := puppet.GetMotion(o.Props.Motion); err != nil {
				return errf("%w", err)
			}
		}
		if o.Props.Expression != "" && !contains(Expressions, o.Props.Expression) {
			return errf("unknown expression %q", o.Props.Expression)
		}
	case KindText, KindCounter:
		if o.Type == KindCounter {
			switch o.Props.Format {
			case "", "number", "percent", "plain":
			default:
				return errf("unknown counter format %q", o.Props.Format)
			}
		}
		switch o.Props.Align {
		case "", "left", "center", "right":
		default:
			return errf("unknown align %q", o.Props.Align)
		}
	case KindIcon:
		if o.Props.Name != "" && !contains(IconNames, o.Props.Name) {
			return errf("unknown icon %q", o.Props.Name)
		}
	case KindShape:
		if o.Props.Shape != "" && !contains(ShapeKinds, o.Props.Shape) {
			return errf("unknown shape %q", o.Props.Shape)
		}
	case KindQR:
		if o.Props.URL == "" {
			return errf("qr object needs a url")
		}
	default:
		return errf("unknown object type %q", o.Type)
	}

	slots := []struct {
		name string
		def  *AnimationDef
	}{
		{"enter", o.Animation.Enter},
		{"during", o.Animation.During},
		{"exit", o.Animation.Exit},
	}
	for _, slot := range slots {
		if err := validateAnimationDef(o, slot.name, slot.def); err != nil {
			return errf("%s: %w", slot.name, err)
		}
	}
	return nil
}

// validateAnimationDef checks one phase slot. Inside a stickman's during
// slot the type may name a motion track; everywhere else it must be a
// visual effect whose category matches the slot.
func validateAnimationDef(o *Object, slot string, def *AnimationDef) error {
	if def == nil {
		return nil
	}
	if def.DurationMs < 0 {
		return fmt.Errorf("durationMs must not be negative, got %d", def.DurationMs)
	}
	if def.DelayMs < 0 {
		return fmt.Errorf("delayMs must not be negative, got %d", def.DelayMs)
	}

	isMotion := o.Type == KindStickman && slot == "during" && isMotionName(def.Type)
	if !isMotion {
		eff, err := puppet.ParseEffect(def.Type)
		if err != nil {
			return err
		}
		if err := checkEffectSlot(eff, slot); err != nil {
			return err
		}
		if eff == puppet.EffectPoseTransition && o.Type != KindStickman {
			return fmt.Errorf("poseTransition only animates stickman objects")
		}
	}

	if len(def.Keyframes) > 0 && o.Type != KindStickman {
		return fmt.Errorf("pose keyframes only animate stickman objects")
	}
	for i, kf := range def.Keyframes {
		if i > 0 && kf.AtMs < def.Keyframes[i-1].AtMs {
			return fmt.Errorf("keyframe times must not decrease (%dms after %dms)", kf.AtMs, def.Keyframes[i-1].AtMs)
		}
		if _, err := puppet.GetPose(kf.Pose); err != nil {
			return fmt.Errorf("keyframe at %dms: %w", kf.AtMs, err)
		}
	}
	return nil
}

// checkEffectSlot verifies the effect's category fits the phase slot it
// was declared in. EffectNone fits anywhere; a poseTransition may sit in
// the exit slot for the return leg of a pose track.
func checkEffectSlot(eff puppet.Effect, slot string) error {
	if eff == puppet.EffectNone {
		return nil
	}
	cat := eff.Category()
	switch slot {
	case "enter":
		if cat != puppet.CategoryEnter {
			return fmt.Errorf("%v is not an enter effect", eff)
		}
	case "during":
		if cat != puppet.CategoryDuring {
			return fmt.Errorf("%v is not a during effect", eff)
		}
	case "exit":
		if cat != puppet.CategoryExit && eff != puppet.EffectPoseTransition {
			return fmt.Errorf("%v is not an exit effect", eff)
		}
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
