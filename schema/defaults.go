package schema

import (
	"fmt"
	"math"
	"strconv"
)

// Document-level defaults.
const (
	DefaultFPS    = 30
	DefaultWidth  = 1920
	DefaultHeight = 1080
	DefaultTheme  = "dark_cool"

	defaultTransitionMs = 300
)

// ApplyDefaults fills every omitted field of the document in place:
// metadata, per-scene templates, cameras, backgrounds and transitions,
// and per-object props and animations. The enrichment is deterministic
// and idempotent; explicit values are never overwritten.
func ApplyDefaults(doc *Document) {
	if doc.SchemaVersion == "" {
		doc.SchemaVersion = SchemaVersion
	}
	if doc.Meta.FPS <= 0 {
		doc.Meta.FPS = DefaultFPS
	}
	if doc.Meta.Width <= 0 {
		doc.Meta.Width = DefaultWidth
	}
	if doc.Meta.Height <= 0 {
		doc.Meta.Height = DefaultHeight
	}
	if doc.Meta.Theme == "" {
		doc.Meta.Theme = DefaultTheme
	}

	backgrounds := AutoBackgrounds(doc.Meta.Theme, len(doc.Scenes))
	previous := ""
	for i := range doc.Scenes {
		sc := &doc.Scenes[i]

		if sc.Template == "" {
			kinds := make([]string, len(sc.Objects))
			for j := range sc.Objects {
				kinds[j] = sc.Objects[j].Type
			}
			sc.Template = AutoTemplate(i, len(doc.Scenes), kinds)
		}
		if sc.Camera == "" {
			sc.Camera = AutoCamera(sc.Template)
		}
		if sc.Background == "" {
			sc.Background = backgrounds[i]
		}
		if sc.Transition.Type == "" {
			sc.Transition.Type = AutoTransition(sc.Template, previous)
		}
		if sc.Transition.DurationMs <= 0 {
			sc.Transition.DurationMs = defaultTransitionMs
		}
		previous = sc.Transition.Type

		totalTexts := 0
		for j := range sc.Objects {
			if sc.Objects[j].Type == KindText {
				totalTexts++
			}
		}
		textIndex := 0
		for j := range sc.Objects {
			o := &sc.Objects[j]
			if o.Type == KindText {
				applyTextDefaults(o, textIndex, totalTexts)
				textIndex++
			} else {
				applyObjectDefaults(o)
			}
		}

		if len(sc.SFX) == 0 {
			sc.SFX = autoSceneSFX(sc.Objects)
		}
	}
}

// applyObjectDefaults fills the kind-specific props and the default
// animation slots for everything but text objects.
func applyObjectDefaults(o *Object) {
	switch o.Type {
	case KindStickman:
		if o.Props.Pose == "" {
			o.Props.Pose = "standing"
		}
		if o.Props.Expression == "" {
			o.Props.Expression = "neutral"
		}
		if o.Props.Color == "" {
			o.Props.Color = "#FFFFFF"
		}
		if o.Props.LineWidth <= 0 {
			o.Props.LineWidth = 3
		}
		if o.Props.Motion == "" || o.Props.Motion == "breathing" {
			o.Props.Motion = AutoMotion(o.Props.Pose, o.Props.Expression)
		}
		if o.Props.TargetPose != "" {
			if o.Animation.Enter == nil {
				o.Animation.Enter = &AnimationDef{Type: "poseTransition", DurationMs: 400}
			}
			if o.Animation.Exit == nil {
				o.Animation.Exit = &AnimationDef{Type: "poseTransition", DurationMs: 300}
			}
		} else {
			if o.Animation.Enter == nil {
				o.Animation.Enter = &AnimationDef{Type: "fadeIn", DurationMs: 500}
			}
			if o.Animation.During == nil {
				o.Animation.During = &AnimationDef{Type: o.Props.Motion}
			}
		}
	case KindCounter:
		if o.Props.From == 0 && o.Props.To == 0 {
			o.Props.To = 100
		}
		if o.Props.Format == "" {
			o.Props.Format = "number"
		}
		if o.Props.FontSize <= 0 {
			o.Props.FontSize = 64
		}
		if o.Props.Color == "" {
			o.Props.Color = "#FFFFFF"
		}
		if o.Animation.Enter == nil {
			o.Animation.Enter = &AnimationDef{Type: "fadeIn", DurationMs: 300}
		}
	case KindIcon:
		if o.Props.Name == "" {
			o.Props.Name = "lightbulb"
		}
		if o.Props.Size <= 0 {
			o.Props.Size = 80
		}
		if o.Props.Color == "" {
			o.Props.Color = "#FFFFFF"
		}
		if o.Animation.Enter == nil {
			o.Animation.Enter = &AnimationDef{Type: "popIn", DurationMs: 400}
		}
	case KindShape:
		if o.Props.Shape == "" {
			o.Props.Shape = "arrow"
		}
		if o.Props.Size <= 0 {
			o.Props.Size = 200
		}
		if o.Props.StrokeWidth <= 0 {
			o.Props.StrokeWidth = 3
		}
		if o.Props.Color == "" {
			o.Props.Color = "#FFFFFF"
		}
		if o.Animation.Enter == nil {
			o.Animation.Enter = &AnimationDef{Type: "drawLine", DurationMs: 500}
		}
	case KindQR:
		if o.Props.Size <= 0 {
			o.Props.Size = 260
		}
		if o.Animation.Enter == nil {
			o.Animation.Enter = &AnimationDef{Type: "popIn", DurationMs: 400}
		}
	}
}

func applyTextDefaults(o *Object, textIndex, totalTexts int) {
	if o.Props.FontSize <= 0 {
		o.Props.FontSize = 48
	}
	if o.Props.FontWeight == "" {
		o.Props.FontWeight = "normal"
	}
	if o.Props.Color == "" {
		o.Props.Color = "#FFFFFF"
	}
	if o.Props.Align == "" {
		o.Props.Align = "center"
	}
	if o.Props.MaxWidth <= 0 {
		o.Props.MaxWidth = 800
	}
	if o.Props.Style == "" {
		o.Props.Style = AutoTextStyle(textIndex, totalTexts, o.Props.Content)
	}
	if o.Animation.Enter == nil {
		o.Animation.Enter = &AnimationDef{Type: "fadeInUp", DurationMs: 400}
	}
}

// autoSceneSFX derives one trigger per noisy object entry, fired at the
// midpoint of the enter animation.
func autoSceneSFX(objects []Object) []SFXTrigger {
	var triggers []SFXTrigger
	for i := range objects {
		o := &objects[i]
		enterType := ""
		enterDur := 400
		if o.Animation.Enter != nil {
			enterType = o.Animation.Enter.Type
			if o.Animation.Enter.DurationMs > 0 {
				enterDur = o.Animation.Enter.DurationMs
			}
		}
		sfx, ok := animationSFX[enterType]
		if !ok {
			sfx = objectSFX[o.Type]
		}
		if sfx == "" {
			continue
		}
		triggers = append(triggers, SFXTrigger{SFX: sfx, TriggerMs: enterDur / 2, Volume: 0.5})
	}
	return triggers
}

// AutoBackgrounds generates one background color per scene inside the
// theme palette. A sine sweep between primary and secondary keeps long
// videos from feeling flat while staying within the theme.
func AutoBackgrounds(theme string, totalScenes int) []string {
	palette, ok := ThemePalettes[theme]
	if !ok {
		palette = ThemePalettes[DefaultTheme]
	}
	colors := make([]string, totalScenes)
	for i := range colors {
		ratio := 0.0
		if totalScenes > 1 {
			ratio = math.Sin(float64(i)/float64(totalScenes-1)*math.Pi) * 0.3
		}
		colors[i] = blendHex(palette.Primary, palette.Secondary, ratio)
	}
	return colors
}

// blendHex interpolates two #rrggbb colors, truncating each channel.
func blendHex(a, b string, t float64) string {
	ar, ag, ab := hexRGB(a)
	br, bg, bb := hexRGB(b)
	return fmt.Sprintf("#%02x%02x%02x",
		ar+int(float64(br-ar)*t),
		ag+int(float64(bg-ag)*t),
		ab+int(float64(bb-ab)*t))
}

// hexRGB parses #rrggbb, tolerating malformed input as black.
func hexRGB(s string) (r, g, b int) {
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return 0, 0, 0
	}
	rv, err1 := strconv.ParseUint(s[0:2], 16, 8)
	gv, err2 := strconv.ParseUint(s[2:4], 16, 8)
	bv, err3 := strconv.ParseUint(s[4:6], 16, 8)
	if err1 != nil || err2 != nil || err3 != nil {
		return 0, 0, 0
	}
	return int(rv), int(gv), int(bv)
}
