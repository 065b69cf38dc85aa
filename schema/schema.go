package schema

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// SchemaVersion is the document version this package writes. Readers
// accept any v1 document; see [Validate].
const SchemaVersion = "v1.2.0"

// Document is a complete scene description: one video.
type Document struct {
	SchemaVersion string    `yaml:"schemaVersion,omitempty"`
	Meta          Meta      `yaml:"meta"`
	Subtitles     Subtitles `yaml:"subtitles,omitempty"`
	Scenes        []Scene   `yaml:"scenes"`
}

// Meta carries the global render settings and the audio track references.
type Meta struct {
	Title    string `yaml:"title,omitempty"`
	FPS      int    `yaml:"fps,omitempty"`
	Width    int    `yaml:"width,omitempty"`
	Height   int    `yaml:"height,omitempty"`
	AudioSrc string `yaml:"audioSrc,omitempty"`
	Theme    string `yaml:"theme,omitempty"`
	BGM      *BGM   `yaml:"bgm,omitempty"`
}

// BGM configures background music. Carried for round-tripping; the
// renderer does not mix audio.
type BGM struct {
	Src              string  `yaml:"src"`
	Volume           float64 `yaml:"volume,omitempty"`
	FadeInMs         int     `yaml:"fadeInMs,omitempty"`
	FadeOutMs        int     `yaml:"fadeOutMs,omitempty"`
	DuckingLevel     float64 `yaml:"duckingLevel,omitempty"`
	DuckingAttackMs  int     `yaml:"duckingAttackMs,omitempty"`
	DuckingReleaseMs int     `yaml:"duckingReleaseMs,omitempty"`
}

// Subtitles references a word-timing file and its display style. Carried
// for round-tripping; subtitle layout is out of scope.
type Subtitles struct {
	Src   string        `yaml:"src,omitempty"`
	Style SubtitleStyle `yaml:"style,omitempty"`
}

// SubtitleStyle is the subtitle text appearance.
type SubtitleStyle struct {
	FontSize       int    `yaml:"fontSize,omitempty"`
	Color          string `yaml:"color,omitempty"`
	Position       string `yaml:"position,omitempty"`
	HighlightColor string `yaml:"highlightColor,omitempty"`
}

// Scene is one timed section of the video. StartMs is inclusive, EndMs
// exclusive; scenes are expected in order and non-overlapping.
type Scene struct {
	ID         string       `yaml:"id"`
	StartMs    int          `yaml:"startMs"`
	EndMs      int          `yaml:"endMs"`
	Background string       `yaml:"background,omitempty"`
	Template   string       `yaml:"sceneTemplate,omitempty"`
	Camera     string       `yaml:"camera,omitempty"`
	Transition Transition   `yaml:"transition,omitempty"`
	SFX        []SFXTrigger `yaml:"sfxTriggers,omitempty"`
	Objects    []Object     `yaml:"objects,omitempty"`
}

// DurationMs is the scene's length.
func (s *Scene) DurationMs() int {
	return s.EndMs - s.StartMs
}

// Progress maps an absolute millisecond offset to the scene's [0, 1]
// progress, clamped. Zero-length scenes report 1.
func (s *Scene) Progress(ms int) float64 {
	dur := s.DurationMs()
	if dur <= 0 {
		return 1
	}
	p := float64(ms-s.StartMs) / float64(dur)
	if p < 0 {
		return 0
	}
	if p > 1 {
		return 1
	}
	return p
}

// Transition describes how the scene blends in from the previous one.
type Transition struct {
	Type       string `yaml:"type,omitempty"`
	DurationMs int    `yaml:"durationMs,omitempty"`
}

// SFXTrigger schedules a sound effect relative to the scene start.
// Carried for round-tripping; the renderer does not mix audio.
type SFXTrigger struct {
	SFX       string  `yaml:"sfx"`
	TriggerMs int     `yaml:"triggerMs"`
	Volume    float64 `yaml:"volume,omitempty"`
}

// Object is one animated member of a scene. Type selects the kind
// (stickman, text, counter, icon, shape, qr) and decides which Props
// fields apply.
type Object struct {
	ID        string     `yaml:"id"`
	Type      string     `yaml:"type"`
	Position  Position   `yaml:"position"`
	Props     Props      `yaml:"props,omitempty"`
	Animation Animations `yaml:"animation,omitempty"`
}

// Position is a point on the canvas in pixels.
type Position struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

// Animations holds the optional per-phase animation definitions.
type Animations struct {
	Enter  *AnimationDef `yaml:"enter,omitempty"`
	During *AnimationDef `yaml:"during,omitempty"`
	Exit   *AnimationDef `yaml:"exit,omitempty"`
}

// AnimationDef names an animation preset with optional timing overrides.
// In a stickman's during slot, Type may name a motion track instead of a
// visual effect. Loop nil means looping, matching the document default.
type AnimationDef struct {
	Type       string         `yaml:"type"`
	DurationMs int            `yaml:"durationMs,omitempty"`
	DelayMs    int            `yaml:"delayMs,omitempty"`
	Loop       *bool          `yaml:"loop,omitempty"`
	Keyframes  []PoseKeyframe `yaml:"keyframes,omitempty"`
}

// PoseKeyframe pins a named pose at a millisecond offset inside a custom
// character track.
type PoseKeyframe struct {
	AtMs int    `yaml:"atMs"`
	Pose string `yaml:"pose"`
}

// Props is the per-kind property bag, flattened so documents stay plain.
// Only the fields for the object's kind are meaningful.
type Props struct {
	// stickman
	Pose       string  `yaml:"pose,omitempty"`
	TargetPose string  `yaml:"targetPose,omitempty"`
	Motion     string  `yaml:"motion,omitempty"`
	Expression string  `yaml:"expression,omitempty"`
	LineWidth  float64 `yaml:"lineWidth,omitempty"`

	// text
	Content    string  `yaml:"content,omitempty"`
	FontSize   int     `yaml:"fontSize,omitempty"`
	FontWeight string  `yaml:"fontWeight,omitempty"`
	Align      string  `yaml:"align,omitempty"`
	MaxWidth   float64 `yaml:"maxWidth,omitempty"`
	Style      string  `yaml:"style,omitempty"`

	// counter
	From   int    `yaml:"from,omitempty"`
	To     int    `yaml:"to,omitempty"`
	Format string `yaml:"format,omitempty"`

	// icon and qr
	Name string  `yaml:"name,omitempty"`
	Size float64 `yaml:"size,omitempty"`
	URL  string  `yaml:"url,omitempty"`

	// shape
	Shape       string  `yaml:"shape,omitempty"`
	StrokeWidth float64 `yaml:"strokeWidth,omitempty"`
	Fill        bool    `yaml:"fill,omitempty"`

	// shared
	Color string `yaml:"color,omitempty"`
}

// Load reads a scene document from a YAML (or JSON) file.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("schema: read %s: %w", path, err)
	}
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("schema: parse %s: %w", path, err)
	}
	return &doc, nil
}

// Save writes a scene document as YAML.
func Save(path string, doc *Document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("schema: encode: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("schema: write %s: %w", path, err)
	}
	return nil
}

// DurationMs is the video length: the last scene's end.
func (d *Document) DurationMs() int {
	end := 0
	for i := range d.Scenes {
		if d.Scenes[i].EndMs > end {
			end = d.Scenes[i].EndMs
		}
	}
	return end
}

// SceneAt returns the index of the scene covering the millisecond offset,
// or -1 when no scene does.
func (d *Document) SceneAt(ms int) int {
	for i := range d.Scenes {
		if ms >= d.Scenes[i].StartMs && ms < d.Scenes[i].EndMs {
			return i
		}
	}
	return -1
}
