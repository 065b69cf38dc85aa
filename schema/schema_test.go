package schema

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func sampleDocument() *Document {
	loop := false
	return &Document{
		SchemaVersion: SchemaVersion,
		Meta: Meta{
			Title:  "compound interest",
			FPS:    30,
			Width:  1920,
			Height: 1080,
			Theme:  "dark_cool",
			BGM:    &BGM{Src: "bgm/calm.mp3", Volume: 0.4, FadeInMs: 800},
		},
		Subtitles: Subtitles{
			Src:   "subs/words.json",
			Style: SubtitleStyle{FontSize: 36, Color: "#FFFFFF", Position: "bottom"},
		},
		Scenes: []Scene{
			{
				ID:         "hook",
				StartMs:    0,
				EndMs:      4000,
				Background: "#1a1a2e",
				Template:   "intro_greeting",
				Camera:     "static",
				Transition: Transition{Type: "fadeFromBlack", DurationMs: 300},
				SFX:        []SFXTrigger{{SFX: "whoosh", TriggerMs: 200, Volume: 0.5}},
				Objects: []Object{
					{
						ID:       "guide",
						Type:     KindStickman,
						Position: Position{X: 350, Y: 600},
						Props:    Props{Pose: "standing", Expression: "happy", Color: "#FFFFFF", LineWidth: 3},
						Animation: Animations{
							Enter:  &AnimationDef{Type: "fadeIn", DurationMs: 500},
							During: &AnimationDef{Type: "breathing"},
						},
					},
					{
						ID:       "title",
						Type:     KindText,
						Position: Position{X: 1100, Y: 350},
						Props:    Props{Content: "What is compound interest?", FontSize: 56, Align: "center", Color: "#FFFFFF", Style: "title"},
						Animation: Animations{
							Enter: &AnimationDef{Type: "fadeInUp", DurationMs: 400},
							Exit:  &AnimationDef{Type: "fadeOut", DurationMs: 300, Loop: &loop},
						},
					},
				},
			},
			{
				ID:       "payoff",
				StartMs:  4000,
				EndMs:    9000,
				Template: "emphasis_number",
				Camera:   "zoomInFast",
				Objects: []Object{
					{
						ID:       "growth",
						Type:     KindCounter,
						Position: Position{X: 960, Y: 450},
						Props:    Props{From: 100, To: 265, Format: "number", FontSize: 64, Color: "#FFFFFF"},
					},
				},
			},
		},
	}
}

// --- Load / Save ---

func TestSaveLoadRoundTrip(t *testing.T) {
	doc := sampleDocument()
	path := filepath.Join(t.TempDir(), "scenes.yaml")
	if err := Save(path, doc); err != nil {
		t.Fatalf("Save: %v", err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !reflect.DeepEqual(got, doc) {
		t.Errorf("round trip changed the document\n got: %+v\nwant: %+v", got, doc)
	}
}

func TestLoadAcceptsJSON(t *testing.T) {
	// YAML is a JSON superset, so exported JSON documents parse too.
	path := filepath.Join(t.TempDir(), "scenes.json")
	body := `{"schemaVersion":"v1.0.0","meta":{"fps":30},"scenes":[{"id":"s1","startMs":0,"endMs":2000}]}`
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if doc.SchemaVersion != "v1.0.0" || doc.Meta.FPS != 30 {
		t.Errorf("meta = %+v", doc.Meta)
	}
	if len(doc.Scenes) != 1 || doc.Scenes[0].EndMs != 2000 {
		t.Errorf("scenes = %+v", doc.Scenes)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("error = %v, want fs.ErrNotExist", err)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	if err := os.WriteFile(path, []byte("scenes: [empty\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("Load accepted malformed input")
	}
}

// --- Timeline queries ---

func TestDocumentDurationMs(t *testing.T) {
	doc := sampleDocument()
	if got := doc.DurationMs(); got != 9000 {
		t.Errorf("DurationMs = %d, want 9000", got)
	}
	empty := &Document{}
	if got := empty.DurationMs(); got != 0 {
		t.Errorf("empty DurationMs = %d, want 0", got)
	}
}

func TestSceneAt(t *testing.T) {
	doc := sampleDocument()
	cases := []struct {
		ms   int
		want int
	}{
		{0, 0},
		{3999, 0},
		{4000, 1}, // end is exclusive, next scene owns the boundary
		{8999, 1},
		{9000, -1},
		{-1, -1},
	}
	for _, c := range cases {
		if got := doc.SceneAt(c.ms); got != c.want {
			t.Errorf("SceneAt(%d) = %d, want %d", c.ms, got, c.want)
		}
	}
}

func TestSceneProgress(t *testing.T) {
	sc := Scene{StartMs: 1000, EndMs: 3000}
	cases := []struct {
		ms   int
		want float64
	}{
		{1000, 0},
		{2000, 0.5},
		{3000, 1},
		{500, 0},  // clamped below
		{4000, 1}, // clamped above
	}
	for _, c := range cases {
		if got := sc.Progress(c.ms); got != c.want {
			t.Errorf("Progress(%d) = %v, want %v", c.ms, got, c.want)
		}
	}
	zero := Scene{StartMs: 500, EndMs: 500}
	if got := zero.Progress(500); got != 1 {
		t.Errorf("zero-length Progress = %v, want 1", got)
	}
}
