package schema

// Object kinds a scene may contain.
const (
	KindStickman = "stickman"
	KindText     = "text"
	KindCounter  = "counter"
	KindIcon     = "icon"
	KindShape    = "shape"
	KindQR       = "qr"
)

// SceneTemplates lists every known scene template, the named layouts a
// script compiler can target. Templates drive the camera and transition
// defaults below.
var SceneTemplates = []string{
	"intro_greeting",
	"explain_default",
	"explain_formula",
	"explain_reverse",
	"emphasis_number",
	"emphasis_statement",
	"compare_side_by_side",
	"closing_summary",
	"transition_topic_change",
	"example_with_counter",
	"intro_hook",
	"intro_minimal",
	"explain_two_column",
	"explain_step_by_step",
	"emphasis_icon_focus",
	"closing_call_to_action",
	"explain_diagram",
	"explain_timeline",
	"compare_before_after",
	"compare_pros_cons",
	"list_bullets",
	"list_numbered",
	"quiz_question",
	"transition_break",
	"emphasis_quote",
}

// Layouts maps a layout name to canvas positions per object kind, on the
// default 1920x1080 canvas.
var Layouts = map[string]map[string]Position{
	"stickman_only": {
		KindStickman: {X: 960, Y: 600},
	},
	"stickman_text": {
		KindStickman: {X: 350, Y: 600},
		KindText:     {X: 1100, Y: 350},
	},
	"stickman_text_counter": {
		KindStickman: {X: 300, Y: 600},
		KindText:     {X: 960, Y: 250},
		KindCounter:  {X: 960, Y: 450},
	},
	"stickman_text_icon": {
		KindStickman: {X: 300, Y: 600},
		KindIcon:     {X: 960, Y: 300},
		KindText:     {X: 960, Y: 500},
	},
	"text_only": {
		KindText: {X: 960, Y: 400},
	},
	"stickman_icon": {
		KindStickman: {X: 400, Y: 600},
		KindIcon:     {X: 1100, Y: 400},
	},
}

// LayoutPosition returns the slot position for an object kind within a
// layout, or canvas center when the layout has no slot for it.
func LayoutPosition(layout, kind string) Position {
	if l, ok := Layouts[layout]; ok {
		if p, ok := l[kind]; ok {
			return p
		}
	}
	return Position{X: 960, Y: 540}
}

// ThemePalette is the three colors a theme provides.
type ThemePalette struct {
	Primary   string `yaml:"primary"`
	Secondary string `yaml:"secondary"`
	Accent    string `yaml:"accent"`
}

// ThemePalettes maps theme names to their palettes.
var ThemePalettes = map[string]ThemePalette{
	"dark_cool":   {Primary: "#1a1a2e", Secondary: "#16213e", Accent: "#0f3460"},
	"dark_warm":   {Primary: "#1a1a1a", Secondary: "#2d2d2d", Accent: "#3d3d3d"},
	"light_clean": {Primary: "#ffffff", Secondary: "#f5f5f5", Accent: "#e0e0e0"},
	"light_warm":  {Primary: "#faf8f5", Secondary: "#f5f0e8", Accent: "#e8e0d5"},
	"dark_purple": {Primary: "#1a0a2e", Secondary: "#2d1b4e", Accent: "#3d2b5e"},
	"dark_green":  {Primary: "#0a1a0a", Secondary: "#1b2d1b", Accent: "#2b3d2b"},
	"sunset":      {Primary: "#1a0f0a", Secondary: "#2d1b15", Accent: "#3d2b20"},
	"ocean":       {Primary: "#0a1a1f", Secondary: "#152d35", Accent: "#203d45"},
	"forest":      {Primary: "#0f1a0a", Secondary: "#1b2d15", Accent: "#2b3d20"},
	"midnight":    {Primary: "#0a0a1a", Secondary: "#15152d", Accent: "#20203d"},
}

// TransitionTypes lists the scene transition kinds the renderer blends.
var TransitionTypes = []string{
	"cut",
	"crossfade",
	"fadeToBlack",
	"fadeFromBlack",
	"slideLeft",
	"slideRight",
	"slideUp",
	"slideDown",
	"wipeLeft",
	"wipeRight",
}

// IconNames lists the built-in icon glyphs.
var IconNames = []string{
	"lightbulb", "check", "cross", "star", "heart", "warning", "question", "gear",
}

// ShapeKinds lists the built-in shape objects.
var ShapeKinds = []string{"line", "arrow", "rect", "circle", "underline"}

// Expressions lists the stickman face variants.
var Expressions = []string{
	"neutral", "happy", "excited", "sad", "surprised",
	"thinking", "angry", "focused", "worried",
}

// templateCameras maps a scene template to a camera direction preset.
// Templates missing here fall back to a static camera.
var templateCameras = map[string]string{
	"intro_greeting": "static",
	"intro_hook":     "zoomIn",
	"intro_minimal":  "static",

	"explain_default":      "static",
	"explain_formula":      "staticCloseup",
	"explain_reverse":      "panRight",
	"explain_two_column":   "staticWide",
	"explain_step_by_step": "static",
	"explain_diagram":      "staticWide",
	"explain_timeline":     "panRight",

	"emphasis_number":     "zoomInFast",
	"emphasis_statement":  "zoomIn",
	"emphasis_icon_focus": "staticCloseup",
	"emphasis_quote":      "zoomBreathe",

	"compare_side_by_side": "staticWide",
	"compare_before_after": "panRight",
	"compare_pros_cons":    "staticWide",

	"list_bullets":  "static",
	"list_numbered": "static",

	"transition_topic_change": "zoomOut",
	"transition_break":        "static",

	"example_with_counter": "static",
	"quiz_question":        "zoomIn",

	"closing_summary":        "static",
	"closing_call_to_action": "zoomIn",
}

// templateTransitions maps a scene template to its preferred incoming
// transition. Templates missing here prefer a crossfade.
var templateTransitions = map[string]string{
	"intro_greeting": "fadeFromBlack",
	"intro_hook":     "fadeFromBlack",
	"intro_minimal":  "fadeFromBlack",

	"explain_default":      "crossfade",
	"explain_formula":      "crossfade",
	"explain_reverse":      "slideLeft",
	"explain_two_column":   "crossfade",
	"explain_step_by_step": "slideUp",

	"emphasis_number":     "cut",
	"emphasis_statement":  "cut",
	"emphasis_icon_focus": "crossfade",

	"compare_side_by_side": "crossfade",
	"compare_before_after": "slideLeft",

	"transition_topic_change": "fadeToBlack",
	"transition_break":        "fadeToBlack",

	"closing_summary":        "crossfade",
	"closing_call_to_action": "crossfade",
}

// poseMotions maps each base pose to the idle motion it holds. Poses
// missing here breathe.
var poseMotions = map[string]string{
	"standing":         "breathing",
	"standing_relaxed": "breathing",
	"sitting":          "breathing",
	"sitting_crossed":  "breathing",

	"pointing_right": "breathing",
	"pointing_left":  "breathing",
	"pointing_up":    "nodding",
	"pointing_down":  "breathing",
	"both_hands_up":  "breathing",
	"arms_crossed":   "breathing",
	"hands_on_hips":  "breathing",
	"hand_on_chin":   "thinking_loop",
	"waving":         "waving_loop",
	"thumbsUp":       "breathing",
	"beckoning":      "breathing",
	"shrugging":      "headShake",

	"thinking":       "thinking_loop",
	"explaining":     "nodding",
	"celebrating":    "jumping",
	"depressed":      "crying",
	"surprised_pose": "breathing",
	"confident":      "breathing",
	"nervous_pose":   "nervous",

	"walking":      "walkCycle",
	"running_pose": "running",
	"jumping_pose": "jumping",
	"typing_pose":  "typing",
	"presenting":   "nodding",
	"listening":    "nodding",
}

// expressionMotions maps expressions that force a motion regardless of
// pose. Expressions missing here defer to the pose.
var expressionMotions = map[string]string{
	"excited":  "jumping",
	"sad":      "crying",
	"thinking": "thinking_loop",
	"angry":    "headShake",
	"worried":  "nervous",
}

// PoseActions maps action words a script may use to the pose a stickman
// transitions into while performing them.
var PoseActions = map[string]string{
	"waving":    "waving",
	"pointing":  "pointing_right",
	"thumbsUp":  "thumbsUp",
	"beckoning": "beckoning",
	"excited":   "celebrating",
}

// objectSFX maps object kinds to the sound their entry triggers. Kinds
// missing here enter silently; the stickman enters too often to chime.
var objectSFX = map[string]string{
	KindText:    "whoosh",
	KindCounter: "chime",
	KindIcon:    "pop",
	KindShape:   "whoosh",
	KindQR:      "pop",
}

// animationSFX maps enter effect names to sounds, overriding the object
// kind's default.
var animationSFX = map[string]string{
	"popIn":      "pop",
	"fadeInUp":   "whoosh",
	"slideLeft":  "whoosh",
	"slideRight": "whoosh",
}

// AutoCamera picks the camera direction preset for a scene template.
func AutoCamera(template string) string {
	if c, ok := templateCameras[template]; ok {
		return c
	}
	return "static"
}

// AutoMotion picks a stickman's motion from its pose and expression. The
// expression wins when it forces one; otherwise the pose decides, and
// unknown poses breathe.
func AutoMotion(pose, expression string) string {
	if m, ok := expressionMotions[expression]; ok {
		return m
	}
	if m, ok := poseMotions[pose]; ok {
		return m
	}
	return "breathing"
}

// AutoTemplate picks a scene template from the scene's position in the
// video and the object kinds it contains. First and last scenes get the
// intro and closing templates; content rules and position-based
// alternation keep the middle varied.
func AutoTemplate(sceneIndex, totalScenes int, kinds []string) string {
	if sceneIndex == 0 {
		return "intro_greeting"
	}
	if sceneIndex == totalScenes-1 {
		return "closing_summary"
	}

	counterCount, textCount, iconCount := 0, 0, 0
	for _, k := range kinds {
		switch k {
		case KindCounter:
			counterCount++
		case KindText:
			textCount++
		case KindIcon:
			iconCount++
		}
	}
	if counterCount > 0 {
		return "emphasis_number"
	}
	if textCount >= 2 {
		return "compare_side_by_side"
	}
	if iconCount > 0 && textCount == 0 {
		return "emphasis_icon_focus"
	}

	denom := totalScenes - 1
	if denom < 1 {
		denom = 1
	}
	ratio := float64(sceneIndex) / float64(denom)
	switch {
	case ratio < 0.3:
		return alternate(sceneIndex, "explain_default", "explain_formula", "intro_hook")
	case ratio < 0.7:
		return alternate(sceneIndex, "explain_default", "explain_reverse", "example_with_counter", "emphasis_statement")
	default:
		return alternate(sceneIndex, "emphasis_statement", "transition_topic_change", "explain_default")
	}
}

func alternate(index int, options ...string) string {
	return options[index%len(options)]
}

// AutoTransition picks a transition for a scene template, avoiding an
// immediate repeat of the previous scene's transition.
func AutoTransition(template, previous string) string {
	preferred, ok := templateTransitions[template]
	if !ok {
		preferred = "crossfade"
	}
	if preferred == previous {
		for _, alt := range []string{"crossfade", "cut", "slideLeft"} {
			if alt != previous {
				return alt
			}
		}
	}
	return preferred
}

// AutoTextStyle classifies a text object by its position in the scene and
// its content: the first text is the title, bare numbers are numbers,
// short phrases become highlight boxes, the rest is body copy.
func AutoTextStyle(textIndex, totalTexts int, content string) string {
	if textIndex == 0 {
		return "title"
	}
	if isNumeric(content) {
		return "number"
	}
	if len(content) < 10 {
		return "highlight_box"
	}
	return "body"
}

func isNumeric(s string) bool {
	digits := 0
	for _, r := range s {
		switch {
		case r >= '0' && r <= '9':
			digits++
		case r == ',' || r == '.' || r == '%':
		default:
			return false
		}
	}
	return digits > 0
}
