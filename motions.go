package puppet

import (
	"fmt"
	"sort"
)

// UnknownMotionError reports a motion name with no registered track. Like
// pose names, motion names come from trusted scene data; treat this as a
// fatal configuration error.
type UnknownMotionError struct {
	Name string
}

func (e *UnknownMotionError) Error() string {
	return fmt.Sprintf("puppet: unknown motion %q", e.Name)
}

// GetMotion looks up a motion track by name.
func GetMotion(name string) (Motion, error) {
	m, ok := motionPresets[name]
	if !ok {
		debugf("unknown motion %q", name)
		return Motion{}, &UnknownMotionError{Name: name}
	}
	return m, nil
}

// MotionNames returns the sorted names of all registered motion tracks.
func MotionNames() []string {
	names := make([]string, 0, len(motionPresets))
	for n := range motionPresets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ov is shorthand for building catalog overrides.
func ov(j Joint, deg float64) JointAngle {
	return JointAngle{Joint: j, Deg: deg}
}

// motionPresets is the built-in motion catalog. Overrides are absolute
// joint angles, replacing the base pose's value for the joints they name.
// Idle motions (breathing, swaying) touch few joints so they layer over
// any base pose; locomotion tracks (walkCycle, running) own the limbs.
var motionPresets = map[string]Motion{
	"breathing": {
		Name:    "breathing",
		CycleMs: 3000,
		Keyframes: []MotionKeyframe{
			{Progress: 0, Override: DeltaOf(ov(JointTorso, 0), ov(JointHead, 0))},
			{Progress: 0.5, Override: DeltaOf(ov(JointTorso, 1.2), ov(JointHead, -1.5))},
		},
	},
	"nodding": {
		Name:    "nodding",
		CycleMs: 1200,
		Keyframes: []MotionKeyframe{
			{Progress: 0, Override: DeltaOf(ov(JointHead, 0))},
			{Progress: 0.5, Override: DeltaOf(ov(JointHead, 12))},
		},
	},
	"headShake": {
		Name:    "headShake",
		CycleMs: 1000,
		Keyframes: []MotionKeyframe{
			{Progress: 0, Override: DeltaOf(ov(JointHead, -10))},
			{Progress: 0.5, Override: DeltaOf(ov(JointHead, 10))},
		},
	},
	"typing": {
		Name:    "typing",
		CycleMs: 600,
		Keyframes: []MotionKeyframe{
			{Progress: 0, Override: DeltaOf(ov(JointLowerArmL, -70), ov(JointLowerArmR, 80))},
			{Progress: 0.5, Override: DeltaOf(ov(JointLowerArmL, -80), ov(JointLowerArmR, 70))},
		},
	},
	"nervous": {
		Name:    "nervous",
		CycleMs: 900,
		Keyframes: []MotionKeyframe{
			{Progress: 0, Override: DeltaOf(ov(JointTorso, 4), ov(JointHead, 6))},
			{Progress: 0.33, Override: DeltaOf(ov(JointTorso, 7), ov(JointHead, 9))},
			{Progress: 0.66, Override: DeltaOf(ov(JointTorso, 5), ov(JointHead, 7))},
		},
	},
	"laughing": {
		Name:    "laughing",
		CycleMs: 700,
		Keyframes: []MotionKeyframe{
			{Progress: 0, Override: DeltaOf(ov(JointTorso, 4), ov(JointHead, -6))},
			{Progress: 0.5, Override: DeltaOf(ov(JointTorso, 10), ov(JointHead, -14))},
		},
	},
	"crying": {
		Name:    "crying",
		CycleMs: 1600,
		Keyframes: []MotionKeyframe{
			{Progress: 0, Override: DeltaOf(ov(JointTorso, 8), ov(JointHead, 16))},
			{Progress: 0.5, Override: DeltaOf(ov(JointTorso, 10), ov(JointHead, 20))},
		},
	},
	"clapping": {
		Name:    "clapping",
		CycleMs: 500,
		Keyframes: []MotionKeyframe{
			{Progress: 0, Override: DeltaOf(
				ov(JointUpperArmL, 45), ov(JointLowerArmL, -60),
				ov(JointUpperArmR, -45), ov(JointLowerArmR, 60),
			)},
			{Progress: 0.5, Override: DeltaOf(
				ov(JointUpperArmL, 60), ov(JointLowerArmL, -95),
				ov(JointUpperArmR, -60), ov(JointLowerArmR, 95),
			)},
		},
	},
	"jumping": {
		Name:    "jumping",
		CycleMs: 1000,
		Keyframes: []MotionKeyframe{
			{Progress: 0, Override: DeltaOf(
				ov(JointTorso, 0),
				ov(JointUpperLegL, 0), ov(JointLowerLegL, 0),
				ov(JointUpperLegR, 0), ov(JointLowerLegR, 0),
			)},
			{Progress: 0.3, Override: DeltaOf(
				ov(JointTorso, 6),
				ov(JointUpperLegL, 25), ov(JointLowerLegL, -40),
				ov(JointUpperLegR, -25), ov(JointLowerLegR, 40),
			)},
			{Progress: 0.6, Override: DeltaOf(
				ov(JointTorso, -4),
				ov(JointUpperLegL, -8), ov(JointLowerLegL, 5),
				ov(JointUpperLegR, 8), ov(JointLowerLegR, -5),
			)},
		},
	},
	"running": {
		Name:    "running",
		CycleMs: 600,
		Keyframes: []MotionKeyframe{
			{Progress: 0, Override: DeltaOf(
				ov(JointUpperArmL, 50), ov(JointUpperArmR, -50),
				ov(JointUpperLegL, -40), ov(JointLowerLegL, 25),
				ov(JointUpperLegR, 45), ov(JointLowerLegR, -70),
			)},
			{Progress: 0.5, Override: DeltaOf(
				ov(JointUpperArmL, -50), ov(JointUpperArmR, 50),
				ov(JointUpperLegL, 45), ov(JointLowerLegL, -70),
				ov(JointUpperLegR, -40), ov(JointLowerLegR, 25),
			)},
		},
	},
	"walkCycle": {
		Name:    "walkCycle",
		CycleMs: 1000,
		Keyframes: []MotionKeyframe{
			{Progress: 0, Override: DeltaOf(
				ov(JointUpperArmL, 30), ov(JointUpperArmR, -30),
				ov(JointUpperLegL, -25), ov(JointLowerLegL, 12),
				ov(JointUpperLegR, 28), ov(JointLowerLegR, -40),
			)},
			{Progress: 0.5, Override: DeltaOf(
				ov(JointUpperArmL, -30), ov(JointUpperArmR, 30),
				ov(JointUpperLegL, 28), ov(JointLowerLegL, -40),
				ov(JointUpperLegR, -25), ov(JointLowerLegR, 12),
			)},
		},
	},
	"thinking_loop": {
		Name:    "thinking_loop",
		CycleMs: 2400,
		Keyframes: []MotionKeyframe{
			{Progress: 0, Override: DeltaOf(ov(JointHead, 6), ov(JointLowerArmR, -110))},
			{Progress: 0.5, Override: DeltaOf(ov(JointHead, 10), ov(JointLowerArmR, -120))},
		},
	},
	"waving_loop": {
		Name:    "waving_loop",
		CycleMs: 800,
		Keyframes: []MotionKeyframe{
			{Progress: 0, Override: DeltaOf(ov(JointUpperArmR, -160), ov(JointLowerArmR, -25))},
			{Progress: 0.5, Override: DeltaOf(ov(JointUpperArmR, -160), ov(JointLowerArmR, 25))},
		},
	},
	"swaying": {
		Name:    "swaying",
		CycleMs: 2600,
		Keyframes: []MotionKeyframe{
			{Progress: 0, Override: DeltaOf(ov(JointTorso, -3))},
			{Progress: 0.5, Override: DeltaOf(ov(JointTorso, 3))},
		},
	},
}
