package puppet

import (
	"fmt"
	"sort"
)

// UnknownPoseError reports a pose name with no registered preset. Pose
// names originate from trusted scene data, so callers should treat this as
// a fatal configuration error, not a recoverable runtime case.
type UnknownPoseError struct {
	Name string
}

func (e *UnknownPoseError) Error() string {
	return fmt.Sprintf("puppet: unknown pose %q", e.Name)
}

// GetPose looks up a pose preset by name.
func GetPose(name string) (Pose, error) {
	p, ok := posePresets[name]
	if !ok {
		debugf("unknown pose %q", name)
		return Pose{}, &UnknownPoseError{Name: name}
	}
	return p, nil
}

// PoseNames returns the sorted names of all registered pose presets.
func PoseNames() []string {
	names := make([]string, 0, len(posePresets))
	for n := range posePresets {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// posePresets is the built-in pose catalog. Angles are degrees, positive
// clockwise on screen; limbs hang straight down at 0, the torso stands
// straight up. Pose array order:
//
//	torso, head, upperArmL, lowerArmL, upperArmR, lowerArmR,
//	upperLegL, lowerLegL, upperLegR, lowerLegR
//
// Left and right are screen-relative: the L arm swings toward -X, the R
// arm toward +X (so R angles are usually negative mirrors of L).
var posePresets = map[string]Pose{
	"standing":         {0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
	"standing_relaxed": {2, -2, 8, 4, -8, -4, 3, -2, -3, 2},
	"sitting":          {4, 0, 18, 12, -18, -12, 78, -70, -78, 70},
	"sitting_crossed":  {6, 0, 25, 40, -25, -40, 85, -120, -85, 120},
	"pointing_right":   {-3, -5, 10, 5, -95, -5, 0, 0, 0, 0},
	"pointing_left":    {3, 5, 95, 5, -10, -5, 0, 0, 0, 0},
	"pointing_up":      {-2, -8, 8, 4, -150, -25, 0, 0, 0, 0},
	"pointing_down":    {2, 6, 8, 4, -35, -10, 0, 0, 0, 0},
	"both_hands_up":    {0, -3, 155, 15, -155, -15, 0, 0, 0, 0},
	"arms_crossed":     {2, 2, 35, 95, -35, -95, 0, 0, 0, 0},
	"hands_on_hips":    {-2, 0, 55, -70, -55, 70, 0, 0, 0, 0},
	"hand_on_chin":     {4, 6, 12, 8, -30, -120, 0, 0, 0, 0},
	"waving":           {-2, -4, 10, 6, -150, -30, 0, 0, 0, 0},
	"thumbsUp":         {0, -2, 8, 4, -80, -45, 0, 0, 0, 0},
	"beckoning":        {-4, -5, 12, 6, -100, -50, 0, 0, 0, 0},
	"shrugging":        {0, 4, 70, -95, -70, 95, 0, 0, 0, 0},
	"thinking":         {5, 8, 15, 10, -25, -115, 0, 0, 0, 0},
	"explaining":       {-2, 0, 40, -30, -55, -35, 0, 0, 0, 0},
	"celebrating":      {-3, -6, 160, 20, -160, -20, 5, 0, -5, 0},
	"depressed":        {14, 22, 5, 3, -5, -3, 2, 0, -2, 0},
	"surprised_pose":   {-6, -8, 60, -40, -60, 40, 0, 0, 0, 0},
	"confident":        {-4, -2, 50, -75, -50, 75, 6, 0, -6, 0},
	"nervous_pose":     {6, 8, 20, 45, -20, -45, 3, 0, -3, 0},
	"walking":          {-2, 0, 28, 18, -28, -18, -22, 10, 24, -35},
	"running_pose":     {-10, -2, 55, 85, -55, -85, -45, 30, 50, -80},
	"jumping_pose":     {-5, -4, 140, 25, -140, -25, 20, -35, -20, 35},
	"typing_pose":      {8, 5, 25, -75, -25, 75, 80, -80, -80, 80},
	"presenting":       {-3, -2, 15, 8, -70, -20, 0, 0, 0, 0},
	"listening":        {3, 7, 10, 6, -12, -8, 0, 0, 0, 0},
}
