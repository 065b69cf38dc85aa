package puppet

import "fmt"

// Joint identifies one of the ten skeletal joints. Joints index directly
// into Pose arrays, so the set is closed at compile time; scene data refers
// to joints by the names returned from [Joint.String].
type Joint uint8

const (
	JointTorso     Joint = iota // hip to neck trunk segment
	JointHead                   // head circle, anchored at the torso end
	JointUpperArmL              // left shoulder to elbow
	JointLowerArmL              // left elbow to hand
	JointUpperArmR              // right shoulder to elbow
	JointLowerArmR              // right elbow to hand
	JointUpperLegL              // left hip to knee
	JointLowerLegL              // left knee to foot
	JointUpperLegR              // right hip to knee
	JointLowerLegR              // right knee to foot

	// JointCount is the number of joints. Every Pose defines all of them;
	// partial data exists only as a PoseDelta.
	JointCount = 10
)

// jointNames holds the scene-data spelling for each joint.
var jointNames = [JointCount]string{
	"torso", "head",
	"upperArmL", "lowerArmL", "upperArmR", "lowerArmR",
	"upperLegL", "lowerLegL", "upperLegR", "lowerLegR",
}

// String returns the scene-data spelling of the joint name.
func (j Joint) String() string {
	if j < JointCount {
		return jointNames[j]
	}
	return fmt.Sprintf("Joint(%d)", uint8(j))
}

// JointByName parses a scene-data joint name. The second result is false
// for unknown names.
func JointByName(name string) (Joint, bool) {
	for i, n := range jointNames {
		if n == name {
			return Joint(i), true
		}
	}
	return 0, false
}

// Anchor selects where on the parent bone a child bone attaches.
type Anchor uint8

const (
	AnchorStart Anchor = iota // the parent's pivot point
	AnchorEnd                 // the parent's distal end point
)

// Bone describes one segment of the figure: the joint it pivots on, its
// length (radius for the head), and its attachment to the parent. Bones
// form a forest rooted at the hip: the torso chain plus the two leg
// chains. HasParent is false for the three roots.
type Bone struct {
	Joint     Joint
	Length    float64
	Parent    Joint
	HasParent bool
	Anchor    Anchor
}

// Skeleton is the static bone table plus the layout scalars the
// forward-kinematics evaluator uses to place the limb chains. Left and
// right limbs are structurally symmetric but independently parameterized:
// each side has its own bones and lengths.
type Skeleton struct {
	Bones [JointCount]Bone

	ShoulderOffset float64 // lateral shoulder distance from the torso centerline
	HipHalfWidth   float64 // lateral hip socket distance from the hip origin
	NeckGap        float64 // drop from the torso end down to the shoulder line
}

// Bone returns the bone pivoting on joint j. Requesting a joint outside
// the enumeration is a programming error and panics rather than silently
// defaulting.
func (s *Skeleton) Bone(j Joint) Bone {
	if j >= JointCount {
		panic(fmt.Sprintf("puppet: no bone for joint %d", uint8(j)))
	}
	return s.Bones[j]
}

// HeadRadius returns the head circle radius.
func (s *Skeleton) HeadRadius() float64 {
	return s.Bones[JointHead].Length
}

// DefaultSkeleton returns the standard stickman proportions: torso 70,
// head radius 30, arms 40+35, legs 45+40, shoulders ±12 with a neck gap of
// 10, hips ±8. With the zero pose this puts the torso end at (0, -70) and
// the head center at (0, -100).
func DefaultSkeleton() Skeleton {
	s := Skeleton{
		ShoulderOffset: 12,
		HipHalfWidth:   8,
		NeckGap:        10,
	}
	s.Bones[JointTorso] = Bone{Joint: JointTorso, Length: 70}
	s.Bones[JointHead] = Bone{Joint: JointHead, Length: 30, Parent: JointTorso, HasParent: true, Anchor: AnchorEnd}
	s.Bones[JointUpperArmL] = Bone{Joint: JointUpperArmL, Length: 40, Parent: JointTorso, HasParent: true, Anchor: AnchorEnd}
	s.Bones[JointLowerArmL] = Bone{Joint: JointLowerArmL, Length: 35, Parent: JointUpperArmL, HasParent: true, Anchor: AnchorEnd}
	s.Bones[JointUpperArmR] = Bone{Joint: JointUpperArmR, Length: 40, Parent: JointTorso, HasParent: true, Anchor: AnchorEnd}
	s.Bones[JointLowerArmR] = Bone{Joint: JointLowerArmR, Length: 35, Parent: JointUpperArmR, HasParent: true, Anchor: AnchorEnd}
	s.Bones[JointUpperLegL] = Bone{Joint: JointUpperLegL, Length: 45}
	s.Bones[JointLowerLegL] = Bone{Joint: JointLowerLegL, Length: 40, Parent: JointUpperLegL, HasParent: true, Anchor: AnchorEnd}
	s.Bones[JointUpperLegR] = Bone{Joint: JointUpperLegR, Length: 45}
	s.Bones[JointLowerLegR] = Bone{Joint: JointLowerLegR, Length: 40, Parent: JointUpperLegR, HasParent: true, Anchor: AnchorEnd}
	return s
}
