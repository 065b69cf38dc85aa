package puppet

import "fmt"

// BonePlacement is the world-space result of evaluating one bone: its two
// endpoints, its accumulated angle, and the affine frame anchored at Start.
// For the head the End point is the circle center rather than a drawn tip.
type BonePlacement struct {
	Joint Joint
	Start Vec2
	End   Vec2
	Angle float64 // accumulated world angle in degrees

	// World maps the bone's local frame to world space. Local +Y points
	// along a hanging limb; the trunk and head extend along local -Y.
	World [6]float64
}

// LocalToWorld converts a point in the bone's local frame to world space.
func (b *BonePlacement) LocalToWorld(x, y float64) (wx, wy float64) {
	return transformPoint(b.World, x, y)
}

// Figure is a posed skeleton in world space: one placement per joint, hip
// at the origin, Y growing downward. Figures are plain values; evaluating
// the same skeleton and pose always yields the same figure.
type Figure struct {
	Bones      [JointCount]BonePlacement
	HeadRadius float64
}

// Bone returns the placement for joint j. Requesting a joint outside the
// enumeration is a programming error and panics.
func (f *Figure) Bone(j Joint) BonePlacement {
	if j >= JointCount {
		panic(fmt.Sprintf("puppet: no bone for joint %d", uint8(j)))
	}
	return f.Bones[j]
}

// HeadCenter returns the center of the head circle.
func (f *Figure) HeadCenter() Vec2 {
	return f.Bones[JointHead].End
}

// HeadAngle returns the world tilt of the head in degrees.
func (f *Figure) HeadAngle() float64 {
	return f.Bones[JointHead].Angle
}

// Bounds returns the tight axis-aligned box around every bone endpoint
// and the full head circle.
func (f *Figure) Bounds() Rect {
	minX, minY := f.Bones[0].Start.X, f.Bones[0].Start.Y
	maxX, maxY := minX, minY
	grow := func(x, y float64) {
		if x < minX {
			minX = x
		}
		if x > maxX {
			maxX = x
		}
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	for i := range f.Bones {
		grow(f.Bones[i].Start.X, f.Bones[i].Start.Y)
		grow(f.Bones[i].End.X, f.Bones[i].End.Y)
	}
	hc := f.HeadCenter()
	grow(hc.X-f.HeadRadius, hc.Y-f.HeadRadius)
	grow(hc.X+f.HeadRadius, hc.Y+f.HeadRadius)
	return Rect{X: minX, Y: minY, Width: maxX - minX, Height: maxY - minY}
}

// restDirY is the local Y direction a bone extends along: the trunk and
// head point up from their pivot, the limbs hang down.
func restDirY(j Joint) float64 {
	if j == JointTorso || j == JointHead {
		return -1
	}
	return 1
}

// placeBone evaluates one bone into f. start is the world anchor point,
// base the accumulated parent angle, local the joint's own pose angle.
func placeBone(f *Figure, sk *Skeleton, j Joint, start Vec2, base, local float64) {
	angle := base + local
	world := multiplyAffine(translationAffine(start.X, start.Y), rotationAffine(angle))
	ex, ey := transformPoint(world, 0, restDirY(j)*sk.Bones[j].Length)
	f.Bones[j] = BonePlacement{
		Joint: j,
		Start: start,
		End:   Vec2{X: ex, Y: ey},
		Angle: angle,
		World: world,
	}
}

// EvaluateFK places every bone of the skeleton under the given pose. The
// torso chain accumulates angles from the hip up (head and arms inherit
// the torso tilt); the leg chains root directly at the hip sockets and do
// not inherit it. The result is independent of evaluation history.
func EvaluateFK(sk *Skeleton, p Pose) Figure {
	var f Figure
	f.HeadRadius = sk.HeadRadius()

	placeBone(&f, sk, JointTorso, Vec2{}, 0, p[JointTorso])
	torso := &f.Bones[JointTorso]

	placeBone(&f, sk, JointHead, torso.End, torso.Angle, p[JointHead])

	// Shoulders sit on the torso frame just below the neck.
	drop := sk.NeckGap - sk.Bones[JointTorso].Length
	lx, ly := transformPoint(torso.World, -sk.ShoulderOffset, drop)
	rx, ry := transformPoint(torso.World, sk.ShoulderOffset, drop)

	placeBone(&f, sk, JointUpperArmL, Vec2{X: lx, Y: ly}, torso.Angle, p[JointUpperArmL])
	placeBone(&f, sk, JointLowerArmL, f.Bones[JointUpperArmL].End, f.Bones[JointUpperArmL].Angle, p[JointLowerArmL])
	placeBone(&f, sk, JointUpperArmR, Vec2{X: rx, Y: ry}, torso.Angle, p[JointUpperArmR])
	placeBone(&f, sk, JointLowerArmR, f.Bones[JointUpperArmR].End, f.Bones[JointUpperArmR].Angle, p[JointLowerArmR])

	placeBone(&f, sk, JointUpperLegL, Vec2{X: -sk.HipHalfWidth}, 0, p[JointUpperLegL])
	placeBone(&f, sk, JointLowerLegL, f.Bones[JointUpperLegL].End, f.Bones[JointUpperLegL].Angle, p[JointLowerLegL])
	placeBone(&f, sk, JointUpperLegR, Vec2{X: sk.HipHalfWidth}, 0, p[JointUpperLegR])
	placeBone(&f, sk, JointLowerLegR, f.Bones[JointUpperLegR].End, f.Bones[JointUpperLegR].Angle, p[JointLowerLegR])

	return f
}
