package puppet

import (
	"errors"
	"sort"
	"testing"
)

// --- GetPose ---

func TestGetPoseStanding(t *testing.T) {
	p, err := GetPose("standing")
	if err != nil {
		t.Fatalf("GetPose: %v", err)
	}
	for j := Joint(0); j < JointCount; j++ {
		assertNear(t, j.String(), p[j], 0)
	}
}

func TestGetPoseUnknown(t *testing.T) {
	_, err := GetPose("moonwalking")
	if err == nil {
		t.Fatal("expected error for unknown pose")
	}
	var upe *UnknownPoseError
	if !errors.As(err, &upe) {
		t.Fatalf("error type = %T, want *UnknownPoseError", err)
	}
	if upe.Name != "moonwalking" {
		t.Errorf("error name = %q", upe.Name)
	}
}

func TestPoseNamesSorted(t *testing.T) {
	names := PoseNames()
	if !sort.StringsAreSorted(names) {
		t.Errorf("names not sorted: %v", names)
	}
	found := false
	for _, n := range names {
		if n == "standing" {
			found = true
		}
	}
	if !found {
		t.Error("standing missing from PoseNames")
	}
}

// --- InterpolatePose ---

func TestInterpolatePoseSameEndpoints(t *testing.T) {
	a, _ := GetPose("waving")
	for _, tt := range []float64{0, 0.25, 0.5, 1} {
		got := InterpolatePose(a, a, tt)
		if got != a {
			t.Errorf("t=%v: interpolating a pose with itself changed it: %v", tt, got)
		}
	}
}

func TestInterpolatePoseEndpoints(t *testing.T) {
	a, _ := GetPose("standing")
	b, _ := GetPose("waving")
	if got := InterpolatePose(a, b, 0); got != a {
		t.Errorf("t=0 = %v, want a", got)
	}
	if got := InterpolatePose(a, b, 1); got != b {
		t.Errorf("t=1 = %v, want b", got)
	}
}

func TestInterpolatePoseClampsT(t *testing.T) {
	a, _ := GetPose("standing")
	b, _ := GetPose("waving")
	if got := InterpolatePose(a, b, -2); got != a {
		t.Errorf("t=-2 = %v, want a", got)
	}
	if got := InterpolatePose(a, b, 3); got != b {
		t.Errorf("t=3 = %v, want b", got)
	}
}

func TestInterpolatePoseWavingMidpoint(t *testing.T) {
	// The midpoint must be exact, not approximate: standing has
	// upperArmR=0, waving has -150, so halfway is -75.
	a, _ := GetPose("standing")
	b, _ := GetPose("waving")
	mid := InterpolatePose(a, b, 0.5)
	want := (a[JointUpperArmR] + b[JointUpperArmR]) / 2
	if mid[JointUpperArmR] != want {
		t.Errorf("upperArmR = %v, want exactly %v", mid[JointUpperArmR], want)
	}
	if mid[JointUpperArmR] != -75 {
		t.Errorf("upperArmR = %v, want -75", mid[JointUpperArmR])
	}
}

func TestInterpolatePoseTreatsAnglesAsUnbounded(t *testing.T) {
	// Angles lerp as plain scalars. 0 → 350 passes through 175, it does
	// not take the short way around through -5. Presets are authored
	// with that behavior in mind.
	var a, b Pose
	b[JointUpperArmL] = 350
	mid := InterpolatePose(a, b, 0.5)
	assertNear(t, "upperArmL", mid[JointUpperArmL], 175)
}

// --- PoseDelta ---

func TestPoseDeltaSetGet(t *testing.T) {
	var d PoseDelta
	if d.Len() != 0 {
		t.Fatalf("zero delta Len = %d", d.Len())
	}
	d.Set(JointHead, 15)
	d.Set(JointTorso, -4)

	if d.Len() != 2 {
		t.Errorf("Len = %d, want 2", d.Len())
	}
	if v, ok := d.Get(JointHead); !ok || v != 15 {
		t.Errorf("Get(head) = %v, %v", v, ok)
	}
	if !d.Has(JointTorso) {
		t.Error("Has(torso) = false")
	}
	if _, ok := d.Get(JointLowerLegR); ok {
		t.Error("Get(lowerLegR) reported a value never set")
	}
}

func TestPoseDeltaSetOverwrites(t *testing.T) {
	var d PoseDelta
	d.Set(JointHead, 5)
	d.Set(JointHead, 9)
	if d.Len() != 1 {
		t.Errorf("Len = %d, want 1", d.Len())
	}
	if v, _ := d.Get(JointHead); v != 9 {
		t.Errorf("Get(head) = %v, want 9", v)
	}
}

func TestDeltaOf(t *testing.T) {
	d := DeltaOf(JointAngle{Joint: JointHead, Deg: 10}, JointAngle{Joint: JointUpperArmR, Deg: -150})
	if d.Len() != 2 {
		t.Errorf("Len = %d, want 2", d.Len())
	}
	if v, _ := d.Get(JointUpperArmR); v != -150 {
		t.Errorf("upperArmR = %v", v)
	}
}

func TestPoseDeltaJoints(t *testing.T) {
	if got := (PoseDelta{}).Joints(); len(got) != 0 {
		t.Fatalf("empty delta Joints = %v", got)
	}
	d := DeltaOf(
		JointAngle{Joint: JointLowerLegR, Deg: 12},
		JointAngle{Joint: JointTorso, Deg: -3},
		JointAngle{Joint: JointHead, Deg: 7},
	)
	got := d.Joints()
	want := []Joint{JointTorso, JointHead, JointLowerLegR}
	if len(got) != len(want) {
		t.Fatalf("Joints = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Joints[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

// --- ApplyOverride ---

func TestApplyOverrideEmpty(t *testing.T) {
	p, _ := GetPose("waving")
	if got := ApplyOverride(p, PoseDelta{}); got != p {
		t.Errorf("empty override changed the pose: %v", got)
	}
}

func TestApplyOverrideReplacesOnlyNamed(t *testing.T) {
	p, _ := GetPose("waving")
	got := ApplyOverride(p, DeltaOf(JointAngle{Joint: JointHead, Deg: 42}))
	if got[JointHead] != 42 {
		t.Errorf("head = %v, want 42", got[JointHead])
	}
	for j := Joint(0); j < JointCount; j++ {
		if j == JointHead {
			continue
		}
		if got[j] != p[j] {
			t.Errorf("%s changed: %v → %v", j, p[j], got[j])
		}
	}
}

func TestApplyOverrideDoesNotMutateBase(t *testing.T) {
	p, _ := GetPose("waving")
	before := p
	_ = ApplyOverride(p, DeltaOf(JointAngle{Joint: JointTorso, Deg: 99}))
	if p != before {
		t.Error("base pose mutated")
	}
}

// --- Benchmarks ---

func BenchmarkInterpolatePose(b *testing.B) {
	p1, _ := GetPose("standing")
	p2, _ := GetPose("waving")
	b.ReportAllocs()
	for b.Loop() {
		_ = InterpolatePose(p1, p2, 0.37)
	}
}
