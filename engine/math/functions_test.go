package math

import (
	"testing"
)

func approxEqual(a, b, eps float32) bool {
	return Kabs(a-b) < eps
}

func TestDampBounds(t *testing.T) {
	for _, dt := range []float32{1.0 / 240, 1.0 / 60, 0.1, 1, 10} {
		f := Damp(2.4, dt)
		if f <= 0 || f >= 1 {
			t.Errorf("Damp(2.4, %f) = %f, want in (0,1)", dt, f)
		}
	}
	if Damp(2.4, 0) != 0 || Damp(0, 0.016) != 0 {
		t.Error("zero rate or dt must produce no movement")
	}
	// A longer tick moves further, never overshooting.
	if Damp(2.4, 0.1) <= Damp(2.4, 0.01) {
		t.Error("damp fraction must grow with dt")
	}
}

func TestLerp(t *testing.T) {
	if Lerp(0, 10, 0.5) != 5 {
		t.Error("midpoint lerp")
	}
	if Lerp(3, 3, 0.7) != 3 {
		t.Error("lerp between equal values must be stationary")
	}
	v := NewVec3(0, 0, 0).Lerp(NewVec3(2, 4, 8), 0.25)
	if !approxEqual(v.X, 0.5, 1e-6) || !approxEqual(v.Y, 1, 1e-6) || !approxEqual(v.Z, 2, 1e-6) {
		t.Errorf("vector lerp = %v", v)
	}
}

func TestVec3Basics(t *testing.T) {
	v := NewVec3(3, 4, 0)
	if !approxEqual(v.Length(), 5, 1e-6) {
		t.Errorf("length = %f", v.Length())
	}
	n := v.Normalized()
	if !approxEqual(n.Length(), 1, 1e-6) {
		t.Errorf("normalized length = %f", n.Length())
	}
	if NewVec3Zero().Normalized() != NewVec3Zero() {
		t.Error("normalizing a zero vector must stay zero")
	}
	if NewVec3(1, 2, 3).Distance(NewVec3(1, 2, 7)) != 4 {
		t.Error("axis-aligned distance")
	}
}

func TestIsFinite(t *testing.T) {
	big := float32(1e30)
	inf := big * big
	if IsFinite(inf) {
		t.Error("infinity must not be finite")
	}
	if !NewVec3(1, 2, 3).IsFinite() {
		t.Error("plain vector must be finite")
	}
	if (Vec3{X: inf}).IsFinite() {
		t.Error("vector with an infinite component must not be finite")
	}
}

func TestLookAtPutsPositionAtViewOrigin(t *testing.T) {
	position := NewVec3(4, 2, 9)
	view := NewMat4LookAt(position, NewVec3Zero(), NewVec3Up())
	v := position.Transform(view)
	if !approxEqual(v.X, 0, 1e-4) || !approxEqual(v.Y, 0, 1e-4) || !approxEqual(v.Z, 0, 1e-4) {
		t.Errorf("camera position must map to the view origin, got (%f, %f, %f)", v.X, v.Y, v.Z)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(5, 0, 3) != 3 || Clamp(-1, 0, 3) != 0 || Clamp(2, 0, 3) != 2 {
		t.Error("int clamp")
	}
	if Clamp(float32(0.7), 0, 1) != 0.7 {
		t.Error("float clamp")
	}
}

func TestTransformDirtyFlag(t *testing.T) {
	tr := TransformCreate()
	tr.GetLocal()
	if tr.IsDirty {
		t.Error("GetLocal must clear the dirty flag")
	}
	tr.SetPosition(NewVec3(1, 0, 0))
	if !tr.IsDirty {
		t.Error("mutation must mark the transform dirty")
	}
	local := tr.GetLocal()
	if !approxEqual(local.Data[12], 1, 1e-6) {
		t.Errorf("translation row not rebuilt, got %f", local.Data[12])
	}
}
