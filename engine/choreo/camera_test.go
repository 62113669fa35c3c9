package choreo

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/frostpine/garland/engine/config"
	"github.com/frostpine/garland/engine/gesture"
	kmath "github.com/frostpine/garland/engine/math"
)

func TestRigAutoRotatesInTree(t *testing.T) {
	tuning := config.Default()
	rig := NewCameraRig(tuning)
	st := NewState()

	before := rig.Position()
	for i := 0; i < 60; i++ {
		rig.Update(tickDt, tuning, st)
	}
	after := rig.Position()
	if before.Distance(after) < 1e-3 {
		t.Error("rig must auto-rotate while in TREE")
	}
	if kmath.Kabs(before.Length()-after.Length()) > 1e-3 {
		t.Errorf("auto-rotation must stay on the orbit sphere: %f -> %f", before.Length(), after.Length())
	}
}

func TestRigTracksPointerInScatter(t *testing.T) {
	tuning := config.Default()
	rig := NewCameraRig(tuning)
	st := NewState()
	reg := registryWithPhotos(0)
	st.Apply(gesture.Result{
		Gesture: gesture.GestureOpenPalm,
		Pointer: kmath.NewVec2(1, 0),
		Present: true,
	}, reg, rand.New(rand.NewSource(1)))

	for i := 0; i < 1200; i++ {
		rig.Update(tickDt, tuning, st)
	}
	if kmath.Kabs(rig.yaw-tuning.Camera.MaxYaw) > 0.01 {
		t.Errorf("yaw %f did not converge to the pointer target %f", rig.yaw, tuning.Camera.MaxYaw)
	}
}

func TestRigFreezesOnHandLoss(t *testing.T) {
	tuning := config.Default()
	rig := NewCameraRig(tuning)
	st := NewState()
	reg := registryWithPhotos(0)
	rng := rand.New(rand.NewSource(2))

	st.Apply(gesture.Result{
		Gesture: gesture.GestureOpenPalm,
		Pointer: kmath.NewVec2(1, 1),
		Present: true,
	}, reg, rng)
	for i := 0; i < 30; i++ {
		rig.Update(tickDt, tuning, st)
	}

	st.Apply(gesture.Result{Present: false}, reg, rng)
	yaw, pitch := rig.yaw, rig.pitch
	for i := 0; i < 60; i++ {
		rig.Update(tickDt, tuning, st)
	}
	if rig.yaw != yaw || rig.pitch != pitch {
		t.Error("rig must freeze while scattered with no hand present")
	}
}

func TestRigHoldsInFocus(t *testing.T) {
	tuning := config.Default()
	rig := NewCameraRig(tuning)
	st := NewState()
	st.Mode = ModeFocus

	yaw, pitch := rig.yaw, rig.pitch
	for i := 0; i < 60; i++ {
		rig.Update(tickDt, tuning, st)
	}
	if rig.yaw != yaw || rig.pitch != pitch {
		t.Error("rig must hold still during FOCUS")
	}
}

func TestRigViewMatrixCentersOrigin(t *testing.T) {
	tuning := config.Default()
	rig := NewCameraRig(tuning)
	st := NewState()
	rig.Update(tickDt, tuning, st)

	// The rig always looks at the scene origin, so the origin lands on the
	// view-space forward axis.
	v := kmath.NewVec3Zero().Transform(rig.GetView())
	if kmath.Kabs(v.X) > 1e-4 || kmath.Kabs(v.Y) > 1e-4 {
		t.Errorf("origin off the view axis: (%f, %f)", v.X, v.Y)
	}
	if kmath.Kabs(-v.Z-rig.distance) > 1e-3 {
		t.Errorf("origin depth %f, want camera distance %f", -v.Z, rig.distance)
	}
}
