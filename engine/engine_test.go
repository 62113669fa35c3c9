package engine

import (
	"path/filepath"
	"testing"

	"github.com/frostpine/garland/engine/choreo"
	"github.com/frostpine/garland/engine/gesture"
	kmath "github.com/frostpine/garland/engine/math"
)

func testEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(&Game{
		ApplicationConfig: &ApplicationConfig{
			Name:       "test",
			TuningPath: filepath.Join(t.TempDir(), "absent.toml"),
			Seed:       42,
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Initialize(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := e.Shutdown(); err != nil {
			t.Errorf("shutdown: %v", err)
		}
	})
	return e
}

// openPalmFrame fabricates a frame that classifies as OPEN_PALM.
func openPalmFrame() []kmath.Vec2 {
	points := make([]kmath.Vec2, gesture.LandmarkCount)
	wrist := kmath.NewVec2(0.5, 0.5)
	points[gesture.LandmarkWrist] = wrist
	for i, tip := range []int{gesture.LandmarkIndexTip, gesture.LandmarkMiddleTip, gesture.LandmarkRingTip, gesture.LandmarkPinkyTip} {
		angle := float32(i) * 0.4
		points[tip] = kmath.NewVec2(wrist.X+kmath.Ksin(angle)*0.45, wrist.Y-kmath.Kcos(angle)*0.45)
	}
	points[gesture.LandmarkThumbTip] = kmath.NewVec2(0.1, 0.1)
	return points
}

func TestEngineBootstrapsParticleSet(t *testing.T) {
	e := testEngine(t)
	packet := e.Tick(1.0 / 60.0)
	if len(packet.Instances) != 450 {
		t.Fatalf("expected the default 450 particles, got %d", len(packet.Instances))
	}
	if packet.Mode != choreo.ModeTree {
		t.Errorf("display must start in TREE, got %s", packet.Mode)
	}
	for _, inst := range packet.Instances {
		if !inst.Position.IsFinite() {
			t.Fatalf("instance %s has a non-finite position", inst.ID)
		}
	}
}

func TestEngineHandFrameDrivesMode(t *testing.T) {
	e := testEngine(t)

	e.OnHandFrame(openPalmFrame())
	if e.Mode() != choreo.ModeScatter {
		t.Fatalf("open palm must scatter, got %s", e.Mode())
	}

	// Hand loss keeps the mode.
	e.OnHandFrame(nil)
	if e.Mode() != choreo.ModeScatter {
		t.Errorf("mode changed on hand loss: %s", e.Mode())
	}
}

func TestEngineAddPhoto(t *testing.T) {
	e := testEngine(t)

	p := e.AddPhoto("family.png")
	if p == nil {
		t.Fatal("AddPhoto returned nil")
	}
	if p.Kind != choreo.KindPhoto {
		t.Errorf("added particle kind %s", p.Kind)
	}
	if p.Texture != "family.png" {
		t.Errorf("texture handle %q not carried", p.Texture)
	}

	packet := e.Tick(1.0 / 60.0)
	if len(packet.Instances) != 451 {
		t.Errorf("photo must join the render set, got %d instances", len(packet.Instances))
	}
}
