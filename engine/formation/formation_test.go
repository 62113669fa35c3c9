package formation

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/frostpine/garland/engine/choreo"
	"github.com/frostpine/garland/engine/config"
	kmath "github.com/frostpine/garland/engine/math"
)

func testGenerator(seed uint64) *Generator {
	return NewGenerator(config.Default(), rand.New(rand.NewSource(seed)))
}

func radialXZ(p kmath.Vec3) float32 {
	return kmath.Ksqrt(p.X*p.X + p.Z*p.Z)
}

func TestTreeSpiralNarrows(t *testing.T) {
	const total = 10
	prev := TreePosition(0, total, 14, 5)
	for i := 1; i < total; i++ {
		p := TreePosition(i, total, 14, 5)
		if p.Y <= prev.Y {
			t.Errorf("y must strictly increase with index: y[%d]=%f, y[%d]=%f", i-1, prev.Y, i, p.Y)
		}
		if radialXZ(p) >= radialXZ(prev) {
			t.Errorf("radius must strictly decrease toward the apex: r[%d]=%f, r[%d]=%f",
				i-1, radialXZ(prev), i, radialXZ(p))
		}
		prev = p
	}
}

func TestTreePositionDegenerateGeometry(t *testing.T) {
	cases := []struct {
		name           string
		index, total   int
		height, radius float32
	}{
		{"zero total", 0, 0, 14, 5},
		{"zero height and radius", 3, 10, 0, 0},
		{"apex", 9, 10, 14, 5},
	}
	for _, tc := range cases {
		p := TreePosition(tc.index, tc.total, tc.height, tc.radius)
		if !p.IsFinite() {
			t.Errorf("%s: position not finite: %v", tc.name, p)
		}
		if radialXZ(p) < radiusFloor-1e-6 {
			t.Errorf("%s: radius below floor: %f", tc.name, radialXZ(p))
		}
	}
}

func TestScatterShellBounds(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 1000; i++ {
		p := ScatterPosition(rng, 8, 16)
		r := p.Length()
		if r < 8-1e-3 || r > 16+1e-3 {
			t.Fatalf("sample %d outside shell: radius %f", i, r)
		}
	}
}

func TestScatterShellVolumeUniform(t *testing.T) {
	const (
		samples        = 20000
		minR   float32 = 8
		maxR   float32 = 16
		probe  float32 = 12
	)
	rng := rand.New(rand.NewSource(11))
	below := 0
	for i := 0; i < samples; i++ {
		if ScatterPosition(rng, minR, maxR).Length() < probe {
			below++
		}
	}
	// Volume-uniform CDF: (r^3 - minR^3) / (maxR^3 - minR^3).
	expected := (probe*probe*probe - minR*minR*minR) / (maxR*maxR*maxR - minR*minR*minR)
	got := float32(below) / samples
	if kmath.Kabs(got-expected) > 0.02 {
		t.Errorf("radius CDF at %f: got %f, want %f +-0.02", probe, got, expected)
	}
}

func TestOrnamentSetCount(t *testing.T) {
	for _, count := range []int{0, 1, 10, 300} {
		set := testGenerator(3).OrnamentSet(count)
		if len(set) != count {
			t.Fatalf("OrnamentSet(%d) returned %d particles", count, len(set))
		}
		for _, p := range set {
			if p.BaseScale <= 0 {
				t.Errorf("particle %s has non-positive base scale %f", p.ID, p.BaseScale)
			}
			if !p.TreeTarget.IsFinite() || !p.ScatterTarget.IsFinite() {
				t.Errorf("particle %s has non-finite targets", p.ID)
			}
		}
	}
}

func TestOrnamentSetKindMix(t *testing.T) {
	set := testGenerator(5).OrnamentSet(2000)
	counts := map[choreo.Kind]int{}
	for _, p := range set {
		counts[p.Kind]++
	}
	primary := float64(counts[choreo.KindOrnamentSphereA]) / float64(len(set))
	if primary < 0.40 || primary > 0.50 {
		t.Errorf("primary ornament share %f outside 40-50%%", primary)
	}
	if counts[choreo.KindDust] == 0 {
		t.Error("expected some dust particles in a 2000-particle set")
	}
	if counts[choreo.KindPhoto] != 0 {
		t.Error("ornament sets must not contain photo particles")
	}
}

func TestDustUsesOuterShell(t *testing.T) {
	tuning := config.Default()
	set := NewGenerator(tuning, rand.New(rand.NewSource(9))).OrnamentSet(2000)
	for _, p := range set {
		r := p.ScatterTarget.Length()
		if p.Kind == choreo.KindDust {
			if r < tuning.Scatter.DustRadiusMin-1e-3 {
				t.Errorf("dust particle inside the ornament cloud: radius %f", r)
			}
		} else if r > tuning.Scatter.RadiusMax+1e-3 {
			t.Errorf("%s particle outside the ornament shell: radius %f", p.Kind, r)
		}
	}
}

func TestPhotoTreeIndexInterleaves(t *testing.T) {
	want := []int{0, 150, 300}
	for i, w := range want {
		if got := PhotoTreeIndex(i, 3, 450); got != w {
			t.Errorf("PhotoTreeIndex(%d, 3, 450) = %d, want %d", i, got, w)
		}
	}
}

func TestPlacePhotoPushesOutward(t *testing.T) {
	tuning := config.Default()
	gen := NewGenerator(tuning, rand.New(rand.NewSource(13)))

	p := gen.PlacePhoto(1, 3, 450)
	if p == nil {
		t.Fatal("PlacePhoto returned nil for a valid photo")
	}
	if p.Kind != choreo.KindPhoto {
		t.Fatalf("placed particle has kind %s", p.Kind)
	}
	slot := TreePosition(150, 450, tuning.Tree.Height, tuning.Tree.Radius)
	wantR := radialXZ(slot) * tuning.Tree.PhotoSurfacePush
	if kmath.Kabs(radialXZ(p.TreeTarget)-wantR) > 1e-4 {
		t.Errorf("photo radius %f, want pushed radius %f", radialXZ(p.TreeTarget), wantR)
	}
	if kmath.Kabs(p.TreeTarget.Y-slot.Y) > 1e-4 {
		t.Errorf("push must be radial only: y %f, want %f", p.TreeTarget.Y, slot.Y)
	}
}

func TestPlacePhotoZeroCount(t *testing.T) {
	if p := testGenerator(1).PlacePhoto(0, 0, 450); p != nil {
		t.Errorf("PlacePhoto with zero photo count must place nothing, got %v", p)
	}
}
