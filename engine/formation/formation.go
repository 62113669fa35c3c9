// Package formation procedurally generates the two target layouts of the
// display: the downward-narrowing tree spiral and the scattered cloud
// shell. Shapes are deterministic; the per-particle detail (jitter, scale,
// spin) comes from an explicit random source so layouts are reproducible
// under a fixed seed.
package formation

import (
	"golang.org/x/exp/rand"

	"github.com/frostpine/garland/engine/choreo"
	"github.com/frostpine/garland/engine/config"
	kmath "github.com/frostpine/garland/engine/math"
)

const (
	// Fixed angular step between consecutive spiral slots, chosen so the
	// spiral makes many tight turns instead of one pass and neighbouring
	// particles never visually overlap.
	spiralStep float32 = 0.55

	// The spiral radius never collapses below this floor, so the apex is
	// never a literal point that downstream normalization would divide by.
	radiusFloor float32 = 0.05
)

// TreePosition places the index-th of total particles on the tree spiral.
// Pure and deterministic: y climbs linearly with index while the radius
// narrows toward the apex.
func TreePosition(index, total int, height, radius float32) kmath.Vec3 {
	if total < 1 {
		total = 1
	}
	t := float32(index) / float32(total)
	y := t*height - height/2.0
	r := max(radius*(1.0-t), radiusFloor)
	angle := float32(index) * spiralStep
	return kmath.NewVec3(kmath.Kcos(angle)*r, y, kmath.Ksin(angle)*r)
}

// ScatterPosition samples a point uniformly by volume within the spherical
// shell between minRadius and maxRadius. Drawing cos(phi) uniformly avoids
// polar clustering; the cube-root transform on the radius makes the
// distribution volume-uniform instead of radius-uniform.
func ScatterPosition(rng *rand.Rand, minRadius, maxRadius float32) kmath.Vec3 {
	theta := kmath.FrandomInRange(rng, 0, kmath.K_PI_2)
	cosPhi := kmath.FrandomInRange(rng, -1, 1)
	sinPhi := kmath.Ksqrt(max(1.0-cosPhi*cosPhi, 0))

	u := rng.Float64()
	min3 := float64(minRadius) * float64(minRadius) * float64(minRadius)
	max3 := float64(maxRadius) * float64(maxRadius) * float64(maxRadius)
	r := kmath.Kcbrt(float32(min3 + u*(max3-min3)))

	return kmath.NewVec3(
		r*sinPhi*kmath.Kcos(theta),
		r*cosPhi,
		r*sinPhi*kmath.Ksin(theta),
	)
}

// Generator builds particle sets from one tuning snapshot and one random
// source.
type Generator struct {
	tuning *config.Tuning
	rng    *rand.Rand
}

func NewGenerator(tuning *config.Tuning, rng *rand.Rand) *Generator {
	return &Generator{tuning: tuning, rng: rng}
}

// kindFor rolls the categorical kind distribution: roughly 45% primary
// spheres, 27% secondary/metallic spheres, 10% gift cubes, 6% candy, and
// the remainder dust filler.
func (g *Generator) kindFor() choreo.Kind {
	roll := g.rng.Float64()
	switch {
	case roll < 0.45:
		return choreo.KindOrnamentSphereA
	case roll < 0.72:
		return choreo.KindOrnamentSphereB
	case roll < 0.82:
		return choreo.KindOrnamentCube
	case roll < 0.88:
		return choreo.KindOrnamentCandy
	default:
		return choreo.KindDust
	}
}

// scaleFor samples a kind-specific nominal size.
func (g *Generator) scaleFor(kind choreo.Kind) float32 {
	switch kind {
	case choreo.KindOrnamentSphereA, choreo.KindOrnamentSphereB:
		return kmath.FrandomInRange(g.rng, 0.18, 0.34)
	case choreo.KindOrnamentCube:
		return kmath.FrandomInRange(g.rng, 0.22, 0.40)
	case choreo.KindOrnamentCandy:
		return kmath.FrandomInRange(g.rng, 0.14, 0.26)
	case choreo.KindDust:
		return kmath.FrandomInRange(g.rng, 0.04, 0.10)
	case choreo.KindPhoto:
		return kmath.FrandomInRange(g.rng, 0.9, 1.1)
	}
	return 1.0
}

// spinFor samples per-axis tumble speed. Dust drifts without spinning.
func (g *Generator) spinFor(kind choreo.Kind) kmath.Vec3 {
	if kind == choreo.KindDust {
		return kmath.NewVec3Zero()
	}
	return kmath.NewVec3(
		kmath.FrandomInRange(g.rng, -1.2, 1.2),
		kmath.FrandomInRange(g.rng, -1.2, 1.2),
		kmath.FrandomInRange(g.rng, -1.2, 1.2),
	)
}

// shellFor returns the scatter shell bounds for a kind. Dust uses the wider
// outer shell so it sits outside the main cloud.
func (g *Generator) shellFor(kind choreo.Kind) (float32, float32) {
	if kind == choreo.KindDust {
		return g.tuning.Scatter.DustRadiusMin, g.tuning.Scatter.DustRadiusMax
	}
	return g.tuning.Scatter.RadiusMin, g.tuning.Scatter.RadiusMax
}

// jitteredTreePosition decorates the pure spiral slot with a bounded radial
// multiplier and a random phase offset so the tree does not read as a
// perfectly regular lattice.
func (g *Generator) jitteredTreePosition(index, total int) kmath.Vec3 {
	p := TreePosition(index, total, g.tuning.Tree.Height, g.tuning.Tree.Radius)
	mul := kmath.FrandomInRange(g.rng, 0.92, 1.08)
	phase := kmath.FrandomInRange(g.rng, -0.12, 0.12)
	c, s := kmath.Kcos(phase), kmath.Ksin(phase)
	x := (p.X*c - p.Z*s) * mul
	z := (p.X*s + p.Z*c) * mul
	return kmath.NewVec3(x, p.Y, z)
}

// OrnamentSet generates count particles with fixed tree and scatter
// targets. count <= 0 yields an empty set.
func (g *Generator) OrnamentSet(count int) []*choreo.Particle {
	if count <= 0 {
		return nil
	}
	particles := make([]*choreo.Particle, 0, count)
	for i := 0; i < count; i++ {
		kind := g.kindFor()
		shellMin, shellMax := g.shellFor(kind)
		p := choreo.NewParticle(
			kind,
			g.jitteredTreePosition(i, count),
			ScatterPosition(g.rng, shellMin, shellMax),
			g.scaleFor(kind),
			g.spinFor(kind),
		)
		particles = append(particles, p)
	}
	return particles
}

// PlacePhoto interleaves the photoIndex-th of photoCount photos at a
// proportional slot in the ornament spiral, then pushes the position
// radially outward so the frame sits on the tree's surface instead of
// buried in its volume. photoCount <= 0 performs no placement.
func (g *Generator) PlacePhoto(photoIndex, photoCount, ornamentCount int) *choreo.Particle {
	if photoCount <= 0 {
		return nil
	}
	treeIndex := PhotoTreeIndex(photoIndex, photoCount, ornamentCount)
	p := TreePosition(treeIndex, ornamentCount, g.tuning.Tree.Height, g.tuning.Tree.Radius)
	push := g.tuning.Tree.PhotoSurfacePush
	treeTarget := kmath.NewVec3(p.X*push, p.Y, p.Z*push)

	particle := choreo.NewParticle(
		choreo.KindPhoto,
		treeTarget,
		ScatterPosition(g.rng, g.tuning.Scatter.RadiusMin, g.tuning.Scatter.RadiusMax),
		g.scaleFor(choreo.KindPhoto),
		g.spinFor(choreo.KindPhoto),
	)
	return particle
}

// PhotoTreeIndex is the spiral slot the photoIndex-th of photoCount photos
// interleaves at, given the fixed ornament count.
func PhotoTreeIndex(photoIndex, photoCount, ornamentCount int) int {
	if photoCount < 1 {
		return 0
	}
	return int(float64(photoIndex) / float64(photoCount) * float64(ornamentCount))
}
