package choreo

import (
	"github.com/google/uuid"

	kmath "github.com/frostpine/garland/engine/math"
)

// Kind tags a particle with its geometry/material binding. Only photo
// particles participate in focus selection.
type Kind uint8

const (
	KindOrnamentSphereA Kind = iota
	KindOrnamentSphereB
	KindOrnamentCube
	KindOrnamentCandy
	KindDust
	KindPhoto
)

func (k Kind) String() string {
	switch k {
	case KindOrnamentSphereA:
		return "ornament_sphere_a"
	case KindOrnamentSphereB:
		return "ornament_sphere_b"
	case KindOrnamentCube:
		return "ornament_cube"
	case KindOrnamentCandy:
		return "ornament_candy"
	case KindDust:
		return "dust"
	case KindPhoto:
		return "photo"
	}
	return "unknown"
}

// Particle is one choreographed visual unit. TreeTarget and ScatterTarget
// are assigned exactly once at creation and never recomputed — re-rolling
// them would visibly pop the particle to a new home. Transform is mutated
// every tick by the animator and read by the renderer; nothing else touches
// it.
type Particle struct {
	ID   uuid.UUID
	Kind Kind

	// Formation targets, fixed at creation.
	TreeTarget    kmath.Vec3
	ScatterTarget kmath.Vec3

	// Nominal size; the animator eases the live scale toward a
	// mode-dependent multiple of it.
	BaseScale float32

	// Per-axis tumble speed (radians/s) while scattered. Zero for dust.
	SpinRate kmath.Vec3

	// Opaque renderer handle for photo particles (texture id).
	Texture string

	Transform *kmath.Transform
}

// NewParticle builds a particle parked at its scatter target, which is
// where everything starts before the first tick eases it into the tree.
func NewParticle(kind Kind, treeTarget, scatterTarget kmath.Vec3, baseScale float32, spinRate kmath.Vec3) *Particle {
	return &Particle{
		ID:            uuid.New(),
		Kind:          kind,
		TreeTarget:    treeTarget,
		ScatterTarget: scatterTarget,
		BaseScale:     baseScale,
		SpinRate:      spinRate,
		Transform:     kmath.TransformFromPosition(scatterTarget),
	}
}

// Focusable reports whether this particle can be locked as the focus
// target.
func (p *Particle) Focusable() bool {
	return p.Kind == KindPhoto
}
