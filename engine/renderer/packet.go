// Package renderer defines the packet surface the engine hands a frontend
// once per frame. The engine never draws; a frontend re-reads all instance
// transforms after every tick and turns them into pixels however it likes.
package renderer

import (
	"github.com/google/uuid"

	"github.com/frostpine/garland/engine/choreo"
	kmath "github.com/frostpine/garland/engine/math"
)

// ParticleInstance is one particle's render-visible state: identity, the
// kind tag for geometry/material selection, and the transform the animator
// produced this tick.
type ParticleInstance struct {
	ID       uuid.UUID
	Kind     choreo.Kind
	Position kmath.Vec3
	Rotation kmath.Vec3
	Scale    float32
	// Texture is the opaque handle given at photo ingestion; empty for
	// non-photo kinds.
	Texture string
}

// RenderPacket is everything a frontend needs to draw one frame. The
// projection matrix is the frontend's business (it knows the viewport
// aspect); the engine supplies the view side.
type RenderPacket struct {
	DeltaTime      float64
	View           kmath.Mat4
	CameraPosition kmath.Vec3
	Mode           choreo.Mode
	Instances      []ParticleInstance
}
