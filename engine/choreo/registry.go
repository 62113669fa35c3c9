package choreo

import (
	"github.com/google/uuid"
	"golang.org/x/exp/rand"
)

// Registry owns the particle set. Static per-particle data (targets, scale,
// spin) is written once at creation time; after that the animator is the
// only mutator, and only of transforms.
type Registry struct {
	particles []*Particle
	byID      map[uuid.UUID]*Particle
	photos    []*Particle

	// The fixed ornament count photos interleave against. Frozen at
	// population time so later photo adds keep consistent spiral slots.
	ornamentCount int
}

func NewRegistry() *Registry {
	return &Registry{
		byID: make(map[uuid.UUID]*Particle),
	}
}

// Populate installs the initial ornament set and freezes the ornament count
// used for photo interleaving.
func (r *Registry) Populate(particles []*Particle) {
	r.ornamentCount = len(particles)
	for _, p := range particles {
		r.add(p)
	}
}

// Add registers one particle created after initial population (photos).
func (r *Registry) Add(p *Particle) {
	if p == nil {
		return
	}
	r.add(p)
}

func (r *Registry) add(p *Particle) {
	r.particles = append(r.particles, p)
	r.byID[p.ID] = p
	if p.Focusable() {
		r.photos = append(r.photos, p)
	}
}

// Get resolves an identity handle; nil if the handle no longer matches a
// particle.
func (r *Registry) Get(id uuid.UUID) *Particle {
	if id == uuid.Nil {
		return nil
	}
	return r.byID[id]
}

// All returns the live particle slice. Callers must not reorder it.
func (r *Registry) All() []*Particle {
	return r.particles
}

func (r *Registry) Len() int {
	return len(r.particles)
}

func (r *Registry) OrnamentCount() int {
	return r.ornamentCount
}

// PhotoCount reports how many photo particles are registered.
func (r *Registry) PhotoCount() int {
	return len(r.photos)
}

// RandomPhoto picks one photo particle uniformly, nil when none exist.
func (r *Registry) RandomPhoto(rng *rand.Rand) *Particle {
	if len(r.photos) == 0 {
		return nil
	}
	return r.photos[rng.Intn(len(r.photos))]
}
