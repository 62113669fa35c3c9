package choreo

import (
	"github.com/frostpine/garland/engine/config"
	kmath "github.com/frostpine/garland/engine/math"
)

// scalePolicy is the per-kind scale behaviour. Each kind supplies its own
// target scale for a given mode instead of the animator switching on the
// kind tag inline.
type scalePolicy interface {
	// targetScale returns the scale the particle eases toward. elapsed is
	// total animation time, phase desynchronizes per-particle pulses.
	targetScale(mode Mode, focused bool, base, elapsed, phase float32, tuning *config.Tuning) float32
}

type ornamentPolicy struct{}

func (ornamentPolicy) targetScale(mode Mode, focused bool, base, _, _ float32, _ *config.Tuning) float32 {
	if mode == ModeFocus && !focused {
		return base * focusShrink
	}
	return base
}

type dustPolicy struct{}

func (dustPolicy) targetScale(mode Mode, focused bool, base, elapsed, phase float32, _ *config.Tuning) float32 {
	// Dust is hidden while the tree is assembled and breathes while
	// scattered; the per-particle phase keeps the pulses out of sync.
	if mode == ModeTree {
		return 0
	}
	pulse := base * (0.8 + 0.2*kmath.Ksin(elapsed*dustPulseRate+phase))
	if mode == ModeFocus {
		return pulse * focusShrink
	}
	return pulse
}

type photoPolicy struct{}

func (photoPolicy) targetScale(mode Mode, focused bool, base, _, _ float32, tuning *config.Tuning) float32 {
	switch mode {
	case ModeScatter:
		// Preview size, big enough to recognize the picture in the cloud.
		return base * photoPreview
	case ModeFocus:
		if focused {
			return tuning.Animation.FocusScale
		}
		return base * focusShrink
	}
	return base
}

const (
	focusShrink   float32 = 0.5
	photoPreview  float32 = 1.6
	dustPulseRate float32 = 2.1
)

var policies = map[Kind]scalePolicy{
	KindOrnamentSphereA: ornamentPolicy{},
	KindOrnamentSphereB: ornamentPolicy{},
	KindOrnamentCube:    ornamentPolicy{},
	KindOrnamentCandy:   ornamentPolicy{},
	KindDust:            dustPolicy{},
	KindPhoto:           photoPolicy{},
}

/**
 * @brief Animator is the single per-frame driver of particle transforms.
 * Every tick it reads a momentarily-consistent snapshot of the choreography
 * state, computes each particle's mode-dependent targets and eases
 * position, rotation and scale toward them. It writes transforms only;
 * mode and registry contents are never touched. Not reentrant.
 */
type Animator struct {
	elapsed float32
}

func NewAnimator() *Animator {
	return &Animator{}
}

// Tick advances every particle by dt seconds.
func (a *Animator) Tick(dt float32, tuning *config.Tuning, st *State, reg *Registry, rig *CameraRig) {
	if dt <= 0 {
		return
	}
	a.elapsed += dt

	// Snapshot once per tick. FOCUS with no resolvable target (no photos
	// uploaded yet, for instance) behaves exactly like SCATTER.
	mode := st.Mode
	focus := reg.Get(st.FocusID)
	if mode == ModeFocus && focus == nil {
		mode = ModeScatter
	}

	var focusPoint kmath.Vec3
	if focus != nil {
		focusPoint = rig.FocusPoint(tuning)
	}

	for _, p := range reg.All() {
		focused := focus != nil && p.ID == focus.ID
		a.updatePosition(p, dt, tuning, mode, focused, focusPoint)
		a.updateRotation(p, dt, tuning, mode, focused, rig)
		a.updateScale(p, dt, tuning, mode, focused)
	}
}

func (a *Animator) updatePosition(p *Particle, dt float32, tuning *config.Tuning, mode Mode, focused bool, focusPoint kmath.Vec3) {
	var target kmath.Vec3
	rate := tuning.Animation.PositionLerpRate
	switch {
	case focused:
		// The close-up flies in snappier than everything else drifts.
		target = focusPoint
		rate = tuning.Animation.FocusLerpRate
	case mode == ModeTree:
		target = p.TreeTarget
	default:
		// SCATTER, and every non-focused particle during FOCUS.
		target = p.ScatterTarget
	}
	p.Transform.SetPosition(p.Transform.Position.Lerp(target, kmath.Damp(rate, dt)))
}

func (a *Animator) updateRotation(p *Particle, dt float32, tuning *config.Tuning, mode Mode, focused bool, rig *CameraRig) {
	rot := p.Transform.Rotation
	switch {
	case focused:
		// Continuously orient the frame toward the viewpoint.
		dir := rig.Position().Sub(p.Transform.Position)
		flat := kmath.Ksqrt(dir.X*dir.X + dir.Z*dir.Z)
		targetYaw := kmath.Katan2(dir.X, dir.Z)
		targetPitch := -kmath.Katan2(dir.Y, flat)
		f := kmath.Damp(tuning.Animation.FocusLerpRate, dt)
		rot.X = kmath.Lerp(rot.X, targetPitch, f)
		rot.Y = kmath.Lerp(rot.Y, targetYaw, f)
		rot.Z = kmath.Lerp(rot.Z, 0, f)
	case mode == ModeTree:
		// Settle the tumble and keep a slow showcase spin on Y.
		f := kmath.Damp(tuning.Animation.RotationDecayRate, dt)
		rot.X = kmath.Lerp(rot.X, 0, f)
		rot.Z = kmath.Lerp(rot.Z, 0, f)
		rot.Y += tuning.Animation.TreeSpinRate * dt
	default:
		// Free tumbling while scattered.
		rot = rot.Add(p.SpinRate.MulScalar(dt))
	}
	p.Transform.SetRotation(rot)
}

func (a *Animator) updateScale(p *Particle, dt float32, tuning *config.Tuning, mode Mode, focused bool) {
	policy := policies[p.Kind]
	target := policy.targetScale(mode, focused, p.BaseScale, a.elapsed, p.pulsePhase(), tuning)
	s := kmath.Lerp(p.Transform.Scale, target, kmath.Damp(tuning.Animation.ScaleLerpRate, dt))
	p.Transform.SetScale(s)
}

// pulsePhase derives a stable per-particle phase offset from the particle
// identity so synchronized pulses never happen.
func (p *Particle) pulsePhase() float32 {
	return float32(p.ID[0])/255.0*kmath.K_PI_2 + float32(p.ID[1])/255.0
}
