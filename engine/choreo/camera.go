package choreo

import (
	"github.com/frostpine/garland/engine/config"
	kmath "github.com/frostpine/garland/engine/math"
)

/**
 * @brief CameraRig orbits the viewpoint around the scene origin. It is a
 * secondary consumer of mode + pointer: while TREE it auto-rotates at a
 * constant slow rate, while SCATTER it eases toward the hand pointer (and
 * freezes when the hand is lost), and while FOCUS it holds still so the
 * animator's look-at on the focused particle carries the shot. It reads
 * choreography state and never mutates particle data.
 */
type CameraRig struct {
	yaw      float32
	pitch    float32
	distance float32

	/** @brief Internal flag used to determine when the view matrix needs to be rebuilt. */
	isDirty    bool
	viewMatrix kmath.Mat4
}

func NewCameraRig(tuning *config.Tuning) *CameraRig {
	return &CameraRig{
		distance:   tuning.Camera.Distance,
		isDirty:    true,
		viewMatrix: kmath.NewMat4Identity(),
	}
}

// Update advances the rig orientation for one frame.
func (c *CameraRig) Update(dt float32, tuning *config.Tuning, st *State) {
	c.distance = tuning.Camera.Distance

	switch st.Mode {
	case ModeTree:
		// Gentle showcase rotation around the vertical axis.
		c.yaw += tuning.Camera.AutoSpinRate * dt
		c.pitch = kmath.Lerp(c.pitch, 0, kmath.Damp(tuning.Camera.TrackRate, dt))
	case ModeScatter:
		// Orientation tracks the pointer with the same exponential easing
		// the animator uses. No hand, no movement.
		if st.HandPresent {
			targetYaw := st.Pointer.X * tuning.Camera.MaxYaw
			targetPitch := st.Pointer.Y * tuning.Camera.MaxPitch
			f := kmath.Damp(tuning.Camera.TrackRate, dt)
			c.yaw = kmath.Lerp(c.yaw, targetYaw, f)
			c.pitch = kmath.Lerp(c.pitch, targetPitch, f)
		}
	case ModeFocus:
		// Hold; the focused particle flies to the viewer instead.
	}
	c.isDirty = true
}

// Position returns the rig's world position on its orbit sphere.
func (c *CameraRig) Position() kmath.Vec3 {
	cp := kmath.Kcos(c.pitch)
	return kmath.NewVec3(
		c.distance*cp*kmath.Ksin(c.yaw),
		c.distance*kmath.Ksin(c.pitch),
		c.distance*cp*kmath.Kcos(c.yaw),
	)
}

// Forward is the unit vector from the rig toward the scene origin.
func (c *CameraRig) Forward() kmath.Vec3 {
	return kmath.NewVec3Zero().Sub(c.Position()).Normalized()
}

// FocusPoint is the camera-relative point a focused particle flies to:
// straight ahead of the viewer at the configured close-up distance.
func (c *CameraRig) FocusPoint(tuning *config.Tuning) kmath.Vec3 {
	return c.Position().Add(c.Forward().MulScalar(tuning.Animation.FocusDistance))
}

// GetView lazily rebuilds and returns the view matrix.
func (c *CameraRig) GetView() kmath.Mat4 {
	if c.isDirty {
		c.viewMatrix = kmath.NewMat4LookAt(c.Position(), kmath.NewVec3Zero(), kmath.NewVec3Up())
		c.isDirty = false
	}
	return c.viewMatrix
}
