package config

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Tuning holds every adjustable constant of the choreography: particle
// counts, tree geometry, scatter shell radii, gesture thresholds and easing
// rates. It is loaded from a TOML file so tuning a threshold never requires
// a rebuild; see Watcher for live reload.
type Tuning struct {
	Particles ParticleTuning  `toml:"particles"`
	Tree      TreeTuning      `toml:"tree"`
	Scatter   ScatterTuning   `toml:"scatter"`
	Gesture   GestureTuning   `toml:"gesture"`
	Animation AnimationTuning `toml:"animation"`
	Camera    CameraTuning    `toml:"camera"`
}

type ParticleTuning struct {
	OrnamentCount int `toml:"ornament_count"`
}

type TreeTuning struct {
	Height float32 `toml:"height"`
	Radius float32 `toml:"radius"`
	// Radial multiplier pushing photo frames out of the tree volume onto
	// its surface. Deliberately independent of Height/Radius.
	PhotoSurfacePush float32 `toml:"photo_surface_push"`
}

type ScatterTuning struct {
	RadiusMin float32 `toml:"radius_min"`
	RadiusMax float32 `toml:"radius_max"`
	// Dust sits in a wider shell than the ornaments so it reads as haze
	// around the cloud instead of inside it.
	DustRadiusMin float32 `toml:"dust_radius_min"`
	DustRadiusMax float32 `toml:"dust_radius_max"`
}

type GestureTuning struct {
	PinchThreshold float32 `toml:"pinch_threshold"`
	FistThreshold  float32 `toml:"fist_threshold"`
	OpenThreshold  float32 `toml:"open_threshold"`
}

type AnimationTuning struct {
	PositionLerpRate  float32 `toml:"position_lerp_rate"`
	FocusLerpRate     float32 `toml:"focus_lerp_rate"`
	ScaleLerpRate     float32 `toml:"scale_lerp_rate"`
	RotationDecayRate float32 `toml:"rotation_decay_rate"`
	TreeSpinRate      float32 `toml:"tree_spin_rate"`
	FocusDistance     float32 `toml:"focus_distance"`
	FocusScale        float32 `toml:"focus_scale"`
}

type CameraTuning struct {
	Distance     float32 `toml:"distance"`
	TrackRate    float32 `toml:"track_rate"`
	MaxYaw       float32 `toml:"max_yaw"`
	MaxPitch     float32 `toml:"max_pitch"`
	AutoSpinRate float32 `toml:"auto_spin_rate"`
}

// Default returns the reference tuning the display ships with.
func Default() *Tuning {
	return &Tuning{
		Particles: ParticleTuning{
			OrnamentCount: 450,
		},
		Tree: TreeTuning{
			Height:           14.0,
			Radius:           5.0,
			PhotoSurfacePush: 1.25,
		},
		Scatter: ScatterTuning{
			RadiusMin:     8.0,
			RadiusMax:     16.0,
			DustRadiusMin: 14.0,
			DustRadiusMax: 24.0,
		},
		Gesture: GestureTuning{
			PinchThreshold: 0.05,
			FistThreshold:  0.25,
			OpenThreshold:  0.38,
		},
		Animation: AnimationTuning{
			PositionLerpRate:  2.4,
			FocusLerpRate:     6.0,
			ScaleLerpRate:     4.0,
			RotationDecayRate: 3.0,
			TreeSpinRate:      0.25,
			FocusDistance:     3.0,
			FocusScale:        6.0,
		},
		Camera: CameraTuning{
			Distance:     26.0,
			TrackRate:    2.0,
			MaxYaw:       0.9,
			MaxPitch:     0.5,
			AutoSpinRate: 0.15,
		},
	}
}

// Load reads the tuning file at path on top of the defaults. A missing file
// is not an error: the defaults are returned so the display always starts.
func Load(path string) (*Tuning, error) {
	t := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return t, nil
		}
		return nil, fmt.Errorf("read tuning file %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, t); err != nil {
		return nil, fmt.Errorf("parse tuning file %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return nil, fmt.Errorf("invalid tuning in %s: %w", path, err)
	}
	return t, nil
}

// Validate rejects tunings that would break the choreography invariants.
func (t *Tuning) Validate() error {
	if t.Particles.OrnamentCount < 0 {
		return fmt.Errorf("particles.ornament_count must be >= 0, got %d", t.Particles.OrnamentCount)
	}
	if t.Tree.Height < 0 || t.Tree.Radius < 0 {
		return fmt.Errorf("tree.height and tree.radius must be >= 0")
	}
	if t.Scatter.RadiusMin < 0 || t.Scatter.RadiusMax < t.Scatter.RadiusMin {
		return fmt.Errorf("scatter radii must satisfy 0 <= radius_min <= radius_max")
	}
	if t.Scatter.DustRadiusMin < 0 || t.Scatter.DustRadiusMax < t.Scatter.DustRadiusMin {
		return fmt.Errorf("scatter dust radii must satisfy 0 <= dust_radius_min <= dust_radius_max")
	}
	if t.Gesture.PinchThreshold <= 0 {
		return fmt.Errorf("gesture.pinch_threshold must be > 0")
	}
	// The gap between fist and open is the classifier's dead zone; without
	// it the mode would chatter at the boundary.
	if t.Gesture.FistThreshold >= t.Gesture.OpenThreshold {
		return fmt.Errorf("gesture.fist_threshold (%f) must be below gesture.open_threshold (%f)",
			t.Gesture.FistThreshold, t.Gesture.OpenThreshold)
	}
	if t.Animation.PositionLerpRate <= 0 || t.Animation.ScaleLerpRate <= 0 {
		return fmt.Errorf("animation lerp rates must be > 0")
	}
	return nil
}
