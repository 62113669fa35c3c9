package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultsAreValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("shipped defaults must validate: %v", err)
	}
}

func TestLoadMissingFileFallsBack(t *testing.T) {
	tuning, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing tuning file must not error: %v", err)
	}
	if tuning.Particles.OrnamentCount != Default().Particles.OrnamentCount {
		t.Error("missing file must yield the defaults")
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.toml")
	content := `
[particles]
ornament_count = 64

[gesture]
pinch_threshold = 0.03
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	tuning, err := Load(path)
	if err != nil {
		t.Fatal(err)
	}
	if tuning.Particles.OrnamentCount != 64 {
		t.Errorf("ornament_count = %d, want 64", tuning.Particles.OrnamentCount)
	}
	if tuning.Gesture.PinchThreshold != 0.03 {
		t.Errorf("pinch_threshold = %f, want 0.03", tuning.Gesture.PinchThreshold)
	}
	// Untouched sections keep their defaults.
	if tuning.Tree.Height != Default().Tree.Height {
		t.Error("unset values must keep defaults")
	}
}

func TestValidateRejectsCollapsedDeadZone(t *testing.T) {
	tuning := Default()
	tuning.Gesture.FistThreshold = 0.40
	tuning.Gesture.OpenThreshold = 0.38
	if err := tuning.Validate(); err == nil {
		t.Error("fist threshold above open threshold must be rejected")
	}
}

func TestValidateRejectsInvertedShell(t *testing.T) {
	tuning := Default()
	tuning.Scatter.RadiusMin = 20
	tuning.Scatter.RadiusMax = 10
	if err := tuning.Validate(); err == nil {
		t.Error("inverted scatter shell must be rejected")
	}
}

func TestLoadRejectsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tuning.toml")
	content := `
[gesture]
fist_threshold = 0.5
open_threshold = 0.3
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Error("invalid tuning file must fail to load")
	}
}
