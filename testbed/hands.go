package testbed

import (
	"github.com/frostpine/garland/engine/gesture"
	kmath "github.com/frostpine/garland/engine/math"
)

// handShape selects which synthetic hand the testbed feeds the classifier.
// The testbed does not detect anything; it fabricates 21 plausible landmark
// points so the real classifier and state machine run end to end.
type handShape uint8

const (
	shapeNeutral handShape = iota
	shapeFist
	shapeOpen
	shapePinch
	shapeAbsent
)

// Fingertip distances from the wrist for each shape, in normalized image
// units. Neutral sits inside the classifier's dead zone on purpose.
const (
	fistSpread    float32 = 0.12
	neutralSpread float32 = 0.30
	openSpread    float32 = 0.45
)

// Fan angles of thumb and the four fingers, radians from straight up.
var fingerAngles = [5]float32{-1.2, -0.7, -0.25, 0.2, 0.6}

// synthesizeLandmarks fabricates one 21-point landmark frame with the wrist
// at (wx, wy) in [0,1] image space. Returns nil for an absent hand.
//
// The classifier mirrors the horizontal axis to undo a webcam feed; the
// testbed pre-mirrors the wrist so the on-screen pointer follows the mouse
// directly.
func synthesizeLandmarks(wx, wy float32, shape handShape) []kmath.Vec2 {
	if shape == shapeAbsent {
		return nil
	}

	wrist := kmath.NewVec2(1.0-kmath.Clamp(wx, 0, 1), kmath.Clamp(wy, 0, 1))
	points := make([]kmath.Vec2, gesture.LandmarkCount)
	points[gesture.LandmarkWrist] = wrist

	spread := neutralSpread
	switch shape {
	case shapeFist:
		spread = fistSpread
	case shapeOpen, shapePinch:
		spread = openSpread
	}

	// Five chains of four joints each, interpolated from the wrist to a
	// fingertip fanned around straight up.
	for finger := 0; finger < 5; finger++ {
		length := spread
		if finger == 0 {
			// Thumb is shorter than the fingers.
			length = spread * 0.8
		}
		tip := kmath.NewVec2(
			wrist.X+kmath.Ksin(fingerAngles[finger])*length,
			wrist.Y-kmath.Kcos(fingerAngles[finger])*length,
		)
		for joint := 1; joint <= 4; joint++ {
			t := float32(joint) / 4.0
			points[finger*4+joint] = kmath.NewVec2(
				kmath.Lerp(wrist.X, tip.X, t),
				kmath.Lerp(wrist.Y, tip.Y, t),
			)
		}
	}

	if shape == shapePinch {
		// Collapse the thumb tip onto the index tip.
		idx := points[gesture.LandmarkIndexTip]
		points[gesture.LandmarkThumbTip] = kmath.NewVec2(idx.X+0.004, idx.Y)
	}

	return points
}
