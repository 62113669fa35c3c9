package gesture

import (
	kmath "github.com/frostpine/garland/engine/math"
)

// Gesture is the discrete classification of one hand-landmark frame.
type Gesture uint8

const (
	GestureUnknown Gesture = iota
	GestureFist
	GestureOpenPalm
	GesturePinch
)

func (g Gesture) String() string {
	switch g {
	case GestureFist:
		return "FIST"
	case GestureOpenPalm:
		return "OPEN_PALM"
	case GesturePinch:
		return "PINCH"
	}
	return "UNKNOWN"
}

// Anatomical landmark indices of the 21-point hand model
// (wrist first, then four joints per finger).
const (
	LandmarkWrist     = 0
	LandmarkThumbTip  = 4
	LandmarkIndexTip  = 8
	LandmarkMiddleTip = 12
	LandmarkRingTip   = 16
	LandmarkPinkyTip  = 20

	LandmarkCount = 21
)

var fingertips = [4]int{LandmarkIndexTip, LandmarkMiddleTip, LandmarkRingTip, LandmarkPinkyTip}

// Thresholds are the classifier's tunable constants, in normalized image
// units. Fist must stay below Open: the gap between them is a deliberate
// dead zone classified UNKNOWN so the hand shape cannot chatter between
// fist and open palm at the boundary.
type Thresholds struct {
	Pinch float32
	Fist  float32
	Open  float32
}

// Result is the classifier's output for one landmark frame. Present=false
// means "no gesture evidence this frame", never an explicit gesture;
// consumers must leave their state untouched when it is false.
type Result struct {
	Gesture Gesture
	Pointer kmath.Vec2
	Present bool
}

// Classify maps one frame of hand landmarks (x, y in [0,1] image space) to
// a gesture and a display-space pointer. A nil or short frame degrades to
// an absent result rather than erroring.
//
// Classification is by priority: thumb-index pinch distance first, then the
// mean fingertip-to-wrist spread against the fist/open thresholds.
func Classify(landmarks []kmath.Vec2, th Thresholds) Result {
	if len(landmarks) < LandmarkCount {
		return Result{Gesture: GestureUnknown}
	}

	wrist := landmarks[LandmarkWrist]
	pinchDistance := landmarks[LandmarkThumbTip].Distance(landmarks[LandmarkIndexTip])

	var spread float32
	for _, tip := range fingertips {
		spread += landmarks[tip].Distance(wrist)
	}
	spread /= float32(len(fingertips))

	g := GestureUnknown
	switch {
	case pinchDistance < th.Pinch:
		g = GesturePinch
	case spread < th.Fist:
		g = GestureFist
	case spread > th.Open:
		g = GestureOpenPalm
	}

	// Wrist mapped from [0,1] image space to [-1,1] display space. The
	// horizontal axis is inverted to undo the mirrored camera feed.
	pointer := kmath.NewVec2(
		(wrist.X-0.5)*-2.0,
		(wrist.Y-0.5)*-2.0,
	)

	return Result{Gesture: g, Pointer: pointer, Present: true}
}
