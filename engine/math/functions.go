package math

import (
	m "math"

	"golang.org/x/exp/rand"
)

const (
	/** @brief An approximate representation of PI. */
	K_PI float32 = 3.14159265358979323846
	/** @brief An approximate representation of PI multiplied by 2. */
	K_PI_2 float32 = 2.0 * K_PI
	/** @brief An approximate representation of PI divided by 2. */
	K_HALF_PI float32 = 0.5 * K_PI
	/** @brief A multiplier used to convert degrees to radians. */
	K_DEG2RAD_MULTIPLIER float32 = K_PI / 180.0
	/** @brief A multiplier used to convert radians to degrees. */
	K_RAD2DEG_MULTIPLIER float32 = 180.0 / K_PI
	/** @brief Smallest positive number where 1.0 + FLOAT_EPSILON != 1.0 */
	K_FLOAT_EPSILON float32 = 1.192092896e-07
)

/**
 * Thin float32 wrappers so the rest of the engine does not have to
 * sprinkle float64 conversions around every <math> call.
 */
func Ksin(x float32) float32 {
	return float32(m.Sin(float64(x)))
}

func Kcos(x float32) float32 {
	return float32(m.Cos(float64(x)))
}

func Ksqrt(x float32) float32 {
	return float32(m.Sqrt(float64(x)))
}

func Kabs(x float32) float32 {
	return float32(m.Abs(float64(x)))
}

func Kcbrt(x float32) float32 {
	return float32(m.Cbrt(float64(x)))
}

func Kexp(x float32) float32 {
	return float32(m.Exp(float64(x)))
}

func Katan2(y, x float32) float32 {
	return float32(m.Atan2(float64(y), float64(x)))
}

// IsFinite reports whether x is neither NaN nor an infinity.
func IsFinite(x float32) bool {
	f := float64(x)
	return !m.IsNaN(f) && !m.IsInf(f, 0)
}

// FrandomInRange returns a uniform float32 in [min, max) drawn from rng.
// Randomness is always sourced from an explicit *rand.Rand so callers that
// need reproducible layouts can seed their own generator.
func FrandomInRange(rng *rand.Rand, min, max float32) float32 {
	return min + float32(rng.Float64())*(max-min)
}

// Lerp moves a the given fraction of the way toward b.
func Lerp(a, b, t float32) float32 {
	return a + (b-a)*t
}

/**
 * @brief Damp returns the interpolation fraction for one tick of exponential
 * easing at the given per-second rate. Feeding the result to Lerp moves a
 * value a constant fraction of its remaining distance per unit time,
 * independent of tick length, and never overshoots (the result is in [0,1)).
 */
func Damp(rate, dt float32) float32 {
	if rate <= 0 || dt <= 0 {
		return 0
	}
	return 1.0 - Kexp(-rate*dt)
}

// ------------------------------------------
// Vector 2
// ------------------------------------------

func NewVec2(x, y float32) Vec2 {
	return Vec2{X: x, Y: y}
}

func NewVec2Zero() Vec2 {
	return Vec2{}
}

func (v Vec2) Sub(other Vec2) Vec2 {
	return Vec2{X: v.X - other.X, Y: v.Y - other.Y}
}

func (v Vec2) Length() float32 {
	return Ksqrt(v.X*v.X + v.Y*v.Y)
}

func (v Vec2) Distance(other Vec2) float32 {
	return v.Sub(other).Length()
}

// ------------------------------------------
// Vector 3
// ------------------------------------------

func NewVec3(x, y, z float32) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

func NewVec3Zero() Vec3 {
	return Vec3{}
}

func NewVec3One() Vec3 {
	return Vec3{X: 1.0, Y: 1.0, Z: 1.0}
}

func NewVec3Up() Vec3 {
	return Vec3{Y: 1.0}
}

func (v Vec3) Add(other Vec3) Vec3 {
	return Vec3{
		X: v.X + other.X,
		Y: v.Y + other.Y,
		Z: v.Z + other.Z,
	}
}

func (v Vec3) Sub(other Vec3) Vec3 {
	return Vec3{
		X: v.X - other.X,
		Y: v.Y - other.Y,
		Z: v.Z - other.Z,
	}
}

func (v Vec3) MulScalar(scalar float32) Vec3 {
	return Vec3{
		X: v.X * scalar,
		Y: v.Y * scalar,
		Z: v.Z * scalar,
	}
}

func (v Vec3) LengthSquared() float32 {
	return v.X*v.X + v.Y*v.Y + v.Z*v.Z
}

func (v Vec3) Length() float32 {
	return Ksqrt(v.LengthSquared())
}

func (v Vec3) Normalized() Vec3 {
	length := v.Length()
	if length < K_FLOAT_EPSILON {
		return NewVec3Zero()
	}
	return v.MulScalar(1.0 / length)
}

func (v Vec3) Dot(other Vec3) float32 {
	return v.X*other.X + v.Y*other.Y + v.Z*other.Z
}

func (v Vec3) Cross(other Vec3) Vec3 {
	return Vec3{
		X: v.Y*other.Z - v.Z*other.Y,
		Y: v.Z*other.X - v.X*other.Z,
		Z: v.X*other.Y - v.Y*other.X,
	}
}

func (v Vec3) Distance(other Vec3) float32 {
	return v.Sub(other).Length()
}

// Lerp moves every component of v the given fraction of the way toward other.
func (v Vec3) Lerp(other Vec3, t float32) Vec3 {
	return Vec3{
		X: Lerp(v.X, other.X, t),
		Y: Lerp(v.Y, other.Y, t),
		Z: Lerp(v.Z, other.Z, t),
	}
}

// IsFinite reports whether every component is neither NaN nor infinite.
func (v Vec3) IsFinite() bool {
	return IsFinite(v.X) && IsFinite(v.Y) && IsFinite(v.Z)
}

// Transform multiplies v (as a point, w=1) by the given matrix.
func (v Vec3) Transform(mt Mat4) Vec4 {
	d := mt.Data
	return Vec4{
		X: v.X*d[0] + v.Y*d[4] + v.Z*d[8] + d[12],
		Y: v.X*d[1] + v.Y*d[5] + v.Z*d[9] + d[13],
		Z: v.X*d[2] + v.Y*d[6] + v.Z*d[10] + d[14],
		W: v.X*d[3] + v.Y*d[7] + v.Z*d[11] + d[15],
	}
}

// ------------------------------------------
// Matrix 4x4
// ------------------------------------------

func NewMat4Identity() Mat4 {
	mt := Mat4{}
	mt.Data[0] = 1.0
	mt.Data[5] = 1.0
	mt.Data[10] = 1.0
	mt.Data[15] = 1.0
	return mt
}

func (mt Mat4) Mul(other Mat4) Mat4 {
	out := Mat4{}
	for row := 0; row < 4; row++ {
		for col := 0; col < 4; col++ {
			var sum float32
			for k := 0; k < 4; k++ {
				sum += mt.Data[row*4+k] * other.Data[k*4+col]
			}
			out.Data[row*4+col] = sum
		}
	}
	return out
}

func NewMat4Perspective(fovRadians, aspectRatio, nearClip, farClip float32) Mat4 {
	halfTanFov := float32(m.Tan(float64(fovRadians * 0.5)))
	mt := Mat4{}
	mt.Data[0] = 1.0 / (aspectRatio * halfTanFov)
	mt.Data[5] = 1.0 / halfTanFov
	mt.Data[10] = -((farClip + nearClip) / (farClip - nearClip))
	mt.Data[11] = -1.0
	mt.Data[14] = -((2.0 * farClip * nearClip) / (farClip - nearClip))
	return mt
}

func NewMat4LookAt(position, target, up Vec3) Mat4 {
	zAxis := target.Sub(position).Normalized()
	xAxis := zAxis.Cross(up).Normalized()
	yAxis := xAxis.Cross(zAxis)

	mt := Mat4{}
	mt.Data[0] = xAxis.X
	mt.Data[1] = yAxis.X
	mt.Data[2] = -zAxis.X
	mt.Data[3] = 0
	mt.Data[4] = xAxis.Y
	mt.Data[5] = yAxis.Y
	mt.Data[6] = -zAxis.Y
	mt.Data[7] = 0
	mt.Data[8] = xAxis.Z
	mt.Data[9] = yAxis.Z
	mt.Data[10] = -zAxis.Z
	mt.Data[11] = 0
	mt.Data[12] = -xAxis.Dot(position)
	mt.Data[13] = -yAxis.Dot(position)
	mt.Data[14] = zAxis.Dot(position)
	mt.Data[15] = 1.0
	return mt
}

func NewMat4Translation(position Vec3) Mat4 {
	mt := NewMat4Identity()
	mt.Data[12] = position.X
	mt.Data[13] = position.Y
	mt.Data[14] = position.Z
	return mt
}

func NewMat4Scale(scale Vec3) Mat4 {
	mt := NewMat4Identity()
	mt.Data[0] = scale.X
	mt.Data[5] = scale.Y
	mt.Data[10] = scale.Z
	return mt
}

func NewMat4EulerXYZ(xRadians, yRadians, zRadians float32) Mat4 {
	rx := NewMat4Identity()
	cx, sx := Kcos(xRadians), Ksin(xRadians)
	rx.Data[5] = cx
	rx.Data[6] = sx
	rx.Data[9] = -sx
	rx.Data[10] = cx

	ry := NewMat4Identity()
	cy, sy := Kcos(yRadians), Ksin(yRadians)
	ry.Data[0] = cy
	ry.Data[2] = -sy
	ry.Data[8] = sy
	ry.Data[10] = cy

	rz := NewMat4Identity()
	cz, sz := Kcos(zRadians), Ksin(zRadians)
	rz.Data[0] = cz
	rz.Data[1] = sz
	rz.Data[4] = -sz
	rz.Data[5] = cz

	return rx.Mul(ry).Mul(rz)
}

func DegToRad(degrees float32) float32 {
	return degrees * K_DEG2RAD_MULTIPLIER
}

func RadToDeg(radians float32) float32 {
	return radians * K_RAD2DEG_MULTIPLIER
}
