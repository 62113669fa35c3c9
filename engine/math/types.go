package math

// Vec2 represents a 2D vector
type Vec2 struct {
	X, Y float32
}

// Vec3 represents a 3D vector
type Vec3 struct {
	X, Y, Z float32
}

// Vec4 represents a 4D vector
type Vec4 struct {
	X, Y, Z, W float32
}

/** @brief A 4x4 matrix, typically used to represent object and view transformations. */
type Mat4 struct {
	/** @brief The matrix elements */
	Data [16]float32
}

/**
 * @brief Represents the transform of a choreographed object in the world.
 * Rotation is kept as Euler angles (radians) because the animator accumulates
 * and decays per-axis spin; scale is uniform. The local matrix is rebuilt
 * lazily whenever one of the components changes.
 */
type Transform struct {
	/** @brief The position in the world. */
	Position Vec3
	/** @brief The rotation in the world as Euler angles (pitch, yaw, roll). */
	Rotation Vec3
	/** @brief The uniform scale in the world. */
	Scale float32
	/** @brief Set when position, rotation or scale changed since the last GetLocal. */
	IsDirty bool
	/** @brief The cached local transformation matrix. */
	Local Mat4
}
