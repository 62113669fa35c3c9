package math

func TransformCreate() *Transform {
	t := &Transform{}
	t.SetPositionRotationScale(NewVec3Zero(), NewVec3Zero(), 1.0)
	t.Local = NewMat4Identity()
	return t
}

func TransformFromPosition(position Vec3) *Transform {
	t := &Transform{}
	t.SetPositionRotationScale(position, NewVec3Zero(), 1.0)
	t.Local = NewMat4Identity()
	return t
}

func (t *Transform) SetPosition(position Vec3) {
	t.Position = position
	t.IsDirty = true
}

func (t *Transform) Translate(translation Vec3) {
	t.Position = t.Position.Add(translation)
	t.IsDirty = true
}

func (t *Transform) SetRotation(rotation Vec3) {
	t.Rotation = rotation
	t.IsDirty = true
}

func (t *Transform) Rotate(delta Vec3) {
	t.Rotation = t.Rotation.Add(delta)
	t.IsDirty = true
}

func (t *Transform) SetScale(scale float32) {
	t.Scale = scale
	t.IsDirty = true
}

func (t *Transform) SetPositionRotationScale(position, rotation Vec3, scale float32) {
	t.Position = position
	t.Rotation = rotation
	t.Scale = scale
	t.IsDirty = true
}

func (t *Transform) GetLocal() Mat4 {
	if t != nil {
		if t.IsDirty {
			r := NewMat4EulerXYZ(t.Rotation.X, t.Rotation.Y, t.Rotation.Z)
			tr := r.Mul(NewMat4Translation(t.Position))
			s := NewMat4Scale(NewVec3(t.Scale, t.Scale, t.Scale))
			t.Local = s.Mul(tr)
			t.IsDirty = false
		}
		return t.Local
	}
	return NewMat4Identity()
}
