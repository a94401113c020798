package vmath

// Transform2D is a rigid (rotation + translation) transform on the collision plane
// M holds the local basis axes expressed in the parent frame
type Transform2D struct {
	M [2]Vec2
	T Vec2
}

// Identity2D returns the identity transform
func Identity2D() Transform2D {
	return Transform2D{M: [2]Vec2{{Scale, 0}, {0, Scale}}}
}

// RotateVector applies the rotation block only
func (t *Transform2D) RotateVector(v Vec2) Vec2 {
	return Vec2{
		Mul(t.M[0].X, v.X) + Mul(t.M[1].X, v.Y),
		Mul(t.M[0].Y, v.X) + Mul(t.M[1].Y, v.Y),
	}
}

// TransformPoint applies rotation then translation
func (t *Transform2D) TransformPoint(p Vec2) Vec2 {
	return V2Add(t.RotateVector(p), t.T)
}

// OrthonormalInvert returns the inverse assuming M is orthonormal
// Rotation is transposed and the translation is the negated rotated translation
func (t *Transform2D) OrthonormalInvert() Transform2D {
	inv := Transform2D{
		M: [2]Vec2{
			{t.M[0].X, t.M[1].X},
			{t.M[0].Y, t.M[1].Y},
		},
	}
	r := inv.RotateVector(t.T)
	inv.T = Vec2{-r.X, -r.Y}
	return inv
}

// Transform3D is a rigid 3D pose; M holds the model axes in world space
type Transform3D struct {
	M [3]Vec3
	T Vec3
}

// Identity3D returns the identity pose at the origin
func Identity3D() Transform3D {
	return Transform3D{M: [3]Vec3{{Scale, 0, 0}, {0, Scale, 0}, {0, 0, Scale}}}
}

// Pose3D builds a pose with yaw about the vertical axis at the given position
func Pose3D(pos Vec3, yaw int64) Transform3D {
	t := Transform3D{T: pos}
	t.SetRotationY(yaw)
	return t
}

// SetRotationY replaces the rotation block with a yaw about +Y, keeping translation
// The model X axis becomes (cos, 0, -sin) on the ground plane
func (t *Transform3D) SetRotationY(yaw int64) {
	sin, cos := SinCos(yaw)
	t.M[0] = Vec3{cos, 0, -sin}
	t.M[1] = Vec3{0, Scale, 0}
	t.M[2] = Vec3{sin, 0, cos}
}

func (t *Transform3D) SetTranslation(p Vec3) {
	t.T = p
}

// Translate moves the pose by a world-space offset
func (t *Transform3D) Translate(d Vec3) {
	t.T = V3Add(t.T, d)
}

// RotateVector applies the rotation block only
func (t *Transform3D) RotateVector(v Vec3) Vec3 {
	return Vec3{
		Mul(t.M[0].X, v.X) + Mul(t.M[1].X, v.Y) + Mul(t.M[2].X, v.Z),
		Mul(t.M[0].Y, v.X) + Mul(t.M[1].Y, v.Y) + Mul(t.M[2].Y, v.Z),
		Mul(t.M[0].Z, v.X) + Mul(t.M[1].Z, v.Y) + Mul(t.M[2].Z, v.Z),
	}
}

// TransformPoint applies rotation then translation
func (t *Transform3D) TransformPoint(p Vec3) Vec3 {
	return V3Add(t.RotateVector(p), t.T)
}

// OrthonormalInvert returns the inverse assuming M is orthonormal
func (t *Transform3D) OrthonormalInvert() Transform3D {
	inv := Transform3D{
		M: [3]Vec3{
			{t.M[0].X, t.M[1].X, t.M[2].X},
			{t.M[0].Y, t.M[1].Y, t.M[2].Y},
			{t.M[0].Z, t.M[1].Z, t.M[2].Z},
		},
	}
	inv.T = V3Neg(inv.RotateVector(t.T))
	return inv
}

// Flatten drops the vertical axis: model X and Z axes and the X/Z translation
func (t *Transform3D) Flatten() Transform2D {
	return Transform2D{
		M: [2]Vec2{V3XZ(t.M[0]), V3XZ(t.M[2])},
		T: V3XZ(t.T),
	}
}
