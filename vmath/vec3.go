package vmath

// Vec3 is a 3D vector in Q32.32 fixed-point
// Y is the vertical axis; the ground plane is X/Z
type Vec3 struct {
	X, Y, Z int64
}

func V3(x, y, z float64) Vec3 {
	return Vec3{FromFloat(x), FromFloat(y), FromFloat(z)}
}

func V3Add(a, b Vec3) Vec3 {
	return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z}
}

func V3Sub(a, b Vec3) Vec3 {
	return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z}
}

func V3Neg(v Vec3) Vec3 {
	return Vec3{-v.X, -v.Y, -v.Z}
}

func V3Scale(v Vec3, s int64) Vec3 {
	return Vec3{Mul(v.X, s), Mul(v.Y, s), Mul(v.Z, s)}
}

// V3MulComponents scales each axis independently
func V3MulComponents(v, s Vec3) Vec3 {
	return Vec3{Mul(v.X, s.X), Mul(v.Y, s.Y), Mul(v.Z, s.Z)}
}

func V3Dot(a, b Vec3) int64 {
	return Mul(a.X, b.X) + Mul(a.Y, b.Y) + Mul(a.Z, b.Z)
}

func V3Cross(a, b Vec3) Vec3 {
	return Vec3{
		Mul(a.Y, b.Z) - Mul(a.Z, b.Y),
		Mul(a.Z, b.X) - Mul(a.X, b.Z),
		Mul(a.X, b.Y) - Mul(a.Y, b.X),
	}
}

func V3MagSq(v Vec3) int64 {
	return Mul(v.X, v.X) + Mul(v.Y, v.Y) + Mul(v.Z, v.Z)
}

func V3Mag(v Vec3) int64 {
	return Sqrt(V3MagSq(v))
}

// V3Normalize scales v to unit length; zero vector stays zero
// Integer-only so results match across platforms
func V3Normalize(v Vec3) Vec3 {
	mag := V3Mag(v)
	if mag == 0 {
		return Vec3{}
	}
	return Vec3{Div(v.X, mag), Div(v.Y, mag), Div(v.Z, mag)}
}

// V3XZ projects onto the ground plane, dropping the vertical axis
func V3XZ(v Vec3) Vec2 {
	return Vec2{X: v.X, Y: v.Z}
}

// V3FromXZ embeds a ground-plane vector with the given height
func V3FromXZ(v Vec2, y int64) Vec3 {
	return Vec3{X: v.X, Y: y, Z: v.Y}
}
