package vmath

// Vec2 is a 2D vector in Q32.32 fixed-point
// Collision space maps world X to X and world Z to Y
type Vec2 struct {
	X, Y int64
}

func V2(x, y float64) Vec2 {
	return Vec2{FromFloat(x), FromFloat(y)}
}

func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

func V2Scale(v Vec2, s int64) Vec2 {
	return Vec2{Mul(v.X, s), Mul(v.Y, s)}
}

func V2Dot(a, b Vec2) int64 {
	return Mul(a.X, b.X) + Mul(a.Y, b.Y)
}

// V2Manhattan returns |x| + |y| using additions only
func V2Manhattan(v Vec2) int64 {
	return Abs(v.X) + Abs(v.Y)
}

// V2MagSq returns squared magnitude; callers bound the inputs first since squaring can wrap
func V2MagSq(v Vec2) int64 {
	return Mul(v.X, v.X) + Mul(v.Y, v.Y)
}
