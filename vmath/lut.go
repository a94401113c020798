package vmath

import (
	"math"
)

func init() {
	for i := 0; i < LUTSize; i++ {
		rad := 2.0 * math.Pi * float64(i) / LUTSize
		SinLUT[i] = int64(math.Round(math.Sin(rad) * ScaleF))
		CosLUT[i] = int64(math.Round(math.Cos(rad) * ScaleF))
	}

	// Atan2 LUT: ratio [0,1] -> angle [0, π/4] in Q32.32 turns
	for i := 0; i < LUTSize; i++ {
		ratio := float64(i) / float64(LUTMask)
		angle := math.Atan(ratio)
		atan2LUT[i] = int64(angle / (2 * math.Pi) * ScaleF)
	}
}

// SinLUT and CosLUT scaled by Q32.32
var (
	SinLUT [LUTSize]int64
	CosLUT [LUTSize]int64

	// atan2LUT maps ratio [0,1] to angle [0, Scale/8] (one octant)
	atan2LUT [LUTSize]int64
)

// Atan2 returns angle in [0, Scale) for (dy, dx) using LUT
// Zero vector returns 0
func Atan2(dy, dx int64) int64 {
	if dx == 0 && dy == 0 {
		return 0
	}

	adx, ady := Abs(dx), Abs(dy)

	var baseAngle int64
	if adx >= ady {
		// ratio = |dy/dx| in [0,1]
		idx := MulDiv(ady, LUTMask, adx)
		if idx > LUTMask {
			idx = LUTMask
		}
		baseAngle = atan2LUT[idx]
	} else {
		// ratio = |dx/dy| in [0,1], angle = π/2 - atan(ratio)
		idx := MulDiv(adx, LUTMask, ady)
		if idx > LUTMask {
			idx = LUTMask
		}
		baseAngle = Scale/4 - atan2LUT[idx]
	}

	if dx > 0 {
		if dy >= 0 {
			return baseAngle
		}
		return Scale - baseAngle
	} else if dx < 0 {
		if dy >= 0 {
			return Scale/2 - baseAngle
		}
		return Scale/2 + baseAngle
	}
	if dy > 0 {
		return Scale / 4
	}
	return 3 * Scale / 4
}
