package collision

import "strings"

// Mask is a capability bitset; a query only considers colliders whose mask intersects its own
type Mask uint32

const (
	MaskProjectileObstacle Mask = 1 << iota // stops projectiles
	MaskTankObstacle                        // blocks tank and player movement
	MaskPlayer
	MaskEnemy
)

// maskPending marks a slot that is allocated but not yet configured
const maskPending Mask = 0x1000

// MaskAll is every exported capability flag
const MaskAll = MaskProjectileObstacle | MaskTankObstacle | MaskPlayer | MaskEnemy

var maskNames = [...]struct {
	flag Mask
	name string
}{
	{MaskProjectileObstacle, "ProjectileObstacle"},
	{MaskTankObstacle, "TankObstacle"},
	{MaskPlayer, "Player"},
	{MaskEnemy, "Enemy"},
}

func (m Mask) Union(o Mask) Mask {
	return m | o
}

// Intersects reports whether any flag is shared
func (m Mask) Intersects(o Mask) bool {
	return m&o != 0
}

// Has reports whether every flag of o is set in m
func (m Mask) Has(o Mask) bool {
	return o != 0 && m&o == o
}

func (m Mask) IsZero() bool {
	return m == 0
}

func (m Mask) String() string {
	if m == 0 {
		return "none"
	}
	if m == maskPending {
		return "pending"
	}
	var sb strings.Builder
	for _, n := range maskNames {
		if m&n.flag == 0 {
			continue
		}
		if sb.Len() > 0 {
			sb.WriteByte('|')
		}
		sb.WriteString(n.name)
	}
	if sb.Len() == 0 {
		return "unknown"
	}
	return sb.String()
}
