package systems

import (
	"frostwild-server/internal/domain"
	"math/rand"
)

// AttackPoint - точка удара: позиция атакующего плюс направление взгляда * offset
func AttackPoint(pos domain.Vec3, facing, offset float64) domain.Vec3 {
	return pos.Flat().Add(domain.Forward(facing).Scale(offset))
}

// WithinReach - проверка "точка в круге" для мгновенного удара
func WithinReach(point, target domain.Vec3, reach float64) bool {
	return point.DistanceTo(target) < reach
}

// HitNode наносит узлу один удар. Руда разбивается сразу.
// Возвращает true, если узел разрушен этим ударом.
func HitNode(n *domain.HarvestNode) bool {
	if n.HP <= 0 {
		return false
	}
	if n.Kind.IsOre() {
		n.HP = 0
		return true
	}
	n.HP--
	return n.HP == 0
}

// ApplyDamage вычитает урон из здоровья актора с clamp в 0.
// killed == true только при первом достижении нуля.
func ApplyDamage(health, amount float64) (left float64, killed bool) {
	if health <= 0 {
		return 0, false
	}
	if amount < 0 {
		amount = 0
	}
	left = health - amount
	if left <= 0 {
		return 0, true
	}
	return left, false
}

// RollChance - бросок вероятности (бонусная добыча)
func RollChance(rng *rand.Rand, chance float64) bool {
	return rng.Float64() < chance
}
