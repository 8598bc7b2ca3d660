package systems

import (
	"frostwild-server/internal/domain"
	"math"
	"math/rand"
)

// SeekDecision - решение враждебного актора на тик
type SeekDecision struct {
	Move     domain.Vec3 // единичное направление движения (нулевое, если стоим)
	InRange  bool        // игрок в радиусе атаки
	Distance float64
}

// ComputeSeek решает, что делать актору в состоянии seek.
// Двигаемся к игроку, пока дальше радиуса контакта; атакуем, если игрок в радиусе атаки.
func ComputeSeek(actorPos, playerPos domain.Vec3, contactRadius, attackRange float64) SeekDecision {
	dist := actorPos.DistanceTo(playerPos)
	d := SeekDecision{Distance: dist, InRange: dist <= attackRange}
	if dist > contactRadius {
		d.Move = playerPos.Sub(actorPos).Flat().Normalized()
	}
	return d
}

// WildlifeAction - поведение животного на тик
type WildlifeAction uint8

const (
	WildlifeWander WildlifeAction = iota
	WildlifeFlee
	WildlifeCharge
)

func (a WildlifeAction) String() string {
	switch a {
	case WildlifeFlee:
		return "flee"
	case WildlifeCharge:
		return "charge"
	}
	return "wander"
}

// ComputeWildlifeAction выбирает поведение животного.
//   - овца: убегает, пока не истек fleeUntil, иначе бродит;
//   - кабан: атакует, если игрок ближе chargeRadius или кабана ударили, иначе бродит.
func ComputeWildlifeAction(kind domain.EntityKind, animalPos, playerPos domain.Vec3, now, fleeUntil float64, provoked bool, chargeRadius float64) WildlifeAction {
	switch kind {
	case domain.KindSheep:
		if now < fleeUntil {
			return WildlifeFlee
		}
	case domain.KindBoar:
		if provoked || animalPos.DistanceTo(playerPos) < chargeRadius {
			return WildlifeCharge
		}
	}
	return WildlifeWander
}

// RandomHeading возвращает случайное единичное направление на плоскости
func RandomHeading(rng *rand.Rand) domain.Vec3 {
	return domain.Forward(rng.Float64() * 2 * math.Pi)
}
