package systems

import (
	"frostwild-server/internal/domain"
	"frostwild-server/pkg/logger"

	"github.com/sirupsen/logrus"
)

// IsBlocked проверяет, пересекается ли тело (candidate, radius) с любым статичным препятствием.
// Скольжения нет: ход либо разрешен целиком, либо запрещен.
func IsBlocked(candidate domain.Vec3, radius float64, obstacles []domain.Obstacle) bool {
	for _, o := range obstacles {
		if candidate.DistanceTo(o.Pos) < o.Radius+radius {
			logger.Log.WithFields(logrus.Fields{
				"component": "physics",
				"owner":     o.Owner,
				"x":         candidate.X,
				"z":         candidate.Z,
			}).Debug("Movement blocked by obstacle.")
			return true
		}
	}
	return false
}

// KnockbackImpulse - импульс отбрасывания: от атакующего к цели по горизонтали, длиной magnitude
func KnockbackImpulse(target, attacker domain.Vec3, magnitude float64) domain.Vec3 {
	return target.Sub(attacker).Flat().Normalized().Scale(magnitude)
}

// IntegrateKnockback сдвигает тело на скорость отбрасывания и гасит ее трением.
// Вызывается раз в тик, затухание геометрическое.
func IntegrateKnockback(pos, vel domain.Vec3, friction float64) (domain.Vec3, domain.Vec3) {
	return pos.Add(vel), vel.Scale(friction)
}

// KnockbackActive - пока скорость выше порога, собственное движение актора подавлено
func KnockbackActive(vel domain.Vec3, threshold float64) bool {
	return vel.Length() > threshold
}
