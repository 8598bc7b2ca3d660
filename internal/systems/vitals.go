package systems

import (
	"frostwild-server/internal/domain"
	"math"
)

// DecayRates - скорости убывания показателей (в единицах в секунду)
type DecayRates struct {
	Temperature float64 // базовая потеря тепла (умножается на сопротивление)
	Hunger      float64
	FreezeDrain float64 // урон здоровью, пока температура на нуле
	StarveDrain float64 // урон здоровью, пока сытость на нуле
}

// ColdResistance возвращает множитель потери тепла:
// max(0, 1 - bonus * число предметов с защитой от холода)
func ColdResistance(inv *domain.Inventory, bonus float64) float64 {
	return math.Max(0, 1-bonus*float64(inv.ColdResistantCount()))
}

// DecayVitals продвигает естественное убывание показателей на dt.
// Возвращает true, если игрок умер от холода или голода именно на этом шаге.
func DecayVitals(v *domain.Vitals, r DecayRates, resistance, dt float64) bool {
	if dt <= 0 || v.IsDead() {
		return false
	}

	// 1. Тепло и сытость
	v.AdjustTemperature(-r.Temperature * resistance * dt)
	v.AdjustHunger(-r.Hunger * dt)

	// 2. На нуле показатели начинают есть здоровье
	died := false
	if v.Temperature() == 0 {
		died = v.TakeDamage(r.FreezeDrain*dt) || died
	}
	if v.Hunger() == 0 {
		died = v.TakeDamage(r.StarveDrain*dt) || died
	}
	return died
}
