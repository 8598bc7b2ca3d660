package domain

// VitalMax - верхняя граница всех показателей
const VitalMax = 100.0

// Vitals - четверка показателей игрока. Все значения всегда в [0, VitalMax].
// Поля закрыты: изменение только через методы, которые сами делают clamp.
type Vitals struct {
	health      float64
	stamina     float64
	temperature float64
	hunger      float64
}

// NewVitals создает полные показатели
func NewVitals() Vitals {
	return Vitals{
		health:      VitalMax,
		stamina:     VitalMax,
		temperature: VitalMax,
		hunger:      VitalMax,
	}
}

// VitalsOf создает показатели из произвольных значений (с clamp). Нужен сценариям и тестам.
func VitalsOf(health, stamina, temperature, hunger float64) Vitals {
	return Vitals{
		health:      clampVital(health),
		stamina:     clampVital(stamina),
		temperature: clampVital(temperature),
		hunger:      clampVital(hunger),
	}
}

func clampVital(v float64) float64 {
	if v < 0 || v != v { // NaN тоже сбрасываем в 0
		return 0
	}
	if v > VitalMax {
		return VitalMax
	}
	return v
}

func (v Vitals) Health() float64      { return v.health }
func (v Vitals) Stamina() float64     { return v.stamina }
func (v Vitals) Temperature() float64 { return v.temperature }
func (v Vitals) Hunger() float64      { return v.hunger }

// IsDead - здоровье на нуле
func (v Vitals) IsDead() bool {
	return v.health <= 0
}

// TakeDamage наносит урон. Возвращает true, если именно этот удар убил.
func (v *Vitals) TakeDamage(amount float64) bool {
	if v.IsDead() {
		return false
	}
	if amount < 0 {
		amount = 0
	}
	v.health = clampVital(v.health - amount)
	return v.IsDead()
}

// Heal лечит. Мертвых не лечим.
func (v *Vitals) Heal(amount float64) {
	if v.IsDead() || amount <= 0 {
		return
	}
	v.health = clampVital(v.health + amount)
}

// SpendStamina тратит силы. Возвращает false, если не хватило.
func (v *Vitals) SpendStamina(cost float64) bool {
	if v.stamina < cost {
		return false
	}
	v.stamina = clampVital(v.stamina - cost)
	return true
}

// DrainStamina списывает силы без проверки (спринт), останавливается на нуле
func (v *Vitals) DrainStamina(amount float64) {
	v.stamina = clampVital(v.stamina - amount)
}

// RestoreStamina восстанавливает силы (реген)
func (v *Vitals) RestoreStamina(amount float64) {
	v.stamina = clampVital(v.stamina + amount)
}

// AdjustTemperature меняет температуру на delta (знак любой)
func (v *Vitals) AdjustTemperature(delta float64) {
	v.temperature = clampVital(v.temperature + delta)
}

// AdjustHunger меняет сытость на delta (знак любой)
func (v *Vitals) AdjustHunger(delta float64) {
	v.hunger = clampVital(v.hunger + delta)
}
