package engine

import (
	"frostwild-server/internal/domain"
	"frostwild-server/internal/systems"
	"frostwild-server/pkg/logger"
	"math"

	"github.com/sirupsen/logrus"
)

// InputState - снимок зажатых клавиш на текущий кадр
type InputState struct {
	Forward, Back, Left, Right bool
	Sprint                     bool
}

// Direction возвращает вектор намерения движения (не нормализован). Вперед = -Z.
func (in InputState) Direction() domain.Vec3 {
	var d domain.Vec3
	if in.Forward {
		d.Z--
	}
	if in.Back {
		d.Z++
	}
	if in.Left {
		d.X--
	}
	if in.Right {
		d.X++
	}
	return d
}

// PlayerReader - доступ к игроку только на чтение (Director)
type PlayerReader interface {
	Position() domain.Vec3
	Vitals() domain.Vitals
	Weapon() domain.WeaponKind
	Owns(kind domain.EquipmentKind) bool
	Greed() float64
	Alert() float64
	Attacking(now float64) bool
	LastActionAt() float64
}

// PlayerController владеет показателями и инвентарем игрока.
// Все таймеры - абсолютные отметки на часах симуляции.
type PlayerController struct {
	ID     domain.EntityID
	Pos    domain.Vec3
	Facing float64

	vitals domain.Vitals
	inv    *domain.Inventory
	greed  float64
	alert  float64

	attackStarted float64
	attackUntil   float64 // атака идет, пока now < attackUntil
	hitUntil      float64
	lastActionAt  float64
	sprinting     bool

	bound  float64
	tun    PlayerTuning
	vt     VitalsTuning
	fx     Effects
	logger *logrus.Entry
}

func NewPlayerController(id domain.EntityID, start domain.Vec3, bound float64, tun Tuning, fx Effects) *PlayerController {
	return &PlayerController{
		ID:     id,
		Pos:    start.Flat(),
		vitals: domain.NewVitals(),
		inv:    domain.NewInventory(),
		bound:  bound,
		tun:    tun.Player,
		vt:     tun.Vitals,
		fx:     fx,
		logger: logger.Log.WithFields(logrus.Fields{"component": "player", "player_id": id}),
	}
}

func (p *PlayerController) Position() domain.Vec3            { return p.Pos }
func (p *PlayerController) Vitals() domain.Vitals            { return p.vitals }
func (p *PlayerController) Weapon() domain.WeaponKind        { return p.inv.Weapon() }
func (p *PlayerController) Owns(k domain.EquipmentKind) bool { return p.inv.Owns(k) }
func (p *PlayerController) Count(k domain.ResourceKind) int  { return p.inv.Count(k) }
func (p *PlayerController) Greed() float64                   { return p.greed }
func (p *PlayerController) Alert() float64                   { return p.alert }
func (p *PlayerController) LastActionAt() float64            { return p.lastActionAt }
func (p *PlayerController) IsDead() bool                     { return p.vitals.IsDead() }
func (p *PlayerController) Sprinting() bool                  { return p.sprinting }
func (p *PlayerController) HitFlash(now float64) bool        { return now < p.hitUntil }

// Inventory - копия счетчиков ресурсов
func (p *PlayerController) Inventory() map[domain.ResourceKind]int {
	return p.inv.Counts()
}

// Equipment - разблокированные предметы в стабильном порядке
func (p *PlayerController) Equipment() []domain.EquipmentKind {
	return p.inv.Equipment()
}

// Attacking - идет ли анимация удара
func (p *PlayerController) Attacking(now float64) bool {
	return now < p.attackUntil
}

// AttackProgress - доля пройденной анимации удара [0, 1]
func (p *PlayerController) AttackProgress(now float64) float64 {
	if !p.Attacking(now) || p.tun.AttackDuration <= 0 {
		return 0
	}
	return math.Min(1, (now-p.attackStarted)/p.tun.AttackDuration)
}

// Resistance - множитель потери тепла от экипировки
func (p *PlayerController) Resistance() float64 {
	return systems.ColdResistance(p.inv, p.vt.ResistanceBonus)
}

// HeatImmune - расплавленное ядро защищает от жара
func (p *PlayerController) HeatImmune() bool {
	return p.inv.Owns(domain.EquipMoltenCore)
}

// Update продвигает игрока на dt: показатели, выносливость, движение, таймер удара.
func (p *PlayerController) Update(in InputState, dt, now float64, obstacles []domain.Obstacle) {
	if p.vitals.IsDead() || dt <= 0 {
		return
	}

	// 1. Естественное убывание показателей
	rates := systems.DecayRates{
		Temperature: p.vt.TemperatureDecay,
		Hunger:      p.vt.HungerDecay,
		FreezeDrain: p.vt.FreezeDrain,
		StarveDrain: p.vt.StarveDrain,
	}
	if systems.DecayVitals(&p.vitals, rates, p.Resistance(), dt) {
		p.logger.Info("Player succumbed to the elements.")
	}
	p.alert = clamp100(p.alert - p.tun.AlertDecay*dt)

	// 2. Скорость: тяжелый меч замедляет, спринт ускоряет, пока есть силы
	dir := in.Direction()
	moving := dir.Length() > 0
	holding := p.inv.Weapon() == domain.WeaponHeavySword

	speed := p.tun.Speed
	if holding {
		speed *= p.tun.HeavyPenalty
	}
	p.sprinting = in.Sprint && moving && p.vitals.Stamina() > 0
	switch {
	case p.sprinting:
		speed *= p.tun.SprintMultiplier
		drain := p.tun.SprintDrain
		if holding {
			drain = p.tun.HoldingSprintDrain
		}
		p.vitals.DrainStamina(drain * dt)
		p.alert = clamp100(p.alert + p.tun.SprintAlert*dt)
	case moving:
		p.vitals.RestoreStamina(p.tun.WalkRegen * dt)
	default:
		p.vitals.RestoreStamina(p.tun.IdleRegen * dt)
	}

	// 3. Движение: ход либо целиком разрешен, либо заблокирован
	if moving {
		candidate := p.Pos.Add(dir.Normalized().Scale(speed * dt)).Clamp(p.bound)
		if !systems.IsBlocked(candidate, p.tun.Radius, obstacles) {
			p.Pos = candidate
		}
		if !p.Attacking(now) {
			p.Facing = domain.FacingOf(dir)
		}
	}

	// 4. Анимация удара завершается сама по истечении
	if p.attackUntil > 0 && now >= p.attackUntil {
		p.attackUntil = 0
	}

	p.Pos = p.Pos.Clamp(p.bound)
}

// Attack начинает удар. Нужен меч в руках, отсутствие текущего удара и достаточно сил.
func (p *PlayerController) Attack(now float64) bool {
	if p.vitals.IsDead() || p.inv.Weapon() != domain.WeaponHeavySword || p.Attacking(now) {
		return false
	}
	if !p.vitals.SpendStamina(p.tun.AttackCost) {
		return false
	}
	p.attackStarted = now
	p.attackUntil = now + p.tun.AttackDuration
	p.alert = clamp100(p.alert + p.tun.AttackAlert)
	p.lastActionAt = now
	return true
}

// TakeDamage наносит урон и включает вспышку попадания. Возвращает true, если удар убил.
func (p *PlayerController) TakeDamage(amount, now float64) bool {
	if p.vitals.IsDead() {
		return false
	}
	p.hitUntil = now + p.tun.HitFlash
	p.fx.SpawnBurst(p.Pos, ColorBlood, 4)
	return p.vitals.TakeDamage(amount)
}

// Burn - непрерывный урон среды (без вспышки)
func (p *PlayerController) Burn(amount float64) bool {
	return p.vitals.TakeDamage(amount)
}

// Eat повышает сытость и часть того же количества переводит в здоровье
func (p *PlayerController) Eat(amount float64) {
	p.vitals.AdjustHunger(amount)
	p.vitals.Heal(amount * p.tun.EatHealRatio)
}

// Warm / Chill меняют температуру от внешних источников
func (p *PlayerController) Warm(amount float64)  { p.vitals.AdjustTemperature(amount) }
func (p *PlayerController) Chill(amount float64) { p.vitals.AdjustTemperature(-amount) }

// Craft атомарно выполняет рецепт
func (p *PlayerController) Craft(id domain.RecipeID, now float64) bool {
	r, ok := domain.Recipes[id]
	if !ok || p.vitals.IsDead() {
		return false
	}
	if !p.inv.Craft(r) {
		return false
	}
	p.lastActionAt = now
	p.logger.WithField("recipe", r.Name).Info("Crafted.")
	return true
}

// ApplyEquipmentEffect разблокирует защиту. Повторный вызов ничего не меняет.
func (p *PlayerController) ApplyEquipmentEffect(kind domain.EquipmentKind) bool {
	return p.inv.Unlock(kind)
}

// Hold берет оружие в руки
func (p *PlayerController) Hold(w domain.WeaponKind) {
	p.inv.Hold(w)
}

// TakeCampfire списывает один собранный костер для установки
func (p *PlayerController) TakeCampfire() bool {
	return p.inv.Remove(domain.ResourceCampfire, 1)
}

// Pickup применяет эффект подобранного предмета. Таблица исчерпывающая:
// на непереносимые предметы возвращает false, и предмет остается в мире.
func (p *PlayerController) Pickup(kind domain.ItemKind, now float64) bool {
	if p.vitals.IsDead() {
		return false
	}
	switch kind {
	case domain.ItemHeavySword:
		p.inv.Hold(domain.WeaponHeavySword)
		p.greed = clamp100(p.greed + p.tun.SwordGreed)
	case domain.ItemFrostHeart:
		p.ApplyEquipmentEffect(domain.EquipFrostHeart)
	case domain.ItemMoltenCore:
		p.ApplyEquipmentEffect(domain.EquipMoltenCore)
	case domain.ItemWood:
		p.inv.Add(domain.ResourceWood, 1)
		p.greed = clamp100(p.greed + p.tun.ResourceGreed)
	case domain.ItemFur:
		p.inv.Add(domain.ResourceFur, 1)
	case domain.ItemIceCrystal:
		p.inv.Add(domain.ResourceIceCrystal, 1)
		p.greed = clamp100(p.greed + p.tun.ResourceGreed)
	case domain.ItemFireOre:
		p.inv.Add(domain.ResourceFireOre, 1)
		p.greed = clamp100(p.greed + p.tun.ResourceGreed)
	case domain.ItemBerry:
		p.Eat(p.vt.BerryFood)
	case domain.ItemMeat:
		p.Eat(p.vt.MeatFood)
	case domain.ItemHeatSource, domain.ItemUnknown:
		return false
	default:
		return false
	}
	p.lastActionAt = now
	return true
}

// ConsumeStageResources списывает лед и огонь для алтаря
func (p *PlayerController) ConsumeStageResources() bool {
	if !p.inv.Has(domain.ResourceIceCrystal, 1) || !p.inv.Has(domain.ResourceFireOre, 1) {
		return false
	}
	p.inv.Remove(domain.ResourceIceCrystal, 1)
	p.inv.Remove(domain.ResourceFireOre, 1)
	return true
}

// MarkAction отмечает осмысленное действие игрока (для оценки бездействия)
func (p *PlayerController) MarkAction(now float64) {
	p.lastActionAt = now
}

// ResetPressure сбрасывает жадность и тревогу (после наказания)
func (p *PlayerController) ResetPressure() {
	p.greed = 0
	p.alert = 0
}

// SetVitals - админская установка показателей
func (p *PlayerController) SetVitals(v domain.Vitals) {
	p.vitals = v
}

func clamp100(v float64) float64 {
	return math.Max(0, math.Min(domain.VitalMax, v))
}
