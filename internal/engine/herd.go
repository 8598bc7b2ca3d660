package engine

import (
	"frostwild-server/internal/domain"
	"frostwild-server/internal/systems"
	"frostwild-server/pkg/logger"
	"math/rand"
	"sort"

	"github.com/sirupsen/logrus"
)

// Animal - дикое животное (овца или кабан)
type Animal struct {
	ID        domain.EntityID
	Kind      domain.EntityKind
	Pos       domain.Vec3
	Facing    float64
	Health    float64
	MaxHealth float64
	Vel       domain.Vec3 // собственная скорость (блуждание, бегство, атака)
	Knockback domain.Vec3

	Action       systems.WildlifeAction
	FleeUntil    float64
	Provoked     bool
	NextWanderAt float64
	NextBiteAt   float64
}

// Смещения вторичной добычи (шкуры) относительно тела
var furOffsets = map[domain.EntityKind][]domain.Vec3{
	domain.KindSheep: {{X: 1}},
	domain.KindBoar:  {{X: 1}, {X: -1, Z: 1}},
}

// Herd владеет дикими животными мира
type Herd struct {
	ids     *domain.IDAllocator
	animals map[domain.EntityID]*Animal
	rng     *rand.Rand

	tun    WildlifeTuning
	kb     KnockbackTuning
	onDrop DropFunc
	logger *logrus.Entry
}

func NewHerd(ids *domain.IDAllocator, rng *rand.Rand, tun Tuning, onDrop DropFunc) *Herd {
	if onDrop == nil {
		onDrop = func(domain.ItemKind, domain.Vec3) {}
	}
	return &Herd{
		ids:     ids,
		animals: make(map[domain.EntityID]*Animal),
		rng:     rng,
		tun:     tun.Wildlife,
		kb:      tun.Knockback,
		onDrop:  onDrop,
		logger:  logger.Log.WithFields(logrus.Fields{"component": "herd"}),
	}
}

// Spawn выпускает животное. Не животные виды отклоняются.
func (h *Herd) Spawn(kind domain.EntityKind, pos domain.Vec3) (*Animal, bool) {
	if !kind.IsAnimal() {
		return nil, false
	}
	hp := h.tun.SheepHealth
	if kind == domain.KindBoar {
		hp = h.tun.BoarHealth
	}
	a := &Animal{
		ID:        h.ids.Next(kind),
		Kind:      kind,
		Pos:       pos.Flat().Clamp(h.tun.Bound),
		Health:    hp,
		MaxHealth: hp,
	}
	h.animals[a.ID] = a
	return a, true
}

func (h *Herd) speed(kind domain.EntityKind) float64 {
	if kind == domain.KindBoar {
		return h.tun.BoarSpeed
	}
	return h.tun.SheepSpeed
}

// Update продвигает животных. damage вызывается при укусе кабана.
func (h *Herd) Update(playerPos domain.Vec3, dt, now float64, damage func(amount float64)) {
	for _, a := range h.ordered() {
		// 1. Отбрасывание гаснет своим трением
		if systems.KnockbackActive(a.Knockback, h.kb.Threshold) {
			a.Pos = a.Pos.Add(a.Knockback)
			a.Knockback = a.Knockback.Scale(h.tun.KnockbackFriction)
		} else {
			a.Knockback = domain.Vec3{}
		}

		// 2. Поведение
		a.Action = systems.ComputeWildlifeAction(a.Kind, a.Pos, playerPos, now, a.FleeUntil, a.Provoked, h.tun.ChargeRadius)
		speed := h.speed(a.Kind)
		switch a.Action {
		case systems.WildlifeFlee:
			a.Vel = a.Pos.Sub(playerPos).Flat().Normalized().Scale(speed * h.tun.FleeMultiplier)
		case systems.WildlifeCharge:
			a.Vel = playerPos.Sub(a.Pos).Flat().Normalized().Scale(speed * h.tun.ChargeMultiplier)
			h.bite(a, playerPos, now, damage)
		default:
			if now >= a.NextWanderAt {
				a.Vel = systems.RandomHeading(h.rng).Scale(speed)
				a.NextWanderAt = now + h.tun.WanderMin + h.rng.Float64()*(h.tun.WanderMax-h.tun.WanderMin)
			}
		}

		// 3. Интеграция собственной скорости
		if a.Vel.Length() > 0 {
			a.Facing = domain.FacingOf(a.Vel)
		}
		a.Pos = a.Pos.Add(a.Vel.Scale(dt)).Clamp(h.tun.Bound)
		if a.Action == systems.WildlifeWander {
			a.Vel = a.Vel.Scale(h.tun.VelocityFriction)
		}
	}
}

// bite - контактный урон кабана, не чаще раза за BiteCooldown
func (h *Herd) bite(a *Animal, playerPos domain.Vec3, now float64, damage func(float64)) {
	if a.Pos.DistanceTo(playerPos) >= h.tun.ContactRadius || now < a.NextBiteAt {
		return
	}
	a.NextBiteAt = now + h.tun.BiteCooldown
	a.Knockback = a.Knockback.Add(systems.KnockbackImpulse(a.Pos, playerPos, h.tun.Recoil))
	if damage != nil {
		damage(h.tun.BoarDamage)
	}
}

// Hit ранит животное. Овца пугается, кабан звереет.
// Возвращает true, если удар убил (тело удаляется, выпадает добыча).
func (h *Herd) Hit(id domain.EntityID, attackerPos domain.Vec3, damage, now float64) bool {
	a, ok := h.animals[id]
	if !ok {
		return false
	}
	a.Knockback = a.Knockback.Add(systems.KnockbackImpulse(a.Pos, attackerPos, h.kb.AnimalImpulse))
	switch a.Kind {
	case domain.KindSheep:
		a.FleeUntil = now + h.tun.FleeDuration
	case domain.KindBoar:
		a.Provoked = true
	}

	var killed bool
	a.Health, killed = systems.ApplyDamage(a.Health, damage)
	if !killed {
		return false
	}

	delete(h.animals, id)
	h.onDrop(domain.ItemMeat, a.Pos)
	for _, off := range furOffsets[a.Kind] {
		h.onDrop(domain.ItemFur, a.Pos.Add(off))
	}
	h.logger.WithFields(logrus.Fields{"animal_id": id, "kind": a.Kind}).Debug("Animal killed.")
	return true
}

// InReach возвращает id животных в радиусе удара
func (h *Herd) InReach(point domain.Vec3, reach float64) []domain.EntityID {
	var ids []domain.EntityID
	for _, a := range h.ordered() {
		if systems.WithinReach(point, a.Pos, reach) {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

func (h *Herd) Get(id domain.EntityID) (*Animal, bool) {
	a, ok := h.animals[id]
	return a, ok
}

// Animals - копии в порядке id
func (h *Herd) Animals() []Animal {
	out := make([]Animal, 0, len(h.animals))
	for _, a := range h.ordered() {
		out = append(out, *a)
	}
	return out
}

func (h *Herd) Count() int { return len(h.animals) }

func (h *Herd) ordered() []*Animal {
	list := make([]*Animal, 0, len(h.animals))
	for _, a := range h.animals {
		list = append(list, a)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}
