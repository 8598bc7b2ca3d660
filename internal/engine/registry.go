package engine

import (
	"frostwild-server/internal/domain"
	"frostwild-server/internal/systems"
	"frostwild-server/pkg/logger"
	"sort"

	"github.com/sirupsen/logrus"
)

// ActorState - состояние машины поведения враждебного актора
type ActorState uint8

const (
	ActorSeek      ActorState = iota // идет к игроку и бьет по готовности
	ActorStaggered                   // отброшен, собственное движение подавлено
)

func (s ActorState) String() string {
	if s == ActorStaggered {
		return "staggered"
	}
	return "seek"
}

// HostileActor - запись о враждебном существе. Менять ее может только реестр.
type HostileActor struct {
	ID        domain.EntityID
	Kind      domain.EntityKind
	Pos       domain.Vec3
	Facing    float64
	Health    float64
	MaxHealth float64
	Knockback domain.Vec3

	// NextAttackAt - абсолютная отметка, раньше которой актор не бьет
	NextAttackAt float64
	State        ActorState
}

// DropFunc - запрос на выпадение предмета в мир
type DropFunc func(kind domain.ItemKind, pos domain.Vec3)

// ActorRegistry владеет всеми живыми враждебными акторами
type ActorRegistry struct {
	ids    *domain.IDAllocator
	actors map[domain.EntityID]*HostileActor

	minion ActorProfile
	elite  ActorProfile
	kb     KnockbackTuning
	bound  float64

	onDrop DropFunc
	logger *logrus.Entry
}

func NewActorRegistry(ids *domain.IDAllocator, tun Tuning, bound float64, onDrop DropFunc) *ActorRegistry {
	if onDrop == nil {
		onDrop = func(domain.ItemKind, domain.Vec3) {}
	}
	return &ActorRegistry{
		ids:    ids,
		actors: make(map[domain.EntityID]*HostileActor),
		minion: tun.Minion,
		elite:  tun.Elite,
		kb:     tun.Knockback,
		bound:  bound,
		onDrop: onDrop,
		logger: logger.Log.WithFields(logrus.Fields{"component": "actor_registry"}),
	}
}

func (r *ActorRegistry) profile(kind domain.EntityKind) ActorProfile {
	if kind == domain.KindElite {
		return r.elite
	}
	return r.minion
}

// Spawn создает актора. Виды, кроме minion и elite, отклоняются.
func (r *ActorRegistry) Spawn(kind domain.EntityKind, pos domain.Vec3) (*HostileActor, bool) {
	if !kind.IsHostile() {
		return nil, false
	}
	prof := r.profile(kind)
	a := &HostileActor{
		ID:        r.ids.Next(kind),
		Kind:      kind,
		Pos:       pos.Flat().Clamp(r.bound),
		Health:    prof.Health,
		MaxHealth: prof.Health,
	}
	r.actors[a.ID] = a
	r.logger.WithFields(logrus.Fields{"actor_id": a.ID, "kind": kind, "x": a.Pos.X, "z": a.Pos.Z}).Info("Hostile spawned.")
	return a, true
}

// Update продвигает всех акторов на тик. Порядок для каждого: отбрасывание,
// затем (если оно погасло) движение к игроку и атака по готовности.
// damage вызывается синхронно, по разу на каждую успешную атаку.
func (r *ActorRegistry) Update(playerPos domain.Vec3, dt, now float64, damage func(amount float64)) {
	for _, a := range r.ordered() {
		prof := r.profile(a.Kind)

		// 1. Отбрасывание
		if systems.KnockbackActive(a.Knockback, r.kb.Threshold) {
			a.Pos, a.Knockback = systems.IntegrateKnockback(a.Pos, a.Knockback, r.kb.Friction)
			a.Pos = a.Pos.Clamp(r.bound)
			if systems.KnockbackActive(a.Knockback, r.kb.Threshold) {
				a.State = ActorStaggered
				continue
			}
		}
		a.Knockback = domain.Vec3{}
		a.State = ActorSeek

		// 2. Преследование
		d := systems.ComputeSeek(a.Pos, playerPos, prof.ContactRadius, prof.AttackRange)
		if d.Move.Length() > 0 {
			a.Pos = a.Pos.Add(d.Move.Scale(prof.Speed * dt)).Clamp(r.bound)
			a.Facing = domain.FacingOf(d.Move)
		}

		// 3. Атака по абсолютной отметке готовности
		if d.InRange && now >= a.NextAttackAt {
			a.NextAttackAt = now + prof.Cooldown
			if damage != nil {
				damage(prof.Damage)
			}
		}
	}
}

// Hit наносит актору урон и добавляет импульс отбрасывания.
// Возвращает true, только если этот удар убил актора (он сразу удаляется из реестра).
func (r *ActorRegistry) Hit(id domain.EntityID, attackerPos domain.Vec3, damage float64) bool {
	a, ok := r.actors[id]
	if !ok {
		return false
	}
	a.Knockback = a.Knockback.Add(systems.KnockbackImpulse(a.Pos, attackerPos, r.kb.EnemyImpulse))
	a.State = ActorStaggered

	var killed bool
	a.Health, killed = systems.ApplyDamage(a.Health, damage)
	if !killed {
		return false
	}

	delete(r.actors, id)
	fields := logrus.Fields{"actor_id": id, "kind": a.Kind}
	if a.Kind == domain.KindElite {
		r.onDrop(domain.ItemFrostHeart, a.Pos)
		r.logger.WithFields(fields).Info("Elite slain, guaranteed drop emitted.")
	} else {
		r.logger.WithFields(fields).Debug("Hostile slain.")
	}
	return true
}

// InReach возвращает id акторов, чей центр строго ближе reach к точке удара
func (r *ActorRegistry) InReach(point domain.Vec3, reach float64) []domain.EntityID {
	var ids []domain.EntityID
	for _, a := range r.ordered() {
		if systems.WithinReach(point, a.Pos, reach) {
			ids = append(ids, a.ID)
		}
	}
	return ids
}

// Get возвращает актора по id
func (r *ActorRegistry) Get(id domain.EntityID) (*HostileActor, bool) {
	a, ok := r.actors[id]
	return a, ok
}

// Actors - живые акторы в стабильном порядке (по id)
func (r *ActorRegistry) Actors() []HostileActor {
	out := make([]HostileActor, 0, len(r.actors))
	for _, a := range r.ordered() {
		out = append(out, *a)
	}
	return out
}

func (r *ActorRegistry) Count() int { return len(r.actors) }

// CountKind - сколько живых акторов данного вида
func (r *ActorRegistry) CountKind(kind domain.EntityKind) int {
	n := 0
	for _, a := range r.actors {
		if a.Kind == kind {
			n++
		}
	}
	return n
}

// ordered фиксирует порядок обхода, чтобы прогон с одним сидом был воспроизводим
func (r *ActorRegistry) ordered() []*HostileActor {
	list := make([]*HostileActor, 0, len(r.actors))
	for _, a := range r.actors {
		list = append(list, a)
	}
	sort.Slice(list, func(i, j int) bool { return list[i].ID < list[j].ID })
	return list
}
