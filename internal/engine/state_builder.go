package engine

import (
	"frostwild-server/internal/domain"
	"frostwild-server/pkg/api"
	"math"
)

// BuildSnapshot собирает снимок мира на конец тика для рендера.
// Накопленные события эффектов забираются из очереди (drain).
func (i *Instance) BuildSnapshot() api.Snapshot {
	snap := api.Snapshot{
		Type:   "UPDATE",
		Tick:   i.Tick,
		Time:   i.Now,
		State:  i.State.String(),
		Player: i.playerView(),
		Events: i.Feedback.Drain(),
		HUD:    i.HUD.View(i.Now),
	}
	if i.State != StatePlaying {
		snap.ResetIn = math.Max(0, i.ResetAt-i.Now)
	}

	// 1. Враги и животные
	for _, a := range i.Actors.Actors() {
		snap.Actors = append(snap.Actors, api.ActorView{
			ID:        a.ID.String(),
			Kind:      a.Kind.String(),
			Pos:       vecOf(a.Pos),
			Facing:    a.Facing,
			Health:    a.Health,
			MaxHealth: a.MaxHealth,
		})
	}
	for _, a := range i.Herd.Animals() {
		snap.Actors = append(snap.Actors, api.ActorView{
			ID:        a.ID.String(),
			Kind:      a.Kind.String(),
			Pos:       vecOf(a.Pos),
			Facing:    a.Facing,
			Health:    a.Health,
			MaxHealth: a.MaxHealth,
		})
	}

	// 2. Статика мира
	for _, it := range i.World.Items {
		snap.Items = append(snap.Items, api.ItemView{ID: it.ID.String(), Kind: it.Kind.String(), Pos: vecOf(it.Pos)})
	}
	for _, n := range i.World.Nodes {
		snap.Nodes = append(snap.Nodes, api.NodeView{ID: n.ID.String(), Kind: n.Kind.String(), Pos: vecOf(n.Pos), HP: n.HP})
	}
	for _, s := range i.World.Stelae {
		snap.Stelae = append(snap.Stelae, api.StelaView{ID: s.ID.String(), Pos: vecOf(s.Pos), Text: s.Text})
	}
	return snap
}

func (i *Instance) playerView() api.PlayerView {
	p := i.Player
	v := p.Vitals()

	inv := make(map[string]int)
	for k, n := range p.Inventory() {
		inv[k.String()] = n
	}
	var equipment []string
	for _, e := range p.Equipment() {
		equipment = append(equipment, e.String())
	}

	return api.PlayerView{
		ID:             p.ID.String(),
		Pos:            vecOf(p.Pos),
		Facing:         p.Facing,
		Health:         v.Health(),
		Stamina:        v.Stamina(),
		Temperature:    v.Temperature(),
		Hunger:         v.Hunger(),
		Greed:          p.Greed(),
		Alert:          p.Alert(),
		Sprinting:      p.Sprinting(),
		Attacking:      p.Attacking(i.Now),
		AttackProgress: p.AttackProgress(i.Now),
		HitFlash:       p.HitFlash(i.Now),
		Weapon:         p.Weapon().String(),
		Inventory:      inv,
		Equipment:      equipment,
		Zone:           i.World.ZoneAt(p.Pos).String(),
	}
}

func vecOf(p domain.Vec3) api.Vec {
	return api.Vec{X: p.X, Y: p.Y, Z: p.Z}
}
