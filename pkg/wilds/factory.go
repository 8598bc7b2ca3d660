package wilds

import "frostwild-server/internal/domain"

// Instantiate превращает раскладку в свежий реестр мира.
// Животные здесь не создаются: ими владеет стадо движка.
func (l Layout) Instantiate() *domain.World {
	w := domain.NewWorld(l.Bound)
	w.Zones = append(w.Zones, l.Zones...)

	for _, r := range l.Rocks {
		w.AddObstacle(domain.NoEntity, r.Pos, r.Radius)
	}
	for _, n := range l.Nodes {
		w.AddNode(n.Kind, n.Pos, n.HP, n.Radius)
	}
	for _, it := range l.Items {
		w.SpawnItem(it.Kind, it.Pos)
	}
	for _, s := range l.Stelae {
		st := w.AddStela(s.Pos, s.Text)
		if s.Radius > 0 {
			w.AddObstacle(st.ID, st.Pos, s.Radius)
		}
	}
	if l.HasAltar {
		w.SetAltar(l.AltarPos, l.AltarRadius)
	}
	return w
}
