package domain

import "math"

// Obstacle - статичное тело коллизии. Owner указывает на узел, если тело ему принадлежит.
type Obstacle struct {
	Owner  EntityID
	Pos    Vec3
	Radius float64
}

// HarvestNode - дерево или руда
type HarvestNode struct {
	ID     EntityID
	Kind   NodeKind
	Pos    Vec3
	HP     int
	Radius float64
}

// Item - предмет, лежащий в мире
type Item struct {
	ID   EntityID
	Kind ItemKind
	Pos  Vec3
}

// Stela - камень с подсказкой. Текст переписывает Director.
type Stela struct {
	ID   EntityID
	Pos  Vec3
	Text string
}

// Altar - точка победы
type Altar struct {
	ID     EntityID
	Pos    Vec3
	Radius float64
}

// ZoneRect - прямоугольная климатическая зона (границы строгие)
type ZoneRect struct {
	Zone                   Zone
	MinX, MaxX, MinZ, MaxZ float64
}

func (r ZoneRect) Contains(p Vec3) bool {
	return p.X > r.MinX && p.X < r.MaxX && p.Z > r.MinZ && p.Z < r.MaxZ
}

// World - реестр игровых объектов сессии. Роль объекта определяется таблицей,
// в которой он лежит, и видом в его EntityID, а не флагами на узлах сцены.
type World struct {
	IDs   IDAllocator
	Bound float64

	Obstacles []Obstacle
	Nodes     []*HarvestNode
	Items     []*Item
	Stelae    []*Stela
	Altar     *Altar
	Zones     []ZoneRect
}

// NewWorld создает пустой мир с квадратной границей [-bound, bound]
func NewWorld(bound float64) *World {
	return &World{Bound: bound}
}

// AddObstacle регистрирует статичное тело коллизии
func (w *World) AddObstacle(owner EntityID, pos Vec3, radius float64) {
	w.Obstacles = append(w.Obstacles, Obstacle{Owner: owner, Pos: pos.Flat(), Radius: radius})
}

// AddNode регистрирует добываемый узел вместе с его телом коллизии
func (w *World) AddNode(kind NodeKind, pos Vec3, hp int, radius float64) *HarvestNode {
	entityKind := KindTree
	if kind.IsOre() {
		entityKind = KindOre
	}
	node := &HarvestNode{
		ID:     w.IDs.Next(entityKind),
		Kind:   kind,
		Pos:    pos.Flat(),
		HP:     hp,
		Radius: radius,
	}
	w.Nodes = append(w.Nodes, node)
	w.AddObstacle(node.ID, node.Pos, radius)
	return node
}

// RemoveNode удаляет узел и все принадлежащие ему тела коллизии
func (w *World) RemoveNode(id EntityID) bool {
	idx := -1
	for i, n := range w.Nodes {
		if n.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}
	w.Nodes = append(w.Nodes[:idx], w.Nodes[idx+1:]...)

	kept := w.Obstacles[:0]
	for _, o := range w.Obstacles {
		if o.Owner != id {
			kept = append(kept, o)
		}
	}
	w.Obstacles = kept
	return true
}

// Node ищет узел по ID
func (w *World) Node(id EntityID) *HarvestNode {
	for _, n := range w.Nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// SpawnItem кладет предмет в мир
func (w *World) SpawnItem(kind ItemKind, pos Vec3) *Item {
	item := &Item{ID: w.IDs.Next(KindItem), Kind: kind, Pos: pos.Flat()}
	w.Items = append(w.Items, item)
	return item
}

// RemoveItem удаляет предмет (подобран или уничтожен)
func (w *World) RemoveItem(id EntityID) bool {
	for i, it := range w.Items {
		if it.ID == id {
			w.Items = append(w.Items[:i], w.Items[i+1:]...)
			return true
		}
	}
	return false
}

// Item ищет предмет по ID
func (w *World) Item(id EntityID) *Item {
	for _, it := range w.Items {
		if it.ID == id {
			return it
		}
	}
	return nil
}

// CountItems считает предметы вида kind, лежащие в мире
func (w *World) CountItems(kind ItemKind) int {
	n := 0
	for _, it := range w.Items {
		if it.Kind == kind {
			n++
		}
	}
	return n
}

// NearestItem возвращает ближайший предмет в радиусе, удовлетворяющий фильтру (nil = любой)
func (w *World) NearestItem(pos Vec3, radius float64, filter func(*Item) bool) *Item {
	var best *Item
	bestDist := math.Inf(1)
	for _, it := range w.Items {
		if filter != nil && !filter(it) {
			continue
		}
		d := pos.DistanceTo(it.Pos)
		if d < radius && d < bestDist {
			best = it
			bestDist = d
		}
	}
	return best
}

// AddStela ставит стелу
func (w *World) AddStela(pos Vec3, text string) *Stela {
	s := &Stela{ID: w.IDs.Next(KindStela), Pos: pos.Flat(), Text: text}
	w.Stelae = append(w.Stelae, s)
	return s
}

// NearestStela возвращает ближайшую к pos стелу (без ограничения радиуса)
func (w *World) NearestStela(pos Vec3) *Stela {
	var best *Stela
	bestDist := math.Inf(1)
	for _, s := range w.Stelae {
		if d := pos.DistanceTo(s.Pos); d < bestDist {
			best = s
			bestDist = d
		}
	}
	return best
}

// SetAltar ставит алтарь. Алтарь не блокирует движение: игрок появляется прямо на нем.
func (w *World) SetAltar(pos Vec3, radius float64) *Altar {
	w.Altar = &Altar{ID: w.IDs.Next(KindAltar), Pos: pos.Flat(), Radius: radius}
	return w.Altar
}

// ZoneAt возвращает климатическую зону точки
func (w *World) ZoneAt(pos Vec3) Zone {
	for _, z := range w.Zones {
		if z.Contains(pos) {
			return z.Zone
		}
	}
	return ZoneNone
}
