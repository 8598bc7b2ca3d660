package wilds

import (
	"frostwild-server/internal/domain"
	"math"
	"math/rand"
	"testing"
)

func TestStandard_Deterministic(t *testing.T) {
	a := Standard(rand.New(rand.NewSource(42)), DefaultOptions())
	b := Standard(rand.New(rand.NewSource(42)), DefaultOptions())

	if len(a.Nodes) != len(b.Nodes) {
		t.Fatalf("node counts differ: %d vs %d", len(a.Nodes), len(b.Nodes))
	}
	for i := range a.Nodes {
		if a.Nodes[i] != b.Nodes[i] {
			t.Fatalf("node %d differs: %+v vs %+v", i, a.Nodes[i], b.Nodes[i])
		}
	}
}

func TestStandard_Placement(t *testing.T) {
	opt := DefaultOptions()
	l := Standard(rand.New(rand.NewSource(1)), opt)

	trees, ice, fire := 0, 0, 0
	for _, n := range l.Nodes {
		switch n.Kind {
		case domain.NodeTree:
			trees++
			if math.Abs(n.Pos.X) < opt.Clearing && math.Abs(n.Pos.Z) < opt.Clearing {
				t.Errorf("tree inside the clearing: %+v", n.Pos)
			}
			if n.HP != 3 {
				t.Errorf("tree hp = %d", n.HP)
			}
		case domain.NodeIceOre:
			ice++
			if n.Pos.X < 45 || n.Pos.X > 85 || n.Pos.Z < -85 || n.Pos.Z > -45 {
				t.Errorf("ice ore out of the frost lands: %+v", n.Pos)
			}
		case domain.NodeFireOre:
			fire++
		}
	}
	if trees != opt.Trees || ice != opt.IceOres || fire != opt.FireOres {
		t.Errorf("trees=%d ice=%d fire=%d", trees, ice, fire)
	}
	if len(l.Stelae) != 4 || !l.HasAltar {
		t.Errorf("stelae=%d altar=%v", len(l.Stelae), l.HasAltar)
	}
	if len(l.Animals) != opt.Sheep+opt.Boars {
		t.Errorf("animals = %d", len(l.Animals))
	}
}

func TestLayout_Instantiate(t *testing.T) {
	l := Standard(rand.New(rand.NewSource(3)), DefaultOptions())
	w := l.Instantiate()

	if len(w.Nodes) != len(l.Nodes) || len(w.Items) != 1 || len(w.Stelae) != 4 {
		t.Fatalf("nodes=%d items=%d stelae=%d", len(w.Nodes), len(w.Items), len(w.Stelae))
	}
	if w.Altar == nil {
		t.Fatal("altar missing")
	}
	if w.ZoneAt(domain.Vec3{X: 60, Z: -60}) != domain.ZoneCold {
		t.Error("frost stela must stand in the cold zone")
	}
	if w.ZoneAt(MoltenCorePos) != domain.ZoneHeat {
		t.Error("molten core must be placed in the heat zone")
	}

	// Каждый вызов дает независимый мир
	w.Nodes[0].HP = 0
	if l.Instantiate().Nodes[0].HP == 0 {
		t.Error("instantiate must not share state between worlds")
	}
}

func TestLayout_InstantiateObstacles(t *testing.T) {
	l := Standard(rand.New(rand.NewSource(1)), DefaultOptions())
	w := l.Instantiate()

	owners := map[domain.EntityID]float64{}
	for _, o := range w.Obstacles {
		owners[o.Owner] = o.Radius
	}
	for _, n := range w.Nodes {
		if r, ok := owners[n.ID]; !ok || r != n.Radius {
			t.Errorf("%v %v has no collision body (radius %v)", n.Kind, n.ID, r)
		}
	}
	for _, s := range w.Stelae {
		if r, ok := owners[s.ID]; !ok || r != StelaRadius {
			t.Errorf("stela %v has no collision body", s.ID)
		}
	}
}
