package engine

import (
	"frostwild-server/internal/domain"
	"math/rand"
	"testing"
)

type combatFixture struct {
	world  *domain.World
	actors *ActorRegistry
	herd   *Herd
	combat *CombatResolver
}

func newCombatFixture(t *testing.T, berryChance float64) *combatFixture {
	t.Helper()
	tun := DefaultTuning()
	tun.Combat.BerryChance = berryChance
	w := domain.NewWorld(95)
	drop := func(k domain.ItemKind, p domain.Vec3) { w.SpawnItem(k, p) }
	rng := rand.New(rand.NewSource(1))
	f := &combatFixture{world: w}
	f.actors = NewActorRegistry(&w.IDs, tun, w.Bound, drop)
	f.herd = NewHerd(&w.IDs, rng, tun, drop)
	f.combat = NewCombatResolver(w, f.actors, f.herd, rng, tun.Combat, Noop{})
	return f
}

func TestCombat_TreeYieldsOneWood(t *testing.T) {
	f := newCombatFixture(t, 0)
	treePos := domain.Vec3{Z: 2.5}
	f.world.AddNode(domain.NodeTree, treePos, 3, 0.8)

	// Игрок в начале координат смотрит на +Z (facing 0)
	for i := 1; i <= 2; i++ {
		if kills := f.combat.ResolveMeleeAttack(domain.Vec3{}, 0, float64(i)); kills != 0 {
			t.Fatalf("hit %d: kills = %d, want 0", i, kills)
		}
	}
	if kills := f.combat.ResolveMeleeAttack(domain.Vec3{}, 0, 3); kills != 1 {
		t.Fatalf("third hit kills = %d, want 1", kills)
	}

	if len(f.world.Nodes) != 0 {
		t.Error("tree still in world")
	}
	if len(f.world.Obstacles) != 0 {
		t.Error("tree obstacle still in world")
	}
	if n := f.world.CountItems(domain.ItemWood); n != 1 {
		t.Fatalf("wood items = %d, want 1", n)
	}
	if f.world.Items[0].Pos != treePos {
		t.Errorf("wood at %+v, want %+v", f.world.Items[0].Pos, treePos)
	}
	if f.combat.ResolveMeleeAttack(domain.Vec3{}, 0, 4) != 0 {
		t.Error("attack on empty spot must kill nothing")
	}
}

func TestCombat_TreeBonusBerry(t *testing.T) {
	f := newCombatFixture(t, 1)
	f.world.AddNode(domain.NodeTree, domain.Vec3{Z: 2}, 1, 0.8)

	f.combat.ResolveMeleeAttack(domain.Vec3{}, 0, 1)
	if f.world.CountItems(domain.ItemBerry) != 1 {
		t.Error("guaranteed berry did not drop")
	}
}

func TestCombat_OreBreaksOnFirstHit(t *testing.T) {
	f := newCombatFixture(t, 0)
	f.world.AddNode(domain.NodeIceOre, domain.Vec3{Z: 3}, 1, 2)

	if kills := f.combat.ResolveMeleeAttack(domain.Vec3{}, 0, 1); kills != 1 {
		t.Fatalf("kills = %d, want 1", kills)
	}
	if f.world.CountItems(domain.ItemIceCrystal) != 1 {
		t.Error("ice crystal not spawned")
	}
	if len(f.world.Obstacles) != 0 {
		t.Error("broken ore still blocks movement")
	}
}

func TestCombat_KillCountNotDoubled(t *testing.T) {
	f := newCombatFixture(t, 0)
	a, _ := f.actors.Spawn(domain.KindMinion, domain.Vec3{Z: 2})
	b, _ := f.actors.Spawn(domain.KindMinion, domain.Vec3{Z: 3})
	a.Health, b.Health = 30, 30

	if kills := f.combat.ResolveMeleeAttack(domain.Vec3{}, 0, 1); kills != 2 {
		t.Fatalf("kills = %d, want 2", kills)
	}
	if kills := f.combat.ResolveMeleeAttack(domain.Vec3{}, 0, 2); kills != 0 {
		t.Errorf("dead actors counted again: %d", kills)
	}
}

func TestCombat_AnimalLoot(t *testing.T) {
	f := newCombatFixture(t, 0)
	boar, _ := f.herd.Spawn(domain.KindBoar, domain.Vec3{Z: 2})
	boar.Health = 10

	if kills := f.combat.ResolveMeleeAttack(domain.Vec3{}, 0, 1); kills != 1 {
		t.Fatalf("kills = %d, want 1", kills)
	}
	if f.world.CountItems(domain.ItemMeat) != 1 || f.world.CountItems(domain.ItemFur) != 2 {
		t.Errorf("boar loot: meat=%d fur=%d", f.world.CountItems(domain.ItemMeat), f.world.CountItems(domain.ItemFur))
	}
}
