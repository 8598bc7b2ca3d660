package systems

import (
	"frostwild-server/internal/domain"
	"math"
	"testing"
)

func TestHitNode(t *testing.T) {
	t.Run("Tree takes three hits", func(t *testing.T) {
		tree := &domain.HarvestNode{Kind: domain.NodeTree, HP: 3}
		if HitNode(tree) || HitNode(tree) {
			t.Fatal("tree destroyed too early")
		}
		if !HitNode(tree) {
			t.Fatal("third hit must destroy the tree")
		}
		if HitNode(tree) {
			t.Error("destroyed tree must not be destroyed again")
		}
		if tree.HP != 0 {
			t.Errorf("HP = %d", tree.HP)
		}
	})

	t.Run("Ore breaks at once", func(t *testing.T) {
		ore := &domain.HarvestNode{Kind: domain.NodeFireOre, HP: 5}
		if !HitNode(ore) {
			t.Error("ore must break on the first hit")
		}
	})
}

func TestApplyDamage(t *testing.T) {
	hp := 100.0
	kills := 0
	for i := 0; i < 5; i++ {
		var killed bool
		hp, killed = ApplyDamage(hp, 40)
		if hp < 0 {
			t.Fatalf("health below zero: %v", hp)
		}
		if killed {
			kills++
		}
	}
	if hp != 0 || kills != 1 {
		t.Errorf("hp=%v kills=%d, want 0 and 1", hp, kills)
	}
}

func TestAttackPoint(t *testing.T) {
	p := AttackPoint(domain.Vec3{X: 1, Y: 3, Z: 1}, math.Pi/2, 2)
	if math.Abs(p.X-3) > 1e-9 || math.Abs(p.Z-1) > 1e-9 || p.Y != 0 {
		t.Errorf("AttackPoint = %+v, want (3, 0, 1)", p)
	}
	if !WithinReach(p, domain.Vec3{X: 6}, 4.5) {
		t.Error("target at 3.16 must be within 4.5")
	}
	if WithinReach(p, domain.Vec3{X: 8}, 4.5) {
		t.Error("target at 5.1 must be out of reach")
	}
}
