package systems

import (
	"frostwild-server/internal/domain"
	"math"
	"testing"
)

func TestIsBlocked(t *testing.T) {
	obstacles := []domain.Obstacle{
		{Pos: domain.Vec3{X: 0, Z: 0}, Radius: 0.8},
		{Pos: domain.Vec3{X: 10, Z: 0}, Radius: 2},
	}

	tests := []struct {
		name string
		pos  domain.Vec3
		want bool
	}{
		{"Inside tree", domain.Vec3{X: 0.5}, true},
		{"Outside edge is free", domain.Vec3{X: 1.31}, false},
		{"Just inside edge", domain.Vec3{X: 1.29}, true},
		{"Big rock", domain.Vec3{X: 8, Z: 1}, true},
		{"Height ignored", domain.Vec3{X: 0.5, Y: 50}, true},
		{"Open field", domain.Vec3{X: 5, Z: 5}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsBlocked(tt.pos, 0.5, obstacles); got != tt.want {
				t.Errorf("IsBlocked(%+v) = %v, want %v", tt.pos, got, tt.want)
			}
		})
	}
}

func TestKnockback_DecaysAndReleases(t *testing.T) {
	attacker := domain.Vec3{X: 0, Z: 0}
	target := domain.Vec3{X: 3, Y: 2, Z: 4}

	vel := KnockbackImpulse(target, attacker, 0.75)
	if vel.Y != 0 {
		t.Fatalf("impulse must be horizontal, got %+v", vel)
	}
	if math.Abs(vel.Length()-0.75) > 1e-9 {
		t.Fatalf("impulse length = %v, want 0.75", vel.Length())
	}
	if vel.X <= 0 || vel.Z <= 0 {
		t.Fatalf("impulse must point away from attacker: %+v", vel)
	}

	pos := target
	prev := vel.Length()
	ticks := 0
	for KnockbackActive(vel, 0.1) {
		pos, vel = IntegrateKnockback(pos, vel, 0.85)
		if vel.Length() >= prev {
			t.Fatalf("tick %d: speed %v did not decrease from %v", ticks, vel.Length(), prev)
		}
		prev = vel.Length()
		ticks++
		if ticks > 100 {
			t.Fatal("knockback never released")
		}
	}
	if vel.Length() > 0.1 {
		t.Errorf("released with speed %v", vel.Length())
	}
	if pos.DistanceTo(attacker) <= target.DistanceTo(attacker) {
		t.Error("target must be pushed away")
	}
}

func TestKnockbackImpulse_Overlap(t *testing.T) {
	p := domain.Vec3{X: 1, Z: 1}
	if v := KnockbackImpulse(p, p, 0.75); v.Length() != 0 {
		t.Errorf("overlapping bodies must get zero impulse, got %+v", v)
	}
}
