package engine

import (
	"frostwild-server/internal/domain"
	"testing"
)

func newTestPlayer(t *testing.T) *PlayerController {
	t.Helper()
	tun := DefaultTuning()
	id := domain.PackEntityID(domain.KindPlayer, 1)
	return NewPlayerController(id, domain.Vec3{}, 95, tun, Noop{})
}

func TestPlayer_AttackCostsStamina(t *testing.T) {
	p := newTestPlayer(t)

	if p.Attack(0) {
		t.Fatal("attack without a sword must be rejected")
	}
	p.Pickup(domain.ItemHeavySword, 0)

	if !p.Attack(0) {
		t.Fatal("first attack rejected")
	}
	if got := p.Vitals().Stamina(); got != 80 {
		t.Errorf("stamina after attack = %v, want 80", got)
	}
	if p.Attack(0.1) {
		t.Error("attack during swing must be rejected")
	}
	if !p.Attacking(0.2) || p.Attacking(0.25) {
		t.Error("swing must last exactly attack duration")
	}
	if !p.Attack(0.3) {
		t.Error("attack after swing rejected")
	}
	if got := p.Vitals().Stamina(); got != 60 {
		t.Errorf("stamina after two attacks = %v, want 60", got)
	}
}

func TestPlayer_AttackNeedsStamina(t *testing.T) {
	p := newTestPlayer(t)
	p.Pickup(domain.ItemHeavySword, 0)
	p.SetVitals(domain.VitalsOf(100, 15, 100, 100))

	if p.Attack(0) {
		t.Fatal("attack with 15 stamina must be rejected")
	}
	if got := p.Vitals().Stamina(); got != 15 {
		t.Errorf("rejected attack changed stamina to %v", got)
	}
}

func TestPlayer_MovementBlocked(t *testing.T) {
	p := newTestPlayer(t)
	obstacles := []domain.Obstacle{{Pos: domain.Vec3{Z: -2}, Radius: 0.8}}

	p.Update(InputState{Forward: true}, 0.1, 0.1, obstacles)
	if p.Pos != (domain.Vec3{}) {
		t.Errorf("blocked move changed position to %+v", p.Pos)
	}

	p.Update(InputState{Back: true}, 0.1, 0.2, obstacles)
	if p.Pos.Z <= 0 {
		t.Errorf("free move did not advance: %+v", p.Pos)
	}
}

func TestPlayer_HeavySwordSlows(t *testing.T) {
	free := newTestPlayer(t)
	armed := newTestPlayer(t)
	armed.Pickup(domain.ItemHeavySword, 0)

	free.Update(InputState{Right: true}, 0.1, 0.1, nil)
	armed.Update(InputState{Right: true}, 0.1, 0.1, nil)

	if armed.Pos.X >= free.Pos.X {
		t.Errorf("armed player moved %v, free %v", armed.Pos.X, free.Pos.X)
	}
}

func TestPlayer_VitalsStayInRange(t *testing.T) {
	p := newTestPlayer(t)
	for i := 0; i < 5000; i++ {
		p.Update(InputState{Forward: i%2 == 0, Sprint: true}, 0.1, float64(i)*0.1, nil)
		p.Eat(50)
		p.Warm(30)
		v := p.Vitals()
		for _, x := range []float64{v.Health(), v.Stamina(), v.Temperature(), v.Hunger()} {
			if x < 0 || x > domain.VitalMax {
				t.Fatalf("step %d: vital out of range: %+v", i, v)
			}
		}
	}
}

func TestPlayer_CraftCampfire(t *testing.T) {
	p := newTestPlayer(t)
	for i := 0; i < 3; i++ {
		p.Pickup(domain.ItemWood, 0)
	}

	if !p.Craft(domain.RecipeCampfire, 1) {
		t.Fatal("campfire craft rejected with 3 wood")
	}
	if p.Count(domain.ResourceWood) != 0 || p.Count(domain.ResourceCampfire) != 1 {
		t.Errorf("inventory after craft: %v", p.Inventory())
	}
	if p.Craft(domain.RecipeCampfire, 2) {
		t.Error("second craft must be rejected")
	}
	if p.LastActionAt() != 1 {
		t.Errorf("craft must mark action, got %v", p.LastActionAt())
	}
}

func TestPlayer_Pickup(t *testing.T) {
	p := newTestPlayer(t)

	if p.Pickup(domain.ItemHeatSource, 0) {
		t.Error("heat source is not pickable")
	}
	if !p.Pickup(domain.ItemFrostHeart, 0) || !p.Owns(domain.EquipFrostHeart) {
		t.Error("frost heart not unlocked")
	}
	if p.Resistance() != 0.5 {
		t.Errorf("resistance with heart = %v, want 0.5", p.Resistance())
	}
	p.Pickup(domain.ItemFrostHeart, 0)
	if p.Resistance() != 0.5 {
		t.Error("repeated pickup must not stack resistance")
	}

	p.Pickup(domain.ItemMoltenCore, 0)
	if !p.HeatImmune() {
		t.Error("molten core must grant heat immunity")
	}
}

func TestPlayer_Greed(t *testing.T) {
	p := newTestPlayer(t)
	p.Pickup(domain.ItemHeavySword, 0)
	p.Pickup(domain.ItemWood, 0)
	if p.Greed() != 25 {
		t.Errorf("greed = %v, want 25", p.Greed())
	}
	p.ResetPressure()
	if p.Greed() != 0 || p.Alert() != 0 {
		t.Error("pressure not reset")
	}
}
