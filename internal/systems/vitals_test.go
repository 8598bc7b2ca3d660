package systems

import (
	"frostwild-server/internal/domain"
	"math"
	"testing"
)

var testRates = DecayRates{Temperature: 0.5, Hunger: 0.3, FreezeDrain: 2, StarveDrain: 1}

func TestColdResistance(t *testing.T) {
	tests := []struct {
		name  string
		items []domain.EquipmentKind
		want  float64
	}{
		{"no gear", nil, 1.0},
		{"coat only", []domain.EquipmentKind{domain.EquipLeatherCoat}, 0.5},
		{"coat and heart", []domain.EquipmentKind{domain.EquipLeatherCoat, domain.EquipFrostHeart}, 0.0},
		{"core does not protect from cold", []domain.EquipmentKind{domain.EquipMoltenCore}, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := domain.NewInventory()
			for _, k := range tt.items {
				inv.Unlock(k)
			}
			if got := ColdResistance(inv, 0.5); got != tt.want {
				t.Errorf("ColdResistance() = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("never negative", func(t *testing.T) {
		inv := domain.NewInventory()
		inv.Unlock(domain.EquipLeatherCoat)
		inv.Unlock(domain.EquipFrostHeart)
		if got := ColdResistance(inv, 0.8); got != 0 {
			t.Errorf("ColdResistance() = %v, want 0", got)
		}
	})
}

func TestDecayVitals_StaysInRange(t *testing.T) {
	for _, dt := range []float64{0, 0.016, 0.1, 1, 10, 1000} {
		v := domain.VitalsOf(100, 50, 0.1, 0.1)
		DecayVitals(&v, testRates, 1, dt)

		for name, val := range map[string]float64{
			"health": v.Health(), "stamina": v.Stamina(),
			"temperature": v.Temperature(), "hunger": v.Hunger(),
		} {
			if val < 0 || val > domain.VitalMax || math.IsNaN(val) {
				t.Errorf("dt=%v: %s=%v out of range", dt, name, val)
			}
		}
	}
}

func TestDecayVitals_ZeroDrains(t *testing.T) {
	t.Run("freezing drains health", func(t *testing.T) {
		v := domain.VitalsOf(50, 100, 0, 100)
		DecayVitals(&v, testRates, 1, 1)
		if v.Health() != 48 {
			t.Errorf("health = %v, want 48", v.Health())
		}
	})

	t.Run("starving drains less", func(t *testing.T) {
		v := domain.VitalsOf(50, 100, 100, 0)
		DecayVitals(&v, testRates, 1, 1)
		if v.Health() != 49 {
			t.Errorf("health = %v, want 49", v.Health())
		}
	})

	t.Run("full resistance keeps warmth", func(t *testing.T) {
		v := domain.VitalsOf(50, 100, 40, 100)
		DecayVitals(&v, testRates, 0, 10)
		if v.Temperature() != 40 {
			t.Errorf("temperature = %v, want 40", v.Temperature())
		}
	})

	t.Run("death reported once", func(t *testing.T) {
		v := domain.VitalsOf(1, 100, 0, 0)
		if !DecayVitals(&v, testRates, 1, 1) {
			t.Fatal("expected death")
		}
		if DecayVitals(&v, testRates, 1, 1) {
			t.Error("dead player cannot die again")
		}
	})
}
