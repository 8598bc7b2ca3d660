package engine

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultTuning_Valid(t *testing.T) {
	if err := DefaultTuning().Validate(); err != nil {
		t.Fatalf("default tuning is invalid: %v", err)
	}
}

func TestLoadTuning_Overlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "tuning.yaml")
	raw := []byte("player:\n  attack_cost: 25\ndirector:\n  rescue_cooldown: 90\n")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatal(err)
	}

	tun, err := LoadTuning(path)
	if err != nil {
		t.Fatalf("LoadTuning: %v", err)
	}
	if tun.Player.AttackCost != 25 || tun.Director.RescueCooldown != 90 {
		t.Errorf("overlay not applied: cost=%v rescue=%v", tun.Player.AttackCost, tun.Director.RescueCooldown)
	}
	if tun.Player.AttackDuration != 0.25 || tun.Elite.Health != 300 {
		t.Error("keys absent from the file must keep defaults")
	}
}

func TestLoadTuning_Errors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		if _, err := LoadTuning(filepath.Join(dir, "nope.yaml")); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("bad friction", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		os.WriteFile(path, []byte("knockback:\n  friction: 1.2\n"), 0o644)
		_, err := LoadTuning(path)
		if !errors.Is(err, ErrInvalidTuning) {
			t.Errorf("expected ErrInvalidTuning, got %v", err)
		}
	})

	t.Run("empty path", func(t *testing.T) {
		tun, err := LoadTuning("")
		if err != nil || tun.Sim.MaxDT != 0.1 {
			t.Errorf("empty path must return defaults: %v", err)
		}
	})
}
