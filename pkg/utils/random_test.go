package utils

import (
	"math"
	"math/rand"
	"testing"
)

func TestCompass(t *testing.T) {
	tests := []struct {
		dx, dz float64
		want   string
	}{
		{0, -10, "север"},
		{10, 0, "восток"},
		{0, 10, "юг"},
		{-10, 0, "запад"},
		{10, -10, "северо-восток"},
		{-10, 10, "юго-запад"},
	}
	for _, tt := range tests {
		if got := Compass(tt.dx, tt.dz); got != tt.want {
			t.Errorf("Compass(%v, %v) = %q, want %q", tt.dx, tt.dz, got, tt.want)
		}
	}
}

func TestOffsetAt(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 10; i++ {
		dx, dz := OffsetAt(RandomBearing(rng), 35)
		if d := math.Hypot(dx, dz); math.Abs(d-35) > 1e-9 {
			t.Fatalf("offset length = %v, want 35", d)
		}
	}
}

func TestStringToSeed(t *testing.T) {
	if StringToSeed("wolf") != StringToSeed("wolf") {
		t.Error("seed must be deterministic")
	}
	if StringToSeed("wolf") < 0 {
		t.Error("seed must be non-negative")
	}
}
