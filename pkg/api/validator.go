package api

import (
	"errors"
	"fmt"
	"math"
)

// Validator - интерфейс, который могут реализовать DTO
type Validator interface {
	Validate() error
}

func (p CraftPayload) Validate() error {
	if p.Recipe == "" {
		return errors.New("recipe is required")
	}
	if len(p.Recipe) > 64 {
		return errors.New("recipe name too long")
	}
	return nil
}

func (c ClientCommand) Validate() error {
	if c.Action == "" {
		return errors.New("action is required")
	}
	return nil
}

func (p AdminVitalsPayload) Validate() error {
	for name, v := range map[string]float64{
		"health":      p.Health,
		"stamina":     p.Stamina,
		"temperature": p.Temperature,
		"hunger":      p.Hunger,
	} {
		if math.IsNaN(v) || v < 0 || v > 100 {
			return fmt.Errorf("%s must be in [0, 100], got %v", name, v)
		}
	}
	return nil
}

func (p AdminSpawnPayload) Validate() error {
	if p.Kind == "" {
		return errors.New("kind is required")
	}
	if math.IsNaN(p.X) || math.IsNaN(p.Z) {
		return errors.New("position must be a number")
	}
	return nil
}
