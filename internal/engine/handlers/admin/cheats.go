package admin

import (
	"fmt"
	"frostwild-server/internal/domain"
	"frostwild-server/internal/engine/handlers"
	"frostwild-server/pkg/api"
)

// HandleVitals: { "health": 100, "stamina": 100, "temperature": 10, "hunger": 50 }
func HandleVitals(ctx handlers.Context, p api.AdminVitalsPayload) (handlers.Result, error) {
	ctx.Session.SetVitals(p.Health, p.Stamina, p.Temperature, p.Hunger)
	return handlers.Result{
		Accepted: true,
		Msg:      fmt.Sprintf("Vitals set: hp=%.0f st=%.0f temp=%.0f food=%.0f", p.Health, p.Stamina, p.Temperature, p.Hunger),
		MsgType:  "INFO",
	}, nil
}

// HandleSpawn: { "kind": "elite", "x": 10, "z": -4 }
func HandleSpawn(ctx handlers.Context, p api.AdminSpawnPayload) (handlers.Result, error) {
	kind := domain.ParseEntityKind(p.Kind)
	if !ctx.Session.SpawnCreature(kind, domain.Vec3{X: p.X, Z: p.Z}) {
		return handlers.Result{Msg: fmt.Sprintf("Unknown creature %q", p.Kind), MsgType: "ERROR"}, nil
	}
	return handlers.Result{Accepted: true, Msg: fmt.Sprintf("Spawned %s", kind), MsgType: "INFO"}, nil
}

func HandleHeal(ctx handlers.Context) (handlers.Result, error) {
	if !ctx.Session.Heal() {
		return handlers.Result{Msg: "Nobody to heal", MsgType: "ERROR"}, nil
	}
	return handlers.Result{Accepted: true, Msg: "Fully healed", MsgType: "INFO"}, nil
}
