package actions

import "frostwild-server/internal/engine/handlers"

func HandleAttack(ctx handlers.Context) (handlers.Result, error) {
	if !ctx.Session.Attack() {
		return handlers.Rejected("Удар не удался."), nil
	}
	return handlers.Result{Accepted: true, MsgType: "COMBAT"}, nil
}
