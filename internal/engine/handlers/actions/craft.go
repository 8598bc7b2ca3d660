package actions

import (
	"fmt"
	"frostwild-server/internal/engine/handlers"
	"frostwild-server/pkg/api"
)

func HandleCraft(ctx handlers.Context, p api.CraftPayload) (handlers.Result, error) {
	if !ctx.Session.Craft(p.Recipe) {
		return handlers.Rejected(fmt.Sprintf("Не удалось создать %q.", p.Recipe)), nil
	}
	return handlers.Result{Accepted: true, Msg: fmt.Sprintf("Создано: %s", p.Recipe), MsgType: "INFO"}, nil
}

func HandlePlace(ctx handlers.Context) (handlers.Result, error) {
	if !ctx.Session.PlaceCampfire() {
		return handlers.Rejected("Нечего ставить."), nil
	}
	return handlers.Result{Accepted: true, Msg: "Костер разожжен.", MsgType: "INFO"}, nil
}
