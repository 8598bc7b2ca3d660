package actions

import (
	"frostwild-server/internal/engine/handlers"
	"frostwild-server/pkg/api"
)

// HandleInput заменяет снимок зажатых клавиш. Последний снимок действует, пока не придет новый.
func HandleInput(ctx handlers.Context, p api.InputPayload) (handlers.Result, error) {
	ctx.Session.ApplyInput(p)
	return handlers.Result{Accepted: true}, nil
}
