package actions

import "frostwild-server/internal/engine/handlers"

// HandleInteract - подобрать, разжечь алтарь или прочитать стелу. Рядом пусто = no-op.
func HandleInteract(ctx handlers.Context) (handlers.Result, error) {
	if !ctx.Session.Interact() {
		return handlers.Result{}, nil
	}
	return handlers.Result{Accepted: true, MsgType: "INFO"}, nil
}
