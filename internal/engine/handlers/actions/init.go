package actions

import "frostwild-server/internal/engine/handlers"

// HandleInit ничего не меняет: клиент просто получит полный снимок со следующим тиком
func HandleInit(ctx handlers.Context) (handlers.Result, error) {
	return handlers.Result{
		Accepted: true,
		Msg:      "Добро пожаловать в Frostwild.",
		MsgType:  "INFO",
	}, nil
}
