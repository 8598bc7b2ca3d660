package handlers

import (
	"encoding/json"
	"frostwild-server/internal/domain"
	"frostwild-server/pkg/api"
)

// Session описывает все, что хендлеру разрешено делать с миром.
// Instance неявно реализует этот интерфейс.
type Session interface {
	ApplyInput(p api.InputPayload)
	Attack() bool
	Interact() bool
	Craft(recipe string) bool
	PlaceCampfire() bool

	SetVitals(health, stamina, temperature, hunger float64)
	SpawnCreature(kind domain.EntityKind, pos domain.Vec3) bool
	Heal() bool
}

// Context передает хендлеру сессию и того, кто прислал команду
type Context struct {
	Session Session
	Token   string
}

// Result - результат выполнения команды.
// Хендлер не пишет в логи сервиса напрямую, он возвращает данные.
type Result struct {
	Accepted bool   // действие принято симуляцией
	Msg      string // текст для лога
	MsgType  string // INFO, COMBAT, ERROR
}

// HandlerFunc - контракт для любой команды (INPUT, ATTACK, CRAFT, ...)
type HandlerFunc func(ctx Context, payload json.RawMessage) (Result, error)

// Rejected - вспомогательная функция для отклоненного действия
func Rejected(msg string) Result {
	return Result{Msg: msg, MsgType: "INFO"}
}
