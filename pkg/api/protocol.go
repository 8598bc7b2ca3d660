package api

import (
	"encoding/json"
)

// --- СЕРВЕР -> КЛИЕНТ ---

// Snapshot - корневой объект, который сервер отправляет клиенту (рендеру).
// Это полный снимок мира на конец тика плюс накопленные за тик события эффектов.
type Snapshot struct {
	// Type тип сообщения. На данный момент всегда "UPDATE".
	Type string `json:"type"`

	// Tick номер тика симуляции, Time - симуляционные часы (секунды).
	Tick uint64  `json:"tick"`
	Time float64 `json:"time"`

	// State - PLAYING, DEAD или WON. ResetIn - сколько осталось до перезапуска мира.
	State   string  `json:"state"`
	ResetIn float64 `json:"resetIn,omitempty"`

	Player PlayerView  `json:"player"`
	Actors []ActorView `json:"actors,omitempty"`
	Items  []ItemView  `json:"items,omitempty"`
	Nodes  []NodeView  `json:"nodes,omitempty"`
	Stelae []StelaView `json:"stelae,omitempty"`

	// Events - эффекты и звуки, произошедшие с прошлого снимка (fire-and-forget).
	Events []FeedbackEvent `json:"events,omitempty"`

	HUD HUDView `json:"hud"`
}

// Vec - позиция в мире
type Vec struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// PlayerView - трансформ и показатели игрока
type PlayerView struct {
	ID     string  `json:"id"`
	Pos    Vec     `json:"pos"`
	Facing float64 `json:"facing"`

	Health      float64 `json:"health"`
	Stamina     float64 `json:"stamina"`
	Temperature float64 `json:"temperature"`
	Hunger      float64 `json:"hunger"`
	Greed       float64 `json:"greed"`
	Alert       float64 `json:"alert"`

	Sprinting      bool    `json:"sprinting,omitempty"`
	Attacking      bool    `json:"attacking"`
	AttackProgress float64 `json:"attackProgress,omitempty"`
	HitFlash       bool    `json:"hitFlash,omitempty"`

	Weapon    string         `json:"weapon"`
	Inventory map[string]int `json:"inventory"`
	Equipment []string       `json:"equipment,omitempty"`
	Zone      string         `json:"zone"`
}

// ActorView - враждебный актор или животное
type ActorView struct {
	ID        string  `json:"id"`
	Kind      string  `json:"kind"` // minion, elite, sheep, boar
	Pos       Vec     `json:"pos"`
	Facing    float64 `json:"facing"`
	Health    float64 `json:"health"`
	MaxHealth float64 `json:"maxHealth"`
}

// ItemView - предмет на земле
type ItemView struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
	Pos  Vec    `json:"pos"`
}

// NodeView - дерево или руда
type NodeView struct {
	ID   string `json:"id"`
	Kind string `json:"kind"`
	Pos  Vec    `json:"pos"`
	HP   int    `json:"hp"`
}

// StelaView - стела с текущим текстом
type StelaView struct {
	ID   string `json:"id"`
	Pos  Vec    `json:"pos"`
	Text string `json:"text"`
}

// HUDView - текущие надписи интерфейса (пустые, если истекли)
type HUDView struct {
	Banner string `json:"banner,omitempty"`
	Hint   string `json:"hint,omitempty"`
	Lore   string `json:"lore,omitempty"`
}

// Типы событий обратной связи
const (
	EventBurst   = "BURST"
	EventSlash   = "SLASH"
	EventAmbient = "AMBIENT"
	EventSound   = "SOUND"
)

// FeedbackEvent - одна команда рендеру или аудио
type FeedbackEvent struct {
	Kind   string  `json:"kind"`
	Pos    *Vec    `json:"pos,omitempty"`
	Color  string  `json:"color,omitempty"`
	Count  int     `json:"count,omitempty"`
	Facing float64 `json:"facing,omitempty"`
	Name   string  `json:"name,omitempty"` // вид эмбиента или звука
}

// --- КЛИЕНТ -> СЕРВЕР ---

// ClientCommand - это сообщение от клиента
type ClientCommand struct {
	Action  string          `json:"action"`
	Token   string          `json:"token"`
	Payload json.RawMessage `json:"payload"`
}

// InputPayload - снимок зажатых клавиш на текущий кадр (action INPUT)
type InputPayload struct {
	Forward bool `json:"forward"`
	Back    bool `json:"back"`
	Left    bool `json:"left"`
	Right   bool `json:"right"`
	Sprint  bool `json:"sprint"`
}

// CraftPayload - что скрафтить (action CRAFT)
type CraftPayload struct {
	Recipe string `json:"recipe"`
}

// AdminVitalsPayload - принудительная установка показателей (ADMIN_VITALS)
type AdminVitalsPayload struct {
	Health      float64 `json:"health"`
	Stamina     float64 `json:"stamina"`
	Temperature float64 `json:"temperature"`
	Hunger      float64 `json:"hunger"`
}

// AdminSpawnPayload - выпустить существо в точке (ADMIN_SPAWN)
type AdminSpawnPayload struct {
	Kind string  `json:"kind"`
	X    float64 `json:"x"`
	Z    float64 `json:"z"`
}
