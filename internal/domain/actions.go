package domain

import "strings"

// ActionType - Внутренний числовой идентификатор дискретного действия игрока
type ActionType uint8

const (
	ActionUnknown ActionType = iota
	ActionInit
	ActionInput
	ActionAttack
	ActionInteract
	ActionCraft
	ActionPlace

	// Отладка баланса
	ActionAdminVitals
	ActionAdminSpawn
	ActionAdminHeal
)

// Маппинг для конвертации JSON -> Domain
var actionStringToCmd = map[string]ActionType{
	"INIT":     ActionInit,
	"INPUT":    ActionInput,
	"ATTACK":   ActionAttack,
	"INTERACT": ActionInteract,
	"CRAFT":    ActionCraft,
	"PLACE":    ActionPlace,

	"ADMIN_VITALS": ActionAdminVitals,
	"ADMIN_SPAWN":  ActionAdminSpawn,
	"ADMIN_HEAL":   ActionAdminHeal,
}

// Маппинг для логов Domain -> String
var actionCmdToString = map[ActionType]string{
	ActionInit:     "INIT",
	ActionInput:    "INPUT",
	ActionAttack:   "ATTACK",
	ActionInteract: "INTERACT",
	ActionCraft:    "CRAFT",
	ActionPlace:    "PLACE",

	ActionAdminVitals: "ADMIN_VITALS",
	ActionAdminSpawn:  "ADMIN_SPAWN",
	ActionAdminHeal:   "ADMIN_HEAL",
}

// ParseAction конвертирует строку из JSON в ActionType
func ParseAction(s string) ActionType {
	// Делаем нечувствительным к регистру для надежности
	upper := strings.ToUpper(s)
	if val, ok := actionStringToCmd[upper]; ok {
		return val
	}
	return ActionUnknown
}

// IsAdmin - отладочные команды, доступные только при включенном режиме отладки
func (a ActionType) IsAdmin() bool {
	return a >= ActionAdminVitals && a <= ActionAdminHeal
}

// String реализует интерфейс Stringer (для fmt.Printf)
func (a ActionType) String() string {
	if val, ok := actionCmdToString[a]; ok {
		return val
	}
	return "UNKNOWN"
}
