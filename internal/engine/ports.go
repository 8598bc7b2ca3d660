package engine

import (
	"frostwild-server/internal/domain"
	"time"
)

// Effects - граница визуальных эффектов. Вызовы fire-and-forget: без ответа и без ошибок.
type Effects interface {
	SpawnBurst(pos domain.Vec3, color string, count int)
	SpawnSlash(pos domain.Vec3, facing float64)
	SpawnAmbient(kind string, pos domain.Vec3)
}

// Audio - граница звука
type Audio interface {
	PlayPickup()
	PlayAttack()
	PlayWarning()
}

// Guidance - граница интерфейса подсказок. Новый текст заменяет старый.
type Guidance interface {
	ShowBanner(text string, d time.Duration)
	ShowTransientHint(text string, d time.Duration)
	ShowLoreText(text string)
}

// Journal - получатель записей телеметрии (вмешательства, исходы сессий)
type Journal interface {
	Write(v any) error
}

// Виды эмбиента
const (
	AmbientSnow  = "snow"
	AmbientEmber = "ember"
)

// Цвета эффектов
const (
	ColorBlood  = "#cc2222"
	ColorWood   = "#8b5a2b"
	ColorIce    = "#88ddff"
	ColorFire   = "#ff5500"
	ColorAmber  = "#ffaa00"
	ColorBerry  = "#ff0044"
	ColorOmen   = "#ffffff"
	ColorFrost  = "#3366ff"
	ColorVictor = "#ffd700"
)

// Noop - пустая реализация всех внешних границ (тесты, headless)
type Noop struct{}

func (Noop) SpawnBurst(domain.Vec3, string, int)     {}
func (Noop) SpawnSlash(domain.Vec3, float64)         {}
func (Noop) SpawnAmbient(string, domain.Vec3)        {}
func (Noop) PlayPickup()                             {}
func (Noop) PlayAttack()                             {}
func (Noop) PlayWarning()                            {}
func (Noop) ShowBanner(string, time.Duration)        {}
func (Noop) ShowTransientHint(string, time.Duration) {}
func (Noop) ShowLoreText(string)                     {}
func (Noop) Write(any) error                         { return nil }

func seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second))
}
