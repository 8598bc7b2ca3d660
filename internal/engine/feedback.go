package engine

import (
	"frostwild-server/internal/domain"
	"frostwild-server/pkg/api"
	"time"
)

// maxQueuedEvents - если снимки никто не забирает, старые события отбрасываются
const maxQueuedEvents = 256

// FeedbackQueue реализует Effects и Audio: складывает события до следующего снимка
type FeedbackQueue struct {
	events []api.FeedbackEvent
}

func NewFeedbackQueue() *FeedbackQueue {
	return &FeedbackQueue{events: make([]api.FeedbackEvent, 0, 32)}
}

func (q *FeedbackQueue) push(e api.FeedbackEvent) {
	if len(q.events) >= maxQueuedEvents {
		q.events = q.events[1:]
	}
	q.events = append(q.events, e)
}

func toVec(p domain.Vec3) *api.Vec {
	v := vecOf(p)
	return &v
}

func (q *FeedbackQueue) SpawnBurst(pos domain.Vec3, color string, count int) {
	q.push(api.FeedbackEvent{Kind: api.EventBurst, Pos: toVec(pos), Color: color, Count: count})
}

func (q *FeedbackQueue) SpawnSlash(pos domain.Vec3, facing float64) {
	q.push(api.FeedbackEvent{Kind: api.EventSlash, Pos: toVec(pos), Facing: facing})
}

func (q *FeedbackQueue) SpawnAmbient(kind string, pos domain.Vec3) {
	q.push(api.FeedbackEvent{Kind: api.EventAmbient, Pos: toVec(pos), Name: kind})
}

func (q *FeedbackQueue) PlayPickup()  { q.push(api.FeedbackEvent{Kind: api.EventSound, Name: "pickup"}) }
func (q *FeedbackQueue) PlayAttack()  { q.push(api.FeedbackEvent{Kind: api.EventSound, Name: "attack"}) }
func (q *FeedbackQueue) PlayWarning() { q.push(api.FeedbackEvent{Kind: api.EventSound, Name: "warning"}) }

// Drain отдает накопленные события и очищает очередь
func (q *FeedbackQueue) Drain() []api.FeedbackEvent {
	if len(q.events) == 0 {
		return nil
	}
	out := q.events
	q.events = make([]api.FeedbackEvent, 0, 32)
	return out
}

// HUD реализует Guidance. Каждая надпись хранит абсолютное время истечения
// по часам симуляции и опрашивается при сборке снимка.
type HUD struct {
	clock func() float64
	lore  float64 // сколько секунд держится текст стелы

	banner      string
	bannerUntil float64
	hint        string
	hintUntil   float64
	loreText    string
	loreUntil   float64
}

func NewHUD(clock func() float64, loreSeconds float64) *HUD {
	return &HUD{clock: clock, lore: loreSeconds}
}

func (h *HUD) ShowBanner(text string, d time.Duration) {
	h.banner = text
	h.bannerUntil = h.clock() + d.Seconds()
}

func (h *HUD) ShowTransientHint(text string, d time.Duration) {
	h.hint = text
	h.hintUntil = h.clock() + d.Seconds()
}

func (h *HUD) ShowLoreText(text string) {
	h.loreText = text
	h.loreUntil = h.clock() + h.lore
}

// View возвращает только неистекшие надписи
func (h *HUD) View(now float64) api.HUDView {
	var v api.HUDView
	if now < h.bannerUntil {
		v.Banner = h.banner
	}
	if now < h.hintUntil {
		v.Hint = h.hint
	}
	if now < h.loreUntil {
		v.Lore = h.loreText
	}
	return v
}

// Clear снимает все надписи (перезапуск мира)
func (h *HUD) Clear() {
	*h = HUD{clock: h.clock, lore: h.lore}
}
