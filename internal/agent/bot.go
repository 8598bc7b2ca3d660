package agent

import (
	"context"
	"encoding/json"
	"frostwild-server/internal/engine"
	"frostwild-server/pkg/api"
	"frostwild-server/pkg/logger"
	"math"

	"github.com/sirupsen/logrus"
)

// Пороги автопилота
const (
	coldThreshold   = 35.0
	hungerThreshold = 40.0
	threatRadius    = 6.0
	pickupRadius    = 1.5
	meleeRadius     = 2.5
	axisDeadband    = 0.35
)

// Bot - headless-игрок. Он подключается к движку так же, как рендер:
// подписывается на снимки в хабе и отвечает командами через ProcessCommand.
//
// Жизненный цикл:
//  1. NewBot -> регистрация в хабе, личный канал снимков (Inbox).
//  2. Run -> читает Inbox, пока жив ctx.
//  3. Decide -> по снимку выбирает клавиши и дискретные действия.
type Bot struct {
	Token   string
	Service *engine.GameService
	Inbox   <-chan api.Snapshot

	keys   api.InputPayload
	issued uint64
	log    *logrus.Entry
}

func NewBot(token string, service *engine.GameService) *Bot {
	return &Bot{
		Token:   token,
		Service: service,
		Inbox:   service.Hub.Register(token),
		log:     logger.For("agent").WithField("token", token),
	}
}

// Run крутит бота до отмены ctx или закрытия канала
func (b *Bot) Run(ctx context.Context) {
	defer b.Service.Hub.Release(b.Token, b.Inbox)
	b.log.Info("Autopilot started")

	for {
		select {
		case <-ctx.Done():
			b.log.WithField("commands", b.issued).Info("Autopilot stopped")
			return
		case snap, ok := <-b.Inbox:
			if !ok {
				return
			}
			b.handle(snap)
		}
	}
}

func (b *Bot) handle(snap api.Snapshot) {
	for _, cmd := range b.Decide(snap) {
		cmd.Token = b.Token
		if err := b.Service.ProcessCommand(cmd); err != nil {
			b.log.WithError(err).WithField("action", cmd.Action).Debug("Command rejected")
			continue
		}
		b.issued++
	}
}

// Decide - мозг бота. Возвращает команды на этот снимок. INPUT отправляется только при смене клавиш.
func (b *Bot) Decide(s api.Snapshot) []api.ClientCommand {
	var out []api.ClientCommand
	keys := api.InputPayload{}

	if s.State == "PLAYING" {
		p := s.Player
		action, target, hasTarget := b.plan(s)
		switch {
		case action != "":
			out = append(out, api.ClientCommand{Action: action})
			if action == "CRAFT" {
				out[len(out)-1].Payload = mustJSON(api.CraftPayload{Recipe: "campfire"})
			}
		case hasTarget:
			keys = steer(p.Pos, target)
			if p.Stamina > 70 && distance(p.Pos, target) > 10 {
				keys.Sprint = true
			}
		}
	}

	if keys != b.keys {
		b.keys = keys
		out = append([]api.ClientCommand{{Action: "INPUT", Payload: mustJSON(keys)}}, out...)
	}
	return out
}

// plan выбирает либо дискретное действие, либо точку, к которой идти
func (b *Bot) plan(s api.Snapshot) (action string, target api.Vec, ok bool) {
	p := s.Player
	inv := p.Inventory

	// 1. Согреться: поставить костер или собрать его
	if p.Temperature < coldThreshold {
		if inv["campfire"] > 0 {
			return "PLACE", api.Vec{}, false
		}
		if inv["wood"] >= 3 {
			return "CRAFT", api.Vec{}, false
		}
		if heat, found := nearestItem(s, p.Pos, "HEAT_SOURCE"); found && distance(p.Pos, heat) > 1 {
			return "", heat, true
		}
	}

	// 2. Угрозы рядом: развернуться и бить
	if p.Weapon != "none" {
		for _, a := range s.Actors {
			if a.Kind != "minion" && a.Kind != "elite" {
				continue
			}
			if d := distance(p.Pos, a.Pos); d < threatRadius {
				if d < meleeRadius && !p.Attacking {
					return "ATTACK", api.Vec{}, false
				}
				return "", a.Pos, true
			}
		}
	}

	// 3. Еда
	if p.Hunger < hungerThreshold {
		if food, found := nearestItem(s, p.Pos, "BERRY", "MEAT"); found {
			return b.approachItem(p.Pos, food)
		}
	}

	// 4. Меч, затем любые ресурсы на земле
	if sword, found := nearestItem(s, p.Pos, "HEAVY_SWORD"); found && p.Weapon == "none" {
		return b.approachItem(p.Pos, sword)
	}
	if item, found := nearestItem(s, p.Pos, "WOOD", "FUR", "ICE_CRYSTAL", "FIRE_ORE", "FROST_HEART", "MOLTEN_CORE"); found {
		return b.approachItem(p.Pos, item)
	}

	// 5. Рубить ближайшее дерево
	if p.Weapon != "none" {
		if tree, found := nearestNode(s, p.Pos, "tree"); found {
			if distance(p.Pos, tree) < meleeRadius+1 {
				if !p.Attacking && p.Stamina > 30 {
					return "ATTACK", api.Vec{}, false
				}
				return "", api.Vec{}, false
			}
			return "", tree, true
		}
	}
	return "", api.Vec{}, false
}

func (b *Bot) approachItem(from, item api.Vec) (string, api.Vec, bool) {
	if distance(from, item) < pickupRadius {
		return "INTERACT", api.Vec{}, false
	}
	return "", item, true
}

// steer переводит направление на цель в зажатые клавиши (вперед = -Z)
func steer(from, to api.Vec) api.InputPayload {
	dx, dz := to.X-from.X, to.Z-from.Z
	d := math.Hypot(dx, dz)
	if d == 0 {
		return api.InputPayload{}
	}
	dx, dz = dx/d, dz/d
	return api.InputPayload{
		Forward: dz < -axisDeadband,
		Back:    dz > axisDeadband,
		Left:    dx < -axisDeadband,
		Right:   dx > axisDeadband,
	}
}

func nearestItem(s api.Snapshot, from api.Vec, kinds ...string) (api.Vec, bool) {
	best, found := api.Vec{}, false
	bestD := math.Inf(1)
	for _, it := range s.Items {
		for _, k := range kinds {
			if it.Kind != k {
				continue
			}
			if d := distance(from, it.Pos); d < bestD {
				best, bestD, found = it.Pos, d, true
			}
		}
	}
	return best, found
}

func nearestNode(s api.Snapshot, from api.Vec, kind string) (api.Vec, bool) {
	best, found := api.Vec{}, false
	bestD := math.Inf(1)
	for _, n := range s.Nodes {
		if n.Kind != kind {
			continue
		}
		if d := distance(from, n.Pos); d < bestD {
			best, bestD, found = n.Pos, d, true
		}
	}
	return best, found
}

func distance(a, b api.Vec) float64 { return math.Hypot(a.X-b.X, a.Z-b.Z) }

func mustJSON(v any) json.RawMessage {
	raw, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return raw
}
