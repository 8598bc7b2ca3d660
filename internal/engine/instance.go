package engine

import (
	"frostwild-server/internal/domain"
	"frostwild-server/pkg/api"
	"frostwild-server/pkg/logger"
	"frostwild-server/pkg/utils"
	"frostwild-server/pkg/wilds"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// SessionState - фаза сессии мира
type SessionState uint8

const (
	StatePlaying SessionState = iota
	StateDead
	StateWon
)

func (s SessionState) String() string {
	switch s {
	case StateDead:
		return "DEAD"
	case StateWon:
		return "WON"
	}
	return "PLAYING"
}

// SessionRecord - итог сессии для журнала телеметрии
type SessionRecord struct {
	Type    string  `json:"type"`
	Time    float64 `json:"t"`
	Session int     `json:"session"`
	Outcome string  `json:"outcome"`
	Tick    uint64  `json:"tick"`
}

// Instance - однопоточные часы и цикл мира. Владеет всеми компонентами сессии
// и пересоздает их целиком при перезапуске.
type Instance struct {
	Seed    int64
	Session int // номер сессии с момента запуска (1, 2, ...)

	Tick    uint64
	Now     float64 // симуляционные часы, монотонные в пределах процесса
	State   SessionState
	ResetAt float64

	Layout   wilds.Layout
	World    *domain.World
	Player   *PlayerController
	Actors   *ActorRegistry
	Herd     *Herd
	Combat   *CombatResolver
	Director *Director

	Feedback *FeedbackQueue
	HUD      *HUD
	journal  Journal

	input         InputState
	rng           *rand.Rand
	tun           Tuning
	lastZone      domain.Zone
	nextAmbientAt float64
	nearAltar     bool
	logger        *logrus.Entry
}

func NewInstance(layout wilds.Layout, seed int64, tun Tuning, journal Journal) *Instance {
	if journal == nil {
		journal = Noop{}
	}
	i := &Instance{
		Seed:     seed,
		Layout:   layout,
		Feedback: NewFeedbackQueue(),
		journal:  journal,
		tun:      tun,
		logger:   logger.Log.WithFields(logrus.Fields{"component": "instance", "seed": seed}),
	}
	i.HUD = NewHUD(func() float64 { return i.Now }, tun.Session.LoreSeconds)
	i.reset()
	return i
}

// Tuning возвращает действующий баланс
func (i *Instance) Tuning() Tuning { return i.tun }

// reset собирает новую сессию из статичной раскладки. Память директора не переживает сброс.
func (i *Instance) reset() {
	i.Session++
	i.rng = rand.New(rand.NewSource(i.Seed + int64(i.Session)))

	i.World = i.Layout.Instantiate()
	playerID := i.World.IDs.Next(domain.KindPlayer)
	i.Player = NewPlayerController(playerID, i.Layout.PlayerStart, i.World.Bound, i.tun, i.Feedback)

	drop := func(kind domain.ItemKind, pos domain.Vec3) { i.SpawnItem(kind, pos) }
	i.Actors = NewActorRegistry(&i.World.IDs, i.tun, i.World.Bound, drop)
	i.Herd = NewHerd(&i.World.IDs, i.rng, i.tun, drop)
	for _, a := range i.Layout.Animals {
		i.Herd.Spawn(a.Kind, a.Pos)
	}
	i.Combat = NewCombatResolver(i.World, i.Actors, i.Herd, i.rng, i.tun.Combat, i.Feedback)
	i.Director = NewDirector(i.Player, i, i.rng, i.tun.Director, i.Feedback, i.Feedback, i.HUD, i.journal)

	i.State = StatePlaying
	i.ResetAt = 0
	i.input = InputState{}
	i.lastZone = i.World.ZoneAt(i.Player.Pos)
	i.nextAmbientAt = i.Now
	i.nearAltar = false

	i.HUD.Clear()
	i.HUD.ShowBanner("Холодает. Найди меч и не дай огню погаснуть.", seconds(i.tun.Session.BannerSeconds))

	i.logger.WithFields(logrus.Fields{
		"session": i.Session,
		"nodes":   len(i.World.Nodes),
		"animals": i.Herd.Count(),
	}).Info("World session started.")
}

// SetInput запоминает зажатые клавиши до следующего снимка ввода
func (i *Instance) SetInput(in InputState) {
	i.input = in
}

// ApplyInput принимает снимок клавиш с транспорта
func (i *Instance) ApplyInput(p api.InputPayload) {
	i.SetInput(InputState{Forward: p.Forward, Back: p.Back, Left: p.Left, Right: p.Right, Sprint: p.Sprint})
}

// Step продвигает мир на один кадр. dt ограничивается сверху MaxDT.
func (i *Instance) Step(dt float64) {
	dt = math.Max(0, math.Min(dt, i.tun.Sim.MaxDT))
	i.Now += dt
	i.Tick++

	// Терминальное состояние замораживает симуляцию до перезапуска
	if i.State != StatePlaying {
		if i.Now >= i.ResetAt {
			i.reset()
		}
		return
	}

	// 1. Игрок
	i.Player.Update(i.input, dt, i.Now, i.World.Obstacles)

	// 2. Среда: зоны и источники тепла
	i.environment(dt)

	// 3. Враги и животные
	i.Actors.Update(i.Player.Pos, dt, i.Now, i.damagePlayer)
	i.Herd.Update(i.Player.Pos, dt, i.Now, i.damagePlayer)

	// 4. Директор
	i.Director.Update(i.Now)

	// 5. Подсказка у алтаря
	i.altarPrompt()

	if i.Player.IsDead() {
		i.finish(StateDead)
	}
}

func (i *Instance) damagePlayer(amount float64) {
	if i.Player.TakeDamage(amount, i.Now) {
		i.logger.WithField("amount", amount).Info("Player killed by a creature.")
	}
}

// environment применяет климат зоны и тепло костров
func (i *Instance) environment(dt float64) {
	env := i.tun.Environment
	pos := i.Player.Pos
	zone := i.World.ZoneAt(pos)

	if zone != i.lastZone {
		i.warnZone(zone)
		i.lastZone = zone
	}

	switch zone {
	case domain.ZoneCold:
		i.Player.Chill(env.ColdZoneLoss * i.Player.Resistance() * dt)
	case domain.ZoneHeat:
		if !i.Player.HeatImmune() {
			i.Player.Burn(env.HeatZoneDamage * dt)
		}
	}

	if zone != domain.ZoneNone && i.Now >= i.nextAmbientAt {
		kind := AmbientSnow
		if zone == domain.ZoneHeat {
			kind = AmbientEmber
		}
		dx, dz := utils.OffsetAt(utils.RandomBearing(i.rng), 3+i.rng.Float64()*5)
		i.Feedback.SpawnAmbient(kind, pos.Add(domain.Vec3{X: dx, Y: 4, Z: dz}))
		i.nextAmbientAt = i.Now + env.AmbientInterval
	}

	for _, it := range i.World.Items {
		if it.Kind == domain.ItemHeatSource && it.Pos.DistanceTo(pos) < env.HeatSourceRadius {
			i.Player.Warm(env.HeatSourceWarmth * dt)
			break
		}
	}
}

// warnZone срабатывает только на переходе между зонами
func (i *Instance) warnZone(zone domain.Zone) {
	d := seconds(i.tun.Session.BannerSeconds)
	switch zone {
	case domain.ZoneCold:
		switch res := i.Player.Resistance(); {
		case res <= 0:
			return
		case res >= 1:
			i.HUD.ShowBanner("Ледяной ветер пробирает до костей", d)
		default:
			i.HUD.ShowBanner("Одежда немного спасает от мороза", d)
		}
		i.Feedback.PlayWarning()
	case domain.ZoneHeat:
		if i.Player.HeatImmune() {
			return
		}
		i.HUD.ShowBanner("Жар обжигает кожу", d)
		i.Feedback.PlayWarning()
	}
}

// altarPrompt показывает приглашение один раз за каждое приближение к алтарю
func (i *Instance) altarPrompt() {
	near := i.World.Altar != nil && i.Player.Pos.DistanceTo(i.World.Altar.Pos) < i.tun.Session.AltarRadius
	if near && !i.nearAltar &&
		i.Player.Count(domain.ResourceIceCrystal) >= 1 && i.Player.Count(domain.ResourceFireOre) >= 1 {
		i.HUD.ShowBanner("Алтарь ждет. Соедини лед и пламя.", seconds(i.tun.Session.BannerSeconds))
	}
	i.nearAltar = near
}

// finish переводит сессию в терминальное состояние и планирует перезапуск
func (i *Instance) finish(state SessionState) {
	i.State = state
	delay := i.tun.Session.DeathReset
	if state == StateWon {
		delay = i.tun.Session.WinReset
	}
	i.ResetAt = i.Now + delay

	i.logger.WithFields(logrus.Fields{
		"session":  i.Session,
		"outcome":  state,
		"reset_in": delay,
	}).Info("World session ended.")

	rec := SessionRecord{Type: "session_end", Time: i.Now, Session: i.Session, Outcome: state.String(), Tick: i.Tick}
	if err := i.journal.Write(rec); err != nil {
		i.logger.WithError(err).Warn("Failed to journal session end.")
	}
}

// --- DirectorWorld ---

func (i *Instance) SpawnItem(kind domain.ItemKind, pos domain.Vec3) {
	i.World.SpawnItem(kind, pos.Clamp(i.World.Bound))
}

func (i *Instance) SpawnHostile(kind domain.EntityKind, pos domain.Vec3) {
	i.Actors.Spawn(kind, pos)
}

func (i *Instance) NearestStela(pos domain.Vec3) (domain.Stela, bool) {
	s := i.World.NearestStela(pos)
	if s == nil {
		return domain.Stela{}, false
	}
	return *s, true
}

func (i *Instance) RewriteStela(id domain.EntityID, text string) {
	for _, s := range i.World.Stelae {
		if s.ID == id {
			s.Text = text
		}
	}
}

func (i *Instance) RewriteStelae(text string) {
	for _, s := range i.World.Stelae {
		s.Text = text
	}
}

func (i *Instance) ResetPressure() {
	i.Player.ResetPressure()
}
