package engine

import (
	"fmt"
	"frostwild-server/internal/domain"
	"frostwild-server/pkg/logger"
	"frostwild-server/pkg/utils"
	"frostwild-server/pkg/wilds"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Intervention - вид вмешательства директора
type Intervention uint8

const (
	InterventionNone Intervention = iota
	InterventionRescue
	InterventionPunishment
	InterventionTrial
	InterventionCrossStage
	InterventionCuriosity
)

var interventionNames = map[Intervention]string{
	InterventionNone:       "NONE",
	InterventionRescue:     "RESCUE",
	InterventionPunishment: "PUNISHMENT",
	InterventionTrial:      "PROGRESS_TRIAL",
	InterventionCrossStage: "CROSS_STAGE",
	InterventionCuriosity:  "CURIOSITY",
}

func (i Intervention) String() string {
	if s, ok := interventionNames[i]; ok {
		return s
	}
	return "UNKNOWN"
}

func (i Intervention) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// NarrativeFlag - одноразовая отметка сюжета. Внутри сессии не сбрасывается.
type NarrativeFlag uint8

const (
	FlagTrialSpawned NarrativeFlag = iota + 1
	FlagStageGated
)

func (f NarrativeFlag) MarshalText() ([]byte, error) {
	switch f {
	case FlagTrialSpawned:
		return []byte("trial_spawned"), nil
	case FlagStageGated:
		return []byte("stage_gated"), nil
	}
	return []byte("unknown"), nil
}

// Analysis - снимок состояния игрока только для чтения
type Analysis struct {
	Now         float64     `json:"now"`
	PlayerPos   domain.Vec3 `json:"player_pos"`
	Freezing    bool        `json:"freezing"`
	Starving    bool        `json:"starving"`
	HeavyLaden  bool        `json:"heavy_laden"`
	Idle        bool        `json:"idle"`
	DangerLevel float64     `json:"danger_level"` // (100 - health) / 100
	Greed       float64     `json:"greed"`
	Alert       float64     `json:"alert"`
	FrostHeart  bool        `json:"frost_heart"`
	LeatherCoat bool        `json:"leather_coat"`
	MoltenCore  bool        `json:"molten_core"`
}

// DirectorState - все, что директор помнит в пределах одной сессии мира
type DirectorState struct {
	LastAssessment float64                  `json:"last_assessment"`
	Assessed       bool                     `json:"assessed"`
	Cooldowns      map[Intervention]float64 `json:"cooldowns"` // абсолютные отметки истечения
	Flags          map[NarrativeFlag]bool   `json:"flags"`
	LastFired      Intervention             `json:"last_fired"`
	LastAnalysis   Analysis                 `json:"last_analysis"`
}

func newDirectorState() DirectorState {
	return DirectorState{
		Cooldowns: make(map[Intervention]float64),
		Flags:     make(map[NarrativeFlag]bool),
	}
}

// DirectorWorld - все, что директору разрешено менять в мире.
// Внутренности игрока и акторов ему недоступны.
type DirectorWorld interface {
	SpawnItem(kind domain.ItemKind, pos domain.Vec3)
	SpawnHostile(kind domain.EntityKind, pos domain.Vec3)
	NearestStela(pos domain.Vec3) (domain.Stela, bool)
	RewriteStela(id domain.EntityID, text string)
	RewriteStelae(text string)
	ResetPressure()
}

// InterventionRecord - запись журнала телеметрии
type InterventionRecord struct {
	Type         string       `json:"type"`
	Time         float64      `json:"t"`
	Intervention Intervention `json:"intervention"`
	Target       domain.Vec3  `json:"target"`
	Spawned      int          `json:"spawned"`
	Analysis     Analysis     `json:"analysis"`
}

// Director - адаптивный темп: раз в период анализирует игрока и выбирает
// не более одного вмешательства по фиксированному приоритету.
type Director struct {
	player PlayerReader
	world  DirectorWorld
	rng    *rand.Rand
	tun    DirectorTuning

	fx      Effects
	audio   Audio
	ui      Guidance
	journal Journal

	state  DirectorState
	logger *logrus.Entry
}

func NewDirector(player PlayerReader, world DirectorWorld, rng *rand.Rand, tun DirectorTuning, fx Effects, audio Audio, ui Guidance, journal Journal) *Director {
	if journal == nil {
		journal = Noop{}
	}
	return &Director{
		player:  player,
		world:   world,
		rng:     rng,
		tun:     tun,
		fx:      fx,
		audio:   audio,
		ui:      ui,
		journal: journal,
		state:   newDirectorState(),
		logger:  logger.Log.WithFields(logrus.Fields{"component": "director"}),
	}
}

// State возвращает копию состояния (для отладки)
func (d *Director) State() DirectorState {
	s := d.state
	s.Cooldowns = make(map[Intervention]float64, len(d.state.Cooldowns))
	for k, v := range d.state.Cooldowns {
		s.Cooldowns[k] = v
	}
	s.Flags = make(map[NarrativeFlag]bool, len(d.state.Flags))
	for k, v := range d.state.Flags {
		s.Flags[k] = v
	}
	return s
}

// Reset полностью стирает память директора (смерть или перезапуск мира)
func (d *Director) Reset() {
	d.state = newDirectorState()
}

// Update запускает оценку, только если с прошлой прошло больше AssessInterval.
// Если часы ушли назад, опорная отметка просто переставляется.
func (d *Director) Update(now float64) Intervention {
	if d.state.Assessed {
		if now < d.state.LastAssessment {
			d.logger.WithFields(logrus.Fields{"now": now, "last": d.state.LastAssessment}).Warn("Simulation clock went backwards, director reference reset.")
			d.state.LastAssessment = now
			return InterventionNone
		}
		if now-d.state.LastAssessment <= d.tun.AssessInterval {
			return InterventionNone
		}
	}
	return d.Assess(now)
}

// Assess - один полный цикл analyze -> decide -> execute, без проверки периода
func (d *Director) Assess(now float64) Intervention {
	d.state.LastAssessment = now
	d.state.Assessed = true

	a := d.Analyze(now)
	d.state.LastAnalysis = a

	iv := d.Decide(a)
	if iv != InterventionNone {
		d.Execute(iv, a)
	}
	return iv
}

// Analyze строит снимок состояния игрока
func (d *Director) Analyze(now float64) Analysis {
	v := d.player.Vitals()
	return Analysis{
		Now:         now,
		PlayerPos:   d.player.Position(),
		Freezing:    v.Temperature() < d.tun.FreezingBelow,
		Starving:    v.Hunger() < d.tun.StarvingBelow,
		HeavyLaden:  d.player.Weapon() == domain.WeaponHeavySword,
		Idle:        v.Stamina() > d.tun.IdleStamina && !d.player.Attacking(now) && now-d.player.LastActionAt() >= d.tun.IdleWindow,
		DangerLevel: (domain.VitalMax - v.Health()) / domain.VitalMax,
		Greed:       d.player.Greed(),
		Alert:       d.player.Alert(),
		FrostHeart:  d.player.Owns(domain.EquipFrostHeart),
		LeatherCoat: d.player.Owns(domain.EquipLeatherCoat),
		MoltenCore:  d.player.Owns(domain.EquipMoltenCore),
	}
}

func (d *Director) ready(iv Intervention, now float64) bool {
	return d.state.Cooldowns[iv] <= now
}

// Decide выбирает первое правило, чье условие выполнено и чей откат истек
func (d *Director) Decide(a Analysis) Intervention {
	switch {
	case (a.Freezing || a.Starving) && d.ready(InterventionRescue, a.Now):
		return InterventionRescue
	case (a.Greed >= d.tun.GreedThreshold || a.Alert >= d.tun.AlertThreshold) && d.ready(InterventionPunishment, a.Now):
		return InterventionPunishment
	case a.HeavyLaden && !d.state.Flags[FlagTrialSpawned]:
		return InterventionTrial
	case a.FrostHeart && a.LeatherCoat && !d.state.Flags[FlagStageGated]:
		return InterventionCrossStage
	case a.Idle && d.ready(InterventionCuriosity, a.Now):
		return InterventionCuriosity
	}
	return InterventionNone
}

// Execute применяет вмешательство и сразу ставит его откат или флаг
func (d *Director) Execute(iv Intervention, a Analysis) {
	rec := InterventionRecord{Type: "intervention", Time: a.Now, Intervention: iv, Analysis: a}

	switch iv {
	case InterventionRescue:
		d.state.Cooldowns[iv] = a.Now + d.tun.RescueCooldown
		rec.Target, rec.Spawned = d.rescue(a)
	case InterventionPunishment:
		d.state.Cooldowns[iv] = a.Now + d.tun.PunishCooldown
		rec.Target, rec.Spawned = d.punish(a)
	case InterventionTrial:
		d.state.Flags[FlagTrialSpawned] = true
		rec.Target = d.bearingOffset(a.PlayerPos, d.tun.TrialDistance)
		d.world.SpawnHostile(domain.KindElite, rec.Target)
		rec.Spawned = 1
		d.ui.ShowBanner("Тяжесть меча разбудила стража мороза", seconds(d.tun.HintSeconds))
		d.audio.PlayWarning()
	case InterventionCrossStage:
		d.state.Flags[FlagStageGated] = true
		rec.Target = wilds.MoltenCorePos
		d.world.SpawnItem(domain.ItemMoltenCore, rec.Target)
		rec.Spawned = 1
		d.fx.SpawnBurst(rec.Target, ColorFire, 20)
		d.world.RewriteStelae("Холод тебе больше не страшен. В пламени на юго-западе остыло ядро.")
		d.ui.ShowBanner("Где-то в жаре родилось расплавленное ядро", seconds(d.tun.HintSeconds))
	case InterventionCuriosity:
		d.state.Cooldowns[iv] = a.Now + d.tun.CuriosityCooldown
		rec.Target = d.bearingOffset(a.PlayerPos, d.tun.OmenDistance)
		d.fx.SpawnBurst(rec.Target, ColorOmen, 12)
		d.world.RewriteStelae(omens[d.rng.Intn(len(omens))])
		d.ui.ShowTransientHint("Вдали что-то вспыхнуло", seconds(d.tun.HintSeconds))
	default:
		return
	}

	d.state.LastFired = iv
	d.logger.WithFields(logrus.Fields{
		"intervention": iv,
		"t":            a.Now,
		"x":            rec.Target.X,
		"z":            rec.Target.Z,
		"spawned":      rec.Spawned,
	}).Info("Director intervention fired.")
	if err := d.journal.Write(rec); err != nil {
		d.logger.WithError(err).Warn("Failed to journal intervention.")
	}
}

// rescue кладет спасительный ресурс далеко от игрока и подсказывает направление
func (d *Director) rescue(a Analysis) (domain.Vec3, int) {
	target := d.bearingOffset(a.PlayerPos, d.tun.RescueDistance)
	spawned := 0
	what, seek := "тепло", "тепло"
	if a.Freezing {
		d.world.SpawnItem(domain.ItemHeatSource, target)
		d.fx.SpawnBurst(target, ColorAmber, 10)
		spawned = 1
	} else {
		what, seek = "пища", "пищу"
		for i := 0; i < d.tun.BerryCluster; i++ {
			d.world.SpawnItem(domain.ItemBerry, target.Add(domain.Forward(float64(i)*2.1).Scale(1.2)))
			spawned++
		}
		d.fx.SpawnBurst(target, ColorBerry, 10)
	}

	if st, ok := d.world.NearestStela(a.PlayerPos); ok {
		delta := target.Sub(st.Pos)
		d.world.RewriteStela(st.ID, fmt.Sprintf("Ищи %s. Направление отсюда: %s.", seek, utils.Compass(delta.X, delta.Z)))
	}
	delta := target.Sub(a.PlayerPos)
	d.ui.ShowTransientHint(fmt.Sprintf("Кажется, %s где-то там: %s", what, utils.Compass(delta.X, delta.Z)), seconds(d.tun.HintSeconds))
	return target, spawned
}

// punish выпускает миньонов вокруг игрока и обнуляет жадность и тревогу
func (d *Director) punish(a Analysis) (domain.Vec3, int) {
	count := d.tun.PunishCount
	if a.Greed >= d.tun.GreedThreshold && a.Alert >= d.tun.AlertThreshold {
		count++
	}
	var last domain.Vec3
	for i := 0; i < count; i++ {
		last = d.bearingOffset(a.PlayerPos, d.tun.PunishRadius)
		d.world.SpawnHostile(domain.KindMinion, last)
	}
	d.world.ResetPressure()
	d.ui.ShowBanner("Лес не прощает жадности", seconds(d.tun.HintSeconds))
	d.audio.PlayWarning()
	return last, count
}

func (d *Director) bearingOffset(from domain.Vec3, dist float64) domain.Vec3 {
	dx, dz := utils.OffsetAt(utils.RandomBearing(d.rng), dist)
	return from.Add(domain.Vec3{X: dx, Z: dz})
}

var omens = []string{
	"Тишина тоже смотрит на тебя.",
	"Отдохнувший путник видит дальше.",
	"На горизонте горит то, что не зажигали люди.",
}
