package engine

import (
	"errors"
	"fmt"
	"os"
	"time"

	"frostwild-server/pkg/wilds"

	"gopkg.in/yaml.v3"
)

// Config хранит параметры запуска движка
type Config struct {
	// Seed - мастер-зерно. От него зависят раскладка карты и все броски симуляции.
	Seed int64

	Port       string
	TuningPath string // YAML с поправками баланса (пусто = значения по умолчанию)
	JournalDir string // куда писать журнал вмешательств (пусто = не писать)

	Headless bool          // без HTTP, играет автопилот
	Duration time.Duration // сколько длится headless-прогон
	Admin    bool          // разрешить ADMIN_* команды
}

// NewConfig создает конфиг по умолчанию (случайный сид)
func NewConfig() Config {
	return Config{
		Seed:     time.Now().UnixNano(),
		Port:     "8080",
		Duration: 2 * time.Minute,
	}
}

// ErrInvalidTuning - баланс не прошел проверку
var ErrInvalidTuning = errors.New("invalid tuning")

// Tuning - все числовые константы симуляции. Это стартовый баланс, а не контракт:
// любое значение можно переопределить YAML-файлом.
type Tuning struct {
	Sim         SimTuning         `yaml:"sim"`
	Player      PlayerTuning      `yaml:"player"`
	Vitals      VitalsTuning      `yaml:"vitals"`
	Minion      ActorProfile      `yaml:"minion"`
	Elite       ActorProfile      `yaml:"elite"`
	Knockback   KnockbackTuning   `yaml:"knockback"`
	Combat      CombatTuning      `yaml:"combat"`
	Wildlife    WildlifeTuning    `yaml:"wildlife"`
	Environment EnvironmentTuning `yaml:"environment"`
	Director    DirectorTuning    `yaml:"director"`
	Session     SessionTuning     `yaml:"session"`
	World       wilds.Options     `yaml:"world"`
}

type SimTuning struct {
	MaxDT         float64 `yaml:"max_dt"`         // верхняя граница шага (сек)
	TickRateHz    int     `yaml:"tick_rate_hz"`   // частота живого цикла
	SnapshotEvery int     `yaml:"snapshot_every"` // рассылать снимок каждые N тиков
}

type PlayerTuning struct {
	Radius             float64 `yaml:"radius"`
	Speed              float64 `yaml:"speed"`
	HeavyPenalty       float64 `yaml:"heavy_penalty"`
	SprintMultiplier   float64 `yaml:"sprint_multiplier"`
	SprintDrain        float64 `yaml:"sprint_drain"`
	HoldingSprintDrain float64 `yaml:"holding_sprint_drain"`
	WalkRegen          float64 `yaml:"walk_regen"`
	IdleRegen          float64 `yaml:"idle_regen"`
	AttackCost         float64 `yaml:"attack_cost"`
	AttackDuration     float64 `yaml:"attack_duration"`
	HitFlash           float64 `yaml:"hit_flash"`
	EatHealRatio       float64 `yaml:"eat_heal_ratio"`
	InteractRadius     float64 `yaml:"interact_radius"`
	PlaceDistance      float64 `yaml:"place_distance"`

	AttackAlert   float64 `yaml:"attack_alert"`
	SprintAlert   float64 `yaml:"sprint_alert"`
	AlertDecay    float64 `yaml:"alert_decay"`
	SwordGreed    float64 `yaml:"sword_greed"`
	ResourceGreed float64 `yaml:"resource_greed"`
}

type VitalsTuning struct {
	TemperatureDecay float64 `yaml:"temperature_decay"`
	HungerDecay      float64 `yaml:"hunger_decay"`
	FreezeDrain      float64 `yaml:"freeze_drain"`
	StarveDrain      float64 `yaml:"starve_drain"`
	ResistanceBonus  float64 `yaml:"resistance_bonus"`
	BerryFood        float64 `yaml:"berry_food"`
	MeatFood         float64 `yaml:"meat_food"`
}

// ActorProfile - параметры вида враждебного актора
type ActorProfile struct {
	Health        float64 `yaml:"health"`
	AttackRange   float64 `yaml:"attack_range"`
	Cooldown      float64 `yaml:"cooldown"`
	Damage        float64 `yaml:"damage"`
	Speed         float64 `yaml:"speed"`
	ContactRadius float64 `yaml:"contact_radius"`
}

type KnockbackTuning struct {
	Friction      float64 `yaml:"friction"`
	Threshold     float64 `yaml:"threshold"`
	EnemyImpulse  float64 `yaml:"enemy_impulse"`
	AnimalImpulse float64 `yaml:"animal_impulse"`
}

type CombatTuning struct {
	ForwardOffset float64 `yaml:"forward_offset"`
	Reach         float64 `yaml:"reach"`      // акторы и руда
	NodeReach     float64 `yaml:"node_reach"` // деревья
	HitDamage     float64 `yaml:"hit_damage"`
	BerryChance   float64 `yaml:"berry_chance"`
}

type WildlifeTuning struct {
	SheepHealth       float64 `yaml:"sheep_health"`
	BoarHealth        float64 `yaml:"boar_health"`
	SheepSpeed        float64 `yaml:"sheep_speed"`
	BoarSpeed         float64 `yaml:"boar_speed"`
	FleeMultiplier    float64 `yaml:"flee_multiplier"`
	ChargeMultiplier  float64 `yaml:"charge_multiplier"`
	FleeDuration      float64 `yaml:"flee_duration"`
	ChargeRadius      float64 `yaml:"charge_radius"`
	ContactRadius     float64 `yaml:"contact_radius"`
	BoarDamage        float64 `yaml:"boar_damage"`
	BiteCooldown      float64 `yaml:"bite_cooldown"`
	Recoil            float64 `yaml:"recoil"`
	VelocityFriction  float64 `yaml:"velocity_friction"`
	KnockbackFriction float64 `yaml:"knockback_friction"`
	WanderMin         float64 `yaml:"wander_min"`
	WanderMax         float64 `yaml:"wander_max"`
	Bound             float64 `yaml:"bound"`
}

type EnvironmentTuning struct {
	ColdZoneLoss     float64 `yaml:"cold_zone_loss"`
	HeatZoneDamage   float64 `yaml:"heat_zone_damage"`
	HeatSourceRadius float64 `yaml:"heat_source_radius"`
	HeatSourceWarmth float64 `yaml:"heat_source_warmth"`
	AmbientInterval  float64 `yaml:"ambient_interval"`
}

type DirectorTuning struct {
	AssessInterval    float64 `yaml:"assess_interval"`
	FreezingBelow     float64 `yaml:"freezing_below"`
	StarvingBelow     float64 `yaml:"starving_below"`
	IdleStamina       float64 `yaml:"idle_stamina"`
	IdleWindow        float64 `yaml:"idle_window"`
	GreedThreshold    float64 `yaml:"greed_threshold"`
	AlertThreshold    float64 `yaml:"alert_threshold"`
	RescueCooldown    float64 `yaml:"rescue_cooldown"`
	PunishCooldown    float64 `yaml:"punish_cooldown"`
	CuriosityCooldown float64 `yaml:"curiosity_cooldown"`
	RescueDistance    float64 `yaml:"rescue_distance"`
	TrialDistance     float64 `yaml:"trial_distance"`
	OmenDistance      float64 `yaml:"omen_distance"`
	PunishRadius      float64 `yaml:"punish_radius"`
	PunishCount       int     `yaml:"punish_count"`
	BerryCluster      int     `yaml:"berry_cluster"`
	HintSeconds       float64 `yaml:"hint_seconds"`
}

type SessionTuning struct {
	DeathReset    float64 `yaml:"death_reset"`
	WinReset      float64 `yaml:"win_reset"`
	AltarRadius   float64 `yaml:"altar_radius"` // радиус, в котором работает алтарь
	StelaRadius   float64 `yaml:"stela_radius"` // радиус чтения стелы
	BannerSeconds float64 `yaml:"banner_seconds"`
	LoreSeconds   float64 `yaml:"lore_seconds"`
}

// DefaultTuning - базовый баланс
func DefaultTuning() Tuning {
	return Tuning{
		Sim: SimTuning{MaxDT: 0.1, TickRateHz: 60, SnapshotEvery: 3},
		Player: PlayerTuning{
			Radius:             0.5,
			Speed:              12,
			HeavyPenalty:       0.4,
			SprintMultiplier:   1.8,
			SprintDrain:        20,
			HoldingSprintDrain: 40,
			WalkRegen:          15,
			IdleRegen:          30,
			AttackCost:         20,
			AttackDuration:     0.25,
			HitFlash:           0.2,
			EatHealRatio:       0.2,
			InteractRadius:     4,
			PlaceDistance:      2,
			AttackAlert:        15,
			SprintAlert:        10,
			AlertDecay:         2,
			SwordGreed:         20,
			ResourceGreed:      5,
		},
		Vitals: VitalsTuning{
			TemperatureDecay: 0.5,
			HungerDecay:      0.3,
			FreezeDrain:      2,
			StarveDrain:      1,
			ResistanceBonus:  0.5,
			BerryFood:        20,
			MeatFood:         50,
		},
		Minion: ActorProfile{Health: 100, AttackRange: 1.5, Cooldown: 1.5, Damage: 10, Speed: 2, ContactRadius: 1},
		Elite:  ActorProfile{Health: 300, AttackRange: 2.5, Cooldown: 1.2, Damage: 20, Speed: 2, ContactRadius: 1},
		Knockback: KnockbackTuning{
			Friction:      0.85,
			Threshold:     0.1,
			EnemyImpulse:  0.75,
			AnimalImpulse: 0.3,
		},
		Combat: CombatTuning{
			ForwardOffset: 2,
			Reach:         4.5,
			NodeReach:     4,
			HitDamage:     40,
			BerryChance:   0.6,
		},
		Wildlife: WildlifeTuning{
			SheepHealth:       80,
			BoarHealth:        120,
			SheepSpeed:        1,
			BoarSpeed:         1.2,
			FleeMultiplier:    3,
			ChargeMultiplier:  3,
			FleeDuration:      1.5,
			ChargeRadius:      6,
			ContactRadius:     1.5,
			BoarDamage:        5,
			BiteCooldown:      1,
			Recoil:            0.5,
			VelocityFriction:  0.9,
			KnockbackFriction: 0.8,
			WanderMin:         3,
			WanderMax:         7,
			Bound:             99,
		},
		Environment: EnvironmentTuning{
			ColdZoneLoss:     8,
			HeatZoneDamage:   10,
			HeatSourceRadius: 10,
			HeatSourceWarmth: 15,
			AmbientInterval:  0.25,
		},
		Director: DirectorTuning{
			AssessInterval:    4,
			FreezingBelow:     35,
			StarvingBelow:     30,
			IdleStamina:       90,
			IdleWindow:        8,
			GreedThreshold:    60,
			AlertThreshold:    80,
			RescueCooldown:    60,
			PunishCooldown:    45,
			CuriosityCooldown: 30,
			RescueDistance:    35,
			TrialDistance:     30,
			OmenDistance:      40,
			PunishRadius:      14,
			PunishCount:       2,
			BerryCluster:      3,
			HintSeconds:       3,
		},
		Session: SessionTuning{
			DeathReset:    4,
			WinReset:      8,
			AltarRadius:   5,
			StelaRadius:   5,
			BannerSeconds: 3,
			LoreSeconds:   6,
		},
		World: wilds.DefaultOptions(),
	}
}

// LoadTuning накладывает YAML-файл поверх значений по умолчанию.
// Ключи, которых нет в файле, сохраняют базовые значения.
func LoadTuning(path string) (Tuning, error) {
	t := DefaultTuning()
	if path == "" {
		return t, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return t, fmt.Errorf("read tuning: %w", err)
	}
	if err := yaml.Unmarshal(raw, &t); err != nil {
		return t, fmt.Errorf("tuning %s: %w", path, err)
	}
	if err := t.Validate(); err != nil {
		return t, err
	}
	return t, nil
}

// Validate отклоняет баланс, с которым симуляция теряет смысл
func (t Tuning) Validate() error {
	// 1. Шаг и частоты
	if t.Sim.MaxDT <= 0 || t.Sim.MaxDT > 1 {
		return fmt.Errorf("%w: sim.max_dt must be in (0, 1], got %v", ErrInvalidTuning, t.Sim.MaxDT)
	}
	if t.Sim.TickRateHz <= 0 || t.Sim.SnapshotEvery <= 0 {
		return fmt.Errorf("%w: sim rates must be positive", ErrInvalidTuning)
	}

	// 2. Коэффициенты трения строго внутри (0, 1), иначе затухание не геометрическое
	frictions := map[string]float64{
		"knockback.friction":          t.Knockback.Friction,
		"wildlife.velocity_friction":  t.Wildlife.VelocityFriction,
		"wildlife.knockback_friction": t.Wildlife.KnockbackFriction,
	}
	for name, f := range frictions {
		if f <= 0 || f >= 1 {
			return fmt.Errorf("%w: %s must be in (0, 1), got %v", ErrInvalidTuning, name, f)
		}
	}

	// 3. Неотрицательные скорости, длительности и кулдауны
	nonNegative := map[string]float64{
		"player.speed":                t.Player.Speed,
		"player.attack_cost":          t.Player.AttackCost,
		"player.attack_duration":      t.Player.AttackDuration,
		"vitals.temperature_decay":    t.Vitals.TemperatureDecay,
		"vitals.hunger_decay":         t.Vitals.HungerDecay,
		"vitals.resistance_bonus":     t.Vitals.ResistanceBonus,
		"minion.cooldown":             t.Minion.Cooldown,
		"elite.cooldown":              t.Elite.Cooldown,
		"director.assess_interval":    t.Director.AssessInterval,
		"director.rescue_cooldown":    t.Director.RescueCooldown,
		"director.punish_cooldown":    t.Director.PunishCooldown,
		"director.curiosity_cooldown": t.Director.CuriosityCooldown,
		"session.death_reset":         t.Session.DeathReset,
		"session.win_reset":           t.Session.WinReset,
	}
	for name, v := range nonNegative {
		if v < 0 {
			return fmt.Errorf("%w: %s must not be negative, got %v", ErrInvalidTuning, name, v)
		}
	}

	// 4. Вероятности и доли
	if t.Combat.BerryChance < 0 || t.Combat.BerryChance > 1 {
		return fmt.Errorf("%w: combat.berry_chance must be in [0, 1]", ErrInvalidTuning)
	}
	if t.Minion.Health <= 0 || t.Elite.Health <= 0 {
		return fmt.Errorf("%w: actor health must be positive", ErrInvalidTuning)
	}
	if t.Wildlife.WanderMax < t.Wildlife.WanderMin {
		return fmt.Errorf("%w: wildlife.wander_max < wander_min", ErrInvalidTuning)
	}
	return nil
}
