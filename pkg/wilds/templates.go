package wilds

import (
	"frostwild-server/internal/domain"
	"math/rand"
)

// DefaultBound - полуразмер карты
const DefaultBound = 95.0

// NodeTemplate определяет шаблон добываемого узла
type NodeTemplate struct {
	Kind   domain.NodeKind
	HP     int
	Radius float64
}

// At создает узел из шаблона на заданной позиции
func (t NodeTemplate) At(pos domain.Vec3) NodeSpec {
	return NodeSpec{Kind: t.Kind, Pos: pos.Flat(), HP: t.HP, Radius: t.Radius}
}

var Tree = NodeTemplate{Kind: domain.NodeTree, HP: 3, Radius: 0.8}
var IceOre = NodeTemplate{Kind: domain.NodeIceOre, HP: 1, Radius: 2}
var FireOre = NodeTemplate{Kind: domain.NodeFireOre, HP: 1, Radius: 2}

// StelaRadius - радиус тела коллизии стелы
const StelaRadius = 1.2

// Ключевые точки карты
var (
	PlayerStart   = domain.Vec3{X: 40, Z: 40}
	SwordPos      = domain.Vec3{X: 38, Z: 38}
	AltarPos      = domain.Vec3{X: 40, Z: 40}
	// Расплавленное ядро появляется в глубине огненных земель
	MoltenCorePos = domain.Vec3{X: -70, Z: 75}
)

// Тексты стел
const (
	StartStelaText  = "Путник. Холод забирает слабых. Принеси к алтарю лед севера и огонь юга, и пламя вернется в этот край."
	CenterStelaText = "Деревья помнят тепло. Три полена - один костер."
	FrostStelaText  = "В ледяных пустошах спит сердце мороза. Лишь тот, кто несет тяжесть, разбудит его."
	EmberStelaText  = "Пламя не тронет того, кто держит расплавленное ядро."
)

// Options - параметры стандартной раскладки
type Options struct {
	Trees     int     `yaml:"trees"`
	Clearing  float64 `yaml:"clearing"`
	IceOres   int     `yaml:"ice_ores"`
	FireOres  int     `yaml:"fire_ores"`
	Sheep     int     `yaml:"sheep"`
	Boars     int     `yaml:"boars"`
	TreeHP    int     `yaml:"tree_hp"`
	ZoneEdge  float64 `yaml:"zone_edge"`
	AltarSize float64 `yaml:"altar_radius"`
}

// DefaultOptions - базовый баланс карты
func DefaultOptions() Options {
	return Options{
		Trees:     60,
		Clearing:  30,
		IceOres:   6,
		FireOres:  6,
		Sheep:     12,
		Boars:     6,
		TreeHP:    3,
		ZoneEdge:  30,
		AltarSize: 2.5,
	}
}

// Standard строит стандартную карту: поляна с алтарем, ледяной северо-восток и огненный юго-запад
func Standard(rng *rand.Rand, opt Options) Layout {
	tree := Tree
	if opt.TreeHP > 0 {
		tree.HP = opt.TreeHP
	}
	edge := opt.ZoneEdge
	bound := DefaultBound

	return NewWorld(rng).
		WithBound(bound).
		WithPlayerStart(PlayerStart).
		WithZone(domain.ZoneCold, edge, bound+5, -bound-5, -edge).
		WithZone(domain.ZoneHeat, -bound-5, -edge, edge, bound+5).
		ScatterTrees(opt.Trees, opt.Clearing, tree).
		ScatterOres(opt.IceOres, 45, 85, -85, -45, IceOre).
		ScatterOres(opt.FireOres, -85, -45, 45, 85, FireOre).
		WithAltar(AltarPos, opt.AltarSize).
		WithItem(domain.ItemHeavySword, SwordPos).
		WithStela(domain.Vec3{X: 42, Z: 38}, StartStelaText).
		WithStela(domain.Vec3{X: 0, Z: 0}, CenterStelaText).
		WithStela(domain.Vec3{X: 60, Z: -60}, FrostStelaText).
		WithStela(domain.Vec3{X: -60, Z: 60}, EmberStelaText).
		ScatterAnimals(domain.KindSheep, opt.Sheep).
		ScatterAnimals(domain.KindBoar, opt.Boars).
		Build()
}
