package wilds

import (
	"frostwild-server/internal/domain"
	"math"
	"math/rand"
)

// NodeSpec - добываемый узел в статичной раскладке
type NodeSpec struct {
	Kind   domain.NodeKind
	Pos    domain.Vec3
	HP     int
	Radius float64
}

// ItemSpec - предмет, лежащий в мире с самого начала
type ItemSpec struct {
	Kind domain.ItemKind
	Pos  domain.Vec3
}

// StelaSpec - стела и ее исходный текст. Стела - тоже препятствие.
type StelaSpec struct {
	Pos    domain.Vec3
	Text   string
	Radius float64
}

// AnimalSpec - стартовая позиция животного
type AnimalSpec struct {
	Kind domain.EntityKind
	Pos  domain.Vec3
}

// Layout - статичная раскладка мира. Строится один раз и переиспользуется при каждом перезапуске.
type Layout struct {
	Bound       float64
	PlayerStart domain.Vec3

	Rocks   []domain.Obstacle
	Nodes   []NodeSpec
	Items   []ItemSpec
	Stelae  []StelaSpec
	Animals []AnimalSpec
	Zones   []domain.ZoneRect

	AltarPos    domain.Vec3
	AltarRadius float64
	HasAltar    bool
}

const startClearance = 6.0

// WorldBuilder предоставляет fluent API для раскладки мира
type WorldBuilder struct {
	rng    *rand.Rand
	layout Layout
}

// NewWorld создает builder с границей по умолчанию
func NewWorld(rng *rand.Rand) *WorldBuilder {
	return &WorldBuilder{
		rng:    rng,
		layout: Layout{Bound: DefaultBound},
	}
}

func (b *WorldBuilder) randRange(min, max float64) float64 {
	return min + b.rng.Float64()*(max-min)
}

// WithBound устанавливает границу мира [-bound, bound]
func (b *WorldBuilder) WithBound(bound float64) *WorldBuilder {
	b.layout.Bound = bound
	return b
}

// WithPlayerStart задает точку появления игрока
func (b *WorldBuilder) WithPlayerStart(pos domain.Vec3) *WorldBuilder {
	b.layout.PlayerStart = pos
	return b
}

// WithRock добавляет статичное препятствие
func (b *WorldBuilder) WithRock(pos domain.Vec3, radius float64) *WorldBuilder {
	b.layout.Rocks = append(b.layout.Rocks, domain.Obstacle{Pos: pos.Flat(), Radius: radius})
	return b
}

// ScatterTrees разбрасывает деревья по всей карте, оставляя пустую поляну |x|,|z| < clearing
func (b *WorldBuilder) ScatterTrees(count int, clearing float64, tmpl NodeTemplate) *WorldBuilder {
	edge := b.layout.Bound - 5
	placed := 0
	// Ограничиваем число попыток, чтобы маленькая карта не зациклила builder
	for attempt := 0; placed < count && attempt < count*20; attempt++ {
		x := b.randRange(-edge, edge)
		z := b.randRange(-edge, edge)
		if math.Abs(x) < clearing && math.Abs(z) < clearing {
			continue
		}
		pos := domain.Vec3{X: x, Z: z}
		// Точку появления не загораживаем
		if pos.DistanceTo(b.layout.PlayerStart) < startClearance {
			continue
		}
		b.layout.Nodes = append(b.layout.Nodes, tmpl.At(pos))
		placed++
	}
	return b
}

// ScatterOres разбрасывает руду внутри прямоугольника
func (b *WorldBuilder) ScatterOres(count int, minX, maxX, minZ, maxZ float64, tmpl NodeTemplate) *WorldBuilder {
	for i := 0; i < count; i++ {
		pos := domain.Vec3{X: b.randRange(minX, maxX), Z: b.randRange(minZ, maxZ)}
		b.layout.Nodes = append(b.layout.Nodes, tmpl.At(pos))
	}
	return b
}

// WithItem кладет предмет
func (b *WorldBuilder) WithItem(kind domain.ItemKind, pos domain.Vec3) *WorldBuilder {
	b.layout.Items = append(b.layout.Items, ItemSpec{Kind: kind, Pos: pos.Flat()})
	return b
}

// WithStela ставит стелу
func (b *WorldBuilder) WithStela(pos domain.Vec3, text string) *WorldBuilder {
	b.layout.Stelae = append(b.layout.Stelae, StelaSpec{Pos: pos.Flat(), Text: text, Radius: StelaRadius})
	return b
}

// WithAltar ставит алтарь
func (b *WorldBuilder) WithAltar(pos domain.Vec3, radius float64) *WorldBuilder {
	b.layout.AltarPos = pos.Flat()
	b.layout.AltarRadius = radius
	b.layout.HasAltar = true
	return b
}

// WithZone добавляет климатическую зону
func (b *WorldBuilder) WithZone(zone domain.Zone, minX, maxX, minZ, maxZ float64) *WorldBuilder {
	b.layout.Zones = append(b.layout.Zones, domain.ZoneRect{Zone: zone, MinX: minX, MaxX: maxX, MinZ: minZ, MaxZ: maxZ})
	return b
}

// ScatterAnimals выпускает стадо по всей карте
func (b *WorldBuilder) ScatterAnimals(kind domain.EntityKind, count int) *WorldBuilder {
	edge := b.layout.Bound - 10
	for i := 0; i < count; i++ {
		pos := domain.Vec3{X: b.randRange(-edge, edge), Z: b.randRange(-edge, edge)}
		b.layout.Animals = append(b.layout.Animals, AnimalSpec{Kind: kind, Pos: pos})
	}
	return b
}

// Build возвращает готовую раскладку
func (b *WorldBuilder) Build() Layout {
	return b.layout
}
