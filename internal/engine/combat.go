package engine

import (
	"frostwild-server/internal/domain"
	"frostwild-server/internal/systems"
	"frostwild-server/pkg/logger"
	"math/rand"

	"github.com/sirupsen/logrus"
)

// Бонусная ягода падает рядом с поваленным деревом
var berryOffset = domain.Vec3{X: 1, Z: 1}

// CombatResolver обрабатывает мгновенный удар по области: узлы, руда, враги, животные
type CombatResolver struct {
	world  *domain.World
	actors *ActorRegistry
	herd   *Herd
	rng    *rand.Rand
	tun    CombatTuning
	fx     Effects
	logger *logrus.Entry
}

func NewCombatResolver(world *domain.World, actors *ActorRegistry, herd *Herd, rng *rand.Rand, tun CombatTuning, fx Effects) *CombatResolver {
	return &CombatResolver{
		world:  world,
		actors: actors,
		herd:   herd,
		rng:    rng,
		tun:    tun,
		fx:     fx,
		logger: logger.For("combat"),
	}
}

// ResolveMeleeAttack проверяет точку удара (позиция + взгляд * смещение) и бьет
// все цели в радиусе. Возвращает число целей, уничтоженных именно этим ударом.
func (c *CombatResolver) ResolveMeleeAttack(attackerPos domain.Vec3, facing, now float64) int {
	point := systems.AttackPoint(attackerPos, facing, c.tun.ForwardOffset)
	kills := 0

	// 1-2. Деревья и руда
	var destroyed []domain.EntityID
	for _, n := range c.world.Nodes {
		reach := c.tun.NodeReach
		if n.Kind.IsOre() {
			reach = c.tun.Reach
		}
		if !systems.WithinReach(point, n.Pos, reach) {
			continue
		}
		if !systems.HitNode(n) {
			c.fx.SpawnBurst(n.Pos, nodeColor(n.Kind), 3)
			continue
		}
		destroyed = append(destroyed, n.ID)
		c.world.SpawnItem(n.Kind.Yield(), n.Pos)
		c.fx.SpawnBurst(n.Pos, nodeColor(n.Kind), 8)
		if n.Kind == domain.NodeTree && systems.RollChance(c.rng, c.tun.BerryChance) {
			c.world.SpawnItem(domain.ItemBerry, n.Pos.Add(berryOffset))
		}
	}
	for _, id := range destroyed {
		if c.world.RemoveNode(id) {
			kills++
		}
	}

	// 3. Враждебные акторы
	for _, id := range c.actors.InReach(point, c.tun.Reach) {
		a, _ := c.actors.Get(id)
		c.fx.SpawnBurst(a.Pos, ColorBlood, 5)
		if c.actors.Hit(id, attackerPos, c.tun.HitDamage) {
			kills++
		}
	}

	// 4. Животные
	if c.herd != nil {
		for _, id := range c.herd.InReach(point, c.tun.Reach) {
			a, _ := c.herd.Get(id)
			c.fx.SpawnBurst(a.Pos, ColorBlood, 5)
			if c.herd.Hit(id, attackerPos, c.tun.HitDamage, now) {
				kills++
			}
		}
	}

	if kills > 0 {
		c.logger.WithFields(logrus.Fields{"kills": kills, "x": point.X, "z": point.Z}).Debug("Melee attack resolved.")
	}
	return kills
}

func nodeColor(k domain.NodeKind) string {
	switch k {
	case domain.NodeIceOre:
		return ColorIce
	case domain.NodeFireOre:
		return ColorFire
	}
	return ColorWood
}
