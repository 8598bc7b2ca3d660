package engine

import (
	"frostwild-server/internal/domain"
	"frostwild-server/internal/systems"

	"github.com/sirupsen/logrus"
)

// Названия предметов для подсказок
var itemNames = map[domain.ItemKind]string{
	domain.ItemHeavySword: "тяжелый меч",
	domain.ItemFrostHeart: "сердце мороза",
	domain.ItemMoltenCore: "расплавленное ядро",
	domain.ItemWood:       "полено",
	domain.ItemBerry:      "ягоды",
	domain.ItemMeat:       "мясо",
	domain.ItemFur:        "шкура",
	domain.ItemIceCrystal: "ледяной кристалл",
	domain.ItemFireOre:    "огненная руда",
}

func (i *Instance) hint(text string) {
	i.HUD.ShowTransientHint(text, seconds(i.tun.Director.HintSeconds))
}

func (i *Instance) playing() bool {
	return i.State == StatePlaying && !i.Player.IsDead()
}

// Attack - дискретный триггер удара. Бой разрешается только для принятой атаки.
func (i *Instance) Attack() bool {
	if !i.playing() {
		return false
	}
	p := i.Player
	if !p.Attack(i.Now) {
		if p.Weapon() == domain.WeaponHeavySword && !p.Attacking(i.Now) {
			i.hint("Нет сил для удара")
		}
		return false
	}

	i.Feedback.SpawnSlash(systems.AttackPoint(p.Pos, p.Facing, i.tun.Combat.ForwardOffset), p.Facing)
	i.Feedback.PlayAttack()
	if kills := i.Combat.ResolveMeleeAttack(p.Pos, p.Facing, i.Now); kills > 0 {
		i.logger.WithFields(logrus.Fields{"kills": kills, "tick": i.Tick}).Debug("Attack destroyed targets.")
	}
	return true
}

// Interact по порядку: разжечь алтарь, подобрать ближайший предмет, прочитать стелу.
// Если ничего рядом нет, это тихий no-op.
func (i *Instance) Interact() bool {
	if !i.playing() {
		return false
	}
	p := i.Player

	// 1. Алтарь: с обоими ресурсами ковка важнее любого предмета рядом
	alt := i.World.Altar
	atAltar := alt != nil && p.Pos.DistanceTo(alt.Pos) < i.tun.Session.AltarRadius
	if atAltar && p.ConsumeStageResources() {
		p.MarkAction(i.Now)
		i.Feedback.SpawnBurst(alt.Pos, ColorVictor, 40)
		i.Feedback.PlayPickup()
		i.HUD.ShowBanner("Пламя вернулось в этот край!", seconds(i.tun.Session.WinReset))
		i.finish(StateWon)
		return true
	}

	// 2. Предмет
	item := i.World.NearestItem(p.Pos, i.tun.Player.InteractRadius, func(it *domain.Item) bool {
		return it.Kind.Pickable()
	})
	if item != nil && p.Pickup(item.Kind, i.Now) {
		i.World.RemoveItem(item.ID)
		i.Feedback.PlayPickup()
		i.Feedback.SpawnBurst(item.Pos, ColorAmber, 4)
		i.hint("Подобрано: " + itemNames[item.Kind])
		return true
	}
	if atAltar {
		i.hint("Алтарю нужны лед севера и огонь юга")
		return false
	}

	// 3. Стела
	if st := i.World.NearestStela(p.Pos); st != nil && p.Pos.DistanceTo(st.Pos) < i.tun.Session.StelaRadius {
		p.MarkAction(i.Now)
		i.HUD.ShowLoreText(st.Text)
		return true
	}
	return false
}

// Craft ищет рецепт по имени (с опечатками) и выполняет его атомарно
func (i *Instance) Craft(name string) bool {
	if !i.playing() {
		return false
	}
	r, ok := domain.LookupRecipe(name)
	if !ok {
		i.hint("Неизвестный рецепт")
		return false
	}
	if !i.Player.Craft(r.ID, i.Now) {
		i.hint("Не хватает материалов")
		return false
	}
	i.Feedback.PlayPickup()
	i.hint("Создано: " + r.Title)
	return true
}

// PlaceCampfire ставит собранный костер перед игроком
func (i *Instance) PlaceCampfire() bool {
	if !i.playing() {
		return false
	}
	p := i.Player
	if !p.TakeCampfire() {
		i.hint("Сначала собери костер")
		return false
	}
	pos := p.Pos.Add(domain.Forward(p.Facing).Scale(i.tun.Player.PlaceDistance))
	i.SpawnItem(domain.ItemHeatSource, pos)
	i.Feedback.SpawnBurst(pos, ColorFire, 10)
	p.MarkAction(i.Now)
	return true
}

// --- Админские команды (отладка баланса) ---

// SetVitals перезаписывает показатели игрока
func (i *Instance) SetVitals(health, stamina, temperature, hunger float64) {
	i.Player.SetVitals(domain.VitalsOf(health, stamina, temperature, hunger))
	i.logger.WithFields(logrus.Fields{"health": health, "temperature": temperature}).Warn("Admin override of player vitals.")
}

// SpawnCreature выпускает врага или животное в указанной точке
func (i *Instance) SpawnCreature(kind domain.EntityKind, pos domain.Vec3) bool {
	switch {
	case kind.IsHostile():
		_, ok := i.Actors.Spawn(kind, pos)
		return ok
	case kind.IsAnimal():
		_, ok := i.Herd.Spawn(kind, pos)
		return ok
	}
	return false
}

// Heal восстанавливает живого игрока полностью
func (i *Instance) Heal() bool {
	if !i.playing() {
		return false
	}
	i.Player.SetVitals(domain.NewVitals())
	return true
}
