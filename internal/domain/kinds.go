package domain

import "strings"

// EntityKind - игровая роль сущности. Хранится в старших битах EntityID.
type EntityKind uint8

const (
	KindUnknown EntityKind = iota
	KindPlayer
	KindMinion
	KindElite
	KindSheep
	KindBoar
	KindTree
	KindOre
	KindItem
	KindStela
	KindAltar
)

var entityKindToString = map[EntityKind]string{
	KindPlayer: "player",
	KindMinion: "minion",
	KindElite:  "elite",
	KindSheep:  "sheep",
	KindBoar:   "boar",
	KindTree:   "tree",
	KindOre:    "ore",
	KindItem:   "item",
	KindStela:  "stela",
	KindAltar:  "altar",
}

func (k EntityKind) String() string {
	if val, ok := entityKindToString[k]; ok {
		return val
	}
	return "unknown"
}

// ParseEntityKind - обратное к String, без учета регистра
func ParseEntityKind(s string) EntityKind {
	in := strings.ToLower(strings.TrimSpace(s))
	for k, name := range entityKindToString {
		if name == in {
			return k
		}
	}
	return KindUnknown
}

// IsHostile - враждебные акторы реестра
func (k EntityKind) IsHostile() bool {
	return k == KindMinion || k == KindElite
}

// IsAnimal - дикие животные стада
func (k EntityKind) IsAnimal() bool {
	return k == KindSheep || k == KindBoar
}

// ItemKind - закрытый перечень предметов, лежащих в мире
type ItemKind uint8

const (
	ItemUnknown ItemKind = iota
	ItemHeavySword
	ItemHeatSource
	ItemFrostHeart
	ItemMoltenCore
	ItemWood
	ItemBerry
	ItemMeat
	ItemFur
	ItemIceCrystal
	ItemFireOre
)

var itemStringToKind = map[string]ItemKind{
	"HEAVY_SWORD": ItemHeavySword,
	"HEAT_SOURCE": ItemHeatSource,
	"FROST_HEART": ItemFrostHeart,
	"MOLTEN_CORE": ItemMoltenCore,
	"WOOD":        ItemWood,
	"BERRY":       ItemBerry,
	"MEAT":        ItemMeat,
	"FUR":         ItemFur,
	"ICE_CRYSTAL": ItemIceCrystal,
	"FIRE_ORE":    ItemFireOre,
}

var itemKindToString = map[ItemKind]string{
	ItemHeavySword: "HEAVY_SWORD",
	ItemHeatSource: "HEAT_SOURCE",
	ItemFrostHeart: "FROST_HEART",
	ItemMoltenCore: "MOLTEN_CORE",
	ItemWood:       "WOOD",
	ItemBerry:      "BERRY",
	ItemMeat:       "MEAT",
	ItemFur:        "FUR",
	ItemIceCrystal: "ICE_CRYSTAL",
	ItemFireOre:    "FIRE_ORE",
}

// ParseItemKind конвертирует строку (конфиг, дебаг) в ItemKind
func ParseItemKind(s string) ItemKind {
	if val, ok := itemStringToKind[strings.ToUpper(s)]; ok {
		return val
	}
	return ItemUnknown
}

func (k ItemKind) String() string {
	if val, ok := itemKindToString[k]; ok {
		return val
	}
	return "UNKNOWN"
}

// Pickable - можно ли подобрать предмет. Костер (HeatSource) стоит на месте.
func (k ItemKind) Pickable() bool {
	return k != ItemUnknown && k != ItemHeatSource
}

// ResourceKind - счетные стеки в инвентаре
type ResourceKind uint8

const (
	ResourceUnknown ResourceKind = iota
	ResourceWood
	ResourceFur
	ResourceIceCrystal
	ResourceFireOre
	ResourceCampfire
)

var resourceKindToString = map[ResourceKind]string{
	ResourceWood:       "wood",
	ResourceFur:        "fur",
	ResourceIceCrystal: "ice_crystal",
	ResourceFireOre:    "fire_ore",
	ResourceCampfire:   "campfire",
}

func (k ResourceKind) String() string {
	if val, ok := resourceKindToString[k]; ok {
		return val
	}
	return "unknown"
}

// EquipmentKind - уникальные разблокировки (флаги 0/1)
type EquipmentKind uint8

const (
	EquipNone EquipmentKind = iota
	EquipLeatherCoat
	EquipFrostHeart
	EquipMoltenCore
)

var equipmentKindToString = map[EquipmentKind]string{
	EquipLeatherCoat: "leather_coat",
	EquipFrostHeart:  "frost_heart",
	EquipMoltenCore:  "molten_core",
}

func (k EquipmentKind) String() string {
	if val, ok := equipmentKindToString[k]; ok {
		return val
	}
	return "none"
}

// ColdResistant - предметы, снижающие потерю тепла
func (k EquipmentKind) ColdResistant() bool {
	return k == EquipLeatherCoat || k == EquipFrostHeart
}

// WeaponKind - что игрок держит в руках (не больше одного)
type WeaponKind uint8

const (
	WeaponNone WeaponKind = iota
	WeaponHeavySword
)

func (w WeaponKind) String() string {
	if w == WeaponHeavySword {
		return "heavy_sword"
	}
	return "none"
}

// NodeKind - тип добываемого узла
type NodeKind uint8

const (
	NodeTree NodeKind = iota + 1
	NodeIceOre
	NodeFireOre
)

// Yield возвращает основной ресурс узла
func (k NodeKind) Yield() ItemKind {
	switch k {
	case NodeTree:
		return ItemWood
	case NodeIceOre:
		return ItemIceCrystal
	case NodeFireOre:
		return ItemFireOre
	}
	return ItemUnknown
}

// IsOre - руда разбивается с одного удара
func (k NodeKind) IsOre() bool {
	return k == NodeIceOre || k == NodeFireOre
}

func (k NodeKind) String() string {
	switch k {
	case NodeTree:
		return "tree"
	case NodeIceOre:
		return "ice_ore"
	case NodeFireOre:
		return "fire_ore"
	}
	return "unknown"
}

// Zone - климатическая зона
type Zone uint8

const (
	ZoneNone Zone = iota
	ZoneCold
	ZoneHeat
)

func (z Zone) String() string {
	switch z {
	case ZoneCold:
		return "cold"
	case ZoneHeat:
		return "heat"
	}
	return "none"
}
