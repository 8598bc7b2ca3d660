package domain

// Inventory - счетные стеки ресурсов, флаги уникальных предметов и оружие в руках.
// Инвариант: счетчики никогда не отрицательны.
type Inventory struct {
	counts    map[ResourceKind]int
	equipment map[EquipmentKind]bool
	weapon    WeaponKind
}

func NewInventory() *Inventory {
	return &Inventory{
		counts:    make(map[ResourceKind]int),
		equipment: make(map[EquipmentKind]bool),
	}
}

// Count возвращает количество ресурса
func (inv *Inventory) Count(kind ResourceKind) int {
	return inv.counts[kind]
}

// Has проверяет, хватает ли ресурса
func (inv *Inventory) Has(kind ResourceKind, n int) bool {
	return inv.counts[kind] >= n
}

// Add добавляет ресурс. Неположительные значения игнорируются.
func (inv *Inventory) Add(kind ResourceKind, n int) {
	if n <= 0 || kind == ResourceUnknown {
		return
	}
	inv.counts[kind] += n
}

// Remove списывает ресурс. Если не хватает, ничего не меняет и возвращает false.
func (inv *Inventory) Remove(kind ResourceKind, n int) bool {
	if n < 0 || inv.counts[kind] < n {
		return false
	}
	inv.counts[kind] -= n
	if inv.counts[kind] == 0 {
		delete(inv.counts, kind)
	}
	return true
}

// Unlock выставляет флаг предмета. Возвращает true, только если флага еще не было.
func (inv *Inventory) Unlock(kind EquipmentKind) bool {
	if kind == EquipNone || inv.equipment[kind] {
		return false
	}
	inv.equipment[kind] = true
	return true
}

// Owns проверяет флаг предмета
func (inv *Inventory) Owns(kind EquipmentKind) bool {
	return inv.equipment[kind]
}

// ColdResistantCount - сколько предметов с защитой от холода есть
func (inv *Inventory) ColdResistantCount() int {
	n := 0
	for kind, owned := range inv.equipment {
		if owned && kind.ColdResistant() {
			n++
		}
	}
	return n
}

// Weapon возвращает оружие в руках
func (inv *Inventory) Weapon() WeaponKind {
	return inv.weapon
}

// Hold берет оружие в руки (старое считается уничтоженным)
func (inv *Inventory) Hold(w WeaponKind) {
	inv.weapon = w
}

// CanCraft проверяет все входы рецепта без изменений
func (inv *Inventory) CanCraft(r Recipe) bool {
	if r.Unlocks != EquipNone && inv.equipment[r.Unlocks] {
		return false
	}
	for kind, n := range r.Inputs {
		if inv.counts[kind] < n {
			return false
		}
	}
	return true
}

// Craft атомарно списывает входы и начисляет выход.
// При нехватке чего-либо инвентарь не меняется.
func (inv *Inventory) Craft(r Recipe) bool {
	// 1. Проверка
	if !inv.CanCraft(r) {
		return false
	}

	// 2. Списание
	for kind, n := range r.Inputs {
		inv.Remove(kind, n)
	}

	// 3. Начисление
	for kind, n := range r.Outputs {
		inv.Add(kind, n)
	}
	inv.Unlock(r.Unlocks)
	return true
}

// Counts возвращает копию счетчиков (для снапшота)
func (inv *Inventory) Counts() map[ResourceKind]int {
	out := make(map[ResourceKind]int, len(inv.counts))
	for k, v := range inv.counts {
		out[k] = v
	}
	return out
}

// Equipment возвращает список разблокированных предметов
func (inv *Inventory) Equipment() []EquipmentKind {
	out := make([]EquipmentKind, 0, len(inv.equipment))
	for _, kind := range []EquipmentKind{EquipLeatherCoat, EquipFrostHeart, EquipMoltenCore} {
		if inv.equipment[kind] {
			out = append(out, kind)
		}
	}
	return out
}
