package domain

import "testing"

func TestInventory_CraftCampfire(t *testing.T) {
	campfire := Recipes[RecipeCampfire]

	for wood := 0; wood <= 5; wood++ {
		inv := NewInventory()
		inv.Add(ResourceWood, wood)

		ok := inv.Craft(campfire)
		if ok != (wood >= 3) {
			t.Fatalf("wood=%d: Craft() = %v", wood, ok)
		}
		if ok {
			if inv.Count(ResourceWood) != wood-3 || inv.Count(ResourceCampfire) != 1 {
				t.Errorf("wood=%d: after craft wood=%d campfire=%d", wood, inv.Count(ResourceWood), inv.Count(ResourceCampfire))
			}
		} else {
			if inv.Count(ResourceWood) != wood || inv.Count(ResourceCampfire) != 0 {
				t.Errorf("wood=%d: failed craft mutated inventory", wood)
			}
		}
	}
}

func TestInventory_CraftUnlockOnce(t *testing.T) {
	coat := Recipes[RecipeLeatherCoat]
	inv := NewInventory()
	inv.Add(ResourceFur, 4)

	if !inv.Craft(coat) {
		t.Fatal("first coat must craft")
	}
	if !inv.Owns(EquipLeatherCoat) || inv.Count(ResourceFur) != 2 {
		t.Fatalf("unexpected state: coat=%v fur=%d", inv.Owns(EquipLeatherCoat), inv.Count(ResourceFur))
	}
	if inv.Craft(coat) {
		t.Error("coat already owned, craft must be rejected")
	}
	if inv.Count(ResourceFur) != 2 {
		t.Error("rejected craft consumed fur")
	}
}

func TestInventory_RemoveNeverNegative(t *testing.T) {
	inv := NewInventory()
	inv.Add(ResourceFur, 1)
	inv.Add(ResourceFur, -3)

	if inv.Remove(ResourceFur, 2) {
		t.Error("Remove above balance must fail")
	}
	if inv.Remove(ResourceFur, -1) {
		t.Error("negative Remove must fail")
	}
	if !inv.Remove(ResourceFur, 1) || inv.Count(ResourceFur) != 0 {
		t.Errorf("fur = %d", inv.Count(ResourceFur))
	}
}

func TestInventory_Unlock(t *testing.T) {
	inv := NewInventory()
	if !inv.Unlock(EquipFrostHeart) {
		t.Fatal("first unlock must report true")
	}
	if inv.Unlock(EquipFrostHeart) {
		t.Error("second unlock must report false")
	}
	inv.Unlock(EquipMoltenCore)
	if got := inv.ColdResistantCount(); got != 1 {
		t.Errorf("ColdResistantCount() = %d, want 1", got)
	}
}

func TestLookupRecipe(t *testing.T) {
	tests := []struct {
		input string
		want  RecipeID
		ok    bool
	}{
		{"campfire", RecipeCampfire, true},
		{"CAMPFIRE", RecipeCampfire, true},
		{"fire", RecipeCampfire, true},
		{"campfir", RecipeCampfire, true},
		{"leather-coat", RecipeLeatherCoat, true},
		{"coat", RecipeLeatherCoat, true},
		{"lether_coat", RecipeLeatherCoat, true},
		{"костр", RecipeCampfire, true},
		{"шубка", RecipeLeatherCoat, true},
		{"кот", RecipeUnknown, false}, // 3 правки до "костер": лимит считается в рунах, не в байтах
		{"sword", RecipeUnknown, false},
		{"", RecipeUnknown, false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r, ok := LookupRecipe(tt.input)
			if ok != tt.ok || r.ID != tt.want {
				t.Errorf("LookupRecipe(%q) = (%v, %v), want (%v, %v)", tt.input, r.ID, ok, tt.want, tt.ok)
			}
		})
	}
}
