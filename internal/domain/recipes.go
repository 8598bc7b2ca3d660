package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

type RecipeID uint8

const (
	RecipeUnknown RecipeID = iota
	RecipeCampfire
	RecipeLeatherCoat
)

// Recipe - входы списываются целиком, выход либо стек, либо разблокировка
type Recipe struct {
	ID      RecipeID
	Name    string
	Title   string // для интерфейса
	Aliases []string
	Inputs  map[ResourceKind]int
	Outputs map[ResourceKind]int
	Unlocks EquipmentKind
}

// Recipes - весь список крафта
var Recipes = map[RecipeID]Recipe{
	RecipeCampfire: {
		ID:      RecipeCampfire,
		Name:    "campfire",
		Title:   "костер",
		Aliases: []string{"fire", "bonfire", "костер"},
		Inputs:  map[ResourceKind]int{ResourceWood: 3},
		Outputs: map[ResourceKind]int{ResourceCampfire: 1},
	},
	RecipeLeatherCoat: {
		ID:      RecipeLeatherCoat,
		Name:    "leather_coat",
		Title:   "кожаная куртка",
		Aliases: []string{"coat", "leather coat", "шуба"},
		Inputs:  map[ResourceKind]int{ResourceFur: 2},
		Unlocks: EquipLeatherCoat,
	},
}

func (id RecipeID) String() string {
	if r, ok := Recipes[id]; ok {
		return r.Name
	}
	return "unknown"
}

// LookupRecipe ищет рецепт по имени: точное совпадение, алиас, затем опечатка
// в пределах levenshteinLimit.
func LookupRecipe(name string) (Recipe, bool) {
	in := strings.ToLower(strings.TrimSpace(name))
	in = strings.ReplaceAll(in, "-", "_")
	if in == "" {
		return Recipe{}, false
	}

	// 1. Точное имя или алиас
	for _, r := range Recipes {
		if r.Name == in {
			return r, true
		}
		for _, alias := range r.Aliases {
			if alias == in {
				return r, true
			}
		}
	}

	// 2. Опечатки. Короткий ввод не трогаем, слишком много ложных совпадений.
	if utf8.RuneCountInString(in) < 3 {
		return Recipe{}, false
	}
	best := RecipeUnknown
	bestDist := 0
	for _, id := range []RecipeID{RecipeCampfire, RecipeLeatherCoat} {
		r := Recipes[id]
		for _, cand := range append([]string{r.Name}, r.Aliases...) {
			dist := levenshtein.ComputeDistance(in, cand)
			if dist > levenshteinLimit(utf8.RuneCountInString(cand)) {
				continue
			}
			if best == RecipeUnknown || dist < bestDist {
				best = id
				bestDist = dist
			}
		}
	}
	if best == RecipeUnknown {
		return Recipe{}, false
	}
	return Recipes[best], true
}

// levenshteinLimit - допустимое число правок для кандидата длиной length (в рунах)
func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}
