package forme

import (
	"showdown-ssb/battle"
	"showdown-ssb/sets"
)

// Build creates a fresh, untransformed Pokemon from set on side, resolving
// every pool with the battle's random source.
func Build(b *battle.Battle, set sets.Set, side string) (*battle.Pokemon, error) {
	moves := make([]string, 0, len(set.Moves)+1)
	for _, pool := range set.AllMoves() {
		if move, ok := sample(b, pool); ok {
			moves = append(moves, move)
		}
	}
	item, _ := sample(b, set.Item)
	nature, _ := sample(b, set.Nature)

	return b.NewPokemon(battle.Options{
		Name:    set.Name,
		Side:    side,
		Species: set.Species,
		Level:   set.Level,
		Gender:  set.Gender,
		Ability: set.Ability,
		Item:    item,
		Nature:  nature,
		Shiny:   rollShiny(b, set.Shiny),
		EVs:     sets.NormalizeEVs(set.EVs),
		IVs:     sets.NormalizeIVs(set.IVs),
		Moves:   moves,
	})
}
