package battle

import "showdown-ssb/data"

// CalcMaxHP applies the HP stat formula:
// floor(floor(2*base + iv + floor(ev/4) + 100) * level / 100 + 10).
func CalcMaxHP(base, iv, ev, level int) int {
	return (2*base+iv+ev/4+100)*level/100 + 10
}

// SpeciesMaxHP is CalcMaxHP honouring species with a pinned max HP.
func SpeciesMaxHP(species data.Species, set SetInfo, level int) int {
	if species.FixedHP() {
		return species.MaxHP
	}
	return CalcMaxHP(species.BaseStats.HP, set.IVs.HP, set.EVs.HP, level)
}

// PPBoostable reports whether PP Ups apply to the move. Z-moves and moves
// flagged noPPBoosts keep their base PP.
func PPBoostable(move data.Move) bool {
	return !move.NoPPBoosts && !move.IsZ
}

// MaxPP is the fully PP-Upped ceiling for move.
func MaxPP(move data.Move) int {
	if !PPBoostable(move) {
		return move.PP
	}
	return move.PP * 8 / 5
}
