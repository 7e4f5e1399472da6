// Package forme re-configures a live Pokemon into a new set mid-battle:
// species, stats, item and moves change while the HP fraction and each
// move's PP fraction carry over.
package forme

import (
	"log/slog"
	"math"

	"showdown-ssb/battle"
	"showdown-ssb/data"
	"showdown-ssb/sets"
)

// Random is the battle's seeded random source. Every draw a set change makes
// goes through it so battles replay from their seed.
type Random interface {
	Random(n int) int
	RandomChance(numerator, denominator int) bool
}

type Dex interface {
	Species(name string) (data.Species, bool)
	Move(name string) (data.Move, bool)
	Ability(name string) (data.Ability, bool)
}

// Battle is what a set change needs from the battle it runs in.
type Battle interface {
	Random
	FormeChange(p *battle.Pokemon, species string, permanent bool)
	SetAbility(p *battle.Pokemon, ability string)
	SetItem(p *battle.Pokemon, item string)
	Add(kind string, args ...any)
}

type Changer struct {
	battle Battle
	dex    Dex
}

func NewChanger(b Battle, dex Dex) *Changer {
	return &Changer{battle: b, dex: dex}
}

// ApplySet turns p into set. A Pokemon that is already transformed is left
// untouched. Protocol lines go out in the order replace, -heal, -ability,
// message; replace only when shininess flipped.
func (c *Changer) ApplySet(p *battle.Pokemon, set sets.Set, changeAbility bool) {
	if p.Transformed() {
		slog.Debug("set change skipped, already transformed", "pokemon", p.Name, "set", set.Name)
		return
	}

	p.Set.EVs = sets.NormalizeEVs(set.EVs)
	p.Set.IVs = sets.NormalizeIVs(set.IVs)
	if nature, ok := sample(c.battle, set.Nature); ok {
		p.Set.Nature = nature
	}
	wasShiny := p.Set.Shiny
	p.Set.Shiny = rollShiny(c.battle, set.Shiny)

	percent := hpFraction(p)
	if target, ok := c.dex.Species(set.Species); ok && target.FixedHP() {
		percent = 1
	}

	c.battle.FormeChange(p, set.Species, true)
	if wasShiny != p.Set.Shiny {
		c.battle.Add("replace", p, p.Details())
	}
	if changeAbility {
		c.battle.SetAbility(p, set.Ability)
	}

	p.BaseMaxHP = battle.SpeciesMaxHP(p.Species, p.Set, p.Level)
	p.HP = int(math.Round(float64(p.BaseMaxHP) * percent))
	p.MaxHP = p.BaseMaxHP
	c.battle.Add("-heal", p, p.Health(), "[silent]")

	if p.Item != "" {
		if item, ok := sample(c.battle, set.Item); ok {
			id := data.ToID(item)
			if id != p.Item && id != p.LastItem {
				c.battle.SetItem(p, item)
			}
		}
	}

	if !p.Corrupted {
		moves := c.ChangeMoves(p, set.AllMoves())
		// The baseline shares the active loadout's backing array.
		p.MoveSlots = moves
		p.BaseMoveSlots = moves
	}

	c.battle.Add("-ability", p, c.abilityName(p))
	c.battle.Add("message", p.Name+" changed form!")

	slog.Debug("applied set",
		"pokemon", p.Name,
		"set", set.Name,
		"species", p.Species.ID,
		"hp", p.HP,
		"maxhp", p.MaxHP,
		"moves", len(p.MoveSlots),
	)
}

// ChangeMoves builds the loadout for the given move pools. The n-th move
// that resolves inherits the PP fraction of p's n-th current slot; slots
// missing from the snapshot count as full. Unknown moves are dropped and do
// not consume a fraction.
func (c *Changer) ChangeMoves(p *battle.Pokemon, pools []sets.OneOf) []battle.MoveSlot {
	carryOver := make([]float64, 0, max(len(p.MoveSlots), 4))
	for _, slot := range p.MoveSlots {
		carryOver = append(carryOver, ppRatio(slot))
	}
	for len(carryOver) < 4 {
		carryOver = append(carryOver, 1)
	}

	result := make([]battle.MoveSlot, 0, len(pools))
	slot := 0
	for _, pool := range pools {
		name, ok := sample(c.battle, pool)
		if !ok {
			continue
		}
		move, ok := c.dex.Move(name)
		if !ok {
			slog.Debug("skipping unknown move", "pokemon", p.Name, "move", name)
			continue
		}

		ratio := 1.0
		if slot < len(carryOver) {
			ratio = carryOver[slot]
		}
		boost := 1.0
		if battle.PPBoostable(move) {
			boost = 8.0 / 5.0
		}

		result = append(result, battle.MoveSlot{
			Move:   move.Name,
			ID:     move.ID,
			PP:     int(math.Floor(float64(move.PP) * boost * ratio)),
			MaxPP:  battle.MaxPP(move),
			Target: move.Target,
		})
		slot++
	}
	return result
}

func (c *Changer) abilityName(p *battle.Pokemon) string {
	if a, ok := c.dex.Ability(p.Ability); ok {
		return a.Name
	}
	return p.Ability
}

func hpFraction(p *battle.Pokemon) float64 {
	if p.BaseMaxHP <= 0 {
		return 1
	}
	return float64(p.HP) / float64(p.BaseMaxHP)
}

func ppRatio(slot battle.MoveSlot) float64 {
	if slot.MaxPP <= 0 {
		return 1
	}
	return float64(slot.PP) / float64(slot.MaxPP)
}

// sample picks one entry of pool. Single-entry pools don't draw.
func sample(r Random, pool sets.OneOf) (string, bool) {
	switch len(pool) {
	case 0:
		return "", false
	case 1:
		return pool[0], true
	}
	return pool[r.Random(len(pool))], true
}

func rollShiny(r Random, s sets.Shininess) bool {
	if s.Odds > 0 {
		return r.RandomChance(1, s.Odds)
	}
	return s.Shiny
}
