package battle

import (
	"fmt"
	"log/slog"
	"strings"

	"showdown-ssb/data"
)

// Battle is the context a set change runs in: it owns the random source, the
// reference dex and the append-only protocol log.
type Battle struct {
	dex  *data.Dex
	prng *PRNG
	log  []string

	// OnAbilityChange, when set, runs after SetAbility swaps a Pokemon's ability.
	OnAbilityChange func(p *Pokemon, from, to string)
}

func New(dex *data.Dex, seed int64) *Battle {
	return &Battle{
		dex:  dex,
		prng: NewPRNG(seed),
	}
}

func (b *Battle) Dex() *data.Dex {
	return b.dex
}

func (b *Battle) Seed() int64 {
	return b.prng.Seed()
}

func (b *Battle) Random(n int) int {
	return b.prng.Random(n)
}

func (b *Battle) RandomChance(numerator, denominator int) bool {
	return b.prng.RandomChance(numerator, denominator)
}

// Add appends a protocol line "|kind|arg|arg...". Pokemon arguments render
// as their ident.
func (b *Battle) Add(kind string, args ...any) {
	parts := make([]string, 0, len(args)+1)
	parts = append(parts, kind)
	for _, arg := range args {
		switch v := arg.(type) {
		case *Pokemon:
			parts = append(parts, v.Ident())
		case string:
			parts = append(parts, v)
		default:
			parts = append(parts, fmt.Sprint(v))
		}
	}
	b.log = append(b.log, "|"+strings.Join(parts, "|"))
}

// Log returns a copy of the protocol lines emitted so far.
func (b *Battle) Log() []string {
	out := make([]string, len(b.log))
	copy(out, b.log)
	return out
}

func (b *Battle) Debug(msg string) {
	slog.Debug(msg, "seed", b.Seed())
}

func (b *Battle) AddPlayer(side, name string) {
	b.Add("player", side, name, "")
}

func (b *Battle) SwitchIn(p *Pokemon) {
	b.Add("switch", p, p.Details(), p.Health())
}

// FormeChange swaps p's species. A permanent change is announced with
// detailschange and latches p into the Transformed state.
func (b *Battle) FormeChange(p *Pokemon, species string, permanent bool) {
	s, ok := b.dex.Species(species)
	if !ok {
		slog.Warn("forme change to unknown species", "pokemon", p.Name, "species", species)
	} else {
		p.Species = s
	}
	if !permanent {
		return
	}
	p.State = Transformed
	b.Add("detailschange", p, p.Details())
	slog.Debug("forme change", "pokemon", p.Name, "species", p.Species.ID)
}

func (b *Battle) SetAbility(p *Pokemon, ability string) {
	id := data.ToID(ability)
	if id == "" {
		return
	}
	old := p.Ability
	p.Ability = id
	if b.OnAbilityChange != nil && old != id {
		b.OnAbilityChange(p, old, id)
	}
}

// AbilityName resolves p's ability to its display name, falling back to the ID.
func (b *Battle) AbilityName(p *Pokemon) string {
	if a, ok := b.dex.Ability(p.Ability); ok {
		return a.Name
	}
	return p.Ability
}

func (b *Battle) SetItem(p *Pokemon, item string) {
	id := data.ToID(item)
	old := p.Item
	p.Item = id
	slog.Debug("item change", "pokemon", p.Name, "from", old, "to", id)
}

// TakeItem removes p's item and remembers it as the last item.
func (b *Battle) TakeItem(p *Pokemon) string {
	old := p.Item
	if old == "" {
		return ""
	}
	p.LastItem = old
	p.Item = ""
	return old
}

// Boost applies stage changes clamped to [-6, 6] and logs the effective delta.
func (b *Battle) Boost(target *Pokemon, boosts BoostsTable) {
	if target.Boosts == nil {
		target.Boosts = make(BoostsTable)
	}
	for _, id := range BoostIDs {
		delta, ok := boosts[id]
		if !ok || delta == 0 {
			continue
		}
		before := target.Boosts[id]
		after := min(max(before+delta, -6), 6)
		target.Boosts[id] = after
		switch applied := after - before; {
		case applied > 0:
			b.Add("-boost", target, id, applied)
		case applied < 0:
			b.Add("-unboost", target, id, -applied)
		}
	}
}

// Heal restores up to amount HP and returns what was actually healed.
func (b *Battle) Heal(target *Pokemon, amount int) int {
	if target.Fainted || target.HP <= 0 || amount <= 0 || target.HP >= target.MaxHP {
		return 0
	}
	healed := min(amount, target.MaxHP-target.HP)
	target.HP += healed
	b.Add("-heal", target, target.Health())
	return healed
}

// UseMove announces user executing the move id. Damage and secondary effects
// are resolved by the turn engine, not here.
func (b *Battle) UseMove(id string, user *Pokemon) {
	move, ok := b.dex.Move(id)
	if !ok {
		slog.Warn("use of unknown move", "pokemon", user.Name, "move", id)
		return
	}
	b.Add("move", user, move.Name, "")
}

// Options describes a freshly built Pokemon.
type Options struct {
	Name    string
	Side    string
	Species string
	Level   int
	Gender  string
	Ability string
	Item    string
	Nature  string
	Shiny   bool
	EVs     data.StatsTable
	IVs     data.StatsTable
	Moves   []string
}

// NewPokemon builds a Pokemon at full HP and full PP. Unknown moves are left out.
func (b *Battle) NewPokemon(opts Options) (*Pokemon, error) {
	species, ok := b.dex.Species(opts.Species)
	if !ok {
		return nil, fmt.Errorf("%w: %s", data.ErrUnknownSpecies, opts.Species)
	}
	level := opts.Level
	if level <= 0 {
		level = 100
	}

	p := &Pokemon{
		Name:     opts.Name,
		Side:     opts.Side,
		Position: "a",
		Species:  species,
		Ability:  data.ToID(opts.Ability),
		Item:     data.ToID(opts.Item),
		Level:    level,
		Gender:   opts.Gender,
		Set: SetInfo{
			EVs:    opts.EVs,
			IVs:    opts.IVs,
			Nature: opts.Nature,
			Shiny:  opts.Shiny,
		},
		Boosts:    make(BoostsTable),
		Volatiles: make(map[string]bool),
	}
	p.BaseMaxHP = SpeciesMaxHP(species, p.Set, level)
	p.MaxHP = p.BaseMaxHP
	p.HP = p.MaxHP

	for _, name := range opts.Moves {
		move, ok := b.dex.Move(name)
		if !ok {
			slog.Warn("skipping unknown move", "pokemon", opts.Name, "move", name)
			continue
		}
		p.MoveSlots = append(p.MoveSlots, MoveSlot{
			Move:   move.Name,
			ID:     move.ID,
			PP:     MaxPP(move),
			MaxPP:  MaxPP(move),
			Target: move.Target,
		})
	}
	p.BaseMoveSlots = p.MoveSlots
	return p, nil
}
