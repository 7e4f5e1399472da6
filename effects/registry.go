// Package effects is the hook table for battle effects: each ability binds
// handlers to a fixed set of events, and the registry hands a dispatcher
// those handlers in priority order.
package effects

import (
	"cmp"
	"log/slog"
	"slices"

	"showdown-ssb/battle"
	"showdown-ssb/data"
)

type Event int

const (
	Start Event = iota
	SwitchOut
	Faint
	Damage
	DamagingHit
	SourceModifyDamage
	ModifyCritRatio
	ModifyMove
	ModifyAccuracy
	BasePower
	Boost
	AfterMoveSecondarySelf
	SetStatus
	TryAddVolatile
)

var eventNames = map[Event]string{
	Start:                  "Start",
	SwitchOut:              "SwitchOut",
	Faint:                  "Faint",
	Damage:                 "Damage",
	DamagingHit:            "DamagingHit",
	SourceModifyDamage:     "SourceModifyDamage",
	ModifyCritRatio:        "ModifyCritRatio",
	ModifyMove:             "ModifyMove",
	ModifyAccuracy:         "ModifyAccuracy",
	BasePower:              "BasePower",
	Boost:                  "Boost",
	AfterMoveSecondarySelf: "AfterMoveSecondarySelf",
	SetStatus:              "SetStatus",
	TryAddVolatile:         "TryAddVolatile",
}

func (e Event) String() string {
	if name, ok := eventNames[e]; ok {
		return name
	}
	return "Unknown"
}

type Result int

const (
	Continue Result = iota
	// Block stops the event: the status isn't set, the damage isn't dealt.
	Block
)

// Context is the slice of the battle handlers act through.
type Context interface {
	Add(kind string, args ...any)
	Debug(msg string)
	Boost(target *battle.Pokemon, boosts battle.BoostsTable)
	UseMove(id string, user *battle.Pokemon)
	Heal(target *battle.Pokemon, amount int) int
}

const modifierBase = 4096

// Args carries an event's participants and its relayed value.
type Args struct {
	Target *battle.Pokemon
	Source *battle.Pokemon
	Move   *data.Move
	// Effect is the ID of the status, volatile or condition involved.
	Effect string
	Boosts battle.BoostsTable
	// Value is the number being relayed: damage, crit ratio, accuracy, base power.
	Value float64

	modifier int
}

// ChainModify folds factor into the pending 4096-based modifier.
func (a *Args) ChainModify(factor float64) {
	if a.modifier == 0 {
		a.modifier = modifierBase
	}
	next := int(factor * modifierBase)
	a.modifier = (a.modifier*next + 2048) >> 12
}

// Modified applies the pending modifier to Value with 4096-based rounding.
func (a *Args) Modified() int {
	if a.modifier == 0 {
		return int(a.Value)
	}
	scaled := int(a.Value * float64(a.modifier))
	return (scaled + 2048 - 1) / modifierBase
}

// HandlerFunc runs for the Pokemon holding the effect.
type HandlerFunc func(ctx Context, holder *battle.Pokemon, args *Args) Result

type Handler struct {
	Event    Event
	Priority int
	SubOrder int
	Fn       HandlerFunc
}

type Ability struct {
	ID        string
	Name      string
	Desc      string
	ShortDesc string
	Gen       int
	Breakable bool
	// FractionalPriority shifts the holder within its move's priority bracket.
	FractionalPriority float64
	Handlers           []Handler
}

// Bound is a handler paired with the Pokemon it runs for.
type Bound struct {
	Holder  *battle.Pokemon
	Ability *Ability
	Handler Handler
}

type Registry struct {
	abilities map[string]*Ability
}

func NewRegistry(abilities ...*Ability) *Registry {
	r := &Registry{abilities: make(map[string]*Ability, len(abilities))}
	for _, a := range abilities {
		r.Register(a)
	}
	return r
}

// Default holds every ability defined in this package.
func Default() *Registry {
	return NewRegistry(Abilities()...)
}

func (r *Registry) Register(a *Ability) {
	r.abilities[data.ToID(a.Name)] = a
}

func (r *Registry) Ability(name string) (*Ability, bool) {
	a, ok := r.abilities[data.ToID(name)]
	return a, ok
}

// Handlers collects the handlers for ev across holders' abilities, highest
// priority first, then lowest sub-order; ties keep holder order.
func (r *Registry) Handlers(ev Event, holders ...*battle.Pokemon) []Bound {
	var bound []Bound
	for _, holder := range holders {
		if holder == nil {
			continue
		}
		ability, ok := r.abilities[holder.Ability]
		if !ok {
			continue
		}
		for _, h := range ability.Handlers {
			if h.Event == ev {
				bound = append(bound, Bound{Holder: holder, Ability: ability, Handler: h})
			}
		}
	}
	slices.SortStableFunc(bound, func(a, b Bound) int {
		if c := cmp.Compare(b.Handler.Priority, a.Handler.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.Handler.SubOrder, b.Handler.SubOrder)
	})
	return bound
}

// Run dispatches ev to holders in order. The first Block wins; otherwise any
// chained modifier is folded into args.Value.
func (r *Registry) Run(ctx Context, ev Event, args *Args, holders ...*battle.Pokemon) Result {
	for _, b := range r.Handlers(ev, holders...) {
		if b.Handler.Fn(ctx, b.Holder, args) == Block {
			slog.Debug("event blocked", "event", ev, "ability", b.Ability.ID, "pokemon", b.Holder.Name)
			return Block
		}
	}
	if args.modifier != 0 {
		args.Value = float64(args.Modified())
		args.modifier = 0
	}
	return Continue
}

func (r *Registry) FractionalPriority(p *battle.Pokemon) float64 {
	if a, ok := r.abilities[p.Ability]; ok {
		return a.FractionalPriority
	}
	return 0
}

// Attach runs an ability's Start handlers whenever b swaps a Pokemon's ability.
func (r *Registry) Attach(b *battle.Battle) {
	b.OnAbilityChange = func(p *battle.Pokemon, _, _ string) {
		r.Run(b, Start, &Args{Target: p}, p)
	}
}
