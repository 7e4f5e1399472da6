package effects

import (
	"showdown-ssb/battle"
)

// StrongWeathers can't be overridden by ordinary weather setters.
var StrongWeathers = []string{"desolateland", "primordialsea", "deltastream", "heavyhailstorm", "winterhail", "turbulence"}

// Abilities returns the custom abilities, one per staff set.
func Abilities() []*Ability {
	return []*Ability{
		aggression(),
		bestGen(),
		fairFight(),
		retaliation(),
		finalPrayer(),
		burnHeal(),
	}
}

// Brookeee
func aggression() *Ability {
	return &Ability{
		ID:        "aggression",
		Name:      "Aggression",
		Desc:      "This Pokemon's attack is raised by 1 stage after it is damaged by a move; half damage received at full HP.",
		ShortDesc: "+1 Atk whenever hit; half damage taken at full HP.",
		Gen:       8,
		Breakable: true,
		Handlers: []Handler{
			{Event: SourceModifyDamage, Fn: func(ctx Context, holder *battle.Pokemon, args *Args) Result {
				if holder.HP >= holder.MaxHP {
					ctx.Debug("Aggression weaken")
					args.ChainModify(0.5)
				}
				return Continue
			}},
			{Event: DamagingHit, Fn: func(ctx Context, holder *battle.Pokemon, _ *Args) Result {
				ctx.Boost(holder, battle.BoostsTable{"atk": 1})
				return Continue
			}},
		},
	}
}

// Genwunner
func bestGen() *Ability {
	return &Ability{
		ID:        "bestgen",
		Name:      "Best Gen",
		Desc:      "This Pokemon has +1 critical hit ratio; Blizzard has 90% accuracy; no recharge on KO; Special stats are combined.",
		ShortDesc: "+1 crit rate; 90% acc Blizzard; no recharge on KO; combined Special.",
		Gen:       8,
		Handlers: []Handler{
			{Event: ModifyCritRatio, Fn: func(_ Context, _ *battle.Pokemon, args *Args) Result {
				args.Value++
				return Continue
			}},
			{Event: ModifyMove, Fn: func(_ Context, _ *battle.Pokemon, args *Args) Result {
				if args.Move != nil && args.Move.ID == "blizzard" {
					args.Move.Accuracy = 90
				}
				return Continue
			}},
			{Event: Boost, Fn: func(_ Context, _ *battle.Pokemon, args *Args) Result {
				if args.Boosts == nil {
					return Continue
				}
				if spa := args.Boosts["spa"]; spa != 0 {
					args.Boosts["spd"] = spa
				}
				if spd := args.Boosts["spd"]; spd != 0 {
					args.Boosts["spa"] = spd
				}
				return Continue
			}},
			{Event: AfterMoveSecondarySelf, Fn: func(_ Context, holder *battle.Pokemon, args *Args) Result {
				if args.Target == nil || args.Target.Fainted || args.Target.HP <= 0 {
					holder.RemoveVolatile("mustrecharge")
				}
				return Continue
			}},
		},
	}
}

// Horrific17
func fairFight() *Ability {
	return &Ability{
		ID:        "fairfight",
		Name:      "Fair Fight",
		Desc:      "Sets up Magic Room, Haze and Fairy Lock on switch-in.",
		ShortDesc: "Magic Room, Haze and Fairy Lock on switch-in.",
		Gen:       8,
		Handlers: []Handler{
			{Event: Start, Fn: func(ctx Context, holder *battle.Pokemon, _ *Args) Result {
				ctx.UseMove("magicroom", holder)
				ctx.UseMove("haze", holder)
				ctx.UseMove("fairylock", holder)
				return Continue
			}},
		},
	}
}

// LandoriumZ
func retaliation() *Ability {
	return &Ability{
		ID:                 "retaliation",
		Name:               "Retaliation",
		Desc:               "This Pokemon moves last among Pokemon using the same or greater priority moves; evasiveness is doubled if confused, 1.25x otherwise; damage is doubled if not damaged.",
		ShortDesc:          "Moves last; 2x evasiveness if confused, 1.25x otherwise; 2x damage if not hit.",
		Gen:                8,
		Breakable:          true,
		FractionalPriority: -0.1,
		Handlers: []Handler{
			{Event: ModifyAccuracy, Priority: -1, Fn: func(ctx Context, holder *battle.Pokemon, args *Args) Result {
				if args.Value <= 0 {
					return Continue
				}
				if holder.HasVolatile("confusion") {
					ctx.Debug("Retaliation - decreasing accuracy")
					args.ChainModify(0.4)
				} else {
					args.ChainModify(0.8)
				}
				return Continue
			}},
			{Event: BasePower, Priority: 31, Fn: func(_ Context, holder *battle.Pokemon, args *Args) Result {
				if args.Move == nil {
					return Continue
				}
				if holder.DamagedThisTurnBy(args.Target) {
					args.Value = float64(args.Move.BasePower)
				} else {
					args.Value = float64(args.Move.BasePower * 2)
				}
				return Continue
			}},
		},
	}
}

// Mayie
func finalPrayer() *Ability {
	immune := func(ctx Context, holder *battle.Pokemon) {
		ctx.Add("-immune", holder, "[from] ability: Final Prayer")
	}
	return &Ability{
		ID:        "finalprayer",
		Name:      "Final Prayer",
		Desc:      "This Pokemon is immune to status ailments; uses Wish and Aqua Ring when switching in and Safeguard when switching out; Lunar Dance when knocked out.",
		ShortDesc: "Status immunity; Wish and Aqua Ring on switch-in, Safeguard on switch-out; Lunar Dance on KO.",
		Gen:       8,
		Breakable: true,
		Handlers: []Handler{
			{Event: SetStatus, Fn: func(ctx Context, holder *battle.Pokemon, args *Args) Result {
				if args.Move != nil && args.Move.Status != "" {
					immune(ctx, holder)
				}
				return Block
			}},
			{Event: TryAddVolatile, Fn: func(ctx Context, holder *battle.Pokemon, args *Args) Result {
				if args.Effect == "yawn" {
					immune(ctx, holder)
					return Block
				}
				return Continue
			}},
			{Event: Start, Fn: func(ctx Context, holder *battle.Pokemon, _ *Args) Result {
				ctx.UseMove("wish", holder)
				ctx.UseMove("aquaring", holder)
				return Continue
			}},
			{Event: SwitchOut, Fn: func(ctx Context, holder *battle.Pokemon, _ *Args) Result {
				ctx.UseMove("safeguard", holder)
				return Continue
			}},
			{Event: Faint, Fn: func(ctx Context, holder *battle.Pokemon, _ *Args) Result {
				ctx.UseMove("lunardance", holder)
				return Continue
			}},
		},
	}
}

// Omega
func burnHeal() *Ability {
	return &Ability{
		ID:        "burnheal",
		Name:      "Burn Heal",
		Desc:      "Heals 1/8 of max HP per turn when burned.",
		ShortDesc: "+1/8 mHP/turn when burned.",
		Gen:       8,
		Handlers: []Handler{
			{Event: Damage, Priority: 1, Fn: func(ctx Context, holder *battle.Pokemon, args *Args) Result {
				if args.Effect != "brn" {
					return Continue
				}
				ctx.Heal(holder, max(holder.BaseMaxHP/8, 1))
				return Block
			}},
		},
	}
}
