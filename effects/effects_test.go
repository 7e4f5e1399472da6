package effects

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showdown-ssb/battle"
	"showdown-ssb/data"
)

func newHolder(t *testing.T, b *battle.Battle, name, species, ability string) *battle.Pokemon {
	t.Helper()
	p, err := b.NewPokemon(battle.Options{
		Name:    name,
		Side:    "p1",
		Species: species,
		Ability: ability,
		IVs:     data.Uniform(31),
	})
	require.NoError(t, err)
	return p
}

func move(t *testing.T, id string) *data.Move {
	t.Helper()
	m, ok := data.Default().Move(id)
	require.True(t, ok, id)
	return &m
}

func TestRegistry_Lookup(t *testing.T) {
	r := Default()
	for _, name := range []string{"Aggression", "Best Gen", "Fair Fight", "Retaliation", "Final Prayer", "Burn Heal"} {
		a, ok := r.Ability(name)
		require.True(t, ok, name)
		assert.Equal(t, name, a.Name)
		assert.Equal(t, data.ToID(name), a.ID)
	}
	_, ok := r.Ability("Pressure")
	assert.False(t, ok)
}

func TestRegistry_HandlerOrder(t *testing.T) {
	var order []string
	record := func(tag string) HandlerFunc {
		return func(Context, *battle.Pokemon, *Args) Result {
			order = append(order, tag)
			return Continue
		}
	}
	r := NewRegistry(
		&Ability{Name: "Low", Handlers: []Handler{{Event: Start, Priority: -1, Fn: record("low")}}},
		&Ability{Name: "High", Handlers: []Handler{
			{Event: Start, Priority: 5, SubOrder: 2, Fn: record("high-2")},
			{Event: Start, Priority: 5, SubOrder: 1, Fn: record("high-1")},
			{Event: Faint, Priority: 99, Fn: record("faint")},
		}},
		&Ability{Name: "Mid", Handlers: []Handler{{Event: Start, Fn: record("mid")}}},
	)

	b := battle.New(data.Default(), 1)
	low := newHolder(t, b, "A", "Gengar", "Low")
	high := newHolder(t, b, "B", "Gengar", "High")
	mid := newHolder(t, b, "C", "Gengar", "Mid")
	mid2 := newHolder(t, b, "D", "Gengar", "Mid")

	bound := r.Handlers(Start, low, high, mid, nil, mid2)
	require.Len(t, bound, 5)
	assert.Same(t, mid, bound[2].Holder)
	assert.Same(t, mid2, bound[3].Holder)

	assert.Equal(t, Continue, r.Run(b, Start, &Args{}, low, high, mid))
	assert.Equal(t, []string{"high-1", "high-2", "mid", "low"}, order)
}

func TestChainModify(t *testing.T) {
	args := &Args{Value: 100}
	args.ChainModify(0.5)
	assert.Equal(t, 50, args.Modified())

	args = &Args{Value: 90}
	args.ChainModify(0.8)
	assert.Equal(t, 72, args.Modified())

	args = &Args{Value: 77}
	assert.Equal(t, 77, args.Modified())
}

func TestAggression(t *testing.T) {
	b := battle.New(data.Default(), 1)
	r := Default()
	holder := newHolder(t, b, "Brookeee", "Dusknoir", "Aggression")

	args := &Args{Value: 120}
	r.Run(b, SourceModifyDamage, args, holder)
	assert.Equal(t, 60.0, args.Value)

	holder.HP--
	args = &Args{Value: 120}
	r.Run(b, SourceModifyDamage, args, holder)
	assert.Equal(t, 120.0, args.Value)

	r.Run(b, DamagingHit, &Args{}, holder)
	assert.Equal(t, 1, holder.Boosts["atk"])
	assert.Equal(t, []string{"|-boost|p1a: Brookeee|atk|1"}, b.Log())
}

func TestBestGen(t *testing.T) {
	b := battle.New(data.Default(), 1)
	r := Default()
	holder := newHolder(t, b, "Genwunner", "Alakazam", "Best Gen")

	crit := &Args{Value: 0}
	r.Run(b, ModifyCritRatio, crit, holder)
	assert.Equal(t, 1.0, crit.Value)

	blizzard := move(t, "blizzard")
	r.Run(b, ModifyMove, &Args{Move: blizzard}, holder)
	assert.Equal(t, 90, blizzard.Accuracy)

	psychic := move(t, "psychic")
	r.Run(b, ModifyMove, &Args{Move: psychic}, holder)
	assert.Equal(t, 100, psychic.Accuracy)

	boosts := battle.BoostsTable{"spa": 2}
	r.Run(b, Boost, &Args{Boosts: boosts}, holder)
	assert.Equal(t, battle.BoostsTable{"spa": 2, "spd": 2}, boosts)

	boosts = battle.BoostsTable{"spd": -1}
	r.Run(b, Boost, &Args{Boosts: boosts}, holder)
	assert.Equal(t, battle.BoostsTable{"spa": -1, "spd": -1}, boosts)

	foe := newHolder(t, b, "Foe", "Snorlax", "Thick Fat")
	holder.AddVolatile("mustrecharge")
	r.Run(b, AfterMoveSecondarySelf, &Args{Source: holder, Target: foe}, holder)
	assert.True(t, holder.HasVolatile("mustrecharge"))

	foe.HP = 0
	r.Run(b, AfterMoveSecondarySelf, &Args{Source: holder, Target: foe}, holder)
	assert.False(t, holder.HasVolatile("mustrecharge"))
}

func TestFairFight_OnAbilityChange(t *testing.T) {
	b := battle.New(data.Default(), 1)
	r := Default()
	r.Attach(b)
	holder := newHolder(t, b, "Horrific17", "Giratina-Origin", "Levitate")

	b.SetAbility(holder, "Fair Fight")

	assert.Equal(t, []string{
		"|move|p1a: Horrific17|Magic Room|",
		"|move|p1a: Horrific17|Haze|",
		"|move|p1a: Horrific17|Fairy Lock|",
	}, b.Log())
}

func TestRetaliation(t *testing.T) {
	b := battle.New(data.Default(), 1)
	r := Default()
	holder := newHolder(t, b, "LandoriumZ", "Swampert", "Retaliation")
	foe := newHolder(t, b, "Foe", "Gengar", "Cursed Body")

	assert.Equal(t, -0.1, r.FractionalPriority(holder))
	assert.Equal(t, 0.0, r.FractionalPriority(foe))

	acc := &Args{Value: 90}
	r.Run(b, ModifyAccuracy, acc, holder)
	assert.Equal(t, 72.0, acc.Value)

	holder.AddVolatile("confusion")
	acc = &Args{Value: 100}
	r.Run(b, ModifyAccuracy, acc, holder)
	assert.Equal(t, 40.0, acc.Value)

	never := &Args{Value: 0}
	r.Run(b, ModifyAccuracy, never, holder)
	assert.Equal(t, 0.0, never.Value)

	eq := move(t, "earthquake")
	bp := &Args{Target: foe, Move: eq}
	r.Run(b, BasePower, bp, holder)
	assert.Equal(t, 200.0, bp.Value)

	holder.AttackedBy = append(holder.AttackedBy, battle.Attack{Source: foe, Damage: 40, ThisTurn: true})
	bp = &Args{Target: foe, Move: eq}
	r.Run(b, BasePower, bp, holder)
	assert.Equal(t, 100.0, bp.Value)
}

func TestFinalPrayer(t *testing.T) {
	b := battle.New(data.Default(), 1)
	r := Default()
	holder := newHolder(t, b, "Mayie", "Togekiss", "Final Prayer")

	res := r.Run(b, SetStatus, &Args{Effect: "par", Move: move(t, "thunderwave")}, holder)
	assert.Equal(t, Block, res)
	res = r.Run(b, SetStatus, &Args{Effect: "tox"}, holder)
	assert.Equal(t, Block, res)

	assert.Equal(t, Block, r.Run(b, TryAddVolatile, &Args{Effect: "yawn"}, holder))
	assert.Equal(t, Continue, r.Run(b, TryAddVolatile, &Args{Effect: "confusion"}, holder))

	r.Run(b, Start, &Args{}, holder)
	r.Run(b, SwitchOut, &Args{}, holder)
	r.Run(b, Faint, &Args{}, holder)

	assert.Equal(t, []string{
		"|-immune|p1a: Mayie|[from] ability: Final Prayer",
		"|-immune|p1a: Mayie|[from] ability: Final Prayer",
		"|move|p1a: Mayie|Wish|",
		"|move|p1a: Mayie|Aqua Ring|",
		"|move|p1a: Mayie|Safeguard|",
		"|move|p1a: Mayie|Lunar Dance|",
	}, b.Log())
}

func TestBurnHeal(t *testing.T) {
	b := battle.New(data.Default(), 1)
	r := Default()
	holder := newHolder(t, b, "Omega", "Blissey", "Burn Heal")
	require.Equal(t, 651, holder.BaseMaxHP)
	holder.HP = 300

	assert.Equal(t, Block, r.Run(b, Damage, &Args{Effect: "brn", Value: 40}, holder))
	assert.Equal(t, 381, holder.HP)

	assert.Equal(t, Continue, r.Run(b, Damage, &Args{Effect: "psn", Value: 40}, holder))
	assert.Equal(t, 381, holder.HP)
}

func TestEventString(t *testing.T) {
	assert.Equal(t, "BasePower", BasePower.String())
	assert.Equal(t, "Unknown", Event(999).String())
	assert.Len(t, StrongWeathers, 6)
}
