package battle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showdown-ssb/data"
)

func newTestPokemon(t *testing.T, b *Battle, species string, moves ...string) *Pokemon {
	t.Helper()
	p, err := b.NewPokemon(Options{
		Name:    "Tester",
		Side:    "p1",
		Species: species,
		Level:   100,
		IVs:     data.Uniform(31),
		Moves:   moves,
	})
	require.NoError(t, err, "NewPokemon(%s)", species)
	return p
}

func TestCalcMaxHP(t *testing.T) {
	tests := []struct {
		name                string
		base, iv, ev, level int
		want                int
	}{
		{"alakazam max", 55, 31, 252, 100, 314},
		{"alakazam no evs", 55, 31, 0, 100, 251},
		{"blissey max", 255, 31, 252, 100, 714},
		{"level 50", 100, 31, 0, 50, 175},
		{"ev floor", 55, 31, 7, 100, 252},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CalcMaxHP(tt.base, tt.iv, tt.ev, tt.level))
		})
	}
}

func TestMaxPP(t *testing.T) {
	d := data.Default()
	for _, tt := range []struct {
		move string
		want int
	}{
		{"Shadow Ball", 24},
		{"Recover", 8},
		{"Sketch", 1},
		{"Catastropika", 1},
		{"Shadow Sneak", 48},
	} {
		move, ok := d.Move(tt.move)
		require.True(t, ok, tt.move)
		assert.Equal(t, tt.want, MaxPP(move), tt.move)
	}
}

func TestPRNG_Deterministic(t *testing.T) {
	a, b := NewPRNG(42), NewPRNG(42)
	for range 100 {
		assert.Equal(t, a.Random(1000), b.Random(1000))
	}
	assert.Equal(t, int64(42), a.Seed())

	assert.Equal(t, 0, a.Random(0))
	assert.False(t, a.RandomChance(1, 0))
	assert.True(t, a.RandomChance(1, 1))
	assert.False(t, a.RandomChance(0, 5))
}

func TestNewSeed(t *testing.T) {
	_, err := NewSeed()
	require.NoError(t, err)
}

func TestNewPokemon(t *testing.T) {
	b := New(data.Default(), 1)

	p := newTestPokemon(t, b, "Alakazam", "Psychic", "Recover", "nonsense")
	assert.Equal(t, 251, p.MaxHP)
	assert.Equal(t, p.MaxHP, p.HP)
	assert.Equal(t, p.MaxHP, p.BaseMaxHP)
	require.Len(t, p.MoveSlots, 2)
	assert.Equal(t, MoveSlot{Move: "Psychic", ID: "psychic", PP: 16, MaxPP: 16, Target: "normal"}, p.MoveSlots[0])
	assert.Equal(t, Normal, p.State)

	shedinja := newTestPokemon(t, b, "Shedinja")
	assert.Equal(t, 1, shedinja.MaxHP)

	_, err := b.NewPokemon(Options{Species: "Missingno"})
	assert.ErrorIs(t, err, data.ErrUnknownSpecies)
}

func TestDetails(t *testing.T) {
	b := New(data.Default(), 1)
	p := newTestPokemon(t, b, "Alakazam")
	assert.Equal(t, "Alakazam", p.Details())

	p.Level = 84
	p.Gender = "F"
	p.Set.Shiny = true
	assert.Equal(t, "Alakazam, L84, F, shiny", p.Details())
	assert.Equal(t, "p1a: Tester", p.Ident())
}

func TestFormeChange(t *testing.T) {
	b := New(data.Default(), 1)
	p := newTestPokemon(t, b, "Dusclops")

	b.FormeChange(p, "Dusknoir", false)
	assert.Equal(t, "Dusknoir", p.Species.Name)
	assert.False(t, p.Transformed())
	assert.Empty(t, b.Log())

	b.FormeChange(p, "Gengar", true)
	assert.Equal(t, "Gengar", p.Species.Name)
	assert.True(t, p.Transformed())
	assert.Equal(t, []string{"|detailschange|p1a: Tester|Gengar"}, b.Log())
}

func TestSetAbility_Hook(t *testing.T) {
	b := New(data.Default(), 1)
	p := newTestPokemon(t, b, "Alakazam")
	p.Ability = "synchronize"

	var calls []string
	b.OnAbilityChange = func(_ *Pokemon, from, to string) {
		calls = append(calls, from+">"+to)
	}
	b.SetAbility(p, "Best Gen")
	b.SetAbility(p, "bestgen")
	b.SetAbility(p, "")

	assert.Equal(t, "bestgen", p.Ability)
	assert.Equal(t, []string{"synchronize>bestgen"}, calls)
	assert.Equal(t, "Best Gen", b.AbilityName(p))
}

func TestItems(t *testing.T) {
	b := New(data.Default(), 1)
	p := newTestPokemon(t, b, "Alakazam")

	b.SetItem(p, "Life Orb")
	assert.Equal(t, "lifeorb", p.Item)

	assert.Equal(t, "lifeorb", b.TakeItem(p))
	assert.Empty(t, p.Item)
	assert.Equal(t, "lifeorb", p.LastItem)
	assert.Empty(t, b.TakeItem(p))
}

func TestBoostAndHeal(t *testing.T) {
	b := New(data.Default(), 1)
	p := newTestPokemon(t, b, "Alakazam")
	p.Boosts["atk"] = 5

	b.Boost(p, BoostsTable{"atk": 2, "spe": -1, "def": 0})
	assert.Equal(t, 6, p.Boosts["atk"])
	assert.Equal(t, -1, p.Boosts["spe"])

	p.HP = 100
	assert.Equal(t, 31, b.Heal(p, 31))
	assert.Equal(t, 120, b.Heal(p, 500))
	assert.Equal(t, 0, b.Heal(p, 10))

	assert.Equal(t, []string{
		"|-boost|p1a: Tester|atk|1",
		"|-unboost|p1a: Tester|spe|1",
		"|-heal|p1a: Tester|131/251",
		"|-heal|p1a: Tester|251/251",
	}, b.Log())
}

func TestUseMove(t *testing.T) {
	b := New(data.Default(), 1)
	p := newTestPokemon(t, b, "Blissey")
	b.UseMove("wish", p)
	b.UseMove("notamove", p)
	assert.Equal(t, []string{"|move|p1a: Tester|Wish|"}, b.Log())
}

func TestHealth(t *testing.T) {
	p := &Pokemon{HP: 10, MaxHP: 20}
	assert.Equal(t, "10/20", p.Health())
	p.Status = "brn"
	assert.Equal(t, "10/20 brn", p.Health())
	p.HP = 0
	assert.Equal(t, "0 fnt", p.Health())
}

func TestDamagedThisTurnBy(t *testing.T) {
	foe := &Pokemon{Name: "Foe"}
	other := &Pokemon{Name: "Other"}
	p := &Pokemon{AttackedBy: []Attack{
		{Source: foe, Damage: 0, ThisTurn: true},
		{Source: other, Damage: 30, ThisTurn: false},
	}}
	assert.False(t, p.DamagedThisTurnBy(foe))
	assert.False(t, p.DamagedThisTurnBy(other))

	p.AttackedBy = append(p.AttackedBy, Attack{Source: foe, Damage: 12, ThisTurn: true})
	assert.True(t, p.DamagedThisTurnBy(foe))
}
