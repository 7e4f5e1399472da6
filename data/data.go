package data

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownSpecies = errors.New("unknown species")
	ErrUnknownMove    = errors.New("unknown move")
)

type Stat string

const (
	StatHP  Stat = "hp"
	StatAtk Stat = "atk"
	StatDef Stat = "def"
	StatSpA Stat = "spa"
	StatSpD Stat = "spd"
	StatSpe Stat = "spe"
)

// Stats lists every stat key in display order.
var Stats = [...]Stat{StatHP, StatAtk, StatDef, StatSpA, StatSpD, StatSpe}

func (s Stat) Valid() bool {
	for _, stat := range Stats {
		if s == stat {
			return true
		}
	}
	return false
}

// StatsTable always carries all six stats; a missing stat cannot be represented.
type StatsTable struct {
	HP  int `json:"hp" yaml:"hp"`
	Atk int `json:"atk" yaml:"atk"`
	Def int `json:"def" yaml:"def"`
	SpA int `json:"spa" yaml:"spa"`
	SpD int `json:"spd" yaml:"spd"`
	Spe int `json:"spe" yaml:"spe"`
}

// Uniform returns a table with every stat set to v.
func Uniform(v int) StatsTable {
	return StatsTable{HP: v, Atk: v, Def: v, SpA: v, SpD: v, Spe: v}
}

func (t StatsTable) Get(stat Stat) int {
	switch stat {
	case StatHP:
		return t.HP
	case StatAtk:
		return t.Atk
	case StatDef:
		return t.Def
	case StatSpA:
		return t.SpA
	case StatSpD:
		return t.SpD
	case StatSpe:
		return t.Spe
	}
	return 0
}

func (t *StatsTable) Set(stat Stat, v int) {
	switch stat {
	case StatHP:
		t.HP = v
	case StatAtk:
		t.Atk = v
	case StatDef:
		t.Def = v
	case StatSpA:
		t.SpA = v
	case StatSpD:
		t.SpD = v
	case StatSpe:
		t.Spe = v
	}
}

type Species struct {
	ID        string
	Name      string
	Types     []string
	BaseStats StatsTable
	Abilities []string
	// MaxHP pins the species' max HP regardless of stats. Zero means unpinned.
	MaxHP int
}

func (s Species) FixedHP() bool {
	return s.MaxHP > 0
}

type Move struct {
	ID        string
	Name      string
	Type      string
	Category  string
	BasePower int
	// Accuracy of 0 means the move never misses.
	Accuracy   int
	PP         int
	Priority   int
	Target     string
	NoPPBoosts bool
	IsZ        bool
	Status     string
}

type Ability struct {
	ID        string
	Name      string
	ShortDesc string
}

type Item struct {
	ID   string
	Name string
}

// Dex is a read-only reference database keyed by ID.
type Dex struct {
	species   map[string]Species
	moves     map[string]Move
	abilities map[string]Ability
	items     map[string]Item
}

func (d *Dex) Species(name string) (Species, bool) {
	s, ok := d.species[ToID(name)]
	return s, ok
}

func (d *Dex) Move(name string) (Move, bool) {
	id := ToID(name)
	if id == "" {
		return Move{}, false
	}
	m, ok := d.moves[id]
	return m, ok
}

func (d *Dex) Ability(name string) (Ability, bool) {
	a, ok := d.abilities[ToID(name)]
	return a, ok
}

func (d *Dex) Item(name string) (Item, bool) {
	i, ok := d.items[ToID(name)]
	return i, ok
}

func (d *Dex) Counts() (species, moves, abilities, items int) {
	return len(d.species), len(d.moves), len(d.abilities), len(d.items)
}

func (d *Dex) AllMoves() []Move {
	moves := make([]Move, 0, len(d.moves))
	for _, move := range d.moves {
		moves = append(moves, move)
	}
	return moves
}

func GetPokemonTypes(name string) []string {
	if p, ok := Default().Species(name); ok {
		return p.Types
	}
	return nil
}

func GetMoveTypeAndPower(name string) (string, int, error) {
	if m, ok := Default().Move(name); ok {
		return m.Type, m.BasePower, nil
	}
	return "", 0, fmt.Errorf("%w: %s", ErrUnknownMove, name)
}

func GetAllMoves() []Move {
	return Default().AllMoves()
}
