package battle

import (
	"fmt"
	"strconv"
	"strings"

	"showdown-ssb/data"
)

// TransformState is a one-way latch: once Transformed, a Pokemon no longer
// accepts set changes.
type TransformState int

const (
	Normal TransformState = iota
	Transformed
)

func (s TransformState) String() string {
	switch s {
	case Normal:
		return "normal"
	case Transformed:
		return "transformed"
	default:
		return "unknown"
	}
}

type MoveSlot struct {
	Move           string
	ID             string
	PP             int
	MaxPP          int
	Target         string
	Disabled       bool
	DisabledSource string
	Used           bool
}

// SetInfo holds the team-builder values a Pokemon was built from.
type SetInfo struct {
	EVs    data.StatsTable
	IVs    data.StatsTable
	Nature string
	Shiny  bool
}

type Attack struct {
	Source   *Pokemon
	Damage   int
	ThisTurn bool
}

// BoostsTable maps a boost ID (atk, def, spa, spd, spe, accuracy, evasion) to its stage.
type BoostsTable map[string]int

// BoostIDs is the order boosts are applied and logged in.
var BoostIDs = []string{"atk", "def", "spa", "spd", "spe", "accuracy", "evasion"}

type Pokemon struct {
	Name     string
	Side     string
	Position string

	Species   data.Species
	Ability   string
	Item      string
	LastItem  string
	State     TransformState
	Corrupted bool

	HP        int
	MaxHP     int
	BaseMaxHP int
	Level     int
	Gender    string
	Set       SetInfo

	MoveSlots     []MoveSlot
	BaseMoveSlots []MoveSlot

	Boosts     BoostsTable
	Volatiles  map[string]bool
	Status     string
	AttackedBy []Attack
	Fainted    bool
}

func (p *Pokemon) Transformed() bool {
	return p.State == Transformed
}

// Ident is the protocol identifier, e.g. "p1a: Genwunner".
func (p *Pokemon) Ident() string {
	pos := p.Position
	if pos == "" {
		pos = "a"
	}
	return p.Side + pos + ": " + p.Name
}

// Details renders species, level, gender and shininess the way the protocol
// shows them: "Alakazam, L84, F, shiny". Level 100 and genderless are omitted.
func (p *Pokemon) Details() string {
	var sb strings.Builder
	sb.WriteString(p.Species.Name)
	if p.Level != 100 {
		sb.WriteString(", L")
		sb.WriteString(strconv.Itoa(p.Level))
	}
	if p.Gender != "" {
		sb.WriteString(", ")
		sb.WriteString(p.Gender)
	}
	if p.Set.Shiny {
		sb.WriteString(", shiny")
	}
	return sb.String()
}

func (p *Pokemon) Health() string {
	if p.Fainted || p.HP <= 0 {
		return "0 fnt"
	}
	health := fmt.Sprintf("%d/%d", p.HP, p.MaxHP)
	if p.Status != "" {
		health += " " + p.Status
	}
	return health
}

func (p *Pokemon) HasVolatile(id string) bool {
	return p.Volatiles[id]
}

func (p *Pokemon) RemoveVolatile(id string) bool {
	if !p.Volatiles[id] {
		return false
	}
	delete(p.Volatiles, id)
	return true
}

func (p *Pokemon) AddVolatile(id string) {
	if p.Volatiles == nil {
		p.Volatiles = make(map[string]bool)
	}
	p.Volatiles[id] = true
}

// DamagedThisTurnBy reports whether source landed a damaging hit on p this turn.
func (p *Pokemon) DamagedThisTurnBy(source *Pokemon) bool {
	for _, a := range p.AttackedBy {
		if a.Source == source && a.Damage > 0 && a.ThisTurn {
			return true
		}
	}
	return false
}
