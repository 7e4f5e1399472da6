package game

// Move is a move seen in the log.
type Move struct {
	Name  string
	Type  string
	Power int
}

// Pokemon is what an observer knows about a Pokemon from the protocol alone.
type Pokemon struct {
	Name    string
	Species string
	Level   int
	Gender  string
	Shiny   bool
	HP      int
	MaxHP   int
	Fainted bool
	Moves   []Move
	Status  string
	Ability string
	Boosts  map[string]int
	Type    []string
	// FormeChanges counts "changed form!" announcements.
	FormeChanges int
}

type Player struct {
	ID     string
	Name   string
	Team   map[string]*Pokemon
	Active *Pokemon
}

type BattleState struct {
	Players      map[string]*Player
	Turn         int
	Weather      string
	FieldEffects map[string]bool
	Messages     []string
}

func NewBattleState() *BattleState {
	return &BattleState{
		Players:      make(map[string]*Player),
		FieldEffects: make(map[string]bool),
	}
}

// Player returns the player for id, creating it on first sight.
func (s *BattleState) Player(id string) *Player {
	player, ok := s.Players[id]
	if !ok {
		player = &Player{ID: id, Team: make(map[string]*Pokemon)}
		s.Players[id] = player
	}
	return player
}

// Pokemon returns the team member called name, creating it on first sight.
func (p *Player) Pokemon(name string) *Pokemon {
	poke, ok := p.Team[name]
	if !ok {
		poke = &Pokemon{Name: name, Level: 100, Boosts: make(map[string]int)}
		p.Team[name] = poke
	}
	return poke
}
