package parser

import (
	"strconv"
	"strings"

	"showdown-ssb/data"
	"showdown-ssb/game"
)

func ParseLog(logText string) (*game.BattleState, error) {
	state := game.NewBattleState()
	for _, line := range strings.Split(logText, "\n") {
		ProcessLine(state, line)
	}
	return state, nil
}

// ParseLines folds already split protocol lines into a fresh state.
func ParseLines(lines []string) *game.BattleState {
	state := game.NewBattleState()
	for _, line := range lines {
		ProcessLine(state, line)
	}
	return state
}

// ProcessLine folds one protocol line into state. Unknown or malformed lines
// are ignored.
func ProcessLine(state *game.BattleState, line string) {
	parts := strings.Split(strings.TrimSpace(line), "|")
	if len(parts) < 2 {
		return
	}
	args := parts[2:]
	switch parts[1] {
	case "player":
		if len(args) >= 2 {
			state.Player(args[0]).Name = args[1]
		}
	case "poke":
		if len(args) >= 2 {
			species, _, _, _ := parseDetails(args[1])
			setDetails(state.Player(args[0]).Pokemon(species), args[1])
		}
	case "switch", "drag":
		if len(args) >= 3 {
			player, poke := lookup(state, args[0])
			if poke == nil {
				return
			}
			setDetails(poke, args[1])
			setHealth(poke, args[2])
			player.Active = poke
		}
	case "replace", "detailschange":
		if len(args) >= 2 {
			if _, poke := lookup(state, args[0]); poke != nil {
				setDetails(poke, args[1])
			}
		}
	case "move":
		if len(args) >= 2 {
			_, poke := lookup(state, args[0])
			if poke == nil {
				return
			}
			moveName := args[1]
			for _, m := range poke.Moves {
				if m.Name == moveName {
					return
				}
			}
			moveType, power, _ := data.GetMoveTypeAndPower(moveName)
			poke.Moves = append(poke.Moves, game.Move{Name: moveName, Type: moveType, Power: power})
		}
	case "damage", "-damage", "-heal", "-sethp":
		if len(args) >= 2 {
			if _, poke := lookup(state, args[0]); poke != nil {
				setHealth(poke, args[1])
			}
		}
	case "faint":
		if len(args) >= 1 {
			if _, poke := lookup(state, args[0]); poke != nil {
				poke.Fainted = true
				poke.HP = 0
			}
		}
	case "turn":
		if len(args) >= 1 {
			if t, err := strconv.Atoi(args[0]); err == nil {
				state.Turn = t
			}
		}
	case "-status":
		if len(args) >= 2 {
			if _, poke := lookup(state, args[0]); poke != nil {
				poke.Status = args[1]
			}
		}
	case "-curestatus":
		if len(args) >= 1 {
			if _, poke := lookup(state, args[0]); poke != nil {
				poke.Status = ""
			}
		}
	case "-boost", "-unboost", "-setboost":
		if len(args) >= 3 {
			_, poke := lookup(state, args[0])
			if poke == nil {
				return
			}
			amount, err := strconv.Atoi(args[2])
			if err != nil {
				return
			}
			switch parts[1] {
			case "-boost":
				poke.Boosts[args[1]] += amount
			case "-unboost":
				poke.Boosts[args[1]] -= amount
			default:
				poke.Boosts[args[1]] = amount
			}
		}
	case "-weather":
		if len(args) >= 1 {
			state.Weather = args[0]
		}
	case "-fieldstart":
		if len(args) >= 1 {
			state.FieldEffects[args[0]] = true
		}
	case "-fieldend":
		if len(args) >= 1 {
			delete(state.FieldEffects, args[0])
		}
	case "-ability":
		if len(args) >= 2 {
			if _, poke := lookup(state, args[0]); poke != nil {
				poke.Ability = args[1]
			}
		}
	case "message":
		if len(args) >= 1 {
			state.Messages = append(state.Messages, args[0])
			if name, ok := strings.CutSuffix(args[0], " changed form!"); ok {
				if poke := findByName(state, name); poke != nil {
					poke.FormeChanges++
				}
			}
		}
	}
}

// lookup resolves an ident such as "p1a: Brookeee", creating the team entry
// on first sight.
func lookup(state *game.BattleState, ident string) (*game.Player, *game.Pokemon) {
	side, name, ok := strings.Cut(ident, ": ")
	if !ok || len(side) < 2 || name == "" {
		return nil, nil
	}
	player := state.Player(side[:2])
	return player, player.Pokemon(name)
}

func findByName(state *game.BattleState, name string) *game.Pokemon {
	for _, player := range state.Players {
		if poke, ok := player.Team[name]; ok {
			return poke
		}
	}
	return nil
}

// parseDetails splits "Dusknoir, L84, F, shiny" into its parts.
func parseDetails(details string) (species string, level int, gender string, shiny bool) {
	fields := strings.Split(details, ", ")
	species = strings.TrimSpace(fields[0])
	level = 100
	for _, f := range fields[1:] {
		switch {
		case f == "shiny":
			shiny = true
		case f == "M" || f == "F":
			gender = f
		case strings.HasPrefix(f, "L"):
			if l, err := strconv.Atoi(f[1:]); err == nil {
				level = l
			}
		}
	}
	return species, level, gender, shiny
}

func setDetails(poke *game.Pokemon, details string) {
	species, level, gender, shiny := parseDetails(details)
	poke.Species = species
	poke.Level = level
	poke.Gender = gender
	poke.Shiny = shiny
	poke.Type = data.GetPokemonTypes(species)
}

// setHealth applies "147/294", "147/294 brn" or "0 fnt".
func setHealth(poke *game.Pokemon, health string) {
	hpPart, status, _ := strings.Cut(strings.TrimSpace(health), " ")
	if status == "fnt" {
		poke.HP = 0
		poke.Fainted = true
		return
	}
	curPart, maxPart, ok := strings.Cut(hpPart, "/")
	if !ok {
		return
	}
	hp, err := strconv.Atoi(curPart)
	if err != nil {
		return
	}
	maxHP, err := strconv.Atoi(maxPart)
	if err != nil {
		return
	}
	poke.HP = hp
	poke.MaxHP = maxHP
	poke.Status = status
}
