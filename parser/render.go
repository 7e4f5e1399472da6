package parser

import (
	"fmt"
	"sort"
	"strings"
	"unicode"

	"showdown-ssb/game"
)

func capitalizeFirst(s string) string {
	if len(s) == 0 {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	for i := 1; i < len(runes); i++ {
		runes[i] = unicode.ToLower(runes[i])
	}
	return string(runes)
}

func formatBoosts(boosts map[string]int) string {
	stats := make([]string, 0, len(boosts))
	for stat, val := range boosts {
		if val != 0 {
			stats = append(stats, stat)
		}
	}
	sort.Strings(stats)
	out := make([]string, 0, len(stats))
	for _, stat := range stats {
		out = append(out, fmt.Sprintf("%+d %s", boosts[stat], capitalizeFirst(stat)))
	}
	return strings.Join(out, ", ")
}

func renderPokemon(sb *strings.Builder, poke *game.Pokemon, active bool) {
	marker := " "
	if active {
		marker = "*"
	}
	details := poke.Species
	if poke.Level != 100 {
		details += fmt.Sprintf(", L%d", poke.Level)
	}
	if poke.Shiny {
		details += ", shiny"
	}
	hp := "?/?"
	if poke.MaxHP > 0 {
		hp = fmt.Sprintf("%d/%d", poke.HP, poke.MaxHP)
	}
	fmt.Fprintf(sb, " %s %s (%s) %s", marker, poke.Name, details, hp)
	if poke.Fainted {
		sb.WriteString(" fainted")
	}
	if poke.Status != "" {
		fmt.Fprintf(sb, " [%s]", poke.Status)
	}
	if poke.Ability != "" {
		fmt.Fprintf(sb, " ability: %s", poke.Ability)
	}
	sb.WriteString("\n")

	if b := formatBoosts(poke.Boosts); b != "" {
		fmt.Fprintf(sb, "    boosts: %s\n", b)
	}
	if len(poke.Moves) > 0 {
		names := make([]string, 0, len(poke.Moves))
		for _, m := range poke.Moves {
			names = append(names, m.Name)
		}
		fmt.Fprintf(sb, "    moves seen: %s\n", strings.Join(names, ", "))
	}
	if poke.FormeChanges > 0 {
		fmt.Fprintf(sb, "    forme changes: %d\n", poke.FormeChanges)
	}
}

// RenderBattleState formats the tracked state as a plain-text summary with
// players and team members in a stable order.
func RenderBattleState(state *game.BattleState) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "Turn: %d\n", state.Turn)
	if state.Weather != "" {
		fmt.Fprintf(&sb, "Weather: %s\n", state.Weather)
	}
	if len(state.FieldEffects) > 0 {
		effects := make([]string, 0, len(state.FieldEffects))
		for eff := range state.FieldEffects {
			effects = append(effects, eff)
		}
		sort.Strings(effects)
		sb.WriteString("Field: " + strings.Join(effects, ", ") + "\n")
	}

	ids := make([]string, 0, len(state.Players))
	for id := range state.Players {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	for _, id := range ids {
		player := state.Players[id]
		name := player.Name
		if name == "" {
			name = player.ID
		}
		fmt.Fprintf(&sb, "%s:\n", name)

		names := make([]string, 0, len(player.Team))
		for n := range player.Team {
			names = append(names, n)
		}
		sort.Strings(names)
		for _, n := range names {
			poke := player.Team[n]
			renderPokemon(&sb, poke, poke == player.Active)
		}
	}

	for _, msg := range state.Messages {
		fmt.Fprintf(&sb, "> %s\n", msg)
	}
	return sb.String()
}
