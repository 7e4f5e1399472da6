// Package sets holds the target configurations a Pokemon can be switched
// into mid-battle, keyed by archetype name.
package sets

import (
	"errors"
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"showdown-ssb/data"
)

var (
	ErrUnknownSet  = errors.New("unknown set")
	ErrInvalidStat = errors.New("invalid stat")
)

// OneOf is either a single identifier or a pool to sample one from uniformly.
// In YAML it is written as a scalar or a sequence.
type OneOf []string

func (o *OneOf) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		*o = OneOf{s}
		return nil
	case yaml.SequenceNode:
		var list []string
		if err := value.Decode(&list); err != nil {
			return err
		}
		*o = list
		return nil
	}
	return fmt.Errorf("line %d: expected identifier or list of identifiers", value.Line)
}

// Fixed reports whether there is nothing to sample.
func (o OneOf) Fixed() bool {
	return len(o) <= 1
}

// Shininess is a fixed flag or, when Odds > 0, a 1/Odds chance.
type Shininess struct {
	Shiny bool
	Odds  int
}

func (s *Shininess) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: shiny must be a boolean or an integer", value.Line)
	}
	switch value.Tag {
	case "!!bool":
		*s = Shininess{}
		return value.Decode(&s.Shiny)
	case "!!int":
		*s = Shininess{}
		return value.Decode(&s.Odds)
	}
	return fmt.Errorf("line %d: shiny must be a boolean or an integer, got %q", value.Line, value.Value)
}

// PartialStats lists only the stats a set overrides.
type PartialStats map[data.Stat]int

func (p *PartialStats) UnmarshalYAML(value *yaml.Node) error {
	var raw map[string]int
	if err := value.Decode(&raw); err != nil {
		return err
	}
	out := make(PartialStats, len(raw))
	for key, v := range raw {
		stat := data.Stat(key)
		if !stat.Valid() {
			return fmt.Errorf("%w: %q on line %d", ErrInvalidStat, key, value.Line)
		}
		out[stat] = v
	}
	*p = out
	return nil
}

type Set struct {
	Name          string       `yaml:"-"`
	Species       string       `yaml:"species"`
	Ability       string       `yaml:"ability"`
	Item          OneOf        `yaml:"item"`
	Gender        string       `yaml:"gender"`
	Level         int          `yaml:"level"`
	Nature        OneOf        `yaml:"nature"`
	Shiny         Shininess    `yaml:"shiny"`
	EVs           PartialStats `yaml:"evs"`
	IVs           PartialStats `yaml:"ivs"`
	Moves         []OneOf      `yaml:"moves"`
	SignatureMove string       `yaml:"signatureMove"`
}

// AllMoves is the move list with the signature move, if any, appended as the
// last slot.
func (s Set) AllMoves() []OneOf {
	moves := make([]OneOf, 0, len(s.Moves)+1)
	moves = append(moves, s.Moves...)
	if s.SignatureMove == "" {
		return moves
	}
	return append(moves, OneOf{s.SignatureMove})
}

type Table map[string]Set

func (t Table) Get(name string) (Set, error) {
	set, ok := t[name]
	if !ok {
		return Set{}, fmt.Errorf("%w: %s", ErrUnknownSet, name)
	}
	return set, nil
}

func (t Table) Names() []string {
	names := make([]string, 0, len(t))
	for name := range t {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
