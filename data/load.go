package data

import (
	"context"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/sync/errgroup"
)

//go:embed dex/*.json
var embedded embed.FS

type rawSpecies struct {
	Name      string     `json:"name"`
	Types     []string   `json:"types"`
	BaseStats StatsTable `json:"baseStats"`
	Abilities []string   `json:"abilities"`
	MaxHP     int        `json:"maxHP"`
}

type rawMove struct {
	Name       string `json:"name"`
	Type       string `json:"type"`
	Category   string `json:"category"`
	BasePower  int    `json:"basePower"`
	Accuracy   int    `json:"accuracy"`
	PP         int    `json:"pp"`
	Priority   int    `json:"priority"`
	Target     string `json:"target"`
	NoPPBoosts bool   `json:"noPPBoosts"`
	IsZ        bool   `json:"isZ"`
	Status     string `json:"status"`
}

type rawAbility struct {
	Name      string `json:"name"`
	ShortDesc string `json:"shortDesc"`
}

type rawItem struct {
	Name string `json:"name"`
}

var (
	defaultOnce sync.Once
	defaultDex  *Dex
)

// Default returns the dex built from the embedded tables. It panics if the
// embedded tables are malformed, which only a broken build can cause.
func Default() *Dex {
	defaultOnce.Do(func() {
		d, err := LoadDex(context.Background(), Embedded())
		if err != nil {
			panic(fmt.Sprintf("loading embedded dex: %v", err))
		}
		defaultDex = d
	})
	return defaultDex
}

// Embedded exposes the compiled-in tables rooted at the dex directory.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "dex")
	if err != nil {
		panic(err)
	}
	return sub
}

// LoadDir loads the dex tables from a directory on disk.
func LoadDir(ctx context.Context, dir string) (*Dex, error) {
	return LoadDex(ctx, os.DirFS(dir))
}

// LoadDex reads species.json, moves.json, abilities.json and items.json from fsys.
func LoadDex(ctx context.Context, fsys fs.FS) (*Dex, error) {
	var (
		species   map[string]rawSpecies
		moves     map[string]rawMove
		abilities map[string]rawAbility
		items     map[string]rawItem
	)

	g, _ := errgroup.WithContext(ctx)
	g.Go(func() error { return decodeFile(fsys, "species.json", &species) })
	g.Go(func() error { return decodeFile(fsys, "moves.json", &moves) })
	g.Go(func() error { return decodeFile(fsys, "abilities.json", &abilities) })
	g.Go(func() error { return decodeFile(fsys, "items.json", &items) })
	if err := g.Wait(); err != nil {
		return nil, err
	}

	d := &Dex{
		species:   make(map[string]Species, len(species)),
		moves:     make(map[string]Move, len(moves)),
		abilities: make(map[string]Ability, len(abilities)),
		items:     make(map[string]Item, len(items)),
	}
	for _, s := range species {
		id := ToID(s.Name)
		d.species[id] = Species{
			ID:        id,
			Name:      s.Name,
			Types:     s.Types,
			BaseStats: s.BaseStats,
			Abilities: s.Abilities,
			MaxHP:     s.MaxHP,
		}
	}
	for _, m := range moves {
		id := ToID(m.Name)
		d.moves[id] = Move{
			ID:         id,
			Name:       m.Name,
			Type:       m.Type,
			Category:   m.Category,
			BasePower:  m.BasePower,
			Accuracy:   m.Accuracy,
			PP:         m.PP,
			Priority:   m.Priority,
			Target:     m.Target,
			NoPPBoosts: m.NoPPBoosts,
			IsZ:        m.IsZ,
			Status:     m.Status,
		}
	}
	for _, a := range abilities {
		id := ToID(a.Name)
		d.abilities[id] = Ability{ID: id, Name: a.Name, ShortDesc: a.ShortDesc}
	}
	for _, i := range items {
		id := ToID(i.Name)
		d.items[id] = Item{ID: id, Name: i.Name}
	}

	slog.Info("loaded dex",
		"species", len(d.species),
		"moves", len(d.moves),
		"abilities", len(d.abilities),
		"items", len(d.items),
	)
	return d, nil
}

func decodeFile(fsys fs.FS, name string, v any) error {
	file, err := fsys.Open(name)
	if err != nil {
		return fmt.Errorf("opening %s: %w", name, err)
	}
	defer file.Close()

	if err := json.NewDecoder(file).Decode(v); err != nil {
		return fmt.Errorf("decoding %s: %w", name, err)
	}
	return nil
}
