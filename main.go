package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	"showdown-ssb/battle"
	"showdown-ssb/config"
	"showdown-ssb/data"
	"showdown-ssb/effects"
	"showdown-ssb/forme"
	"showdown-ssb/parser"
	"showdown-ssb/sets"
)

const ConfigPath = "config/ssb.yaml"

func main() {
	configPath := flag.String("config", ConfigPath, "path to the YAML config")
	seed := flag.Int64("seed", 0, "PRNG seed, 0 generates one")
	setName := flag.String("set", "", "set the Pokemon starts as")
	into := flag.String("into", "", "set the Pokemon changes into")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if *seed != 0 {
		cfg.Seed = *seed
	}
	if *setName != "" {
		cfg.Demo.Set = *setName
	}
	if *into != "" {
		cfg.Demo.Target = *into
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.Level(),
	})))

	if err := run(context.Background(), cfg, os.Stdout); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, w io.Writer) error {
	dex := data.Default()
	if cfg.DataDir != "" {
		var err error
		if dex, err = data.LoadDir(ctx, cfg.DataDir); err != nil {
			return fmt.Errorf("loading dex: %w", err)
		}
	}

	table, err := loadSets(cfg.SetsFile)
	if err != nil {
		return fmt.Errorf("loading sets: %w", err)
	}
	initial, err := table.Get(cfg.Demo.Set)
	if err != nil {
		return err
	}
	target, err := table.Get(cfg.Demo.Target)
	if err != nil {
		return err
	}

	seed := cfg.Seed
	if seed == 0 {
		if seed, err = battle.NewSeed(); err != nil {
			return fmt.Errorf("generating seed: %w", err)
		}
	}
	slog.Info("battle starting", "seed", seed, "set", initial.Name, "target", target.Name)

	b := battle.New(dex, seed)
	effects.Default().Attach(b)

	p, err := forme.Build(b, initial, "p1")
	if err != nil {
		return fmt.Errorf("building %s: %w", initial.Name, err)
	}
	b.AddPlayer("p1", initial.Name)
	b.SwitchIn(p)

	if cfg.Demo.DamagePercent > 0 {
		p.HP = max(p.MaxHP*(100-cfg.Demo.DamagePercent)/100, 1)
		b.Add("-damage", p, p.Health())
	}
	for i := range p.MoveSlots {
		p.MoveSlots[i].PP = max(p.MoveSlots[i].PP-cfg.Demo.PPUsed, 0)
	}

	forme.NewChanger(b, dex).ApplySet(p, target, cfg.Demo.ChangeAbility)

	lines := b.Log()
	for _, line := range lines {
		fmt.Fprintln(w, line)
	}
	fmt.Fprintln(w)
	for _, slot := range p.MoveSlots {
		fmt.Fprintf(w, "%s %d/%d\n", slot.Move, slot.PP, slot.MaxPP)
	}
	fmt.Fprintln(w)
	fmt.Fprint(w, parser.RenderBattleState(parser.ParseLines(lines)))
	return nil
}

func loadSets(path string) (sets.Table, error) {
	if path == "" {
		return sets.Default()
	}
	return sets.Load(path)
}
