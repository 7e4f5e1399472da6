package sets

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed sets.yaml
var embedded []byte

// Default parses the compiled-in set table.
func Default() (Table, error) {
	return Parse(embedded)
}

// Load parses a set table from a YAML file.
func Load(path string) (Table, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sets %s: %w", path, err)
	}
	table, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parsing sets %s: %w", path, err)
	}
	return table, nil
}

func Parse(raw []byte) (Table, error) {
	var table Table
	if err := yaml.Unmarshal(raw, &table); err != nil {
		return nil, err
	}
	for name, set := range table {
		set.Name = name
		if set.Species == "" {
			return nil, fmt.Errorf("set %s: missing species", name)
		}
		table[name] = set
	}
	slog.Info("loaded sets", "count", len(table))
	return table, nil
}
