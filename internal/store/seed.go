package store

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed is the initial content of a store.
type Seed struct {
	Collections map[string][]Record `yaml:"collections"`
	Settings    Record              `yaml:"settings"`
}

// DefaultSeed returns the demonstration data shipped with the binary.
func DefaultSeed() (*Seed, error) {
	return parseSeed(defaultSeed)
}

// LoadSeed reads a seed file. An empty path selects the built-in seed.
func LoadSeed(path string) (*Seed, error) {
	if path == "" {
		return DefaultSeed()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return parseSeed(data)
}

func parseSeed(data []byte) (*Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return nil, fmt.Errorf("parse seed: %w", err)
	}
	for name, records := range seed.Collections {
		if records == nil {
			seed.Collections[name] = []Record{}
		}
		for i, r := range records {
			if r.ID() == "" {
				return nil, fmt.Errorf("parse seed: %s[%d] has no string id", name, i)
			}
		}
	}
	return &seed, nil
}
