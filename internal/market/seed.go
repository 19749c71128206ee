package market

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var seedYAML []byte

// Seed is the dataset a fresh State starts from.
type Seed struct {
	Users     []User     `yaml:"users"`
	MCPs      []MCP      `yaml:"mcps"`
	Jobs      []Job      `yaml:"jobs"`
	Templates []Template `yaml:"templates"`
}

// ParseSeed decodes a YAML dataset.
func ParseSeed(data []byte) (Seed, error) {
	var s Seed
	if err := yaml.Unmarshal(data, &s); err != nil {
		return Seed{}, fmt.Errorf("decode seed: %w", err)
	}
	return s, nil
}

// DefaultSeed returns the built-in startup dataset.
func DefaultSeed() Seed {
	s, err := ParseSeed(seedYAML)
	if err != nil {
		panic(err)
	}
	return s
}
