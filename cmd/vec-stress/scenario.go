package main

import (
	"fmt"
	"math/rand"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Scenario describes one stress run: the vector capacity and the
// relative weight of each operation in the random mix.
type Scenario struct {
	Capacity    int            `yaml:"capacity"`
	VerifyEvery int            `yaml:"verify_every"`
	Ops         map[string]int `yaml:"ops"`
}

// opNames is the set of operations the runner knows how to apply.
var opNames = []string{
	"push", "pop", "insert", "pop_at", "swap_pop",
	"append", "retain", "truncate", "drain", "iterate", "clear",
}

// DefaultScenario is a balanced mix that keeps the vector hovering
// around half full so both the full and the empty edge get exercised.
func DefaultScenario() *Scenario {
	return &Scenario{
		Capacity:    64,
		VerifyEvery: 1000,
		Ops: map[string]int{
			"push":     30,
			"pop":      12,
			"insert":   10,
			"pop_at":   8,
			"swap_pop": 8,
			"append":   8,
			"retain":   4,
			"truncate": 4,
			"drain":    8,
			"iterate":  6,
			"clear":    2,
		},
	}
}

// LoadScenario reads a YAML scenario file. Absent fields fall back to
// the default scenario; a present ops map replaces the default mix
// entirely, so a scenario listing only "push" runs pushes and nothing
// else.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("yaml unmarshal %s: %w", path, err)
	}

	def := DefaultScenario()
	if s.Capacity == 0 {
		s.Capacity = def.Capacity
	}
	if s.Capacity < 0 {
		return nil, fmt.Errorf("scenario %s: capacity must be positive, got %d", path, s.Capacity)
	}
	if s.VerifyEvery <= 0 {
		s.VerifyEvery = def.VerifyEvery
	}
	if s.Ops == nil {
		s.Ops = def.Ops
	}

	known := make(map[string]bool, len(opNames))
	for _, name := range opNames {
		known[name] = true
	}
	for name := range s.Ops {
		if !known[name] {
			return nil, fmt.Errorf("scenario %s: unknown op %q", path, name)
		}
	}

	return &s, nil
}

// picker returns a function drawing op names according to the scenario
// weights.
func (s *Scenario) picker() (func(rng *rand.Rand) string, error) {
	names := make([]string, 0, len(s.Ops))
	for name, weight := range s.Ops {
		if weight > 0 {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("scenario has no op with positive weight")
	}
	sort.Strings(names) // deterministic order for a given seed

	cumulative := make([]int, len(names))
	total := 0
	for i, name := range names {
		total += s.Ops[name]
		cumulative[i] = total
	}

	return func(rng *rand.Rand) string {
		roll := rng.Intn(total)
		for i, bound := range cumulative {
			if roll < bound {
				return names[i]
			}
		}
		return names[len(names)-1]
	}, nil
}
