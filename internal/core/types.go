package core

import (
	"fmt"
	"sort"
)

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Ruleset decides the next state of a single cell from the current grid.
// Implementations must only read from g.
type Ruleset interface {
	Name() string
	Next(g *Grid, x, y int) (bool, error)
}

// Factory constructs a Ruleset using an optional configuration map.
type Factory func(cfg map[string]string) Ruleset

var rulesets = map[string]Factory{}

// Register adds a ruleset factory under the provided name.
func Register(name string, f Factory) {
	if name == "" || f == nil {
		return
	}
	rulesets[name] = f
}

// Rulesets exposes the registry of available ruleset factories.
func Rulesets() map[string]Factory {
	return rulesets
}

// RulesetNames returns the registered names in sorted order.
func RulesetNames() []string {
	names := make([]string, 0, len(rulesets))
	for name := range rulesets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NewRuleset builds the named ruleset.
func NewRuleset(name string, cfg map[string]string) (Ruleset, error) {
	f, ok := rulesets[name]
	if !ok {
		return nil, fmt.Errorf("unknown ruleset %q", name)
	}
	return f(cfg), nil
}
