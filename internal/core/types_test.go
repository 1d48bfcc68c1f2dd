package core

import (
	"slices"
	"testing"
)

type constRuleset struct{ alive bool }

func (c constRuleset) Name() string { return "const" }

func (c constRuleset) Next(*Grid, int, int) (bool, error) { return c.alive, nil }

func TestRegistry(t *testing.T) {
	Register("", func(map[string]string) Ruleset { return constRuleset{} })
	Register("nil-factory", nil)
	Register("test-const", func(cfg map[string]string) Ruleset {
		return constRuleset{alive: cfg["alive"] == "true"}
	})
	t.Cleanup(func() { delete(rulesets, "test-const") })

	if _, ok := Rulesets()[""]; ok {
		t.Fatal("empty names must not register")
	}
	if _, ok := Rulesets()["nil-factory"]; ok {
		t.Fatal("nil factories must not register")
	}
	if !slices.Contains(RulesetNames(), "test-const") {
		t.Fatalf("names %v missing test-const", RulesetNames())
	}

	rs, err := NewRuleset("test-const", map[string]string{"alive": "true"})
	if err != nil {
		t.Fatal(err)
	}
	if alive, _ := rs.Next(NewGrid(1, 1), 0, 0); !alive {
		t.Fatal("factory config not applied")
	}
	if _, err := NewRuleset("missing", nil); err == nil {
		t.Fatal("expected error for unknown ruleset")
	}
}
