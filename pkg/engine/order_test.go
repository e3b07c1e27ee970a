package engine

import (
	"testing"

	"github.com/condor-engine/condor/pkg/condition"
	"github.com/condor-engine/condor/pkg/registry"
	"github.com/condor-engine/condor/pkg/typeref"
)

func unit(name string, priority int) Unit {
	return Unit{
		Declaration: registry.Declaration{Name: name, Type: typeref.Ref{Raw: "Component"}},
		Priority:    priority,
	}
}

func names(units []Unit) []string {
	out := make([]string, len(units))
	for i, u := range units {
		out[i] = u.Declaration.Name
	}
	return out
}

func assertOrder(t *testing.T, got []Unit, expected ...string) {
	t.Helper()
	actual := names(got)
	if len(actual) != len(expected) {
		t.Fatalf("Expected %d units, got %d: %v", len(expected), len(actual), actual)
	}
	for i := range expected {
		if actual[i] != expected[i] {
			t.Fatalf("Expected order %v, got %v", expected, actual)
		}
	}
}

func TestOrderUnits_Empty(t *testing.T) {
	ordered, err := orderUnits(nil)
	if err != nil {
		t.Fatalf("Expected no error for empty input, got: %v", err)
	}
	if len(ordered) != 0 {
		t.Errorf("Expected no units, got %d", len(ordered))
	}
}

func TestOrderUnits_PriorityThenDeclarationOrder(t *testing.T) {
	ordered, err := orderUnits([]Unit{unit("c", 10), unit("a", 0), unit("b", 0)})
	if err != nil {
		t.Fatalf("orderUnits failed: %v", err)
	}
	assertOrder(t, ordered, "a", "b", "c")
}

func TestOrderUnits_AfterRelation(t *testing.T) {
	late := unit("late", 0)
	late.After = []string{"early"}
	// Priority alone would schedule "late" first; the relation wins.
	early := unit("early", 10)

	ordered, err := orderUnits([]Unit{late, early})
	if err != nil {
		t.Fatalf("orderUnits failed: %v", err)
	}
	assertOrder(t, ordered, "early", "late")
}

func TestOrderUnits_BeforeRelation(t *testing.T) {
	first := unit("first", 10)
	first.Before = []string{"second"}
	second := unit("second", 0)

	ordered, err := orderUnits([]Unit{second, first})
	if err != nil {
		t.Fatalf("orderUnits failed: %v", err)
	}
	assertOrder(t, ordered, "first", "second")
}

func TestOrderUnits_UnknownRelationIsIgnored(t *testing.T) {
	u := unit("only", 0)
	u.After = []string{"not-part-of-this-pass"}

	ordered, err := orderUnits([]Unit{u})
	if err != nil {
		t.Fatalf("Expected unknown relation to be ignored, got: %v", err)
	}
	assertOrder(t, ordered, "only")
}

func TestOrderUnits_CycleIsAuthorError(t *testing.T) {
	a := unit("a", 0)
	a.After = []string{"b"}
	b := unit("b", 0)
	b.After = []string{"a"}

	_, err := orderUnits([]Unit{a, b})
	if err == nil {
		t.Fatal("Expected error for relation cycle")
	}
	if !condition.IsAuthorError(err) {
		t.Errorf("Expected author error, got: %v", err)
	}
}

func TestOrderUnits_StableForEqualInput(t *testing.T) {
	units := []Unit{unit("x", 5), unit("y", 5), unit("z", 5)}

	first, err := orderUnits(units)
	if err != nil {
		t.Fatalf("orderUnits failed: %v", err)
	}
	second, err := orderUnits(units)
	if err != nil {
		t.Fatalf("orderUnits failed: %v", err)
	}
	for i := range first {
		if first[i].Declaration.Name != second[i].Declaration.Name {
			t.Fatalf("Schedule not deterministic: %v vs %v", names(first), names(second))
		}
	}
	assertOrder(t, first, "x", "y", "z")
}
