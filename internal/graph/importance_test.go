package graph

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestImportanceScenario(t *testing.T) {
	g := scenarioGraph()
	imp := g.Importance()

	// A: 0 in, 2 out; B: 1 in, 1 out; C: 2 in, 0 out.
	want := ImportanceMap{"A": 2.0, "B": 2.5, "C": 3.0}
	if diff := cmp.Diff(want, imp); diff != "" {
		t.Errorf("Importance mismatch (-want +got):\n%s", diff)
	}

	if !(imp["C"] > imp["B"] && imp["B"] > imp["A"]) {
		t.Errorf("expected C > B > A, got %v", imp)
	}
}

func TestImportanceBaselineForIsolatedTool(t *testing.T) {
	g := Build([]Journey{
		{Tool: "A", Next: []string{"B"}},
		{Tool: "isolated"},
	}, DefaultBuildOptions())

	imp := g.Importance()
	if got := imp["isolated"]; got != BaselineImportance {
		t.Errorf("importance(isolated) = %v, want exactly %v", got, BaselineImportance)
	}
	for id, v := range imp {
		if v < BaselineImportance {
			t.Errorf("importance(%s) = %v < 1", id, v)
		}
	}
}

func TestImportanceMonotonicInInbound(t *testing.T) {
	// X and Y both have one outbound edge; X has two inbound, Y has one.
	g := Build([]Journey{
		{Tool: "P", Next: []string{"X", "Y"}},
		{Tool: "Q", Next: []string{"X"}},
		{Tool: "X", Next: []string{"Z"}},
		{Tool: "Y", Next: []string{"Z"}},
	}, DefaultBuildOptions())

	imp := g.Importance()
	if imp["X"] <= imp["Y"] {
		t.Errorf("importance(X)=%v should exceed importance(Y)=%v", imp["X"], imp["Y"])
	}
}

func TestImportanceMonotonicInOutbound(t *testing.T) {
	g := Build([]Journey{
		{Tool: "wide", Next: []string{"a", "b", "c"}},
		{Tool: "narrow", Next: []string{"a"}},
	}, DefaultBuildOptions())

	imp := g.Importance()
	if imp["wide"] <= imp["narrow"] {
		t.Errorf("importance(wide)=%v should exceed importance(narrow)=%v", imp["wide"], imp["narrow"])
	}
}

func TestImportanceAlpha(t *testing.T) {
	journeys := []Journey{{Tool: "A", Next: []string{"B", "C"}}}

	tests := []struct {
		name  string
		alpha float64
		want  float64
	}{
		{"default", 0.5, 2.0},
		{"full weight", 1.0, 3.0},
		{"quarter", 0.25, 1.5},
		{"zero falls back", 0, 2.0},
		{"negative falls back", -1, 2.0},
		{"above one falls back", 1.5, 2.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := Build(journeys, BuildOptions{Alpha: tt.alpha})
			if got := g.Importance()["A"]; got != tt.want {
				t.Errorf("importance(A) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestImportanceReturnsCopy(t *testing.T) {
	g := scenarioGraph()

	m := g.Importance()
	m["A"] = 100

	if got := g.Importance()["A"]; got != 2.0 {
		t.Errorf("importance(A) = %v after caller mutation, want 2", got)
	}
}

func TestImportanceFor(t *testing.T) {
	g := scenarioGraph()

	got := g.ImportanceFor([]string{"A", "C", "not-in-graph"})
	want := ImportanceMap{"A": 2.0, "C": 3.0, "not-in-graph": 1.0}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ImportanceFor mismatch (-want +got):\n%s", diff)
	}
}

func TestRanked(t *testing.T) {
	m := ImportanceMap{"a": 2, "b": 3, "c": 2, "d": 1, "zz": 2}

	got := m.Ranked([]string{"c", "a", "b", "d"})
	want := []RankedTool{
		{Tool: "b", Importance: 3},
		{Tool: "c", Importance: 2},
		{Tool: "a", Importance: 2},
		{Tool: "zz", Importance: 2},
		{Tool: "d", Importance: 1},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Ranked mismatch (-want +got):\n%s", diff)
	}
}
