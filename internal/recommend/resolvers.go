package recommend

import (
	"sort"

	"github.com/shjeon-96/dev-tool-kit-sub005/internal/graph"
)

// RelatedByCategory returns every tool sharing tool's category, excluding
// tool itself, in directory order. Unknown tools have no related tools.
func RelatedByCategory(dir Directory, tool string) []string {
	if dir == nil {
		return []string{}
	}
	category, ok := dir.Category(tool)
	if !ok {
		return []string{}
	}

	related := make([]string, 0)
	for _, id := range dir.InCategory(category) {
		if id != tool {
			related = append(related, id)
		}
	}
	return related
}

// FrequentFromHistory returns up to limit tools from history, most visited
// first. Tools visited equally often keep the order of their first visit.
func FrequentFromHistory(history []string, limit int) []string {
	if len(history) == 0 || limit <= 0 {
		return []string{}
	}

	type tally struct {
		id    string
		count int
		first int
	}

	byID := make(map[string]*tally, len(history))
	tallies := make([]*tally, 0, len(history))
	for i, id := range history {
		if t, ok := byID[id]; ok {
			t.count++
			continue
		}
		t := &tally{id: id, count: 1, first: i}
		byID[id] = t
		tallies = append(tallies, t)
	}

	sort.SliceStable(tallies, func(i, j int) bool {
		if tallies[i].count != tallies[j].count {
			return tallies[i].count > tallies[j].count
		}
		return tallies[i].first < tallies[j].first
	})

	if len(tallies) > limit {
		tallies = tallies[:limit]
	}

	out := make([]string, len(tallies))
	for i, t := range tallies {
		out[i] = t.id
	}
	return out
}

// WorkflowWeight returns the weight of the journey step at position out of
// total steps. It lies in [WorkflowFloor, WorkflowCeiling] and never
// increases with position.
func WorkflowWeight(position, total int) float64 {
	return graph.EdgeWeight(position, total)
}

// WorkflowCandidates returns tool's curated next steps as recommendations.
func WorkflowCandidates(wf Workflow, tool string) []Recommendation {
	if wf == nil {
		return []Recommendation{}
	}
	journey := wf.Journey(tool)
	out := make([]Recommendation, len(journey))
	for i, next := range journey {
		out[i] = Recommendation{
			Target: next,
			Weight: WorkflowWeight(i, len(journey)),
			Reason: ReasonWorkflow,
		}
	}
	return out
}
