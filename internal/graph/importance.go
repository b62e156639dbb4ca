package graph

import "sort"

// BaselineImportance is the score of a tool with no journey edges.
const BaselineImportance = 1.0

// ImportanceMap maps a tool to its importance score (always >= 1).
type ImportanceMap map[string]float64

// Importance returns the degree centrality of every node:
//
//	importance(t) = 1 + |inbound(t)| + alpha*|outbound(t)|
//
// The map is computed on first use and memoized; callers receive a copy.
func (g *Graph) Importance() ImportanceMap {
	if g == nil {
		return ImportanceMap{}
	}
	g.importanceOnce.Do(func() {
		m := make(ImportanceMap, len(g.nodes))
		for i, id := range g.nodes {
			m[id] = BaselineImportance + float64(len(g.inEdges[i])) + g.alpha*float64(len(g.outEdges[i]))
		}
		g.importance = m
	})

	out := make(ImportanceMap, len(g.importance))
	for k, v := range g.importance {
		out[k] = v
	}
	return out
}

// ImportanceOf returns the importance of id, or BaselineImportance when id
// is not in the graph.
func (g *Graph) ImportanceOf(id string) float64 {
	if g == nil {
		return BaselineImportance
	}
	idx, ok := g.nodeIdx[id]
	if !ok {
		return BaselineImportance
	}
	return BaselineImportance + float64(len(g.inEdges[idx])) + g.alpha*float64(len(g.outEdges[idx]))
}

// ImportanceFor returns an entry for every id in ids, including ids the graph
// has never seen, which receive BaselineImportance.
func (g *Graph) ImportanceFor(ids []string) ImportanceMap {
	m := make(ImportanceMap, len(ids))
	for _, id := range ids {
		m[id] = g.ImportanceOf(id)
	}
	return m
}

// RankedTool is a tool paired with its importance.
type RankedTool struct {
	Tool       string  `json:"tool"`
	Importance float64 `json:"importance"`
}

// Ranked returns the map's entries by descending importance. Ties are
// broken by order, the tool ids in their preferred order; ids missing from
// order are sorted lexically after them.
func (m ImportanceMap) Ranked(order []string) []RankedTool {
	pos := make(map[string]int, len(order))
	for i, id := range order {
		if _, dup := pos[id]; !dup {
			pos[id] = i
		}
	}

	ranked := make([]RankedTool, 0, len(m))
	for id, score := range m {
		ranked = append(ranked, RankedTool{Tool: id, Importance: score})
	}

	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Importance != ranked[j].Importance {
			return ranked[i].Importance > ranked[j].Importance
		}
		pi, iok := pos[ranked[i].Tool]
		pj, jok := pos[ranked[j].Tool]
		switch {
		case iok && jok:
			return pi < pj
		case iok != jok:
			return iok
		default:
			return ranked[i].Tool < ranked[j].Tool
		}
	})
	return ranked
}
