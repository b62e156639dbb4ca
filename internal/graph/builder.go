package graph

import "sort"

// DefaultAlpha is the weight of an outbound edge relative to an inbound edge
// in the importance score.
const DefaultAlpha = 0.5

// BuildOptions configures graph construction.
type BuildOptions struct {
	// Alpha weights outbound edges in Importance. Values outside (0, 1]
	// fall back to DefaultAlpha.
	Alpha float64
}

// DefaultBuildOptions returns sensible defaults for graph construction.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{Alpha: DefaultAlpha}
}

// Build constructs a graph from journeys, in declaration order.
//
// Nodes are numbered by first appearance: a journey's source, then its
// targets. A source declared twice has its journeys concatenated. Empty ids,
// self-loops and repeated targets within a journey are skipped.
func Build(journeys []Journey, opts BuildOptions) *Graph {
	if opts.Alpha <= 0 || opts.Alpha > 1 {
		opts.Alpha = DefaultAlpha
	}

	g := &Graph{
		nodes:   make([]string, 0, len(journeys)),
		nodeIdx: make(map[string]int, len(journeys)),
		alpha:   opts.Alpha,
	}

	// declared[i] is the rank of node i's first journey declaration, or -1.
	var declared []int
	addNode := func(id string) int {
		if idx, ok := g.nodeIdx[id]; ok {
			return idx
		}
		idx := len(g.nodes)
		g.nodes = append(g.nodes, id)
		g.nodeIdx[id] = idx
		g.outEdges = append(g.outEdges, nil)
		g.inEdges = append(g.inEdges, nil)
		declared = append(declared, -1)
		return idx
	}

	rank := 0
	for _, j := range journeys {
		if j.Tool == "" {
			continue
		}
		src := addNode(j.Tool)
		if declared[src] < 0 {
			declared[src] = rank
			rank++
		}

		seen := make(map[int]bool, len(g.outEdges[src])+len(j.Next))
		for _, e := range g.outEdges[src] {
			seen[e.target] = true
		}
		for _, next := range j.Next {
			if next == "" || next == j.Tool {
				continue
			}
			dst := addNode(next)
			if seen[dst] {
				continue
			}
			seen[dst] = true
			g.outEdges[src] = append(g.outEdges[src], edgeEntry{target: dst})
			g.inEdges[dst] = append(g.inEdges[dst], edgeEntry{target: src})
		}
	}

	// Weights depend on final journey length, so they are assigned last.
	for src, out := range g.outEdges {
		for pos := range out {
			w := EdgeWeight(pos, len(out))
			out[pos].weight = w
			for k := range g.inEdges[out[pos].target] {
				if g.inEdges[out[pos].target][k].target == src {
					g.inEdges[out[pos].target][k].weight = w
				}
			}
		}
	}

	for _, in := range g.inEdges {
		sort.SliceStable(in, func(a, b int) bool {
			return declared[in[a].target] < declared[in[b].target]
		})
	}

	return g
}

// GraphStats returns statistics about the graph.
type GraphStats struct {
	TotalNodes   int     `json:"totalNodes"`
	TotalEdges   int     `json:"totalEdges"`
	Sources      int     `json:"sources"`  // nodes with a non-empty journey
	Sinks        int     `json:"sinks"`    // nodes with inbound but no outbound edges
	Isolated     int     `json:"isolated"` // nodes with no edges at all
	MaxInDegree  int     `json:"maxInDegree"`
	AvgOutDegree float64 `json:"avgOutDegree"`
}

// Stats returns statistics about the graph.
func (g *Graph) Stats() GraphStats {
	stats := GraphStats{
		TotalNodes: g.NumNodes(),
		TotalEdges: g.NumEdges(),
	}
	if g == nil {
		return stats
	}

	for i := range g.nodes {
		out, in := len(g.outEdges[i]), len(g.inEdges[i])
		switch {
		case out > 0:
			stats.Sources++
		case in > 0:
			stats.Sinks++
		default:
			stats.Isolated++
		}
		if in > stats.MaxInDegree {
			stats.MaxInDegree = in
		}
	}

	if stats.TotalNodes > 0 {
		stats.AvgOutDegree = float64(stats.TotalEdges) / float64(stats.TotalNodes)
	}

	return stats
}
