// Package graph provides the workflow graph of tool journeys and the
// centrality measures computed over it.
//
// A Graph is built once and never mutated afterwards, so every method is safe
// to call from multiple goroutines without locking.
package graph

import "sync"

const (
	// MaxEdgeWeight is the affinity of the first target in a journey.
	MaxEdgeWeight = 1.0
	// MinEdgeWeight is the affinity floor for the last target in a journey.
	MinEdgeWeight = 0.6
)

// Journey lists the tools commonly used after Tool, strongest affinity first.
type Journey struct {
	Tool string   `toml:"tool" json:"tool" yaml:"tool"`
	Next []string `toml:"next" json:"next" yaml:"next"`
}

// Edge represents a directed journey edge.
type Edge struct {
	From     string  `json:"from"`
	To       string  `json:"to"`
	Position int     `json:"position"` // index of To in From's journey
	Weight   float64 `json:"weight"`
}

// Graph is an immutable directed graph of tool journeys.
type Graph struct {
	// Node IDs (for index lookup)
	nodes   []string
	nodeIdx map[string]int

	// Adjacency list: outEdges[i] = journey of node i, in order
	outEdges [][]edgeEntry
	inEdges  [][]edgeEntry // Reverse edges, in source declaration order

	alpha float64

	importanceOnce sync.Once
	importance     ImportanceMap
}

type edgeEntry struct {
	target int
	weight float64
}

// EdgeWeight returns the affinity of the target at position in a journey of
// total targets. It falls linearly from MaxEdgeWeight for the first target to
// MinEdgeWeight for the last, and is never outside that range.
func EdgeWeight(position, total int) float64 {
	if total <= 1 || position <= 0 {
		return MaxEdgeWeight
	}
	if position >= total-1 {
		return MinEdgeWeight
	}
	span := MaxEdgeWeight - MinEdgeWeight
	return MaxEdgeWeight - span*float64(position)/float64(total-1)
}

// HasNode checks if a node exists in the graph.
func (g *Graph) HasNode(id string) bool {
	if g == nil {
		return false
	}
	_, ok := g.nodeIdx[id]
	return ok
}

// NumNodes returns the number of nodes in the graph.
func (g *Graph) NumNodes() int {
	if g == nil {
		return 0
	}
	return len(g.nodes)
}

// NumEdges returns the total number of edges.
func (g *Graph) NumEdges() int {
	if g == nil {
		return 0
	}
	total := 0
	for _, edges := range g.outEdges {
		total += len(edges)
	}
	return total
}

// AllNodes returns all node IDs in first-appearance order.
func (g *Graph) AllNodes() []string {
	if g == nil {
		return nil
	}
	out := make([]string, len(g.nodes))
	copy(out, g.nodes)
	return out
}

// Journey returns the ordered next-step targets of id, or nil if id has none.
func (g *Graph) Journey(id string) []string {
	if g == nil {
		return nil
	}
	idx, ok := g.nodeIdx[id]
	if !ok || len(g.outEdges[idx]) == 0 {
		return nil
	}
	return g.names(g.outEdges[idx])
}

// InboundLinks returns every tool whose journey contains id, in the order
// those journeys were declared.
// Unknown ids have no inbound links.
func (g *Graph) InboundLinks(id string) []string {
	if g == nil {
		return []string{}
	}
	idx, ok := g.nodeIdx[id]
	if !ok {
		return []string{}
	}
	return g.names(g.inEdges[idx])
}

// OutDegree returns the length of id's journey.
func (g *Graph) OutDegree(id string) int {
	if g == nil {
		return 0
	}
	if idx, ok := g.nodeIdx[id]; ok {
		return len(g.outEdges[idx])
	}
	return 0
}

// InDegree returns the number of journeys that contain id.
func (g *Graph) InDegree(id string) int {
	if g == nil {
		return 0
	}
	if idx, ok := g.nodeIdx[id]; ok {
		return len(g.inEdges[idx])
	}
	return 0
}

// Edges returns every edge, grouped by source in node order and by journey
// position within a source.
func (g *Graph) Edges() []Edge {
	if g == nil {
		return nil
	}
	edges := make([]Edge, 0, g.NumEdges())
	for from, out := range g.outEdges {
		for pos, e := range out {
			edges = append(edges, Edge{
				From:     g.nodes[from],
				To:       g.nodes[e.target],
				Position: pos,
				Weight:   e.weight,
			})
		}
	}
	return edges
}

func (g *Graph) names(entries []edgeEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = g.nodes[e.target]
	}
	return out
}
