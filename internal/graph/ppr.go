package graph

import (
	"context"
	"fmt"
	"sort"
	"time"
)

// PPROptions configures PageRank computation.
type PPROptions struct {
	// Damping is the probability of following an edge vs teleporting (default: 0.85)
	Damping float64

	// MaxIterations is the maximum number of power iterations (default: 20)
	MaxIterations int

	// Tolerance for convergence detection (default: 1e-6)
	Tolerance float64

	// TopK is the number of top results to return (default: 20)
	TopK int

	// IncludePaths enables backtracking to explain why nodes were reached
	IncludePaths bool
}

// DefaultPPROptions returns sensible defaults for PPR.
func DefaultPPROptions() PPROptions {
	return PPROptions{
		Damping:       0.85,
		MaxIterations: 20,
		Tolerance:     1e-6,
		TopK:          20,
		IncludePaths:  true,
	}
}

func (o PPROptions) withDefaults() PPROptions {
	if o.Damping <= 0 || o.Damping >= 1 {
		o.Damping = 0.85
	}
	if o.MaxIterations <= 0 {
		o.MaxIterations = 20
	}
	if o.Tolerance <= 0 {
		o.Tolerance = 1e-6
	}
	if o.TopK <= 0 {
		o.TopK = 20
	}
	return o
}

// PPRResult represents a ranked node from a PageRank computation.
type PPRResult struct {
	NodeID string   `json:"nodeId"`
	Score  float64  `json:"score"`
	Path   []string `json:"path,omitempty"` // Path from seed to this node
}

// PPROutput contains the full PageRank computation result.
type PPROutput struct {
	Results       []PPRResult `json:"results"`
	Iterations    int         `json:"iterations"`
	Converged     bool        `json:"converged"`
	SeedNodes     []string    `json:"seedNodes,omitempty"`
	TotalNodes    int         `json:"totalNodes"`
	TotalEdges    int         `json:"totalEdges"`
	ComputationMs int64       `json:"computationMs"`
}

// PPR computes Personalized PageRank with the given seed tools.
// Seeds missing from the graph are ignored; if none remain the result is empty.
func (g *Graph) PPR(ctx context.Context, seeds []string, opts PPROptions) (*PPROutput, error) {
	if len(seeds) == 0 {
		return nil, fmt.Errorf("no seed nodes provided")
	}
	start := time.Now()
	opts = opts.withDefaults()

	seedIndices := make([]int, 0, len(seeds))
	validSeeds := make([]string, 0, len(seeds))
	for _, s := range seeds {
		if g == nil {
			break
		}
		if idx, ok := g.nodeIdx[s]; ok {
			seedIndices = append(seedIndices, idx)
			validSeeds = append(validSeeds, s)
		}
	}

	if len(seedIndices) == 0 {
		return &PPROutput{
			Results:    []PPRResult{},
			SeedNodes:  validSeeds,
			TotalNodes: g.NumNodes(),
			TotalEdges: g.NumEdges(),
		}, nil
	}

	// Initialize teleport vector (uniform over seeds)
	teleport := make([]float64, len(g.nodes))
	teleportWeight := 1.0 / float64(len(seedIndices))
	for _, idx := range seedIndices {
		teleport[idx] += teleportWeight
	}

	scores, iterations, converged, err := g.iterate(ctx, teleport, opts)
	if err != nil {
		return nil, err
	}

	seedSet := make(map[int]bool, len(seedIndices))
	for _, idx := range seedIndices {
		seedSet[idx] = true
	}

	ranked := g.rank(scores, opts.TopK)
	results := make([]PPRResult, len(ranked))
	for i, idx := range ranked {
		result := PPRResult{
			NodeID: g.nodes[idx],
			Score:  scores[idx],
		}
		if opts.IncludePaths && !seedSet[idx] {
			result.Path = g.backtrackPath(idx, seedSet, 5)
		}
		results[i] = result
	}

	return &PPROutput{
		Results:       results,
		Iterations:    iterations,
		Converged:     converged,
		SeedNodes:     validSeeds,
		TotalNodes:    len(g.nodes),
		TotalEdges:    g.NumEdges(),
		ComputationMs: time.Since(start).Milliseconds(),
	}, nil
}

// PageRank computes global PageRank with uniform teleport over all nodes.
// It is an iterative refinement of Importance for callers that want
// transitive influence; it does not replace the degree-based scores.
func (g *Graph) PageRank(ctx context.Context, opts PPROptions) (*PPROutput, error) {
	start := time.Now()
	opts = opts.withDefaults()

	n := g.NumNodes()
	if n == 0 {
		return &PPROutput{Results: []PPRResult{}}, nil
	}

	teleport := make([]float64, n)
	for i := range teleport {
		teleport[i] = 1.0 / float64(n)
	}

	scores, iterations, converged, err := g.iterate(ctx, teleport, opts)
	if err != nil {
		return nil, err
	}

	ranked := g.rank(scores, opts.TopK)
	results := make([]PPRResult, len(ranked))
	for i, idx := range ranked {
		results[i] = PPRResult{NodeID: g.nodes[idx], Score: scores[idx]}
	}

	return &PPROutput{
		Results:       results,
		Iterations:    iterations,
		Converged:     converged,
		TotalNodes:    n,
		TotalEdges:    g.NumEdges(),
		ComputationMs: time.Since(start).Milliseconds(),
	}, nil
}

// iterate runs power iteration from the teleport distribution. Mass held by
// nodes without outgoing edges is returned to the teleport distribution.
func (g *Graph) iterate(ctx context.Context, teleport []float64, opts PPROptions) ([]float64, int, bool, error) {
	n := len(g.nodes)

	scores := make([]float64, n)
	copy(scores, teleport)

	// Pre-compute out-degree normalization
	outDegree := make([]float64, n)
	for i, edges := range g.outEdges {
		for _, e := range edges {
			outDegree[i] += e.weight
		}
	}

	newScores := make([]float64, n)
	var iterations int
	var converged bool

	for iter := range opts.MaxIterations {
		if err := ctx.Err(); err != nil {
			return nil, iterations, false, err
		}
		iterations = iter + 1

		for i := range newScores {
			newScores[i] = 0
		}

		// Propagate scores along edges
		dangling := 0.0
		for i, edges := range g.outEdges {
			if len(edges) == 0 || outDegree[i] == 0 {
				dangling += scores[i]
				continue
			}
			contrib := scores[i] / outDegree[i]
			for _, e := range edges {
				newScores[e.target] += contrib * e.weight
			}
		}

		// Apply damping and teleport
		maxDiff := 0.0
		for i := range newScores {
			newScores[i] = opts.Damping*(newScores[i]+dangling*teleport[i]) + (1-opts.Damping)*teleport[i]
			diff := abs(newScores[i] - scores[i])
			if diff > maxDiff {
				maxDiff = diff
			}
		}

		scores, newScores = newScores, scores

		if maxDiff < opts.Tolerance {
			converged = true
			break
		}
	}

	return scores, iterations, converged, nil
}

// rank returns the indices of the topK positive scores, highest first.
// Ties keep node order.
func (g *Graph) rank(scores []float64, topK int) []int {
	ranked := make([]int, 0, len(scores))
	for i, s := range scores {
		if s > 0 {
			ranked = append(ranked, i)
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return scores[ranked[i]] > scores[ranked[j]]
	})

	if len(ranked) > topK {
		ranked = ranked[:topK]
	}
	return ranked
}

// backtrackPath finds a path from the target back to any seed node.
// Uses greedy backtracking following incoming edges with highest weight.
func (g *Graph) backtrackPath(target int, seedSet map[int]bool, maxDepth int) []string {
	path := []string{g.nodes[target]}
	current := target
	visited := make(map[int]bool)
	visited[target] = true

	for depth := 0; depth < maxDepth; depth++ {
		bestPrev := -1
		bestWeight := 0.0

		for _, e := range g.inEdges[current] {
			if !visited[e.target] && e.weight > bestWeight {
				bestWeight = e.weight
				bestPrev = e.target
			}
		}

		if bestPrev < 0 {
			break
		}

		path = append(path, g.nodes[bestPrev])
		visited[bestPrev] = true

		if seedSet[bestPrev] {
			break
		}

		current = bestPrev
	}

	// Reverse path to go from seed to target
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// FilterResults filters PageRank results by a predicate.
func FilterResults(results []PPRResult, predicate func(PPRResult) bool) []PPRResult {
	filtered := make([]PPRResult, 0, len(results))
	for _, r := range results {
		if predicate(r) {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
