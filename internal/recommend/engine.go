package recommend

import (
	"log/slog"
	"sort"
)

// Engine merges the workflow, history and category signals into one ranked
// recommendation list.
type Engine struct {
	dir          Directory
	workflow     Workflow
	historyLimit int
	logger       *slog.Logger
}

// Option configures an Engine.
type Option func(*Engine)

// WithHistoryLimit sets how many of the most frequent history tools are
// considered. Non-positive values keep the default.
func WithHistoryLimit(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.historyLimit = n
		}
	}
}

// WithLogger sets the engine logger.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates a recommendation engine over a directory and workflow graph.
func NewEngine(dir Directory, wf Workflow, opts ...Option) *Engine {
	e := &Engine{
		dir:          dir,
		workflow:     wf,
		historyLimit: DefaultHistoryLimit,
		logger:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// HistoryLimit returns how many history tools the engine considers.
func (e *Engine) HistoryLimit() int {
	return e.historyLimit
}

// RelatedByCategory returns every tool sharing tool's category, excluding tool.
func (e *Engine) RelatedByCategory(tool string) []string {
	return RelatedByCategory(e.dir, tool)
}

// FrequentFromHistory returns up to limit of the most visited tools.
func (e *Engine) FrequentFromHistory(history []string, limit int) []string {
	return FrequentFromHistory(history, limit)
}

// candidate is a recommendation with the bookkeeping needed for stable ranking.
type candidate struct {
	Recommendation
	order int
}

// WeightedRecommendations returns up to maxResults recommendations for tool.
//
// Sources are gathered in priority order (workflow, history, category) and
// the first occurrence of each target wins, so a workflow step is never
// down-weighted by a weaker signal. The result is sorted by weight, then
// source priority, then discovery order. Targets are always directory-known
// and never tool itself.
func (e *Engine) WeightedRecommendations(tool string, history []string, maxResults int) []Recommendation {
	if maxResults <= 0 {
		return []Recommendation{}
	}

	seen := map[string]bool{tool: true}
	var candidates []candidate
	add := func(r Recommendation) {
		if seen[r.Target] || !e.valid(r.Target) {
			return
		}
		seen[r.Target] = true
		candidates = append(candidates, candidate{Recommendation: r, order: len(candidates)})
	}

	workflow := WorkflowCandidates(e.workflow, tool)
	for _, r := range workflow {
		add(r)
	}

	frequent := FrequentFromHistory(e.eligibleHistory(tool, history), e.historyLimit)
	for _, id := range frequent {
		add(Recommendation{Target: id, Weight: HistoryWeight, Reason: ReasonHistory})
	}

	related := RelatedByCategory(e.dir, tool)
	for _, id := range related {
		add(Recommendation{Target: id, Weight: CategoryWeight, Reason: ReasonCategory})
	}

	sort.SliceStable(candidates, func(i, j int) bool {
		a, b := candidates[i], candidates[j]
		if a.Weight != b.Weight {
			return a.Weight > b.Weight
		}
		if pa, pb := a.Reason.priority(), b.Reason.priority(); pa != pb {
			return pa < pb
		}
		return a.order < b.order
	})

	if len(candidates) > maxResults {
		candidates = candidates[:maxResults]
	}

	out := make([]Recommendation, len(candidates))
	for i, c := range candidates {
		out[i] = c.Recommendation
	}

	e.logger.Debug("Resolved recommendations",
		slog.String("tool", tool),
		slog.Int("workflow", len(workflow)),
		slog.Int("history", len(frequent)),
		slog.Int("category", len(related)),
		slog.Int("returned", len(out)),
	)

	return out
}

// eligibleHistory drops visits that could never become recommendations so
// they do not take up history slots.
func (e *Engine) eligibleHistory(tool string, history []string) []string {
	if len(history) == 0 {
		return nil
	}
	out := make([]string, 0, len(history))
	for _, id := range history {
		if id != tool && e.valid(id) {
			out = append(out, id)
		}
	}
	return out
}

func (e *Engine) valid(id string) bool {
	return e.dir != nil && e.dir.IsValidToolSlug(id)
}
