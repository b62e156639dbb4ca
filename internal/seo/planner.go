// Package seo plans internal links between tool pages.
//
// A page links to the tools its journey leads to, the tools whose journeys
// lead to it, and tools reached by a personalized PageRank walk from it. Tools
// with no journey data fall back to the site's hubs.
package seo

import (
	"context"
	"log/slog"
	"sort"

	"github.com/shjeon-96/dev-tool-kit-sub005/internal/graph"
	"github.com/shjeon-96/dev-tool-kit-sub005/internal/tools"
)

// DefaultLinkLimit is the number of links planned per page when the caller
// does not choose one.
const DefaultLinkLimit = 8

// Relation describes why a link was planned.
type Relation string

const (
	// RelationNext links to a step of the tool's own journey.
	RelationNext Relation = "next"
	// RelationPrev links to a tool whose journey leads here.
	RelationPrev Relation = "prev"
	// RelationNearby links to a tool reached by a random walk from this one.
	RelationNearby Relation = "nearby"
	// RelationHub links to one of the most important tools on the site.
	RelationHub Relation = "hub"
)

// Link is a planned internal link.
type Link struct {
	Target   string   `json:"target" yaml:"target" toml:"target"`
	Title    string   `json:"title" yaml:"title" toml:"title"`
	Score    float64  `json:"score" yaml:"score" toml:"score"`
	Relation Relation `json:"relation" yaml:"relation" toml:"relation"`

	// Path is the journey chain from the linking tool to Target, set on
	// nearby links.
	Path []string `json:"path,omitempty" yaml:"path,omitempty" toml:"path,omitempty"`
}

// Planner plans internal links over a directory and workflow graph.
type Planner struct {
	graph      *graph.Graph
	dir        *tools.Directory
	importance graph.ImportanceMap
	pprOpts    graph.PPROptions
	logger     *slog.Logger
}

// Option configures a Planner.
type Option func(*Planner)

// WithPPROptions sets the random walk parameters used for nearby links.
func WithPPROptions(opts graph.PPROptions) Option {
	return func(p *Planner) {
		p.pprOpts = opts
	}
}

// WithLogger sets the planner logger.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Planner) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// NewPlanner creates a planner. Importance is captured once for every
// directory tool.
func NewPlanner(g *graph.Graph, dir *tools.Directory, opts ...Option) *Planner {
	p := &Planner{
		graph:      g,
		dir:        dir,
		importance: g.ImportanceFor(dir.Slugs()),
		pprOpts:    graph.DefaultPPROptions(),
		logger:     slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Links plans up to limit links for tool's page: journey steps first in
// journey order, then inbound sources by importance, then nearby tools by
// walk score weighted by importance. Targets are unique, never tool itself,
// and always known to the directory. An unknown tool or non-positive limit
// yields no links.
func (p *Planner) Links(ctx context.Context, tool string, limit int) ([]Link, error) {
	if limit <= 0 || !p.dir.IsValidToolSlug(tool) {
		return []Link{}, nil
	}

	seen := map[string]bool{tool: true}
	links := make([]Link, 0, limit)
	add := func(target string, score float64, rel Relation, path []string) bool {
		if len(links) >= limit {
			return false
		}
		if seen[target] || !p.dir.IsValidToolSlug(target) {
			return true
		}
		seen[target] = true
		links = append(links, Link{
			Target:   target,
			Title:    p.dir.Title(target),
			Score:    score,
			Relation: rel,
			Path:     path,
		})
		return true
	}

	if !p.graph.HasNode(tool) {
		for _, hub := range p.hubs(limit + 1) {
			add(hub.Tool, hub.Importance, RelationHub, nil)
		}
		return links, nil
	}

	journey := p.graph.Journey(tool)
	for i, next := range journey {
		if !add(next, graph.EdgeWeight(i, len(journey)), RelationNext, nil) {
			return links, nil
		}
	}

	inbound := p.graph.InboundLinks(tool)
	prev := make(graph.ImportanceMap, len(inbound))
	for _, src := range inbound {
		prev[src] = p.importance[src]
	}
	for _, r := range prev.Ranked(inbound) {
		if !add(r.Tool, r.Importance, RelationPrev, nil) {
			return links, nil
		}
	}

	nearby, err := p.nearby(ctx, tool)
	if err != nil {
		return nil, err
	}
	for _, n := range nearby {
		if !add(n.target, n.score, RelationNearby, n.path) {
			break
		}
	}

	p.logger.Debug("Planned links",
		slog.String("tool", tool),
		slog.Int("links", len(links)),
	)
	return links, nil
}

type scored struct {
	target string
	score  float64
	path   []string
}

// nearby runs a walk seeded at tool and weights each reached tool's walk
// score by its importance.
func (p *Planner) nearby(ctx context.Context, tool string) ([]scored, error) {
	out, err := p.graph.PPR(ctx, []string{tool}, p.pprOpts)
	if err != nil {
		return nil, err
	}

	results := make([]scored, 0, len(out.Results))
	reached := graph.FilterResults(out.Results, func(r graph.PPRResult) bool {
		return r.NodeID != tool && r.Score > 0
	})
	for _, r := range reached {
		results = append(results, scored{
			target: r.NodeID,
			score:  r.Score * p.graph.ImportanceOf(r.NodeID),
			path:   r.Path,
		})
	}
	sort.SliceStable(results, func(i, j int) bool {
		return results[i].score > results[j].score
	})
	return results, nil
}

// Hubs returns the limit most important directory tools, ties broken by
// directory order.
func (p *Planner) Hubs(limit int) []Link {
	if limit <= 0 {
		return []Link{}
	}
	ranked := p.hubs(limit)
	links := make([]Link, len(ranked))
	for i, r := range ranked {
		links[i] = Link{
			Target:   r.Tool,
			Title:    p.dir.Title(r.Tool),
			Score:    r.Importance,
			Relation: RelationHub,
		}
	}
	return links
}

func (p *Planner) hubs(limit int) []graph.RankedTool {
	ranked := p.importance.Ranked(p.dir.Slugs())
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
