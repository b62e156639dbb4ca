package export

import (
	"context"
	"log/slog"
	"time"

	"github.com/shjeon-96/dev-tool-kit-sub005/internal/catalog"
	"github.com/shjeon-96/dev-tool-kit-sub005/internal/errors"
	"github.com/shjeon-96/dev-tool-kit-sub005/internal/graph"
	"github.com/shjeon-96/dev-tool-kit-sub005/internal/recommend"
	"github.com/shjeon-96/dev-tool-kit-sub005/internal/seo"
	"github.com/shjeon-96/dev-tool-kit-sub005/internal/version"
)

// Exporter builds the site link graph from a loaded catalog
type Exporter struct {
	catalog *catalog.Catalog
	engine  *recommend.Engine
	planner *seo.Planner
	alpha   float64
	logger  *slog.Logger
	now     func() time.Time
}

// NewExporter creates a new exporter
func NewExporter(c *catalog.Catalog, engine *recommend.Engine, planner *seo.Planner, alpha float64, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Exporter{
		catalog: c,
		engine:  engine,
		planner: planner,
		alpha:   alpha,
		logger:  logger,
		now:     time.Now,
	}
}

// Export generates the site link graph. Tools appear in directory order.
func (e *Exporter) Export(ctx context.Context, opts ExportOptions) (*SiteExport, error) {
	if opts.LinkLimit <= 0 {
		opts.LinkLimit = seo.DefaultLinkLimit
	}
	if opts.MaxRecommendations <= 0 {
		opts.MaxRecommendations = recommend.DefaultMaxResults
	}
	if opts.HubCount <= 0 {
		opts.HubCount = DefaultHubCount
	}

	dir := e.catalog.Directory
	g := e.catalog.Graph

	e.logger.Debug("Starting site export",
		slog.String("category", opts.Category),
		slog.Int("linkLimit", opts.LinkLimit),
	)

	importance := g.ImportanceFor(dir.Slugs())
	maxImportance := graph.BaselineImportance
	for _, v := range importance {
		maxImportance = max(maxImportance, v)
	}

	export := &SiteExport{
		Metadata: ExportMetadata{
			Version:       version.Version,
			Generated:     e.now().UTC().Format(time.RFC3339),
			CategoryCount: len(dir.Categories()),
			JourneyCount:  len(e.catalog.Journeys),
			EdgeCount:     g.NumEdges(),
			Alpha:         e.alpha,
		},
		Hubs:  e.planner.Hubs(opts.HubCount),
		Tools: make([]ExportTool, 0, dir.Len()),
	}

	for _, t := range dir.All() {
		if err := ctx.Err(); err != nil {
			return nil, errors.New(errors.ExportFailed, "export canceled", err)
		}
		if opts.Category != "" && t.Category != opts.Category {
			continue
		}
		imp := importance[t.Slug]
		if imp < opts.MinImportance {
			continue
		}

		links, err := e.planner.Links(ctx, t.Slug, opts.LinkLimit)
		if err != nil {
			return nil, errors.New(errors.ExportFailed, "failed to plan links", err).
				WithDetails(map[string]string{"tool": t.Slug})
		}

		journey := g.Journey(t.Slug)
		if journey == nil {
			journey = []string{}
		}

		export.Tools = append(export.Tools, ExportTool{
			Slug:            t.Slug,
			Title:           dir.Title(t.Slug),
			Category:        t.Category,
			Importance:      imp,
			Stars:           CalculateImportance(imp, maxImportance),
			Journey:         journey,
			Inbound:         g.InboundLinks(t.Slug),
			Links:           links,
			Recommendations: e.engine.WeightedRecommendations(t.Slug, nil, opts.MaxRecommendations),
		})
	}

	export.Metadata.ToolCount = len(export.Tools)

	e.logger.Debug("Site export complete",
		slog.Int("tools", export.Metadata.ToolCount),
		slog.Int("edges", export.Metadata.EdgeCount),
	)
	return export, nil
}
