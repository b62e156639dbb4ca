// Package catalog loads the tool directory and the workflow journeys that
// together make up devkit's static data, and checks their integrity.
package catalog

import (
	_ "embed"
	"fmt"
	"log/slog"
	"os"
	"sync"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/shjeon-96/dev-tool-kit-sub005/internal/errors"
	"github.com/shjeon-96/dev-tool-kit-sub005/internal/graph"
	"github.com/shjeon-96/dev-tool-kit-sub005/internal/tools"
)

//go:embed journeys.toml
var journeysTOML []byte

// journeysFile is the root structure of a journeys TOML file.
type journeysFile struct {
	Journey []graph.Journey `toml:"journey"`
}

// Catalog is the loaded, immutable tool data.
type Catalog struct {
	Directory *tools.Directory
	Graph     *graph.Graph
	Journeys  []graph.Journey
}

// Options configures Load.
type Options struct {
	// DirectoryPath is a YAML tool directory; empty uses the built-in directory.
	DirectoryPath string
	// JourneysPath is a TOML journeys file; empty uses the built-in journeys.
	JourneysPath string
	// Alpha weights outbound edges in importance scores.
	Alpha float64
	// Logger receives load diagnostics; nil discards them.
	Logger *slog.Logger
}

// ParseJourneys decodes a journeys TOML document.
func ParseJourneys(data []byte) ([]graph.Journey, error) {
	var f journeysFile
	if err := toml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("failed to parse journeys: %w", err)
	}
	return f.Journey, nil
}

var defaultJourneys = sync.OnceValues(func() ([]graph.Journey, error) {
	return ParseJourneys(journeysTOML)
})

// DefaultJourneys returns a copy of the built-in journeys.
func DefaultJourneys() ([]graph.Journey, error) {
	j, err := defaultJourneys()
	if err != nil {
		return nil, err
	}
	out := make([]graph.Journey, len(j))
	for i := range j {
		out[i] = graph.Journey{Tool: j[i].Tool, Next: append([]string(nil), j[i].Next...)}
	}
	return out, nil
}

// Load reads the directory and journeys and builds the workflow graph.
// Integrity problems in the data are not load errors; run Validate for those.
func Load(opts Options) (*Catalog, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	dir := tools.Default()
	if opts.DirectoryPath != "" {
		data, err := os.ReadFile(opts.DirectoryPath)
		if err != nil {
			return nil, errors.New(errors.CatalogInvalid, "failed to read tool directory", err).
				WithDetails(map[string]string{"path": opts.DirectoryPath})
		}
		dir, err = tools.Parse(data)
		if err != nil {
			return nil, errors.New(errors.CatalogInvalid, "invalid tool directory", err).
				WithDetails(map[string]string{"path": opts.DirectoryPath})
		}
	}

	var journeys []graph.Journey
	if opts.JourneysPath != "" {
		data, err := os.ReadFile(opts.JourneysPath)
		if err != nil {
			return nil, errors.New(errors.CatalogInvalid, "failed to read journeys", err).
				WithDetails(map[string]string{"path": opts.JourneysPath})
		}
		journeys, err = ParseJourneys(data)
		if err != nil {
			return nil, errors.New(errors.CatalogInvalid, "invalid journeys", err).
				WithDetails(map[string]string{"path": opts.JourneysPath})
		}
	} else {
		var err error
		journeys, err = DefaultJourneys()
		if err != nil {
			return nil, errors.New(errors.InternalError, "built-in journeys are malformed", err)
		}
	}

	buildOpts := graph.DefaultBuildOptions()
	if opts.Alpha != 0 {
		buildOpts.Alpha = opts.Alpha
	}
	g := graph.Build(journeys, buildOpts)

	stats := g.Stats()
	logger.Debug("Catalog loaded",
		slog.Int("tools", dir.Len()),
		slog.Int("journeys", len(journeys)),
		slog.Int("nodes", stats.TotalNodes),
		slog.Int("edges", stats.TotalEdges),
	)

	return &Catalog{
		Directory: dir,
		Graph:     g,
		Journeys:  journeys,
	}, nil
}
