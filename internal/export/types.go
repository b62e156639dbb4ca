// Package export produces the site link graph: every tool page with its
// importance, journey, inbound links, planned internal links and top
// recommendations, ready for a static site generator.
package export

import (
	"github.com/shjeon-96/dev-tool-kit-sub005/internal/recommend"
	"github.com/shjeon-96/dev-tool-kit-sub005/internal/seo"
)

// SiteExport is the main export structure
type SiteExport struct {
	Metadata ExportMetadata `json:"metadata" yaml:"metadata" toml:"metadata"`
	Hubs     []seo.Link     `json:"hubs" yaml:"hubs" toml:"hubs"`
	Tools    []ExportTool   `json:"tools" yaml:"tools" toml:"tools"`
}

// ExportMetadata contains metadata about the export
type ExportMetadata struct {
	Version       string  `json:"version" yaml:"version" toml:"version"`
	Generated     string  `json:"generated" yaml:"generated" toml:"generated"` // ISO 8601 timestamp
	ToolCount     int     `json:"toolCount" yaml:"toolCount" toml:"toolCount"`
	CategoryCount int     `json:"categoryCount" yaml:"categoryCount" toml:"categoryCount"`
	JourneyCount  int     `json:"journeyCount" yaml:"journeyCount" toml:"journeyCount"`
	EdgeCount     int     `json:"edgeCount" yaml:"edgeCount" toml:"edgeCount"`
	Alpha         float64 `json:"alpha" yaml:"alpha" toml:"alpha"`
}

// ExportTool is one tool page in the export
type ExportTool struct {
	Slug            string                     `json:"slug" yaml:"slug" toml:"slug"`
	Title           string                     `json:"title" yaml:"title" toml:"title"`
	Category        string                     `json:"category" yaml:"category" toml:"category"`
	Importance      float64                    `json:"importance" yaml:"importance" toml:"importance"`
	Stars           ImportanceLevel            `json:"stars" yaml:"stars" toml:"stars"`
	Journey         []string                   `json:"journey" yaml:"journey" toml:"journey"`
	Inbound         []string                   `json:"inbound" yaml:"inbound" toml:"inbound"`
	Links           []seo.Link                 `json:"links" yaml:"links" toml:"links"`
	Recommendations []recommend.Recommendation `json:"recommendations" yaml:"recommendations" toml:"recommendations"`
}

// ExportOptions configures the export
type ExportOptions struct {
	Category           string  // Only export tools in this category
	MinImportance      float64 // Only export tools with importance >= N
	LinkLimit          int     // Planned links per tool (default: seo.DefaultLinkLimit)
	MaxRecommendations int     // Recommendations per tool (default: recommend.DefaultMaxResults)
	HubCount           int     // Site-wide hubs (default: 5)
}

// DefaultHubCount is the number of site-wide hubs exported by default.
const DefaultHubCount = 5

// ImportanceLevel is a coarse 1-3 rating of a tool's importance
type ImportanceLevel int

const (
	ImportanceLow    ImportanceLevel = 1
	ImportanceMedium ImportanceLevel = 2
	ImportanceHigh   ImportanceLevel = 3
)

// CalculateImportance rates importance relative to the most important tool
// on the site.
func CalculateImportance(importance, maxImportance float64) ImportanceLevel {
	if maxImportance <= 0 {
		return ImportanceLow
	}
	ratio := importance / maxImportance
	if ratio >= 0.66 {
		return ImportanceHigh
	} else if ratio >= 0.33 {
		return ImportanceMedium
	}
	return ImportanceLow
}
