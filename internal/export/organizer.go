package export

import (
	"fmt"
	"sort"
	"strings"
)

// Organizer groups an export by category for human reading.
// It adds:
// 1. Category map (overview of every category with its top tools)
// 2. Cross-category bridges (journey edges that leave a category)
// 3. Tools clustered by category in importance order
type Organizer struct {
	export *SiteExport
}

// NewOrganizer creates a new organizer.
func NewOrganizer(export *SiteExport) *Organizer {
	return &Organizer{export: export}
}

// CategorySummary is a high-level category overview.
type CategorySummary struct {
	Category  string   `json:"category"`
	ToolCount int      `json:"toolCount"`
	TopTools  []string `json:"topTools,omitempty"`
}

// CategoryBridge counts journey edges from one category into another.
type CategoryBridge struct {
	FromCategory string `json:"fromCategory"`
	ToCategory   string `json:"toCategory"`
	EdgeCount    int    `json:"edgeCount"`
}

// CategoryCluster is the tools of one category, most important first.
type CategoryCluster struct {
	Category string       `json:"category"`
	Tools    []ExportTool `json:"tools"`
}

// OrganizedExport contains the structured output.
type OrganizedExport struct {
	CategoryMap []CategorySummary `json:"categoryMap"`
	Bridges     []CategoryBridge  `json:"bridges,omitempty"`
	Clusters    []CategoryCluster `json:"clusters"`

	TotalTools      int `json:"totalTools"`
	TotalCategories int `json:"totalCategories"`
	TotalEdges      int `json:"totalEdges"`
}

// Organize structures the export by category.
func (o *Organizer) Organize() *OrganizedExport {
	if o.export == nil {
		return &OrganizedExport{}
	}

	// Categories in first-appearance order
	var order []string
	byCategory := make(map[string][]ExportTool)
	categoryOf := make(map[string]string, len(o.export.Tools))
	for _, t := range o.export.Tools {
		if _, ok := byCategory[t.Category]; !ok {
			order = append(order, t.Category)
		}
		byCategory[t.Category] = append(byCategory[t.Category], t)
		categoryOf[t.Slug] = t.Category
	}

	result := &OrganizedExport{
		CategoryMap:     make([]CategorySummary, 0, len(order)),
		Clusters:        make([]CategoryCluster, 0, len(order)),
		TotalTools:      len(o.export.Tools),
		TotalCategories: len(order),
		TotalEdges:      o.export.Metadata.EdgeCount,
	}

	for _, cat := range order {
		clustered := append([]ExportTool(nil), byCategory[cat]...)
		sort.SliceStable(clustered, func(i, j int) bool {
			return clustered[i].Importance > clustered[j].Importance
		})

		top := make([]string, 0, 3)
		for i := 0; i < min(3, len(clustered)); i++ {
			top = append(top, clustered[i].Slug)
		}

		result.CategoryMap = append(result.CategoryMap, CategorySummary{
			Category:  cat,
			ToolCount: len(clustered),
			TopTools:  top,
		})
		result.Clusters = append(result.Clusters, CategoryCluster{Category: cat, Tools: clustered})
	}

	// Largest categories first
	sort.SliceStable(result.CategoryMap, func(i, j int) bool {
		return result.CategoryMap[i].ToolCount > result.CategoryMap[j].ToolCount
	})

	result.Bridges = detectBridges(o.export.Tools, categoryOf)
	return result
}

// detectBridges counts journey edges whose endpoints sit in different
// categories. Targets outside the export are ignored.
func detectBridges(tools []ExportTool, categoryOf map[string]string) []CategoryBridge {
	type key struct{ from, to string }
	counts := make(map[key]int)
	var keys []key

	for _, t := range tools {
		for _, next := range t.Journey {
			to, ok := categoryOf[next]
			if !ok || to == t.Category {
				continue
			}
			k := key{t.Category, to}
			if counts[k] == 0 {
				keys = append(keys, k)
			}
			counts[k]++
		}
	}

	bridges := make([]CategoryBridge, 0, len(keys))
	for _, k := range keys {
		bridges = append(bridges, CategoryBridge{FromCategory: k.from, ToCategory: k.to, EdgeCount: counts[k]})
	}
	sort.SliceStable(bridges, func(i, j int) bool {
		return bridges[i].EdgeCount > bridges[j].EdgeCount
	})
	return bridges
}

// FormatOrganizedText renders an organized export as Markdown.
func FormatOrganizedText(org *OrganizedExport) string {
	var sb strings.Builder

	sb.WriteString("# Tool Link Graph\n\n")

	sb.WriteString("## Category Map\n\n")
	sb.WriteString("| Category | Tools | Top Tools |\n")
	sb.WriteString("|----------|-------|-----------|\n")
	for _, c := range org.CategoryMap {
		top := strings.Join(c.TopTools, ", ")
		if top == "" {
			top = "-"
		}
		fmt.Fprintf(&sb, "| %s | %d | %s |\n", c.Category, c.ToolCount, top)
	}
	sb.WriteString("\n")

	if len(org.Bridges) > 0 {
		sb.WriteString("## Cross-Category Journeys\n\n")
		for _, b := range org.Bridges {
			fmt.Fprintf(&sb, "- %s → %s (%d)\n", b.FromCategory, b.ToCategory, b.EdgeCount)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("## Tools\n\n")
	for _, c := range org.Clusters {
		fmt.Fprintf(&sb, "### %s\n\n", c.Category)
		for _, t := range c.Tools {
			line := fmt.Sprintf("- **%s** (`%s`) %s %.2f", t.Title, t.Slug, strings.Repeat("★", int(t.Stars)), t.Importance)
			if len(t.Journey) > 0 {
				line += " → " + strings.Join(t.Journey, ", ")
			}
			sb.WriteString(line + "\n")
		}
		sb.WriteString("\n")
	}

	fmt.Fprintf(&sb, "---\n")
	fmt.Fprintf(&sb, "Total: %d categories, %d tools, %d journey edges\n",
		org.TotalCategories, org.TotalTools, org.TotalEdges)

	return sb.String()
}
