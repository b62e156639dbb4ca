package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shjeon-96/dev-tool-kit-sub005/internal/output"
)

// OutputFormat represents the output format type
type OutputFormat string

const (
	FormatJSON  OutputFormat = "json"
	FormatHuman OutputFormat = "human"
)

// FormatResponse formats a response according to the specified format
func FormatResponse(resp *Response, format OutputFormat) (string, error) {
	switch format {
	case FormatJSON:
		return formatJSON(resp)
	case FormatHuman:
		return formatHuman(resp)
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// formatJSON formats the response as JSON
func formatJSON(resp interface{}) (string, error) {
	data, err := json.MarshalIndent(resp, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return string(data), nil
}

// formatHuman renders the facts of resp, followed by any warnings.
func formatHuman(resp *Response) (string, error) {
	var b strings.Builder

	switch v := resp.Facts.(type) {
	case *RecommendResponseCLI:
		formatRecommendHuman(&b, v)
	case *RelatedResponseCLI:
		formatToolListHuman(&b, fmt.Sprintf("Related to %s (%s)", v.Tool, v.Category), v.Related)
	case *InboundResponseCLI:
		formatToolListHuman(&b, fmt.Sprintf("Journeys leading to %s", v.Tool), v.Inbound)
	case *FrequentResponseCLI:
		formatFrequentHuman(&b, v)
	case *ImportanceResponseCLI:
		formatImportanceHuman(&b, v)
	case *LinksResponseCLI:
		formatLinksHuman(&b, v)
	case *ValidateResponseCLI:
		formatValidateHuman(&b, v)
	case *ToolsResponseCLI:
		formatToolsHuman(&b, v)
	case *ExportResponseCLI:
		fmt.Fprintf(&b, "Exported %d tools to %s (%s, %s, %d bytes)\n", v.Tools, v.Path, v.Format, v.Compression, v.Bytes)
	default:
		// Unknown facts fall back to JSON
		return formatJSON(resp)
	}

	if resp.Provenance != nil {
		for _, w := range resp.Provenance.Warnings {
			fmt.Fprintf(&b, "warning: %s\n", w)
		}
	}
	return strings.TrimRight(b.String(), "\n"), nil
}

func formatRecommendHuman(b *strings.Builder, v *RecommendResponseCLI) {
	fmt.Fprintf(b, "Recommendations for %s\n", v.Title)
	b.WriteString(strings.Repeat("=", 60) + "\n")
	if len(v.Recommendations) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	for i, r := range v.Recommendations {
		fmt.Fprintf(b, "%2d. %-28s %.2f  %s\n", i+1, r.Title, r.Weight, r.Reason)
	}
}

func formatToolListHuman(b *strings.Builder, header string, refs []ToolRef) {
	b.WriteString(header + "\n")
	if len(refs) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	for _, r := range refs {
		fmt.Fprintf(b, "  %-28s %s\n", r.Slug, r.Title)
	}
}

func formatFrequentHuman(b *strings.Builder, v *FrequentResponseCLI) {
	fmt.Fprintf(b, "Most frequent of %d history entries\n", len(v.History))
	if len(v.Frequent) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	for i, slug := range v.Frequent {
		fmt.Fprintf(b, "%2d. %s\n", i+1, slug)
	}
}

func formatImportanceHuman(b *strings.Builder, v *ImportanceResponseCLI) {
	fmt.Fprintf(b, "Tool importance (%s)\n", v.Method)
	b.WriteString(strings.Repeat("=", 60) + "\n")
	for i, t := range v.Tools {
		fmt.Fprintf(b, "%2d. %-28s %10s\n", i+1, t.Slug, output.FormatFloat(t.Score))
	}
}

func formatLinksHuman(b *strings.Builder, v *LinksResponseCLI) {
	if v.Tool == "" {
		b.WriteString("Hub links\n")
	} else {
		fmt.Fprintf(b, "Internal links for %s\n", v.Tool)
	}
	if len(v.Links) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	for _, l := range v.Links {
		fmt.Fprintf(b, "  [%-6s] %-28s %s", l.Relation, l.Title, output.FormatFloat(l.Score))
		if len(l.Path) > 0 {
			fmt.Fprintf(b, "  via %s", strings.Join(l.Path, " → "))
		}
		b.WriteString("\n")
	}
}

func formatValidateHuman(b *strings.Builder, v *ValidateResponseCLI) {
	status := "OK"
	if !v.Valid {
		status = "INVALID"
	}
	fmt.Fprintf(b, "Catalog %s: %d errors, %d warnings\n", status, v.Errors, v.Warnings)
	fmt.Fprintf(b, "  %d tools, %d edges, %d isolated\n", v.Stats.TotalNodes, v.Stats.TotalEdges, v.Stats.Isolated)
	for _, issue := range v.Issues {
		fmt.Fprintf(b, "  %-7s %-18s %s\n", issue.Severity, issue.Code, issue.Message)
	}
}

func formatToolsHuman(b *strings.Builder, v *ToolsResponseCLI) {
	for _, t := range v.Tools {
		fmt.Fprintf(b, "  %-28s %-12s %s\n", t.Slug, t.Category, t.Title)
	}
	fmt.Fprintf(b, "%d tools\n", len(v.Tools))
}
