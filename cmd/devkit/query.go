package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
)

var (
	frequentHistory string
	frequentLimit   int
)

// ToolRef is a tool slug with its display title
type ToolRef struct {
	Slug  string `json:"slug"`
	Title string `json:"title"`
}

// RelatedResponseCLI lists tools sharing a category
type RelatedResponseCLI struct {
	Tool     string    `json:"tool"`
	Category string    `json:"category"`
	Related  []ToolRef `json:"related"`
}

// InboundResponseCLI lists tools whose journeys lead to a tool
type InboundResponseCLI struct {
	Tool    string    `json:"tool"`
	Inbound []ToolRef `json:"inbound"`
}

// FrequentResponseCLI lists the most used tools of a history
type FrequentResponseCLI struct {
	History  []string `json:"history"`
	Limit    int      `json:"limit"`
	Frequent []string `json:"frequent"`
}

var relatedCmd = &cobra.Command{
	Use:   "related <tool>",
	Short: "List tools in the same category",
	Args:  cobra.ExactArgs(1),
	RunE:  runRelated,
}

var inboundCmd = &cobra.Command{
	Use:   "inbound <tool>",
	Short: "List tools whose journeys lead to a tool",
	Args:  cobra.ExactArgs(1),
	RunE:  runInbound,
}

var frequentCmd = &cobra.Command{
	Use:   "frequent",
	Short: "Rank tools by how often they occur in a usage history",
	Long: `Count occurrences in a comma-separated history, oldest first.
Ties go to the tool whose first occurrence came earlier.

Example:
  devkit frequent --history=base64,jwt-decoder,base64 --limit=2`,
	Args: cobra.NoArgs,
	RunE: runFrequent,
}

func init() {
	frequentCmd.Flags().StringVar(&frequentHistory, "history", "", "Comma-separated usage history, oldest first")
	frequentCmd.Flags().IntVar(&frequentLimit, "limit", 0, "Maximum tools (default: recommend.historyLimit)")

	rootCmd.AddCommand(relatedCmd)
	rootCmd.AddCommand(inboundCmd)
	rootCmd.AddCommand(frequentCmd)
}

func runRelated(cmd *cobra.Command, args []string) error {
	start := time.Now()
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	tool := args[0]
	if err := a.requireTool(tool); err != nil {
		return err
	}

	category, _ := a.catalog.Directory.Category(tool)
	facts := &RelatedResponseCLI{
		Tool:     tool,
		Category: category,
		Related:  a.toolRefs(a.engine.RelatedByCategory(tool)),
	}
	return writeResponse(cmd, NewResponse("related", facts, a, start))
}

func runInbound(cmd *cobra.Command, args []string) error {
	start := time.Now()
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	tool := args[0]
	if err := a.requireTool(tool); err != nil {
		return err
	}

	facts := &InboundResponseCLI{
		Tool:    tool,
		Inbound: a.toolRefs(a.catalog.Graph.InboundLinks(tool)),
	}
	return writeResponse(cmd, NewResponse("inbound", facts, a, start))
}

func runFrequent(cmd *cobra.Command, args []string) error {
	start := time.Now()
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	limit := frequentLimit
	if limit <= 0 {
		limit = a.engine.HistoryLimit()
	}
	history := splitList(frequentHistory)

	facts := &FrequentResponseCLI{
		History:  history,
		Limit:    limit,
		Frequent: a.engine.FrequentFromHistory(history, limit),
	}
	resp := NewResponse("frequent", facts, a, start)
	for _, slug := range facts.Frequent {
		if !a.catalog.Directory.IsValidToolSlug(slug) {
			resp.AddWarning(fmt.Sprintf("history contains unknown tool %q", slug))
		}
	}
	return writeResponse(cmd, resp)
}

// toolRefs pairs slugs with their titles. The result is never nil.
func (a *app) toolRefs(slugs []string) []ToolRef {
	refs := make([]ToolRef, len(slugs))
	for i, slug := range slugs {
		refs[i] = ToolRef{Slug: slug, Title: a.catalog.Directory.Title(slug)}
	}
	return refs
}
