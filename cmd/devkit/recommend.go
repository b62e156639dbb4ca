package main

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/shjeon-96/dev-tool-kit-sub005/internal/output"
	"github.com/shjeon-96/dev-tool-kit-sub005/internal/recommend"
)

var (
	recommendHistory string
	recommendLimit   int
)

var recommendCmd = &cobra.Command{
	Use:   "recommend <tool>",
	Short: "Rank the tools to show next to a tool",
	Long: `Merge workflow, history and category signals into one ranked list.

Workflow steps weigh 1.0 down to 0.6 by journey position, frequently used
history tools weigh 0.5 and same-category tools weigh 0.3. Each tool appears
once, under its strongest signal, and never the current tool itself.

Examples:
  devkit recommend json-formatter
  devkit recommend base64 --history=jwt-decoder,jwt-decoder,url-encoder
  devkit recommend uuid-generator --limit=3 --format=human`,
	Args: cobra.ExactArgs(1),
	RunE: runRecommend,
}

func init() {
	recommendCmd.Flags().StringVar(&recommendHistory, "history", "", "Comma-separated usage history, oldest first")
	recommendCmd.Flags().IntVar(&recommendLimit, "limit", 0, "Maximum recommendations (default: recommend.maxResults)")
	rootCmd.AddCommand(recommendCmd)
}

// RecommendResponseCLI is the recommend command result
type RecommendResponseCLI struct {
	Tool            string              `json:"tool"`
	Title           string              `json:"title"`
	History         []string            `json:"history"`
	Recommendations []RecommendationCLI `json:"recommendations"`
}

// RecommendationCLI is one ranked recommendation
type RecommendationCLI struct {
	Target string           `json:"target"`
	Title  string           `json:"title"`
	Weight float64          `json:"weight"`
	Reason recommend.Reason `json:"reason"`
}

func runRecommend(cmd *cobra.Command, args []string) error {
	start := time.Now()
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	tool := args[0]
	history := splitList(recommendHistory)
	limit := recommendLimit
	if limit <= 0 {
		limit = a.cfg.Recommend.MaxResults
	}

	// One extra result tells whether the merger had to drop candidates.
	recs := a.engine.WeightedRecommendations(tool, history, limit+1)
	truncated := len(recs) > limit
	if truncated {
		recs = recs[:limit]
	}

	dir := a.catalog.Directory
	facts := &RecommendResponseCLI{
		Tool:            tool,
		Title:           dir.Title(tool),
		History:         history,
		Recommendations: make([]RecommendationCLI, len(recs)),
	}
	for i, r := range recs {
		facts.Recommendations[i] = RecommendationCLI{
			Target: r.Target,
			Title:  dir.Title(r.Target),
			Weight: output.RoundFloat(r.Weight),
			Reason: r.Reason,
		}
	}

	resp := NewResponse("recommend", facts, a, start)
	if !dir.IsValidToolSlug(tool) {
		resp.AddWarning(fmt.Sprintf("unknown tool %q: only history recommendations apply", tool))
	}
	if truncated {
		resp.AddTruncation(fmt.Sprintf("limited to %d recommendations", limit))
	}

	a.logger.Info("Recommendations computed",
		slog.String("tool", tool),
		slog.Int("count", len(recs)),
		slog.Int64("ms", resp.Provenance.QueryDurationMs),
	)
	return writeResponse(cmd, resp)
}

// splitList splits a comma-separated flag value, dropping blanks.
func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
