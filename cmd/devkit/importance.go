package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shjeon-96/dev-tool-kit-sub005/internal/errors"
	"github.com/shjeon-96/dev-tool-kit-sub005/internal/graph"
	"github.com/shjeon-96/dev-tool-kit-sub005/internal/output"
)

var (
	importanceLimit    int
	importancePageRank bool
)

var importanceCmd = &cobra.Command{
	Use:   "importance [tool...]",
	Short: "Score tools by journey centrality",
	Long: `Score tools by degree centrality over the journey graph:

  importance = 1 + inbound + alpha * outbound

With no arguments every directory tool is ranked. --pagerank ranks graph
tools by global PageRank instead, which also credits indirect links.

Examples:
  devkit importance --limit=10
  devkit importance json-formatter base64
  devkit importance --pagerank --format=human`,
	RunE: runImportance,
}

func init() {
	importanceCmd.Flags().IntVar(&importanceLimit, "limit", 0, "Maximum tools to list (0 = all)")
	importanceCmd.Flags().BoolVar(&importancePageRank, "pagerank", false, "Rank by global PageRank instead of degree")
	rootCmd.AddCommand(importanceCmd)
}

// ImportanceResponseCLI is the importance command result
type ImportanceResponseCLI struct {
	Method     string          `json:"method"` // "degree" or "pagerank"
	Alpha      float64         `json:"alpha,omitempty"`
	Iterations int             `json:"iterations,omitempty"`
	Converged  bool            `json:"converged,omitempty"`
	Tools      []ImportanceCLI `json:"tools"`
}

// ImportanceCLI is one scored tool
type ImportanceCLI struct {
	Slug  string  `json:"slug"`
	Title string  `json:"title"`
	Score float64 `json:"score"`
}

func runImportance(cmd *cobra.Command, args []string) error {
	start := time.Now()
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	for _, slug := range args {
		if err := a.requireTool(slug); err != nil {
			return err
		}
	}

	var facts *ImportanceResponseCLI
	if importancePageRank {
		facts, err = a.pageRank(cmd, args)
		if err != nil {
			return err
		}
	} else {
		facts = a.degreeImportance(args)
	}

	resp := NewResponse("importance", facts, a, start)
	if importanceLimit > 0 && len(facts.Tools) > importanceLimit {
		resp.AddTruncation(fmt.Sprintf("showing %d of %d tools", importanceLimit, len(facts.Tools)))
		facts.Tools = facts.Tools[:importanceLimit]
	}
	return writeResponse(cmd, resp)
}

func (a *app) degreeImportance(slugs []string) *ImportanceResponseCLI {
	if len(slugs) == 0 {
		slugs = a.catalog.Directory.Slugs()
	}
	ranked := a.catalog.Graph.ImportanceFor(slugs).Ranked(slugs)

	facts := &ImportanceResponseCLI{
		Method: "degree",
		Alpha:  a.cfg.Importance.Alpha,
		Tools:  make([]ImportanceCLI, len(ranked)),
	}
	for i, r := range ranked {
		facts.Tools[i] = ImportanceCLI{Slug: r.Tool, Title: a.catalog.Directory.Title(r.Tool), Score: output.RoundFloat(r.Importance)}
	}
	return facts
}

func (a *app) pageRank(cmd *cobra.Command, slugs []string) (*ImportanceResponseCLI, error) {
	opts := graph.DefaultPPROptions()
	opts.TopK = a.catalog.Graph.NumNodes()

	out, err := a.catalog.Graph.PageRank(cmd.Context(), opts)
	if err != nil {
		return nil, errors.New(errors.InternalError, "PageRank failed", err)
	}

	want := make(map[string]bool, len(slugs))
	for _, s := range slugs {
		want[s] = true
	}

	facts := &ImportanceResponseCLI{
		Method:     "pagerank",
		Iterations: out.Iterations,
		Converged:  out.Converged,
		Tools:      []ImportanceCLI{},
	}
	for _, r := range out.Results {
		if len(want) > 0 && !want[r.NodeID] {
			continue
		}
		facts.Tools = append(facts.Tools, ImportanceCLI{Slug: r.NodeID, Title: a.catalog.Directory.Title(r.NodeID), Score: output.RoundFloat(r.Score)})
	}
	return facts, nil
}
