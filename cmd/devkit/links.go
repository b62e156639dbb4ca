package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/shjeon-96/dev-tool-kit-sub005/internal/errors"
	"github.com/shjeon-96/dev-tool-kit-sub005/internal/output"
	"github.com/shjeon-96/dev-tool-kit-sub005/internal/seo"
)

var linksLimit int

var linksCmd = &cobra.Command{
	Use:   "links [tool]",
	Short: "Plan internal links for a tool page",
	Long: `Plan the internal links a tool page should carry: its journey steps,
the tools leading to it and tools nearby in the journey graph. Without a
tool, the site-wide hub links are listed.

Examples:
  devkit links json-formatter
  devkit links --limit=3`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLinks,
}

func init() {
	linksCmd.Flags().IntVar(&linksLimit, "limit", 0, "Maximum links (default: seo.linkLimit, or seo.hubCount for hubs)")
	rootCmd.AddCommand(linksCmd)
}

// LinksResponseCLI is the links command result
type LinksResponseCLI struct {
	Tool  string     `json:"tool,omitempty"`
	Links []seo.Link `json:"links"`
}

func runLinks(cmd *cobra.Command, args []string) error {
	start := time.Now()
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	if len(args) == 0 {
		limit := linksLimit
		if limit <= 0 {
			limit = a.cfg.SEO.HubCount
		}
		facts := &LinksResponseCLI{Links: roundScores(a.planner.Hubs(limit))}
		return writeResponse(cmd, NewResponse("links", facts, a, start))
	}

	tool := args[0]
	if err := a.requireTool(tool); err != nil {
		return err
	}
	limit := linksLimit
	if limit <= 0 {
		limit = a.cfg.SEO.LinkLimit
	}

	links, err := a.planner.Links(cmd.Context(), tool, limit)
	if err != nil {
		return errors.New(errors.InternalError, "failed to plan links", err)
	}
	facts := &LinksResponseCLI{Tool: tool, Links: roundScores(links)}
	return writeResponse(cmd, NewResponse("links", facts, a, start))
}

func roundScores(links []seo.Link) []seo.Link {
	for i := range links {
		links[i].Score = output.RoundFloat(links[i].Score)
	}
	return links
}
