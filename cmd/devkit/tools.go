package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/shjeon-96/dev-tool-kit-sub005/internal/tools"
)

var toolsCategory string

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the tool directory",
	Args:  cobra.NoArgs,
	RunE:  runTools,
}

func init() {
	toolsCmd.Flags().StringVar(&toolsCategory, "category", "", "Only list tools in this category")
	rootCmd.AddCommand(toolsCmd)
}

// ToolsResponseCLI is the tools command result
type ToolsResponseCLI struct {
	Category   string       `json:"category,omitempty"`
	Categories []string     `json:"categories"`
	Tools      []tools.Tool `json:"tools"`
}

func runTools(cmd *cobra.Command, args []string) error {
	start := time.Now()
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	dir := a.catalog.Directory
	facts := &ToolsResponseCLI{
		Category:   toolsCategory,
		Categories: dir.Categories(),
		Tools:      []tools.Tool{},
	}
	for _, t := range dir.All() {
		if toolsCategory == "" || t.Category == toolsCategory {
			facts.Tools = append(facts.Tools, t)
		}
	}
	return writeResponse(cmd, NewResponse("tools", facts, a, start))
}
