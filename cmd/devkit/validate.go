package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/shjeon-96/dev-tool-kit-sub005/internal/catalog"
	"github.com/shjeon-96/dev-tool-kit-sub005/internal/errors"
	"github.com/shjeon-96/dev-tool-kit-sub005/internal/graph"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the tool directory and journeys for integrity issues",
	Long: `Check every journey against the tool directory. Unknown tools and
self-loops are errors; duplicates, empty journeys and tools no journey
mentions are warnings. Exits non-zero when any error is found.`,
	Args: cobra.NoArgs,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// ValidateResponseCLI is the validate command result
type ValidateResponseCLI struct {
	Valid    bool             `json:"valid"`
	Errors   int              `json:"errors"`
	Warnings int              `json:"warnings"`
	Issues   []catalog.Issue  `json:"issues"`
	Stats    graph.GraphStats `json:"stats"`
}

func runValidate(cmd *cobra.Command, args []string) error {
	start := time.Now()
	a, err := loadApp(cmd)
	if err != nil {
		return err
	}
	defer a.Close()

	issues := a.catalog.Validate()
	facts := &ValidateResponseCLI{
		Valid:  !catalog.HasErrors(issues),
		Issues: issues,
		Stats:  a.catalog.Graph.Stats(),
	}
	if facts.Issues == nil {
		facts.Issues = []catalog.Issue{}
	}
	for _, issue := range issues {
		if issue.Severity == catalog.SeverityError {
			facts.Errors++
		} else {
			facts.Warnings++
		}
	}

	if err := writeResponse(cmd, NewResponse("validate", facts, a, start)); err != nil {
		return err
	}
	if !facts.Valid {
		return errors.New(errors.CatalogInvalid, fmt.Sprintf("catalog has %d integrity errors", facts.Errors), nil)
	}
	return nil
}
