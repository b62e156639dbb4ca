package main

import (
	"github.com/spf13/cobra"

	"github.com/shjeon-96/dev-tool-kit-sub005/internal/version"
)

var (
	// formatFlag is the --format flag value shared by every command
	formatFlag string
	// verbosityFlag counts -v occurrences
	verbosityFlag int
	// quietFlag suppresses all logging
	quietFlag bool
	// rootFlag is the project directory holding .devkit/config.json
	rootFlag string
)

var rootCmd = &cobra.Command{
	Use:   "devkit",
	Short: "devkit - tool recommendations and link planning for a developer tool site",
	Long: `devkit answers "what should this user open next?" for a catalog of
developer tools. It merges curated workflow journeys, the user's usage
history and category similarity into one ranked list, and derives importance
scores and internal-link plans from the journey graph.`,
	Version:       version.Info(),
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.SetVersionTemplate("devkit version {{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&formatFlag, "format", "json", "Output format (json, human)")
	rootCmd.PersistentFlags().CountVarP(&verbosityFlag, "verbose", "v", "Increase log verbosity (-v info, -vv debug)")
	rootCmd.PersistentFlags().BoolVarP(&quietFlag, "quiet", "q", false, "Suppress all logging")
	rootCmd.PersistentFlags().StringVar(&rootFlag, "root", "", "Project directory containing .devkit/config.json (default: current directory)")
}
