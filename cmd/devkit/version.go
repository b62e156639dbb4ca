package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/shjeon-96/dev-tool-kit-sub005/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		facts := &VersionResponseCLI{
			Version:   version.Version,
			Commit:    version.Commit,
			BuildDate: version.BuildDate,
		}
		if OutputFormat(formatFlag) == FormatHuman {
			_, err := io.WriteString(cmd.OutOrStdout(), version.Full()+"\n")
			return err
		}
		out, err := formatJSON(facts)
		if err != nil {
			return err
		}
		_, err = io.WriteString(cmd.OutOrStdout(), out+"\n")
		return err
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}

// VersionResponseCLI is the version command result
type VersionResponseCLI struct {
	Version   string `json:"version"`
	Commit    string `json:"commit,omitempty"`
	BuildDate string `json:"buildDate,omitempty"`
}
