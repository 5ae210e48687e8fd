// Package cmd wires the batch entry points into a single command tree. Each
// subcommand is an independent unit; the only ordering that matters is that
// fetching happens before cleaning, which the all command enforces.
package cmd

import (
	"github.com/spf13/cobra"

	"github.com/proteinlab/interactome-prep/config"
)

// NewRootCommand builds the command tree over the loaded configuration.
func NewRootCommand(cfg *config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "interactome-prep",
		Short: "Prepare protein interaction datasets for analysis",
		Long: `interactome-prep downloads external protein interaction datasets and
normalizes them into a uniform protein_a,protein_b,score CSV, keeping only
interactions with a confidence score of at least 700.`,
		SilenceUsage: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	rootCmd.AddCommand(newFetchCommand(cfg))
	rootCmd.AddCommand(newCleanCommand(cfg))
	rootCmd.AddCommand(newAllCommand(cfg))

	return rootCmd
}
