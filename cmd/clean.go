package cmd

import (
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/proteinlab/interactome-prep/config"
	"github.com/proteinlab/interactome-prep/interactions"
)

// Fixed filenames under the data directory. The pipeline has exactly two
// hard-coded inputs; adding a format means adding a subcommand, not a flag.
const (
	stringMappingFile = "string_mapping.tsv"
	stringPairsFile   = "string.txt"
	stringOutputFile  = "cleaned.csv"

	bioplexNetworkFile = "BioPlex_293T_Network_10K_Dec_2019.tsv"
	bioplexOutputFile  = "cleaned_bioplex.csv"
)

func newCleanCommand(cfg *config.Config) *cobra.Command {
	cleanCmd := &cobra.Command{
		Use:   "clean",
		Short: "Normalize a downloaded dataset into the three-column CSV",
	}

	cleanCmd.AddCommand(&cobra.Command{
		Use:   "string",
		Short: "Clean the STRING scored-pair table",
		Long: `Joins the STRING identifier mapping against the scored-pair table,
drops interactions scoring below 700 and writes cleaned.csv.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCleanString(cfg)
		},
	})

	cleanCmd.AddCommand(&cobra.Command{
		Use:   "bioplex",
		Short: "Clean the BioPlex network table",
		Long: `Rescales the BioPlex interaction probabilities to integer scores,
drops interactions scoring below 700 and writes cleaned_bioplex.csv.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCleanBioplex(cfg)
		},
	})

	return cleanCmd
}

func runCleanString(cfg *config.Config) error {
	return interactions.CleanString(
		filepath.Join(cfg.DataDir, stringMappingFile),
		filepath.Join(cfg.DataDir, stringPairsFile),
		filepath.Join(cfg.DataDir, stringOutputFile),
	)
}

func runCleanBioplex(cfg *config.Config) error {
	return interactions.CleanBioplex(
		filepath.Join(cfg.DataDir, bioplexNetworkFile),
		filepath.Join(cfg.DataDir, bioplexOutputFile),
	)
}
