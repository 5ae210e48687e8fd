package cmd

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/proteinlab/interactome-prep/config"
	"github.com/proteinlab/interactome-prep/fetch"
	"github.com/proteinlab/interactome-prep/manifest"
)

func newFetchCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "fetch",
		Short: "Download the datasets listed in the resource manifest",
		Long: `Reads the JSON resource manifest and downloads every resource whose
target file is missing, applying the declared decompression transform.
Resources whose target file already exists are skipped untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFetch(cfg)
		},
	}
}

func runFetch(cfg *config.Config) error {
	resources, err := manifest.Load(cfg.ManifestPath)
	if err != nil {
		return err
	}

	fetcher := fetch.New(time.Duration(cfg.HTTPTimeoutSeconds) * time.Second)
	return fetcher.Fetch(resources)
}
