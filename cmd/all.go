package cmd

import (
	"github.com/spf13/cobra"

	"github.com/proteinlab/interactome-prep/config"
)

func newAllCommand(cfg *config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Fetch the manifest resources, then run both cleaning steps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := runFetch(cfg); err != nil {
				return err
			}
			if err := runCleanString(cfg); err != nil {
				return err
			}
			return runCleanBioplex(cfg)
		},
	}
}
