package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "explore",
		Short:        "Explore hazard grids using only provably safe moves",
		SilenceUsage: true,
	}

	root.AddCommand(newRunCmd(), newGenerateCmd(), newTokenCmd())
	return root
}
