package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"varphi/internal/backend"
)

var backendsCmd = &cobra.Command{
	Use:   "backends",
	Short: "List available compiler backends",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
		for _, name := range backend.Names() {
			fmt.Fprintf(tw, "%s\t.%s\t%s\n", name, backend.Extension(name), backend.Describe(name))
		}
		return tw.Flush()
	},
}
