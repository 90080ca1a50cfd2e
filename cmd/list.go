package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newListCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the available tools",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()
			for _, info := range a.container.Catalog().Descriptions() {
				fmt.Fprintf(out, "%-30s %s\n", info.Name, info.Description)
			}
			return nil
		},
	}
}
