package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/leofalp/calcagent/providers/tool"
)

func newDescribeCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "describe <tool>",
		Short: "Show a tool's description, cost and parameter schema",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			t, ok := a.container.Catalog().Get(args[0])
			if !ok {
				return fmt.Errorf("%w: %q", tool.ErrToolNotFound, args[0])
			}

			info := t.ToolInfo()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Name:        %s\n", info.Name)
			fmt.Fprintf(out, "Description: %s\n", info.Description)
			if m := t.GetMetrics(); m != nil {
				fmt.Fprintf(out, "Cost:        %s\n", m.String())
				fmt.Fprintf(out, "Metrics:     %s\n", m.MetricsString())
			}
			if info.Parameters != nil {
				schema, err := info.Parameters.JsonString(true)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "Parameters:\n%s\n", schema)
			}
			return nil
		},
	}
}
