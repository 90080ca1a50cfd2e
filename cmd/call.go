package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/leofalp/calcagent/core/result"
	"github.com/leofalp/calcagent/providers/tool"
)

// errToolFailed is returned by call --report when the tool answered with an
// error result.
var errToolFailed = errors.New("tool returned an error result")

func newCallCmd(a *app) *cobra.Command {
	var reportOnly bool

	cmd := &cobra.Command{
		Use:   "call <tool> [json-arguments|-]",
		Short: "Call a tool with JSON arguments",
		Long:  "Call a tool and print its result JSON. Arguments default to {} and are read from stdin when given as -.",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			// Fail before consuming stdin.
			if !a.container.Catalog().Has(args[0]) {
				return fmt.Errorf("%w: %q (available: %s)", tool.ErrToolNotFound, args[0],
					strings.Join(a.container.Catalog().Names(), ", "))
			}

			input := "{}"
			if len(args) == 2 {
				input = args[1]
			}
			if input == "-" {
				data, err := io.ReadAll(cmd.InOrStdin())
				if err != nil {
					return fmt.Errorf("read arguments: %w", err)
				}
				input = string(data)
			}

			out, err := a.container.Catalog().Call(a.callContext(), args[0], input)
			if err != nil {
				return err
			}

			if !reportOnly {
				fmt.Fprintln(cmd.OutOrStdout(), out)
				return nil
			}

			var r result.Result
			if err := json.Unmarshal([]byte(out), &r); err != nil {
				return fmt.Errorf("decode result: %w", err)
			}
			if !r.IsSuccess() {
				fmt.Fprintln(cmd.ErrOrStderr(), r.ErrorMessage())
				return errToolFailed
			}
			fmt.Fprintln(cmd.OutOrStdout(), strings.TrimRight(r.Report(), "\n"))
			return nil
		},
	}

	cmd.Flags().BoolVar(&reportOnly, "report", false, "print only the report text")
	return cmd
}
