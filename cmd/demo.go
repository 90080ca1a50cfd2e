package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/leofalp/calcagent/core/overview"
	"github.com/leofalp/calcagent/core/result"
)

// demoCall is one sample request run by the demo command.
type demoCall struct {
	Tool string
	Args string
}

var demoCalls = []demoCall{
	{"calculate_bmi", `{"weight_kg": 70, "height_cm": 175}`},
	{"calculate_calories_burned", `{"activity": "running", "duration_min": 30, "weight_kg": 70}`},
	{"create_workout_plan", `{"fitness_level": "intermediate", "goal": "muscle gain", "days_per_week": 4}`},
	{"calculate_compound_interest", `{"principal": 10000, "annual_rate": 5, "years": 10, "contributions_per_year": 1200, "compound_frequency": "monthly"}`},
	{"analyze_investment_portfolio", `{"allocation": {"stocks": 70, "bonds": 20, "cash": 10}, "risk_tolerance": "low"}`},
}

func newDemoCmd(a *app) *cobra.Command {
	var (
		concurrency int
		summary     bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run sample calls against every tool concurrently",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			results := make([]result.Result, len(demoCalls))

			callCtx := a.callContext()
			ov := overview.OverviewFromContext(&callCtx)
			ov.StartExecution()

			g, ctx := errgroup.WithContext(callCtx)
			if concurrency > 0 {
				g.SetLimit(concurrency)
			}
			for i, call := range demoCalls {
				g.Go(func() error {
					out, err := a.container.Catalog().Call(ctx, call.Tool, call.Args)
					if err != nil {
						return fmt.Errorf("%s: %w", call.Tool, err)
					}
					if err := json.Unmarshal([]byte(out), &results[i]); err != nil {
						return fmt.Errorf("%s: decode result: %w", call.Tool, err)
					}
					return nil
				})
			}
			err := g.Wait()
			ov.EndExecution()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for i, call := range demoCalls {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprintf(out, "== %s ==\n%s\n", call.Tool, results[i].String())
			}
			if summary {
				fmt.Fprintf(out, "\n== summary ==\n%s\n", ov.Summary())
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "maximum concurrent calls (0 means unlimited)")
	cmd.Flags().BoolVar(&summary, "summary", false, "print per-tool call counts and cost after the results")
	return cmd
}
