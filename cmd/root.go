// Package cmd implements the calcagent CLI using cobra.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/leofalp/calcagent/core/report"
	"github.com/leofalp/calcagent/internal/config"
	"github.com/leofalp/calcagent/internal/container"
)

const version = "0.1.0"

// app is the state shared by subcommands of one invocation.
type app struct {
	configPath string
	envFile    string
	format     string
	logLevel   string
	logFormat  string

	ctx       context.Context
	container *container.Container
}

// NewRootCommand builds the calcagent command tree. ctx is passed to every
// tool call.
func NewRootCommand(ctx context.Context) *cobra.Command {
	a := &app{ctx: ctx}

	root := &cobra.Command{
		Use:           "calcagent",
		Short:         "Health and finance calculators exposed as agent tools",
		Long:          "calcagent runs deterministic BMI, calorie, workout, compound interest and portfolio calculators through the same tool interface an agent uses.",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup()
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return a.teardown()
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "config file (default "+config.DefaultPath+")")
	flags.StringVar(&a.envFile, "env-file", "", "dotenv file (default "+config.DefaultEnvFile+")")
	flags.StringVar(&a.format, "format", "", "report format: text or markdown")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&a.logFormat, "log-format", "", "log format: compact or json")

	root.AddCommand(newListCmd(a))
	root.AddCommand(newDescribeCmd(a))
	root.AddCommand(newCallCmd(a))
	root.AddCommand(newDemoCmd(a))
	return root
}

// Execute runs the root command and exits on error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := NewRootCommand(ctx).Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		stop()
		os.Exit(1)
	}
}

// setup loads configuration, applies flag overrides and wires the container.
func (a *app) setup() error {
	cfg, err := config.Load(a.configPath, a.envFile)
	if err != nil {
		return err
	}
	if a.format != "" {
		cfg.Report.Format = a.format
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.container, err = container.New(a.ctx, cfg)
	return err
}

func (a *app) teardown() error {
	if a.container == nil {
		return nil
	}
	return a.container.Close()
}

// callContext returns the context for a tool call, carrying the report format.
func (a *app) callContext() context.Context {
	return report.WithFormat(a.ctx, a.container.ReportFormat())
}
