package main

import (
	"fmt"
	"os"

	"github.com/napalu/flagcomp"
	"github.com/napalu/flagcomp/registry"
	"github.com/napalu/flagcomp/util"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type queryOptions struct {
	snapshot string
	program  string
	columns  int
}

func newQueryCmd(a *app) *cobra.Command {
	opts := &queryOptions{}

	cmd := &cobra.Command{
		Use:   "query <word>",
		Short: "Show the completions for a word against a saved flag snapshot",
		Long: `Run completion for <word> against the flags listed in a TOML snapshot file:

  [[flag]]
  name = "port"
  type = "int32"
  default = "8080"
  description = "Port to listen on"
  defined_in = "/src/server/server.go"

The output is exactly what the program itself would print to the shell.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(opts.snapshot)
			if err != nil {
				return fmt.Errorf("failed to open snapshot: %w", err)
			}
			defer f.Close()

			snap, err := registry.LoadSnapshot(f)
			if err != nil {
				return err
			}
			a.logger.Debug("loaded snapshot", zap.String("path", opts.snapshot), zap.Int("flags", len(snap)))

			engine, err := flagcomp.New(opts.engineOptions(a, cmd)...)
			if err != nil {
				return err
			}

			_, err = engine.Complete(args[0], snap).WriteTo(cmd.OutOrStdout())
			return err
		},
	}
	cmd.Flags().StringVarP(&opts.snapshot, "snapshot", "f", "", "TOML file listing the flags")
	cmd.Flags().StringVarP(&opts.program, "program", "p", "", "Program name used to find its main file")
	cmd.Flags().IntVarP(&opts.columns, "columns", "c", flagcomp.DefaultColumns, "Output width")
	_ = cmd.MarkFlagRequired("snapshot")

	return cmd
}

// engineOptions layers the command line over the configuration. The terminal width is
// only used when neither sets the columns.
func (o *queryOptions) engineOptions(a *app, cmd *cobra.Command) []flagcomp.ConfigureEngineFunc {
	opts := []flagcomp.ConfigureEngineFunc{
		flagcomp.WithLogger(a.logger),
		flagcomp.WithConfig(a.cfg),
	}
	if a.cfg.Columns == 0 && !cmd.Flags().Changed("columns") {
		opts = append(opts, flagcomp.WithTerminalWidth(util.SystemTerminal, os.Stdout))
	}
	if o.program != "" {
		opts = append(opts, flagcomp.WithProgramName(o.program))
	}
	if cmd.Flags().Changed("columns") {
		opts = append(opts, flagcomp.WithColumns(o.columns))
	}

	return opts
}
