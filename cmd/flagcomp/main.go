// Command flagcomp generates and installs shell launchers for programs that support flag
// completion, and previews completions for a saved flag snapshot.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/napalu/flagcomp/config"
	"github.com/napalu/flagcomp/env"
	"github.com/napalu/flagcomp/internal/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// app carries what the root command loads for its subcommands
type app struct {
	cfg    *config.Config
	logger *zap.Logger
}

// newRootCmd builds a fresh command tree, so no flag state survives between executions
func newRootCmd() *cobra.Command {
	a := &app{cfg: &config.Config{}, logger: zap.NewNop()}

	rootCmd := &cobra.Command{
		Use:           "flagcomp",
		Short:         "Shell completion for command-line flags",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			if a.cfg, err = config.Load(&env.DefaultEnvResolver{}); err != nil {
				return err
			}
			a.logger, err = logging.New(a.cfg.Debug)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = a.logger.Sync()
		},
	}
	rootCmd.AddCommand(newScriptCmd(), newInstallCmd(a), newQueryCmd(a))

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		red := color.New(color.FgRed).SprintFunc()
		fmt.Fprintf(os.Stderr, "%s %v\n", red("Error:"), err)
		os.Exit(1)
	}
}
