package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/napalu/flagcomp/completion"
	"github.com/napalu/flagcomp/env"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

type installOptions struct {
	shell string
	dir   string
}

func newInstallCmd(a *app) *cobra.Command {
	opts := &installOptions{}

	cmd := &cobra.Command{
		Use:   "install <program>",
		Short: "Install the completion launcher for a program",
		Long: `Write the completion launcher for <program> into the per-user completion
directory of the selected shell.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := completion.NewManager(&env.DefaultEnvResolver{}, opts.shell, args[0])
			if err != nil {
				return err
			}
			if opts.dir != "" {
				manager.Paths.Primary = opts.dir
				manager.Paths.Fallback = ""
			}

			if _, err := manager.Generate(); err != nil {
				return err
			}

			path, err := manager.Save()
			if err != nil {
				return err
			}
			a.logger.Debug("installed launcher",
				zap.String("shell", opts.shell),
				zap.String("program", manager.ProgramName),
				zap.String("path", path))

			green := color.New(color.FgGreen).SprintFunc()
			gray := color.New(color.FgHiBlack).SprintFunc()
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s launcher for %s written to %s\n",
				green("✓"), opts.shell, manager.ProgramName, path)
			fmt.Fprintf(cmd.OutOrStdout(), "  %s\n", gray(manager.Paths.Comment))

			return nil
		},
	}
	cmd.Flags().StringVarP(&opts.shell, "shell", "s", "bash",
		"Shell to install the launcher for: "+strings.Join(completion.SupportedShells(), ", "))
	cmd.Flags().StringVar(&opts.dir, "dir", "", "Install into this directory instead of the shell's default")

	return cmd
}
