package main

import (
	"fmt"
	"strings"

	"github.com/napalu/flagcomp/completion"
	"github.com/napalu/flagcomp/env"
	"github.com/spf13/cobra"
)

func newScriptCmd() *cobra.Command {
	var shell string

	cmd := &cobra.Command{
		Use:   "script <program>",
		Short: "Print the completion launcher for a program",
		Long: `Print the script through which a shell asks <program> to list its own flags.
Source it from your shell's start-up file, or use "flagcomp install".`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			manager, err := completion.NewManager(&env.DefaultEnvResolver{}, shell, args[0])
			if err != nil {
				return err
			}

			script, err := manager.Generate()
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), script)
			return err
		},
	}
	cmd.Flags().StringVarP(&shell, "shell", "s", "bash",
		"Shell to generate the launcher for: "+strings.Join(completion.SupportedShells(), ", "))

	return cmd
}
