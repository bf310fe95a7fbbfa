package cmd

import (
	"fmt"
	"os/user"

	"github.com/spf13/cobra"

	"namedargs/repl"
)

func newReplCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Parse argument lists interactively",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			name := "there"
			if u, err := user.Current(); err == nil {
				name = u.Username
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Welcome to the namedargs REPL, %s!\n", name)
			a.log.Debug("starting repl")
			return repl.Start(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
}
