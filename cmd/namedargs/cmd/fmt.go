package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"namedargs/grammar"
)

func newFmtCommand(a *app) *cobra.Command {
	var sortKeys, write bool

	cmd := &cobra.Command{
		Use:   "fmt [file]",
		Short: "Print an argument list in canonical form",
		Long: `Print an argument list in canonical form: one space around '=',
one after each comma, leading zeros dropped. Reads standard input when no
file is given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filename, source := "<stdin>", ""
			if len(args) == 1 {
				filename = args[0]
				data, err := os.ReadFile(filename)
				if err != nil {
					return fmt.Errorf("failed to read file: %w", err)
				}
				source = string(data)
			} else {
				input, err := readInput(cmd, nil)
				if err != nil {
					return err
				}
				source = input
			}

			formatted, err := grammar.Format(filename, source, sortKeys)
			if err != nil {
				grammar.ReportError(cmd.ErrOrStderr(), source, err)
				return errReported
			}

			if write && len(args) == 1 {
				a.log.Infof("rewriting %s", filename)
				return os.WriteFile(filename, []byte(formatted+"\n"), 0o644)
			}
			fmt.Fprintln(cmd.OutOrStdout(), formatted)
			return nil
		},
	}

	cmd.Flags().BoolVar(&sortKeys, "sort", false, "order assignments by key")
	cmd.Flags().BoolVarP(&write, "write", "w", false, "write the result back to the file")
	return cmd
}
