package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"namedargs"
	"namedargs/internal/config"
	"namedargs/internal/report"
)

func newParseCommand(a *app) *cobra.Command {
	var keys []string

	cmd := &cobra.Command{
		Use:   "parse [input]",
		Short: "Parse an argument list and print its bindings",
		Long: `Parse an argument list and print its bindings sorted by key.

The input is taken from the arguments, joined by spaces, or read from
standard input when none are given. With --keys only the listed keys are
printed; together with --strict any other key is an error.`,
		Example: `  namedargs parse "num = 42, str = 'Hello, world!'"
  echo "a = 1" | namedargs parse -o json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			return a.runParse(cmd, input, keys)
		},
	}

	cmd.Flags().StringSliceVar(&keys, "keys", nil, "keys to extract (default: all)")
	return cmd
}

func readInput(cmd *cobra.Command, args []string) (string, error) {
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("failed to read input: %w", err)
	}
	return strings.TrimRight(string(data), "\n"), nil
}

func (a *app) runParse(cmd *cobra.Command, input string, keys []string) error {
	var opts []namedargs.Option
	if a.cfg.Strict {
		opts = append(opts, namedargs.WithStrict())
	}

	bindings, err := namedargs.Parse(input, func(acc *namedargs.Accessor) ([]namedargs.Binding, error) {
		return extract(acc, keys), nil
	}, opts...)
	if err != nil {
		fmt.Fprint(cmd.ErrOrStderr(), report.Format("<input>", input, err))
		return errReported
	}
	a.log.Debugf("parsed %d bindings", len(bindings))

	return writeBindings(cmd.OutOrStdout(), a.cfg.Format, bindings)
}

// extract looks up keys through the accessor so strict parsing can flag the
// rest. Without keys every binding is taken.
func extract(acc *namedargs.Accessor, keys []string) []namedargs.Binding {
	if len(keys) == 0 {
		all := acc.Args().Bindings()
		for _, b := range all {
			acc.Lookup(b.Key)
		}
		return all
	}

	var bindings []namedargs.Binding
	for _, key := range keys {
		if v, ok := acc.Lookup(key); ok {
			bindings = append(bindings, namedargs.Binding{Key: key, Value: v})
		}
	}
	return bindings
}

func writeBindings(w io.Writer, format string, bindings []namedargs.Binding) error {
	switch format {
	case config.FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(toMap(bindings))
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(toMap(bindings)); err != nil {
			return err
		}
		return enc.Close()
	default:
		for _, b := range bindings {
			fmt.Fprintln(w, b)
		}
		return nil
	}
}

func toMap(bindings []namedargs.Binding) map[string]any {
	m := make(map[string]any, len(bindings))
	for _, b := range bindings {
		m[b.Key] = b.Value.Interface()
	}
	return m
}
