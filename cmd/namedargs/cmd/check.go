package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"namedargs"
	"namedargs/internal/report"
)

func newCheckCommand(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Report diagnostics for argument list files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, paths []string) error {
			startTime := time.Now()
			out := cmd.OutOrStdout()

			failed := 0
			for _, path := range paths {
				source, err := os.ReadFile(path)
				if err != nil {
					return fmt.Errorf("failed to read file: %w", err)
				}

				args, err := namedargs.ParseArgs(string(source))
				if err != nil {
					fmt.Fprint(out, report.Format(path, string(source), err))
					failed++
					continue
				}
				a.log.Debugf("%s: %d bindings", path, args.Len())
			}

			duration := formatDuration(time.Since(startTime))
			if failed > 0 {
				fmt.Fprint(out, color.RedString("%d of %d files failed after %s\n", failed, len(paths), duration))
				return errReported
			}
			fmt.Fprint(out, color.GreenString("Checked %d files in %s\n", len(paths), duration))
			return nil
		},
	}
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
