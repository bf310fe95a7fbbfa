// Package repl SPDX-License-Identifier: Apache-2.0
package repl

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"namedargs"
	"namedargs/internal/report"
)

const PROMPT = ">> "

// maxLineSize bounds a single input line.
var maxLineSize = 16 << 20

// Start reads one argument list per line from in and writes the parsed
// bindings, or a diagnostic, to out. It returns when in is exhausted or a
// line reads ":quit".
func Start(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, min(bufio.MaxScanTokenSize, maxLineSize)), maxLineSize)

	for {
		fmt.Fprint(out, PROMPT)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			if err := scanner.Err(); err != nil {
				if errors.Is(err, bufio.ErrTooLong) {
					fmt.Fprintf(out, "error: line longer than %d bytes\n", maxLineSize)
				}
				return fmt.Errorf("reading input: %w", err)
			}
			return nil
		}

		line := scanner.Text()
		switch strings.TrimSpace(line) {
		case ":quit", ":q":
			return nil
		case "":
			continue
		}

		args, err := namedargs.ParseArgs(line)
		if err != nil {
			fmt.Fprint(out, report.Format("<repl>", line, err))
			continue
		}

		for _, b := range args.Bindings() {
			fmt.Fprintf(out, "%s (%s)\n", b, b.Value.Kind())
		}
	}
}
