package cmd

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"namedargs/internal/config"
)

var version = "0.1.0"

// errReported marks a failure whose diagnostics were already printed.
var errReported = stderrors.New("failed")

type app struct {
	cfg *config.Config
	log commonlog.Logger

	cfgFile   string
	noColor   bool
	strict    bool
	verbosity int
	format    string
}

func NewRootCommand() *cobra.Command {
	a := &app{log: commonlog.GetLogger("namedargs.cli")}

	root := &cobra.Command{
		Use:   "namedargs",
		Short: "Parse and check named argument lists",
		Long: `namedargs works with argument lists of the form

  num = 42, str = 'Hello, world!'

Keys are identifiers, values are decimal integers or single-quoted strings.

Settings are read from .namedargs.toml or .namedargs.yaml in the current
directory, then from NAMEDARGS_* environment variables, then from flags.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: ./.namedargs.toml)")
	flags.BoolVar(&a.noColor, "no-color", false, "disable coloured output")
	flags.BoolVar(&a.strict, "strict", false, "reject keys that were not asked for")
	flags.CountVarP(&a.verbosity, "verbose", "v", "increase log verbosity")
	flags.StringVarP(&a.format, "output", "o", "", "output format: text, json or yaml")

	root.AddCommand(
		newParseCommand(a),
		newCheckCommand(a),
		newFmtCommand(a),
		newReplCommand(a),
	)
	return root
}

// Execute runs the command line and prints any error that was not already
// reported as a diagnostic.
func Execute() error {
	err := NewRootCommand().Execute()
	if err != nil && !stderrors.Is(err, errReported) {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

func (a *app) setup(cmd *cobra.Command, _ []string) error {
	wd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.Load(a.cfgFile, wd)
	if err != nil {
		return err
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return fmt.Errorf("environment: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("no-color") {
		cfg.Color = !a.noColor
	}
	if flags.Changed("strict") {
		cfg.Strict = a.strict
	}
	if flags.Changed("verbose") {
		cfg.Verbosity = a.verbosity
	}
	if flags.Changed("output") {
		cfg.Format = a.format
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	color.NoColor = !cfg.Color

	var logFile *string
	if cfg.LogFile != "" {
		logFile = &cfg.LogFile
	}
	commonlog.Configure(cfg.Verbosity, logFile)

	a.cfg = cfg
	if cfg.Source != "" {
		a.log.Infof("loaded settings from %s", cfg.Source)
	}
	return nil
}
