// Package cli implements the movediff command line.
package cli

import (
	"errors"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/dacharyc/movediff"
	"github.com/dacharyc/movediff/internal/config"
	"github.com/dacharyc/movediff/internal/log"
)

// ErrArgCount is returned when diff or churn is not given exactly two files.
var ErrArgCount = errors.New("2 arguments required")

// Version information set via ldflags during build.
var (
	Version = "dev"
	Commit  = "unknown"
)

// Execute runs the command line with args and returns the process exit code.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := NewRootCommand(stdout, stderr)
	root.SetArgs(args)

	cmd, err := root.ExecuteC()
	if err != nil {
		fmt.Fprintln(stderr, err)
		if errors.Is(err, ErrArgCount) {
			fmt.Fprintf(stderr, "usage: %s\n", cmd.UseLine())
		}
		return 1
	}
	return 0
}

// app is the state shared by all subcommands.
type app struct {
	stdout io.Writer
	stderr io.Writer

	envFile  string
	output   string
	exact    bool
	maxLines int
	logLevel string

	cfg    config.Config
	logger zerolog.Logger
}

// NewRootCommand builds the movediff command tree.
func NewRootCommand(stdout, stderr io.Writer) *cobra.Command {
	a := &app{stdout: stdout, stderr: stderr}

	cmd := &cobra.Command{
		Use:   "movediff",
		Short: "Line diff with block move detection",
		Long: `movediff reports which lines of a file were added and which were moved
unchanged from its previous revision, and derives added/deleted line counts.`,
		SilenceErrors:     true,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.PersistentFlags()
	flags.StringVar(&a.envFile, "env-file", "", "load configuration from this .env file (default .env when present)")
	flags.StringVarP(&a.output, "output", "o", "", "result format: text, json or yaml")
	flags.BoolVar(&a.exact, "exact", false, "compare lines byte for byte instead of ignoring whitespace")
	flags.IntVar(&a.maxLines, "max-lines", 0, "reject inputs with more lines than this (0 for no limit)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	cmd.AddCommand(a.diffCmd())
	cmd.AddCommand(a.churnCmd())
	cmd.AddCommand(a.gitChurnCmd())
	cmd.AddCommand(versionCmd())

	return cmd
}

// setup loads configuration, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(a.envFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = config.Output(a.output)
	}
	if flags.Changed("exact") {
		cfg.IgnoreWhitespace = !a.exact
	}
	if flags.Changed("max-lines") {
		cfg.MaxLines = a.maxLines
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	cfg = cfg.Normalize()
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.logger = log.New(a.stderr, cfg.LogFormat, cfg.LogLevel)
	return nil
}

// diffOptions translates configuration into engine options.
func (a *app) diffOptions() []movediff.Option {
	return []movediff.Option{
		movediff.WithIgnoreWhitespace(a.cfg.IgnoreWhitespace),
		movediff.WithMaxLines(a.cfg.MaxLines),
	}
}

// twoFiles accepts exactly two positional arguments.
func twoFiles(_ *cobra.Command, args []string) error {
	if len(args) != 2 {
		return ErrArgCount
	}
	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "movediff version %s\n", Version)
			fmt.Fprintf(cmd.OutOrStdout(), "  commit: %s\n", Commit)
		},
	}
}
