package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	wktcrs "github.com/reoring/wktcrs"
)

// app carries the state shared by all subcommands of one invocation.
type app struct {
	cfgFile  string
	logLevel string
	cfg      *Config
	log      *slog.Logger
}

// NewRootCmd builds the command tree.
func NewRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "wktcrs",
		Short: "Parse, check and reformat WKT coordinate reference systems",
		Long: `wktcrs reads coordinate reference system descriptions in the
bracketed WKT grammar, reports the first structural error, and writes
them back in canonical form or as JSON/YAML.

Input is read from the file given as argument, or from stdin.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.cfgFile, "config", "", "config file (TOML)")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newCheckCmd(a),
		newFmtCmd(a),
		newExportCmd(a),
		newDemoCmd(a),
		newVersionCmd(),
	)
	return root
}

// Execute runs the CLI with os.Args.
func Execute() error {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		printError(root.ErrOrStderr(), err)
		return err
	}
	return nil
}

func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := LoadConfig(a.cfgFile)
	if err != nil {
		return err
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Log.Level)); err != nil {
		return fmt.Errorf("invalid log level %q", cfg.Log.Level)
	}
	a.cfg = cfg
	a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
	a.log.Debug("config loaded", "file", a.cfgFile, "max_depth", cfg.Parse.MaxDepth, "max_bytes", cfg.Parse.MaxBytes)
	return nil
}

// parseInput reads the WKT named by args (a path, "-" or nothing for
// stdin) and parses it with the configured limits.
func (a *app) parseInput(cmd *cobra.Command, args []string) (wktcrs.CRS, string, error) {
	name := "-"
	var r io.Reader = cmd.InOrStdin()
	if len(args) > 0 && args[0] != "-" {
		name = args[0]
		f, err := os.Open(name)
		if err != nil {
			return nil, name, err
		}
		defer f.Close()
		r = f
	}
	a.log.Debug("parsing", "input", name)
	c, err := wktcrs.ParseReader(r, a.cfg.ParseOpt())
	if err != nil {
		a.log.Info("parse failed", "input", name, "error", err)
		return nil, name, err
	}
	a.log.Debug("parsed", "input", name, "family", c.Family(), "derived", c.IsDerived())
	return c, name, nil
}

func printError(w io.Writer, err error) {
	if iss, ok := wktcrs.AsIssues(err); ok {
		for _, it := range iss {
			fmt.Fprintf(w, "error: %s\n", it)
		}
		return
	}
	fmt.Fprintf(w, "error: %v\n", err)
}
