package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/airroutes/config"
	"github.com/katalvlaran/airroutes/connectivity"
	"github.com/katalvlaran/airroutes/core"
	"github.com/katalvlaran/airroutes/driver"
	"github.com/katalvlaran/airroutes/logging"
	"github.com/katalvlaran/airroutes/pathfind"
	"github.com/katalvlaran/airroutes/routes"
)

// flags holds command-line values; they override the config file when set.
type flags struct {
	configPath string
	dataPath   string
	strict     bool
	maxHops    int
	avoid      []string
	logLevel   string
	logFormat  string
}

// app is what every command needs after startup.
type app struct {
	cfg    config.Config
	logger *slog.Logger
	graph  *core.Graph
}

func newRootCmd() *cobra.Command {
	f := &flags{}

	rootCmd := &cobra.Command{
		Use:   "airroutes",
		Short: "Find the fewest-hop itinerary between two airports",
		Long: `airroutes reads a comma-separated route dataset once, then prompts
for a source and a destination airport code and prints the shortest path.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd, f)
			if err != nil {
				return err
			}
			s := &driver.Session{
				Graph:  a.graph,
				In:     cmd.InOrStdin(),
				Out:    cmd.OutOrStdout(),
				Logger: a.logger,
				Query:  queryOptions(a.cfg.Query),
			}
			return s.Run()
		},
	}

	connectedCmd := &cobra.Command{
		Use:   "connected",
		Short: "Report whether every source airport is reachable from one root",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := setup(cmd, f)
			if err != nil {
				return err
			}
			return printReport(cmd.OutOrStdout(), connectivity.Check(a.graph))
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "optional YAML config file")
	pf.StringVar(&f.dataPath, "data", "", "route dataset path (default routes.dat)")
	pf.BoolVar(&f.strict, "strict", false, "log the reason for every rejected line")
	pf.IntVar(&f.maxHops, "max-hops", 0, "longest itinerary in routes (0 for no limit)")
	pf.StringSliceVar(&f.avoid, "avoid", nil, "airport codes no itinerary may pass through")
	pf.StringVar(&f.logLevel, "log-level", "", "debug, info, warn or error")
	pf.StringVar(&f.logFormat, "log-format", "", "auto, text or json")

	rootCmd.AddCommand(connectedCmd)

	return rootCmd
}

// setup resolves configuration, builds the logger and loads the dataset.
// An unreadable dataset is not fatal: the graph stays empty.
func setup(cmd *cobra.Command, f *flags) (*app, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	applyFlags(cmd, f, &cfg)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.Logging)
	g, _, err := routes.LoadFile(cfg.Data.Path,
		routes.WithStrict(cfg.Data.Strict),
		routes.WithLogger(logger),
	)
	switch {
	case errors.Is(err, routes.ErrSourceUnavailable):
		logger.Warn("route dataset unavailable, continuing with no routes", "path", cfg.Data.Path, "error", err)
	case err != nil:
		logger.Warn("route dataset partially read", "path", cfg.Data.Path, "error", err)
	}

	return &app{cfg: cfg, logger: logger, graph: g}, nil
}

func applyFlags(cmd *cobra.Command, f *flags, cfg *config.Config) {
	changed := cmd.Flags().Changed
	if changed("data") {
		cfg.Data.Path = f.dataPath
	}
	if changed("strict") {
		cfg.Data.Strict = f.strict
	}
	if changed("max-hops") {
		cfg.Query.MaxHops = f.maxHops
	}
	if changed("avoid") {
		cfg.Query.Avoid = f.avoid
	}
	if changed("log-level") {
		cfg.Logging.Level = f.logLevel
	}
	if changed("log-format") {
		cfg.Logging.Format = f.logFormat
	}
}

func queryOptions(q config.QueryConfig) []pathfind.Option {
	var opts []pathfind.Option
	if q.MaxHops > 0 {
		opts = append(opts, pathfind.WithMaxHops(q.MaxHops))
	}
	if len(q.Avoid) > 0 {
		opts = append(opts, pathfind.WithAvoid(q.Avoid...))
	}

	return opts
}

func printReport(w io.Writer, rep connectivity.Report) error {
	verdict := "no"
	if rep.Covered {
		verdict = "yes"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "Connected: %s\n", verdict)
	if rep.Root != "" {
		fmt.Fprintf(&b, "Root: %s\n", rep.Root)
	}
	fmt.Fprintf(&b, "Source airports: %d\n", rep.Sources)
	fmt.Fprintf(&b, "Visited airports: %d\n", rep.Visited)
	if len(rep.Unreached) > 0 {
		fmt.Fprintf(&b, "Unreached sources: %s\n", strings.Join(rep.Unreached, " "))
	}
	_, err := io.WriteString(w, b.String())

	return err
}
