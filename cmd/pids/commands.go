package main

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/katalvlaran/pids/app"
	"github.com/katalvlaran/pids/builder"
	"github.com/katalvlaran/pids/config"
	"github.com/katalvlaran/pids/graph"
	"github.com/katalvlaran/pids/metrics"
)

const (
	flagConfig   = "config"
	flagLogLevel = "log-level"
	flagTextfile = "metrics-textfile"
	flagInput    = "input"
	flagApps     = "n_apps"
	flagSeed     = "seed"
)

// runFlags are shared by every search command; each command gets its own instances.
func runFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: flagInput, Aliases: []string{"i"}, Usage: "instance file (n m, then 1-indexed edges)"},
		&cli.IntFlag{Name: flagApps, Usage: "number of independent applications"},
		&cli.Int64Flag{Name: flagSeed, Usage: "random seed (0 selects the default)"},
	}
}

func newCLI(out io.Writer) *cli.App {
	return &cli.App{
		Name:      "pids",
		Usage:     "positive influence dominating set optimiser",
		Writer:    out,
		ErrWriter: os.Stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{Name: flagConfig, Aliases: []string{"c"}, Usage: "YAML configuration file"},
			&cli.StringFlag{Name: flagLogLevel, Usage: "debug, info, warn or error"},
			&cli.StringFlag{Name: flagTextfile, Usage: "write Prometheus metrics to this file at exit"},
		},
		Commands: []*cli.Command{
			{
				Name:   "greedy",
				Usage:  "greedy construction only",
				Flags:  runFlags(),
				Action: solve(out, func(c *cli.Context, cfg *config.Config) { cfg.Strategy = config.StrategyGreedy }),
			},
			{
				Name:  "local",
				Usage: "greedy start followed by hill climbing or simulated annealing",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "strategy", Value: config.StrategyHill, Usage: "hill or anneal"},
					&cli.StringFlag{Name: "acceptance", Usage: "annealing acceptance: literal or metropolis"},
				}, runFlags()...),
				Before: func(c *cli.Context) error {
					switch s := c.String("strategy"); s {
					case config.StrategyHill, config.StrategyAnneal:
						return nil
					default:
						return fmt.Errorf("local: strategy %q is not hill or anneal", s)
					}
				},
				Action: solve(out, func(c *cli.Context, cfg *config.Config) {
					cfg.Strategy = c.String("strategy")
					if c.IsSet("acceptance") {
						cfg.Anneal.Acceptance = c.String("acceptance")
					}
				}),
			},
			{
				Name:  "tabu",
				Usage: "pruned greedy start followed by tabu search",
				Flags: append([]cli.Flag{
					&cli.Float64Flag{Name: "time", Aliases: []string{"t"}, Usage: "time limit per application in seconds"},
					&cli.Int64Flag{Name: "tenure", Usage: "tabu tenure (0 = node count)"},
					&cli.StringFlag{Name: "key-policy", Usage: "node, direction or score"},
					&cli.Int64Flag{Name: "max-iterations", Usage: "iteration cap (0 = unlimited)"},
				}, runFlags()...),
				Action: solve(out, func(c *cli.Context, cfg *config.Config) {
					cfg.Strategy = config.StrategyTabu
					if c.IsSet("time") {
						cfg.TimeLimit = c.Float64("time")
					}
					if c.IsSet("tenure") {
						cfg.Tabu.Tenure = c.Int64("tenure")
					}
					if c.IsSet("key-policy") {
						cfg.Tabu.KeyPolicy = c.String("key-policy")
					}
					if c.IsSet("max-iterations") {
						cfg.Tabu.MaxIterations = c.Int64("max-iterations")
					}
				}),
			},
			generateCommand(out),
		},
	}
}

// solve returns the action shared by the search commands: layer the
// configuration, build logger and metrics, run, export metrics.
func solve(out io.Writer, strategy func(*cli.Context, *config.Config)) cli.ActionFunc {
	return func(c *cli.Context) error {
		cfg, err := config.Load(c.String(flagConfig), func(cfg *config.Config) {
			strategy(c, cfg)
			if c.IsSet(flagInput) {
				cfg.Input = c.String(flagInput)
			}
			if c.IsSet(flagApps) {
				cfg.Apps = c.Int(flagApps)
			}
			if c.IsSet(flagSeed) {
				cfg.Seed = c.Int64(flagSeed)
			}
			if c.IsSet(flagLogLevel) {
				cfg.Log.Level = c.String(flagLogLevel)
			}
			if c.IsSet(flagTextfile) {
				cfg.Metrics.Textfile = c.String(flagTextfile)
			}
		})
		if err != nil {
			return err
		}

		logger, err := app.NewLogger(cfg.Log)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		var rec *metrics.Recorder
		if cfg.Metrics.Textfile != "" {
			if rec, err = metrics.New(); err != nil {
				return err
			}
		}

		a, err := app.New(cfg, app.WithLogger(logger), app.WithMetrics(rec), app.WithOutput(out))
		if err != nil {
			return err
		}
		if _, err = a.Run(c.Context); err != nil {
			return err
		}
		if err = rec.WriteTextfile(cfg.Metrics.Textfile); err != nil {
			logger.Warn("metrics export failed", zap.Error(err))
		}

		return nil
	}
}

func generateCommand(out io.Writer) *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "write a synthetic instance in the input text format",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "topology", Value: "random", Usage: "cycle, path, star, wheel, complete, bipartite, grid or random"},
			&cli.IntFlag{Name: "n", Value: 100, Usage: "vertex count (first side for bipartite)"},
			&cli.IntFlag{Name: "m", Value: 1, Usage: "second side for bipartite"},
			&cli.IntFlag{Name: "rows", Value: 10},
			&cli.IntFlag{Name: "cols", Value: 10},
			&cli.Float64Flag{Name: "p", Value: 0.05, Usage: "edge probability for random"},
			&cli.Int64Flag{Name: "seed", Value: 1},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "destination file (default stdout)"},
		},
		Action: func(c *cli.Context) error {
			cons, err := topology(c)
			if err != nil {
				return err
			}
			g, err := builder.BuildGraph([]builder.BuilderOption{builder.WithSeed(c.Int64("seed"))}, cons)
			if err != nil {
				return err
			}

			path := c.String("output")
			if path == "" {
				return graph.Write(out, g)
			}
			f, err := os.Create(path)
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}
			if err = graph.Write(f, g); err != nil {
				_ = f.Close()
				return err
			}

			return f.Close()
		},
	}
}

func topology(c *cli.Context) (builder.Constructor, error) {
	n := c.Int("n")
	switch name := c.String("topology"); name {
	case "cycle":
		return builder.Cycle(n), nil
	case "path":
		return builder.Path(n), nil
	case "star":
		return builder.Star(n), nil
	case "wheel":
		return builder.Wheel(n), nil
	case "complete":
		return builder.Complete(n), nil
	case "bipartite":
		return builder.CompleteBipartite(n, c.Int("m")), nil
	case "grid":
		return builder.Grid(c.Int("rows"), c.Int("cols")), nil
	case "random":
		return builder.RandomSparse(n, c.Float64("p")), nil
	default:
		return nil, fmt.Errorf("generate: unknown topology %q", name)
	}
}
