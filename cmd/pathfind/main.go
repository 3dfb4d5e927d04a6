// Command pathfind loads a scenario file and prints the shortest path for
// each of its queries.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/dd0wney/cluso-structures/pkg/algorithms"
	"github.com/dd0wney/cluso-structures/pkg/logging"
	"github.com/dd0wney/cluso-structures/pkg/metrics"
	"github.com/dd0wney/cluso-structures/pkg/scenario"
	"github.com/dd0wney/cluso-structures/pkg/validation"
)

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintf(os.Stderr, "pathfind: %v\n", err)
		}
		os.Exit(1)
	}
}

type options struct {
	scenario    string
	logLevel    string
	workers     int
	maxRounds   int
	showMetrics bool
}

func parseFlags(args []string, stderr io.Writer) (*options, error) {
	fs := flag.NewFlagSet("pathfind", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var o options
	fs.StringVar(&o.scenario, "scenario", "", "Scenario YAML file")
	fs.StringVar(&o.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	fs.IntVar(&o.workers, "workers", runtime.NumCPU(), "Queries searched in parallel")
	fs.IntVar(&o.maxRounds, "max-rounds", 0, "Round cap per search, overrides the scenario (0 keeps it)")
	fs.BoolVar(&o.showMetrics, "metrics", false, "Print Prometheus metrics after the run")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	cv := validation.NewConfigValidator("flags").
		Required("scenario", o.scenario).
		Positive("workers", o.workers).
		NonNegative("max-rounds", o.maxRounds).
		OneOf("log-level", strings.ToLower(o.logLevel), []string{"debug", "info", "warn", "error"})
	if err := cv.Validate(); err != nil {
		return nil, err
	}
	return &o, nil
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	o, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}

	logger := logging.NewJSONLogger(stderr, logging.ParseLevel(o.logLevel)).
		With(logging.Component("pathfind"))
	reg := metrics.NewRegistry()

	s, err := scenario.Load(o.scenario)
	if err != nil {
		return err
	}
	logger.Info("scenario loaded",
		logging.String("name", s.Name),
		logging.String("kind", s.Kind()))

	runner, err := s.Build(scenario.BuildOptions{Logger: logger, Metrics: reg})
	if err != nil {
		return err
	}

	search := algorithms.SearchOptions{
		MaxRounds: validation.DefaultOr(o.maxRounds, s.MaxRounds),
		Logger:    logger,
		Metrics:   reg,
	}
	results, err := runAll(ctx, runner, search, o.workers)
	if err != nil {
		return err
	}

	fmt.Fprintf(stdout, "scenario %s (%s, %d queries)\n", s.Name, s.Kind(), len(results))
	for _, r := range results {
		printResult(stdout, r)
	}

	if o.showMetrics {
		return reg.WriteText(stdout)
	}
	return nil
}

type outcome struct {
	scenario.Result
	limited bool
}

// runAll searches every query with at most workers in flight. Results come
// back in query order.
func runAll(ctx context.Context, r scenario.Runner, opts algorithms.SearchOptions, workers int) ([]outcome, error) {
	out := make([]outcome, r.Len())

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i := range out {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := r.Run(i, opts)
			switch {
			case errors.Is(err, algorithms.ErrRoundLimit):
				out[i] = outcome{Result: res, limited: true}
			case err != nil:
				return fmt.Errorf("query %d: %w", i, err)
			default:
				out[i] = outcome{Result: res}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func printResult(w io.Writer, r outcome) {
	fmt.Fprintf(w, "[%d] %s -> %s: ", r.Index, r.From, r.To)
	switch {
	case r.limited:
		fmt.Fprintf(w, "gave up after %d rounds\n", r.Rounds)
	case !r.Found:
		fmt.Fprintln(w, "unreachable")
	default:
		fmt.Fprintf(w, "%d hops: %s\n", r.Hops, strings.Join(r.Path, " "))
	}
}
