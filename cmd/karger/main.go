// Command karger computes a minimum cut of an undirected graph read from an
// adjacency-list file, using repeated random contraction.
//
//	karger graph.txt 500 --verbose
//
// When the iteration count is omitted, n²·ln n trials are run.
package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/alecthomas/kingpin/v2"

	"github.com/katalvlaran/mincut/adjlist"
	"github.com/katalvlaran/mincut/core"
	"github.com/katalvlaran/mincut/karger"
)

type config struct {
	filename   string
	iterations int
	verbose    bool
	seed       int64
	workers    int
	verify     bool
}

func newApp(cfg *config) *kingpin.Application {
	app := kingpin.New("karger", "Compute minimum cut of a connected graph.")
	app.Arg("filename", "file containing graph").Required().ExistingFileVar(&cfg.filename)
	app.Arg("iter", "number of iterations to run (default n²·ln n)").IntVar(&cfg.iterations)
	app.Flag("verbose", "print additional messages").Short('v').BoolVar(&cfg.verbose)
	app.Flag("seed", "random seed (0 uses the fixed default)").Envar("KARGER_SEED").Default("0").Int64Var(&cfg.seed)
	app.Flag("workers", "concurrent trials (0 = GOMAXPROCS)").Envar("KARGER_WORKERS").Default("0").IntVar(&cfg.workers)
	app.Flag("verify", "check the reported cut independently").BoolVar(&cfg.verify)

	return app
}

func run(args []string, stdout, stderr io.Writer) error {
	var cfg config
	app := newApp(&cfg)
	app.UsageWriter(stderr)
	app.ErrorWriter(stderr)
	app.Terminate(nil)
	if _, err := app.Parse(args); err != nil {
		return err
	}

	logger := log.New(io.Discard, "", 0)
	if cfg.verbose {
		logger = log.New(stderr, "", 0)
	}

	logger.Println("Building graph...")
	rows, err := adjlist.ReadFile(cfg.filename)
	if err != nil {
		return err
	}
	g, err := core.FromRows(rows)
	if err != nil {
		return fmt.Errorf("%s: %w", cfg.filename, err)
	}
	logger.Printf("Graph: %d vertices, %d edges, fingerprint %s", g.VertexCount(), g.EdgeCount(), g.Fingerprint())
	if comps := karger.Components(g); comps > 1 {
		logger.Printf("Warning: graph has %d connected components; the minimum cut is 0", comps)
	}

	iterations := cfg.iterations
	if iterations == 0 {
		iterations = karger.SuggestedIterations(g.VertexCount())
	}

	logger.Println("Running contractions...")
	opts := []karger.Option{karger.WithSeed(cfg.seed), karger.WithWorkers(cfg.workers)}
	if cfg.verbose {
		opts = append(opts, karger.WithOnTrial(func(trial int, _ karger.Cut) {
			logger.Println("Iteration:", trial+1)
		}))
	}
	c, err := karger.MinCut(g, iterations, opts...)
	if err != nil {
		return err
	}
	if cfg.verify {
		if err := karger.VerifyCut(g, c); err != nil {
			return err
		}
		logger.Println("Cut verified")
	}

	edges := make([]string, len(c.Edges))
	for i, e := range c.Edges {
		edges[i] = e.String()
	}
	fmt.Fprintln(stdout, "Minimum cut size:", c.Size)
	fmt.Fprintf(stdout, "Minimum cut: [%s]\n", strings.Join(edges, ", "))

	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", err)
		os.Exit(1)
	}
}
