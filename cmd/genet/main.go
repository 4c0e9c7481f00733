// Command genet infers a gene regulatory network from an expression
// matrix and optionally scores it against a gold-standard edge list.
//
// Usage:
//
//	genet -expr expression.tsv -gold gold.tsv -method lasso -seed 42
//
// The inferred edges are printed one per line as "regulator->target".
// With -gold the intersection-over-union against the gold standard is
// printed as well. With -plot PREFIX per-target fit diagnostics are
// written to PREFIX_r2.png and PREFIX_scatter.png.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/YuminosukeSato/genet/diagnostics"
	"github.com/YuminosukeSato/genet/grn"
	"github.com/YuminosukeSato/genet/pkg/log"
)

type config struct {
	exprPath     string
	goldPath     string
	method       string
	seed         int64
	seedSet      bool
	alpha        float64
	trees        int
	testFraction float64
	workers      int
	plotPrefix   string
	logLevel     string
}

func parseFlags(args []string) (*config, error) {
	cfg := &config{}
	fs := flag.NewFlagSet("genet", flag.ContinueOnError)

	fs.StringVar(&cfg.exprPath, "expr", "", "expression matrix TSV (required)")
	fs.StringVar(&cfg.goldPath, "gold", "", "gold-standard edge list TSV")
	fs.StringVar(&cfg.method, "method", "lasso", "inference method: lasso or forest")
	fs.Int64Var(&cfg.seed, "seed", 0, "random seed for reproducible runs")
	fs.Float64Var(&cfg.alpha, "alpha", 0.1, "L1 regularization strength (lasso)")
	fs.IntVar(&cfg.trees, "trees", 10, "number of trees (forest)")
	fs.Float64Var(&cfg.testFraction, "test-fraction", 0.2, "held-out share of samples per target")
	fs.IntVar(&cfg.workers, "workers", 0, "concurrent target fits, 0 = one per CPU")
	fs.StringVar(&cfg.plotPrefix, "plot", "", "write diagnostics plots with this path prefix")
	fs.StringVar(&cfg.logLevel, "log-level", "info", "log level: debug, info, warn, error")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	cfg.seedSet = false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "seed" {
			cfg.seedSet = true
		}
	})

	if cfg.exprPath == "" {
		fs.Usage()
		return nil, fmt.Errorf("genet: -expr is required")
	}
	if cfg.method != "lasso" && cfg.method != "forest" {
		return nil, fmt.Errorf("genet: unknown method %q (want lasso or forest)", cfg.method)
	}
	return cfg, nil
}

func buildMethod(cfg *config) grn.Method {
	switch cfg.method {
	case "forest":
		opts := []grn.ForestMethodOption{grn.WithForestTrees(cfg.trees)}
		if cfg.seedSet {
			opts = append(opts, grn.WithForestSeed(cfg.seed))
		}
		return grn.NewForestMethod(opts...)
	default:
		return grn.NewLassoMethod(grn.WithLassoAlpha(cfg.alpha))
	}
}

func run(cfg *config) error {
	log.SetLevel(log.ParseLevel(cfg.logLevel))
	log.RouteWarnings()

	predictorOpts := []grn.Option{
		grn.WithTestFraction(cfg.testFraction),
		grn.WithWorkers(cfg.workers),
	}
	if cfg.seedSet {
		predictorOpts = append(predictorOpts, grn.WithSeed(cfg.seed))
	}

	predictor := grn.NewPredictor(buildMethod(cfg), predictorOpts...)
	network, report, err := predictor.PredictNetworkFile(cfg.exprPath)
	if err != nil {
		return err
	}

	for _, edge := range network.Sorted() {
		fmt.Println(edge)
	}
	fmt.Printf("edges: %d\n", len(network))

	if cfg.goldPath != "" {
		score, err := grn.ScoreAgainstFile(network, cfg.goldPath)
		if err != nil {
			return err
		}
		fmt.Printf("gold edges: %d\n", score.GoldSize)
		fmt.Printf("intersection: %d\n", score.Intersection)
		fmt.Printf("union: %d\n", score.Union)
		fmt.Printf("iou: %.4f\n", score.IOU)
	}

	if cfg.plotPrefix != "" {
		if err := savePlots(report, cfg.plotPrefix); err != nil {
			return err
		}
	}
	return nil
}

func savePlots(report *diagnostics.FitReport, prefix string) error {
	if err := report.SaveBarChart(prefix + "_r2.png"); err != nil {
		return err
	}
	return report.SaveScatter(prefix + "_scatter.png")
}

func main() {
	cfg, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
