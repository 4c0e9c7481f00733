package grn

import (
	"math/rand"
	"runtime"
	"sync"
	"time"

	"github.com/YuminosukeSato/genet/dataset"
	"github.com/YuminosukeSato/genet/diagnostics"
	"github.com/YuminosukeSato/genet/pkg/errors"
	"github.com/YuminosukeSato/genet/pkg/log"
)

// Options control how a Predictor splits data and schedules work.
type Options struct {
	// Seed fixes the train/test splits and any stochastic method state.
	// Nil means a fresh random run.
	Seed *int64

	// TestFraction is the share of samples held out per target, in (0, 1).
	TestFraction float64

	// Workers caps concurrent target fits. Zero or negative means one
	// worker per CPU.
	Workers int
}

// Option configures a Predictor.
type Option func(*Options)

// WithSeed fixes the random seed for reproducible runs.
func WithSeed(seed int64) Option {
	return func(o *Options) {
		o.Seed = &seed
	}
}

// WithTestFraction sets the held-out share of samples per target.
func WithTestFraction(fraction float64) Option {
	return func(o *Options) {
		o.TestFraction = fraction
	}
}

// WithWorkers caps the number of concurrent target fits.
func WithWorkers(n int) Option {
	return func(o *Options) {
		o.Workers = n
	}
}

// Predictor infers a regulatory network by regressing every gene in an
// expression table on all other genes with the configured Method.
type Predictor struct {
	method Method
	opts   Options
	logger log.Logger
}

// NewPredictor creates a Predictor for the given inference method.
// Default options hold out 20% of samples per target and fit targets
// concurrently, one worker per CPU.
func NewPredictor(method Method, opts ...Option) *Predictor {
	p := &Predictor{
		method: method,
		opts:   Options{TestFraction: 0.2},
		logger: log.GetLoggerWithName("grn.predictor"),
	}
	for _, opt := range opts {
		opt(&p.opts)
	}
	return p
}

// PredictNetwork infers the regulatory network of the table. Every gene
// is treated as a target in turn: its samples are split into train and
// test folds, the method fits the train fold, and the selected regulators
// become edges "regulator->target". Candidate features never include the
// target itself, so the network has no self-loops.
//
// The returned FitReport carries per-target train and test R2 for
// diagnostics. Edge iteration order is undefined; use EdgeSet.Sorted for
// stable output.
func (p *Predictor) PredictNetwork(table *dataset.Table) (EdgeSet, *diagnostics.FitReport, error) {
	start := time.Now()
	genes := table.Genes()
	if len(genes) < 2 {
		return nil, nil, errors.NewValueError("PredictNetwork",
			"need at least 2 genes to infer a network")
	}

	// Per-target seeds are drawn up front from the master seed so results
	// do not depend on worker scheduling.
	seeds := p.targetSeeds(len(genes))

	report := diagnostics.NewFitReport(p.method.Name())
	fits := make([]*TargetFit, len(genes))
	errs := make([]error, len(genes))

	workers := p.opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	p.logger.Info("inference started",
		log.MethodKey, p.method.Name(),
		log.GenesKey, len(genes),
		log.SamplesKey, table.NumSamples(),
		log.WorkersKey, workers,
	)

	sem := make(chan struct{}, workers)
	var wg sync.WaitGroup
	for i, target := range genes {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, target string) {
			defer wg.Done()
			defer func() { <-sem }()
			errs[i] = errors.SafeExecute("infer target "+target, func() error {
				fit, err := p.inferTarget(target, table, seeds[i])
				if err != nil {
					return err
				}
				fits[i] = fit
				report.Add(target, fit.TrainR2, fit.TestR2)
				return nil
			})
		}(i, target)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, nil, err
		}
	}

	network := make(EdgeSet)
	for _, fit := range fits {
		for regulator := range fit.Regulators {
			network.Add(Edge{Regulator: regulator, Target: fit.Target})
		}
	}

	p.logger.Info("inference finished",
		log.MethodKey, p.method.Name(),
		log.EdgesKey, len(network),
		log.DurationMsKey, time.Since(start).Milliseconds(),
	)
	return network, report, nil
}

// PredictNetworkFile loads an expression table from a TSV file and infers
// its network.
func (p *Predictor) PredictNetworkFile(path string) (EdgeSet, *diagnostics.FitReport, error) {
	table, err := dataset.LoadExpressionTable(path)
	if err != nil {
		return nil, nil, err
	}
	return p.PredictNetwork(table)
}

func (p *Predictor) inferTarget(target string, table *dataset.Table, seed *int64) (*TargetFit, error) {
	splitOpts := []dataset.SplitOption{dataset.WithTestFraction(p.opts.TestFraction)}
	if seed != nil {
		splitOpts = append(splitOpts, dataset.WithSeed(*seed))
	}
	split, err := dataset.Split(table, target, splitOpts...)
	if err != nil {
		return nil, err
	}
	return p.method.Infer(target, split)
}

// targetSeeds derives one split seed per target from the master seed.
// Without a master seed all entries are nil and splits are random.
func (p *Predictor) targetSeeds(n int) []*int64 {
	seeds := make([]*int64, n)
	if p.opts.Seed == nil {
		return seeds
	}
	seeder := rand.New(rand.NewSource(*p.opts.Seed))
	for i := range seeds {
		s := seeder.Int63()
		seeds[i] = &s
	}
	return seeds
}
